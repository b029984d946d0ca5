package handlers

import (
	"errors"
	"net/http"
	"strings"
	"xinquan/internal/middleware"
	"xinquan/internal/models"
	"xinquan/internal/services"

	"github.com/gin-gonic/gin"
)

// OK 成功响应，统一 {success, data} 包装
func OK(c *gin.Context, data interface{}) {
	if data == nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// FailErr 将业务错误翻译为 HTTP 状态码。
// 校验信息原样给客户端展示，存储错误不外泄细节。
func FailErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		Fail(c, http.StatusBadRequest, validationMsg(err))
	case errors.Is(err, services.ErrNotFound):
		Fail(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrSelfRequest):
		Fail(c, http.StatusConflict, "You cannot add yourself")
	case errors.Is(err, services.ErrAlreadyFriends):
		Fail(c, http.StatusConflict, "You are already friends")
	case errors.Is(err, services.ErrAlreadyPending):
		Fail(c, http.StatusConflict, "A request is already pending")
	case errors.Is(err, services.ErrForbidden):
		Fail(c, http.StatusForbidden, "Forbidden")
	default:
		Fail(c, http.StatusInternalServerError, "Server error")
	}
}

// validationMsg 去掉哨兵前缀，只留给用户看的描述
func validationMsg(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// CurrentUser 从上下文取当前登录用户（AuthRequired 之后可用）
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}
