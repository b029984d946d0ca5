package handlers

import (
	"net/http"
	"xinquan/internal/db"
	"xinquan/internal/models"
	"xinquan/internal/services"
	"xinquan/internal/utils"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct{}

func NewCheckInHandler() *CheckInHandler {
	return &CheckInHandler{}
}

type checkInRequest struct {
	Date string `json:"date"`
	Mood string `json:"mood"`
}

// Record POST /checkin - 每日签到。
// 今日已签到不是错误：返回 success 且 alreadyRecorded=true，
// 已存的心情不会被覆盖（客户端重复提交是常态）。
func (h *CheckInHandler) Record(c *gin.Context) {
	user := CurrentUser(c)

	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	already, err := services.RecordCheckIn(user.ID, req.Date, req.Mood)
	if err != nil {
		FailErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "alreadyRecorded": already})
}

// History GET /history?userId= - 签到历史，日期升序。
// 不带 userId 查自己；查别人要过签到可见性检查。
func (h *CheckInHandler) History(c *gin.Context) {
	user := CurrentUser(c)

	targetID := user.ID
	if q := c.Query("userId"); q != "" {
		targetID = utils.StringToUint(q)
		if targetID == 0 {
			Fail(c, http.StatusBadRequest, "Invalid userId")
			return
		}
	}

	if targetID != user.ID {
		var target models.User
		if err := db.DB.First(&target, targetID).Error; err != nil {
			Fail(c, http.StatusNotFound, "User not found")
			return
		}
		if !services.CanView(user.ID, &target, services.FieldCheckins) {
			Fail(c, http.StatusForbidden, "Check-ins are private")
			return
		}
	}

	list, err := services.CheckInHistory(targetID)
	if err != nil {
		FailErr(c, err)
		return
	}
	OK(c, list)
}
