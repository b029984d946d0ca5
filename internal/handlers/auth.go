package handlers

import (
	"errors"
	"net/http"
	"strings"
	"xinquan/internal/db"
	"xinquan/internal/middleware"
	"xinquan/internal/models"
	"xinquan/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup 注册并直接签发 token
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		Fail(c, http.StatusBadRequest, "Invalid email address")
		return
	}
	if len(req.Password) < 6 {
		Fail(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		Fail(c, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	user := models.User{
		Email:    email,
		Password: hash,
		Name:     strings.TrimSpace(req.Name),
		Avatar:   utils.GetRandomEmoji(),
	}
	// public_id 随机生成，撞上唯一索引就换一个重试
	for attempt := 0; attempt < 3; attempt++ {
		user.PublicID = utils.GeneratePublicID()
		err = db.DB.Create(&user).Error
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Could not create account")
		return
	}

	token, err := middleware.IssueToken(&user)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	OK(c, gin.H{"token": token, "userId": user.ID, "publicId": user.PublicID})
}

// Signin 登录
func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		Fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		Fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := middleware.IssueToken(&user)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	OK(c, gin.H{"token": token, "userId": user.ID, "publicId": user.PublicID})
}
