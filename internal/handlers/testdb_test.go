package handlers

import (
	"fmt"
	"strings"
	"testing"
	"xinquan/internal/db"
	"xinquan/internal/middleware"
	"xinquan/internal/models"
	"xinquan/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter 内存 sqlite + 完整中间件链的测试路由
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.CheckIn{},
		&models.Friendship{},
		&models.Thought{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.DB = gdb
	utils.GetCache().Purge()

	r := gin.New()
	r.Use(middleware.LoadUser())

	checkInHandler := NewCheckInHandler()
	profileHandler := NewProfileHandler()
	friendHandler := NewFriendHandler()
	settingsHandler := NewSettingsHandler()

	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/checkin", checkInHandler.Record)
		authorized.GET("/history", checkInHandler.History)
		authorized.GET("/profile/:publicId", profileHandler.Show)
		authorized.PUT("/profile/privacy", profileHandler.UpdatePrivacy)
		authorized.GET("/friends", friendHandler.List)
		authorized.GET("/settings", settingsHandler.Show)
		authorized.POST("/settings", settingsHandler.Update)
	}
	return r
}

func createTestUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Email:    email,
		Password: "hash",
		PublicID: utils.GeneratePublicID(),
		Name:     strings.Split(email, "@")[0],
	}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user %s: %v", email, err)
	}
	token, err := middleware.IssueToken(user)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return user, token
}
