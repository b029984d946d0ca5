package services

import (
	"fmt"
	"strings"
	"testing"
	"xinquan/internal/db"
	"xinquan/internal/models"
	"xinquan/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 每个测试独立的内存 sqlite，替换包级 db.DB。
// cache=shared 保证 gorm 连接池里的多个连接看到同一个库。
func setupTestDB(t *testing.T) {
	t.Helper()

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

	// 用户 ID 在不同测试库之间会重号，必须清掉统计缓存
	utils.GetCache().Purge()
}

func createTestUser(t *testing.T, email string) *models.User {
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
	return user
}

// makeFriends 建立一条已接受的好友边
func makeFriends(t *testing.T, a, b *models.User) {
	t.Helper()

	if err := SendFriendRequest(a.ID, b.PublicID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if err := RespondToRequest(b.ID, a.ID, "accept"); err != nil {
		t.Fatalf("RespondToRequest failed: %v", err)
	}
}
