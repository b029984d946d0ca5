package models

import (
	"time"
)

// 可见性设置取值。旧版客户端只有两档 {circle, private}，
// 读取时 circle 等同于 friends。
const (
	VisibilityPublic  = "public"
	VisibilityFriends = "friends"
	VisibilityPrivate = "private"
	VisibilityCircle  = "circle" // legacy
)

type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	PublicID          string    `gorm:"uniqueIndex;size:12;not null" json:"public_id"` // CIN_XXXXXX，用于好友查找
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	Password          string    `gorm:"not null" json:"-"` // Hash
	Name              string    `gorm:"size:50" json:"name"`
	Bio               string    `gorm:"size:200" json:"bio"` // 个人简介
	Avatar            string    `gorm:"default:🌱" json:"avatar"`
	ProfileVisibility string    `gorm:"size:10;default:'friends'" json:"profile_visibility"`
	CheckinVisibility string    `gorm:"size:10;default:'friends'" json:"checkin_visibility"`
	Theme             string    `gorm:"size:10;default:'system'" json:"theme"` // light, dark, system
	ReminderHour      int       `gorm:"default:-1" json:"reminder_hour"`       // -1 表示关闭每日提醒
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}

// NormalizeVisibility 归一化可见性取值，旧值 circle 映射为 friends。
// 未知值按 friends 处理，保证默认不向陌生人开放。
func NormalizeVisibility(v string) string {
	switch v {
	case VisibilityPublic, VisibilityFriends, VisibilityPrivate:
		return v
	case VisibilityCircle:
		return VisibilityFriends
	default:
		return VisibilityFriends
	}
}

// ValidVisibility 校验设置接口传入的可见性值（允许旧值 circle）
func ValidVisibility(v string) bool {
	switch v {
	case VisibilityPublic, VisibilityFriends, VisibilityPrivate, VisibilityCircle:
		return true
	}
	return false
}
