package models

import (
	"time"
)

// 心情枚举
const (
	MoodGreat = "great"
	MoodOkay  = "okay"
	MoodBad   = "bad"
)

// CheckIn 签到台账 - 每人每天至多一条，先写优先，只增不改不删。
// (user_id, date) 上的唯一索引是幂等写入的唯一防线，并发重复写靠它化解。
type CheckIn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_date" json:"user_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_user_date" json:"date"` // YYYY-MM-DD 日历日，非时间戳
	Mood      string    `gorm:"size:10;not null" json:"mood"`
	CreatedAt time.Time `json:"timestamp"` // 首次写入时间
}

// ValidMood 校验心情值
func ValidMood(m string) bool {
	switch m {
	case MoodGreat, MoodOkay, MoodBad:
		return true
	}
	return false
}
