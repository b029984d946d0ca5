package models

import (
	"time"
)

// Thought 每日心语 - 每人每天至多一条，同日再次保存覆盖前一条，可主动删除。
// 只在当天的动态里展示，过期不归档。
type Thought struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_day" json:"user_id"`
	Day       string    `gorm:"size:10;not null;uniqueIndex:idx_user_day" json:"day"` // YYYY-MM-DD
	Text      string    `gorm:"size:400;not null" json:"text"`                        // ≤60 词且 ≤400 字符
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
