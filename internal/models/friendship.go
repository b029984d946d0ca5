package models

import (
	"time"

	"gorm.io/gorm"
)

// 好友关系状态。reject / remove 直接删边，不保留 rejected 记录，
// 所以「无边」即「无关系」。
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// CanonicalPair 返回无序对的规范顺序（小 ID 在前）
func CanonicalPair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// Friendship 好友边 - 每对用户（无序对）至多一条。
// PairLowID / PairHighID 是规范化后的无序对列，唯一索引建在这两列上，
// 并发下两个方向同时首次插入时由存储层兜底拒掉第二条。
// requester/recipient 单独保留方向，用于区分 sent / received 待处理请求。
type Friendship struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PairLowID   uint       `gorm:"not null;uniqueIndex:idx_pair" json:"-"`
	PairHighID  uint       `gorm:"not null;uniqueIndex:idx_pair" json:"-"`
	RequesterID uint       `gorm:"not null;index" json:"requester_id"`
	RecipientID uint       `gorm:"not null;index" json:"recipient_id"`
	Status      string     `gorm:"size:10;default:'pending';not null" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at"`
}

// BeforeCreate 写入前填充规范对列
func (f *Friendship) BeforeCreate(_ *gorm.DB) error {
	f.PairLowID, f.PairHighID = CanonicalPair(f.RequesterID, f.RecipientID)
	return nil
}
