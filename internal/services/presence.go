package services

import (
	"errors"
	"strings"
	"time"
	"xinquan/internal/db"
	"xinquan/internal/models"
	"xinquan/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	thoughtMaxWords = 60
	thoughtMaxChars = 400
)

// FriendThought 动态里的一条好友心语
type FriendThought struct {
	UserID    uint      `json:"userId"`
	PublicID  string    `json:"publicId"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Thought   string    `json:"thought"`
	Timestamp time.Time `json:"timestamp"`
}

// SaveThought 保存今日心语，同日重复保存覆盖前一条。
// 先清洗再校验：空文本、超过 60 词或 400 字符的拒绝。
func SaveThought(userID uint, text string) (*models.Thought, error) {
	clean := utils.CleanText(text)
	if clean == "" {
		return nil, validationError("thought cannot be empty")
	}
	if len([]rune(clean)) > thoughtMaxChars {
		return nil, validationError("thought cannot exceed 400 characters")
	}
	if len(strings.Fields(clean)) > thoughtMaxWords {
		return nil, validationError("thought cannot exceed 60 words")
	}

	thought := models.Thought{
		UserID: userID,
		Day:    utils.Today(),
		Text:   clean,
	}
	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
	}).Create(&thought).Error
	if err != nil {
		return nil, err
	}
	return &thought, nil
}

// ClearThought 删除今日心语，不存在时视为 no-op
func ClearThought(userID uint) error {
	return db.DB.Where("user_id = ? AND day = ?", userID, utils.Today()).
		Delete(&models.Thought{}).Error
}

// MyThought 返回用户今日心语，没有则返回 nil
func MyThought(userID uint) (*models.Thought, error) {
	var thought models.Thought
	err := db.DB.Where("user_id = ? AND day = ?", userID, utils.Today()).First(&thought).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &thought, nil
}

// PresenceFeed 返回自己的今日心语 + 通过 presence 可见性检查的好友今日心语。
// 只取当天，往日心语不进动态。
func PresenceFeed(viewer *models.User) (*models.Thought, []FriendThought, error) {
	mine, err := MyThought(viewer.ID)
	if err != nil {
		return nil, nil, err
	}

	friends, err := ListFriends(viewer.ID)
	if err != nil {
		return nil, nil, err
	}

	day := utils.Today()
	feed := make([]FriendThought, 0, len(friends))
	for i := range friends {
		f := &friends[i]
		if !CanView(viewer.ID, f, FieldPresence) {
			continue
		}
		var thought models.Thought
		err := db.DB.Where("user_id = ? AND day = ?", f.ID, day).First(&thought).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		feed = append(feed, FriendThought{
			UserID:    f.ID,
			PublicID:  f.PublicID,
			Name:      f.Name,
			Avatar:    f.Avatar,
			Thought:   thought.Text,
			Timestamp: thought.UpdatedAt,
		})
	}
	return mine, feed, nil
}
