package services

import (
	"errors"
	"fmt"
	"time"
	"xinquan/internal/db"
	"xinquan/internal/models"
	"xinquan/internal/utils"

	"gorm.io/gorm"
)

const statsCacheTTL = 10 * time.Minute

// WeeklyMoodSummary 最近 7 天各心情的签到次数
type WeeklyMoodSummary struct {
	Great int `json:"great"`
	Okay  int `json:"okay"`
	Bad   int `json:"bad"`
}

// CheckInStats 按需从台账推导的签到统计
type CheckInStats struct {
	Streak        int
	TotalCheckIns int
	WeeklyMood    WeeklyMoodSummary
	LastCheckIn   *models.CheckIn // 最近一条，可能为 nil
}

func statsCacheKey(userID uint) string {
	return fmt.Sprintf("checkin_stats:%d", userID)
}

// RecordCheckIn 幂等签到：同一 (user, date) 第二次写入不落库也不覆盖首次心情，
// 返回 alreadyRecorded=true。并发重复写靠唯一索引化解，不做先查后写。
func RecordCheckIn(userID uint, date, mood string) (alreadyRecorded bool, err error) {
	t, perr := time.Parse(utils.DateLayout, date)
	if perr != nil || t.Format(utils.DateLayout) != date {
		return false, validationError("date must be a valid YYYY-MM-DD calendar date")
	}
	if date > utils.Today() {
		return false, validationError("date cannot be in the future")
	}
	if !models.ValidMood(mood) {
		return false, validationError("mood must be one of great, okay, bad")
	}

	entry := models.CheckIn{UserID: userID, Date: date, Mood: mood}
	if err := db.DB.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 今日已签到，按成功处理
			return true, nil
		}
		return false, err
	}

	// 缓存的统计必须随新签到失效
	utils.GetCache().Delete(statsCacheKey(userID))
	return false, nil
}

// CheckInHistory 按日期升序返回全部签到记录
func CheckInHistory(userID uint) ([]models.CheckIn, error) {
	var list []models.CheckIn
	err := db.DB.Where("user_id = ?", userID).Order("date ASC").Find(&list).Error
	return list, err
}

// RecentCheckIns 按日期降序返回最近 limit 条签到记录
func RecentCheckIns(userID uint, limit int) ([]models.CheckIn, error) {
	var list []models.CheckIn
	err := db.DB.Where("user_id = ?", userID).Order("date DESC").Limit(limit).Find(&list).Error
	return list, err
}

// GetCheckInStats 计算用户签到统计，带缓存，RecordCheckIn 时失效
func GetCheckInStats(userID uint) (*CheckInStats, error) {
	key := statsCacheKey(userID)
	if v := utils.GetCache().Get(key); v != nil {
		if s, ok := v.(*CheckInStats); ok {
			return s, nil
		}
	}

	list, err := CheckInHistory(userID)
	if err != nil {
		return nil, err
	}

	today := utils.Today()
	weekAgo, _ := time.Parse(utils.DateLayout, today)
	weekStart := weekAgo.AddDate(0, 0, -6).Format(utils.DateLayout)

	dates := make([]string, 0, len(list))
	stats := &CheckInStats{}
	for i := range list {
		c := &list[i]
		dates = append(dates, c.Date)
		if c.Date >= weekStart && c.Date <= today {
			switch c.Mood {
			case models.MoodGreat:
				stats.WeeklyMood.Great++
			case models.MoodOkay:
				stats.WeeklyMood.Okay++
			case models.MoodBad:
				stats.WeeklyMood.Bad++
			}
		}
	}
	if len(list) > 0 {
		stats.LastCheckIn = &list[len(list)-1]
	}
	stats.Streak = utils.CalculateStreak(dates, today)
	stats.TotalCheckIns = utils.TotalCheckIns(dates)

	utils.GetCache().Set(key, stats, statsCacheTTL)
	return stats, nil
}
