package utils

import (
	"sort"
	"time"
)

// DateLayout 签到日期的统一格式 (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Today 返回服务器本地日期
func Today() string {
	return time.Now().Format(DateLayout)
}

// DedupeDates 去重，返回降序排列的日期列表
func DedupeDates(dates []string) []string {
	seen := make(map[string]bool, len(dates))
	uniq := make([]string, 0, len(dates))
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			uniq = append(uniq, d)
		}
	}
	// YYYY-MM-DD 字符串序即时间序
	sort.Sort(sort.Reverse(sort.StringSlice(uniq)))
	return uniq
}

// CalculateStreak 计算截至 today 的连续签到天数。
// 最近一次签到既不是今天也不是昨天时视为断签，返回 0；
// 今天尚未签到但昨天签了，仍按昨天起算（一天宽限期）。
// 从最近日期逐日回溯，遇到第一个缺口停止。
func CalculateStreak(dates []string, today string) int {
	if len(dates) == 0 {
		return 0
	}
	uniq := DedupeDates(dates)

	ref, err := time.Parse(DateLayout, today)
	if err != nil {
		return 0
	}
	yesterday := ref.AddDate(0, 0, -1).Format(DateLayout)
	if uniq[0] != today && uniq[0] != yesterday {
		return 0
	}

	streak := 0
	expected := uniq[0]
	for _, d := range uniq {
		if d != expected {
			break
		}
		streak++
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			break
		}
		expected = t.AddDate(0, 0, -1).Format(DateLayout)
	}
	return streak
}

// TotalCheckIns 去重后的签到总天数
func TotalCheckIns(dates []string) int {
	return len(DedupeDates(dates))
}
