package utils

import (
	"testing"
)

func TestCalculateStreakConsecutive(t *testing.T) {
	today := "2024-01-05"
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}

	if got := CalculateStreak(dates, today); got != 5 {
		t.Errorf("Expected streak 5, got %d", got)
	}

	// 中间断一天，只从今天往回数到缺口
	withGap := []string{"2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05"}
	if got := CalculateStreak(withGap, today); got != 2 {
		t.Errorf("Expected streak 2 with gap, got %d", got)
	}
}

func TestCalculateStreakGraceDay(t *testing.T) {
	// 今天还没签，昨天签了，streak 从昨天起算
	dates := []string{"2024-01-02", "2024-01-03", "2024-01-04"}
	if got := CalculateStreak(dates, "2024-01-05"); got != 3 {
		t.Errorf("Expected streak 3 via grace day, got %d", got)
	}
}

func TestCalculateStreakBroken(t *testing.T) {
	// 最近一次既不是今天也不是昨天，直接归零
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if got := CalculateStreak(dates, "2024-01-10"); got != 0 {
		t.Errorf("Expected streak 0 when broken, got %d", got)
	}
}

func TestCalculateStreakEmpty(t *testing.T) {
	if got := CalculateStreak(nil, "2024-01-05"); got != 0 {
		t.Errorf("Expected streak 0 for empty dates, got %d", got)
	}
}

func TestCalculateStreakDuplicates(t *testing.T) {
	// 重复日期不能重复计数
	dates := []string{"2024-01-04", "2024-01-05", "2024-01-05", "2024-01-04"}
	if got := CalculateStreak(dates, "2024-01-05"); got != 2 {
		t.Errorf("Expected streak 2 with duplicate dates, got %d", got)
	}
}

func TestTotalCheckIns(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-01", "2024-01-02"}
	if got := TotalCheckIns(dates); got != 2 {
		t.Errorf("Expected 2 total check-ins after dedupe, got %d", got)
	}
}
