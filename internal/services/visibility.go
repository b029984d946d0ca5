package services

import (
	"xinquan/internal/models"
)

// 可见性判定覆盖的内容类别
const (
	FieldProfile  = "profile"
	FieldCheckins = "checkins"
	FieldPresence = "presence"
)

// CanView 判断 viewer 是否可以读取 target 的某类内容。
// 规则：本人恒可见；public 恒可见；private 仅放行 profile 的基本身份字段
// （姓名、公开 ID），签到和动态一律不放行；friends（旧值 circle）要求
// 双方存在 accepted 边。只读判定，不修改任何状态。
func CanView(viewerID uint, target *models.User, field string) bool {
	if viewerID == target.ID {
		return true
	}

	setting := target.CheckinVisibility
	if field == FieldProfile {
		setting = target.ProfileVisibility
	}

	switch models.NormalizeVisibility(setting) {
	case models.VisibilityPublic:
		return true
	case models.VisibilityPrivate:
		return field == FieldProfile
	default: // friends
		return AreFriends(viewerID, target.ID)
	}
}
