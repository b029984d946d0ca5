package handlers

import (
	"net/http"
	"xinquan/internal/db"
	"xinquan/internal/models"
	"xinquan/internal/services"
	"xinquan/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Me GET /profile/me - 自己的资料和隐私设置
func (h *ProfileHandler) Me(c *gin.Context) {
	user := CurrentUser(c)

	stats, err := services.GetCheckInStats(user.ID)
	if err != nil {
		FailErr(c, err)
		return
	}

	OK(c, gin.H{
		"userId":   user.ID,
		"publicId": user.PublicID,
		"email":    user.Email,
		"name":     user.Name,
		"bio":      user.Bio,
		"avatar":   user.Avatar,
		"privacy": gin.H{
			"profileVisibility": models.NormalizeVisibility(user.ProfileVisibility),
			"checkinVisibility": models.NormalizeVisibility(user.CheckinVisibility),
		},
		"friendCount":   services.FriendCount(user.ID),
		"streak":        stats.Streak,
		"totalCheckIns": stats.TotalCheckIns,
	})
}

// Show GET /profile/:publicId - 查看他人资料。
// 资料可见性不放行时返回 403 PrivateProfile；
// private 资料只开放基本身份字段；签到统计另过签到可见性检查。
func (h *ProfileHandler) Show(c *gin.Context) {
	viewer := CurrentUser(c)

	pid := utils.NormalizePublicID(c.Param("publicId"))
	var target models.User
	if err := db.DB.Where("public_id = ?", pid).First(&target).Error; err != nil {
		Fail(c, http.StatusNotFound, "User not found")
		return
	}

	if !services.CanView(viewer.ID, &target, services.FieldProfile) {
		Fail(c, http.StatusForbidden, "PrivateProfile")
		return
	}

	isSelf := viewer.ID == target.ID
	data := gin.H{
		"publicId": target.PublicID,
		"name":     target.Name,
		"avatar":   target.Avatar,
		"isFriend": services.AreFriends(viewer.ID, target.ID),
		"isSelf":   isSelf,
	}

	if !isSelf && models.NormalizeVisibility(target.ProfileVisibility) == models.VisibilityPrivate {
		// 基本身份字段之外一概不给
		OK(c, data)
		return
	}

	data["bio"] = target.Bio
	data["friendCount"] = services.FriendCount(target.ID)

	if services.CanView(viewer.ID, &target, services.FieldCheckins) {
		stats, err := services.GetCheckInStats(target.ID)
		if err != nil {
			FailErr(c, err)
			return
		}
		recent, err := services.RecentCheckIns(target.ID, 7)
		if err != nil {
			FailErr(c, err)
			return
		}
		recentOut := make([]gin.H, 0, len(recent))
		for _, ci := range recent {
			recentOut = append(recentOut, gin.H{
				"date":      ci.Date,
				"mood":      ci.Mood,
				"timestamp": ci.CreatedAt,
			})
		}
		data["streak"] = stats.Streak
		data["totalCheckIns"] = stats.TotalCheckIns
		data["weeklyMoodSummary"] = stats.WeeklyMood
		data["recentCheckIns"] = recentOut
	}

	OK(c, data)
}

type profileUpdateBody struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

// Update PUT /profile - 修改自己的昵称/简介/头像
func (h *ProfileHandler) Update(c *gin.Context) {
	user := CurrentUser(c)

	var req profileUpdateBody
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := utils.CleanText(*req.Name)
		if len([]rune(name)) > 50 {
			Fail(c, http.StatusBadRequest, "Name cannot exceed 50 characters")
			return
		}
		updates["name"] = name
	}
	if req.Bio != nil {
		bio := utils.CleanText(*req.Bio)
		if len([]rune(bio)) > 200 {
			Fail(c, http.StatusBadRequest, "Bio cannot exceed 200 characters")
			return
		}
		updates["bio"] = bio
	}
	if req.Avatar != nil {
		updates["avatar"] = utils.CleanText(*req.Avatar)
	}

	if len(updates) > 0 {
		if err := db.DB.Model(user).Updates(updates).Error; err != nil {
			FailErr(c, err)
			return
		}
	}
	OK(c, nil)
}

type privacyUpdateBody struct {
	ProfileVisibility *string `json:"profileVisibility"`
	CheckinVisibility *string `json:"checkinVisibility"`
}

// UpdatePrivacy PUT /profile/privacy - 修改可见性设置，
// 写入时即归一化（旧值 circle 落库变成 friends）
func (h *ProfileHandler) UpdatePrivacy(c *gin.Context) {
	user := CurrentUser(c)

	var req privacyUpdateBody
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := make(map[string]interface{})
	if req.ProfileVisibility != nil {
		if !models.ValidVisibility(*req.ProfileVisibility) {
			Fail(c, http.StatusBadRequest, "Invalid profileVisibility value")
			return
		}
		updates["profile_visibility"] = models.NormalizeVisibility(*req.ProfileVisibility)
	}
	if req.CheckinVisibility != nil {
		if !models.ValidVisibility(*req.CheckinVisibility) {
			Fail(c, http.StatusBadRequest, "Invalid checkinVisibility value")
			return
		}
		updates["checkin_visibility"] = models.NormalizeVisibility(*req.CheckinVisibility)
	}

	if len(updates) > 0 {
		if err := db.DB.Model(user).Updates(updates).Error; err != nil {
			FailErr(c, err)
			return
		}
	}
	OK(c, gin.H{
		"profileVisibility": models.NormalizeVisibility(user.ProfileVisibility),
		"checkinVisibility": models.NormalizeVisibility(user.CheckinVisibility),
	})
}
