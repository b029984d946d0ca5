package handlers

import (
	"net/http"
	"xinquan/internal/db"
	"xinquan/internal/models"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{}

func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

type settingsBody struct {
	ProfileVisibility *string `json:"profileVisibility"`
	CheckinVisibility *string `json:"checkinVisibility"`
	Theme             *string `json:"theme"`
	ReminderHour      *int    `json:"reminderHour"`
}

func validTheme(t string) bool {
	switch t {
	case "light", "dark", "system":
		return true
	}
	return false
}

func settingsPayload(user *models.User) gin.H {
	return gin.H{
		"profileVisibility": models.NormalizeVisibility(user.ProfileVisibility),
		"checkinVisibility": models.NormalizeVisibility(user.CheckinVisibility),
		"theme":             user.Theme,
		"reminderHour":      user.ReminderHour,
	}
}

// Show GET /settings
func (h *SettingsHandler) Show(c *gin.Context) {
	OK(c, settingsPayload(CurrentUser(c)))
}

// Update POST /settings - 部分字段更新。
// 提醒时间只落库，推送由外部服务消费，这里不负责投递。
func (h *SettingsHandler) Update(c *gin.Context) {
	user := CurrentUser(c)

	var req settingsBody
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
	if req.Theme != nil {
		if !validTheme(*req.Theme) {
			Fail(c, http.StatusBadRequest, "Theme must be light, dark or system")
			return
		}
		updates["theme"] = *req.Theme
	}
	if req.ReminderHour != nil {
		if *req.ReminderHour < -1 || *req.ReminderHour > 23 {
			Fail(c, http.StatusBadRequest, "reminderHour must be between 0 and 23, or -1 to disable")
			return
		}
		updates["reminder_hour"] = *req.ReminderHour
	}

	if len(updates) > 0 {
		if err := db.DB.Model(user).Updates(updates).Error; err != nil {
			FailErr(c, err)
			return
		}
	}
	OK(c, settingsPayload(user))
}
