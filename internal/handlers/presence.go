package handlers

import (
	"net/http"
	"xinquan/internal/services"

	"github.com/gin-gonic/gin"
)

type PresenceHandler struct{}

func NewPresenceHandler() *PresenceHandler {
	return &PresenceHandler{}
}

type thoughtBody struct {
	Thought string `json:"thought"`
}

// Feed GET /emotional-presence - 今日动态：自己的心语 + 可见好友的心语
func (h *PresenceHandler) Feed(c *gin.Context) {
	user := CurrentUser(c)

	mine, friends, err := services.PresenceFeed(user)
	if err != nil {
		FailErr(c, err)
		return
	}

	var myThought gin.H
	if mine != nil {
		myThought = gin.H{
			"thought":   mine.Text,
			"day":       mine.Day,
			"timestamp": mine.UpdatedAt,
		}
	}
	OK(c, gin.H{"myThought": myThought, "friendsThoughts": friends})
}

// SaveThought POST /emotional-presence/thought - 保存/覆盖今日心语
func (h *PresenceHandler) SaveThought(c *gin.Context) {
	user := CurrentUser(c)

	var req thoughtBody
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	thought, err := services.SaveThought(user.ID, req.Thought)
	if err != nil {
		FailErr(c, err)
		return
	}
	OK(c, gin.H{"thought": thought.Text, "day": thought.Day})
}

// ClearThought DELETE /emotional-presence/thought - 删除今日心语（无则 no-op）
func (h *PresenceHandler) ClearThought(c *gin.Context) {
	user := CurrentUser(c)

	if err := services.ClearThought(user.ID); err != nil {
		FailErr(c, err)
		return
	}
	OK(c, nil)
}
