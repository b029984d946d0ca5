package handlers

import (
	"net/http"
	"xinquan/internal/models"
	"xinquan/internal/services"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct{}

func NewFriendHandler() *FriendHandler {
	return &FriendHandler{}
}

type friendRequestBody struct {
	TargetPublicID string `json:"targetPublicId"`
}

type respondBody struct {
	RequesterID uint   `json:"requesterId"`
	Action      string `json:"action"` // accept / reject
}

type removeBody struct {
	FriendID uint `json:"friendId"`
}

// List GET /friends - 好友列表 + 待处理请求（sent/received 拆开）+ 自己的公开 ID。
// 好友条目在签到可见性放行时附带 streak 和最近一次签到。
func (h *FriendHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	friends, err := services.ListFriends(user.ID)
	if err != nil {
		FailErr(c, err)
		return
	}
	sent, received, err := services.ListPendingRequests(user.ID)
	if err != nil {
		FailErr(c, err)
		return
	}

	entries := make([]gin.H, 0, len(friends))
	for i := range friends {
		f := &friends[i]
		entry := gin.H{
			"userId":   f.ID,
			"publicId": f.PublicID,
			"name":     f.Name,
			"email":    f.Email,
			"avatar":   f.Avatar,
			"bio":      f.Bio,
		}
		if services.CanView(user.ID, f, services.FieldCheckins) {
			if stats, err := services.GetCheckInStats(f.ID); err == nil {
				entry["streak"] = stats.Streak
				if stats.LastCheckIn != nil {
					entry["lastCheckIn"] = gin.H{
						"date":      stats.LastCheckIn.Date,
						"mood":      stats.LastCheckIn.Mood,
						"timestamp": stats.LastCheckIn.CreatedAt,
					}
				}
			}
		}
		entries = append(entries, entry)
	}

	OK(c, gin.H{
		"friends": entries,
		"requests": gin.H{
			"sent":     briefUsers(sent),
			"received": briefUsers(received),
		},
		"myPublicId": user.PublicID,
	})
}

// Request POST /friends/request - 按公开 ID 发起好友请求
func (h *FriendHandler) Request(c *gin.Context) {
	user := CurrentUser(c)

	var req friendRequestBody
	if err := c.ShouldBindJSON(&req); err != nil || req.TargetPublicID == "" {
		Fail(c, http.StatusBadRequest, "targetPublicId is required")
		return
	}

	if err := services.SendFriendRequest(user.ID, req.TargetPublicID); err != nil {
		FailErr(c, err)
		return
	}
	OK(c, nil)
}

// Respond POST /friends/respond - 接受或拒绝收到的请求
func (h *FriendHandler) Respond(c *gin.Context) {
	user := CurrentUser(c)

	var req respondBody
	if err := c.ShouldBindJSON(&req); err != nil || req.RequesterID == 0 {
		Fail(c, http.StatusBadRequest, "requesterId and action are required")
		return
	}

	if err := services.RespondToRequest(user.ID, req.RequesterID, req.Action); err != nil {
		FailErr(c, err)
		return
	}
	OK(c, nil)
}

// Remove DELETE /friends/remove - 解除好友关系
func (h *FriendHandler) Remove(c *gin.Context) {
	user := CurrentUser(c)

	var req removeBody
	if err := c.ShouldBindJSON(&req); err != nil || req.FriendID == 0 {
		Fail(c, http.StatusBadRequest, "friendId is required")
		return
	}

	if err := services.RemoveFriend(user.ID, req.FriendID); err != nil {
		FailErr(c, err)
		return
	}
	OK(c, nil)
}

func briefUsers(users []models.User) []gin.H {
	list := make([]gin.H, 0, len(users))
	for _, u := range users {
		list = append(list, gin.H{
			"userId":   u.ID,
			"publicId": u.PublicID,
			"name":     u.Name,
			"email":    u.Email,
		})
	}
	return list
}
