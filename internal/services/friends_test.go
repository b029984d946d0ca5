package services

import (
	"errors"
	"testing"
	"xinquan/internal/db"
	"xinquan/internal/models"

	"gorm.io/gorm"
)

func friendIDs(t *testing.T, userID uint) map[uint]bool {
	t.Helper()
	friends, err := ListFriends(userID)
	if err != nil {
		t.Fatalf("ListFriends failed: %v", err)
	}
	ids := make(map[uint]bool, len(friends))
	for _, f := range friends {
		ids[f.ID] = true
	}
	return ids
}

func TestFriendRequestAcceptSymmetry(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "a@example.com")
	b := createTestUser(t, "b@example.com")

	if err := SendFriendRequest(a.ID, b.PublicID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}

	sent, _, err := ListPendingRequests(a.ID)
	if err != nil || len(sent) != 1 || sent[0].ID != b.ID {
		t.Fatalf("Expected b in a's sent requests, got %v (err %v)", sent, err)
	}
	_, received, err := ListPendingRequests(b.ID)
	if err != nil || len(received) != 1 || received[0].ID != a.ID {
		t.Fatalf("Expected a in b's received requests, got %v (err %v)", received, err)
	}

	if err := RespondToRequest(b.ID, a.ID, "accept"); err != nil {
		t.Fatalf("RespondToRequest failed: %v", err)
	}

	// 双向都能看到对方
	if !friendIDs(t, a.ID)[b.ID] {
		t.Error("a should list b as friend")
	}
	if !friendIDs(t, b.ID)[a.ID] {
		t.Error("b should list a as friend")
	}
	if !AreFriends(a.ID, b.ID) || !AreFriends(b.ID, a.ID) {
		t.Error("AreFriends should hold in both directions")
	}
}

func TestFriendRequestRejectDeletesEdge(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "a@example.com")
	b := createTestUser(t, "b@example.com")

	if err := SendFriendRequest(a.ID, b.PublicID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if err := RespondToRequest(b.ID, a.ID, "reject"); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}

	var count int64
	db.DB.Model(&models.Friendship{}).Count(&count)
	if count != 0 {
		t.Errorf("Rejected edge must be deleted, found %d edges", count)
	}

	// 拒绝后可以重新发起
	if err := SendFriendRequest(a.ID, b.PublicID); err != nil {
		t.Errorf("Re-request after reject should succeed, got %v", err)
	}
}

func TestFriendRequestConflicts(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "a@example.com")
	b := createTestUser(t, "b@example.com")

	if err := SendFriendRequest(a.ID, a.PublicID); !errors.Is(err, ErrSelfRequest) {
		t.Errorf("Expected ErrSelfRequest, got %v", err)
	}
	if err := SendFriendRequest(a.ID, "CIN_NOBODY"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown publicId, got %v", err)
	}

	if err := SendFriendRequest(a.ID, b.PublicID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if err := SendFriendRequest(a.ID, b.PublicID); !errors.Is(err, ErrAlreadyPending) {
		t.Errorf("Expected ErrAlreadyPending on duplicate request, got %v", err)
	}

	if err := RespondToRequest(b.ID, a.ID, "accept"); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if err := SendFriendRequest(a.ID, b.PublicID); !errors.Is(err, ErrAlreadyFriends) {
		t.Errorf("Expected ErrAlreadyFriends, got %v", err)
	}
}

func TestMutualRequestAutoAccepts(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "a@example.com")
	b := createTestUser(t, "b@example.com")

	if err := SendFriendRequest(a.ID, b.PublicID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	// b 在响应前反向发起请求：意愿一致，直接成为好友
	if err := SendFriendRequest(b.ID, a.PublicID); err != nil {
		t.Fatalf("Mutual request should auto-accept, got %v", err)
	}

	if !AreFriends(a.ID, b.ID) {
		t.Error("Mutual requests should result in accepted friendship")
	}
	var count int64
	db.DB.Model(&models.Friendship{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected a single edge per pair, found %d", count)
	}
}

func TestRespondTwiceFails(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "a@example.com")
	b := createTestUser(t, "b@example.com")

	if err := SendFriendRequest(a.ID, b.PublicID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}

	// 只有接收者能处理
	if err := RespondToRequest(a.ID, b.ID, "accept"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Requester must not respond to own request, got %v", err)
	}

	if err := RespondToRequest(b.ID, a.ID, "accept"); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if err := RespondToRequest(b.ID, a.ID, "accept"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Second respond should return ErrNotFound, got %v", err)
	}
	if err := RespondToRequest(b.ID, a.ID, "dismiss"); !errors.Is(err, ErrValidation) {
		t.Errorf("Invalid action should return ErrValidation, got %v", err)
	}
}

func TestRemoveFriend(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "a@example.com")
	b := createTestUser(t, "b@example.com")
	makeFriends(t, a, b)

	if err := RemoveFriend(a.ID, b.ID); err != nil {
		t.Fatalf("RemoveFriend failed: %v", err)
	}
	if AreFriends(a.ID, b.ID) {
		t.Error("Friendship should be gone after remove")
	}
	if err := RemoveFriend(a.ID, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Removing a non-existent edge should return ErrNotFound, got %v", err)
	}

	// pending 边不能用 remove 删
	c := createTestUser(t, "c@example.com")
	if err := SendFriendRequest(a.ID, c.PublicID); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if err := RemoveFriend(a.ID, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove on pending edge should return ErrNotFound, got %v", err)
	}
}

// 无序对唯一索引由存储层兜底：同一对用户反方向的第二条边必须被拒，
// 否则并发互发首次请求会留下两条边，remove 后另一条还在。
func TestPairUniqueAcrossDirections(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "a@example.com")
	b := createTestUser(t, "b@example.com")

	if err := db.DB.Create(&models.Friendship{
		RequesterID: a.ID,
		RecipientID: b.ID,
		Status:      models.FriendshipPending,
	}).Error; err != nil {
		t.Fatalf("First edge insert failed: %v", err)
	}
	err := db.DB.Create(&models.Friendship{
		RequesterID: b.ID,
		RecipientID: a.ID,
		Status:      models.FriendshipPending,
	}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("Reverse edge for the same pair should hit the unique index, got %v", err)
	}

	var count int64
	db.DB.Model(&models.Friendship{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected a single edge per pair, got %d", count)
	}
}

func TestRemoveFriendLeavesNoEdge(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "a@example.com")
	b := createTestUser(t, "b@example.com")
	makeFriends(t, a, b)

	if err := RemoveFriend(b.ID, a.ID); err != nil {
		t.Fatalf("RemoveFriend failed: %v", err)
	}
	var count int64
	db.DB.Model(&models.Friendship{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no edges after remove, got %d", count)
	}
	if AreFriends(a.ID, b.ID) {
		t.Error("Pair should no longer be friends after remove")
	}
}
