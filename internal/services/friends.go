package services

import (
	"errors"
	"time"
	"xinquan/internal/db"
	"xinquan/internal/models"
	"xinquan/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate 行级锁，保证同一对用户上的并发变更串行化。
// sqlite（测试环境）不支持 SELECT ... FOR UPDATE，事务本身已足够。
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// pairEdge 按规范对列查询两用户间的边，不存在返回 nil
func pairEdge(tx *gorm.DB, a, b uint) (*models.Friendship, error) {
	low, high := models.CanonicalPair(a, b)
	var edge models.Friendship
	err := lockForUpdate(tx).
		Where("pair_low_id = ? AND pair_high_id = ?", low, high).
		First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// SendFriendRequest 按公开 ID 发起好友请求。
// 对方已先发过待处理请求时视为双方意愿一致，直接接受成为好友，
// 不会给同一对用户创建第二条边。
func SendFriendRequest(fromID uint, targetPublicID string) error {
	var target models.User
	err := db.DB.Where("public_id = ?", utils.NormalizePublicID(targetPublicID)).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if target.ID == fromID {
		return ErrSelfRequest
	}

	err = sendRequestTx(fromID, target.ID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 两个方向并发首次插入时，后到的撞 idx_pair 唯一索引。
		// 此时边已存在，重走一遍进入已有边分支（含互发自动接受）。
		err = sendRequestTx(fromID, target.ID)
	}
	return err
}

func sendRequestTx(fromID, targetID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		edge, err := pairEdge(tx, fromID, targetID)
		if err != nil {
			return err
		}
		if edge == nil {
			return tx.Create(&models.Friendship{
				RequesterID: fromID,
				RecipientID: targetID,
				Status:      models.FriendshipPending,
			}).Error
		}
		switch {
		case edge.Status == models.FriendshipAccepted:
			return ErrAlreadyFriends
		case edge.RequesterID == fromID:
			return ErrAlreadyPending
		default:
			// 互发请求，自动接受
			now := time.Now()
			return tx.Model(edge).Updates(map[string]interface{}{
				"status":       models.FriendshipAccepted,
				"responded_at": &now,
			}).Error
		}
	})
}

// RespondToRequest 处理收到的好友请求，仅允许 pending 边的接收者操作。
// 边已被处理或不存在时返回 ErrNotFound，调用方可视为已处理。
func RespondToRequest(userID, requesterID uint, action string) error {
	if action != "accept" && action != "reject" {
		return validationError("action must be accept or reject")
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var edge models.Friendship
		err := lockForUpdate(tx).
			Where("requester_id = ? AND recipient_id = ? AND status = ?", requesterID, userID, models.FriendshipPending).
			First(&edge).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if action == "accept" {
			now := time.Now()
			return tx.Model(&edge).Updates(map[string]interface{}{
				"status":       models.FriendshipAccepted,
				"responded_at": &now,
			}).Error
		}
		// reject 直接删边
		return tx.Delete(&edge).Error
	})
}

// RemoveFriend 解除好友关系，仅作用于 accepted 边
func RemoveFriend(userID, friendID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		edge, err := pairEdge(tx, userID, friendID)
		if err != nil {
			return err
		}
		if edge == nil || edge.Status != models.FriendshipAccepted {
			return ErrNotFound
		}
		return tx.Delete(edge).Error
	})
}

// ListFriends 返回全部已接受的好友
func ListFriends(userID uint) ([]models.User, error) {
	var edges []models.Friendship
	err := db.DB.
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?", userID, userID, models.FriendshipAccepted).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(edges))
	for _, e := range edges {
		if e.RequesterID == userID {
			ids = append(ids, e.RecipientID)
		} else {
			ids = append(ids, e.RequesterID)
		}
	}

	users := make([]models.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	err = db.DB.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// ListPendingRequests 返回待处理请求，拆分为我发出的和我收到的
func ListPendingRequests(userID uint) (sent, received []models.User, err error) {
	sent = make([]models.User, 0)
	received = make([]models.User, 0)

	var edges []models.Friendship
	err = db.DB.
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?", userID, userID, models.FriendshipPending).
		Find(&edges).Error
	if err != nil {
		return nil, nil, err
	}

	sentIDs := make([]uint, 0)
	receivedIDs := make([]uint, 0)
	for _, e := range edges {
		if e.RequesterID == userID {
			sentIDs = append(sentIDs, e.RecipientID)
		} else {
			receivedIDs = append(receivedIDs, e.RequesterID)
		}
	}
	if len(sentIDs) > 0 {
		if err = db.DB.Where("id IN ?", sentIDs).Find(&sent).Error; err != nil {
			return nil, nil, err
		}
	}
	if len(receivedIDs) > 0 {
		if err = db.DB.Where("id IN ?", receivedIDs).Find(&received).Error; err != nil {
			return nil, nil, err
		}
	}
	return sent, received, nil
}

// AreFriends 判断两用户间是否存在 accepted 边
func AreFriends(a, b uint) bool {
	if a == b {
		return false
	}
	low, high := models.CanonicalPair(a, b)
	var count int64
	db.DB.Model(&models.Friendship{}).
		Where("pair_low_id = ? AND pair_high_id = ? AND status = ?", low, high, models.FriendshipAccepted).
		Count(&count)
	return count > 0
}

// FriendCount 好友数量
func FriendCount(userID uint) int64 {
	var count int64
	db.DB.Model(&models.Friendship{}).
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?", userID, userID, models.FriendshipAccepted).
		Count(&count)
	return count
}
