package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"socialnet/src/models"
	"socialnet/src/protocol"
)

// FriendService maintains the symmetric friendship graph and runs the
// friend-request state machine (pending -> accepted/rejected/cancelled).
//
// The check-then-act sequences here (duplicate-pending check before create,
// friendship check before messaging) are not transactional; concurrent
// duplicates are an accepted weak-consistency boundary.
type FriendService struct {
	db            *gorm.DB
	notifications *NotificationService
	dispatch      Dispatcher
}

func NewFriendService(db *gorm.DB, notifications *NotificationService, dispatch Dispatcher) *FriendService {
	return &FriendService{db: db, notifications: notifications, dispatch: dispatch}
}

// AreFriends reports whether a friendship edge exists between the two users.
// Edges are stored once per pair, so both orderings are checked.
func (s *FriendService) AreFriends(userA, userB uint) bool {
	var edge models.Friendship
	err := s.db.Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
		userA, userB, userB, userA).
		First(&edge).Error

	return err == nil
}

// Befriend creates the friendship edge if absent. Idempotent. The pair is
// stored lower id first so the unique index rejects a reversed duplicate.
func (s *FriendService) Befriend(userA, userB uint) error {
	if userA == userB {
		return ErrConflict
	}
	if s.AreFriends(userA, userB) {
		return nil
	}
	if userB < userA {
		userA, userB = userB, userA
	}
	return s.db.Create(&models.Friendship{User1ID: userA, User2ID: userB}).Error
}

// Unfriend removes the friendship edge between the two users
func (s *FriendService) Unfriend(userID, otherID uint) error {
	result := s.db.Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
		userID, otherID, otherID, userID).
		Delete(&models.Friendship{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FriendsOf returns every user connected to userID
func (s *FriendService) FriendsOf(userID uint) ([]models.User, error) {
	var edges []models.Friendship
	err := s.db.Preload("User1").Preload("User2").
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	friends := make([]models.User, 0, len(edges))
	for _, edge := range edges {
		if edge.User1ID == userID {
			friends = append(friends, edge.User2)
		} else {
			friends = append(friends, edge.User1)
		}
	}
	return friends, nil
}

// SendRequest creates a pending friend request from sender to receiverID,
// persists a notification for the receiver and pushes a FRIEND_REQUEST event
// to their channel if connected
func (s *FriendService) SendRequest(sender models.User, receiverID uint) (*models.FriendRequest, error) {
	if sender.ID == receiverID {
		return nil, ErrConflict
	}

	var receiver models.User
	if err := s.db.First(&receiver, receiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.AreFriends(sender.ID, receiverID) {
		return nil, ErrConflict
	}

	var pending models.FriendRequest
	err := s.db.Where("sender_id = ? AND receiver_id = ? AND status = ?",
		sender.ID, receiverID, models.FriendRequestStatusPending).
		First(&pending).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	request := &models.FriendRequest{
		SenderID:   sender.ID,
		ReceiverID: receiverID,
		Status:     models.FriendRequestStatusPending,
	}
	if err := s.db.Create(request).Error; err != nil {
		return nil, err
	}

	s.notify(receiver, models.NotificationTypeFriendRequest,
		sender.Username+" sent you a friend request", "/friend/requests",
		sender.ID, request.ID)

	return request, nil
}

// Accept transitions a pending request to accepted and creates the
// friendship edge. Only the receiver of the request may accept it.
func (s *FriendService) Accept(receiver models.User, requestID uint) error {
	var request models.FriendRequest
	err := s.db.Preload("Sender").First(&request, requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if request.ReceiverID != receiver.ID {
		return ErrForbidden
	}
	if request.Status != models.FriendRequestStatusPending {
		return ErrInvalidState
	}

	request.Status = models.FriendRequestStatusAccepted
	if err := s.db.Save(&request).Error; err != nil {
		return err
	}

	if err := s.Befriend(request.SenderID, request.ReceiverID); err != nil {
		return err
	}

	s.notify(request.Sender, models.NotificationTypeFriendRequestAccepted,
		receiver.Username+" accepted your friend request", "/friend",
		receiver.ID, request.ID)

	return nil
}

// Reject transitions a pending request to rejected. Only the receiver of the
// request may reject it. Rejections push an event but store no notification.
func (s *FriendService) Reject(receiver models.User, requestID uint) error {
	var request models.FriendRequest
	err := s.db.Preload("Sender").First(&request, requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if request.ReceiverID != receiver.ID {
		return ErrForbidden
	}
	if request.Status != models.FriendRequestStatusPending {
		return ErrInvalidState
	}

	request.Status = models.FriendRequestStatusRejected
	if err := s.db.Save(&request).Error; err != nil {
		return err
	}

	s.dispatch.SendToUser(request.Sender.Email, protocol.RequestRejectedEvent{
		Type:       protocol.EventFriendRequestRejected,
		RequestID:  request.ID,
		RejecterID: receiver.ID,
		Message:    "Your friend request was rejected",
	})

	return nil
}

// Cancel deletes a request. Only the sender may cancel, and only while the
// request is still pending.
func (s *FriendService) Cancel(sender models.User, requestID uint) error {
	var request models.FriendRequest
	err := s.db.First(&request, requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if request.SenderID != sender.ID {
		return ErrForbidden
	}
	if request.Status != models.FriendRequestStatusPending {
		return ErrInvalidState
	}

	return s.db.Delete(&request).Error
}

// SentRequests returns every request the user has sent, newest first
func (s *FriendService) SentRequests(senderID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := s.db.Preload("Receiver").
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		Find(&requests).Error

	return requests, err
}

// ReceivedRequests returns the user's pending incoming requests, newest first
func (s *FriendService) ReceivedRequests(receiverID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := s.db.Preload("Sender").
		Where("receiver_id = ? AND status = ?", receiverID, models.FriendRequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error

	return requests, err
}

// notify persists the notification record, then pushes it to the target's
// channel. The push is best-effort; a failed record write is logged and the
// push skipped, but the triggering action has already succeeded.
func (s *FriendService) notify(target models.User, typ models.NotificationType, message, link string, relatedUserID, relatedEntityID uint) {
	notification, err := s.notifications.Create(target.ID, typ, message, link, &relatedUserID, &relatedEntityID)
	if err != nil {
		log.Printf("Error creating notification: %v", err)
		return
	}
	s.dispatch.SendToUser(target.Email, protocol.NewNotificationEvent(notification))
}
