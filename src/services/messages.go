package services

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"socialnet/src/models"
	"socialnet/src/protocol"
)

// MessageService is the messaging gate: every send and every conversation
// read is authorized against the friendship graph first.
type MessageService struct {
	db       *gorm.DB
	friends  *FriendService
	dispatch Dispatcher
}

func NewMessageService(db *gorm.DB, friends *FriendService, dispatch Dispatcher) *MessageService {
	return &MessageService{db: db, friends: friends, dispatch: dispatch}
}

// ConversationSummary is one entry of the conversation list
type ConversationSummary struct {
	UserID         uint               `json:"userId"`
	Username       string             `json:"username"`
	ProfilePicture string             `json:"profilePicture"`
	LastMessage    *models.MessageDto `json:"lastMessage"`
	UnreadCount    int64              `json:"unreadCount"`
}

// Send persists a message from sender to receiverID and pushes NEW_MESSAGE
// to the receiver and MESSAGE_SENT to the sender. The pushes happen after
// the message is stored and never fail the send.
func (s *MessageService) Send(sender models.User, receiverID uint, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	var receiver models.User
	if err := s.db.First(&receiver, receiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !s.friends.AreFriends(sender.ID, receiverID) {
		return nil, ErrNotFriends
	}

	message := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiverID,
		Content:    content,
		Read:       false,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, err
	}
	message.Sender = sender

	s.dispatch.SendToUser(receiver.Email, protocol.ChatMessageEvent{
		Type:           protocol.EventNewMessage,
		Message:        message.ToDto(receiver.ID),
		SenderID:       sender.ID,
		SenderUsername: sender.Username,
	})
	s.dispatch.SendToUser(sender.Email, protocol.ChatMessageEvent{
		Type:             protocol.EventMessageSent,
		Message:          message.ToDto(sender.ID),
		ReceiverID:       receiver.ID,
		ReceiverUsername: receiver.Username,
	})

	return message, nil
}

// Conversation returns the messages between user and otherID in both
// directions, oldest first, together with the other user. Unread received
// messages are marked read as a side effect. Requires an existing
// friendship.
func (s *MessageService) Conversation(user models.User, otherID uint) ([]models.Message, *models.User, error) {
	var other models.User
	if err := s.db.First(&other, otherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	if !s.friends.AreFriends(user.ID, otherID) {
		return nil, nil, ErrNotFriends
	}

	var messages []models.Message
	err := s.db.Preload("Sender").
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND deleted = ?",
			user.ID, otherID, otherID, user.ID, false).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.MarkRead(user, otherID); err != nil {
		return nil, nil, err
	}
	for i := range messages {
		if messages[i].ReceiverID == user.ID {
			messages[i].Read = true
		}
	}

	return messages, &other, nil
}

// MarkRead flips the read flag on every unread message from senderID to the
// receiver and returns how many were flipped
func (s *MessageService) MarkRead(receiver models.User, senderID uint) (int64, error) {
	result := s.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", senderID, receiver.ID, false).
		Update("read", true)

	return result.RowsAffected, result.Error
}

// Delete soft-deletes a message. Only the sender may delete their message.
func (s *MessageService) Delete(user models.User, messageID uint) error {
	var message models.Message
	if err := s.db.First(&message, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if message.SenderID != user.ID {
		return ErrForbidden
	}

	message.Deleted = true
	return s.db.Save(&message).Error
}

// UnreadCount returns the total number of unread messages for the user
func (s *MessageService) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = ? AND deleted = ?", userID, false, false).
		Count(&count).Error

	return count, err
}

// Conversations lists one summary per friend with the last exchanged
// message and the unread count, most recent conversation first
func (s *MessageService) Conversations(user models.User) ([]ConversationSummary, error) {
	friends, err := s.friends.FriendsOf(user.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummary, 0, len(friends))
	for _, friend := range friends {
		summary := ConversationSummary{
			UserID:         friend.ID,
			Username:       friend.Username,
			ProfilePicture: friend.ProfilePicture,
		}

		var last models.Message
		err := s.db.Preload("Sender").
			Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND deleted = ?",
				user.ID, friend.ID, friend.ID, user.ID, false).
			Order("created_at DESC").
			First(&last).Error
		if err == nil {
			dto := last.ToDto(user.ID)
			summary.LastMessage = &dto
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		err = s.db.Model(&models.Message{}).
			Where("sender_id = ? AND receiver_id = ? AND read = ? AND deleted = ?",
				friend.ID, user.ID, false, false).
			Count(&summary.UnreadCount).Error
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return summaries, nil
}
