package protocol

import (
	"time"

	"socialnet/src/models"
)

// EventType discriminates every payload pushed over a user's private
// channel. The set is closed: each event kind has its own struct below.
type EventType string

const (
	EventFriendRequest         EventType = "FRIEND_REQUEST"
	EventFriendRequestAccepted EventType = "FRIEND_REQUEST_ACCEPTED"
	EventFriendRequestRejected EventType = "FRIEND_REQUEST_REJECTED"
	EventNewMessage            EventType = "NEW_MESSAGE"
	EventMessageSent           EventType = "MESSAGE_SENT"
	EventChatError             EventType = "CHAT_ERROR"
	EventPong                  EventType = "PONG"
	EventConnectionTest        EventType = "CONNECTION_TEST"
	EventConnected             EventType = "CONNECTED"
)

// NotificationEvent mirrors a persisted notification record. Used for
// FRIEND_REQUEST and FRIEND_REQUEST_ACCEPTED pushes.
type NotificationEvent struct {
	Type            EventType `json:"type"`
	ID              uint      `json:"id"`
	Message         string    `json:"message"`
	Link            string    `json:"link,omitempty"`
	Read            bool      `json:"isRead"`
	CreatedAt       string    `json:"createdAt"`
	RelatedUserID   *uint     `json:"relatedUserId,omitempty"`
	RelatedEntityID *uint     `json:"relatedEntityId,omitempty"`
}

// NewNotificationEvent builds the push payload for a stored notification
func NewNotificationEvent(n *models.Notification) NotificationEvent {
	return NotificationEvent{
		Type:            EventType(n.Type),
		ID:              n.ID,
		Message:         n.Message,
		Link:            n.Link,
		Read:            n.Read,
		CreatedAt:       n.CreatedAt.Format(time.RFC3339),
		RelatedUserID:   n.RelatedUserID,
		RelatedEntityID: n.RelatedEntityID,
	}
}

// RequestRejectedEvent is pushed to the sender of a rejected friend
// request. Rejections carry no durable notification record.
type RequestRejectedEvent struct {
	Type       EventType `json:"type"`
	RequestID  uint      `json:"id"`
	RejecterID uint      `json:"rejecterId"`
	Message    string    `json:"message"`
}

// ChatMessageEvent carries a direct message. NEW_MESSAGE goes to the
// receiver, MESSAGE_SENT confirms to the sender.
type ChatMessageEvent struct {
	Type             EventType         `json:"type"`
	Message          models.MessageDto `json:"message"`
	SenderID         uint              `json:"senderId,omitempty"`
	SenderUsername   string            `json:"senderUsername,omitempty"`
	ReceiverID       uint              `json:"receiverId,omitempty"`
	ReceiverUsername string            `json:"receiverUsername,omitempty"`
}

type ChatErrorEvent struct {
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp int64     `json:"timestamp"`
}

type PongEvent struct {
	Type              EventType `json:"type"`
	Timestamp         int64     `json:"timestamp"`
	ReceivedTimestamp int64     `json:"receivedTimestamp,omitempty"`
}

type ConnectionTestEvent struct {
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	Message   string    `json:"message"`
}

// ConnectedEvent acknowledges a successful first-frame authentication
type ConnectedEvent struct {
	Type EventType      `json:"type"`
	User models.UserDto `json:"user"`
}
