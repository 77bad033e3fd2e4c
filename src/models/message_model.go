package models

import (
	"time"

	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	SenderID   uint   `json:"sender" gorm:"index"`
	ReceiverID uint   `json:"receiver" gorm:"index"`
	Content    string `json:"content" gorm:"type:text"`
	Read       bool   `json:"read" gorm:"default:false"`
	Deleted    bool   `json:"deleted" gorm:"default:false"`
	Sender     User   `json:"-" gorm:"foreignKey:SenderID"`
	Receiver   User   `json:"-" gorm:"foreignKey:ReceiverID"`
}

type MessageDto struct {
	ID                uint      `json:"id"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"createdAt"`
	Read              bool      `json:"isRead"`
	SenderID          uint      `json:"senderId"`
	SenderUsername    string    `json:"senderUsername"`
	IsFromCurrentUser bool      `json:"isFromCurrentUser"`
}

// ToDto shapes a message for API and websocket payloads
func (m *Message) ToDto(currentUserID uint) MessageDto {
	return MessageDto{
		ID:                m.ID,
		Content:           m.Content,
		CreatedAt:         m.CreatedAt,
		Read:              m.Read,
		SenderID:          m.SenderID,
		SenderUsername:    m.Sender.Username,
		IsFromCurrentUser: m.SenderID == currentUserID,
	}
}
