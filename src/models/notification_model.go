package models

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	RecipientID     uint             `json:"recipient" gorm:"index"`
	Type            NotificationType `json:"type" gorm:"type:varchar(40)"`
	Message         string           `json:"message"`
	Link            string           `json:"link,omitempty"`
	RelatedUserID   *uint            `json:"relatedUserId,omitempty"`
	RelatedEntityID *uint            `json:"relatedEntityId,omitempty"`
	Read            bool             `json:"read" gorm:"default:false"`
}

type NotificationType string

const (
	NotificationTypeFriendRequest         NotificationType = "FRIEND_REQUEST"
	NotificationTypeFriendRequestAccepted NotificationType = "FRIEND_REQUEST_ACCEPTED"
)
