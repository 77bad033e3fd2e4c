package models

import (
	"gorm.io/gorm"
)

// Friendship is a symmetric edge between two users. It is stored once per
// pair, so lookups must check both column orderings.
type Friendship struct {
	gorm.Model
	User1ID uint `json:"user1" gorm:"index:idx_friend_pair,unique"`
	User2ID uint `json:"user2" gorm:"index:idx_friend_pair,unique"`
	User1   User `json:"-" gorm:"foreignKey:User1ID"`
	User2   User `json:"-" gorm:"foreignKey:User2ID"`
}

type FriendRequest struct {
	gorm.Model
	SenderID   uint                `json:"sender" gorm:"index"`
	ReceiverID uint                `json:"receiver" gorm:"index"`
	Status     FriendRequestStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Sender     User                `json:"-" gorm:"foreignKey:SenderID"`
	Receiver   User                `json:"-" gorm:"foreignKey:ReceiverID"`
}

type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "pending"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)
