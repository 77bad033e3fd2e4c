package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name           string   `json:"name"`
	Username       string   `json:"username" gorm:"uniqueIndex"`
	Email          string   `json:"email" gorm:"uniqueIndex"`
	Password       string   `json:"-"`
	Roles          []string `json:"roles" gorm:"serializer:json"`
	ProfilePicture string   `json:"profile_picture"`
	CoverPicture   string   `json:"cover_picture"`
	About          string   `json:"about"`
	Location       string   `json:"location"`
}

// MarshalJSON renames ID to _id to keep the frontend contract
func (u User) MarshalJSON() ([]byte, error) {
	type Alias User
	return json.Marshal(&struct {
		ID uint `json:"_id"`
		*Alias
	}{
		ID:    u.ID,
		Alias: (*Alias)(&u),
	})
}

type UserDto struct {
	ID             uint   `json:"_id"`
	Name           string `json:"name,omitempty"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// ToDto projects the public fields of a user for API responses
func (u *User) ToDto() UserDto {
	return UserDto{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}
