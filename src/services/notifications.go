package services

import (
	"errors"

	"gorm.io/gorm"

	"socialnet/src/models"
)

// NotificationService owns durable notification records. Records are created
// by event producers and only their target user may mutate them.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Create persists a notification for the recipient
func (s *NotificationService) Create(recipientID uint, typ models.NotificationType, message, link string, relatedUserID, relatedEntityID *uint) (*models.Notification, error) {
	notification := &models.Notification{
		RecipientID:     recipientID,
		Type:            typ,
		Message:         message,
		Link:            link,
		RelatedUserID:   relatedUserID,
		RelatedEntityID: relatedEntityID,
	}

	if err := s.db.Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

// ForUser returns the user's notifications, newest first
func (s *NotificationService) ForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error

	return notifications, err
}

// MarkRead flips the read flag. Only the target user may do this.
func (s *NotificationService) MarkRead(user models.User, notificationID uint) (*models.Notification, error) {
	var notification models.Notification
	err := s.db.First(&notification, notificationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if notification.RecipientID != user.ID {
		return nil, ErrNotFound
	}

	notification.Read = true
	if err := s.db.Save(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// UnreadCount returns how many unread notifications the user has
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Count(&count).Error

	return count, err
}

// Delete removes a notification. Only the target user may do this.
func (s *NotificationService) Delete(user models.User, notificationID uint) error {
	result := s.db.Where("id = ? AND recipient_id = ?", notificationID, user.ID).
		Delete(&models.Notification{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
