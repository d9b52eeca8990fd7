package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
)

type NotificationService struct {
	DB     *gorm.DB
	Events EventPublisher
}

func NewNotificationService(db *gorm.DB, events EventPublisher) *NotificationService {
	return &NotificationService{DB: db, Events: events}
}

// Create stores a notification for the user and pushes it to any live
// connections.
func (s *NotificationService) Create(message, notifType, username string) (*models.Notification, error) {
	notification, err := s.CreateInTx(s.DB, message, notifType, username)
	if err != nil {
		return nil, err
	}
	s.publish(notification)
	return notification, nil
}

// CreateInTx stores the notification through the given handle so callers can
// make it part of a larger transaction. No push happens here; publish after
// the transaction commits.
func (s *NotificationService) CreateInTx(tx *gorm.DB, message, notifType, username string) (*models.Notification, error) {
	var count int64
	tx.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count == 0 {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	notification := &models.Notification{
		Message:      message,
		Type:         notifType,
		IsRead:       false,
		Timestamp:    time.Now(),
		UserUsername: username,
	}
	if err := tx.Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

// GetForUser lists the user's notifications newest first.
func (s *NotificationService) GetForUser(username string) ([]models.Notification, error) {
	var count int64
	s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count == 0 {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	var notifications []models.Notification
	err := s.DB.Where("user_username = ?", username).
		Order("timestamp desc").
		Find(&notifications).Error
	return notifications, err
}

// MarkAllRead flips every notification of the user to read in one batch.
func (s *NotificationService) MarkAllRead(username string) error {
	err := s.DB.Model(&models.Notification{}).
		Where("user_username = ?", username).
		Update("is_read", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *NotificationService) publish(notification *models.Notification) {
	if s.Events == nil {
		return
	}
	s.Events.PublishToUser(notification.UserUsername, map[string]interface{}{
		"type":         "notification",
		"notification": notification,
	})
}
