package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

func (s *Store) CreateNotification(notification *models.Notification) error {
	if notification.Title == "" || notification.Message == "" {
		return fmt.Errorf("%w: title and message required", ErrValidation)
	}
	return s.db.Create(notification).Error
}

// ListNotifications returns a user's notifications, newest first.
func (s *Store) ListNotifications(userID uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	query := s.db.Where("user_id = ?", userID).Order("created_at desc")
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	var notifications []models.Notification
	err := query.Find(&notifications).Error
	return notifications, err
}

// MarkNotificationRead flags one of the user's own notifications as
// read. A foreign user's notification id comes back as ErrNotFound.
func (s *Store) MarkNotificationRead(id, userID uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
