package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Related-entity tags for notifications.
const (
	RelatedLeaveRequest = "leave_request"
	RelatedSchedule     = "schedule"
	RelatedAttendance   = "attendance"
)

// Notification is a per-user message. RelatedType and RelatedID are a
// soft reference: nothing enforces that the referenced row still exists,
// so readers must tolerate a dangling pair.
type Notification struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:char(36);index;not null" json:"userId"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Message     string     `gorm:"size:1000;not null" json:"message"`
	IsRead      bool       `gorm:"not null;default:false" json:"isRead"`
	RelatedType string     `gorm:"size:50" json:"relatedType,omitempty"`
	RelatedID   *uuid.UUID `gorm:"type:char(36)" json:"relatedId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
