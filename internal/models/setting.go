package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemSetting is the singleton configuration row: branding, colors,
// logo path and attachment retention. It is lazily created on first
// read, absence is a valid state.
type SystemSetting struct {
	ID                      uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	SystemName              string    `gorm:"size:200;not null;default:''" json:"systemName"`
	PrimaryColor            string    `gorm:"size:20;not null;default:'#0d7377'" json:"primaryColor"`
	SecondaryColor          string    `gorm:"size:20;not null;default:'#14FFEC'" json:"secondaryColor"`
	AccentColor             string    `gorm:"size:20;not null;default:'#323232'" json:"accentColor"`
	AttachmentRetentionDays int       `gorm:"not null;default:60" json:"attachmentRetentionDays"`
	LogoPath                string    `gorm:"size:500" json:"logoPath,omitempty"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

func (s *SystemSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
