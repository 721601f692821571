package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a recurring work assignment for one employee. Rows for the
// same employee may overlap in time; any overlap policy belongs to the
// route layer, not the schema.
type Schedule struct {
	ID         uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID uuid.UUID  `gorm:"type:char(36);index;not null" json:"employeeId"`
	DayOfWeek  string     `gorm:"size:20;not null" json:"dayOfWeek"`
	ShiftTime  string     `gorm:"size:50;not null" json:"shiftTime"`
	IsRestDay  bool       `gorm:"not null;default:false" json:"isRestDay"`
	StartDate  time.Time  `gorm:"type:date;not null" json:"startDate"`
	EndDate    *time.Time `gorm:"type:date" json:"endDate,omitempty"`
	CreatedBy  *uuid.UUID `gorm:"type:char(36)" json:"createdBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
