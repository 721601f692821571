package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Common attendance statuses. Status is free text so supervisors can
// record anything, these are what the dashboards count.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceOnLeave = "on_leave"
)

// Attendance is a per-day presence record. At most one row may exist per
// (employee, date) pair; the unique index is what rejects the second of
// two concurrent writers.
type Attendance struct {
	ID         uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:idx_attendance_employee_date" json:"employeeId"`
	Date       time.Time  `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	Status     string     `gorm:"size:20;not null" json:"status"`
	Notes      string     `gorm:"size:500" json:"notes,omitempty"`
	RecordedBy *uuid.UUID `gorm:"type:char(36)" json:"recordedBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
