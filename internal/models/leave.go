package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Leave request statuses. A request starts pending and is moved to
// approved or rejected by a review action.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveType is a leave category (annual, sick, ...) with its policy
// parameters. It cannot be deleted while any LeaveRequest references it.
type LeaveType struct {
	ID                 uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name               string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	MaxDays            int       `gorm:"not null" json:"maxDays"`
	RequiresAttachment bool      `gorm:"not null;default:false" json:"requiresAttachment"`
	IsActive           bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (t *LeaveType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// LeaveRequest is a single leave application by an employee.
type LeaveRequest struct {
	ID             uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID     uuid.UUID  `gorm:"type:char(36);index;not null" json:"employeeId"`
	LeaveTypeID    uuid.UUID  `gorm:"type:char(36);index;not null" json:"leaveTypeId"`
	StartDate      time.Time  `gorm:"type:date;index;not null" json:"startDate"`
	EndDate        time.Time  `gorm:"type:date;index;not null" json:"endDate"`
	DaysCount      int        `gorm:"not null" json:"daysCount"`
	Reason         string     `gorm:"size:500" json:"reason"`
	AttachmentPath string     `gorm:"size:500" json:"attachmentPath,omitempty"`
	Status         string     `gorm:"size:20;index;not null;default:pending" json:"status"`
	ReviewedBy     *uuid.UUID `gorm:"type:char(36)" json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time `json:"reviewedAt,omitempty"`
	ReviewNotes    string     `gorm:"size:500" json:"reviewNotes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func (r *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
