package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles understood by the system. Role only gates what the route layer
// permits; the data model does not constrain it further.
const (
	RoleEmployee       = "employee"
	RoleMainSupervisor = "main_supervisor"
	RoleSubSupervisor  = "sub_supervisor"
	RoleSubAdmin       = "sub_admin"
	RoleMainAdmin      = "main_admin"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User is any person with system access: employee, supervisor or admin.
// NationalID is the natural key used for login and duplicate prevention.
type User struct {
	ID           uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	NationalID   string     `gorm:"size:10;uniqueIndex;not null" json:"nationalId"`
	Name         string     `gorm:"size:120;not null" json:"name"`
	PasswordHash string     `gorm:"size:255" json:"-"`
	Role         string     `gorm:"size:50;not null;default:employee" json:"role"`
	Gender       string     `gorm:"size:10;not null;default:male" json:"gender"`
	Department   string     `gorm:"size:120" json:"department"`
	Period       string     `gorm:"size:50" json:"period"`
	ShiftTime    string     `gorm:"size:50" json:"shiftTime"`
	RestDays     string     `gorm:"size:120" json:"restDays"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	SupervisorID *uuid.UUID `gorm:"type:char(36);index" json:"supervisorId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func IsSupervisorRole(role string) bool {
	return role == RoleMainSupervisor || role == RoleSubSupervisor
}

func IsAdminRole(role string) bool {
	return role == RoleMainAdmin || role == RoleSubAdmin
}
