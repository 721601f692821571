package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

// LeaveFilter narrows a leave report. Nil/empty fields are ignored.
type LeaveFilter struct {
	EmployeeID  *uuid.UUID
	LeaveTypeID *uuid.UUID
	Status      string
	From        *time.Time
	To          *time.Time
}

// LeaveReport returns matching requests newest first.
func (s *Store) LeaveReport(filter LeaveFilter) ([]models.LeaveRequest, error) {
	query := s.db.Model(&models.LeaveRequest{}).Order("created_at desc")
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.LeaveTypeID != nil {
		query = query.Where("leave_type_id = ?", *filter.LeaveTypeID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("start_date >= ?", dateOnly(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("end_date <= ?", dateOnly(*filter.To))
	}
	var requests []models.LeaveRequest
	err := query.Find(&requests).Error
	return requests, err
}

// AttendanceFilter narrows an attendance report.
type AttendanceFilter struct {
	EmployeeID *uuid.UUID
	Status     string
	From       *time.Time
	To         *time.Time
}

// AttendanceReport returns matching records, most recent date first.
func (s *Store) AttendanceReport(filter AttendanceFilter) ([]models.Attendance, error) {
	query := s.db.Model(&models.Attendance{}).Order("date desc")
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", dateOnly(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", dateOnly(*filter.To))
	}
	var records []models.Attendance
	err := query.Find(&records).Error
	return records, err
}

// DashboardStats are the counters on the admin landing page.
type DashboardStats struct {
	Employees     int64 `json:"employees"`
	Supervisors   int64 `json:"supervisors"`
	PendingLeaves int64 `json:"pendingLeaves"`
	PresentToday  int64 `json:"presentToday"`
}

func (s *Store) Dashboard(today time.Time) (DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleEmployee).Count(&stats.Employees).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.User{}).
		Where("role IN ?", []string{models.RoleMainSupervisor, models.RoleSubSupervisor}).
		Count(&stats.Supervisors).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.LeaveRequest{}).
		Where("status = ?", models.LeaveStatusPending).
		Count(&stats.PendingLeaves).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", dateOnly(today), models.AttendancePresent).
		Count(&stats.PresentToday).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
