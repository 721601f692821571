package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

// CreateSchedule attaches a day-of-week assignment to an employee. The
// schema allows overlapping validity windows for the same employee on
// purpose; only the date order is checked.
func (s *Store) CreateSchedule(schedule *models.Schedule) error {
	if schedule.DayOfWeek == "" || schedule.ShiftTime == "" {
		return fmt.Errorf("%w: day of week and shift time required", ErrValidation)
	}
	if schedule.EndDate != nil && schedule.EndDate.Before(schedule.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrValidation)
	}
	var employee models.User
	if err := s.db.First(&employee, "id = ?", schedule.EmployeeID).Error; err != nil {
		return translate(err)
	}
	schedule.StartDate = dateOnly(schedule.StartDate)
	if schedule.EndDate != nil {
		end := dateOnly(*schedule.EndDate)
		schedule.EndDate = &end
	}
	return translate(s.db.Create(schedule).Error)
}

func (s *Store) UpdateSchedule(schedule *models.Schedule) error {
	if schedule.EndDate != nil && schedule.EndDate.Before(schedule.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrValidation)
	}
	return translate(s.db.Save(schedule).Error)
}

func (s *Store) GetSchedule(id uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := s.db.First(&schedule, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &schedule, nil
}

// ListSchedules returns schedules ordered by start date, optionally for
// one employee.
func (s *Store) ListSchedules(employeeID *uuid.UUID) ([]models.Schedule, error) {
	query := s.db.Order("start_date desc, day_of_week asc")
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}
	var schedules []models.Schedule
	err := query.Find(&schedules).Error
	return schedules, err
}

func (s *Store) DeleteSchedule(id uuid.UUID) error {
	result := s.db.Delete(&models.Schedule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
