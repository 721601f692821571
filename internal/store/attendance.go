package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

// dateOnly truncates a timestamp to its calendar day in UTC so the
// (employee, date) unique index compares equal values regardless of the
// wall clock the caller used.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RecordAttendance inserts the presence record for one employee and day.
// A second row for the same (employee, date) pair fails with
// ErrDuplicateAttendance and leaves the original untouched; callers that
// want to change a day's status must use UpdateAttendance.
func (s *Store) RecordAttendance(record *models.Attendance) error {
	if record.Status == "" {
		return fmt.Errorf("%w: status required", ErrValidation)
	}
	record.Date = dateOnly(record.Date)
	if err := s.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAttendance
		}
		return err
	}
	return nil
}

func (s *Store) UpdateAttendance(id uuid.UUID, status, notes string) (*models.Attendance, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status required", ErrValidation)
	}
	var record models.Attendance
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	record.Status = status
	record.Notes = notes
	if err := s.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) DeleteAttendance(id uuid.UUID) error {
	result := s.db.Delete(&models.Attendance{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
