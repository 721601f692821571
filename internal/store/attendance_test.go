package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

func TestRecordAttendanceDuplicateDay(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)

	original := &models.Attendance{
		EmployeeID: employee.ID,
		Date:       time.Date(2026, 3, 10, 8, 15, 0, 0, time.Local),
		Status:     models.AttendancePresent,
	}
	require.NoError(t, s.RecordAttendance(original))

	// Same calendar day at a different wall clock still collides.
	err := s.RecordAttendance(&models.Attendance{
		EmployeeID: employee.ID,
		Date:       time.Date(2026, 3, 10, 17, 45, 0, 0, time.Local),
		Status:     models.AttendanceAbsent,
	})
	require.ErrorIs(t, err, ErrDuplicateAttendance)

	records, err := s.AttendanceReport(AttendanceFilter{EmployeeID: &employee.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendancePresent, records[0].Status)
}

func TestRecordAttendanceSeparateDays(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)

	require.NoError(t, s.RecordAttendance(&models.Attendance{
		EmployeeID: employee.ID,
		Date:       day(2026, 3, 10),
		Status:     models.AttendancePresent,
	}))
	require.NoError(t, s.RecordAttendance(&models.Attendance{
		EmployeeID: employee.ID,
		Date:       day(2026, 3, 11),
		Status:     models.AttendanceAbsent,
	}))

	records, err := s.AttendanceReport(AttendanceFilter{EmployeeID: &employee.ID})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRecordAttendanceSameDayDifferentEmployees(t *testing.T) {
	s := newTestStore(t)
	first := seedUser(t, s, "1000000001", "Ali", models.RoleEmployee)
	second := seedUser(t, s, "1000000002", "Badr", models.RoleEmployee)

	require.NoError(t, s.RecordAttendance(&models.Attendance{
		EmployeeID: first.ID,
		Date:       day(2026, 3, 10),
		Status:     models.AttendancePresent,
	}))
	require.NoError(t, s.RecordAttendance(&models.Attendance{
		EmployeeID: second.ID,
		Date:       day(2026, 3, 10),
		Status:     models.AttendancePresent,
	}))
}

func TestUpdateAttendance(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)

	record := &models.Attendance{
		EmployeeID: employee.ID,
		Date:       day(2026, 3, 10),
		Status:     models.AttendancePresent,
	}
	require.NoError(t, s.RecordAttendance(record))

	updated, err := s.UpdateAttendance(record.ID, models.AttendanceOnLeave, "approved leave")
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceOnLeave, updated.Status)
	assert.Equal(t, "approved leave", updated.Notes)
}

func TestUpdateAttendanceUnknown(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateAttendance(uuid.New(), models.AttendancePresent, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAttendanceUnknown(t *testing.T) {
	s := newTestStore(t)
	err := s.DeleteAttendance(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
