package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

func TestLeaveReportFilters(t *testing.T) {
	s := newTestStore(t)
	first := seedUser(t, s, "1000000001", "Ali", models.RoleEmployee)
	second := seedUser(t, s, "1000000002", "Badr", models.RoleEmployee)
	reviewer := seedUser(t, s, "1000000003", "Supervisor", models.RoleMainSupervisor)
	annual := seedLeaveType(t, s, "annual")
	sick := seedLeaveType(t, s, "sick")

	approved := &models.LeaveRequest{
		EmployeeID:  first.ID,
		LeaveTypeID: annual.ID,
		StartDate:   day(2026, 3, 1),
		EndDate:     day(2026, 3, 5),
	}
	require.NoError(t, s.SubmitLeaveRequest(approved))
	_, err := s.ReviewLeaveRequest(approved.ID, models.LeaveStatusApproved, reviewer.ID, "")
	require.NoError(t, err)

	require.NoError(t, s.SubmitLeaveRequest(&models.LeaveRequest{
		EmployeeID:  second.ID,
		LeaveTypeID: sick.ID,
		StartDate:   day(2026, 4, 10),
		EndDate:     day(2026, 4, 11),
	}))

	byEmployee, err := s.LeaveReport(LeaveFilter{EmployeeID: &first.ID})
	require.NoError(t, err)
	require.Len(t, byEmployee, 1)
	assert.Equal(t, annual.ID, byEmployee[0].LeaveTypeID)

	byStatus, err := s.LeaveReport(LeaveFilter{Status: models.LeaveStatusPending})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, second.ID, byStatus[0].EmployeeID)

	from := day(2026, 4, 1)
	byDate, err := s.LeaveReport(LeaveFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, sick.ID, byDate[0].LeaveTypeID)
}

func TestAttendanceReportFilters(t *testing.T) {
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

	byStatus, err := s.AttendanceReport(AttendanceFilter{Status: models.AttendanceAbsent})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)

	to := day(2026, 3, 10)
	byDate, err := s.AttendanceReport(AttendanceFilter{To: &to})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, models.AttendancePresent, byDate[0].Status)
}

func TestDashboard(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1000000001", "Ali", models.RoleEmployee)
	seedUser(t, s, "1000000002", "Badr", models.RoleEmployee)
	seedUser(t, s, "1000000003", "Supervisor", models.RoleMainSupervisor)
	seedUser(t, s, "1000000004", "Admin", models.RoleMainAdmin)
	annual := seedLeaveType(t, s, "annual")

	require.NoError(t, s.SubmitLeaveRequest(&models.LeaveRequest{
		EmployeeID:  employee.ID,
		LeaveTypeID: annual.ID,
		StartDate:   day(2026, 5, 1),
		EndDate:     day(2026, 5, 2),
	}))

	today := day(2026, 3, 10)
	require.NoError(t, s.RecordAttendance(&models.Attendance{
		EmployeeID: employee.ID,
		Date:       today,
		Status:     models.AttendancePresent,
	}))

	stats, err := s.Dashboard(today)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Employees)
	assert.EqualValues(t, 1, stats.Supervisors)
	assert.EqualValues(t, 1, stats.PendingLeaves)
	assert.EqualValues(t, 1, stats.PresentToday)
}
