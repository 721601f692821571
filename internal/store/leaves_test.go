package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

func TestLeaveDays(t *testing.T) {
	assert.Equal(t, 1, LeaveDays(day(2026, 3, 10), day(2026, 3, 10)))
	assert.Equal(t, 3, LeaveDays(day(2026, 3, 10), day(2026, 3, 12)))
	assert.Equal(t, 31, LeaveDays(day(2026, 1, 1), day(2026, 1, 31)))
}

func TestSubmitLeaveRequestDerivesDayCount(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)
	leaveType := seedLeaveType(t, s, "annual")

	request := &models.LeaveRequest{
		EmployeeID:  employee.ID,
		LeaveTypeID: leaveType.ID,
		StartDate:   day(2026, 3, 10),
		EndDate:     day(2026, 3, 12),
		DaysCount:   99,
		Status:      models.LeaveStatusApproved,
	}
	require.NoError(t, s.SubmitLeaveRequest(request))

	// Whatever the caller put in is overwritten; new requests always
	// start pending.
	assert.Equal(t, 3, request.DaysCount)
	assert.Equal(t, models.LeaveStatusPending, request.Status)
	assert.Nil(t, request.ReviewedBy)
}

func TestSubmitLeaveRequestEndBeforeStart(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)
	leaveType := seedLeaveType(t, s, "annual")

	err := s.SubmitLeaveRequest(&models.LeaveRequest{
		EmployeeID:  employee.ID,
		LeaveTypeID: leaveType.ID,
		StartDate:   day(2026, 3, 12),
		EndDate:     day(2026, 3, 10),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitLeaveRequestUnknownType(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)

	err := s.SubmitLeaveRequest(&models.LeaveRequest{
		EmployeeID:  employee.ID,
		LeaveTypeID: uuid.New(),
		StartDate:   day(2026, 3, 10),
		EndDate:     day(2026, 3, 12),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewLeaveRequestLatestWins(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)
	firstReviewer := seedUser(t, s, "1000000001", "Supervisor A", models.RoleMainSupervisor)
	secondReviewer := seedUser(t, s, "1000000002", "Supervisor B", models.RoleSubSupervisor)
	leaveType := seedLeaveType(t, s, "annual")

	request := &models.LeaveRequest{
		EmployeeID:  employee.ID,
		LeaveTypeID: leaveType.ID,
		StartDate:   day(2026, 3, 10),
		EndDate:     day(2026, 3, 12),
	}
	require.NoError(t, s.SubmitLeaveRequest(request))

	_, err := s.ReviewLeaveRequest(request.ID, models.LeaveStatusApproved, firstReviewer.ID, "fine")
	require.NoError(t, err)

	reviewed, err := s.ReviewLeaveRequest(request.ID, models.LeaveStatusRejected, secondReviewer.ID, "coverage gap")
	require.NoError(t, err)

	assert.Equal(t, models.LeaveStatusRejected, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, secondReviewer.ID, *reviewed.ReviewedBy)
	assert.Equal(t, "coverage gap", reviewed.ReviewNotes)

	// The requester is notified on every review.
	notifications, err := s.ListNotifications(employee.ID, false)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestReviewLeaveRequestLatestWinsReversedOrder(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)
	firstReviewer := seedUser(t, s, "1000000001", "Supervisor A", models.RoleMainSupervisor)
	secondReviewer := seedUser(t, s, "1000000002", "Supervisor B", models.RoleSubSupervisor)
	leaveType := seedLeaveType(t, s, "annual")

	request := &models.LeaveRequest{
		EmployeeID:  employee.ID,
		LeaveTypeID: leaveType.ID,
		StartDate:   day(2026, 3, 10),
		EndDate:     day(2026, 3, 12),
	}
	require.NoError(t, s.SubmitLeaveRequest(request))

	_, err := s.ReviewLeaveRequest(request.ID, models.LeaveStatusRejected, firstReviewer.ID, "coverage gap")
	require.NoError(t, err)

	// A rejection can be overturned the same way an approval can.
	reviewed, err := s.ReviewLeaveRequest(request.ID, models.LeaveStatusApproved, secondReviewer.ID, "resolved")
	require.NoError(t, err)

	assert.Equal(t, models.LeaveStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, secondReviewer.ID, *reviewed.ReviewedBy)
	assert.Equal(t, "resolved", reviewed.ReviewNotes)
}

func TestReviewLeaveRequestInvalidDecision(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)
	reviewer := seedUser(t, s, "1000000001", "Supervisor", models.RoleMainSupervisor)
	leaveType := seedLeaveType(t, s, "annual")

	request := &models.LeaveRequest{
		EmployeeID:  employee.ID,
		LeaveTypeID: leaveType.ID,
		StartDate:   day(2026, 3, 10),
		EndDate:     day(2026, 3, 12),
	}
	require.NoError(t, s.SubmitLeaveRequest(request))

	_, err := s.ReviewLeaveRequest(request.ID, "cancelled", reviewer.ID, "")
	assert.ErrorIs(t, err, ErrValidation)

	reloaded, err := s.GetLeaveRequest(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusPending, reloaded.Status)
}

func TestCreateLeaveTypeDuplicateName(t *testing.T) {
	s := newTestStore(t)
	seedLeaveType(t, s, "annual")

	err := s.CreateLeaveType(&models.LeaveType{Name: "annual", MaxDays: 10})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	types, err := s.ListLeaveTypes(false)
	require.NoError(t, err)
	assert.Len(t, types, 1)
}

func TestDeleteLeaveTypeReferenced(t *testing.T) {
	s := newTestStore(t)
	employee := seedUser(t, s, "1234567890", "Ahmed", models.RoleEmployee)
	leaveType := seedLeaveType(t, s, "annual")

	request := &models.LeaveRequest{
		EmployeeID:  employee.ID,
		LeaveTypeID: leaveType.ID,
		StartDate:   day(2026, 3, 10),
		EndDate:     day(2026, 3, 12),
	}
	require.NoError(t, s.SubmitLeaveRequest(request))

	err := s.DeleteLeaveType(leaveType.ID)
	require.ErrorIs(t, err, ErrReferentialConflict)
	_, err = s.GetLeaveType(leaveType.ID)
	require.NoError(t, err)

	// Once the last reference is gone the delete goes through.
	require.NoError(t, s.DeleteLeaveRequest(request.ID))
	require.NoError(t, s.DeleteLeaveType(leaveType.ID))
	_, err = s.GetLeaveType(leaveType.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLeaveTypeUnknown(t *testing.T) {
	s := newTestStore(t)
	err := s.DeleteLeaveType(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
