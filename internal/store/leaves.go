package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

func (s *Store) CreateLeaveType(leaveType *models.LeaveType) error {
	if leaveType.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if leaveType.MaxDays < 0 {
		return fmt.Errorf("%w: max days cannot be negative", ErrValidation)
	}
	leaveType.IsActive = true
	return translate(s.db.Create(leaveType).Error)
}

func (s *Store) UpdateLeaveType(leaveType *models.LeaveType) error {
	if leaveType.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	return translate(s.db.Save(leaveType).Error)
}

// DeleteLeaveType removes a category, refusing while any leave request
// still references it. The guard and the delete share one transaction.
func (s *Store) DeleteLeaveType(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var leaveType models.LeaveType
		if err := tx.First(&leaveType, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		var refs int64
		if err := tx.Model(&models.LeaveRequest{}).Where("leave_type_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: leave type is referenced by %d requests", ErrReferentialConflict, refs)
		}
		return tx.Delete(&models.LeaveType{}, "id = ?", id).Error
	})
}

func (s *Store) GetLeaveType(id uuid.UUID) (*models.LeaveType, error) {
	var leaveType models.LeaveType
	if err := s.db.First(&leaveType, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &leaveType, nil
}

func (s *Store) ListLeaveTypes(activeOnly bool) ([]models.LeaveType, error) {
	query := s.db.Order("name asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var types []models.LeaveType
	err := query.Find(&types).Error
	return types, err
}

// LeaveDays is the inclusive day count of a request's date range.
func LeaveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// SubmitLeaveRequest files a new request in the pending state. The day
// count is always derived from the range here; whatever the caller put
// in DaysCount is overwritten.
func (s *Store) SubmitLeaveRequest(request *models.LeaveRequest) error {
	if request.EndDate.Before(request.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrValidation)
	}
	var leaveType models.LeaveType
	if err := s.db.First(&leaveType, "id = ?", request.LeaveTypeID).Error; err != nil {
		return translate(err)
	}
	request.StartDate = dateOnly(request.StartDate)
	request.EndDate = dateOnly(request.EndDate)
	request.DaysCount = LeaveDays(request.StartDate, request.EndDate)
	request.Status = models.LeaveStatusPending
	request.ReviewedBy = nil
	request.ReviewedAt = nil
	request.ReviewNotes = ""
	return translate(s.db.Create(request).Error)
}

func (s *Store) GetLeaveRequest(id uuid.UUID) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &request, nil
}

// ReviewLeaveRequest moves a request to approved or rejected, stamping
// reviewer, timestamp and notes in one atomic update, and notifies the
// requester in the same transaction. Reviews are not guarded against
// repetition: the latest call wins.
func (s *Store) ReviewLeaveRequest(id uuid.UUID, decision string, reviewerID uuid.UUID, notes string) (*models.LeaveRequest, error) {
	if decision != models.LeaveStatusApproved && decision != models.LeaveStatusRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", ErrValidation)
	}

	var request models.LeaveRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			return translate(err)
		}

		now := time.Now()
		request.Status = decision
		request.ReviewedBy = &reviewerID
		request.ReviewedAt = &now
		request.ReviewNotes = notes
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		title := "Leave request approved"
		if decision == models.LeaveStatusRejected {
			title = "Leave request rejected"
		}
		notification := models.Notification{
			UserID:      request.EmployeeID,
			Title:       title,
			Message:     fmt.Sprintf("Your leave request for %s to %s was %s", request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"), decision),
			RelatedType: models.RelatedLeaveRequest,
			RelatedID:   &request.ID,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *Store) DeleteLeaveRequest(id uuid.UUID) error {
	result := s.db.Delete(&models.LeaveRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
