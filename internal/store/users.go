package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/utils"
)

const nationalIDLength = 10

// ValidateNationalID checks the fixed-length numeric form of the natural
// key before it ever reaches the unique index.
func ValidateNationalID(nationalID string) error {
	if len(nationalID) != nationalIDLength {
		return fmt.Errorf("%w: national id must be %d digits", ErrValidation, nationalIDLength)
	}
	for _, r := range nationalID {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: national id must be numeric", ErrValidation)
		}
	}
	return nil
}

// CreateUser inserts a new account. An empty password defaults to the
// national id, matching how bulk-imported employees receive their first
// credential. Fails with ErrDuplicateKey when the national id exists.
func (s *Store) CreateUser(user *models.User, password string) error {
	if err := ValidateNationalID(user.NationalID); err != nil {
		return err
	}
	if user.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if user.Role == "" {
		user.Role = models.RoleEmployee
	}
	if user.Gender == "" {
		user.Gender = models.GenderMale
	}
	user.IsActive = true

	if password == "" {
		password = user.NationalID
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	return translate(s.db.Create(user).Error)
}

func (s *Store) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByNationalID returns the single account holding the given national
// id. Used for login and for duplicate prevention.
func (s *Store) FindByNationalID(nationalID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "national_id = ?", nationalID).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// VerifyCredentials checks a national id + password pair. An account
// with no stored hash never verifies. The same ErrNotFound comes back
// for an unknown id and a wrong password.
func (s *Store) VerifyCredentials(nationalID, password string) (*models.User, error) {
	user, err := s.FindByNationalID(nationalID)
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == "" || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *Store) UpdateUser(user *models.User) error {
	if err := ValidateNationalID(user.NationalID); err != nil {
		return err
	}
	var existing models.User
	if err := s.db.Where("national_id = ? AND id <> ?", user.NationalID, user.ID).First(&existing).Error; err == nil {
		return fmt.Errorf("%w: national id already registered", ErrDuplicateKey)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return translate(s.db.Save(user).Error)
}

func (s *Store) SetPassword(id uuid.UUID, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	result := s.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateUser soft-disables an account; rows are never hard-deleted
// outside the explicit cascade paths.
func (s *Store) DeactivateUser(id uuid.UUID) error {
	result := s.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignSupervisor points each listed account at the given supervisor,
// or clears the reference when supervisorID is nil. No cycle detection
// is performed.
func (s *Store) AssignSupervisor(employeeIDs []uuid.UUID, supervisorID *uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if supervisorID != nil {
			var supervisor models.User
			if err := tx.First(&supervisor, "id = ?", *supervisorID).Error; err != nil {
				return translate(err)
			}
		}
		return tx.Model(&models.User{}).
			Where("id IN ?", employeeIDs).
			Update("supervisor_id", supervisorID).Error
	})
}

// Subordinates lists the accounts supervised by the given account.
func (s *Store) Subordinates(supervisorID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := s.db.Where("supervisor_id = ?", supervisorID).Order("name asc").Find(&users).Error
	return users, err
}

// ListUsers returns accounts ordered by name, optionally filtered by
// role and restricted to active accounts.
func (s *Store) ListUsers(role string, activeOnly bool) ([]models.User, error) {
	query := s.db.Order("name asc")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var users []models.User
	err := query.Find(&users).Error
	return users, err
}

// ListSupervisors returns main and sub supervisors.
func (s *Store) ListSupervisors() ([]models.User, error) {
	var users []models.User
	err := s.db.Where("role IN ?", []string{models.RoleMainSupervisor, models.RoleSubSupervisor}).
		Order("name asc").Find(&users).Error
	return users, err
}

// DeleteUserCascade removes an account and everything it owns. The
// dependent tables go first, then the account, all inside one
// transaction so a partial cascade can never be observed.
func (s *Store) DeleteUserCascade(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		return deleteUserDependents(tx, id)
	})
}

// DeleteEmployeesCascade removes every employee account and all their
// dependent rows in a single transaction, returning how many accounts
// went away. Supervisor and admin accounts are untouched.
func (s *Store) DeleteEmployeesCascade() (int, error) {
	deleted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var employees []models.User
		if err := tx.Where("role = ?", models.RoleEmployee).Find(&employees).Error; err != nil {
			return err
		}
		for _, employee := range employees {
			if err := deleteUserDependents(tx, employee.ID); err != nil {
				return err
			}
		}
		deleted = len(employees)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func deleteUserDependents(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&models.Attendance{}, "employee_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.LeaveRequest{}, "employee_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Schedule{}, "employee_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Notification{}, "user_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.RefreshToken{}, "user_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&models.User{}, "id = ?", id).Error
}
