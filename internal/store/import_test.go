package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

func TestImportEmployeesTwoStep(t *testing.T) {
	s := newTestStore(t)

	row := []string{"Ahmed Saleh", "1234567890", "evening", "16:00-18:00", "friday", "quran", "male"}

	first, err := s.ImportEmployees([][]string{row})
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Added: 1, Skipped: 0}, first)

	imported, err := s.FindByNationalID("1234567890")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Saleh", imported.Name)
	assert.Equal(t, models.RoleEmployee, imported.Role)
	assert.Equal(t, "quran", imported.Department)
	assert.True(t, imported.IsActive)

	// Re-importing the same id updates the schedule fields in place and
	// counts as skipped, never as a second account.
	row[2] = "morning"
	row[3] = "08:00-12:00"
	second, err := s.ImportEmployees([][]string{row})
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Added: 0, Skipped: 1}, second)

	reloaded, err := s.FindByNationalID("1234567890")
	require.NoError(t, err)
	assert.Equal(t, imported.ID, reloaded.ID)
	assert.Equal(t, "morning", reloaded.Period)
	assert.Equal(t, "08:00-12:00", reloaded.ShiftTime)
}

func TestImportEmployeesSkipsMalformedRows(t *testing.T) {
	s := newTestStore(t)

	rows := [][]string{
		{"", "1234567890", "evening", "16:00-18:00", "friday", "quran", "male"},
		{"Bad ID", "12345", "evening", "16:00-18:00", "friday", "quran", "male"},
		{},
		{"Valid Employee", "1111111111", "evening", "16:00-18:00", "friday", "quran", "female"},
	}

	result, err := s.ImportEmployees(rows)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Added: 1, Skipped: 0}, result)

	users, err := s.ListUsers("", false)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Valid Employee", users[0].Name)
	assert.Equal(t, models.GenderFemale, users[0].Gender)
}

func TestImportEmployeesDefaults(t *testing.T) {
	s := newTestStore(t)

	// Missing department and gender fall back to the standard values,
	// short rows are padded with blanks.
	result, err := s.ImportEmployees([][]string{
		{"Ahmed", "1234567890", "evening", "16:00-18:00", "friday"},
	})
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Added: 1}, result)

	imported, err := s.FindByNationalID("1234567890")
	require.NoError(t, err)
	assert.Equal(t, "halaqat", imported.Department)
	assert.Equal(t, models.GenderMale, imported.Gender)
}

func TestImportEmployeesBatchRollsBackOnFailure(t *testing.T) {
	s := newTestStore(t)

	// Fail the insert of one marked row mid-batch.
	err := s.DB().Callback().Create().Before("gorm:create").Register("fail_marked_insert", func(db *gorm.DB) {
		if user, ok := db.Statement.Dest.(*models.User); ok && user.Name == "Marked" {
			db.AddError(errors.New("storage failure"))
		}
	})
	require.NoError(t, err)

	result, err := s.ImportEmployees([][]string{
		{"Ahmed", "1000000001", "evening", "16:00-18:00", "friday", "quran", "male"},
		{"Marked", "1000000002", "evening", "16:00-18:00", "friday", "quran", "male"},
	})
	require.Error(t, err)
	assert.Equal(t, ImportResult{}, result)

	// The first row's insert did not survive: the batch is one
	// transaction, all-or-nothing.
	var count int64
	require.NoError(t, s.DB().Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
	_, err = s.FindByNationalID("1000000001")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImportedEmployeeFirstCredential(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ImportEmployees([][]string{
		{"Ahmed", "1234567890", "evening", "16:00-18:00", "friday", "quran", "male"},
	})
	require.NoError(t, err)

	// The national id doubles as the first password for imported staff.
	user, err := s.VerifyCredentials("1234567890", "1234567890")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", user.Name)
}
