package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/db"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "store_test.db")
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	return New(database)
}

func seedUser(t *testing.T, s *Store, nationalID, name, role string) *models.User {
	t.Helper()
	user := &models.User{NationalID: nationalID, Name: name, Role: role}
	require.NoError(t, s.CreateUser(user, ""))
	return user
}

func seedLeaveType(t *testing.T, s *Store, name string) *models.LeaveType {
	t.Helper()
	leaveType := &models.LeaveType{Name: name, MaxDays: 30}
	require.NoError(t, s.CreateLeaveType(leaveType))
	return leaveType
}

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}
