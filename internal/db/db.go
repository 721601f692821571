package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

// Open connects and bootstraps the schema. TranslateError must stay on:
// the attendance and national-id uniqueness guarantees depend on unique
// violations surfacing as gorm.ErrDuplicatedKey from the storage layer.
func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

// Migrate creates the tables and their unique/index constraints.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Schedule{},
		&models.LeaveType{},
		&models.LeaveRequest{},
		&models.Attendance{},
		&models.SystemSetting{},
		&models.Notification{},
	)
}
