package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
)

const defaultSystemName = "Halaqat Staff Management"

// GetSettings returns the singleton settings row, creating it with
// defaults on first access. Absence is a valid state that heals here.
func (s *Store) GetSettings() (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("updated_at asc").First(&setting).Error; err == nil {
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		setting = models.SystemSetting{
			SystemName:              defaultSystemName,
			PrimaryColor:            "#0d7377",
			SecondaryColor:          "#14FFEC",
			AccentColor:             "#323232",
			AttachmentRetentionDays: 60,
		}
		return tx.Create(&setting).Error
	})
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *Store) UpdateSettings(setting *models.SystemSetting) error {
	return s.db.Save(setting).Error
}
