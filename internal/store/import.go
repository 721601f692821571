package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/utils"
)

// Fixed column order of the import sheet, after the header row:
// name, national id, period, shift time, rest days, department, gender.
const (
	importColName = iota
	importColNationalID
	importColPeriod
	importColShiftTime
	importColRestDays
	importColDepartment
	importColGender
)

const defaultDepartment = "halaqat"

// ImportResult reports what one batch did.
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// ImportEmployees applies one spreadsheet batch. Rows whose national id
// is already registered get their schedule-related fields updated in
// place and count as skipped; unknown ids are inserted as employees with
// the national id as their first credential and count as added. Rows
// with a blank leading cell or a malformed national id are ignored.
// The whole batch commits or rolls back as a unit.
func (s *Store) ImportEmployees(rows [][]string) (ImportResult, error) {
	var result ImportResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if len(row) == 0 || strings.TrimSpace(row[importColName]) == "" {
				continue
			}
			name := cell(row, importColName)
			nationalID := cell(row, importColNationalID)
			if ValidateNationalID(nationalID) != nil {
				continue
			}
			period := cell(row, importColPeriod)
			shiftTime := cell(row, importColShiftTime)
			restDays := cell(row, importColRestDays)
			department := cell(row, importColDepartment)
			if department == "" {
				department = defaultDepartment
			}
			gender := cell(row, importColGender)
			if gender == "" {
				gender = models.GenderMale
			}

			var existing models.User
			err := tx.First(&existing, "national_id = ?", nationalID).Error
			if err == nil {
				existing.Period = period
				existing.ShiftTime = shiftTime
				existing.RestDays = restDays
				existing.Department = department
				existing.Gender = gender
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				result.Skipped++
				continue
			}
			if err != gorm.ErrRecordNotFound {
				return err
			}

			hash, err := utils.HashPassword(nationalID)
			if err != nil {
				return err
			}
			employee := models.User{
				NationalID:   nationalID,
				Name:         name,
				PasswordHash: hash,
				Role:         models.RoleEmployee,
				Gender:       gender,
				Department:   department,
				Period:       period,
				ShiftTime:    shiftTime,
				RestDays:     restDays,
				IsActive:     true,
			}
			if err := tx.Create(&employee).Error; err != nil {
				return translate(err)
			}
			result.Added++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
