package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// Exists reports whether a row of model's table has the given ID.
func Exists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up %T %d: %w", model, id, err)
	}
	return count > 0, nil
}
