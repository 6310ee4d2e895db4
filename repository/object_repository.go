package repository

import (
	"errors"
	"fmt"

	"github.com/camden-git/pvtheatresbackend/models"
	"gorm.io/gorm"
)

type GormObjectRepository struct {
	db *gorm.DB
}

func NewObjectRepository(db *gorm.DB) ObjectRepository {
	return &GormObjectRepository{db: db}
}

func (r *GormObjectRepository) GetByID(id uint) (*models.Object, error) {
	var object models.Object
	err := r.db.First(&object, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get object by ID %d: %w", id, err)
	}
	return &object, nil
}

func (r *GormObjectRepository) CountByType(objectType string, excludeID uint) (int64, error) {
	var count int64
	q := r.db.Model(&models.Object{}).Where("type = ?", objectType)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count objects of type %s: %w", objectType, err)
	}
	return count, nil
}

func (r *GormObjectRepository) Create(object *models.Object) error {
	if err := r.db.Create(object).Error; err != nil {
		return fmt.Errorf("failed to create object %s: %w", object.Type, err)
	}
	return nil
}

func (r *GormObjectRepository) Update(object *models.Object) error {
	if err := r.db.Save(object).Error; err != nil {
		return fmt.Errorf("failed to update object ID %d: %w", object.ID, err)
	}
	return nil
}

func (r *GormObjectRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Object{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete object ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
