package repository

import (
	"errors"
	"fmt"

	"github.com/camden-git/pvtheatresbackend/models"
	"gorm.io/gorm"
)

type GormSourceRepository struct {
	db *gorm.DB
}

func NewSourceRepository(db *gorm.DB) SourceRepository {
	return &GormSourceRepository{db: db}
}

func (r *GormSourceRepository) GetByID(id uint) (*models.Source, error) {
	var source models.Source
	err := r.db.First(&source, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get source by ID %d: %w", id, err)
	}
	return &source, nil
}

func (r *GormSourceRepository) CountByCode(code string, excludeID uint) (int64, error) {
	var count int64
	q := r.db.Model(&models.Source{}).Where("code = ?", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sources with code %s: %w", code, err)
	}
	return count, nil
}

func (r *GormSourceRepository) Create(source *models.Source) error {
	if err := r.db.Create(source).Error; err != nil {
		return fmt.Errorf("failed to create source %s: %w", source.Code, err)
	}
	return nil
}

func (r *GormSourceRepository) Update(source *models.Source) error {
	if err := r.db.Save(source).Error; err != nil {
		return fmt.Errorf("failed to update source ID %d: %w", source.ID, err)
	}
	return nil
}

func (r *GormSourceRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Source{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete source ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
