package repository

import (
	"errors"
	"fmt"

	"github.com/camden-git/pvtheatresbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProcesVerbalRepository handles database operations for police reports
type GormProcesVerbalRepository struct {
	db *gorm.DB
}

func NewProcesVerbalRepository(db *gorm.DB) ProcesVerbalRepository {
	return &GormProcesVerbalRepository{db: db}
}

func (r *GormProcesVerbalRepository) GetByID(id uint) (*models.ProcesVerbal, error) {
	var report models.ProcesVerbal
	err := r.db.First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get report by ID %d: %w", id, err)
	}
	return &report, nil
}

// refValue turns an optional reference into a map condition value; nil becomes IS NULL.
func refValue(id *uint) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

func (r *GormProcesVerbalRepository) CountMatching(candidate *models.ProcesVerbal, excludeID uint) (int64, error) {
	var count int64
	q := r.db.Model(&models.ProcesVerbal{}).Where(map[string]interface{}{
		"date":        candidate.Date,
		"theatre_id":  refValue(candidate.TheatreID),
		"source_id":   refValue(candidate.SourceID),
		"official_id": refValue(candidate.OfficialID),
		"victim_id":   refValue(candidate.VictimID),
		"object_id":   refValue(candidate.ObjectID),
	})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reports dated %s: %w", candidate.Date, err)
	}
	return count, nil
}

func (r *GormProcesVerbalRepository) Create(report *models.ProcesVerbal) error {
	if err := r.db.Omit(clause.Associations).Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report dated %s: %w", report.Date, err)
	}
	return nil
}

func (r *GormProcesVerbalRepository) Update(report *models.ProcesVerbal) error {
	if err := r.db.Omit(clause.Associations).Save(report).Error; err != nil {
		return fmt.Errorf("failed to update report ID %d: %w", report.ID, err)
	}
	return nil
}

func (r *GormProcesVerbalRepository) Delete(id uint) error {
	result := r.db.Delete(&models.ProcesVerbal{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete report ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
