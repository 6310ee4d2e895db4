package repository

import (
	"errors"
	"fmt"

	"github.com/camden-git/pvtheatresbackend/models"
	"gorm.io/gorm"
)

// GormAddressRepository handles database operations for Address entities
type GormAddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) GetByID(id uint) (*models.Address, error) {
	var address models.Address
	err := r.db.First(&address, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get address by ID %d: %w", id, err)
	}
	return &address, nil
}

// CountMatching counts addresses with both the same street and the same district.
func (r *GormAddressRepository) CountMatching(street, district string, excludeID uint) (int64, error) {
	var count int64
	q := r.db.Model(&models.Address{}).Where("street = ? AND district = ?", street, district)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count addresses on %s (%s): %w", street, district, err)
	}
	return count, nil
}

func (r *GormAddressRepository) Create(address *models.Address) error {
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address %s: %w", address.Street, err)
	}
	return nil
}

func (r *GormAddressRepository) Update(address *models.Address) error {
	if err := r.db.Save(address).Error; err != nil {
		return fmt.Errorf("failed to update address ID %d: %w", address.ID, err)
	}
	return nil
}

// Delete removes an address by its ID; residences go with it
func (r *GormAddressRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Address{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete address ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
