package repository

import (
	"errors"
	"fmt"

	"github.com/camden-git/pvtheatresbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPersonRepository handles database operations for Person and the residences linking it to addresses
type GormPersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new instance of PersonRepository bound to db,
// which may be a transaction.
func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &GormPersonRepository{db: db}
}

// GetByID retrieves a person by their ID
func (r *GormPersonRepository) GetByID(id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get person by ID %d: %w", id, err)
	}
	return &person, nil
}

func (r *GormPersonRepository) CountMatching(familyName, givenName, role string, excludeID uint) (int64, error) {
	var count int64
	q := r.db.Model(&models.Person{}).Where(map[string]interface{}{
		"family_name": familyName,
		"given_name":  givenName,
		"role":        role,
	})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count persons named %s %s: %w", givenName, familyName, err)
	}
	return count, nil
}

// Create creates a new person record in the database
func (r *GormPersonRepository) Create(person *models.Person) error {
	err := r.db.Create(person).Error
	if err != nil {
		return fmt.Errorf("failed to create person %s: %w", person.FullName(), err)
	}
	return nil
}

// Update writes every column of an existing person
func (r *GormPersonRepository) Update(person *models.Person) error {
	result := r.db.Omit(clause.Associations).Save(person)
	if result.Error != nil {
		return fmt.Errorf("failed to update person ID %d: %w", person.ID, result.Error)
	}
	return nil
}

// Delete removes a person by their ID; residences go with it
func (r *GormPersonRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Person{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete person ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormPersonRepository) ResidenceExists(personID, addressID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Residence{}).
		Where("person_id = ? AND address_id = ?", personID, addressID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check residence of person %d at address %d: %w", personID, addressID, err)
	}
	return count > 0, nil
}

func (r *GormPersonRepository) AddResidence(personID, addressID uint) error {
	residence := models.Residence{PersonID: personID, AddressID: addressID}
	if err := r.db.Create(&residence).Error; err != nil {
		return fmt.Errorf("failed to link person %d to address %d: %w", personID, addressID, err)
	}
	return nil
}

// RemoveResidence deletes the link if present and reports how many rows went.
func (r *GormPersonRepository) RemoveResidence(personID, addressID uint) (int64, error) {
	result := r.db.Where("person_id = ? AND address_id = ?", personID, addressID).Delete(&models.Residence{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to unlink person %d from address %d: %w", personID, addressID, result.Error)
	}
	return result.RowsAffected, nil
}
