package repository

import (
	"github.com/camden-git/pvtheatresbackend/models"
)

// PersonRepository defines the methods for person and residence data operations
type PersonRepository interface {
	GetByID(id uint) (*models.Person, error)
	// CountMatching counts persons with exactly these fields, ignoring excludeID when non-zero.
	CountMatching(familyName, givenName, role string, excludeID uint) (int64, error)
	Create(person *models.Person) error
	Update(person *models.Person) error
	Delete(id uint) error

	ResidenceExists(personID, addressID uint) (bool, error)
	AddResidence(personID, addressID uint) error
	RemoveResidence(personID, addressID uint) (int64, error)
}

// AddressRepository defines the methods for address data operations
type AddressRepository interface {
	GetByID(id uint) (*models.Address, error)
	CountMatching(street, district string, excludeID uint) (int64, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(id uint) error
}

// ProcesVerbalRepository defines the methods for police report data operations
type ProcesVerbalRepository interface {
	GetByID(id uint) (*models.ProcesVerbal, error)
	// CountMatching compares every column of the candidate; nil references match NULL.
	CountMatching(candidate *models.ProcesVerbal, excludeID uint) (int64, error)
	Create(report *models.ProcesVerbal) error
	Update(report *models.ProcesVerbal) error
	Delete(id uint) error
}

// SourceRepository defines the methods for archival source data operations
type SourceRepository interface {
	GetByID(id uint) (*models.Source, error)
	CountByCode(code string, excludeID uint) (int64, error)
	Create(source *models.Source) error
	Update(source *models.Source) error
	Delete(id uint) error
}

// ObjectRepository defines the methods for stolen-object type data operations
type ObjectRepository interface {
	GetByID(id uint) (*models.Object, error)
	CountByType(objectType string, excludeID uint) (int64, error)
	Create(object *models.Object) error
	Update(object *models.Object) error
	Delete(id uint) error
}

// RoomRepository defines the methods for room data operations. Rooms are
// reference data: they are seeded, then only edited.
type RoomRepository interface {
	GetByID(id uint) (*models.Room, error)
	Update(room *models.Room) error
}

// UserRepository defines the methods for user data operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByLogin(login string) (*models.User, error)
	CountByLogin(login string) (int64, error)
	CountByEmail(email string) (int64, error)
}
