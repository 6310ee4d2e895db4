// Package listing serves the read side of the archive: ordered listings,
// detail views and the keyword search. Reads go to a replica when one is
// configured.
package listing

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/camden-git/pvtheatresbackend/database"
	"github.com/camden-git/pvtheatresbackend/models"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) read(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// ProcesVerbaux lists reports by date with their theatre, official and victim.
func (s *Service) ProcesVerbaux(ctx context.Context, page int) (*Page[models.ProcesVerbal], error) {
	q := s.read(ctx).Model(&models.ProcesVerbal{}).Where("date <> ''")
	return paginate[models.ProcesVerbal](q, page, database.OrderReportsByDate, "Theatre", "Official", "Victim")
}

// Persons lists everyone by family name, ignoring case.
func (s *Service) Persons(ctx context.Context, page int) (*Page[models.Person], error) {
	q := s.read(ctx).Model(&models.Person{})
	return paginate[models.Person](q, page, database.OrderPersonsByFamilyName)
}

// Commissioners lists the police officials by family name.
func (s *Service) Commissioners(ctx context.Context, page int) (*Page[models.Person], error) {
	q := s.read(ctx).Model(&models.Person{}).Where("role = ?", models.RoleCommissioner)
	return paginate[models.Person](q, page, database.OrderCommissionersByName)
}

func (s *Service) Sources(ctx context.Context, page int) (*Page[models.Source], error) {
	q := s.read(ctx).Model(&models.Source{})
	return paginate[models.Source](q, page, database.OrderSourcesByCode)
}

// Addresses lists addresses by street, ignoring case.
func (s *Service) Addresses(ctx context.Context, page int) (*Page[models.Address], error) {
	q := s.read(ctx).Model(&models.Address{})
	return paginate[models.Address](q, page, database.OrderAddressesByStreet)
}

func (s *Service) Theatres(ctx context.Context) ([]models.Theatre, error) {
	theatres := []models.Theatre{}
	if err := s.read(ctx).Order(database.OrderTheatresByName).Find(&theatres).Error; err != nil {
		return nil, fmt.Errorf("failed to list theatres: %w", err)
	}
	return theatres, nil
}

func (s *Service) Objects(ctx context.Context) ([]models.Object, error) {
	objects := []models.Object{}
	if err := s.read(ctx).Order(database.OrderObjectsByType).Find(&objects).Error; err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	return objects, nil
}

// Rooms lists every room with its theatre, for the map.
func (s *Service) Rooms(ctx context.Context) ([]models.Room, error) {
	rooms := []models.Room{}
	if err := s.read(ctx).Preload("Theatre").Order(database.OrderRoomsByName).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}
