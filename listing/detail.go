package listing

import (
	"context"
	"fmt"

	"github.com/camden-git/pvtheatresbackend/database"
	"github.com/camden-git/pvtheatresbackend/models"
)

// Detail lookups return an error wrapping gorm.ErrRecordNotFound for a missing id.

type ReportDetail struct {
	Report *models.ProcesVerbal `json:"report"`
	// Rooms of the report's theatre.
	Rooms []models.Room `json:"rooms"`
}

type TheatreDetail struct {
	Theatre *models.Theatre       `json:"theatre"`
	Rooms   []models.Room         `json:"rooms"`
	Reports []models.ProcesVerbal `json:"reports"`
}

type RoomDetail struct {
	Room    *models.Room          `json:"room"`
	Reports []models.ProcesVerbal `json:"reports"`
}

type PersonDetail struct {
	Person    *models.Person   `json:"person"`
	Addresses []models.Address `json:"addresses"`
	// Reports naming the person as official or as victim.
	Reports []models.ProcesVerbal `json:"reports"`
}

type SourceDetail struct {
	Source  *models.Source        `json:"source"`
	Reports []models.ProcesVerbal `json:"reports"`
}

type ObjectDetail struct {
	Object  *models.Object        `json:"object"`
	Reports []models.ProcesVerbal `json:"reports"`
}

type AddressDetail struct {
	Address   *models.Address `json:"address"`
	Residents []models.Person `json:"residents"`
}

func (s *Service) reports(ctx context.Context, query string, args ...interface{}) ([]models.ProcesVerbal, error) {
	reports := []models.ProcesVerbal{}
	err := s.read(ctx).
		Preload("Theatre").
		Where(query, args...).
		Order(database.OrderReportsByDate).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}
	return reports, nil
}

func (s *Service) theatreRooms(ctx context.Context, theatreID uint) ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.read(ctx).Where("theatre_id = ?", theatreID).Order(database.OrderRoomsByName).Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms of theatre %d: %w", theatreID, err)
	}
	return rooms, nil
}

func (s *Service) ProcesVerbal(ctx context.Context, id uint) (*ReportDetail, error) {
	var report models.ProcesVerbal
	err := s.read(ctx).
		Preload("Theatre").
		Preload("Source").
		Preload("Official").
		Preload("Victim").
		Preload("Object").
		First(&report, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get report %d: %w", id, err)
	}

	detail := &ReportDetail{Report: &report, Rooms: []models.Room{}}
	if report.TheatreID != nil {
		if detail.Rooms, err = s.theatreRooms(ctx, *report.TheatreID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *Service) Theatre(ctx context.Context, id uint) (*TheatreDetail, error) {
	var theatre models.Theatre
	if err := s.read(ctx).First(&theatre, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get theatre %d: %w", id, err)
	}
	rooms, err := s.theatreRooms(ctx, id)
	if err != nil {
		return nil, err
	}
	reports, err := s.reports(ctx, "theatre_id = ?", id)
	if err != nil {
		return nil, err
	}
	return &TheatreDetail{Theatre: &theatre, Rooms: rooms, Reports: reports}, nil
}

// Room returns a room with its theatre and the reports filed at that theatre.
func (s *Service) Room(ctx context.Context, id uint) (*RoomDetail, error) {
	var room models.Room
	if err := s.read(ctx).Preload("Theatre").First(&room, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get room %d: %w", id, err)
	}
	detail := &RoomDetail{Room: &room, Reports: []models.ProcesVerbal{}}
	if room.TheatreID != nil {
		reports, err := s.reports(ctx, "theatre_id = ?", *room.TheatreID)
		if err != nil {
			return nil, err
		}
		detail.Reports = reports
	}
	return detail, nil
}

func (s *Service) Person(ctx context.Context, id uint) (*PersonDetail, error) {
	var person models.Person
	if err := s.read(ctx).First(&person, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get person %d: %w", id, err)
	}

	addresses := []models.Address{}
	err := s.read(ctx).
		Joins("JOIN residences ON residences.address_id = addresses.id").
		Where("residences.person_id = ?", id).
		Order(database.OrderAddressesByStreetJoin).
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses of person %d: %w", id, err)
	}

	reports, err := s.reports(ctx, "official_id = ? OR victim_id = ?", id, id)
	if err != nil {
		return nil, err
	}
	return &PersonDetail{Person: &person, Addresses: addresses, Reports: reports}, nil
}

func (s *Service) Source(ctx context.Context, id uint) (*SourceDetail, error) {
	var source models.Source
	if err := s.read(ctx).First(&source, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get source %d: %w", id, err)
	}
	reports, err := s.reports(ctx, "source_id = ?", id)
	if err != nil {
		return nil, err
	}
	return &SourceDetail{Source: &source, Reports: reports}, nil
}

func (s *Service) Object(ctx context.Context, id uint) (*ObjectDetail, error) {
	var object models.Object
	if err := s.read(ctx).First(&object, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get object %d: %w", id, err)
	}
	reports, err := s.reports(ctx, "object_id = ?", id)
	if err != nil {
		return nil, err
	}
	return &ObjectDetail{Object: &object, Reports: reports}, nil
}

func (s *Service) Address(ctx context.Context, id uint) (*AddressDetail, error) {
	var address models.Address
	if err := s.read(ctx).First(&address, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get address %d: %w", id, err)
	}

	residents := []models.Person{}
	err := s.read(ctx).
		Joins("JOIN residences ON residences.person_id = persons.id").
		Where("residences.address_id = ?", id).
		Order(database.OrderPersonsByNameJoin).
		Find(&residents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load residents of address %d: %w", id, err)
	}
	return &AddressDetail{Address: &address, Residents: residents}, nil
}
