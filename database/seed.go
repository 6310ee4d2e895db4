package database

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/models"
)

// ReferenceData is the seed file layout: theatres with the rooms they occupied.
type ReferenceData struct {
	Theatres []TheatreSeed `json:"theatres"`
}

type TheatreSeed struct {
	Name  string     `json:"name"`
	Rooms []RoomSeed `json:"rooms"`
}

type RoomSeed struct {
	Name            string `json:"name"`
	OccupationDates string `json:"occupation_dates"`
	Latitude        string `json:"latitude"`
	Longitude       string `json:"longitude"`
}

// SeedResult counts the rows a seed run inserted.
type SeedResult struct {
	TheatresCreated int
	RoomsCreated    int
}

// DecodeReferenceData parses a seed document.
func DecodeReferenceData(r io.Reader) (ReferenceData, error) {
	var data ReferenceData
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return ReferenceData{}, fmt.Errorf("failed to decode reference data: %w", err)
	}
	for i, t := range data.Theatres {
		if strings.TrimSpace(t.Name) == "" {
			return ReferenceData{}, fmt.Errorf("theatre #%d has no name", i+1)
		}
	}
	return data, nil
}

// SeedReferenceData inserts theatres and rooms that are not present yet.
// Theatres match on name, rooms on (name, theatre); running it twice is a no-op.
func SeedReferenceData(ctx context.Context, db *gorm.DB, data ReferenceData) (SeedResult, error) {
	var res SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ts := range data.Theatres {
			var theatre models.Theatre
			found := tx.Where("name = ?", ts.Name).Limit(1).Find(&theatre)
			if found.Error != nil {
				return fmt.Errorf("failed to look up theatre %q: %w", ts.Name, found.Error)
			}
			if found.RowsAffected == 0 {
				theatre = models.Theatre{Name: ts.Name}
				if err := tx.Create(&theatre).Error; err != nil {
					return fmt.Errorf("failed to seed theatre %q: %w", ts.Name, err)
				}
				res.TheatresCreated++
			}

			for _, rs := range ts.Rooms {
				var room models.Room
				found := tx.Where("name = ? AND theatre_id = ?", rs.Name, theatre.ID).Limit(1).Find(&room)
				if found.Error != nil {
					return fmt.Errorf("failed to look up room %q of theatre %q: %w", rs.Name, ts.Name, found.Error)
				}
				if found.RowsAffected > 0 {
					continue
				}

				theatreID := theatre.ID
				room = models.Room{
					Name:            rs.Name,
					OccupationDates: rs.OccupationDates,
					TheatreID:       &theatreID,
					Latitude:        rs.Latitude,
					Longitude:       rs.Longitude,
				}
				if err := tx.Create(&room).Error; err != nil {
					return fmt.Errorf("failed to seed room %q of theatre %q: %w", rs.Name, ts.Name, err)
				}
				res.RoomsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}
