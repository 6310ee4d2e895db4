package repository

import (
	"errors"
	"fmt"

	"github.com/camden-git/pvtheatresbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get room by ID %d: %w", id, err)
	}
	return &room, nil
}

func (r *GormRoomRepository) Update(room *models.Room) error {
	if err := r.db.Omit(clause.Associations).Save(room).Error; err != nil {
		return fmt.Errorf("failed to update room ID %d: %w", room.ID, err)
	}
	return nil
}
