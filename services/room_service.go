package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/audit"
	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/repository"
)

// RoomInput is the editable part of a room. Coordinates are seeded and not
// edited here.
type RoomInput struct {
	Name            string `json:"name"`
	OccupationDates string `json:"occupation_dates"`
	TheatreID       RefID  `json:"theatre_id"`
}

func (in RoomInput) normalized() RoomInput {
	return RoomInput{
		Name:            strings.TrimSpace(in.Name),
		OccupationDates: strings.TrimSpace(in.OccupationDates),
		TheatreID:       in.TheatreID.trimmed(),
	}
}

// RoomService edits rooms. Rooms are reference data and are neither added nor
// deleted through it.
type RoomService struct {
	base
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{base{db: db, entity: "room"}}
}

func (s *RoomService) Update(ctx context.Context, actorID, id uint, in RoomInput) (*models.Room, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	in = in.normalized()
	var updated *models.Room
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewRoomRepository(tx)
		room, err := repo.GetByID(id)
		if err != nil {
			return notFound(s.entity, id, err)
		}

		var problems []string
		if in.Name == "" {
			problems = append(problems, MsgRoomNameRequired)
		}
		if in.OccupationDates == "" {
			problems = append(problems, MsgRoomDatesRequired)
		}
		ids, refProblems, err := resolveRefs(tx, reference{label: "theatre", raw: in.TheatreID, model: &models.Theatre{}})
		if err != nil {
			return err
		}
		problems = append(problems, refProblems...)
		theatreID := ids[0]

		if len(refProblems) == 0 && room.Name == in.Name && room.OccupationDates == in.OccupationDates &&
			sameRef(room.TheatreID, theatreID) {
			problems = append(problems, MsgNoChanges)
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		room.Name = in.Name
		room.OccupationDates = in.OccupationDates
		room.TheatreID = theatreID
		if err := repo.Update(room); err != nil {
			return err
		}
		if _, err := audit.Record(tx, actorID, audit.Room(id)); err != nil {
			return err
		}
		updated = room
		return nil
	})
	if err := s.finish(opUpdate, err); err != nil {
		return nil, err
	}
	return updated, nil
}
