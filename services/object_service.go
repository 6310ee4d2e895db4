package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/audit"
	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/repository"
)

type ObjectInput struct {
	Type string `json:"type"`
}

func (in ObjectInput) problems() []string {
	if in.Type == "" {
		return []string{MsgObjectTypeRequired}
	}
	if !startsUpper(in.Type) {
		return []string{MsgObjectTypeCapitalized}
	}
	return nil
}

// ObjectService manages the categories of stolen items.
type ObjectService struct {
	base
}

func NewObjectService(db *gorm.DB) *ObjectService {
	return &ObjectService{base{db: db, entity: "object"}}
}

func (s *ObjectService) Add(ctx context.Context, in ObjectInput) (*models.Object, error) {
	in.Type = strings.TrimSpace(in.Type)
	var created *models.Object
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewObjectRepository(tx)
		problems := in.problems()

		count, err := repo.CountByType(in.Type, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			problems = append(problems, MsgObjectExists)
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		object := &models.Object{Type: in.Type}
		if err := repo.Create(object); err != nil {
			return err
		}
		created = object
		return nil
	})
	if err := s.finish(opAdd, err); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ObjectService) Update(ctx context.Context, actorID, id uint, in ObjectInput) (*models.Object, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	in.Type = strings.TrimSpace(in.Type)
	var updated *models.Object
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewObjectRepository(tx)
		object, err := repo.GetByID(id)
		if err != nil {
			return notFound(s.entity, id, err)
		}

		problems := in.problems()
		if object.Type == in.Type {
			problems = append(problems, MsgNoChanges)
		} else {
			count, err := repo.CountByType(in.Type, id)
			if err != nil {
				return err
			}
			if count > 0 {
				problems = append(problems, MsgObjectExists)
			}
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		object.Type = in.Type
		if err := repo.Update(object); err != nil {
			return err
		}
		if _, err := audit.Record(tx, actorID, audit.Object(id)); err != nil {
			return err
		}
		updated = object
		return nil
	})
	if err := s.finish(opUpdate, err); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ObjectService) Delete(ctx context.Context, id uint) error {
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewObjectRepository(tx)
		if _, err := repo.GetByID(id); err != nil {
			return notFound(s.entity, id, err)
		}
		return repo.Delete(id)
	})
	return s.finish(opDelete, err)
}
