package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/audit"
	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/repository"
)

type SourceInput struct {
	Code string `json:"code"`
}

func (in SourceInput) problems() []string {
	if in.Code == "" {
		return []string{MsgSourceCodeRequired}
	}
	if !validSourceCode(in.Code) {
		return []string{MsgSourceCodeFormat}
	}
	return nil
}

// SourceService manages archival call numbers.
type SourceService struct {
	base
}

func NewSourceService(db *gorm.DB) *SourceService {
	return &SourceService{base{db: db, entity: "source"}}
}

func (s *SourceService) Add(ctx context.Context, in SourceInput) (*models.Source, error) {
	in.Code = strings.TrimSpace(in.Code)
	var created *models.Source
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewSourceRepository(tx)
		problems := in.problems()

		count, err := repo.CountByCode(in.Code, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			problems = append(problems, MsgSourceExists)
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		source := &models.Source{Code: in.Code}
		if err := repo.Create(source); err != nil {
			return err
		}
		created = source
		return nil
	})
	if err := s.finish(opAdd, err); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *SourceService) Update(ctx context.Context, actorID, id uint, in SourceInput) (*models.Source, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	in.Code = strings.TrimSpace(in.Code)
	var updated *models.Source
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewSourceRepository(tx)
		source, err := repo.GetByID(id)
		if err != nil {
			return notFound(s.entity, id, err)
		}

		problems := in.problems()
		if source.Code == in.Code {
			problems = append(problems, MsgNoChanges)
		} else {
			count, err := repo.CountByCode(in.Code, id)
			if err != nil {
				return err
			}
			if count > 0 {
				problems = append(problems, MsgSourceExists)
			}
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		source.Code = in.Code
		if err := repo.Update(source); err != nil {
			return err
		}
		if _, err := audit.Record(tx, actorID, audit.Source(id)); err != nil {
			return err
		}
		updated = source
		return nil
	})
	if err := s.finish(opUpdate, err); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes source id; reports citing it lose the reference.
func (s *SourceService) Delete(ctx context.Context, id uint) error {
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewSourceRepository(tx)
		if _, err := repo.GetByID(id); err != nil {
			return notFound(s.entity, id, err)
		}
		return repo.Delete(id)
	})
	return s.finish(opDelete, err)
}
