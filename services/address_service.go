package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/audit"
	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/repository"
)

type AddressInput struct {
	Street   string `json:"street"`
	District string `json:"district"`
}

func (in AddressInput) normalized() AddressInput {
	return AddressInput{Street: strings.TrimSpace(in.Street), District: strings.TrimSpace(in.District)}
}

func (in AddressInput) problems() []string {
	var problems []string
	if in.Street == "" {
		problems = append(problems, MsgAddressStreetRequired)
	}
	if in.District == "" {
		problems = append(problems, MsgAddressDistrictRequired)
	}
	return problems
}

type AddressService struct {
	base
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{base{db: db, entity: "address"}}
}

// Add creates an address unless the same street is already recorded in the same district.
func (s *AddressService) Add(ctx context.Context, in AddressInput) (*models.Address, error) {
	in = in.normalized()
	var created *models.Address
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewAddressRepository(tx)
		problems := in.problems()

		count, err := repo.CountMatching(in.Street, in.District, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			problems = append(problems, MsgAddressExists)
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		address := &models.Address{Street: in.Street, District: in.District}
		if err := repo.Create(address); err != nil {
			return err
		}
		created = address
		return nil
	})
	if err := s.finish(opAdd, err); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AddressService) Update(ctx context.Context, actorID, id uint, in AddressInput) (*models.Address, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	in = in.normalized()
	var updated *models.Address
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewAddressRepository(tx)
		address, err := repo.GetByID(id)
		if err != nil {
			return notFound(s.entity, id, err)
		}

		problems := in.problems()
		if address.Street == in.Street && address.District == in.District {
			problems = append(problems, MsgNoChanges)
		} else {
			count, err := repo.CountMatching(in.Street, in.District, id)
			if err != nil {
				return err
			}
			if count > 0 {
				problems = append(problems, MsgAddressExists)
			}
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		address.Street = in.Street
		address.District = in.District
		if err := repo.Update(address); err != nil {
			return err
		}
		if _, err := audit.Record(tx, actorID, audit.Address(id)); err != nil {
			return err
		}
		updated = address
		return nil
	})
	if err := s.finish(opUpdate, err); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes address id together with the residences at it.
func (s *AddressService) Delete(ctx context.Context, id uint) error {
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewAddressRepository(tx)
		if _, err := repo.GetByID(id); err != nil {
			return notFound(s.entity, id, err)
		}
		return repo.Delete(id)
	})
	return s.finish(opDelete, err)
}
