package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/audit"
	"github.com/camden-git/pvtheatresbackend/logger"
	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/repository"
)

// PersonInput is the editable field set of a person.
type PersonInput struct {
	FamilyName string `json:"family_name"`
	GivenName  string `json:"given_name"`
	Role       string `json:"role"`
}

func (in PersonInput) normalized() PersonInput {
	return PersonInput{
		FamilyName: strings.TrimSpace(in.FamilyName),
		GivenName:  strings.TrimSpace(in.GivenName),
		Role:       strings.TrimSpace(in.Role),
	}
}

func (in PersonInput) problems() []string {
	var problems []string
	if in.FamilyName == "" {
		problems = append(problems, MsgPersonFamilyNameRequired)
	}
	if in.GivenName == "" {
		problems = append(problems, MsgPersonGivenNameRequired)
	}
	if in.FamilyName != "" && in.GivenName != "" && !(startsUpper(in.FamilyName) && startsUpper(in.GivenName)) {
		problems = append(problems, MsgPersonNamesCapitalized)
	}
	return problems
}

func (in PersonInput) matches(p *models.Person) bool {
	return p.FamilyName == in.FamilyName && p.GivenName == in.GivenName && p.Role == in.Role
}

// PersonService manages persons and their residences.
type PersonService struct {
	base
}

func NewPersonService(db *gorm.DB) *PersonService {
	return &PersonService{base{db: db, entity: "person"}}
}

// Add creates a person. No authorship is recorded for creations.
func (s *PersonService) Add(ctx context.Context, in PersonInput) (*models.Person, error) {
	in = in.normalized()
	var created *models.Person
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewPersonRepository(tx)
		problems := in.problems()

		count, err := repo.CountMatching(in.FamilyName, in.GivenName, in.Role, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			problems = append(problems, MsgPersonExists)
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		person := &models.Person{FamilyName: in.FamilyName, GivenName: in.GivenName, Role: in.Role}
		if err := repo.Create(person); err != nil {
			return err
		}
		created = person
		return nil
	})
	if err := s.finish(opAdd, err); err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces every field of person id and attributes the change to actorID.
func (s *PersonService) Update(ctx context.Context, actorID, id uint, in PersonInput) (*models.Person, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	in = in.normalized()
	var updated *models.Person
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewPersonRepository(tx)
		person, err := repo.GetByID(id)
		if err != nil {
			return notFound(s.entity, id, err)
		}

		problems := in.problems()
		if in.matches(person) {
			problems = append(problems, MsgNoChanges)
		} else {
			count, err := repo.CountMatching(in.FamilyName, in.GivenName, in.Role, id)
			if err != nil {
				return err
			}
			if count > 0 {
				problems = append(problems, MsgPersonExists)
			}
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		person.FamilyName = in.FamilyName
		person.GivenName = in.GivenName
		person.Role = in.Role
		if err := repo.Update(person); err != nil {
			return err
		}
		if _, err := audit.Record(tx, actorID, audit.Person(id)); err != nil {
			return err
		}
		updated = person
		return nil
	})
	if err := s.finish(opUpdate, err); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes person id. Residences go with it; reports naming the person
// keep the report with an empty reference.
func (s *PersonService) Delete(ctx context.Context, id uint) error {
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewPersonRepository(tx)
		if _, err := repo.GetByID(id); err != nil {
			return notFound(s.entity, id, err)
		}
		return repo.Delete(id)
	})
	return s.finish(opDelete, err)
}

// LinkAddress records that person personID lived at address addressID.
func (s *PersonService) LinkAddress(ctx context.Context, actorID, personID, addressID uint) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo, err := s.residenceParties(tx, personID, addressID)
		if err != nil {
			return err
		}

		linked, err := repo.ResidenceExists(personID, addressID)
		if err != nil {
			return err
		}
		if linked {
			return invalid(MsgAlreadyLinked)
		}

		if err := repo.AddResidence(personID, addressID); err != nil {
			return err
		}
		_, err = audit.Record(tx, actorID, audit.Residence(personID, addressID))
		return err
	})
	return s.finish(opLink, err)
}

// UnlinkAddress removes the residence of personID at addressID. Removing a
// residence that was never recorded succeeds and is still attributed.
func (s *PersonService) UnlinkAddress(ctx context.Context, actorID, personID, addressID uint) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo, err := s.residenceParties(tx, personID, addressID)
		if err != nil {
			return err
		}

		removed, err := repo.RemoveResidence(personID, addressID)
		if err != nil {
			return err
		}
		if removed == 0 {
			logger.Sugar().Debugw("unlinked residence was not recorded", "person_id", personID, "address_id", addressID)
		}
		_, err = audit.Record(tx, actorID, audit.Residence(personID, addressID))
		return err
	})
	return s.finish(opUnlink, err)
}

// residenceParties checks that both sides of a residence exist.
func (s *PersonService) residenceParties(tx *gorm.DB, personID, addressID uint) (repository.PersonRepository, error) {
	repo := repository.NewPersonRepository(tx)
	if _, err := repo.GetByID(personID); err != nil {
		return nil, notFound(s.entity, personID, err)
	}
	if _, err := repository.NewAddressRepository(tx).GetByID(addressID); err != nil {
		return nil, notFound("address", addressID, err)
	}
	return repo, nil
}
