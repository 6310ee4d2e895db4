// Package audit attributes changes of archive records to the editor who made them.
package audit

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/models"
)

var (
	ErrNoActor  = errors.New("audit: acting user is required")
	ErrNoTarget = errors.New("audit: target is required")
)

// Target identifies exactly one changed record. The zero value is invalid;
// build targets with the constructors below.
type Target struct {
	kind    models.TargetKind
	id      uint
	related uint
}

func ProcesVerbal(id uint) Target { return Target{kind: models.TargetProcesVerbal, id: id} }
func Person(id uint) Target       { return Target{kind: models.TargetPerson, id: id} }
func Room(id uint) Target         { return Target{kind: models.TargetRoom, id: id} }
func Address(id uint) Target      { return Target{kind: models.TargetAddress, id: id} }
func Source(id uint) Target       { return Target{kind: models.TargetSource, id: id} }
func Object(id uint) Target       { return Target{kind: models.TargetObject, id: id} }

// Residence targets the link between a person and one of their addresses,
// as created or removed by link and unlink.
func Residence(personID, addressID uint) Target {
	return Target{kind: models.TargetResidence, id: personID, related: addressID}
}

func (t Target) Kind() models.TargetKind { return t.kind }
func (t Target) ID() uint                { return t.id }

// RelatedID returns the address of a residence target, zero otherwise.
func (t Target) RelatedID() uint { return t.related }

func (t Target) valid() bool {
	if t.kind == "" || t.id == 0 {
		return false
	}
	if t.kind == models.TargetResidence {
		return t.related != 0
	}
	return true
}

func (t Target) String() string {
	if t.kind == models.TargetResidence {
		return fmt.Sprintf("%s %d/%d", t.kind, t.id, t.related)
	}
	return fmt.Sprintf("%s %d", t.kind, t.id)
}

// Record appends one Authorship row on tx. Callers pass the transaction of
// the mutation being attributed so that both commit or roll back together.
func Record(tx *gorm.DB, actorID uint, target Target) (*models.Authorship, error) {
	if actorID == 0 {
		return nil, ErrNoActor
	}
	if !target.valid() {
		return nil, ErrNoTarget
	}

	entry := &models.Authorship{
		UserID:     actorID,
		TargetKind: target.kind,
		TargetID:   target.id,
	}
	if target.kind == models.TargetResidence {
		related := target.related
		entry.RelatedID = &related
	}

	if err := tx.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record change of %s by user %d: %w", target, actorID, err)
	}
	return entry, nil
}
