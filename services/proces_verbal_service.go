package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/audit"
	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/repository"
)

// ProcesVerbalInput is the editable field set of a police report. References
// are record ids given as numbers or strings; an empty or null one leaves the
// reference unset.
type ProcesVerbalInput struct {
	Date       string `json:"date"`
	TheatreID  RefID  `json:"theatre_id"`
	SourceID   RefID  `json:"source_id"`
	OfficialID RefID  `json:"official_id"`
	VictimID   RefID  `json:"victim_id"`
	ObjectID   RefID  `json:"object_id"`
}

func (in ProcesVerbalInput) normalized() ProcesVerbalInput {
	return ProcesVerbalInput{
		Date:       strings.TrimSpace(in.Date),
		TheatreID:  in.TheatreID.trimmed(),
		SourceID:   in.SourceID.trimmed(),
		OfficialID: in.OfficialID.trimmed(),
		VictimID:   in.VictimID.trimmed(),
		ObjectID:   in.ObjectID.trimmed(),
	}
}

// candidate validates in and resolves its references into a report.
// The report is nil when a reference could not be resolved.
func (in ProcesVerbalInput) candidate(tx *gorm.DB) (*models.ProcesVerbal, []string, error) {
	problems := dateProblems(in.Date)
	ids, refProblems, err := resolveRefs(tx,
		reference{label: "theatre", raw: in.TheatreID, model: &models.Theatre{}},
		reference{label: "source", raw: in.SourceID, model: &models.Source{}},
		reference{label: "official", raw: in.OfficialID, model: &models.Person{}},
		reference{label: "victim", raw: in.VictimID, model: &models.Person{}},
		reference{label: "object", raw: in.ObjectID, model: &models.Object{}},
	)
	if err != nil {
		return nil, nil, err
	}
	problems = append(problems, refProblems...)
	if len(refProblems) > 0 {
		return nil, problems, nil
	}
	return &models.ProcesVerbal{
		Date:       in.Date,
		TheatreID:  ids[0],
		SourceID:   ids[1],
		OfficialID: ids[2],
		VictimID:   ids[3],
		ObjectID:   ids[4],
	}, problems, nil
}

func sameReport(a, b *models.ProcesVerbal) bool {
	return a.Date == b.Date &&
		sameRef(a.TheatreID, b.TheatreID) &&
		sameRef(a.SourceID, b.SourceID) &&
		sameRef(a.OfficialID, b.OfficialID) &&
		sameRef(a.VictimID, b.VictimID) &&
		sameRef(a.ObjectID, b.ObjectID)
}

// ProcesVerbalService manages police reports.
type ProcesVerbalService struct {
	base
}

func NewProcesVerbalService(db *gorm.DB) *ProcesVerbalService {
	return &ProcesVerbalService{base{db: db, entity: "proces_verbal"}}
}

// Add creates a report unless one with the same date and references exists.
// Unset references only match unset references.
func (s *ProcesVerbalService) Add(ctx context.Context, in ProcesVerbalInput) (*models.ProcesVerbal, error) {
	in = in.normalized()
	var created *models.ProcesVerbal
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewProcesVerbalRepository(tx)
		report, problems, err := in.candidate(tx)
		if err != nil {
			return err
		}

		if report != nil {
			count, err := repo.CountMatching(report, 0)
			if err != nil {
				return err
			}
			if count > 0 {
				problems = append(problems, MsgReportExists)
			}
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		if err := repo.Create(report); err != nil {
			return err
		}
		created = report
		return nil
	})
	if err := s.finish(opAdd, err); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ProcesVerbalService) Update(ctx context.Context, actorID, id uint, in ProcesVerbalInput) (*models.ProcesVerbal, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	in = in.normalized()
	var updated *models.ProcesVerbal
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewProcesVerbalRepository(tx)
		report, err := repo.GetByID(id)
		if err != nil {
			return notFound(s.entity, id, err)
		}

		next, problems, err := in.candidate(tx)
		if err != nil {
			return err
		}
		if next != nil {
			if sameReport(report, next) {
				problems = append(problems, MsgNoChanges)
			} else {
				count, err := repo.CountMatching(next, id)
				if err != nil {
					return err
				}
				if count > 0 {
					problems = append(problems, MsgReportExists)
				}
			}
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		report.Date = next.Date
		report.TheatreID = next.TheatreID
		report.SourceID = next.SourceID
		report.OfficialID = next.OfficialID
		report.VictimID = next.VictimID
		report.ObjectID = next.ObjectID
		if err := repo.Update(report); err != nil {
			return err
		}
		if _, err := audit.Record(tx, actorID, audit.ProcesVerbal(id)); err != nil {
			return err
		}
		updated = report
		return nil
	})
	if err := s.finish(opUpdate, err); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ProcesVerbalService) Delete(ctx context.Context, id uint) error {
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewProcesVerbalRepository(tx)
		if _, err := repo.GetByID(id); err != nil {
			return notFound(s.entity, id, err)
		}
		return repo.Delete(id)
	})
	return s.finish(opDelete, err)
}
