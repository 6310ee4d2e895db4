// Package services implements the add, update and delete operations of the
// archive. Each operation runs in one transaction: validation reads, the write
// and, for updates and residence changes, the authorship record.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/audit"
	"github.com/camden-git/pvtheatresbackend/logger"
	"github.com/camden-git/pvtheatresbackend/metrics"
)

const (
	opAdd    = "add"
	opUpdate = "update"
	opDelete = "delete"
	opLink   = "link"
	opUnlink = "unlink"
)

type base struct {
	db     *gorm.DB
	entity string
}

func (b base) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return b.db.WithContext(ctx).Transaction(fn)
}

// finish classifies err, counts the outcome and logs storage failures.
func (b base) finish(op string, err error) error {
	err = classify(b.entity+" "+op, err)

	outcome := metrics.OutcomeOK
	var (
		verr *ValidationError
		nerr *NotFoundError
		serr *StorageError
	)
	switch {
	case err == nil:
	case errors.As(err, &verr):
		outcome = metrics.OutcomeInvalid
	case errors.As(err, &nerr):
		outcome = metrics.OutcomeNotFound
	case errors.As(err, &serr):
		outcome = metrics.OutcomeStorageErr
		logger.Sugar().Errorw("archive mutation failed", "entity", b.entity, "operation", op, "error", serr.Err)
	}
	metrics.ObserveMutation(b.entity, op, outcome)
	return err
}

// classify leaves typed errors alone and wraps anything else as a StorageError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		verr *ValidationError
		nerr *NotFoundError
		serr *StorageError
	)
	if errors.As(err, &verr) || errors.As(err, &nerr) || errors.As(err, &serr) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

func notFound(entity string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}

// requireActor rejects attributed operations without an acting user before
// any transaction is opened.
func requireActor(actorID uint) error {
	if actorID == 0 {
		return audit.ErrNoActor
	}
	return nil
}
