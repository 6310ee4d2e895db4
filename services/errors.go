package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ValidationError carries every problem found with the input, in the order
// the checks ran. Nothing was written.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, " ")
}

func invalid(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

// NotFoundError reports that the record an operation targets does not exist.
// It unwraps to gorm.ErrRecordNotFound.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return gorm.ErrRecordNotFound
}

// StorageError wraps an unexpected failure of the database. The transaction
// was rolled back.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
