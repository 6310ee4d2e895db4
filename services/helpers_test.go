package services_test

import (
	"errors"
	"reflect"
	"testing"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/services"
)

const editor uint = 1

func wantProblems(t *testing.T, err error, want ...string) {
	t.Helper()
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v (%T), want validation error %q", err, err, want)
	}
	if !reflect.DeepEqual(verr.Problems, want) {
		t.Fatalf("problems = %q, want %q", verr.Problems, want)
	}
}

func wantNotFound(t *testing.T, err error) {
	t.Helper()
	var nerr *services.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("err = %v (%T), want not found", err, err)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("not found error does not unwrap to gorm.ErrRecordNotFound")
	}
}

func countAuthorships(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Authorship{}).Count(&n).Error; err != nil {
		t.Fatalf("count authorships: %v", err)
	}
	return n
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}
