package audit_test

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/audit"
	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/testutil"
)

func TestRecordWritesOneRowPerTarget(t *testing.T) {
	db := testutil.NewDB(t)

	targets := []struct {
		target audit.Target
		kind   models.TargetKind
	}{
		{audit.ProcesVerbal(1), models.TargetProcesVerbal},
		{audit.Person(2), models.TargetPerson},
		{audit.Room(3), models.TargetRoom},
		{audit.Address(4), models.TargetAddress},
		{audit.Source(5), models.TargetSource},
		{audit.Object(6), models.TargetObject},
	}
	for _, tc := range targets {
		entry, err := audit.Record(db, 7, tc.target)
		if err != nil {
			t.Fatalf("record %s: %v", tc.target, err)
		}
		if entry.TargetKind != tc.kind || entry.TargetID != tc.target.ID() {
			t.Errorf("entry = %s %d, want %s %d", entry.TargetKind, entry.TargetID, tc.kind, tc.target.ID())
		}
		if entry.RelatedID != nil {
			t.Errorf("%s: unexpected related id %d", tc.kind, *entry.RelatedID)
		}
		if entry.CreatedAt.IsZero() {
			t.Errorf("%s: created_at not set", tc.kind)
		}
	}

	var count int64
	db.Model(&models.Authorship{}).Where("user_id = ?", 7).Count(&count)
	if count != int64(len(targets)) {
		t.Fatalf("authorship rows = %d, want %d", count, len(targets))
	}
}

func TestRecordResidenceKeepsBothSides(t *testing.T) {
	db := testutil.NewDB(t)

	entry, err := audit.Record(db, 1, audit.Residence(10, 20))
	if err != nil {
		t.Fatalf("record residence: %v", err)
	}

	var stored models.Authorship
	if err := db.First(&stored, entry.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.TargetKind != models.TargetResidence || stored.TargetID != 10 {
		t.Fatalf("stored target = %s %d", stored.TargetKind, stored.TargetID)
	}
	if stored.RelatedID == nil || *stored.RelatedID != 20 {
		t.Fatalf("stored related id = %v, want 20", stored.RelatedID)
	}
}

func TestRecordRejectsIncompleteInput(t *testing.T) {
	db := testutil.NewDB(t)

	cases := []struct {
		name   string
		actor  uint
		target audit.Target
		want   error
	}{
		{"no actor", 0, audit.Person(1), audit.ErrNoActor},
		{"zero target", 1, audit.Target{}, audit.ErrNoTarget},
		{"zero id", 1, audit.Source(0), audit.ErrNoTarget},
		{"residence without address", 1, audit.Residence(1, 0), audit.ErrNoTarget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := audit.Record(db, tc.actor, tc.target); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	var count int64
	db.Model(&models.Authorship{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected records wrote %d rows", count)
	}
}

func TestRecordRollsBackWithTransaction(t *testing.T) {
	db := testutil.NewDB(t)
	boom := errors.New("boom")

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := audit.Record(tx, 1, audit.Object(3)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("transaction err = %v", err)
	}

	var count int64
	db.Model(&models.Authorship{}).Count(&count)
	if count != 0 {
		t.Fatalf("rolled back transaction left %d authorship rows", count)
	}
}
