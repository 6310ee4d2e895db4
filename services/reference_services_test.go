package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/camden-git/pvtheatresbackend/metrics"
	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/services"
	dbtest "github.com/camden-git/pvtheatresbackend/testutil"
)

func TestSourceCodes(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSourceService(dbtest.NewDB(t))

	for _, code := range []string{"Y 11601A", "Y 15665", "AB123456"} {
		if _, err := svc.Add(ctx, services.SourceInput{Code: code}); err != nil {
			t.Errorf("add %q: %v", code, err)
		}
	}

	cases := []struct {
		code string
		want []string
	}{
		{"AB12345", []string{services.MsgSourceCodeFormat}},
		{"Y 1566", []string{services.MsgSourceCodeFormat}},
		{"", []string{services.MsgSourceCodeRequired}},
		{"Y 15665", []string{services.MsgSourceExists}},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			_, err := svc.Add(ctx, services.SourceInput{Code: tc.code})
			wantProblems(t, err, tc.want...)
		})
	}
}

func TestSourceUpdate(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewDB(t)
	svc := services.NewSourceService(db)

	a, _ := svc.Add(ctx, services.SourceInput{Code: "Y 11601A"})
	b, _ := svc.Add(ctx, services.SourceInput{Code: "Y 15665"})

	_, err := svc.Update(ctx, editor, a.ID, services.SourceInput{Code: "Y 11601A"})
	wantProblems(t, err, services.MsgNoChanges)

	_, err = svc.Update(ctx, editor, a.ID, services.SourceInput{Code: "Y 15665"})
	wantProblems(t, err, services.MsgSourceExists)

	updated, err := svc.Update(ctx, editor, b.ID, services.SourceInput{Code: "Y 15666"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Code != "Y 15666" {
		t.Fatalf("code = %q", updated.Code)
	}
	if n := countAuthorships(t, db); n != 1 {
		t.Fatalf("authorship rows = %d, want 1", n)
	}
}

func TestObjectRules(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewDB(t)
	svc := services.NewObjectService(db)

	obj, err := svc.Add(ctx, services.ObjectInput{Type: "Montre"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err = svc.Add(ctx, services.ObjectInput{Type: "montre"})
	wantProblems(t, err, services.MsgObjectTypeCapitalized)
	_, err = svc.Add(ctx, services.ObjectInput{Type: "Montre"})
	wantProblems(t, err, services.MsgObjectExists)
	_, err = svc.Add(ctx, services.ObjectInput{})
	wantProblems(t, err, services.MsgObjectTypeRequired)

	_, err = svc.Update(ctx, editor, obj.ID, services.ObjectInput{Type: "Montre"})
	wantProblems(t, err, services.MsgNoChanges)
	if _, err := svc.Update(ctx, editor, obj.ID, services.ObjectInput{Type: "Tabatière"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.Delete(ctx, obj.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := countAuthorships(t, db); n != 1 {
		t.Fatalf("authorship rows = %d, want the update only", n)
	}
}

func TestAddressUniquenessUsesStreetAndDistrict(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewDB(t)
	svc := services.NewAddressService(db)

	a, err := svc.Add(ctx, services.AddressInput{Street: "rue Saint-Denis", District: "Halles"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, services.AddressInput{Street: "rue Saint-Denis", District: "Saint-Denis"}); err != nil {
		t.Fatalf("same street in another district: %v", err)
	}
	_, err = svc.Add(ctx, services.AddressInput{Street: "rue Saint-Denis", District: "Halles"})
	wantProblems(t, err, services.MsgAddressExists)
	_, err = svc.Add(ctx, services.AddressInput{})
	wantProblems(t, err, services.MsgAddressStreetRequired, services.MsgAddressDistrictRequired)

	_, err = svc.Update(ctx, editor, a.ID, services.AddressInput{Street: "rue Saint-Denis", District: "Halles"})
	wantProblems(t, err, services.MsgNoChanges)
	_, err = svc.Update(ctx, editor, a.ID, services.AddressInput{Street: "rue Saint-Denis", District: "Saint-Denis"})
	wantProblems(t, err, services.MsgAddressExists)
	if _, err := svc.Update(ctx, editor, a.ID, services.AddressInput{Street: "rue Montorgueil", District: "Halles"}); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestRoomUpdate(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewDB(t)
	svc := services.NewRoomService(db)

	theatre := models.Theatre{Name: "Opéra"}
	dbtest.MustCreate(t, db, &theatre)
	room := models.Room{Name: "Salle des Machines", OccupationDates: "1763-1770", TheatreID: dbtest.Ref(theatre.ID), Latitude: "48.86", Longitude: "2.33"}
	dbtest.MustCreate(t, db, &room)

	same := services.RoomInput{Name: room.Name, OccupationDates: room.OccupationDates, TheatreID: services.RefID(fmt.Sprint(theatre.ID))}
	_, err := svc.Update(ctx, editor, room.ID, same)
	wantProblems(t, err, services.MsgNoChanges)

	_, err = svc.Update(ctx, editor, room.ID, services.RoomInput{})
	wantProblems(t, err, services.MsgRoomNameRequired, services.MsgRoomDatesRequired)

	updated, err := svc.Update(ctx, editor, room.ID, services.RoomInput{Name: room.Name, OccupationDates: "1763-1781"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TheatreID != nil || updated.Latitude != "48.86" {
		t.Fatalf("updated = %+v", updated)
	}

	var entry models.Authorship
	db.First(&entry)
	if entry.TargetKind != models.TargetRoom || entry.TargetID != room.ID {
		t.Fatalf("authorship = %+v", entry)
	}

	_, err = svc.Update(ctx, editor, 999, same)
	wantNotFound(t, err)
}

func TestMutationOutcomesAreCounted(t *testing.T) {
	ctx := context.Background()
	svc := services.NewObjectService(dbtest.NewDB(t))

	ok := metrics.MutationCounter("object", "add", metrics.OutcomeOK)
	rejected := metrics.MutationCounter("object", "add", metrics.OutcomeInvalid)
	okBefore, rejectedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(rejected)

	svc.Add(ctx, services.ObjectInput{Type: "Bague"})
	svc.Add(ctx, services.ObjectInput{Type: "Bague"})

	if got := testutil.ToFloat64(ok) - okBefore; got != 1 {
		t.Errorf("ok adds counted = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rejected) - rejectedBefore; got != 1 {
		t.Errorf("rejected adds counted = %v, want 1", got)
	}
}
