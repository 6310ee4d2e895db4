package database_test

import (
	"context"
	"strings"
	"testing"

	"github.com/camden-git/pvtheatresbackend/database"
	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/testutil"
)

const seedDocument = `{
  "theatres": [
    {
      "name": "Comédie-Italienne",
      "rooms": [
        {"name": "Hôtel de Bourgogne", "occupation_dates": "1716-1783", "latitude": "48.8637", "longitude": "2.3484"},
        {"name": "Salle Favart", "occupation_dates": "1783-1793", "latitude": "48.8712", "longitude": "2.3377"}
      ]
    },
    {"name": "Opéra", "rooms": [{"name": "Salle de la Porte-Saint-Martin", "occupation_dates": "1781-1794"}]}
  ]
}`

func TestSeedReferenceDataIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	data, err := database.DecodeReferenceData(strings.NewReader(seedDocument))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	first, err := database.SeedReferenceData(ctx, db, data)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if first.TheatresCreated != 2 || first.RoomsCreated != 3 {
		t.Fatalf("first run = %+v", first)
	}

	second, err := database.SeedReferenceData(ctx, db, data)
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if second.TheatresCreated != 0 || second.RoomsCreated != 0 {
		t.Fatalf("second run = %+v", second)
	}

	var room models.Room
	if err := db.Preload("Theatre").Where("name = ?", "Salle Favart").First(&room).Error; err != nil {
		t.Fatalf("load room: %v", err)
	}
	if room.Theatre == nil || room.Theatre.Name != "Comédie-Italienne" || room.Latitude != "48.8712" {
		t.Fatalf("room = %+v", room)
	}
}

func TestDecodeReferenceDataRejectsBadDocuments(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown field": `{"theatres": [], "salles": []}`,
		"unnamed":       `{"theatres": [{"name": " "}]}`,
		"not json":      `theatres`,
	} {
		if _, err := database.DecodeReferenceData(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestForeignKeysCascadeAndSetNull(t *testing.T) {
	db := testutil.NewDB(t)

	theatre := models.Theatre{Name: "Opéra"}
	testutil.MustCreate(t, db, &theatre)
	room := models.Room{Name: "Salle", TheatreID: testutil.Ref(theatre.ID)}
	person := models.Person{FamilyName: "Dupuis", GivenName: "Marie"}
	address := models.Address{Street: "rue Mauconseil", District: "Halles"}
	testutil.MustCreate(t, db, &room, &person, &address)
	testutil.MustCreate(t, db, &models.Residence{PersonID: person.ID, AddressID: address.ID})
	report := models.ProcesVerbal{Date: "1784-04-06", TheatreID: testutil.Ref(theatre.ID)}
	testutil.MustCreate(t, db, &report)

	if err := db.Delete(&models.Theatre{}, theatre.ID).Error; err != nil {
		t.Fatalf("delete theatre: %v", err)
	}
	var reloadedRoom models.Room
	db.First(&reloadedRoom, room.ID)
	if reloadedRoom.TheatreID != nil {
		t.Fatalf("room still points at deleted theatre")
	}
	var reloadedReport models.ProcesVerbal
	db.First(&reloadedReport, report.ID)
	if reloadedReport.TheatreID != nil {
		t.Fatalf("report still points at deleted theatre")
	}

	if err := db.Delete(&models.Address{}, address.ID).Error; err != nil {
		t.Fatalf("delete address: %v", err)
	}
	var residences int64
	db.Model(&models.Residence{}).Count(&residences)
	if residences != 0 {
		t.Fatalf("residences = %d after deleting the address", residences)
	}

	err := db.Create(&models.Residence{PersonID: person.ID, AddressID: 999}).Error
	if err == nil {
		t.Fatalf("residence with unknown address was accepted")
	}
}

func TestSQLiteDSN(t *testing.T) {
	dsn := database.SQLiteDSN("archive.db")
	for _, param := range []string{"_foreign_keys=on", "_journal_mode=WAL", "_busy_timeout=5000"} {
		if !strings.Contains(dsn, param) {
			t.Errorf("dsn %q lacks %s", dsn, param)
		}
	}
	if !strings.HasPrefix(database.SQLiteDSN("file:archive.db?cache=shared"), "file:archive.db?cache=shared&") {
		t.Errorf("existing query string not extended")
	}
}

func TestLikeAny(t *testing.T) {
	sql, args, err := database.Builder.Select("id").From("persons").
		Where(database.LikeAny(database.ContainsPattern("Fav"), "family_name", "given_name")).
		ToSql()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if sql != "SELECT id FROM persons WHERE (family_name LIKE ? OR given_name LIKE ?)" {
		t.Fatalf("sql = %s", sql)
	}
	if len(args) != 2 || args[0] != "%Fav%" || args[1] != "%Fav%" {
		t.Fatalf("args = %v", args)
	}
}
