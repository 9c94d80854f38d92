package repository_test

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestDeleteUnknownIDReturnsZeroRows(t *testing.T) {
	db := setupDB(t)

	cases := repository.NewCaseRepository(db)
	rows, err := cases.Delete(999)
	if err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if rows != 0 {
		t.Errorf("expected 0 rows affected, got %d", rows)
	}

	hearings := repository.NewHearingRepository(db)
	rows, err = hearings.Delete(999)
	if err != nil || rows != 0 {
		t.Errorf("expected 0 rows and no error, got rows=%d err=%v", rows, err)
	}
}

func TestFindAbsentReturnsNil(t *testing.T) {
	db := setupDB(t)

	cases := repository.NewCaseRepository(db)
	record, err := cases.FindByID(1)
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if record != nil {
		t.Errorf("expected nil for absent record, got %+v", record)
	}

	record, err = cases.FindByCaseNumber("missing")
	if err != nil || record != nil {
		t.Errorf("expected nil, nil; got %+v, %v", record, err)
	}
}

func TestCaseClientJoinIsPairUnique(t *testing.T) {
	db := setupDB(t)

	cases := repository.NewCaseRepository(db)
	clients := repository.NewClientRepository(db)

	record := &database.Case{CaseNumber: "R-1", Title: "T", Type: database.CaseTypeCivil, Status: database.CaseStatusNew}
	if err := cases.Create(record); err != nil {
		t.Fatal(err)
	}
	client := &database.Client{Name: "Ada"}
	if err := clients.Create(client); err != nil {
		t.Fatal(err)
	}

	if err := cases.AddClient(record, client); err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	if err := cases.AddClient(record, client); err != nil {
		t.Fatalf("duplicate append failed: %v", err)
	}

	var count int64
	db.Table("case_clients").Where("case_id = ?", record.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 join row, got %d", count)
	}
}
