package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lunara-app/lunara/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "lunara-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse day %s: %v", value, err)
	}
	return parsed
}

func TestCycleRepositoryUserMonthUniqueness(t *testing.T) {
	repo := NewCycleRepository(openTestDatabase(t))

	first := models.Cycle{
		UserID:               7,
		Month:                "2023-11",
		StartDate:            day(t, "2023-11-02"),
		FlowLength:           5,
		PredictedCycleLength: 28,
		NextCycleStartDate:   day(t, "2023-11-30"),
	}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first cycle: %v", err)
	}

	duplicate := models.Cycle{
		UserID:               7,
		Month:                "2023-11",
		StartDate:            day(t, "2023-11-20"),
		FlowLength:           4,
		PredictedCycleLength: 28,
		NextCycleStartDate:   day(t, "2023-12-18"),
	}
	err := repo.Create(&duplicate)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey for duplicate user/month, got %v", err)
	}

	// Another user may hold the same month.
	other := models.Cycle{
		UserID:               9,
		Month:                "2023-11",
		StartDate:            day(t, "2023-11-05"),
		FlowLength:           5,
		PredictedCycleLength: 28,
		NextCycleStartDate:   day(t, "2023-12-03"),
	}
	if err := repo.Create(&other); err != nil {
		t.Fatalf("create cycle for other user: %v", err)
	}
}

func TestCycleRepositoryRoundTripsHistory(t *testing.T) {
	repo := NewCycleRepository(openTestDatabase(t))

	cycle := models.Cycle{
		UserID:               7,
		Month:                "2023-11",
		StartDate:            day(t, "2023-11-20"),
		FlowLength:           5,
		PredictedCycleLength: 28,
		PreviousCycleLengths: []int{28, 29},
		NextCycleStartDate:   day(t, "2023-12-18"),
	}
	if err := repo.Create(&cycle); err != nil {
		t.Fatalf("create cycle: %v", err)
	}

	cycle.PreviousCycleLengths = append(cycle.PreviousCycleLengths, 25)
	if err := repo.Save(&cycle); err != nil {
		t.Fatalf("save cycle: %v", err)
	}

	loaded, found, err := repo.FindByUserAndID(7, cycle.ID)
	if err != nil {
		t.Fatalf("load cycle: %v", err)
	}
	if !found {
		t.Fatal("expected cycle to be found")
	}
	if len(loaded.PreviousCycleLengths) != 3 || loaded.PreviousCycleLengths[2] != 25 {
		t.Fatalf("unexpected history after round trip: %v", loaded.PreviousCycleLengths)
	}
}

func TestCycleRepositoryFindLatestByUser(t *testing.T) {
	repo := NewCycleRepository(openTestDatabase(t))

	months := []struct {
		month string
		start string
		next  string
	}{
		{"2023-9", "2023-09-12", "2023-10-10"},
		{"2023-11", "2023-11-02", "2023-11-30"},
		{"2023-10", "2023-10-07", "2023-11-04"},
	}
	for _, m := range months {
		cycle := models.Cycle{
			UserID:               7,
			Month:                m.month,
			StartDate:            day(t, m.start),
			FlowLength:           5,
			PredictedCycleLength: 28,
			NextCycleStartDate:   day(t, m.next),
		}
		if err := repo.Create(&cycle); err != nil {
			t.Fatalf("create cycle for %s: %v", m.month, err)
		}
	}

	latest, found, err := repo.FindLatestByUser(7)
	if err != nil {
		t.Fatalf("find latest: %v", err)
	}
	if !found {
		t.Fatal("expected a latest cycle")
	}
	if latest.Month != "2023-11" {
		t.Fatalf("expected latest month 2023-11, got %s", latest.Month)
	}

	if _, found, err = repo.FindLatestByUser(404); err != nil || found {
		t.Fatalf("expected no cycle for unknown user, found=%v err=%v", found, err)
	}
}

func TestCycleRepositoryListByNextStartRange(t *testing.T) {
	repo := NewCycleRepository(openTestDatabase(t))

	cycles := []models.Cycle{
		{UserID: 1, Month: "2023-11", StartDate: day(t, "2023-11-07"), FlowLength: 5, PredictedCycleLength: 28, NextCycleStartDate: day(t, "2023-12-05")},
		{UserID: 2, Month: "2023-11", StartDate: day(t, "2023-11-09"), FlowLength: 5, PredictedCycleLength: 28, NextCycleStartDate: day(t, "2023-12-07")},
		{UserID: 3, Month: "2023-11", StartDate: day(t, "2023-11-22"), FlowLength: 5, PredictedCycleLength: 28, NextCycleStartDate: day(t, "2023-12-20")},
	}
	for i := range cycles {
		if err := repo.Create(&cycles[i]); err != nil {
			t.Fatalf("create cycle %d: %v", i, err)
		}
	}

	upcoming, err := repo.ListByNextStartRange(day(t, "2023-12-05"), day(t, "2023-12-08"))
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming cycles, got %d", len(upcoming))
	}
	if upcoming[0].UserID != 1 || upcoming[1].UserID != 2 {
		t.Fatalf("unexpected upcoming order: %v, %v", upcoming[0].UserID, upcoming[1].UserID)
	}
}
