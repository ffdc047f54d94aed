package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tyler/huntboard/internal/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Application{},
		&domain.NetworkContact{},
		&domain.RevenueWeek{},
		&domain.ContentPost{},
		&domain.WeeklyReview{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestRevenueUpsertKeepsExistingID(t *testing.T) {
	repo := NewRevenueRepository(testDB(t))
	ctx := context.Background()
	weekOf := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

	first, err := repo.Upsert(ctx, &domain.RevenueWeek{
		ID:             uuid.New().String(),
		WeekOf:         weekOf,
		ProductRevenue: 1000,
		WeeklyTotal:    1000,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.Upsert(ctx, &domain.RevenueWeek{
		ID:             uuid.New().String(),
		WeekOf:         weekOf,
		ProductRevenue: 2500,
		WeeklyTotal:    2500,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	weeks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(weeks) != 1 {
		t.Fatalf("expected 1 row after repeat upsert, got %d", len(weeks))
	}

	if second.ID != first.ID {
		t.Errorf("repeat upsert returned id %q, want the original %q", second.ID, first.ID)
	}
	if second.ProductRevenue != 2500 || second.WeeklyTotal != 2500 {
		t.Errorf("repeat upsert did not carry updated values: %+v", second)
	}

	// The returned id must resolve for the follow-up update/delete routes.
	stored, err := repo.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("returned id does not resolve: %v", err)
	}
	if stored.ProductRevenue != 2500 {
		t.Errorf("stored revenue = %v, want 2500", stored.ProductRevenue)
	}
}

func TestRevenueUpsertCreatesDistinctWeeks(t *testing.T) {
	repo := NewRevenueRepository(testDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		weekOf := time.Date(2025, time.March, 2+7*i, 0, 0, 0, 0, time.UTC)
		if _, err := repo.Upsert(ctx, &domain.RevenueWeek{
			ID:     uuid.New().String(),
			WeekOf: weekOf,
		}); err != nil {
			t.Fatalf("upsert week %d: %v", i, err)
		}
	}

	weeks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(weeks) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(weeks))
	}
	// Newest first.
	if !weeks[0].WeekOf.After(weeks[2].WeekOf) {
		t.Errorf("expected descending week order, got %v .. %v", weeks[0].WeekOf, weeks[2].WeekOf)
	}
}
