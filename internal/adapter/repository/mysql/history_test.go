package mysql

import (
	"context"
	"testing"
	"time"

	historyDomain "creditwise-backend/internal/domain/history"
)

func TestHistoryRepository_UpsertOverwritesSameMonth(t *testing.T) {
	repo := NewHistoryRepository(openTestDB(t))
	ctx := context.Background()

	first := &historyDomain.Entry{
		UserID: "user-1", Year: 2026, Month: 8,
		Score: 640, Category: "Fair",
		CalculatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first Upsert err: %v", err)
	}

	second := &historyDomain.Entry{
		UserID: "user-1", Year: 2026, Month: 8,
		Score: 685, Category: "Good",
		CalculatedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second Upsert err: %v", err)
	}

	entries, err := repo.ListByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUserID err: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (same month overwritten)", len(entries))
	}
	if entries[0].Score != 685 || entries[0].Category != "Good" {
		t.Fatalf("entry = %+v, want the overwritten values", entries[0])
	}
}

func TestHistoryRepository_ListOrderedAcrossYears(t *testing.T) {
	repo := NewHistoryRepository(openTestDB(t))
	ctx := context.Background()

	// Insert out of order, spanning a year boundary.
	months := []struct {
		year, month, score int
	}{
		{2026, 2, 700},
		{2025, 11, 650},
		{2026, 1, 680},
		{2025, 12, 660},
	}
	for _, m := range months {
		e := &historyDomain.Entry{
			UserID: "user-1", Year: m.year, Month: m.month,
			Score: m.score, Category: "Fair", CalculatedAt: time.Now().UTC(),
		}
		if err := repo.Upsert(ctx, e); err != nil {
			t.Fatalf("Upsert %d-%d err: %v", m.year, m.month, err)
		}
	}

	entries, err := repo.ListByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUserID err: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(entries))
	}
	wantScores := []int{650, 660, 680, 700}
	for i, e := range entries {
		if e.Score != wantScores[i] {
			t.Fatalf("position %d: score %d, want %d (chronological order)", i, e.Score, wantScores[i])
		}
	}
}

func TestHistoryRepository_ListScopedToUser(t *testing.T) {
	repo := NewHistoryRepository(openTestDB(t))
	ctx := context.Background()

	for _, user := range []string{"user-1", "user-2"} {
		e := &historyDomain.Entry{
			UserID: user, Year: 2026, Month: 8,
			Score: 700, Category: "Good", CalculatedAt: time.Now().UTC(),
		}
		if err := repo.Upsert(ctx, e); err != nil {
			t.Fatalf("Upsert for %s err: %v", user, err)
		}
	}

	entries, err := repo.ListByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUserID err: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != "user-1" {
		t.Fatalf("entries = %+v, want only user-1 rows", entries)
	}
}
