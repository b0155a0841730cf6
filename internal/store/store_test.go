package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		s.Attempts().Reset(context.Background())
		s.Close()
	})
	return s
}

func testRecord(id string, courseID, accuracy int) AttemptRecord {
	return AttemptRecord{
		ID:              id,
		CourseID:        courseID,
		CourseName:      "Algebra",
		Mode:            "quiz",
		TotalQuestions:  10,
		CorrectCount:    accuracy / 10,
		IncorrectCount:  2,
		FlaggedCount:    1,
		SkippedCount:    3,
		AccuracyPercent: accuracy,
		DurationSecs:    300,
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	recs, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent on empty store: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("len = %d, want 0", len(recs))
	}

	older := testRecord("a-1", 1, 50)
	older.FinishedAt = time.Now().Add(-time.Hour)
	newer := testRecord("a-2", 1, 80)
	newer.TimedOut = true

	if err := repo.Append(ctx, older); err != nil {
		t.Fatalf("Append older: %v", err)
	}
	if err := repo.Append(ctx, newer); err != nil {
		t.Fatalf("Append newer: %v", err)
	}

	recs, err = repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].ID != "a-2" {
		t.Errorf("recs[0].ID = %q, want a-2 (newest first)", recs[0].ID)
	}
	if !recs[0].TimedOut {
		t.Error("expected TimedOut round-tripped")
	}
	if recs[0].Submitted {
		t.Error("expected Submitted false before MarkSubmitted")
	}
	if recs[1].AccuracyPercent != 50 {
		t.Errorf("AccuracyPercent = %d, want 50", recs[1].AccuracyPercent)
	}
}

func TestRecent_Limit(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rec := testRecord(string(rune('a'+i)), 1, 60)
		rec.FinishedAt = time.Now().Add(time.Duration(i) * time.Minute)
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	recs, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 3 {
		t.Errorf("len = %d, want 3", len(recs))
	}
}

func TestMarkSubmitted(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	if err := repo.Append(ctx, testRecord("a-1", 1, 70)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.MarkSubmitted(ctx, "a-1"); err != nil {
		t.Fatalf("MarkSubmitted: %v", err)
	}

	recs, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if !recs[0].Submitted {
		t.Error("expected Submitted true after MarkSubmitted")
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	stats, err := repo.Stats(ctx, 1)
	if err != nil {
		t.Fatalf("Stats on empty store: %v", err)
	}
	if stats != nil {
		t.Fatal("expected nil stats for course with no attempts")
	}

	if err := repo.Append(ctx, testRecord("a-1", 1, 40)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Append(ctx, testRecord("a-2", 1, 80)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Append(ctx, testRecord("a-3", 2, 99)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	stats, err = repo.Stats(ctx, 1)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats == nil {
		t.Fatal("expected stats for course 1")
	}
	if stats.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", stats.Attempts)
	}
	if stats.BestAccuracy != 80 {
		t.Errorf("BestAccuracy = %d, want 80", stats.BestAccuracy)
	}
	if stats.MeanAccuracy != 60 {
		t.Errorf("MeanAccuracy = %v, want 60", stats.MeanAccuracy)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	if err := repo.Append(ctx, testRecord("a-1", 1, 70)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	recs, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("len = %d after reset, want 0", len(recs))
	}
}
