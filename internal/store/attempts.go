package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AttemptRecord is one completed attempt as recorded locally.
type AttemptRecord struct {
	ID              string
	CourseID        int
	CourseName      string
	Mode            string
	TotalQuestions  int
	CorrectCount    int
	IncorrectCount  int
	FlaggedCount    int
	SkippedCount    int
	AccuracyPercent int
	DurationSecs    int
	TimedOut        bool
	Submitted       bool
	FinishedAt      time.Time
}

// CourseStats aggregates local history for one course.
type CourseStats struct {
	CourseID      int
	Attempts      int
	BestAccuracy  int
	MeanAccuracy  float64
	LastAttemptAt time.Time
}

// AttemptRepo provides access to the local attempt history.
type AttemptRepo interface {
	// Append records a completed attempt.
	Append(ctx context.Context, rec AttemptRecord) error

	// MarkSubmitted flips the submitted flag once the server accepted
	// the attempt.
	MarkSubmitted(ctx context.Context, attemptID string) error

	// Recent returns the most recent attempts, newest first. A zero or
	// negative limit means a default page of 20.
	Recent(ctx context.Context, limit int) ([]AttemptRecord, error)

	// Stats aggregates history for a course, or nil if none exists.
	Stats(ctx context.Context, courseID int) (*CourseStats, error)

	// Reset deletes all local history.
	Reset(ctx context.Context) error
}

type attemptRepo struct {
	db *sql.DB
}

const defaultRecentLimit = 20

func (r *attemptRepo) Append(ctx context.Context, rec AttemptRecord) error {
	finished := rec.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO attempts
		(id, course_id, course_name, mode, total_questions, correct_count,
		 incorrect_count, flagged_count, skipped_count, accuracy_percent,
		 duration_secs, timed_out, submitted, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CourseID, rec.CourseName, rec.Mode, rec.TotalQuestions,
		rec.CorrectCount, rec.IncorrectCount, rec.FlaggedCount,
		rec.SkippedCount, rec.AccuracyPercent, rec.DurationSecs,
		boolToInt(rec.TimedOut), boolToInt(rec.Submitted), finished.UTC())
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) MarkSubmitted(ctx context.Context, attemptID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE attempts SET submitted = 1 WHERE id = ?`, attemptID)
	if err != nil {
		return fmt.Errorf("mark submitted: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]AttemptRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	rows, err := r.db.QueryContext(ctx, `SELECT
		id, course_id, course_name, mode, total_questions, correct_count,
		incorrect_count, flagged_count, skipped_count, accuracy_percent,
		duration_secs, timed_out, submitted, finished_at
		FROM attempts ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var timedOut, submitted int
		if err := rows.Scan(&rec.ID, &rec.CourseID, &rec.CourseName,
			&rec.Mode, &rec.TotalQuestions, &rec.CorrectCount,
			&rec.IncorrectCount, &rec.FlaggedCount, &rec.SkippedCount,
			&rec.AccuracyPercent, &rec.DurationSecs, &timedOut,
			&submitted, &rec.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.TimedOut = timedOut != 0
		rec.Submitted = submitted != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *attemptRepo) Stats(ctx context.Context, courseID int) (*CourseStats, error) {
	row := r.db.QueryRowContext(ctx, `SELECT
		COUNT(*), COALESCE(MAX(accuracy_percent), 0),
		COALESCE(AVG(accuracy_percent), 0), COALESCE(MAX(finished_at), '')
		FROM attempts WHERE course_id = ?`, courseID)

	var stats CourseStats
	var last string
	if err := row.Scan(&stats.Attempts, &stats.BestAccuracy, &stats.MeanAccuracy, &last); err != nil {
		return nil, fmt.Errorf("scan course stats: %w", err)
	}
	if stats.Attempts == 0 {
		return nil, nil
	}
	stats.CourseID = courseID
	if t, err := time.Parse(time.RFC3339, last); err == nil {
		stats.LastAttemptAt = t
	}
	return &stats, nil
}

func (r *attemptRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
