package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/meltforce/splitfit/internal/models"
)

// InsertWorkout stores a workout with its exercise entries as a JSONB
// document. The ID must be set by the caller. Re-inserting an existing ID is
// a no-op, which keeps backup imports idempotent across retries.
func (db *DB) InsertWorkout(ctx context.Context, w models.Workout) error {
	entries, err := json.Marshal(w.Entries)
	if err != nil {
		return fmt.Errorf("marshaling entries: %w", err)
	}
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO workouts (id, user_id, category, nutrition, quality, supplements, entries, logged_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (id) DO NOTHING`,
		w.ID, w.UserID, w.Category, w.Nutrition, w.Quality, w.Supplements, entries, w.LoggedAt)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	return nil
}

// WorkoutFilter narrows QueryWorkouts. Zero values mean "no filter".
type WorkoutFilter struct {
	Category string
	Start    time.Time
	End      time.Time
	Limit    int
}

// QueryWorkouts retrieves a user's workouts ordered by logged_at descending.
func (db *DB) QueryWorkouts(ctx context.Context, userID int, filter WorkoutFilter) ([]models.Workout, error) {
	query := `SELECT id, user_id, category, nutrition, quality, supplements, entries, logged_at
		 FROM workouts WHERE user_id = $1`
	args := []any{userID}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if !filter.Start.IsZero() {
		args = append(args, filter.Start)
		query += fmt.Sprintf(" AND logged_at >= $%d", len(args))
	}
	if !filter.End.IsZero() {
		args = append(args, filter.End)
		query += fmt.Sprintf(" AND logged_at < $%d", len(args))
	}
	query += " ORDER BY logged_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// LatestWorkout returns the most recent workout, or nil when none exist.
func (db *DB) LatestWorkout(ctx context.Context, userID int) (*models.Workout, error) {
	workouts, err := db.QueryWorkouts(ctx, userID, WorkoutFilter{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, nil
	}
	return &workouts[0], nil
}

// GetWorkout retrieves a single workout by ID, scoped to the user.
func (db *DB) GetWorkout(ctx context.Context, workoutID uuid.UUID, userID int) (*models.Workout, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, category, nutrition, quality, supplements, entries, logged_at
		 FROM workouts WHERE id = $1 AND user_id = $2`,
		workoutID, userID)

	w, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

// DeleteWorkout removes a workout. Returns true if a row was deleted.
func (db *DB) DeleteWorkout(ctx context.Context, workoutID uuid.UUID, userID int) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2`, workoutID, userID)
	if err != nil {
		return false, fmt.Errorf("deleting workout: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanWorkout(row pgx.Row) (models.Workout, error) {
	var w models.Workout
	var entries []byte
	err := row.Scan(&w.ID, &w.UserID, &w.Category, &w.Nutrition, &w.Quality,
		&w.Supplements, &entries, &w.LoggedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return w, err
		}
		return w, fmt.Errorf("scanning workout: %w", err)
	}
	if len(entries) > 0 {
		if err := json.Unmarshal(entries, &w.Entries); err != nil {
			return w, fmt.Errorf("unmarshaling entries: %w", err)
		}
	}
	return w, nil
}
