package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/meltforce/splitfit/internal/models"
)

// InsertBodyMetric records one body-measurement sample. Returns the new row ID.
func (db *DB) InsertBodyMetric(ctx context.Context, m models.BodyMetric) (int64, error) {
	var id int64
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO body_metrics (user_id, weight, bmi, body_fat, recorded_at)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		m.UserID, m.Weight, m.BMI, m.BodyFat, m.RecordedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting body metric: %w", err)
	}
	return id, nil
}

// QueryBodyMetrics returns a user's samples in a time range, ascending —
// the order the history charts consume them in.
func (db *DB) QueryBodyMetrics(ctx context.Context, userID int, start, end time.Time) ([]models.BodyMetric, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, weight, bmi, body_fat, recorded_at
		 FROM body_metrics
		 WHERE user_id = $1 AND recorded_at >= $2 AND recorded_at < $3
		 ORDER BY recorded_at ASC`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying body metrics: %w", err)
	}
	defer rows.Close()

	var result []models.BodyMetric
	for rows.Next() {
		var m models.BodyMetric
		if err := rows.Scan(&m.ID, &m.UserID, &m.Weight, &m.BMI, &m.BodyFat, &m.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning body metric: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
