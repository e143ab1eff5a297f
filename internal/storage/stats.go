package storage

import (
	"context"
	"time"

	"github.com/meltforce/splitfit/internal/models"
)

// PerformancePoint is one sample in an exercise's performance series.
type PerformancePoint struct {
	Date   time.Time     `json:"date"`
	Weight models.Weight `json:"weight"`
	Reps   []int         `json:"reps,omitempty"`
}

// ExercisePerformance returns a time-ascending series of weight/rep samples
// for one exercise across the user's workouts. Exercise entries live inside
// the workout JSONB document, so the flattening happens here rather than in
// SQL.
func (db *DB) ExercisePerformance(ctx context.Context, userID int, exerciseName string) ([]PerformancePoint, error) {
	workouts, err := db.QueryWorkouts(ctx, userID, WorkoutFilter{})
	if err != nil {
		return nil, err
	}

	var series []PerformancePoint
	// QueryWorkouts is logged_at descending; walk backwards for an ascending series.
	for i := len(workouts) - 1; i >= 0; i-- {
		w := workouts[i]
		for _, e := range w.Entries {
			if e.Name != exerciseName {
				continue
			}
			series = append(series, PerformancePoint{
				Date:   w.LoggedAt,
				Weight: e.Weight,
				Reps:   e.Reps,
			})
		}
	}
	return series, nil
}

// ExerciseNames returns the distinct exercise names across a user's history,
// in first-logged order.
func (db *DB) ExerciseNames(ctx context.Context, userID int) ([]string, error) {
	workouts, err := db.QueryWorkouts(ctx, userID, WorkoutFilter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for i := len(workouts) - 1; i >= 0; i-- {
		for _, e := range workouts[i].Entries {
			if e.Name == "" || seen[e.Name] {
				continue
			}
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names, nil
}
