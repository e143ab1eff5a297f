package mcp

import (
	"context"
	"time"

	"github.com/meltforce/splitfit/internal/models"
	"github.com/meltforce/splitfit/internal/storage"
)

// DataSource abstracts the data layer for MCP tools, so handlers can be
// tested against a fake.
type DataSource interface {
	QueryWorkouts(ctx context.Context, userID int, filter storage.WorkoutFilter) ([]models.Workout, error)
	LatestWorkout(ctx context.Context, userID int) (*models.Workout, error)
	GetProfile(ctx context.Context, userID int) (*models.Profile, error)
	QueryBodyMetrics(ctx context.Context, userID int, start, end time.Time) ([]models.BodyMetric, error)
	ExercisePerformance(ctx context.Context, userID int, exerciseName string) ([]storage.PerformancePoint, error)
	ExerciseNames(ctx context.Context, userID int) ([]string, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
