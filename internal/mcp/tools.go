package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/splitfit/internal/insights"
	"github.com/meltforce/splitfit/internal/split"
	"github.com/meltforce/splitfit/internal/storage"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Retrieve logged workouts with their exercise entries and display summaries, newest first."),
	mcp.WithString("category", mcp.Description("Filter by split-day category (e.g. Push, Pull, Legs, Cardio, Swimming)")),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetNextSplitDay = mcp.NewTool("get_next_split_day",
	mcp.WithDescription("Compute which split day the user should train next, based on their template, exclusions, and most recent session."),
)

var toolGetBodyMetrics = mcp.NewTool("get_body_metrics",
	mcp.WithDescription("Retrieve body measurement history (weight, BMI, body fat) in a time range, oldest first."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetExercisePerformance = mcp.NewTool("get_exercise_performance",
	mcp.WithDescription("Get the weight/rep progression for one exercise across all workouts, oldest first. Omit the exercise parameter to list available exercise names."),
	mcp.WithString("exercise", mcp.Description("Exercise name (e.g. Bench Press)")),
)

var toolGetInsights = mcp.NewTool("get_insights",
	mcp.WithDescription("Derive training insights from the full workout history: most frequent training hour, most frequent pre-workout nutrition, quality distribution, supplement usage."),
)

// --- Tool handlers ---

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	workouts, err := h.ds.QueryWorkouts(ctx, uid, storage.WorkoutFilter{
		Category: req.GetString("category", ""),
		Start:    start,
		End:      end,
	})
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	type view struct {
		Category  string   `json:"splitDay"`
		LoggedAt  string   `json:"loggedAt"`
		Quality   string   `json:"quality,omitempty"`
		Summaries []string `json:"exercises"`
	}
	views := make([]view, len(workouts))
	for i, w := range workouts {
		views[i] = view{
			Category:  w.Category,
			LoggedAt:  w.LoggedAt.Format(time.RFC3339),
			Quality:   w.Quality,
			Summaries: w.Summaries(),
		}
	}

	result, err := mcp.NewToolResultJSON(views)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getNextSplitDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	profile, err := h.ds.GetProfile(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_next_split_day", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if profile == nil || profile.SplitTemplate == "" {
		return mcp.NewToolResultText("No split template configured; set one in the profile first."), nil
	}

	var lastCategory string
	last, err := h.ds.LatestWorkout(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_next_split_day", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if last != nil {
		lastCategory = last.Category
	}

	next, found, err := split.NextCategory(profile.SplitTemplate, lastCategory, profile.ExcludedSet())
	if err != nil {
		return mcp.NewToolResultError("rotation failed: " + err.Error()), nil
	}
	if !found {
		return mcp.NewToolResultText("Every category in the split is excluded; no rotation target."), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]string{
		"template":     profile.SplitTemplate,
		"lastCategory": lastCategory,
		"nextCategory": next,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getBodyMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	metrics, err := h.ds.QueryBodyMetrics(ctx, uid, start, end)
	if err != nil {
		h.log.Error("mcp get_body_metrics", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(metrics)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExercisePerformance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	exercise := req.GetString("exercise", "")
	if exercise == "" {
		names, err := h.ds.ExerciseNames(ctx, uid)
		if err != nil {
			h.log.Error("mcp get_exercise_performance names", "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		result, err := mcp.NewToolResultJSON(map[string]any{"exercises": names})
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	series, err := h.ds.ExercisePerformance(ctx, uid, exercise)
	if err != nil {
		h.log.Error("mcp get_exercise_performance", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(series)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getInsights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	workouts, err := h.ds.QueryWorkouts(ctx, uid, storage.WorkoutFilter{})
	if err != nil {
		h.log.Error("mcp get_insights", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"analysis":    insights.Analyze(workouts),
		"quality":     insights.QualityDistribution(workouts),
		"supplements": insights.SupplementUsage(workouts),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
