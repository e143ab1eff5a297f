package recommend

import (
	"encoding/json"
	"fmt"

	"github.com/meltforce/splitfit/internal/models"
)

// PlanKind selects which recommendation the prompt asks for.
type PlanKind string

const (
	PlanPreWorkout  PlanKind = "pre-workout"
	PlanWorkout     PlanKind = "workout"
	PlanPostWorkout PlanKind = "post-workout"
)

// ValidPlanKind reports whether k is a known plan kind.
func ValidPlanKind(k PlanKind) bool {
	switch k {
	case PlanPreWorkout, PlanWorkout, PlanPostWorkout:
		return true
	}
	return false
}

// recentLimit caps how many workouts make it into the prompt.
const recentLimit = 5

type profileSummary struct {
	FirstName   string `json:"firstName,omitempty"`
	Split       string `json:"split,omitempty"`
	Supplements string `json:"supplements,omitempty"`
	Amount      string `json:"amount,omitempty"`
}

type workoutSummary struct {
	SplitDay  string   `json:"splitDay"`
	Exercises []string `json:"exercises"`
	Quality   string   `json:"quality,omitempty"`
}

// BuildPrompt composes the chat prompt for a plan kind from the user's
// profile and their most recent workouts (newest first). Exercise entries are
// summarized through their display lines rather than raw documents.
func BuildPrompt(kind PlanKind, profile *models.Profile, workouts []models.Workout) (string, error) {
	if !ValidPlanKind(kind) {
		return "", fmt.Errorf("unknown plan kind %q", kind)
	}

	ps := profileSummary{}
	if profile != nil {
		ps = profileSummary{
			FirstName:   profile.FirstName,
			Split:       profile.SplitTemplate,
			Supplements: profile.Supplements,
			Amount:      profile.Amount,
		}
	}
	profileJSON, err := json.Marshal(ps)
	if err != nil {
		return "", fmt.Errorf("marshaling profile summary: %w", err)
	}

	if len(workouts) > recentLimit {
		workouts = workouts[:recentLimit]
	}
	summaries := make([]workoutSummary, 0, len(workouts))
	for _, w := range workouts {
		summaries = append(summaries, workoutSummary{
			SplitDay:  w.Category,
			Exercises: w.Summaries(),
			Quality:   w.Quality,
		})
	}
	workoutsJSON, err := json.Marshal(summaries)
	if err != nil {
		return "", fmt.Errorf("marshaling workout summaries: %w", err)
	}

	summary := fmt.Sprintf("User Profile: %s. Recent Workouts: %s.", profileJSON, workoutsJSON)

	switch kind {
	case PlanPreWorkout:
		return summary + " Based on this data, recommend a pre-workout plan: what to eat and which supplements to take and when.", nil
	case PlanWorkout:
		return summary + " Based on this data, suggest a workout plan for today with exercise order, sets, and reps to maximize gains and minimize fatigue.", nil
	default: // PlanPostWorkout
		return summary + " Based on this data, provide a post-workout plan: what to eat and which supplements to take.", nil
	}
}
