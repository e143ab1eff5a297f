package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout is one logged training session. Immutable once created except for
// deletion.
type Workout struct {
	ID          uuid.UUID       `json:"id"`
	UserID      int             `json:"-"`
	Category    string          `json:"splitDay"`
	Nutrition   string          `json:"nutrition,omitempty"`
	Quality     string          `json:"quality,omitempty"`
	Supplements []string        `json:"supplements,omitempty"`
	Entries     []ExerciseEntry `json:"exercises"`
	LoggedAt    time.Time       `json:"loggedAt"`
}

// Summaries returns the display line for each entry, in order.
func (w Workout) Summaries() []string {
	out := make([]string, len(w.Entries))
	for i, e := range w.Entries {
		out[i] = e.Describe()
	}
	return out
}

// Profile is the per-user training configuration.
type Profile struct {
	UserID        int             `json:"-"`
	FirstName     string          `json:"firstName,omitempty"`
	SplitTemplate string          `json:"split"`
	Supplements   string          `json:"supplements,omitempty"`
	Amount        string          `json:"amount,omitempty"`
	// Excluded maps a category label to whether the user opted out of it.
	// Stale labels from an earlier template choice are kept and ignored at
	// read time by the rotation resolver.
	Excluded  map[string]bool `json:"excludedCategories,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ExcludedSet returns only the labels actually opted out of.
func (p Profile) ExcludedSet() map[string]bool {
	out := make(map[string]bool, len(p.Excluded))
	for label, off := range p.Excluded {
		if off {
			out[label] = true
		}
	}
	return out
}

// BodyMetric is one body-measurement sample used by the history charts.
type BodyMetric struct {
	ID         int64     `json:"id"`
	UserID     int       `json:"-"`
	Weight     float64   `json:"weight"`
	BMI        float64   `json:"bmi"`
	BodyFat    float64   `json:"bodyFat"`
	RecordedAt time.Time `json:"recordedAt"`
}
