// Package backup imports workout history exported from the old hosted
// document store into a SplitFit server.
package backup

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/splitfit/internal/models"
)

// exportTimestamp handles the document-store timestamp encodings seen in
// exports: {"seconds": N}, {"_seconds": N}, or an RFC 3339 string.
type exportTimestamp struct {
	time.Time
}

func (t *exportTimestamp) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("parsing export timestamp %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}
	var obj struct {
		Seconds  *int64 `json:"seconds"`
		USeconds *int64 `json:"_seconds"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("parsing export timestamp: %w", err)
	}
	switch {
	case obj.Seconds != nil:
		t.Time = time.Unix(*obj.Seconds, 0).UTC()
	case obj.USeconds != nil:
		t.Time = time.Unix(*obj.USeconds, 0).UTC()
	default:
		return fmt.Errorf("export timestamp missing seconds field")
	}
	return nil
}

type exportWorkout struct {
	SplitDay    string            `json:"splitDay"`
	Timestamp   exportTimestamp   `json:"timestamp"`
	Exercises   []json.RawMessage `json:"exercises"`
	Nutrition   string            `json:"nutrition"`
	Quality     string            `json:"quality"`
	Supplements []string          `json:"supplements"`
}

// ParseExport reads one export file: either a bare array of workout documents
// or an object with a "workouts" array. Exercise entries in these files carry
// no kind tag, so each one is classified structurally before decoding.
//
// Each workout gets a deterministic ID derived from the file content and its
// position, so re-sending a file after a partial failure cannot duplicate
// workouts already accepted by the server.
func ParseExport(r io.Reader) ([]models.Workout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	sum := sha256.Sum256(data)

	var docs []exportWorkout
	if err := json.Unmarshal(data, &docs); err != nil {
		var wrapper struct {
			Workouts []exportWorkout `json:"workouts"`
		}
		if err2 := json.Unmarshal(data, &wrapper); err2 != nil {
			return nil, fmt.Errorf("parsing export: %w", err)
		}
		docs = wrapper.Workouts
	}

	workouts := make([]models.Workout, 0, len(docs))
	for i, doc := range docs {
		if doc.SplitDay == "" {
			return nil, fmt.Errorf("workout %d: missing splitDay", i)
		}
		w := models.Workout{
			ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%x/%d", sum, i))),
			Category:    doc.SplitDay,
			Nutrition:   doc.Nutrition,
			Quality:     doc.Quality,
			Supplements: doc.Supplements,
			LoggedAt:    doc.Timestamp.Time,
		}
		for j, raw := range doc.Exercises {
			var e models.ExerciseEntry
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("workout %d entry %d: %w", i, j, err)
			}
			e.Kind = models.DetectEntryKind(raw)
			w.Entries = append(w.Entries, e)
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}
