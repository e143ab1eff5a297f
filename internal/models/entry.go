package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EntryKind tags an exercise entry with its variant. Entries created through
// the API carry the tag explicitly; legacy export documents do not, and are
// classified structurally via DetectEntryKind.
type EntryKind string

const (
	KindStrength EntryKind = "strength"
	KindCardio   EntryKind = "cardio"
	KindSwim     EntryKind = "swim"
)

// SwimName is the fixed exercise name used by swim entries.
const SwimName = "Swimming"

// Post-swim feeling values. Empty string means unset.
const (
	FeelingTired     = "Tired"
	FeelingEnergized = "Energized"
	FeelingRelaxed   = "Relaxed"
)

// ValidFeeling reports whether s is an accepted post-swim feeling (or unset).
func ValidFeeling(s string) bool {
	switch s {
	case "", FeelingTired, FeelingEnergized, FeelingRelaxed:
		return true
	}
	return false
}

// Weight is a strength-entry load: a single value applied to all sets, or a
// per-set sequence. Legacy documents store it as a number, a numeric string,
// or an array, so it gets a flexible unmarshal.
type Weight []float64

func (w *Weight) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*w = nil
		return nil
	}
	switch data[0] {
	case '[':
		var vals []float64
		if err := json.Unmarshal(data, &vals); err != nil {
			return fmt.Errorf("parsing weight array: %w", err)
		}
		*w = vals
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*w = nil
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parsing weight %q: %w", s, err)
		}
		*w = Weight{v}
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("parsing weight: %w", err)
		}
		*w = Weight{v}
	}
	return nil
}

func (w Weight) MarshalJSON() ([]byte, error) {
	switch len(w) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(w[0])
	default:
		return json.Marshal([]float64(w))
	}
}

// ExerciseEntry is one logged movement within a workout. The Kind tag decides
// which fields are meaningful; the rest stay at their zero values.
type ExerciseEntry struct {
	Kind EntryKind `json:"kind,omitempty"`
	Name string    `json:"exercise"`

	// Strength
	Weight Weight `json:"weight,omitempty"`
	Sets   int    `json:"sets,omitempty"`
	Reps   []int  `json:"reps,omitempty"`

	// Cardio
	DurationMinutes *float64 `json:"duration,omitempty"`
	DistanceMiles   *float64 `json:"distance,omitempty"`

	// Swim
	DistanceMeters  float64  `json:"distanceMeters,omitempty"`
	Strokes         []string `json:"strokes,omitempty"`
	FeltDizzy       bool     `json:"feltDizzy,omitempty"`
	PostSwimFeeling string   `json:"postSwimFeeling,omitempty"`
}

// EffectiveKind returns the explicit tag when present, falling back to
// structural classification for untagged entries.
func (e ExerciseEntry) EffectiveKind() EntryKind {
	switch e.Kind {
	case KindStrength, KindCardio, KindSwim:
		return e.Kind
	}
	if e.Name == SwimName {
		return KindSwim
	}
	if (e.DurationMinutes != nil || e.DistanceMiles != nil) && e.Sets == 0 && len(e.Reps) == 0 {
		return KindCardio
	}
	return KindStrength
}

// DetectEntryKind classifies a raw, untagged entry document by probing its
// keys, without committing to a full decode.
func DetectEntryKind(raw json.RawMessage) EntryKind {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return KindStrength // fallback
	}
	if k, ok := probe["kind"]; ok {
		var s string
		if json.Unmarshal(k, &s) == nil {
			switch EntryKind(s) {
			case KindStrength, KindCardio, KindSwim:
				return EntryKind(s)
			}
		}
	}
	if name, ok := probe["exercise"]; ok {
		var s string
		if json.Unmarshal(name, &s) == nil && s == SwimName {
			return KindSwim
		}
	}
	_, hasDuration := probe["duration"]
	_, hasDistance := probe["distance"]
	_, hasSets := probe["sets"]
	_, hasReps := probe["reps"]
	if (hasDuration || hasDistance) && !hasSets && !hasReps {
		return KindCardio
	}
	return KindStrength
}
