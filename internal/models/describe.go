package models

import (
	"strconv"
	"strings"
)

// Describe renders an entry as the one-line summary shown on workout cards.
// It is purely presentational: absent numeric fields render as zero, absent
// text fields as empty segments, and it never fails.
//
// The cardio form keeps the historical spacing of the original cards: the two
// clauses are joined by a single space whether or not they are present, so an
// entry with only a distance renders as "Run -  3 miles". Tests pin this.
func (e ExerciseEntry) Describe() string {
	switch e.EffectiveKind() {
	case KindSwim:
		return e.describeSwim()
	case KindCardio:
		return e.describeCardio()
	default:
		return e.describeStrength()
	}
}

func (e ExerciseEntry) describeStrength() string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString(" - ")
	b.WriteString(e.Weight.display())
	b.WriteString(" lbs - ")
	b.WriteString(strconv.Itoa(e.Sets))
	b.WriteString(" sets - ")
	if len(e.Reps) == 0 {
		b.WriteString("0")
	} else {
		for i, r := range e.Reps {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(r))
		}
	}
	b.WriteString(" reps")
	return b.String()
}

func (e ExerciseEntry) describeCardio() string {
	var dur, dist string
	if e.DurationMinutes != nil {
		dur = formatNum(*e.DurationMinutes) + " minutes"
	}
	if e.DistanceMiles != nil {
		dist = formatNum(*e.DistanceMiles) + " miles"
	}
	return e.Name + " - " + dur + " " + dist
}

func (e ExerciseEntry) describeSwim() string {
	var b strings.Builder
	b.WriteString(SwimName)
	b.WriteString(" - ")
	b.WriteString(formatNum(e.DistanceMeters))
	b.WriteString(" meters")
	if e.PostSwimFeeling != "" {
		b.WriteString(" - ")
		b.WriteString(e.PostSwimFeeling)
	}
	if e.FeltDizzy {
		b.WriteString(" (Dizzy)")
	}
	if len(e.Strokes) > 0 {
		b.WriteString(" | Strokes: ")
		b.WriteString(strings.Join(e.Strokes, ", "))
	}
	return b.String()
}

// display renders a weight for the summary line: "0" when absent, the bare
// value when uniform, a comma-joined sequence when per-set.
func (w Weight) display() string {
	if len(w) == 0 {
		return "0"
	}
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = formatNum(v)
	}
	return strings.Join(parts, ", ")
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
