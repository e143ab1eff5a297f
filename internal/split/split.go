// Package split holds the training split catalog and the rotation resolver
// that decides which split day comes next.
package split

import "errors"

// Sentinel categories available regardless of the selected template.
const (
	CategoryCardio   = "Cardio"
	CategorySwimming = "Swimming"
)

// ErrUnknownTemplate is returned when a template ID is not in the catalog.
var ErrUnknownTemplate = errors.New("unknown split template")

// Template is a named, ordered list of training-day categories.
type Template struct {
	ID         string   `json:"id"`
	Categories []string `json:"categories"`
}

// catalog is the static set of supported split templates, in listing order.
// Category lists are non-empty and duplicate-free. The by-ID index is derived
// from this slice, so the two cannot drift.
var catalog = []Template{
	{ID: "push-pull-legs", Categories: []string{"Push", "Pull", "Legs"}},
	{ID: "upper-lower", Categories: []string{"Upper", "Lower"}},
	{ID: "full-body", Categories: []string{"Full Body"}},
	{ID: "bro-split", Categories: []string{"Chest", "Back", "Shoulders", "Arms", "Legs"}},
	{ID: "body-part", Categories: []string{"Chest and Triceps", "Back and Biceps", "Shoulders and Abs", "Legs"}},
	{ID: "push-pull", Categories: []string{"Push", "Pull"}},
	{ID: "hybrid", Categories: []string{"Push", "Pull", "Legs", "Upper", "Lower", "Full Body", "Chest", "Back",
		"Shoulders", "Arms", "Chest and Triceps", "Back and Biceps", "Shoulders and Abs"}},
}

var catalogByID = func() map[string][]string {
	m := make(map[string][]string, len(catalog))
	for _, t := range catalog {
		m[t.ID] = t.Categories
	}
	return m
}()

// Templates returns the catalog in listing order for the API.
func Templates() []Template {
	out := make([]Template, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, Template{ID: t.ID, Categories: append([]string(nil), t.Categories...)})
	}
	return out
}

// Categories returns the ordered category list for a template ID.
func Categories(templateID string) ([]string, error) {
	cats, ok := catalogByID[templateID]
	if !ok {
		return nil, ErrUnknownTemplate
	}
	return append([]string(nil), cats...), nil
}

// NextCategory computes the split day that follows lastCategory in the given
// template, skipping every category the user has excluded.
//
// Exclusions are a label→bool bag; labels not present in the template (stale
// entries from an earlier template choice) are ignored. If every category of
// the template is excluded there is no rotation target and ok is false —
// a defined edge case, not an error. A lastCategory that is missing from the
// filtered list (sentinel day, excluded day, or a day from a previous
// template) is treated as index -1, so the rotation restarts at the first
// eligible category. The returned category is always a member of the template
// and never an excluded one.
func NextCategory(templateID, lastCategory string, excluded map[string]bool) (next string, ok bool, err error) {
	cats, found := catalogByID[templateID]
	if !found {
		return "", false, ErrUnknownTemplate
	}

	eligible := make([]string, 0, len(cats))
	for _, c := range cats {
		if excluded[c] {
			continue
		}
		eligible = append(eligible, c)
	}
	if len(eligible) == 0 {
		return "", false, nil
	}

	idx := -1
	for i, c := range eligible {
		if c == lastCategory {
			idx = i // first occurrence wins
			break
		}
	}

	return eligible[(idx+1)%len(eligible)], true, nil
}
