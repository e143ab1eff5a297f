package split

import "testing"

// TestNextCategory_Rotation verifies plain rotation order and wraparound for
// the push-pull-legs template.
func TestNextCategory_Rotation(t *testing.T) {
	cases := []struct {
		last string
		want string
	}{
		{"Push", "Pull"},
		{"Pull", "Legs"},
		{"Legs", "Push"}, // wraparound
	}
	for _, tc := range cases {
		got, ok, err := NextCategory("push-pull-legs", tc.last, nil)
		if err != nil {
			t.Fatalf("NextCategory(%q): unexpected error: %v", tc.last, err)
		}
		if !ok {
			t.Fatalf("NextCategory(%q): expected ok=true", tc.last)
		}
		if got != tc.want {
			t.Errorf("NextCategory(%q) = %q, want %q", tc.last, got, tc.want)
		}
	}
}

// TestNextCategory_UnknownLast verifies that a last category not present in
// the template restarts the rotation at the first eligible category.
func TestNextCategory_UnknownLast(t *testing.T) {
	cases := []string{"Z", "", CategoryCardio, CategorySwimming}
	for _, last := range cases {
		got, ok, err := NextCategory("push-pull-legs", last, nil)
		if err != nil || !ok {
			t.Fatalf("NextCategory(%q): ok=%v err=%v", last, ok, err)
		}
		if got != "Push" {
			t.Errorf("NextCategory(%q) = %q, want %q", last, got, "Push")
		}
	}
}

// TestNextCategory_ExclusionSkip verifies that excluded categories are
// filtered out before index arithmetic, so they are never recommended.
func TestNextCategory_ExclusionSkip(t *testing.T) {
	got, ok, err := NextCategory("push-pull-legs", "Push", map[string]bool{"Pull": true})
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got != "Legs" {
		t.Errorf("got %q, want %q", got, "Legs")
	}
}

// TestNextCategory_ExcludedLast verifies that an excluded last category is
// treated as unknown (index -1) rather than skipped from inside the list.
func TestNextCategory_ExcludedLast(t *testing.T) {
	got, ok, err := NextCategory("push-pull-legs", "Pull", map[string]bool{"Pull": true})
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got != "Push" {
		t.Errorf("got %q, want %q", got, "Push")
	}
}

// TestNextCategory_AllExcluded verifies that excluding every category yields
// no rotation target without an error.
func TestNextCategory_AllExcluded(t *testing.T) {
	excluded := map[string]bool{"Push": true, "Pull": true, "Legs": true}
	got, ok, err := NextCategory("push-pull-legs", "Push", excluded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || got != "" {
		t.Errorf("got (%q, %v), want (\"\", false)", got, ok)
	}
}

// TestNextCategory_StaleExclusions verifies that exclusion entries referencing
// labels outside the template are silently ignored.
func TestNextCategory_StaleExclusions(t *testing.T) {
	excluded := map[string]bool{"Chest": true, "Cardio": true}
	got, ok, err := NextCategory("push-pull-legs", "Push", excluded)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got != "Pull" {
		t.Errorf("got %q, want %q", got, "Pull")
	}
}

// TestNextCategory_FalseExclusionEntries verifies that a label mapped to
// false in the exclusion bag is still eligible.
func TestNextCategory_FalseExclusionEntries(t *testing.T) {
	got, ok, err := NextCategory("push-pull-legs", "Push", map[string]bool{"Pull": false})
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got != "Pull" {
		t.Errorf("got %q, want %q", got, "Pull")
	}
}

// TestNextCategory_Singleton verifies that a single-category template always
// returns that category, whatever the last category was.
func TestNextCategory_Singleton(t *testing.T) {
	for _, last := range []string{"Full Body", "Push", ""} {
		got, ok, err := NextCategory("full-body", last, nil)
		if err != nil || !ok {
			t.Fatalf("NextCategory(%q): ok=%v err=%v", last, ok, err)
		}
		if got != "Full Body" {
			t.Errorf("NextCategory(%q) = %q, want %q", last, got, "Full Body")
		}
	}
}

// TestNextCategory_UnknownTemplate verifies the only hard failure mode.
func TestNextCategory_UnknownTemplate(t *testing.T) {
	_, _, err := NextCategory("five-by-five", "Push", nil)
	if err != ErrUnknownTemplate {
		t.Fatalf("err = %v, want ErrUnknownTemplate", err)
	}
}

// TestNextCategory_Deterministic verifies that identical inputs always give
// identical outputs.
func TestNextCategory_Deterministic(t *testing.T) {
	excluded := map[string]bool{"Back": true}
	first, ok, err := NextCategory("bro-split", "Shoulders", excluded)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	for range 10 {
		got, _, _ := NextCategory("bro-split", "Shoulders", excluded)
		if got != first {
			t.Fatalf("got %q, want stable %q", got, first)
		}
	}
}

// TestNextCategory_MemberOfTemplate verifies that for every template and a
// sampling of exclusion sets, the result is a template member outside the
// exclusion set.
func TestNextCategory_MemberOfTemplate(t *testing.T) {
	for _, tpl := range Templates() {
		excluded := map[string]bool{tpl.Categories[0]: true}
		if len(tpl.Categories) == 1 {
			excluded = nil
		}
		for _, last := range append(tpl.Categories, "Z") {
			got, ok, err := NextCategory(tpl.ID, last, excluded)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tpl.ID, err)
			}
			if !ok {
				t.Fatalf("%s: expected a rotation target", tpl.ID)
			}
			if excluded[got] {
				t.Errorf("%s: NextCategory(%q) returned excluded %q", tpl.ID, last, got)
			}
			member := false
			for _, c := range tpl.Categories {
				if c == got {
					member = true
				}
			}
			if !member {
				t.Errorf("%s: NextCategory(%q) = %q not in template", tpl.ID, last, got)
			}
		}
	}
}

// TestTemplates_CatalogAgreement verifies that every listed template resolves
// through Categories to the same list, with no duplicate IDs.
func TestTemplates_CatalogAgreement(t *testing.T) {
	seen := make(map[string]bool)
	for _, tpl := range Templates() {
		if seen[tpl.ID] {
			t.Fatalf("duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = true

		cats, err := Categories(tpl.ID)
		if err != nil {
			t.Fatalf("Categories(%q): %v", tpl.ID, err)
		}
		if len(cats) != len(tpl.Categories) {
			t.Fatalf("%s: Categories len %d, Templates len %d", tpl.ID, len(cats), len(tpl.Categories))
		}
		for i := range cats {
			if cats[i] != tpl.Categories[i] {
				t.Errorf("%s[%d]: Categories %q, Templates %q", tpl.ID, i, cats[i], tpl.Categories[i])
			}
		}
	}
	if len(seen) != 7 {
		t.Fatalf("catalog lists %d templates, want 7", len(seen))
	}
}

// TestCategories_UnknownTemplate verifies catalog lookup failure.
func TestCategories_UnknownTemplate(t *testing.T) {
	if _, err := Categories("nope"); err != ErrUnknownTemplate {
		t.Fatalf("err = %v, want ErrUnknownTemplate", err)
	}
}

// TestCategories_CopyIsolation verifies that mutating a returned slice does
// not corrupt the catalog.
func TestCategories_CopyIsolation(t *testing.T) {
	cats, err := Categories("push-pull")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cats[0] = "mutated"
	again, _ := Categories("push-pull")
	if again[0] != "Push" {
		t.Fatalf("catalog mutated: %v", again)
	}
}
