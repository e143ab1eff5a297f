package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/meltforce/splitfit/internal/models"
)

// TestBuildPrompt_Kinds verifies that each plan kind produces its own
// instruction and that unknown kinds fail.
func TestBuildPrompt_Kinds(t *testing.T) {
	cases := []struct {
		kind PlanKind
		want string
	}{
		{PlanPreWorkout, "recommend a pre-workout plan"},
		{PlanWorkout, "suggest a workout plan for today"},
		{PlanPostWorkout, "provide a post-workout plan"},
	}
	for _, tc := range cases {
		prompt, err := BuildPrompt(tc.kind, nil, nil)
		if err != nil {
			t.Fatalf("BuildPrompt(%q): %v", tc.kind, err)
		}
		if !strings.Contains(prompt, tc.want) {
			t.Errorf("BuildPrompt(%q) missing %q in %q", tc.kind, tc.want, prompt)
		}
	}
	if _, err := BuildPrompt("bulking", nil, nil); err == nil {
		t.Error("expected error for unknown plan kind")
	}
}

// TestBuildPrompt_Content verifies that profile fields and workout summary
// lines make it into the prompt, and that history is capped at five sessions.
func TestBuildPrompt_Content(t *testing.T) {
	profile := &models.Profile{
		FirstName:     "Sam",
		SplitTemplate: "push-pull-legs",
		Supplements:   "Creatine",
	}
	var workouts []models.Workout
	for i := range 8 {
		workouts = append(workouts, models.Workout{
			Category: "Push",
			Quality:  "Good",
			LoggedAt: time.Date(2025, 6, 1+i, 8, 0, 0, 0, time.UTC),
			Entries: []models.ExerciseEntry{
				{Kind: models.KindStrength, Name: "Bench Press", Weight: models.Weight{135}, Sets: 3, Reps: []int{10, 8, 6}},
			},
		})
	}

	prompt, err := BuildPrompt(PlanWorkout, profile, workouts)
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	if !strings.Contains(prompt, `"split":"push-pull-legs"`) {
		t.Errorf("prompt missing profile split: %q", prompt)
	}
	if !strings.Contains(prompt, "Bench Press - 135 lbs - 3 sets - 10, 8, 6 reps") {
		t.Errorf("prompt missing summary line: %q", prompt)
	}
	if got := strings.Count(prompt, `"splitDay":"Push"`); got != 5 {
		t.Errorf("prompt contains %d workouts, want 5", got)
	}
}

// TestComplete verifies the request shape sent to the chat-completions API
// and extraction of the completion text.
func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Eat oats."}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("sk-test", "test-model", srv.URL)
	got, err := c.Complete(context.Background(), "plan please")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Eat oats." {
		t.Errorf("Complete = %q, want %q", got, "Eat oats.")
	}
}

// TestComplete_APIError verifies that a non-200 response surfaces the API's
// error message.
func TestComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid api key"},
		})
	}))
	defer srv.Close()

	c := NewClient("bad", "", srv.URL)
	_, err := c.Complete(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("err = %v, want invalid api key message", err)
	}
}

// TestComplete_NoChoices verifies the fallback text when the API returns an
// empty choice list.
func TestComplete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient("k", "", srv.URL)
	got, err := c.Complete(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "No response" {
		t.Errorf("Complete = %q, want %q", got, "No response")
	}
}
