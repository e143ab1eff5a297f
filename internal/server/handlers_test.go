package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meltforce/splitfit/internal/split"
)

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(context.WithValue(req.Context(), userIDKey, 1))
}

// TestHandleTemplates verifies that the full catalog is served and that each
// template keeps its ordered category list.
func TestHandleTemplates(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()

	s.handleTemplates(rec, httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var templates []split.Template
	if err := json.NewDecoder(rec.Body).Decode(&templates); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(templates) != 7 {
		t.Fatalf("got %d templates, want 7", len(templates))
	}
	if templates[0].ID != "push-pull-legs" {
		t.Errorf("templates[0].ID = %q", templates[0].ID)
	}
	want := []string{"Push", "Pull", "Legs"}
	for i, c := range want {
		if templates[0].Categories[i] != c {
			t.Errorf("categories[%d] = %q, want %q", i, templates[0].Categories[i], c)
		}
	}
}

// TestHandleCreateWorkout_BadRequests verifies the validation failures that
// reject a workout before it reaches storage.
func TestHandleCreateWorkout_BadRequests(t *testing.T) {
	s := &Server{log: slog.New(slog.DiscardHandler)}
	cases := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{`},
		{"missing category", `{"exercises":[]}`},
		{"bad feeling", `{"splitDay":"Swimming","exercises":[{"kind":"swim","exercise":"Swimming","postSwimFeeling":"Exhausted"}]}`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		s.handleCreateWorkout(rec, authedRequest(http.MethodPost, "/api/v1/workouts", tc.body))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

// TestHandleCreateWorkout_NoUser verifies that an unresolved user yields 401.
func TestHandleCreateWorkout_NoUser(t *testing.T) {
	s := &Server{log: slog.New(slog.DiscardHandler)}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", strings.NewReader(`{}`))

	s.handleCreateWorkout(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

// TestHandleRecommendation_Validation verifies plan-kind validation and the
// unconfigured-backend path, both reachable without storage.
func TestHandleRecommendation_Validation(t *testing.T) {
	s := &Server{log: slog.New(slog.DiscardHandler)}

	rec := httptest.NewRecorder()
	s.handleRecommendation(rec, authedRequest(http.MethodPost, "/api/v1/recommendations", `{"plan":"workout"}`))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("unconfigured: status = %d, want 503", rec.Code)
	}
}

// TestParseOptionalTimeRange verifies both accepted layouts and that absent
// params leave the bounds open.
func TestParseOptionalTimeRange(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts?start=2025-06-01&end=2025-06-30T12:00:00Z", nil)
	start, end, err := parseOptionalTimeRange(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Format("2006-01-02") != "2025-06-01" {
		t.Errorf("start = %v", start)
	}
	if end.Hour() != 12 {
		t.Errorf("end = %v", end)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/workouts", nil)
	start, end, err = parseOptionalTimeRange(req)
	if err != nil || !start.IsZero() || !end.IsZero() {
		t.Errorf("open range: start=%v end=%v err=%v", start, end, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/workouts?start=yesterday", nil)
	if _, _, err := parseOptionalTimeRange(req); err == nil {
		t.Error("expected error for unparseable start")
	}
}
