package server

import (
	"encoding/json"
	"net/http"

	"github.com/meltforce/splitfit/internal/insights"
	"github.com/meltforce/splitfit/internal/recommend"
	"github.com/meltforce/splitfit/internal/storage"
)

func (s *Server) handleExerciseNames(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	names, err := s.db.ExerciseNames(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handlePerformance(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	series, err := s.db.ExercisePerformance(r.Context(), uid, exercise)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, series)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	workouts, err := s.db.QueryWorkouts(r.Context(), uid, storage.WorkoutFilter{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"analysis":    insights.Analyze(workouts),
		"quality":     insights.QualityDistribution(workouts),
		"supplements": insights.SupplementUsage(workouts),
	})
}

func (s *Server) handleQualityStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	workouts, err := s.db.QueryWorkouts(r.Context(), uid, storage.WorkoutFilter{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, insights.QualityDistribution(workouts))
}

func (s *Server) handleSupplementStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	workouts, err := s.db.QueryWorkouts(r.Context(), uid, storage.WorkoutFilter{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, insights.SupplementUsage(workouts))
}

// handleRecommendation proxies the language-model call the old serverless
// function used to make: build a prompt from the profile and recent history,
// forward it, return the completion.
func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	if s.rec == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "recommendations not configured"})
		return
	}

	var req struct {
		Plan recommend.PlanKind `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !recommend.ValidPlanKind(req.Plan) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "plan must be pre-workout, workout, or post-workout"})
		return
	}

	profile, err := s.db.GetProfile(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	workouts, err := s.db.QueryWorkouts(r.Context(), uid, storage.WorkoutFilter{Limit: 5})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	prompt, err := recommend.BuildPrompt(req.Plan, profile, workouts)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	completion, err := s.rec.Complete(r.Context(), prompt)
	if err != nil {
		s.log.Error("recommendation failed", "plan", req.Plan, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "recommendation backend failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"completion": completion})
}
