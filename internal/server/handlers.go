package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/meltforce/splitfit/internal/models"
	"github.com/meltforce/splitfit/internal/storage"
)

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if workout.Category == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "splitDay is required"})
		return
	}
	for i, e := range workout.Entries {
		if !models.ValidFeeling(e.PostSwimFeeling) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid postSwimFeeling: " + e.PostSwimFeeling})
			return
		}
		// Tag untagged entries at creation time so nothing downstream has to
		// guess the variant structurally.
		workout.Entries[i].Kind = e.EffectiveKind()
	}

	workout.UserID = uid
	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}
	if workout.LoggedAt.IsZero() {
		workout.LoggedAt = time.Now()
	}

	if err := s.db.InsertWorkout(r.Context(), workout); err != nil {
		s.log.Error("inserting workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

// workoutView is a workout plus the display line for each entry.
type workoutView struct {
	models.Workout
	Summaries []string `json:"summaries"`
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	start, end, err := parseOptionalTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	filter := storage.WorkoutFilter{
		Category: r.URL.Query().Get("category"),
		Start:    start,
		End:      end,
	}

	workouts, err := s.db.QueryWorkouts(r.Context(), uid, filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	views := make([]workoutView, len(workouts))
	for i, wo := range workouts {
		views[i] = workoutView{Workout: wo, Summaries: wo.Summaries()}
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	workoutID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	workout, err := s.db.GetWorkout(r.Context(), workoutID, uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if workout == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, workoutView{Workout: *workout, Summaries: workout.Summaries()})
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	workoutID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	deleted, err := s.db.DeleteWorkout(r.Context(), workoutID, uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func mustUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := userID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no user in request"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseOptionalTimeRange reads start/end query params. Unlike metric queries
// there is no default window: an absent param leaves that bound open.
func parseOptionalTimeRange(r *http.Request) (start, end time.Time, err error) {
	if startStr := r.URL.Query().Get("start"); startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if endStr := r.URL.Query().Get("end"); endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}
