package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/meltforce/splitfit/internal/models"
	"github.com/meltforce/splitfit/internal/split"
	"github.com/meltforce/splitfit/internal/storage"
)

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, split.Templates())
}

// handleNextSplitDay resolves which split day the user should train next,
// based on their template, exclusions, and most recent session. A missing
// profile or a fully-excluded template yields a null category, not an error.
func (s *Server) handleNextSplitDay(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	profile, err := s.db.GetProfile(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if profile == nil || profile.SplitTemplate == "" {
		writeJSON(w, http.StatusOK, map[string]any{"category": nil})
		return
	}

	var lastCategory string
	last, err := s.db.LatestWorkout(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if last != nil {
		lastCategory = last.Category
	}

	next, found, err := split.NextCategory(profile.SplitTemplate, lastCategory, profile.ExcludedSet())
	if err != nil {
		// Only reachable with a profile referencing a template that left the
		// catalog; a configuration problem, not a user one.
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if !found {
		writeJSON(w, http.StatusOK, map[string]any{"category": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": next})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	profile, err := s.db.GetProfile(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if profile == nil {
		profile = &models.Profile{UserID: uid}
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if profile.SplitTemplate != "" {
		if _, err := split.Categories(profile.SplitTemplate); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown split template: " + profile.SplitTemplate})
			return
		}
	}

	profile.UserID = uid
	if err := s.db.UpsertProfile(r.Context(), profile); err != nil {
		s.log.Error("upserting profile", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleSetExclusion(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Category string `json:"category"`
		Excluded bool   `json:"excluded"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Category == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category is required"})
		return
	}

	if err := s.db.SetExclusion(r.Context(), uid, req.Category, req.Excluded); err != nil {
		if errors.Is(err, storage.ErrNoProfile) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no profile saved"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateMetric(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var metric models.BodyMetric
	if err := json.NewDecoder(r.Body).Decode(&metric); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	metric.UserID = uid
	if metric.RecordedAt.IsZero() {
		metric.RecordedAt = time.Now()
	}

	id, err := s.db.InsertBodyMetric(r.Context(), metric)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	metric.ID = id
	writeJSON(w, http.StatusCreated, metric)
}

func (s *Server) handleListMetrics(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	start, end, err := parseOptionalTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if end.IsZero() {
		end = time.Now().Add(time.Hour)
	}

	metrics, err := s.db.QueryBodyMetrics(r.Context(), uid, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
