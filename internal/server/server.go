// Package server is the HTTP JSON adapter over the preset and summary
// services.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"preset-tracker/internal/api"
	"preset-tracker/internal/domain"
	"preset-tracker/internal/middleware"
	"preset-tracker/internal/service"
)

type Server struct {
	summarySvc *service.SummaryService
	presetSvc  *service.PresetService
	itemData   *api.ItemDataClient
	logger     zerolog.Logger
}

func NewServer(summarySvc *service.SummaryService, presetSvc *service.PresetService, itemData *api.ItemDataClient, logger zerolog.Logger) *Server {
	return &Server{
		summarySvc: summarySvc,
		presetSvc:  presetSvc,
		itemData:   itemData,
		logger:     logger,
	}
}

// Register mounts all routes on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/summary/jobs", s.handleJobUsage)
	mux.HandleFunc("GET /api/v1/summary/skills", s.handleSkillRanking)
	mux.HandleFunc("GET /api/v1/summary/rankings", s.handleItemRanking)
	mux.HandleFunc("POST /api/v1/summary/refresh", s.handleRefresh)

	mux.HandleFunc("POST /api/v1/presets", s.handleCreatePreset)
	mux.HandleFunc("GET /api/v1/presets", s.handleListPublished)
	mux.HandleFunc("GET /api/v1/presets/{id}", s.handleGetPreset)
	mux.HandleFunc("PUT /api/v1/presets/{id}", s.handleUpdatePreset)
	mux.HandleFunc("DELETE /api/v1/presets/{id}", s.handleDeletePreset)
	mux.HandleFunc("POST /api/v1/presets/{id}/publish", s.handlePublishPreset)
	mux.HandleFunc("POST /api/v1/presets/{id}/unpublish", s.handleUnpublishPreset)
	mux.HandleFunc("POST /api/v1/presets/{id}/like", s.handleLikePreset)
	mux.HandleFunc("DELETE /api/v1/presets/{id}/like", s.handleUnlikePreset)
	mux.HandleFunc("GET /api/v1/my/presets", s.handleListMine)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrMalformedRecord):
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := middleware.UserID(r)
	if userID == "" {
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing " + middleware.UserIDHeader + " header"})
		return "", false
	}
	return userID, true
}
