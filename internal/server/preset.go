package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"preset-tracker/internal/domain"
)

type presetRequest struct {
	Label string              `json:"label"`
	Model *domain.PresetModel `json:"model"`
}

type publishRequest struct {
	PublishName string `json:"publishName"`
}

type presetResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	Label       string              `json:"label"`
	ClassID     int                 `json:"classId"`
	Model       *domain.PresetModel `json:"model"`
	IsPublished bool                `json:"isPublished"`
	PublishName string              `json:"publishName"`
	PublishedAt string              `json:"publishedAt,omitempty"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
	LikeCount   int                 `json:"likeCount"`
}

type presetListResponse struct {
	Items     []presetResponse `json:"items"`
	TotalItem int              `json:"totalItem"`
	Skip      int              `json:"skip"`
	Take      int              `json:"take"`
}

func (s *Server) handleCreatePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Model == nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body must carry a preset model"})
		return
	}

	preset, err := s.presetSvc.Create(r.Context(), userID, req.Label, req.Model)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toPresetResponse(preset, 0))
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	preset, err := s.presetSvc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPresetResponse(preset, 0))
}

func (s *Server) handleListPublished(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	classID, _ := strconv.Atoi(q.Get("classId"))
	skip, _ := strconv.Atoi(q.Get("skip"))
	take, _ := strconv.Atoi(q.Get("take"))

	page, err := s.presetSvc.ListPublished(r.Context(), classID, skip, take)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := presetListResponse{
		Items:     make([]presetResponse, len(page.Items)),
		TotalItem: page.TotalItem,
		Skip:      page.Skip,
		Take:      page.Take,
	}
	for i := range page.Items {
		p := &page.Items[i]
		resp.Items[i] = toPresetResponse(p, page.LikeCounts[p.ID])
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	presets, err := s.presetSvc.ListMine(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	items := make([]presetResponse, len(presets))
	for i := range presets {
		items[i] = toPresetResponse(&presets[i], 0)
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleUpdatePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	preset, err := s.presetSvc.Update(r.Context(), userID, r.PathValue("id"), req.Label, req.Model)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPresetResponse(preset, 0))
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	if err := s.presetSvc.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePublishPreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	preset, err := s.presetSvc.Publish(r.Context(), userID, r.PathValue("id"), req.PublishName)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPresetResponse(preset, 0))
}

func (s *Server) handleUnpublishPreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	preset, err := s.presetSvc.Unpublish(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPresetResponse(preset, 0))
}

func (s *Server) handleLikePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	if err := s.presetSvc.Like(r.Context(), userID, r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnlikePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	if err := s.presetSvc.Unlike(r.Context(), userID, r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toPresetResponse(p *domain.Preset, likeCount int) presetResponse {
	resp := presetResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Label:       p.Label,
		ClassID:     p.ClassID,
		Model:       p.Model,
		IsPublished: p.IsPublished,
		PublishName: p.PublishName,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
		LikeCount:   likeCount,
	}
	if !p.PublishedAt.IsZero() {
		resp.PublishedAt = p.PublishedAt.Format(time.RFC3339)
	}
	return resp
}
