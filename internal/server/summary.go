package server

import (
	"net/http"
	"sort"
	"strconv"

	"preset-tracker/internal/domain"
	"preset-tracker/internal/position"
)

type jobUsageEntry struct {
	ClassID      int `json:"classId"`
	TotalAccount int `json:"totalAccount"`
}

type skillRankingEntry struct {
	SkillName    string `json:"skillName"`
	TotalAccount int    `json:"totalAccount"`
	TotalPreset  int    `json:"totalPreset"`
}

type itemRankingEntry struct {
	ItemID       int            `json:"itemId"`
	ItemName     string         `json:"itemName,omitempty"`
	TotalAccount int            `json:"totalAccount"`
	TotalPreset  int            `json:"totalPreset"`
	TotalEnchant int            `json:"totalEnchant"`
	Enchants     map[string]int `json:"enchants"`
}

type itemRankingResponse struct {
	ClassID   int                           `json:"classId"`
	SkillName string                        `json:"skillName"`
	Positions map[string][]itemRankingEntry `json:"positions"`
}

func (s *Server) handleJobUsage(w http.ResponseWriter, r *http.Request) {
	sum := s.summarySvc.Current(r.Context(), forceRefresh(r))

	entries := make([]jobUsageEntry, 0, len(sum.JobUsage))
	for classID, totalAccount := range sum.JobUsage {
		entries = append(entries, jobUsageEntry{ClassID: classID, TotalAccount: totalAccount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalAccount != entries[j].TotalAccount {
			return entries[i].TotalAccount > entries[j].TotalAccount
		}
		return entries[i].ClassID < entries[j].ClassID
	})

	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSkillRanking(w http.ResponseWriter, r *http.Request) {
	classID, err := strconv.Atoi(r.URL.Query().Get("classId"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "classId must be an integer"})
		return
	}

	sum := s.summarySvc.Current(r.Context(), forceRefresh(r))

	entries := make([]skillRankingEntry, 0, len(sum.JobSkillUsage[classID]))
	for skill, totalAccount := range sum.JobSkillUsage[classID] {
		entries = append(entries, skillRankingEntry{
			SkillName:    skill,
			TotalAccount: totalAccount,
			TotalPreset:  sum.JobSkillPresets[classID][skill],
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalAccount != entries[j].TotalAccount {
			return entries[i].TotalAccount > entries[j].TotalAccount
		}
		return entries[i].SkillName < entries[j].SkillName
	})

	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleItemRanking(w http.ResponseWriter, r *http.Request) {
	classID, err := strconv.Atoi(r.URL.Query().Get("classId"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "classId must be an integer"})
		return
	}
	skill := r.URL.Query().Get("skill")
	if skill == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "skill is required"})
		return
	}

	sum := s.summarySvc.Current(r.Context(), forceRefresh(r))
	names := s.itemData.Names()

	resp := itemRankingResponse{
		ClassID:   classID,
		SkillName: skill,
		Positions: make(map[string][]itemRankingEntry, len(position.IDs())),
	}
	rankings := sum.Rankings[classID][skill]
	for _, positionID := range position.IDs() {
		resp.Positions[positionID] = enrich(rankings[positionID], names)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	sum := s.summarySvc.Refresh(r.Context())
	s.writeJSON(w, http.StatusOK, map[string]int{
		"jobs": len(sum.JobUsage),
	})
}

func enrich(rankings []domain.ItemRanking, names map[int]string) []itemRankingEntry {
	entries := make([]itemRankingEntry, len(rankings))
	for i, r := range rankings {
		entries[i] = itemRankingEntry{
			ItemID:       r.ItemID,
			ItemName:     names[r.ItemID],
			TotalAccount: r.TotalAccount,
			TotalPreset:  r.TotalPreset,
			TotalEnchant: r.TotalEnchant,
			Enchants:     r.Enchants,
		}
	}
	return entries
}

func forceRefresh(r *http.Request) bool {
	force, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	return force
}
