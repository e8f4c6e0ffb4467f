package server

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"preset-tracker/internal/api"
	"preset-tracker/internal/config"
	"preset-tracker/internal/database"
	"preset-tracker/internal/middleware"
	"preset-tracker/internal/position"
	"preset-tracker/internal/repository"
	"preset-tracker/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db, zerolog.Nop()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{SummaryTTL: time.Hour}
	repo := repository.NewPresetRepository(db, zerolog.Nop())
	summarySvc := service.NewSummaryService(repo, cfg, zerolog.Nop())
	presetSvc := service.NewPresetService(repo, summarySvc, zerolog.Nop())
	itemData := api.NewItemDataClient(cfg, zerolog.Nop())

	mux := http.NewServeMux()
	NewServer(summarySvc, presetSvc, itemData, zerolog.Nop()).Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, userID string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}

func stormBody() map[string]any {
	return map[string]any{
		"label": "storm build",
		"model": map[string]any{
			"class":            10,
			"selectedAtkSkill": "Storm Gust",
			"weapon":           501,
			"weaponEnchant1":   7,
		},
	}
}

func TestCreateRequiresUserHeader(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/presets", "", stormBody())
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestPresetLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/presets", "user-a", stormBody())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	created := decode[presetResponse](t, resp)
	if created.ID == "" || created.ClassID != 10 {
		t.Fatalf("created = %+v", created)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/presets/"+created.ID+"/publish", "user-a",
		map[string]string{"publishName": "sg meta"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("publish status = %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/presets?classId=10", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	page := decode[presetListResponse](t, resp)
	if page.TotalItem != 1 || len(page.Items) != 1 || !page.Items[0].IsPublished {
		t.Errorf("page = %+v", page)
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/presets/"+created.ID, "user-b", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("delete by non-owner status = %d, want 403", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/presets/"+created.ID, "user-a", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", resp.StatusCode)
	}
}

func TestRankingsEndpointCoversAllPositions(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/presets", "user-a", stormBody())
	created := decode[presetResponse](t, resp)
	doJSON(t, http.MethodPost, srv.URL+"/api/v1/presets/"+created.ID+"/publish", "user-a",
		map[string]string{"publishName": ""})

	resp = doJSON(t, http.MethodGet,
		srv.URL+"/api/v1/summary/rankings?classId=10&skill=Storm+Gust&refresh=true", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rankings status = %d", resp.StatusCode)
	}
	rankings := decode[itemRankingResponse](t, resp)

	if len(rankings.Positions) != len(position.IDs()) {
		t.Errorf("got %d positions, want %d", len(rankings.Positions), len(position.IDs()))
	}
	weapon := rankings.Positions[position.Weapon]
	if len(weapon) != 1 || weapon[0].ItemID != 501 || weapon[0].TotalAccount != 1 {
		t.Errorf("weapon rankings = %+v", weapon)
	}
	if weapon[0].Enchants["7-0-0"] != 1 {
		t.Errorf("enchants = %v, want 7-0-0 once", weapon[0].Enchants)
	}
	if len(rankings.Positions[position.ShadowPendant]) != 0 {
		t.Errorf("unused position not empty: %+v", rankings.Positions[position.ShadowPendant])
	}
}

func TestSkillRankingEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/presets", "user-a", stormBody())
	created := decode[presetResponse](t, resp)
	doJSON(t, http.MethodPost, srv.URL+"/api/v1/presets/"+created.ID+"/publish", "user-a",
		map[string]string{"publishName": ""})

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/summary/skills?classId=10&refresh=true", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("skills status = %d", resp.StatusCode)
	}
	skills := decode[[]skillRankingEntry](t, resp)
	if len(skills) != 1 || skills[0].SkillName != "Storm Gust" || skills[0].TotalPreset != 1 {
		t.Errorf("skills = %+v", skills)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/summary/skills?classId=abc", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad classId status = %d, want 400", resp.StatusCode)
	}
}
