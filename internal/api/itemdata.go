// Package api holds the outbound client for the static item database
// used to attach display names to ranking entries.
package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"preset-tracker/internal/config"
	"preset-tracker/internal/constants"
)

type ItemDataClient struct {
	url    string
	client *fasthttp.Client
	logger zerolog.Logger

	mu        sync.RWMutex
	names     map[int]string
	fetchedAt time.Time
}

func NewItemDataClient(cfg *config.Config, logger zerolog.Logger) *ItemDataClient {
	return &ItemDataClient{
		url:    cfg.ItemDataURL,
		logger: logger,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// Names returns the item id to display name map, refetching it once the
// in-memory copy is older than the cache TTL. Returns nil when no item
// data URL is configured or the fetch fails; callers treat names as
// optional enrichment.
func (c *ItemDataClient) Names() map[int]string {
	if c.url == "" {
		return nil
	}

	c.mu.RLock()
	names := c.names
	fetchedAt := c.fetchedAt
	c.mu.RUnlock()

	if names != nil && time.Since(fetchedAt) < constants.ItemDataCacheTTL {
		return names
	}

	fetched, err := c.fetch()
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to fetch item data, rankings served without names")
		return names
	}

	c.mu.Lock()
	c.names = fetched
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	c.logger.Info().Int("items", len(fetched)).Msg("item data refreshed")
	return fetched
}

func (c *ItemDataClient) fetch() (map[int]string, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.client.DoTimeout(req, resp, constants.ExternalAPITimeout); err != nil {
		return nil, fmt.Errorf("item data request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("item data request returned status %d", resp.StatusCode())
	}

	return parseItemNames(resp.Body())
}

// parseItemNames decodes the item database payload, a JSON object keyed
// by item id. Entries with non-numeric keys are skipped.
func parseItemNames(body []byte) (map[int]string, error) {
	var raw map[string]struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode item data: %w", err)
	}

	names := make(map[int]string, len(raw))
	for key, entry := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		names[id] = entry.Name
	}
	return names, nil
}
