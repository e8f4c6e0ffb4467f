package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"preset-tracker/internal/config"
	"preset-tracker/internal/constants"
	"preset-tracker/internal/domain"
	"preset-tracker/internal/repository"
	"preset-tracker/internal/summary"
)

// SummaryService owns the recompute-and-cache lifecycle of the usage
// summary. The cached snapshot is immutable and swapped atomically;
// concurrent readers during an in-flight recompute all share that one
// computation.
type SummaryService struct {
	repo   *repository.PresetRepository
	logger zerolog.Logger
	ttl    time.Duration

	group    singleflight.Group
	snapshot atomic.Pointer[summarySnapshot]
}

type summarySnapshot struct {
	summary     *domain.AggregatedSummary
	refreshedAt time.Time
}

func NewSummaryService(repo *repository.PresetRepository, cfg *config.Config, logger zerolog.Logger) *SummaryService {
	return &SummaryService{
		repo:   repo,
		logger: logger,
		ttl:    cfg.SummaryTTL,
	}
}

// Current returns the cached summary, recomputing first when no refresh
// has completed yet, when the snapshot is older than the TTL, or when
// force is set.
func (s *SummaryService) Current(ctx context.Context, force bool) *domain.AggregatedSummary {
	snap := s.snapshot.Load()
	if snap != nil && !force && time.Since(snap.refreshedAt) < s.ttl {
		return snap.summary
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the summary from the full published-record set and
// swaps it in. Concurrent callers share a single in-flight computation.
// A storage failure yields the empty summary, never a stale or nil one.
func (s *SummaryService) Refresh(ctx context.Context) *domain.AggregatedSummary {
	v, _, shared := s.group.Do("summary", func() (any, error) {
		return s.recompute(), nil
	})
	if shared {
		s.logger.Debug().Msg("summary refresh shared with concurrent caller")
	}
	return v.(*domain.AggregatedSummary)
}

func (s *SummaryService) recompute() *domain.AggregatedSummary {
	// Deliberately detached from any caller context: once a pass starts
	// it runs to completion over the record set it fetched.
	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
	defer cancel()

	start := time.Now()

	result := domain.EmptySummary()
	rows, err := s.repo.ListPublished(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch published presets, serving empty summary")
	} else {
		result = summary.Format(summary.Accumulate(rows))
	}

	s.snapshot.Store(&summarySnapshot{summary: result, refreshedAt: time.Now()})

	s.logger.Info().
		Int("presets", len(rows)).
		Int("jobs", len(result.JobUsage)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("summary recomputed")

	return result
}
