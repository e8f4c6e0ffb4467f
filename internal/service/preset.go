package service

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"preset-tracker/internal/constants"
	"preset-tracker/internal/domain"
	"preset-tracker/internal/repository"
)

// PresetService is the CRUD and publish lifecycle around stored builds.
// The caller is trusted to supply the acting user id; authentication
// lives outside this service.
type PresetService struct {
	repo       *repository.PresetRepository
	summarySvc *SummaryService
	logger     zerolog.Logger
}

func NewPresetService(repo *repository.PresetRepository, summarySvc *SummaryService, logger zerolog.Logger) *PresetService {
	return &PresetService{repo: repo, summarySvc: summarySvc, logger: logger}
}

// PresetPage is one page of published presets with like counts.
type PresetPage struct {
	Items      []domain.Preset
	LikeCounts map[string]int
	TotalItem  int
	Skip       int
	Take       int
}

func (s *PresetService) Create(ctx context.Context, userID, label string, model *domain.PresetModel) (*domain.Preset, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	id, err := gonanoid.New(constants.PresetIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate preset id: %w", err)
	}

	now := time.Now()
	preset := &domain.Preset{
		ID:        id,
		UserID:    userID,
		Label:     label,
		ClassID:   model.Class,
		Model:     model,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, preset); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create preset")
		return nil, err
	}

	s.logger.Info().Str("preset_id", id).Str("user_id", userID).Msg("preset created")
	return preset, nil
}

func (s *PresetService) Get(ctx context.Context, id string) (*domain.Preset, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.Get(ctx, id)
}

func (s *PresetService) ListMine(ctx context.Context, userID string) ([]domain.Preset, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.ListByUser(ctx, userID)
}

// ListPublished returns one page of published presets, newest first,
// with like counts attached.
func (s *PresetService) ListPublished(ctx context.Context, classID, skip, take int) (*PresetPage, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if take <= 0 {
		take = constants.DefaultPageTake
	}
	if take > constants.MaxPageTake {
		take = constants.MaxPageTake
	}
	if skip < 0 {
		skip = 0
	}

	items, total, err := s.repo.ListPublishedPage(ctx, classID, skip, take)
	if err != nil {
		s.logger.Error().Err(err).Int("class_id", classID).Msg("failed to list published presets")
		return nil, err
	}

	ids := make([]string, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	likes, err := s.repo.LikeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &PresetPage{
		Items:      items,
		LikeCounts: likes,
		TotalItem:  total,
		Skip:       skip,
		Take:       take,
	}, nil
}

func (s *PresetService) Update(ctx context.Context, userID, id, label string, model *domain.PresetModel) (*domain.Preset, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	preset, err := s.requireOwner(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if label != "" {
		preset.Label = label
	}
	if model != nil {
		preset.Model = model
		preset.ClassID = model.Class
	}
	preset.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, preset); err != nil {
		s.logger.Error().Err(err).Str("preset_id", id).Msg("failed to update preset")
		return nil, err
	}

	if preset.IsPublished {
		s.refreshSummaryAsync()
	}
	return preset, nil
}

func (s *PresetService) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	preset, err := s.requireOwner(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("preset_id", id).Msg("failed to delete preset")
		return err
	}

	s.logger.Info().Str("preset_id", id).Str("user_id", userID).Msg("preset deleted")
	if preset.IsPublished {
		s.refreshSummaryAsync()
	}
	return nil
}

func (s *PresetService) Publish(ctx context.Context, userID, id, publishName string) (*domain.Preset, error) {
	return s.setPublished(ctx, userID, id, true, publishName)
}

func (s *PresetService) Unpublish(ctx context.Context, userID, id string) (*domain.Preset, error) {
	return s.setPublished(ctx, userID, id, false, "")
}

func (s *PresetService) setPublished(ctx context.Context, userID, id string, published bool, publishName string) (*domain.Preset, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	preset, err := s.requireOwner(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.repo.SetPublished(ctx, id, published, publishName, now); err != nil {
		s.logger.Error().Err(err).Str("preset_id", id).Bool("published", published).Msg("failed to set publish state")
		return nil, err
	}

	preset.IsPublished = published
	preset.PublishName = publishName
	preset.PublishedAt = now
	preset.UpdatedAt = now

	s.logger.Info().Str("preset_id", id).Bool("published", published).Msg("publish state changed")
	s.refreshSummaryAsync()
	return preset, nil
}

func (s *PresetService) Like(ctx context.Context, userID, presetID string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	if _, err := s.repo.Get(ctx, presetID); err != nil {
		return err
	}
	return s.repo.Like(ctx, presetID, userID)
}

func (s *PresetService) Unlike(ctx context.Context, userID, presetID string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.Unlike(ctx, presetID, userID)
}

func (s *PresetService) requireOwner(ctx context.Context, userID, id string) (*domain.Preset, error) {
	preset, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if preset.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	return preset, nil
}

// refreshSummaryAsync recomputes the summary in the background after a
// mutation that changed the published record set. Refresh folds storage
// failures into the empty summary itself, so there is no error to wait on.
func (s *PresetService) refreshSummaryAsync() {
	go s.summarySvc.Refresh(context.Background())
}
