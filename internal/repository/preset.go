package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"preset-tracker/internal/domain"
)

type PresetRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPresetRepository(sqlDB *sql.DB, logger zerolog.Logger) *PresetRepository {
	return &PresetRepository{
		db:     sqlDB,
		logger: logger,
	}
}

const presetColumns = "id, user_id, label, class_id, model, is_published, publish_name, published_at, created_at, updated_at"

// ListPublished returns every published preset with its model decoded.
// Rows whose model column fails to decode are skipped with a defect
// log; one broken row must not abort an aggregation pass.
func (r *PresetRepository) ListPublished(ctx context.Context) ([]domain.Preset, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, class_id, model FROM presets WHERE is_published = 1")
	if err != nil {
		return nil, fmt.Errorf("failed to query published presets: %w", err)
	}
	defer rows.Close()

	var presets []domain.Preset
	for rows.Next() {
		var p domain.Preset
		var rawModel string
		if err := rows.Scan(&p.ID, &p.UserID, &p.ClassID, &rawModel); err != nil {
			return nil, fmt.Errorf("failed to scan preset row: %w", err)
		}
		model := &domain.PresetModel{}
		if err := json.Unmarshal([]byte(rawModel), model); err != nil {
			r.logger.Warn().
				Err(err).
				Str("preset_id", p.ID).
				Msg("skipping preset with undecodable model")
			continue
		}
		p.IsPublished = true
		p.Model = model
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *PresetRepository) Get(ctx context.Context, id string) (*domain.Preset, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+presetColumns+" FROM presets WHERE id = ?", id)

	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PresetRepository) ListByUser(ctx context.Context, userID string) ([]domain.Preset, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+presetColumns+" FROM presets WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query presets for user: %w", err)
	}
	defer rows.Close()
	return collectPresets(rows)
}

// ListPublishedPage returns one page of published presets ordered by
// creation time, newest first, plus the total published count. classID
// of 0 means no class filter.
func (r *PresetRepository) ListPublishedPage(ctx context.Context, classID, skip, take int) ([]domain.Preset, int, error) {
	where := "is_published = 1"
	args := []any{}
	if classID != 0 {
		where += " AND class_id = ?"
		args = append(args, classID)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM presets WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count published presets: %w", err)
	}

	query := "SELECT " + presetColumns + " FROM presets WHERE " + where +
		" ORDER BY created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(args, take, skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query published presets: %w", err)
	}
	defer rows.Close()

	presets, err := collectPresets(rows)
	if err != nil {
		return nil, 0, err
	}
	return presets, total, nil
}

func (r *PresetRepository) Insert(ctx context.Context, p *domain.Preset) error {
	rawModel, err := json.Marshal(p.Model)
	if err != nil {
		return fmt.Errorf("failed to encode preset model: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO presets (id, user_id, label, class_id, model, is_published, publish_name, published_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Label, p.ClassID, string(rawModel),
		p.IsPublished, p.PublishName, nullTime(p.PublishedAt), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert preset %s: %w", p.ID, err)
	}
	return nil
}

func (r *PresetRepository) Update(ctx context.Context, p *domain.Preset) error {
	rawModel, err := json.Marshal(p.Model)
	if err != nil {
		return fmt.Errorf("failed to encode preset model: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		"UPDATE presets SET label = ?, class_id = ?, model = ?, updated_at = ? WHERE id = ?",
		p.Label, p.ClassID, string(rawModel), p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update preset %s: %w", p.ID, err)
	}
	return requireRow(res)
}

func (r *PresetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM presets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete preset %s: %w", id, err)
	}
	return requireRow(res)
}

func (r *PresetRepository) SetPublished(ctx context.Context, id string, published bool, publishName string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE presets SET is_published = ?, publish_name = ?, published_at = ?, updated_at = ? WHERE id = ?",
		published, publishName, nullTime(at), at, id)
	if err != nil {
		return fmt.Errorf("failed to set publish state for preset %s: %w", id, err)
	}
	return requireRow(res)
}

func (r *PresetRepository) Like(ctx context.Context, presetID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO preset_likes (preset_id, user_id, created_at) VALUES (?, ?, ?)",
		presetID, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to like preset %s: %w", presetID, err)
	}
	return nil
}

func (r *PresetRepository) Unlike(ctx context.Context, presetID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM preset_likes WHERE preset_id = ? AND user_id = ?", presetID, userID)
	if err != nil {
		return fmt.Errorf("failed to unlike preset %s: %w", presetID, err)
	}
	return nil
}

// LikeCounts returns the like count per preset id for one page of ids.
// Presets with no likes are absent from the result.
func (r *PresetRepository) LikeCounts(ctx context.Context, presetIDs []string) (map[string]int, error) {
	if len(presetIDs) == 0 {
		return map[string]int{}, nil
	}

	placeholders := strings.Repeat("?,", len(presetIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(presetIDs))
	for i, id := range presetIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT preset_id, COUNT(*) FROM preset_likes WHERE preset_id IN ("+placeholders+") GROUP BY preset_id",
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*domain.Preset, error) {
	var p domain.Preset
	var rawModel string
	var publishedAt sql.NullTime

	err := row.Scan(&p.ID, &p.UserID, &p.Label, &p.ClassID, &rawModel,
		&p.IsPublished, &p.PublishName, &publishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		p.PublishedAt = publishedAt.Time
	}

	model := &domain.PresetModel{}
	if err := json.Unmarshal([]byte(rawModel), model); err != nil {
		return nil, fmt.Errorf("%w: preset %s: %v", domain.ErrMalformedRecord, p.ID, err)
	}
	p.Model = model
	return &p, nil
}

func collectPresets(rows *sql.Rows) ([]domain.Preset, error) {
	var presets []domain.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, *p)
	}
	return presets, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
