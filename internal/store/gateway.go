package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jimezsa/govjobs/internal/models"
	"github.com/rs/zerolog"
)

const (
	KeyDataset        = "jobsData"
	KeyDatasetUpdated = "jobsDataTimestamp"
	KeyFavorites      = "favoriteJobs"
	KeyTheme          = "theme"
)

// DefaultCacheTTL is how long a refreshed dataset stays authoritative.
const DefaultCacheTTL = 24 * time.Hour

// Theme is the persisted color theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns ok=false for anything but light or dark.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Gateway applies the persistence policy on top of a KV. Read failures are
// logged and reported as absent values. Write failures are returned wrapped
// in ErrPersistence.
type Gateway struct {
	kv     KV
	ttl    time.Duration
	logger zerolog.Logger
}

func NewGateway(kv KV, ttl time.Duration, logger zerolog.Logger) *Gateway {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Gateway{kv: kv, ttl: ttl, logger: logger}
}

func (g *Gateway) get(ctx context.Context, key string) (string, bool) {
	value, ok, err := g.kv.Get(ctx, key)
	if err != nil {
		g.logger.Warn().Err(err).Str("key", key).Msg("store read failed")
		return "", false
	}
	return value, ok
}

func (g *Gateway) set(ctx context.Context, key, value string) error {
	if err := g.kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, key, err)
	}
	return nil
}

// CacheTimestamp returns when the cached dataset was written.
func (g *Gateway) CacheTimestamp(ctx context.Context) (time.Time, bool) {
	raw, ok := g.get(ctx, KeyDatasetUpdated)
	if !ok {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		g.logger.Warn().Err(err).Str("key", KeyDatasetUpdated).Msg("invalid cache timestamp")
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// CachedDataset returns the cached records when they are younger than the TTL.
func (g *Gateway) CachedDataset(ctx context.Context, now time.Time) ([]models.JobRecord, bool) {
	updated, ok := g.CacheTimestamp(ctx)
	if !ok {
		return nil, false
	}
	if now.Sub(updated) >= g.ttl {
		g.logger.Debug().Time("updated", updated).Msg("cached dataset expired")
		return nil, false
	}

	raw, ok := g.get(ctx, KeyDataset)
	if !ok {
		return nil, false
	}
	var jobs []models.JobRecord
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		g.logger.Warn().Err(err).Str("key", KeyDataset).Msg("invalid cached dataset")
		return nil, false
	}
	return jobs, true
}

// SetCachedDataset stores the records and stamps them with now.
func (g *Gateway) SetCachedDataset(ctx context.Context, jobs []models.JobRecord, now time.Time) error {
	if jobs == nil {
		jobs = []models.JobRecord{}
	}
	data, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("%w: encode dataset: %w", ErrPersistence, err)
	}
	if err := g.set(ctx, KeyDataset, string(data)); err != nil {
		return err
	}
	if err := g.set(ctx, KeyDatasetUpdated, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		// The blob must not outlive a stale timestamp.
		if rmErr := g.kv.Remove(ctx, KeyDataset); rmErr != nil {
			g.logger.Warn().Err(rmErr).Str("key", KeyDataset).Msg("cannot drop unstamped dataset")
		}
		return err
	}
	return nil
}

// Favorites returns the stored favorite ids in stored order.
func (g *Gateway) Favorites(ctx context.Context) []string {
	raw, ok := g.get(ctx, KeyFavorites)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		g.logger.Warn().Err(err).Str("key", KeyFavorites).Msg("invalid favorites")
		return nil
	}
	return ids
}

// SetFavorites replaces the stored favorite ids.
func (g *Gateway) SetFavorites(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("%w: encode favorites: %w", ErrPersistence, err)
	}
	return g.set(ctx, KeyFavorites, string(data))
}

// Theme returns the stored theme, light when unset or invalid.
func (g *Gateway) Theme(ctx context.Context) Theme {
	raw, ok := g.get(ctx, KeyTheme)
	if !ok {
		return ThemeLight
	}
	theme, valid := ParseTheme(raw)
	if !valid {
		return ThemeLight
	}
	return theme
}

func (g *Gateway) SetTheme(ctx context.Context, theme Theme) error {
	return g.set(ctx, KeyTheme, string(theme))
}
