package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jimezsa/govjobs/internal/models"
	"github.com/rs/zerolog"
)

type failingKV struct{}

var errBroken = errors.New("disk full")

func (failingKV) Get(context.Context, string) (string, bool, error) { return "", false, errBroken }
func (failingKV) Set(context.Context, string, string) error         { return errBroken }
func (failingKV) Remove(context.Context, string) error              { return errBroken }

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "storage.json")

	fs, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore() error = %v", err)
	}
	if err := fs.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := fs.Set(ctx, "favoriteJobs", `["a"]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := fs.Remove(ctx, "favoriteJobs"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore() reopen error = %v", err)
	}
	value, ok, err := reopened.Get(ctx, "theme")
	if err != nil || !ok || value != "dark" {
		t.Fatalf("Get(theme) = %q, %v, %v", value, ok, err)
	}
	if _, ok, _ := reopened.Get(ctx, "favoriteJobs"); ok {
		t.Fatalf("expected favoriteJobs to be removed")
	}
}

func TestOpenFileStoreMissingAndEmpty(t *testing.T) {
	dir := t.TempDir()
	if _, err := OpenFileStore(filepath.Join(dir, "missing.json")); err != nil {
		t.Fatalf("OpenFileStore(missing) error = %v", err)
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := OpenFileStore(empty); err != nil {
		t.Fatalf("OpenFileStore(empty) error = %v", err)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := OpenFileStore(corrupt); err == nil {
		t.Fatalf("OpenFileStore(corrupt) error = nil, want error")
	}
}

func TestGatewayCachedDatasetTTL(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(NewMemoryStore(), 0, zerolog.Nop())
	written := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	jobs := []models.JobRecord{{RequestID: "1", TenderName: "Analyst"}}
	if err := gw.SetCachedDataset(ctx, jobs, written); err != nil {
		t.Fatalf("SetCachedDataset() error = %v", err)
	}

	got, ok := gw.CachedDataset(ctx, written.Add(23*time.Hour+59*time.Minute))
	if !ok || len(got) != 1 || got[0].TenderName != "Analyst" {
		t.Fatalf("CachedDataset() within TTL = %+v, %v", got, ok)
	}

	if _, ok := gw.CachedDataset(ctx, written.Add(24*time.Hour)); ok {
		t.Fatalf("CachedDataset() at TTL should be absent")
	}

	stamp, ok := gw.CacheTimestamp(ctx)
	if !ok || !stamp.Equal(written) {
		t.Fatalf("CacheTimestamp() = %v, %v", stamp, ok)
	}
}

func TestGatewayCorruptValuesAreAbsent(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	gw := NewGateway(kv, time.Hour, zerolog.Nop())
	now := time.Now()

	_ = kv.Set(ctx, KeyDatasetUpdated, "not-a-number")
	_ = kv.Set(ctx, KeyDataset, "[]")
	if _, ok := gw.CachedDataset(ctx, now); ok {
		t.Fatalf("expected invalid timestamp to hide dataset")
	}

	_ = kv.Set(ctx, KeyDatasetUpdated, "1")
	_ = kv.Set(ctx, KeyDataset, "{broken")
	if _, ok := gw.CachedDataset(ctx, time.UnixMilli(2)); ok {
		t.Fatalf("expected broken dataset to be absent")
	}

	_ = kv.Set(ctx, KeyFavorites, "{")
	if ids := gw.Favorites(ctx); ids != nil {
		t.Fatalf("Favorites() = %v, want nil", ids)
	}

	_ = kv.Set(ctx, KeyTheme, "sepia")
	if theme := gw.Theme(ctx); theme != ThemeLight {
		t.Fatalf("Theme() = %q, want light", theme)
	}
}

func TestGatewayFavoritesAndTheme(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(NewMemoryStore(), time.Hour, zerolog.Nop())

	if err := gw.SetFavorites(ctx, []string{"b", "a"}); err != nil {
		t.Fatalf("SetFavorites() error = %v", err)
	}
	ids := gw.Favorites(ctx)
	if len(ids) != 2 || ids[0] != "b" || ids[1] != "a" {
		t.Fatalf("Favorites() = %v", ids)
	}

	if gw.Theme(ctx) != ThemeLight {
		t.Fatalf("default theme should be light")
	}
	if err := gw.SetTheme(ctx, ThemeDark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if gw.Theme(ctx) != ThemeDark {
		t.Fatalf("Theme() should be dark after SetTheme")
	}
}

func TestGatewayFailuresAreSwallowedOnRead(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(failingKV{}, time.Hour, zerolog.Nop())

	if _, ok := gw.CachedDataset(ctx, time.Now()); ok {
		t.Fatalf("expected no dataset from failing store")
	}
	if gw.Favorites(ctx) != nil {
		t.Fatalf("expected no favorites from failing store")
	}
	if gw.Theme(ctx) != ThemeLight {
		t.Fatalf("expected default theme from failing store")
	}

	err := gw.SetFavorites(ctx, []string{"x"})
	if !errors.Is(err, ErrPersistence) || !errors.Is(err, errBroken) {
		t.Fatalf("SetFavorites() error = %v, want ErrPersistence wrapping cause", err)
	}
}

func TestParseTheme(t *testing.T) {
	if theme, ok := ParseTheme(" Dark "); !ok || theme != ThemeDark {
		t.Fatalf("ParseTheme(Dark) = %q, %v", theme, ok)
	}
	if _, ok := ParseTheme("blue"); ok {
		t.Fatalf("ParseTheme(blue) should fail")
	}
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Fatalf("Toggle() mismatch")
	}
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("GOVJOBS_TEST_REDIS_URL")
	if url == "" {
		t.Skip("GOVJOBS_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	rs, err := NewRedisStore(ctx, url, "govjobs-test:")
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	defer rs.Close()

	if err := rs.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value, ok, err := rs.Get(ctx, "theme")
	if err != nil || !ok || value != "dark" {
		t.Fatalf("Get() = %q, %v, %v", value, ok, err)
	}
	if err := rs.Remove(ctx, "theme"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok, err := rs.Get(ctx, "theme"); ok || err != nil {
		t.Fatalf("Get() after Remove = %v, %v", ok, err)
	}
}

func TestIsRedisURL(t *testing.T) {
	if !IsRedisURL("redis://localhost:6379/0") || !IsRedisURL("REDISS://host") {
		t.Fatalf("expected redis URLs to be detected")
	}
	if IsRedisURL("/tmp/storage.json") {
		t.Fatalf("file path detected as redis URL")
	}
}

// stampFailingKV accepts every write except the dataset timestamp.
type stampFailingKV struct {
	*MemoryStore
	failStamp bool
}

func (s *stampFailingKV) Set(ctx context.Context, key, value string) error {
	if s.failStamp && key == KeyDatasetUpdated {
		return errBroken
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestSetCachedDatasetDropsBlobWhenStampFails(t *testing.T) {
	ctx := context.Background()
	kv := &stampFailingKV{MemoryStore: NewMemoryStore()}
	gw := NewGateway(kv, time.Hour, zerolog.Nop())
	start := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

	if err := gw.SetCachedDataset(ctx, []models.JobRecord{{RequestID: "old"}}, start); err != nil {
		t.Fatalf("SetCachedDataset() error = %v", err)
	}

	kv.failStamp = true
	err := gw.SetCachedDataset(ctx, []models.JobRecord{{RequestID: "new"}}, start.Add(30*time.Minute))
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	if jobs, ok := gw.CachedDataset(ctx, start.Add(40*time.Minute)); ok {
		t.Fatalf("unstamped dataset served as fresh: %+v", jobs)
	}
	if _, ok, _ := kv.Get(ctx, KeyDataset); ok {
		t.Fatalf("dataset blob should be removed after a failed stamp")
	}
}
