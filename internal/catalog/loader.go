package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jimezsa/govjobs/internal/store"
	"github.com/rs/zerolog"
)

var (
	// ErrLoad marks a failed initial load. Nothing is loaded.
	ErrLoad = errors.New("cannot load jobs")
	// ErrRefresh marks a failed remote refresh. The previous data stays in use.
	ErrRefresh = errors.New("cannot refresh jobs")
)

// Loader resolves the dataset for an invocation: a fresh cached refresh wins
// over the local file.
type Loader struct {
	Local   Source
	Remote  Source
	Gateway *store.Gateway
	Logger  zerolog.Logger
	Now     func() time.Time
}

func (l *Loader) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Load builds the repository. Any failure is reported as ErrLoad.
func (l *Loader) Load(ctx context.Context) (*Repository, error) {
	if l.Gateway != nil {
		if jobs, ok := l.Gateway.CachedDataset(ctx, l.now()); ok {
			l.Logger.Debug().Int("jobs", len(jobs)).Msg("using cached dataset")
			return NewRepository(jobs, l.Logger), nil
		}
	}

	if l.Local == nil {
		return nil, fmt.Errorf("%w: no dataset source configured", ErrLoad)
	}
	jobs, err := l.Local.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	l.Logger.Debug().Int("jobs", len(jobs)).Msg("loaded dataset")
	return NewRepository(jobs, l.Logger), nil
}

// Refresh fetches the remote dataset and caches it. A cache write failure is
// logged; the fetched data is still returned.
func (l *Loader) Refresh(ctx context.Context) (*Repository, error) {
	if l.Remote == nil {
		return nil, fmt.Errorf("%w: no remote source configured", ErrRefresh)
	}
	jobs, err := l.Remote.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRefresh, err)
	}

	if l.Gateway != nil {
		if err := l.Gateway.SetCachedDataset(ctx, jobs, l.now()); err != nil {
			l.Logger.Warn().Err(err).Msg("cache write failed")
		}
	}
	return NewRepository(jobs, l.Logger), nil
}
