// Package session holds the application state for one run: the loaded jobs,
// favorites, the active filter and sort, and the derived view.
package session

import (
	"context"
	"time"

	"github.com/jimezsa/govjobs/internal/catalog"
	"github.com/jimezsa/govjobs/internal/favorites"
	"github.com/jimezsa/govjobs/internal/filter"
	"github.com/jimezsa/govjobs/internal/models"
	"github.com/jimezsa/govjobs/internal/stats"
	"github.com/rs/zerolog"
)

// Session recomputes the whole view after every change to its inputs. The view
// is replaced, never edited in place.
type Session struct {
	repo      *catalog.Repository
	favorites *favorites.Manager
	filter    models.FilterSpec
	sort      models.SortSpec
	view      []models.JobRecord
	now       func() time.Time
}

func New(repo *catalog.Repository, favs *favorites.Manager, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	if favs == nil {
		favs = favorites.NewManager(nil, nil, zerolog.Nop())
	}
	s := &Session{
		repo:      repo,
		favorites: favs,
		sort:      models.DefaultSort(),
		now:       now,
	}
	s.recompute()
	return s
}

func (s *Session) recompute() {
	s.view = filter.ComputeView(s.repo.All(), s.filter, s.sort, s.favorites)
}

// Apply replaces the filter and sort selection.
func (s *Session) Apply(spec models.FilterSpec, order models.SortSpec) []models.JobRecord {
	s.filter = spec
	s.sort = order
	s.recompute()
	return s.view
}

func (s *Session) SetFavoritesOnly(enabled bool) []models.JobRecord {
	s.filter.FavoritesOnly = enabled
	s.recompute()
	return s.view
}

func (s *Session) ToggleFavoritesView() []models.JobRecord {
	return s.SetFavoritesOnly(!s.filter.FavoritesOnly)
}

func (s *Session) ClearSearch() []models.JobRecord {
	s.filter.Query = ""
	s.recompute()
	return s.view
}

// Reset clears every constraint, restores the default sort and leaves
// favorites-only mode.
func (s *Session) Reset() []models.JobRecord {
	return s.Apply(models.FilterSpec{}, models.DefaultSort())
}

// ToggleFavorite flips a favorite. In favorites-only mode the view is
// recomputed so it keeps matching the set.
func (s *Session) ToggleFavorite(ctx context.Context, id string) bool {
	added := s.favorites.Toggle(ctx, id)
	if s.filter.FavoritesOnly {
		s.recompute()
	}
	return added
}

func (s *Session) Filter() models.FilterSpec {
	return s.filter
}

func (s *Session) Sort() models.SortSpec {
	return s.sort
}

// View returns the current derived view.
func (s *Session) View() []models.JobRecord {
	return s.view
}

func (s *Session) Repository() *catalog.Repository {
	return s.repo
}

func (s *Session) Favorites() *favorites.Manager {
	return s.favorites
}

func (s *Session) Now() time.Time {
	return s.now()
}

// Statistics aggregates the current view, or every job when the view is empty.
func (s *Session) Statistics() stats.Report {
	jobs := s.view
	if len(jobs) == 0 {
		jobs = s.repo.All()
	}
	return stats.Aggregate(jobs, s.now())
}

// ExportJobs returns the rows to export: the visible jobs, restricted to
// favorites while favorites-only mode is on.
func (s *Session) ExportJobs() []models.JobRecord {
	if !s.filter.FavoritesOnly {
		return s.view
	}
	out := make([]models.JobRecord, 0, len(s.view))
	for _, job := range s.view {
		if s.favorites.IsFavorite(job.ID()) {
			out = append(out, job)
		}
	}
	return out
}

// Counts summarizes the session for status lines.
type Counts struct {
	Displayed int `json:"displayed"`
	Total     int `json:"total"`
	Favorites int `json:"favorites"`
}

func (s *Session) Counts() Counts {
	return Counts{
		Displayed: len(s.view),
		Total:     s.repo.Len(),
		Favorites: s.favorites.Len(),
	}
}
