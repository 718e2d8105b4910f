// Package catalog holds the loaded job records and knows where to load them from.
package catalog

import (
	"errors"
	"sort"

	"github.com/jimezsa/govjobs/internal/models"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("job not found")

// Repository is the full, unfiltered record collection in load order.
type Repository struct {
	jobs  []models.JobRecord
	index map[string]int
}

// NewRepository keeps the first record for each identifier and drops later
// duplicates. Records without an identifier are kept but cannot be looked up.
func NewRepository(jobs []models.JobRecord, logger zerolog.Logger) *Repository {
	repo := &Repository{
		jobs:  make([]models.JobRecord, 0, len(jobs)),
		index: make(map[string]int, len(jobs)),
	}

	dropped := 0
	for _, job := range jobs {
		id := job.ID()
		if id != "" {
			if _, exists := repo.index[id]; exists {
				dropped++
				continue
			}
			repo.index[id] = len(repo.jobs)
		}
		repo.jobs = append(repo.jobs, job)
	}

	if dropped > 0 {
		logger.Warn().Int("dropped", dropped).Msg("duplicate job identifiers in dataset")
	}
	return repo
}

// All returns the records. Callers must not modify the slice.
func (r *Repository) All() []models.JobRecord {
	return r.jobs
}

func (r *Repository) Len() int {
	return len(r.jobs)
}

func (r *Repository) Get(id string) (models.JobRecord, error) {
	idx, ok := r.index[id]
	if !ok {
		return models.JobRecord{}, ErrNotFound
	}
	return r.jobs[idx], nil
}

// FilterOptions lists the distinct values available for each exact-match axis.
type FilterOptions struct {
	Locations    []string `json:"locations"`
	Offices      []string `json:"offices"`
	Areas        []string `json:"areas"`
	PublishTypes []string `json:"publish_types"`
}

// Options collects the sorted distinct non-empty values per filter axis.
func (r *Repository) Options() FilterOptions {
	locations := map[string]struct{}{}
	offices := map[string]struct{}{}
	areas := map[string]struct{}{}
	types := map[string]struct{}{}

	add := func(set map[string]struct{}, value models.Text) {
		if s := value.String(); s != "" {
			set[s] = struct{}{}
		}
	}
	for _, job := range r.jobs {
		add(locations, job.LocationName)
		add(offices, job.OfficeName)
		add(areas, job.Area)
		add(types, job.PublishType)
	}

	return FilterOptions{
		Locations:    sortedKeys(locations),
		Offices:      sortedKeys(offices),
		Areas:        sortedKeys(areas),
		PublishTypes: sortedKeys(types),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
