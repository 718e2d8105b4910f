// Package favorites tracks the user's favorite job identifiers.
package favorites

import (
	"context"

	"github.com/rs/zerolog"
)

// Persister stores the whole favorite set.
type Persister interface {
	SetFavorites(ctx context.Context, ids []string) error
}

// Manager owns the in-memory favorite set. Every mutation is persisted
// immediately; a failed write is logged and the in-memory set stays
// authoritative for the session.
type Manager struct {
	ids     []string
	members map[string]struct{}
	store   Persister
	logger  zerolog.Logger
}

// NewManager seeds the set from initial, ignoring empty and repeated ids.
// Ids unknown to the current dataset are kept.
func NewManager(initial []string, store Persister, logger zerolog.Logger) *Manager {
	m := &Manager{
		members: make(map[string]struct{}, len(initial)),
		store:   store,
		logger:  logger,
	}
	for _, id := range initial {
		if id == "" {
			continue
		}
		if _, ok := m.members[id]; ok {
			continue
		}
		m.members[id] = struct{}{}
		m.ids = append(m.ids, id)
	}
	return m
}

// Toggle flips membership of id and returns whether it is now a favorite.
func (m *Manager) Toggle(ctx context.Context, id string) bool {
	_, isFavorite := m.members[id]
	if isFavorite {
		delete(m.members, id)
		m.ids = removeID(m.ids, id)
	} else {
		m.members[id] = struct{}{}
		m.ids = append(m.ids, id)
	}
	m.persist(ctx)
	return !isFavorite
}

func (m *Manager) IsFavorite(id string) bool {
	_, ok := m.members[id]
	return ok
}

// Has is IsFavorite under the name the filter engine expects.
func (m *Manager) Has(id string) bool {
	return m.IsFavorite(id)
}

// IDs returns the favorites in the order they were added.
func (m *Manager) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}

func (m *Manager) Len() int {
	return len(m.ids)
}

func (m *Manager) persist(ctx context.Context) {
	if m.store == nil {
		return
	}
	if err := m.store.SetFavorites(ctx, m.IDs()); err != nil {
		m.logger.Warn().Err(err).Int("favorites", len(m.ids)).Msg("favorites not saved")
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
