// Package seen compares two dataset snapshots to report new and closed
// postings after a refresh.
package seen

import (
	"strings"

	"github.com/jimezsa/govjobs/internal/models"
)

const keySeparator = "::"

// DiffStats summarizes a snapshot comparison.
type DiffStats struct {
	TotalCurrent  int
	TotalPrevious int
	Invalid       int
	New           int
	Closed        int
}

// Normalize lowercases and collapses whitespace.
func Normalize(value string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	return strings.Join(fields, " ")
}

// Key identifies a posting across snapshots: the request id, or the tender
// number and name for records without one.
func Key(job models.JobRecord) (string, bool) {
	if id := job.ID(); id != "" {
		return id, true
	}
	number := Normalize(job.TenderNumber.String())
	name := Normalize(job.TenderName.String())
	if number == "" || name == "" {
		return "", false
	}
	return number + keySeparator + name, true
}

func keySet(jobs []models.JobRecord) (map[string]struct{}, int) {
	keys := make(map[string]struct{}, len(jobs))
	invalid := 0
	for _, job := range jobs {
		key, ok := Key(job)
		if !ok {
			invalid++
			continue
		}
		keys[key] = struct{}{}
	}
	return keys, invalid
}

// Diff returns the postings in current that previous did not have, in
// current's order. Closed counts previous postings missing from current.
func Diff(current []models.JobRecord, previous []models.JobRecord) ([]models.JobRecord, DiffStats) {
	stats := DiffStats{
		TotalCurrent:  len(current),
		TotalPrevious: len(previous),
	}

	previousKeys, invalidPrevious := keySet(previous)
	stats.Invalid += invalidPrevious

	currentKeys := make(map[string]struct{}, len(current))
	added := make([]models.JobRecord, 0)
	for _, job := range current {
		key, ok := Key(job)
		if !ok {
			stats.Invalid++
			continue
		}
		if _, exists := currentKeys[key]; exists {
			continue
		}
		currentKeys[key] = struct{}{}
		if _, exists := previousKeys[key]; exists {
			continue
		}
		added = append(added, job)
	}

	for key := range previousKeys {
		if _, exists := currentKeys[key]; !exists {
			stats.Closed++
		}
	}

	stats.New = len(added)
	return added, stats
}
