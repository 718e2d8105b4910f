// Package stats aggregates job lists into ranked, percentage-annotated buckets.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/jimezsa/govjobs/internal/dates"
	"github.com/jimezsa/govjobs/internal/models"
)

// TopN is the number of buckets kept per group.
const TopN = 10

// Bucket is one label with its count and share of the group total.
type Bucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Report holds the four statistics groups.
type Report struct {
	Total     int      `json:"total"`
	ByOffice  []Bucket `json:"by_office"`
	ByArea    []Bucket `json:"by_area"`
	ByType    []Bucket `json:"by_type"`
	ByUrgency []Bucket `json:"by_urgency"`
}

// KeyFunc extracts the bucket label for a record.
type KeyFunc func(models.JobRecord) string

// Field buckets by a text field, using models.NotSpecified for empty values.
func Field(field func(models.JobRecord) models.Text) KeyFunc {
	return func(job models.JobRecord) string {
		return field(job).Or(models.NotSpecified)
	}
}

// Tally counts every label in first-encountered order. Counts sum to len(jobs).
func Tally(jobs []models.JobRecord, key KeyFunc) []Bucket {
	index := map[string]int{}
	var buckets []Bucket
	for _, job := range jobs {
		label := key(job)
		idx, ok := index[label]
		if !ok {
			idx = len(buckets)
			index[label] = idx
			buckets = append(buckets, Bucket{Label: label})
		}
		buckets[idx].Count++
	}
	return buckets
}

// Rank computes percentages against the sum of all buckets, orders by count
// descending (ties keep their order) and keeps the first n.
func Rank(buckets []Bucket, n int) []Bucket {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}

	ranked := make([]Bucket, len(buckets))
	copy(ranked, buckets)
	for i := range ranked {
		ranked[i].Percent = percent(ranked[i].Count, total)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

// UrgencyTally counts records per urgency bucket. All four buckets are present
// in report order even when empty.
func UrgencyTally(jobs []models.JobRecord, now time.Time) []Bucket {
	counts := map[dates.Urgency]int{}
	for _, job := range jobs {
		counts[dates.LastDate(job, now).Urgency]++
	}

	buckets := make([]Bucket, 0, len(dates.ReportOrder))
	for _, u := range dates.ReportOrder {
		buckets = append(buckets, Bucket{Label: u.Label(), Count: counts[u]})
	}
	return buckets
}

// Aggregate builds the full report for jobs, evaluating deadlines against now.
func Aggregate(jobs []models.JobRecord, now time.Time) Report {
	return Report{
		Total:     len(jobs),
		ByOffice:  Rank(Tally(jobs, Field(func(j models.JobRecord) models.Text { return j.OfficeName })), TopN),
		ByArea:    Rank(Tally(jobs, Field(func(j models.JobRecord) models.Text { return j.Area })), TopN),
		ByType:    Rank(Tally(jobs, Field(func(j models.JobRecord) models.Text { return j.PublishType })), TopN),
		ByUrgency: Rank(UrgencyTally(jobs, now), TopN),
	}
}
