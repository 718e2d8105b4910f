// Package filter derives the visible job list from the full collection.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/jimezsa/govjobs/internal/dates"
	"github.com/jimezsa/govjobs/internal/models"
)

// Favorites reports favorite membership.
type Favorites interface {
	Has(id string) bool
}

// ComputeView filters all by spec and orders the matches by order. The result
// is a new slice; all is not modified. Ties keep their filtered order in both
// directions.
func ComputeView(all []models.JobRecord, spec models.FilterSpec, order models.SortSpec, favorites Favorites) []models.JobRecord {
	term := strings.ToLower(strings.TrimSpace(spec.Query))

	view := make([]models.JobRecord, 0, len(all))
	for _, job := range all {
		if matches(job, spec, term, favorites) {
			view = append(view, job)
		}
	}

	Sort(view, order)
	return view
}

func matches(job models.JobRecord, spec models.FilterSpec, term string, favorites Favorites) bool {
	if term != "" && !strings.Contains(searchText(job), term) {
		return false
	}
	if spec.Location != "" && job.LocationName.String() != spec.Location {
		return false
	}
	if spec.Office != "" && job.OfficeName.String() != spec.Office {
		return false
	}
	if spec.Area != "" && job.Area.String() != spec.Area {
		return false
	}
	if spec.PublishType != "" && job.PublishType.String() != spec.PublishType {
		return false
	}
	if spec.FavoritesOnly && (favorites == nil || !favorites.Has(job.ID())) {
		return false
	}
	return true
}

// searchText joins the searchable fields with single spaces, so a term may
// straddle two adjacent fields.
func searchText(job models.JobRecord) string {
	fields := []string{
		string(job.TenderName),
		string(job.OfficeName),
		string(job.OfficeUnitName),
		string(job.LocationName),
		string(job.TenderNumber),
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// Sort orders jobs in place with a stable sort.
func Sort(jobs []models.JobRecord, order models.SortSpec) {
	compare := comparator(order.Key)
	desc := order.Order == models.OrderDesc

	sort.SliceStable(jobs, func(i, j int) bool {
		c := compare(jobs[i], jobs[j], desc)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

type compareFunc func(a, b models.JobRecord, desc bool) int

func comparator(key models.SortKey) compareFunc {
	switch key {
	case models.SortLastDate:
		return dateComparator(func(job models.JobRecord) string { return job.LastDateRaw.String() })
	case models.SortPublishDate:
		return dateComparator(func(job models.JobRecord) string { return job.PublishDateRaw.String() })
	case models.SortOffice:
		return textComparator(func(job models.JobRecord) models.Text { return job.OfficeName })
	case models.SortLocation:
		return textComparator(func(job models.JobRecord) models.Text { return job.LocationName })
	default:
		return textComparator(func(job models.JobRecord) models.Text { return job.TenderName })
	}
}

func textComparator(field func(models.JobRecord) models.Text) compareFunc {
	return func(a, b models.JobRecord, _ bool) int {
		return strings.Compare(field(a).String(), field(b).String())
	}
}

// dateComparator places records without a date after all dated records,
// whichever the direction.
func dateComparator(field func(models.JobRecord) string) compareFunc {
	return func(a, b models.JobRecord, desc bool) int {
		ta, okA := dates.ParseVendorDate(field(a))
		tb, okB := dates.ParseVendorDate(field(b))
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return last(desc)
		case !okB:
			return -last(desc)
		}
		return compareTime(ta, tb)
	}
}

func last(desc bool) int {
	if desc {
		return -1
	}
	return 1
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
