// Package dates handles the vendor date encoding and deadline urgency.
//
// The dataset carries dates as "/Date(<epoch millis>)/". That format is decoded
// here and nowhere else; the rest of the program works with time.Time.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jimezsa/govjobs/internal/models"
)

var vendorDatePattern = regexp.MustCompile(`/Date\((\d+)\)/`)

const displayLayout = "02/01/2006"

// ParseVendorDate decodes a "/Date(ms)/" value. ok is false for empty or
// non-matching input.
func ParseVendorDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	match := vendorDatePattern.FindStringSubmatch(raw)
	if match == nil {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// DaysLeft returns the number of calendar days from today to date, both taken
// at midnight in now's location. A deadline today yields 0. Absent dates yield -1.
func DaysLeft(date time.Time, ok bool, now time.Time) int {
	if !ok {
		return -1
	}
	loc := now.Location()
	y, m, d := date.In(loc).Date()
	due := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24)
}

// FormatDisplayDate renders DD/MM/YYYY in loc, or the placeholder.
func FormatDisplayDate(date time.Time, ok bool, loc *time.Location) string {
	if !ok {
		return models.Placeholder
	}
	if loc != nil {
		date = date.In(loc)
	}
	return date.Format(displayLayout)
}

// DaysLeftLabel is the human label for a days-left value.
func DaysLeftLabel(days int) string {
	switch {
	case days < 0:
		return "expired"
	case days == 0:
		return "last day!"
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// Deadline bundles the parsed last-submission date of a record with its
// days-left value relative to now.
type Deadline struct {
	Date    time.Time
	Valid   bool
	Days    int
	Urgency Urgency
}

// LastDate evaluates a record's last-submission date against now.
func LastDate(job models.JobRecord, now time.Time) Deadline {
	date, ok := ParseVendorDate(job.LastDateRaw.String())
	days := DaysLeft(date, ok, now)
	return Deadline{Date: date, Valid: ok, Days: days, Urgency: Classify(days)}
}

// PublishDate parses a record's publication date.
func PublishDate(job models.JobRecord) (time.Time, bool) {
	return ParseVendorDate(job.PublishDateRaw.String())
}
