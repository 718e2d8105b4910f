package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jimezsa/govjobs/internal/dates"
	"github.com/jimezsa/govjobs/internal/links"
	"github.com/jimezsa/govjobs/internal/models"
)

// Cleaner turns HTML fragments into plain text.
type Cleaner interface {
	Clean(fragment string) string
}

type section struct {
	title  string
	fields [][2]string
	body   string
}

// WriteDetail prints the sectioned view of a single posting.
func WriteDetail(w io.Writer, job models.JobRecord, now time.Time, favorite bool, cleaner Cleaner) error {
	loc := now.Location()
	deadline := dates.LastDate(job, now)
	published, ok := dates.PublishDate(job)

	title := job.TenderName.Or(models.Placeholder)
	if favorite {
		title = "* " + title
	}

	sections := []section{
		{
			title: "Basic info",
			fields: [][2]string{
				{"Job number", job.TenderNumber.Or(models.Placeholder)},
				{"Office", job.OfficeName.Or(models.Placeholder)},
				{"Office number", job.OfficeNumber.Or(models.Placeholder)},
				{"Unit", job.OfficeUnitName.Or(models.Placeholder)},
			},
		},
		{
			title: "Location",
			fields: [][2]string{
				{"Location", job.LocationName.Or(models.Placeholder)},
				{"Area", job.Area.Or(models.Placeholder)},
			},
		},
		{
			title: "Rank",
			fields: [][2]string{
				{"Job rating", job.JobRatingName.Or(models.Placeholder)},
				{"Rank from", job.RankFrom.Or(models.Placeholder)},
				{"Rank to", job.RankTo.Or(models.Placeholder)},
			},
		},
		{
			title: "Dates",
			fields: [][2]string{
				{"Published", dates.FormatDisplayDate(published, ok, loc)},
				{"Last date", dates.FormatDisplayDate(deadline.Date, deadline.Valid, loc)},
				{"Days left", dates.DaysLeftLabel(deadline.Days)},
			},
		},
		{
			title: "Details",
			fields: [][2]string{
				{"Publish type", job.PublishType.Or(models.Placeholder)},
				{"Number of jobs", job.NumberOfJobs.Or(models.Placeholder)},
			},
		},
	}
	if text := clean(cleaner, job.Requirements.String()); text != "" {
		sections = append(sections, section{title: "Requirements", body: text})
	}
	if text := clean(cleaner, job.Remarks.String()); text != "" {
		sections = append(sections, section{title: "Remarks", body: text})
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(s.title)
		b.WriteString("\n")
		for _, field := range s.fields {
			fmt.Fprintf(&b, "  %-15s %s\n", field[0]+":", field[1])
		}
		if s.body != "" {
			for _, line := range strings.Split(s.body, "\n") {
				b.WriteString("  ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\nApply: ")
	b.WriteString(links.PositionURL(job.ID()))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func clean(cleaner Cleaner, fragment string) string {
	if cleaner == nil {
		return strings.TrimSpace(fragment)
	}
	return cleaner.Clean(fragment)
}
