package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jimezsa/govjobs/internal/dates"
	"github.com/jimezsa/govjobs/internal/links"
	"github.com/jimezsa/govjobs/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

// utf8BOM lets spreadsheet applications detect UTF-8 (Hebrew text).
const utf8BOM = "\ufeff"

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
	BOM          bool
	Now          time.Time
	Favorites    interface{ Has(id string) bool }
	Colors       map[dates.Urgency]string
	LinkColor    string
	Cleaner      Cleaner
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

// Row is a job with its display values resolved against a point in time.
type Row struct {
	ID           string        `json:"id"`
	Number       string        `json:"number"`
	Name         string        `json:"name"`
	Office       string        `json:"office"`
	Unit         string        `json:"unit"`
	Location     string        `json:"location"`
	Area         string        `json:"area"`
	PublishType  string        `json:"publish_type"`
	PublishDate  string        `json:"publish_date"`
	LastDate     string        `json:"last_date"`
	DaysLeft     int           `json:"days_left"`
	Urgency      dates.Urgency `json:"-"`
	UrgencyName  string        `json:"urgency"`
	Favorite     bool          `json:"favorite"`
	URL          string        `json:"url"`
	Requirements string        `json:"requirements,omitempty"`
	Remarks      string        `json:"remarks,omitempty"`
}

// BuildRows resolves dates and links for jobs as of now. Requirement and remark
// HTML is converted only when cleaner is set.
func BuildRows(jobs []models.JobRecord, now time.Time, favorites interface{ Has(id string) bool }, cleaner Cleaner) []Row {
	loc := now.Location()
	rows := make([]Row, 0, len(jobs))
	for _, job := range jobs {
		deadline := dates.LastDate(job, now)
		published, ok := dates.PublishDate(job)
		row := Row{
			ID:          job.ID(),
			Number:      job.TenderNumber.String(),
			Name:        job.TenderName.String(),
			Office:      job.OfficeName.String(),
			Unit:        job.OfficeUnitName.String(),
			Location:    job.LocationName.String(),
			Area:        job.Area.String(),
			PublishType: job.PublishType.String(),
			PublishDate: dates.FormatDisplayDate(published, ok, loc),
			LastDate:    dates.FormatDisplayDate(deadline.Date, deadline.Valid, loc),
			DaysLeft:    deadline.Days,
			Urgency:     deadline.Urgency,
			UrgencyName: deadline.Urgency.String(),
			URL:         links.PositionURL(job.ID()),
		}
		if favorites != nil {
			row.Favorite = favorites.Has(row.ID)
		}
		if cleaner != nil {
			row.Requirements = cleaner.Clean(job.Requirements.String())
			row.Remarks = cleaner.Clean(job.Remarks.String())
		}
		rows = append(rows, row)
	}
	return rows
}

// FileName is the default export file name for the given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("govjobs_%s.csv", now.Format("2006-01-02"))
}

func WriteJobs(w io.Writer, jobs []models.JobRecord, format Format, opts WriteOptions) error {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	rows := BuildRows(jobs, opts.Now, opts.Favorites, opts.Cleaner)

	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatCSV:
		return writeSpreadsheet(w, rows, opts.BOM)
	case FormatTSV:
		return writeTSV(w, rows)
	case FormatMarkdown:
		return writeMarkdown(w, rows)
	default:
		return writeTable(w, rows, opts)
	}
}

func writeJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// writeSpreadsheet writes the export artifact: every cell is quoted, inner
// quotes are doubled, lines end with \n.
func writeSpreadsheet(w io.Writer, rows []Row, bom bool) error {
	var b strings.Builder
	if bom {
		b.WriteString(utf8BOM)
	}
	writeQuotedLine(&b, csvHeader())
	for _, row := range rows {
		writeQuotedLine(&b, csvRow(row))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeQuotedLine(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func writeTSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(csvRow(row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, rows []Row, opts WriteOptions) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No jobs found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
	output := termenv.NewOutput(w)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(tableRow(row, output, opts), "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for _, row := range rows {
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", orPlaceholder(row.Name), orPlaceholder(row.Office)),
			fmt.Sprintf("  Number: %s", orPlaceholder(row.Number)),
			fmt.Sprintf("  Unit: %s", orPlaceholder(row.Unit)),
			fmt.Sprintf("  Location: %s (%s)", orPlaceholder(row.Location), orPlaceholder(row.Area)),
			fmt.Sprintf("  Last date: %s, %s", row.LastDate, dates.DaysLeftLabel(row.DaysLeft)),
			fmt.Sprintf("  Apply: [Open position](<%s>)", row.URL),
		}
		if row.Requirements != "" {
			lines = append(lines, "  Requirements: "+strings.ReplaceAll(row.Requirements, "\n", "; "))
		}
		if row.Favorite {
			lines = append(lines, "  Favorite: yes")
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvHeader() []string {
	return []string{
		"Job number",
		"Name",
		"Office",
		"Unit",
		"Location",
		"Area",
		"Publish date",
		"Last date",
		"Days left",
		"Submission link",
	}
}

func csvRow(row Row) []string {
	days := dates.DaysLeftLabel(-1)
	if row.DaysLeft >= 0 {
		days = strconv.Itoa(row.DaysLeft)
	}
	return []string{
		row.Number,
		row.Name,
		row.Office,
		row.Unit,
		row.Location,
		row.Area,
		row.PublishDate,
		row.LastDate,
		days,
		row.URL,
	}
}

func orPlaceholder(value string) string {
	if value == "" {
		return models.Placeholder
	}
	return value
}

func tableHeader() []string {
	return []string{
		"",
		"number",
		"name",
		"office",
		"location",
		"last date",
		"days left",
		"apply",
	}
}

func tableRow(row Row, output *termenv.Output, opts WriteOptions) []string {
	star := " "
	if row.Favorite {
		star = "*"
	}

	days := dates.DaysLeftLabel(row.DaysLeft)
	if opts.ColorEnabled {
		if color, ok := opts.Colors[row.Urgency]; ok && color != "" {
			days = output.String(days).Foreground(output.Color(color)).String()
		}
	}

	displayURL := row.URL
	if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
		displayURL = shortURLLabel(row.URL)
	}
	if opts.ColorEnabled && opts.LinkColor != "" {
		displayURL = output.String(displayURL).Foreground(output.Color(opts.LinkColor)).String()
	}
	if opts.Hyperlinks {
		displayURL = hyperlink(row.URL, displayURL)
	}

	return []string{
		star,
		orPlaceholder(row.Number),
		orPlaceholder(row.Name),
		orPlaceholder(row.Office),
		orPlaceholder(row.Location),
		row.LastDate,
		days,
		displayURL,
	}
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

// shortURLLabel keeps host and fragment, which is where the position id lives.
func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host
			if parsed.Fragment != "" {
				label += "#" + parsed.Fragment
			}
		}
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
