package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jimezsa/govjobs/internal/stats"
)

type StatsCmd struct {
	Query string `arg:"" optional:"" help:"Search term; statistics cover the matching jobs."`
	FilterFlags
}

func (s *StatsCmd) Run(ctx *Context) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	applyTheme(ctx, a.gateway)

	spec, order := s.specs(s.Query)
	a.session.Apply(spec, order)
	report := a.session.Statistics()

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return writeReport(ctx, report)
}

func writeReport(ctx *Context, report stats.Report) error {
	groups := []struct {
		title   string
		buckets []stats.Bucket
	}{
		{"By office", report.ByOffice},
		{"By area", report.ByArea},
		{"By publish type", report.ByType},
		{"By urgency", report.ByUrgency},
	}

	if _, err := fmt.Fprintf(ctx.Out, "Jobs: %d\n", report.Total); err != nil {
		return err
	}
	for _, group := range groups {
		title := group.title
		if ctx.UI != nil {
			title = ctx.UI.Heading(title)
		}
		if _, err := fmt.Fprintf(ctx.Out, "\n%s\n", title); err != nil {
			return err
		}
		if err := writeBuckets(ctx.Out, group.buckets); err != nil {
			return err
		}
	}
	return nil
}

func writeBuckets(w io.Writer, buckets []stats.Bucket) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, bucket := range buckets {
		fmt.Fprintf(tw, "  %s\t%d\t%.1f%%\n", bucket.Label, bucket.Count, bucket.Percent)
	}
	return tw.Flush()
}
