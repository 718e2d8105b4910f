package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jimezsa/govjobs/internal/export"
	"github.com/jimezsa/govjobs/internal/models"
	"github.com/muesli/termenv"
)

// OutputFlags choose the format and destination of a listing.
type OutputFlags struct {
	Format string `help:"Output format: table, csv, tsv, json, md." enum:",table,csv,tsv,json,md" default:""`
	Links  string `help:"Table link display: short or full." enum:"short,full" default:"short"`
	Output string `name:"output" short:"o" help:"Write output to a file."`
}

func resolveFormat(ctx *Context, format string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if format != "" {
		return parseFormat(format)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "json":
		return export.FormatJSON, nil
	case "md", "markdown":
		return export.FormatMarkdown, nil
	case "tsv":
		return export.FormatTSV, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

// writeListing renders jobs to stdout or to the --output file.
func writeListing(ctx *Context, a *app, jobs []models.JobRecord, opts OutputFlags) error {
	format, err := resolveFormat(ctx, opts.Format, opts.Output)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled && opts.Output == ""
	writeOpts := export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(writer),
		LinkStyle:    export.LinkStyleShort,
		BOM:          opts.Output != "" && format == export.FormatCSV,
		Now:          ctx.now(),
		Favorites:    a.session.Favorites(),
		Cleaner:      a.cleaner,
	}
	if strings.EqualFold(opts.Links, string(export.LinkStyleFull)) {
		writeOpts.LinkStyle = export.LinkStyleFull
	}
	if ctx.UI != nil {
		writeOpts.Colors = ctx.UI.Palette.Urgency
		writeOpts.LinkColor = ctx.UI.Palette.Link
	}
	return export.WriteJobs(writer, jobs, format, writeOpts)
}
