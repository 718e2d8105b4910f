package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/jimezsa/govjobs/internal/export"
)

var errNothingToExport = errors.New("no jobs to export")

type ExportCmd struct {
	Query  string `arg:"" optional:"" help:"Search term; only matching jobs are exported."`
	Output string `name:"output" short:"o" help:"Destination file (default: govjobs_<date>.csv in the export dir)."`
	NoBOM  bool   `name:"no-bom" help:"Omit the UTF-8 byte order mark."`
	FilterFlags
}

func (e *ExportCmd) Run(ctx *Context) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	spec, order := e.specs(e.Query)
	a.session.Apply(spec, order)
	jobs := a.session.ExportJobs()
	if len(jobs) == 0 {
		return errNothingToExport
	}

	path := e.Output
	if path == "" {
		path = filepath.Join(ctx.Config.ExportDir, export.FileName(ctx.now()))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	err = writeExportFile(path, func(w io.Writer) error {
		return export.WriteJobs(w, jobs, export.FormatCSV, export.WriteOptions{
			BOM: !e.NoBOM,
			Now: ctx.now(),
		})
	})
	if err != nil {
		return err
	}

	ctx.Logger.Debug().Str("path", path).Int("jobs", len(jobs)).Msg("export written")
	if ctx.UI != nil {
		ctx.UI.Successf("Exported %d jobs to %s", len(jobs), path)
	}
	return nil
}

// writeExportFile creates path and fills it with write. A failed write leaves
// no partial file behind.
func writeExportFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
