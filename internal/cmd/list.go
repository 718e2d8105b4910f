package cmd

import (
	"context"
	"fmt"

	"github.com/jimezsa/govjobs/internal/dates"
	"github.com/jimezsa/govjobs/internal/session"
)

type ListCmd struct {
	Query string `arg:"" optional:"" help:"Search term matched against name, office, unit, location and job number."`
	FilterFlags
	OutputFlags
}

func (l *ListCmd) Run(ctx *Context) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	applyTheme(ctx, a.gateway)

	spec, order := l.specs(l.Query)
	view := a.session.Apply(spec, order)
	if err := writeListing(ctx, a, view, l.OutputFlags); err != nil {
		return err
	}

	printSummary(ctx, a)
	return nil
}

func printSummary(ctx *Context, a *app) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	_, _ = fmt.Fprintln(ctx.Err, formatSummary(a.session.Counts()))
	if updated, ok := a.gateway.CacheTimestamp(context.Background()); ok {
		loc := ctx.now().Location()
		_, _ = fmt.Fprintf(ctx.Err, "last update: %s %s\n",
			dates.FormatDisplayDate(updated, true, loc), updated.In(loc).Format("15:04"))
	}
}

func formatSummary(counts session.Counts) string {
	return fmt.Sprintf("summary: displayed=%d total=%d favorites=%d",
		counts.Displayed, counts.Total, counts.Favorites)
}
