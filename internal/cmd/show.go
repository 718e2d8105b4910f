package cmd

import (
	"fmt"

	"github.com/jimezsa/govjobs/internal/export"
	"github.com/jimezsa/govjobs/internal/models"
)

type ShowCmd struct {
	ID string `arg:"" help:"Job id (RequestId)."`
}

func (s *ShowCmd) Run(ctx *Context) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	job, err := a.session.Repository().Get(s.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", s.ID, err)
	}

	favs := a.session.Favorites()
	if ctx.JSONOutput {
		return writeListing(ctx, a, []models.JobRecord{job}, OutputFlags{})
	}
	return export.WriteDetail(ctx.Out, job, ctx.now(), favs.IsFavorite(job.ID()), a.cleaner)
}
