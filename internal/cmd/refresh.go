package cmd

import (
	"context"
	"fmt"

	"github.com/jimezsa/govjobs/internal/models"
	"github.com/jimezsa/govjobs/internal/seen"
)

type RefreshCmd struct{}

// Run fetches the remote dataset once. A failure leaves the cached and local
// data untouched.
func (r *RefreshCmd) Run(ctx *Context) error {
	gateway, closeFn := openGateway(ctx)
	defer closeFn()

	remote, err := remoteSource(ctx)
	if err != nil {
		return err
	}
	loader := newLoader(ctx, gateway)
	loader.Remote = remote

	bg := context.Background()
	var previous []models.JobRecord
	if repo, err := loader.Load(bg); err == nil {
		previous = repo.All()
	} else {
		ctx.Logger.Debug().Err(err).Msg("no previous dataset to compare")
	}

	repo, err := loader.Refresh(bg)
	if err != nil {
		return err
	}
	_, stats := seen.Diff(repo.All(), previous)

	if ctx.JSONOutput {
		_, err := fmt.Fprintf(ctx.Out, "{\"jobs\":%d,\"new\":%d,\"closed\":%d}\n", repo.Len(), stats.New, stats.Closed)
		return err
	}
	if ctx.UI != nil {
		ctx.UI.Successf("%s", refreshSummary(repo.Len(), stats))
	}
	return nil
}

func refreshSummary(total int, stats seen.DiffStats) string {
	if stats.TotalPrevious == 0 {
		return fmt.Sprintf("Data updated: %d jobs", total)
	}
	return fmt.Sprintf("Data updated: %d jobs (%d new, %d closed)", total, stats.New, stats.Closed)
}
