package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jimezsa/govjobs/internal/catalog"
)

type FavCmd struct {
	Toggle FavToggleCmd `cmd:"" help:"Add or remove a job from favorites."`
	List   FavListCmd   `cmd:"" help:"List favorite jobs."`
}

type FavToggleCmd struct {
	ID string `arg:"" help:"Job id (RequestId)."`
}

type FavListCmd struct {
	FilterFlags
	OutputFlags
}

func (f *FavToggleCmd) Run(ctx *Context) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	// Saved ids that are no longer in the dataset can still be removed.
	favs := a.session.Favorites()
	if _, err := a.session.Repository().Get(f.ID); err != nil && !favs.IsFavorite(f.ID) {
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("%s: %w", f.ID, err)
		}
		return err
	}

	added := a.session.ToggleFavorite(context.Background(), f.ID)
	if ctx.JSONOutput {
		_, err := fmt.Fprintf(ctx.Out, "{\"id\":%q,\"favorite\":%t}\n", f.ID, added)
		return err
	}
	if ctx.UI != nil {
		if added {
			ctx.UI.Successf("Added %s to favorites (%d saved)", f.ID, favs.Len())
		} else {
			ctx.UI.Infof("Removed %s from favorites (%d saved)", f.ID, favs.Len())
		}
	}
	return nil
}

func (f *FavListCmd) Run(ctx *Context) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	applyTheme(ctx, a.gateway)

	spec, order := f.specs("")
	spec.FavoritesOnly = true
	view := a.session.Apply(spec, order)
	if err := writeListing(ctx, a, view, f.OutputFlags); err != nil {
		return err
	}
	printSummary(ctx, a)
	return nil
}
