package cmd

import (
	"context"
	"fmt"

	"github.com/jimezsa/govjobs/internal/store"
)

type ThemeCmd struct {
	Get    ThemeGetCmd    `cmd:"" default:"1" help:"Print the current theme."`
	Set    ThemeSetCmd    `cmd:"" help:"Set the theme."`
	Toggle ThemeToggleCmd `cmd:"" help:"Switch between light and dark."`
}

type ThemeGetCmd struct{}

type ThemeSetCmd struct {
	Theme string `arg:"" help:"light or dark." enum:"light,dark"`
}

type ThemeToggleCmd struct{}

func (t *ThemeGetCmd) Run(ctx *Context) error {
	gateway, closeFn := openGateway(ctx)
	defer closeFn()

	_, err := fmt.Fprintln(ctx.Out, gateway.Theme(context.Background()))
	return err
}

func (t *ThemeSetCmd) Run(ctx *Context) error {
	theme, ok := store.ParseTheme(t.Theme)
	if !ok {
		return fmt.Errorf("unknown theme: %s", t.Theme)
	}
	return saveTheme(ctx, theme)
}

func (t *ThemeToggleCmd) Run(ctx *Context) error {
	gateway, closeFn := openGateway(ctx)
	defer closeFn()

	next := gateway.Theme(context.Background()).Toggle()
	return storeTheme(ctx, gateway, next)
}

func saveTheme(ctx *Context, theme store.Theme) error {
	gateway, closeFn := openGateway(ctx)
	defer closeFn()
	return storeTheme(ctx, gateway, theme)
}

// storeTheme keeps going when the write fails; the theme only applies to this
// run then.
func storeTheme(ctx *Context, gateway *store.Gateway, theme store.Theme) error {
	if err := gateway.SetTheme(context.Background(), theme); err != nil {
		ctx.Logger.Warn().Err(err).Msg("theme not saved")
	}
	if ctx.UI != nil {
		ctx.UI.SetTheme(string(theme))
	}
	_, err := fmt.Fprintln(ctx.Out, theme)
	return err
}
