package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
)

type OptionsCmd struct{}

func (o *OptionsCmd) Run(ctx *Context) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	options := a.session.Repository().Options()
	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(options)
	}

	groups := []struct {
		flag   string
		values []string
	}{
		{"--location", options.Locations},
		{"--office", options.Offices},
		{"--area", options.Areas},
		{"--type", options.PublishTypes},
	}
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(ctx.Out)
		}
		title := fmt.Sprintf("%s (%d)", group.flag, len(group.values))
		if ctx.UI != nil {
			title = ctx.UI.Heading(title)
		}
		if _, err := fmt.Fprintln(ctx.Out, title); err != nil {
			return err
		}
		if len(group.values) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(ctx.Out, "  %s\n", strings.Join(group.values, "\n  ")); err != nil {
			return err
		}
	}
	return nil
}
