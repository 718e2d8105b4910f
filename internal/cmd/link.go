package cmd

import (
	"fmt"

	"github.com/jimezsa/govjobs/internal/links"
)

type LinkCmd struct {
	ID  string `arg:"" help:"Job id (RequestId)."`
	Via string `help:"Link kind: url, whatsapp, email." enum:"url,whatsapp,email" default:"url"`
}

func (l *LinkCmd) Run(ctx *Context) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	job, err := a.session.Repository().Get(l.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", l.ID, err)
	}
	link, err := links.For(job, links.Via(l.Via))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Out, link)
	return err
}
