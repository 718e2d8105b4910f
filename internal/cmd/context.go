package cmd

import (
	"io"
	"time"

	"github.com/jimezsa/govjobs/internal/config"
	"github.com/jimezsa/govjobs/internal/store"
	"github.com/jimezsa/govjobs/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode

	// Now and Store override the clock and the key-value backend.
	Now   func() time.Time
	Store store.KV
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
