package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version VersionCmd `cmd:"" help:"Print version."`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration."`
	List    ListCmd    `cmd:"" default:"withargs" help:"List, search and sort jobs."`
	Show    ShowCmd    `cmd:"" help:"Show a single job."`
	Stats   StatsCmd   `cmd:"" help:"Statistics over the current selection."`
	Export  ExportCmd  `cmd:"" help:"Export the current selection to a CSV file."`
	Options OptionsCmd `cmd:"" help:"List the values available for each filter."`
	Fav     FavCmd     `cmd:"" name:"fav" help:"Manage favorite jobs."`
	Refresh RefreshCmd `cmd:"" help:"Fetch the latest jobs from the server."`
	Link    LinkCmd    `cmd:"" help:"Print the apply or share link of a job."`
	Theme   ThemeCmd   `cmd:"" help:"Get or change the color theme."`
}

func NewCLI() *CLI {
	return &CLI{}
}
