package cmd

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/jimezsa/jobboard/internal/ui"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"${color}"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`
	APIURL  string `name:"api-url" help:"Job collection endpoint (overrides config)."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version VersionCmd `cmd:"" help:"Print version."`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration."`
	List    ListCmd    `cmd:"" help:"List job postings, optionally filtered by title or location."`
	Show    ShowCmd    `cmd:"" help:"Show a single job posting."`
	Post    PostCmd    `cmd:"" help:"Validate and post a job."`
	Proxies ProxiesCmd `cmd:"" help:"Proxy utilities."`
	Serve   ServeCmd   `cmd:"" help:"Run the web front-end."`
}

func NewCLI() *CLI {
	return &CLI{}
}

// Vars supplies the interpolated tag values. JOBBOARD_COLOR becomes the
// --color default, so an explicit flag always wins.
func Vars(version string) kong.Vars {
	return kong.Vars{
		"version": version,
		"color":   string(ui.NormalizeColorMode(os.Getenv("JOBBOARD_COLOR"))),
	}
}
