package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jimezsa/jobboard/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Write default config and proxies files."`
	Path PathConfigCmd `cmd:"" help:"Print config directory."`
	Show ShowConfigCmd `cmd:"" help:"Print the effective configuration."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct{}

type ShowConfigCmd struct{}

func (c *InitConfigCmd) Run(ctx *Context) error {
	created, err := config.Init()
	if err != nil {
		return err
	}
	if len(created) == 0 {
		ctx.UI.Infof("Config already initialized at %s", ctx.ConfigDir)
		return nil
	}
	ctx.UI.Successf("Created: %s", strings.Join(created, ", "))
	return nil
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Out, ctx.ConfigDir)
	return err
}

// Run prints the config after env and flag overrides were applied.
func (c *ShowConfigCmd) Run(ctx *Context) error {
	if ctx.PlainText {
		_, err := fmt.Fprintf(ctx.Out, "api_url\t%s\nlisten_addr\t%s\ntimeout\t%d\n",
			ctx.Config.APIURL, ctx.Config.ListenAddr, ctx.Config.Timeout)
		return err
	}
	enc := json.NewEncoder(ctx.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(ctx.Config)
}
