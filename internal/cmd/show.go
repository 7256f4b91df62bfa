package cmd

import (
	"github.com/jimezsa/jobboard/internal/export"
)

type ShowCmd struct {
	ID     string `arg:"" help:"Server id, or the # column from list output. A server id that equals a position wins."`
	Query  string `help:"Filter used when resolving a # position."`
	Format string `help:"Output format: text, json, csv, tsv, md." enum:",text,json,csv,tsv,md" default:""`
}

func (s *ShowCmd) Run(ctx *Context) error {
	engine, err := loadEngine(ctx)
	if err != nil {
		return err
	}
	engine.Filter(s.Query)

	job, err := engine.Lookup(s.ID)
	if err != nil {
		return err
	}

	format := export.FormatTable
	switch {
	case ctx.JSONOutput:
		format = export.FormatJSON
	case ctx.PlainText:
		format = export.FormatTSV
	case s.Format != "" && s.Format != "text":
		format, err = export.ParseFormat(s.Format)
		if err != nil {
			return err
		}
	}
	return export.WriteJob(ctx.Out, job, format, ctx.UI)
}
