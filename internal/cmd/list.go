package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jimezsa/jobboard/internal/export"
	"github.com/jimezsa/jobboard/internal/listing"
	"github.com/muesli/termenv"
)

type ListCmd struct {
	Query  string `arg:"" optional:"" help:"Keep postings whose title or location contains this text."`
	Format string `help:"Output format: table, csv, tsv, json, md." enum:",table,csv,tsv,json,md" default:""`
	Output string `name:"output" short:"o" help:"Write output to a file."`
}

func (l *ListCmd) Run(ctx *Context) error {
	engine, err := loadEngine(ctx)
	if err != nil {
		return err
	}
	engine.Filter(l.Query)
	view := engine.View()

	format, err := resolveFormat(ctx, l.Format, l.Output)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if l.Output != "" {
		file, err := os.Create(l.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	if engine.State() == listing.StateEmpty && format == export.FormatTable && l.Output == "" {
		ctx.UI.Infof("No Jobs posted yet.")
	} else {
		colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
		if err := export.WriteJobs(writer, view, format, export.WriteOptions{
			ColorEnabled: colorEnabled,
			Hyperlinks:   colorEnabled && isTTY(writer),
		}); err != nil {
			return err
		}
	}

	printListSummary(ctx, len(view), len(engine.All()), engine.Query())
	return nil
}

// loadEngine fetches the collection once, showing a spinner on interactive
// terminals while the engine is in its loading state.
func loadEngine(ctx *Context) (*listing.Engine, error) {
	backend, err := ctx.backend()
	if err != nil {
		return nil, err
	}
	engine := listing.NewEngine(backend)

	stop := startLoadingIndicator(ctx)
	err = engine.Load(ctx.context())
	if stop != nil {
		stop()
	}
	if err != nil {
		return nil, err
	}
	ctx.Logger.Debug().Int("count", len(engine.All())).Msg("loaded job postings")
	return engine, nil
}

func printListSummary(ctx *Context, shown, total int, query string) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	_, _ = fmt.Fprintln(ctx.Err, formatListSummary(shown, total, query))
}

func formatListSummary(shown, total int, query string) string {
	if query == "" {
		return fmt.Sprintf("summary: jobs=%d", total)
	}
	return fmt.Sprintf("summary: jobs=%d of %d query=%q", shown, total, query)
}

func resolveFormat(ctx *Context, flagValue string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if flagValue != "" {
		return export.ParseFormat(flagValue)
	}
	if outputPath != "" {
		return formatForPath(outputPath), nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func formatForPath(path string) export.Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return export.FormatJSON
	case strings.HasSuffix(lower, ".md"):
		return export.FormatMarkdown
	case strings.HasSuffix(lower, ".tsv"):
		return export.FormatTSV
	default:
		return export.FormatCSV
	}
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func startLoadingIndicator(ctx *Context) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(150 * time.Millisecond)
		defer ticker.Stop()

		for index := 0; ; index++ {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				fmt.Fprintf(ctx.Err, "\r\033[2KLoading... %s", frames[index%len(frames)])
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
