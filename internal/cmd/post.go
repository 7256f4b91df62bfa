package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jimezsa/jobboard/internal/form"
	"github.com/jimezsa/jobboard/internal/jobfile"
	"github.com/jimezsa/jobboard/internal/models"
)

type PostCmd struct {
	File     string   `short:"f" help:"JSON file with the posting fields; comments and unquoted keys allowed, strings double-quoted." type:"existingfile"`
	Set      []string `help:"Set a field as field=value; repeatable, applied after --file." placeholder:"FIELD=VALUE" sep:"none"`
	DryRun   bool     `help:"Validate only; nothing is sent."`
	Template string   `help:"Write an empty posting file to this path and exit."`
}

func (p *PostCmd) Run(ctx *Context) error {
	if p.Template != "" {
		if err := jobfile.WriteTemplate(p.Template); err != nil {
			return err
		}
		ctx.UI.Successf("Wrote %s", p.Template)
		return nil
	}

	posting, err := p.posting()
	if err != nil {
		return err
	}

	var sink form.Sink
	if !p.DryRun {
		backend, err := ctx.backend()
		if err != nil {
			return err
		}
		sink = backend
	}
	f := form.New(sink)
	f.Values = posting

	if p.DryRun {
		if errs := f.Validate(); !errs.OK() {
			return reportValidation(ctx, errs)
		}
		if ctx.JSONOutput {
			return writeJSONValue(ctx, f.Values)
		}
		ctx.UI.Successf("Posting is valid; nothing was sent.")
		return nil
	}

	title := posting.JobTitle
	err = f.Submit(ctx.context())
	var validationErr *form.ValidationError
	if errors.As(err, &validationErr) {
		return reportValidation(ctx, validationErr.Errors)
	}
	if err != nil {
		return err
	}

	ctx.Logger.Debug().Str("title", title).Msg("job posted")
	if ctx.JSONOutput {
		return writeJSONValue(ctx, map[string]any{"posted": true, "jobTitle": title})
	}
	ctx.UI.Successf("Posted %q", title)
	return nil
}

// posting merges the --file contents with the --set overrides.
func (p *PostCmd) posting() (models.JobPosting, error) {
	var posting models.JobPosting
	if p.File != "" {
		var err error
		posting, err = jobfile.ReadPosting(p.File)
		if err != nil {
			return posting, err
		}
	}

	values, err := parseSetFlags(p.Set)
	if err != nil {
		return posting, err
	}
	return form.Merge(posting, values), nil
}

func parseSetFlags(flags []string) (map[string]string, error) {
	values := make(map[string]string, len(flags))
	for _, flag := range flags {
		field, value, ok := strings.Cut(flag, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --set %q: expected field=value", flag)
		}
		if _, known := (models.JobPosting{}).Get(field); !known {
			return nil, fmt.Errorf("invalid --set %q: unknown field %q (fields: %s)", flag, field, strings.Join(models.Fields, ", "))
		}
		values[field] = value
	}
	return values, nil
}

// reportValidation prints one line per failing field and returns a short
// error for the exit status.
func reportValidation(ctx *Context, errs form.Errors) error {
	if ctx.JSONOutput {
		if err := writeJSONValue(ctx, map[string]any{"posted": false, "errors": errs}); err != nil {
			return err
		}
	} else {
		ctx.UI.Warnf("The posting has %d invalid field(s):", len(errs))
		for _, fe := range errs {
			ctx.UI.FieldError(fe.Field, fe.Message)
		}
	}
	return fmt.Errorf("job not posted: validation failed")
}

func writeJSONValue(ctx *Context, value any) error {
	enc := json.NewEncoder(ctx.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
