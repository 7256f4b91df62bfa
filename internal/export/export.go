package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
}

const linkColor = "#87CEEB"

// ParseFormat maps a --format value to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

// WriteJobs renders jobs in collection order.
func WriteJobs(w io.Writer, jobs []models.JobPosting, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, jobs)
	case FormatCSV:
		return writeCSV(w, jobs, ',')
	case FormatTSV:
		return writeCSV(w, jobs, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, jobs)
	default:
		return writeTable(w, jobs, opts)
	}
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeCSV(w io.Writer, jobs []models.JobPosting, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := writer.Write(csvRow(job)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, jobs []models.JobPosting, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
	output := termenv.NewOutput(w)
	for i, job := range jobs {
		fmt.Fprintln(tw, strings.Join(tableRow(i+1, job, output, opts), "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, jobs []models.JobPosting) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, "No Jobs posted yet.")
		return err
	}
	for _, job := range jobs {
		if err := writeMarkdownCard(w, job); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownCard(w io.Writer, job models.JobPosting) error {
	logoLine := "  Logo: -"
	if logo := safe(job.CompanyLogo); logo != "" {
		logoLine = fmt.Sprintf("  Logo: [%s](<%s>)", safe(job.CompanyName), logo)
	}
	lines := []string{
		fmt.Sprintf("- **%s** (%s)", safe(job.JobTitle), safe(job.CompanyName)),
		fmt.Sprintf("  Location: %s", safe(job.JobLocation)),
		fmt.Sprintf("  Category: %s", job.CategoryLabel()),
		fmt.Sprintf("  Salary: %s", job.SalaryLabel()),
		fmt.Sprintf("  Status: %s", job.StatusLabel()),
		fmt.Sprintf("  Contact: %s", safe(job.ContactInfo)),
		logoLine,
	}
	if summary := Snippet(job.JobDescription, 160); summary != "" {
		lines = append(lines, fmt.Sprintf("  Summary: %s", summary))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func csvHeader() []string {
	return append([]string{"id"}, models.Fields...)
}

func csvRow(job models.JobPosting) []string {
	row := []string{job.ID}
	for _, field := range models.Fields {
		value, _ := job.Get(field)
		row = append(row, value)
	}
	return row
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func tableHeader() []string {
	return []string{
		"#",
		"title",
		"company",
		"location",
		"salary",
		"status",
		"logo",
	}
}

func tableRow(pos int, job models.JobPosting, output *termenv.Output, opts WriteOptions) []string {
	logo := safe(job.CompanyLogo)
	displayLogo := "-"
	if logo != "" {
		displayLogo = logo
		if opts.Hyperlinks {
			displayLogo = shortURLLabel(logo)
		}
		if opts.ColorEnabled {
			displayLogo = output.String(displayLogo).Foreground(output.Color(linkColor)).String()
		}
		if opts.Hyperlinks {
			displayLogo = hyperlink(logo, displayLogo)
		}
	}
	return []string{
		strconv.Itoa(pos),
		safe(job.JobTitle),
		safe(job.CompanyName),
		safe(job.JobLocation),
		job.SalaryLabel(),
		job.StatusLabel(),
		displayLogo,
	}
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 40
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
