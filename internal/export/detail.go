package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jimezsa/jobboard/internal/models"
)

// Styler decorates detail labels. *ui.UI satisfies it.
type Styler interface {
	Bold(text string) string
	Faint(text string) string
}

type plainStyler struct{}

func (plainStyler) Bold(text string) string  { return text }
func (plainStyler) Faint(text string) string { return text }

// WriteJob renders a single posting the way the job detail page lays it out.
func WriteJob(w io.Writer, job models.JobPosting, format Format, style Styler) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, job)
	case FormatCSV:
		return writeCSV(w, []models.JobPosting{job}, ',')
	case FormatTSV:
		return writeCSV(w, []models.JobPosting{job}, '\t')
	case FormatMarkdown:
		return writeMarkdownCard(w, job)
	}

	if style == nil {
		style = plainStyler{}
	}
	lines := []string{
		style.Bold(safe(job.JobTitle)),
		fmt.Sprintf("%s, %s", safe(job.CompanyName), safe(job.JobLocation)),
		style.Faint(safe(job.ContactInfo)),
		"",
		fmt.Sprintf("%s  %s: %s", job.StatusLabel(), style.Bold("Salary"), job.SalaryLabel()),
		fmt.Sprintf("%s: %s", style.Bold("Category"), job.CategoryLabel()),
		fmt.Sprintf("%s: %s", style.Bold("Logo"), safe(job.CompanyLogo)),
		"",
		PlainText(job.JobDescription),
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
