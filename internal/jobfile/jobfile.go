// Package jobfile reads and writes single job postings kept in local files.
package jobfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// ReadPosting reads an object with the posting's wire field names. The file
// is JSON with comments, unquoted keys and trailing commas allowed; strings
// must be double-quoted. Keys that are not posting fields are rejected.
func ReadPosting(path string) (models.JobPosting, error) {
	if strings.TrimSpace(path) == "" {
		return models.JobPosting{}, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.JobPosting{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.JobPosting{}, fmt.Errorf("%s: file is empty", path)
	}

	var raw map[string]any
	if err := json5.Unmarshal(data, &raw); err != nil {
		return models.JobPosting{}, fmt.Errorf("%s: %w", path, err)
	}

	var posting models.JobPosting
	for key, value := range raw {
		text, err := stringValue(value)
		if err != nil {
			return models.JobPosting{}, fmt.Errorf("%s: field %q: %w", path, key, err)
		}
		if key == "_id" {
			posting.ID = text
			continue
		}
		if !posting.Set(key, text) {
			return models.JobPosting{}, fmt.Errorf("%s: unknown field %q", path, key)
		}
	}
	return posting, nil
}

// stringValue also accepts a bare boolean, the usual way isJobAvailable is
// written by hand.
func stringValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case nil:
		return "", nil
	default:
		return "", errors.New("must be a string")
	}
}

// WriteTemplate writes a posting skeleton with every field present.
// It refuses to overwrite an existing file.
func WriteTemplate(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	skeleton := models.JobPosting{
		JobCategory:    models.Categories[0].Value,
		JobSalary:      models.SalaryBands[0].Value,
		IsJobAvailable: "true",
	}
	data, err := json.MarshalIndent(skeleton, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
