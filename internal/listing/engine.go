package listing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jimezsa/jobboard/internal/models"
)

var (
	ErrNotLoaded   = errors.New("job postings not loaded")
	ErrJobNotFound = errors.New("job not found")
)

// Source reads the canonical collection. *api.Client satisfies it.
type Source interface {
	List(ctx context.Context) ([]models.JobPosting, error)
}

type State string

const (
	StateLoading   State = "loading"
	StateEmpty     State = "empty"
	StatePopulated State = "populated"
)

// Engine holds the canonical collection and the active view derived from it.
// An Engine belongs to a single caller and is not safe for concurrent use.
type Engine struct {
	source    Source
	canonical []models.JobPosting
	view      []models.JobPosting
	query     string
	loading   bool
}

func NewEngine(source Source) *Engine {
	return &Engine{source: source, loading: true}
}

// Load fetches the collection once and resets the view to all of it.
// A failed fetch leaves the engine untouched.
func (e *Engine) Load(ctx context.Context) error {
	if e.source == nil {
		return fmt.Errorf("load job postings: no source configured")
	}
	jobs, err := e.source.List(ctx)
	if err != nil {
		return fmt.Errorf("load job postings: %w", err)
	}
	e.canonical = append([]models.JobPosting(nil), jobs...)
	e.view = Filter(e.canonical, "")
	e.query = ""
	e.loading = false
	return nil
}

// Filter recomputes the active view from the canonical collection.
func (e *Engine) Filter(query string) {
	e.query = query
	e.view = Filter(e.canonical, query)
}

func (e *Engine) Query() string {
	return e.query
}

func (e *Engine) Loading() bool {
	return e.loading
}

func (e *Engine) State() State {
	switch {
	case e.loading:
		return StateLoading
	case len(e.view) == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}

// View returns a copy of the active view.
func (e *Engine) View() []models.JobPosting {
	return append([]models.JobPosting{}, e.view...)
}

// All returns a copy of the canonical collection.
func (e *Engine) All() []models.JobPosting {
	return append([]models.JobPosting{}, e.canonical...)
}

// Lookup finds a posting by server id in the canonical collection, or by
// 1-based position in the active view when id is a number. Server ids are
// matched first, so a numeric id shadows the position with the same number.
func (e *Engine) Lookup(id string) (models.JobPosting, error) {
	if e.loading {
		return models.JobPosting{}, ErrNotLoaded
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return models.JobPosting{}, fmt.Errorf("job id is required")
	}
	for _, job := range e.canonical {
		if job.ID != "" && job.ID == id {
			return job, nil
		}
	}
	if pos, err := strconv.Atoi(id); err == nil && pos >= 1 && pos <= len(e.view) {
		return e.view[pos-1], nil
	}
	return models.JobPosting{}, fmt.Errorf("job %q: %w", id, ErrJobNotFound)
}
