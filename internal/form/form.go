package form

import (
	"context"
	"fmt"

	"github.com/jimezsa/jobboard/internal/models"
)

// Sink receives validated postings. *api.Client satisfies it.
type Sink interface {
	Create(ctx context.Context, posting models.JobPosting) error
}

// Form gathers posting values and submits them once they validate.
// A Form belongs to a single caller and is not safe for concurrent use.
type Form struct {
	sink   Sink
	Values models.JobPosting
	Errors Errors
}

func New(sink Sink) *Form {
	return &Form{sink: sink}
}

// Set assigns a field by its wire name.
func (f *Form) Set(field, value string) error {
	if !f.Values.Set(field, value) {
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// Fill assigns every known field present in values; other keys are ignored.
func (f *Form) Fill(values map[string]string) {
	f.Values = Merge(f.Values, values)
}

// Validate records and returns the messages for the current values.
func (f *Form) Validate() Errors {
	f.Errors = Validate(f.Values)
	return f.Errors
}

// Submit validates the values and, when they pass, sends them through the
// sink exactly once. The form is cleared after the send returns, whether or
// not it succeeded. A validation failure returns *ValidationError and leaves
// the values in place.
func (f *Form) Submit(ctx context.Context) error {
	if errs := f.Validate(); !errs.OK() {
		return &ValidationError{Errors: errs}
	}
	if f.sink == nil {
		return fmt.Errorf("submit job: no sink configured")
	}

	err := f.sink.Create(ctx, f.Values)
	f.Reset()
	if err != nil {
		return fmt.Errorf("submit job: %w", err)
	}
	return nil
}

func (f *Form) Reset() {
	f.Values = models.JobPosting{}
	f.Errors = nil
}

// Merge returns posting with every known field in values applied.
func Merge(posting models.JobPosting, values map[string]string) models.JobPosting {
	for _, field := range models.Fields {
		if value, ok := values[field]; ok {
			posting.Set(field, value)
		}
	}
	return posting
}

// FromValues builds a posting from a flat field-to-value mapping.
func FromValues(values map[string]string) models.JobPosting {
	return Merge(models.JobPosting{}, values)
}
