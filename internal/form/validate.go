package form

import (
	"strings"

	"github.com/jimezsa/jobboard/internal/models"
)

// FieldError is the message shown next to a failing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors holds at most one message per field, in form order.
type Errors []FieldError

func (e Errors) OK() bool {
	return len(e) == 0
}

// Get returns the message for field, or "" when the field passed.
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e Errors) Map() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		out[fe.Field] = fe.Message
	}
	return out
}

// ValidationError blocks a submission.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate evaluates every rule against posting.
func Validate(posting models.JobPosting) Errors {
	return validateWith(Rules(), posting)
}

func validateWith(rules []Rule, posting models.JobPosting) Errors {
	var errs Errors
	failed := make(map[string]struct{}, len(models.Fields))
	for _, rule := range rules {
		if _, done := failed[rule.Field]; done {
			continue
		}
		value, _ := posting.Get(rule.Field)
		if rule.Check(value) {
			continue
		}
		failed[rule.Field] = struct{}{}
		errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
	}
	return errs
}
