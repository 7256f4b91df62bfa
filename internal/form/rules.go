package form

import (
	"github.com/go-playground/validator/v10"
	"github.com/jimezsa/jobboard/internal/models"
)

// Rule is one declarative constraint on a posting field. Tag is a
// go-playground/validator expression evaluated against the field value.
type Rule struct {
	Field   string
	Tag     string
	Message string
}

var validate = validator.New()

// Check reports whether value satisfies the rule.
func (r Rule) Check(value string) bool {
	return validate.Var(value, r.Tag) == nil
}

// Rules returns the posting constraints in form order. Within a field the
// first failing rule decides the message.
func Rules() []Rule {
	return []Rule{
		{Field: models.FieldJobTitle, Tag: "required", Message: "Job Title is required"},

		{Field: models.FieldJobCategory, Tag: "required", Message: "Select Job Category"},
		{Field: models.FieldJobCategory, Tag: "oneof=" + models.OptionValues(models.Categories), Message: "Select Job Category"},

		{Field: models.FieldCompanyName, Tag: "required", Message: "Company Name is required"},

		{Field: models.FieldJobLocation, Tag: "required", Message: "Job Location is required"},

		{Field: models.FieldCompanyLogo, Tag: "required", Message: "This field is required"},
		{Field: models.FieldCompanyLogo, Tag: "url", Message: "Company Logo must be an image link"},

		{Field: models.FieldJobSalary, Tag: "required", Message: "This field is required"},
		{Field: models.FieldJobSalary, Tag: "oneof=" + models.OptionValues(models.SalaryBands), Message: "Select a salary range"},

		{Field: models.FieldIsJobAvailable, Tag: "required", Message: "This field is required"},
		{Field: models.FieldIsJobAvailable, Tag: "oneof=true false", Message: "Select a recruiting status"},

		{Field: models.FieldContactInfo, Tag: "required", Message: "Email is required"},
		{Field: models.FieldContactInfo, Tag: "email", Message: "Contact must be a valid email"},

		{Field: models.FieldJobDescription, Tag: "min=100", Message: "Job Description must contain at least 100 characters"},
		{Field: models.FieldJobDescription, Tag: "max=500", Message: "Job Description must contain at most 500 characters"},
	}
}
