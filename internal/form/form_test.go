package form

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jimezsa/jobboard/internal/models"
)

type fakeSink struct {
	calls []models.JobPosting
	err   error
}

func (s *fakeSink) Create(_ context.Context, posting models.JobPosting) error {
	s.calls = append(s.calls, posting)
	return s.err
}

func validPosting() models.JobPosting {
	return models.JobPosting{
		JobTitle:       "Frontend Developer",
		JobCategory:    "frontend",
		CompanyName:    "Cyberdude Networks Pvt Ltd",
		JobLocation:    "Chennai",
		CompanyLogo:    "https://example.com/logo.png",
		JobSalary:      "0-3",
		IsJobAvailable: "true",
		ContactInfo:    "careers@example.com",
		JobDescription: strings.Repeat("a", 150),
	}
}

func TestValidateAcceptsValidPosting(t *testing.T) {
	if errs := Validate(validPosting()); !errs.OK() {
		t.Fatalf("Validate() = %+v, want no errors", errs)
	}
}

func TestValidateDescriptionBounds(t *testing.T) {
	cases := []struct {
		length int
		ok     bool
		msg    string
	}{
		{0, false, "Job Description must contain at least 100 characters"},
		{99, false, "Job Description must contain at least 100 characters"},
		{100, true, ""},
		{500, true, ""},
		{501, false, "Job Description must contain at most 500 characters"},
	}

	for _, tc := range cases {
		posting := validPosting()
		posting.JobDescription = strings.Repeat("d", tc.length)
		errs := Validate(posting)
		if errs.OK() != tc.ok {
			t.Fatalf("length %d: OK() = %v, want %v (%+v)", tc.length, errs.OK(), tc.ok, errs)
		}
		if got := errs.Get(models.FieldJobDescription); got != tc.msg {
			t.Fatalf("length %d: message = %q, want %q", tc.length, got, tc.msg)
		}
		if !tc.ok && len(errs) != 1 {
			t.Fatalf("length %d: expected only the description to fail, got %+v", tc.length, errs)
		}
	}
}

func TestValidateCountsCharactersNotBytes(t *testing.T) {
	posting := validPosting()
	posting.JobDescription = strings.Repeat("é", 100)
	if errs := Validate(posting); !errs.OK() {
		t.Fatalf("100 two-byte characters should pass, got %+v", errs)
	}
}

func TestValidateContactInfo(t *testing.T) {
	cases := []struct {
		value string
		msg   string
	}{
		{"", "Email is required"},
		{"careers.example.com", "Contact must be a valid email"},
		{"careers@", "Contact must be a valid email"},
	}
	for _, tc := range cases {
		posting := validPosting()
		posting.ContactInfo = tc.value
		errs := Validate(posting)
		if len(errs) != 1 || errs.Get(models.FieldContactInfo) != tc.msg {
			t.Fatalf("contactInfo %q: errors = %+v, want only %q", tc.value, errs, tc.msg)
		}
	}
}

func TestValidateReportsEveryFailingFieldOnce(t *testing.T) {
	errs := Validate(models.JobPosting{})
	if len(errs) != len(models.Fields) {
		t.Fatalf("expected %d field errors, got %d: %+v", len(models.Fields), len(errs), errs)
	}
	for i, field := range models.Fields {
		if errs[i].Field != field {
			t.Fatalf("errors[%d].Field = %q, want %q", i, errs[i].Field, field)
		}
	}
	if errs.Get(models.FieldJobCategory) != "Select Job Category" {
		t.Fatalf("unexpected category message: %q", errs.Get(models.FieldJobCategory))
	}
	if errs.Get(models.FieldCompanyLogo) != "This field is required" {
		t.Fatalf("required rule must win over url rule, got %q", errs.Get(models.FieldCompanyLogo))
	}
}

func TestValidateFixedSets(t *testing.T) {
	cases := []struct {
		field string
		value string
	}{
		{models.FieldJobCategory, "astronaut"},
		{models.FieldJobSalary, "1000"},
		{models.FieldIsJobAvailable, "yes"},
		{models.FieldCompanyLogo, "logo.png"},
	}
	for _, tc := range cases {
		posting := validPosting()
		posting.Set(tc.field, tc.value)
		errs := Validate(posting)
		if len(errs) != 1 || errs[0].Field != tc.field {
			t.Fatalf("%s=%q: errors = %+v, want one error on that field", tc.field, tc.value, errs)
		}
	}

	for _, opt := range models.SalaryBands {
		posting := validPosting()
		posting.JobSalary = opt.Value
		if errs := Validate(posting); !errs.OK() {
			t.Fatalf("salary %q should pass, got %+v", opt.Value, errs)
		}
	}
	for _, opt := range models.Categories {
		posting := validPosting()
		posting.JobCategory = opt.Value
		if errs := Validate(posting); !errs.OK() {
			t.Fatalf("category %q should pass, got %+v", opt.Value, errs)
		}
	}
}

func TestSubmitSendsExactlyOnceAndResets(t *testing.T) {
	sink := &fakeSink{}
	f := New(sink)
	f.Values = validPosting()

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(sink.calls) != 1 {
		t.Fatalf("sink calls = %d, want 1", len(sink.calls))
	}
	if !reflect.DeepEqual(sink.calls[0], validPosting()) {
		t.Fatalf("sent %+v, want %+v", sink.calls[0], validPosting())
	}
	if f.Values != (models.JobPosting{}) || f.Errors != nil {
		t.Fatalf("form not reset after submit: %+v", f)
	}
}

func TestSubmitResetsEvenWhenSendFails(t *testing.T) {
	boom := errors.New("backend down")
	sink := &fakeSink{err: boom}
	f := New(sink)
	f.Values = validPosting()

	err := f.Submit(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Submit() error = %v, want wrapped %v", err, boom)
	}
	if len(sink.calls) != 1 {
		t.Fatalf("sink calls = %d, want 1", len(sink.calls))
	}
	if f.Values != (models.JobPosting{}) {
		t.Fatalf("form not reset after failed send")
	}
}

func TestSubmitBlocksInvalidValues(t *testing.T) {
	sink := &fakeSink{}
	f := New(sink)
	f.Values = validPosting()
	f.Values.ContactInfo = "not-an-email"

	err := f.Submit(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Submit() error = %v, want *ValidationError", err)
	}
	if verr.Errors.Get(models.FieldContactInfo) == "" {
		t.Fatalf("expected contactInfo message, got %+v", verr.Errors)
	}
	if !strings.Contains(err.Error(), "contactInfo") {
		t.Fatalf("Error() = %q, want field name", err.Error())
	}
	if len(sink.calls) != 0 {
		t.Fatalf("invalid form must not reach the sink")
	}
	if f.Values.ContactInfo != "not-an-email" {
		t.Fatalf("values must be kept after a validation failure")
	}
	if f.Errors.OK() {
		t.Fatalf("form errors must be recorded")
	}
}

func TestSubmitWithoutSink(t *testing.T) {
	f := New(nil)
	f.Values = validPosting()
	if err := f.Submit(context.Background()); err == nil {
		t.Fatalf("Submit() error = nil, want error")
	}
}

func TestSetAndFill(t *testing.T) {
	f := New(nil)
	if err := f.Set(models.FieldJobTitle, "SRE"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := f.Set("salary", "10"); err == nil {
		t.Fatalf("Set(unknown) error = nil, want error")
	}
	f.Fill(map[string]string{
		models.FieldJobLocation: "Pune",
		"csrf":                  "ignored",
	})
	if f.Values.JobTitle != "SRE" || f.Values.JobLocation != "Pune" {
		t.Fatalf("unexpected values: %+v", f.Values)
	}

	values := map[string]string{}
	for _, field := range models.Fields {
		v, _ := validPosting().Get(field)
		values[field] = v
	}
	if got := FromValues(values); got != validPosting() {
		t.Fatalf("FromValues() = %+v, want %+v", got, validPosting())
	}
}
