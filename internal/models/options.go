package models

import "strings"

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

var Categories = []Option{
	{Value: "frontend", Label: "Frontend Developer"},
	{Value: "backend", Label: "Backend Developer"},
	{Value: "fullstack", Label: "Full Stack Developer"},
	{Value: "mobile", Label: "Mobile Developer"},
	{Value: "devops", Label: "DevOps Engineer"},
	{Value: "data", Label: "Data Engineer"},
	{Value: "design", Label: "UI/UX Designer"},
	{Value: "testing", Label: "QA / Testing"},
}

// Salary bands in lakhs per annum.
var SalaryBands = []Option{
	{Value: "0-3", Label: "0 - 3 LPA"},
	{Value: "3-6", Label: "3 - 6 LPA"},
	{Value: "6-10", Label: "6 - 10 LPA"},
	{Value: "10-15", Label: "10 - 15 LPA"},
	{Value: "15-25", Label: "15 - 25 LPA"},
	{Value: "25+", Label: "25+ LPA"},
}

var RecruitingStatuses = []Option{
	{Value: "true", Label: "Actively recruiting"},
	{Value: "false", Label: "Closed"},
}

// OptionValues returns the values of opts joined by spaces.
func OptionValues(opts []Option) string {
	values := make([]string, 0, len(opts))
	for _, opt := range opts {
		values = append(values, opt.Value)
	}
	return strings.Join(values, " ")
}

// LabelFor returns the label for value, falling back to value itself.
func LabelFor(opts []Option, value string) string {
	for _, opt := range opts {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

func (j JobPosting) CategoryLabel() string {
	return LabelFor(Categories, j.JobCategory)
}

func (j JobPosting) SalaryLabel() string {
	return LabelFor(SalaryBands, j.JobSalary)
}

func (j JobPosting) StatusLabel() string {
	return LabelFor(RecruitingStatuses, j.IsJobAvailable)
}
