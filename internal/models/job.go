package models

// JobPosting is a job record as stored by the backend.
type JobPosting struct {
	ID             string `json:"_id,omitempty"`
	JobTitle       string `json:"jobTitle"`
	JobCategory    string `json:"jobCategory"`
	CompanyName    string `json:"companyName"`
	JobLocation    string `json:"jobLocation"`
	CompanyLogo    string `json:"companyLogo"`
	JobSalary      string `json:"jobSalary"`
	IsJobAvailable string `json:"isJobAvailable"`
	ContactInfo    string `json:"contactInfo"`
	JobDescription string `json:"jobDescription"`
}

// Recruiting reports whether the posting is marked as actively recruiting.
func (j JobPosting) Recruiting() bool {
	return j.IsJobAvailable == "true"
}

// Field names as they appear on the wire and in form submissions.
const (
	FieldJobTitle       = "jobTitle"
	FieldJobCategory    = "jobCategory"
	FieldCompanyName    = "companyName"
	FieldJobLocation    = "jobLocation"
	FieldCompanyLogo    = "companyLogo"
	FieldJobSalary      = "jobSalary"
	FieldIsJobAvailable = "isJobAvailable"
	FieldContactInfo    = "contactInfo"
	FieldJobDescription = "jobDescription"
)

// Fields lists the posting fields in form order.
var Fields = []string{
	FieldJobTitle,
	FieldJobCategory,
	FieldCompanyName,
	FieldJobLocation,
	FieldCompanyLogo,
	FieldJobSalary,
	FieldIsJobAvailable,
	FieldContactInfo,
	FieldJobDescription,
}

// Get returns the value of the named field, or false for unknown names.
func (j JobPosting) Get(field string) (string, bool) {
	switch field {
	case FieldJobTitle:
		return j.JobTitle, true
	case FieldJobCategory:
		return j.JobCategory, true
	case FieldCompanyName:
		return j.CompanyName, true
	case FieldJobLocation:
		return j.JobLocation, true
	case FieldCompanyLogo:
		return j.CompanyLogo, true
	case FieldJobSalary:
		return j.JobSalary, true
	case FieldIsJobAvailable:
		return j.IsJobAvailable, true
	case FieldContactInfo:
		return j.ContactInfo, true
	case FieldJobDescription:
		return j.JobDescription, true
	default:
		return "", false
	}
}

// Set assigns the named field. It reports false for unknown names.
func (j *JobPosting) Set(field, value string) bool {
	switch field {
	case FieldJobTitle:
		j.JobTitle = value
	case FieldJobCategory:
		j.JobCategory = value
	case FieldCompanyName:
		j.CompanyName = value
	case FieldJobLocation:
		j.JobLocation = value
	case FieldCompanyLogo:
		j.CompanyLogo = value
	case FieldJobSalary:
		j.JobSalary = value
	case FieldIsJobAvailable:
		j.IsJobAvailable = value
	case FieldContactInfo:
		j.ContactInfo = value
	case FieldJobDescription:
		j.JobDescription = value
	default:
		return false
	}
	return true
}
