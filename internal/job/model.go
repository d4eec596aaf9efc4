package job

import (
	"time"
)

const (
	EmploymentTypeFullTime = "full-time"
	EmploymentTypePartTime = "part-time"
	EmploymentTypeContract = "contract"

	WorkPolicyRemote = "remote"
	WorkPolicyHybrid = "hybrid"
	WorkPolicyOnsite = "onsite"

	ExperienceJunior = "junior"
	ExperienceMid    = "mid-level"
	ExperienceSenior = "senior"

	DefaultPostedDate = "Just now"
)

var ValidEmploymentTypes = map[string]struct{}{
	EmploymentTypeFullTime: {},
	EmploymentTypePartTime: {},
	EmploymentTypeContract: {},
}

var ValidWorkPolicies = map[string]struct{}{
	WorkPolicyRemote: {},
	WorkPolicyHybrid: {},
	WorkPolicyOnsite: {},
}

var ValidExperienceLevels = map[string]struct{}{
	ExperienceJunior: {},
	ExperienceMid:    {},
	ExperienceSenior: {},
}

type Job struct {
	ID             int
	CompanyID      int
	Title          string
	Description    *string
	Location       string
	WorkPolicy     string
	Department     *string
	EmploymentType string
	Experience     *string
	SalaryRange    *string
	PostedDate     string
	CreatedAt      time.Time
	TimeAgo        string
}

type JobRq struct {
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	Location       string  `json:"location"`
	WorkPolicy     string  `json:"work_policy"`
	Department     *string `json:"department,omitempty"`
	EmploymentType string  `json:"employment_type"`
	JobType        string  `json:"job_type,omitempty"` // legacy alias of employment_type
	Experience     *string `json:"experience,omitempty"`
	SalaryRange    *string `json:"salary_range,omitempty"`
	PostedDate     string  `json:"posted_date,omitempty"`
}

// JobRqUpdate is a partial update: nil fields are left unchanged.
type JobRqUpdate struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Location       *string `json:"location,omitempty"`
	WorkPolicy     *string `json:"work_policy,omitempty"`
	Department     *string `json:"department,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	JobType        *string `json:"job_type,omitempty"` // legacy alias of employment_type
	Experience     *string `json:"experience,omitempty"`
	SalaryRange    *string `json:"salary_range,omitempty"`
	PostedDate     *string `json:"posted_date,omitempty"`
}

// NormalizeEmploymentType resolves the legacy job_type alias into the canonical
// employment_type at the write boundary. The legacy vocabulary had an extra
// "internship" value which folds into full-time.
func NormalizeEmploymentType(employmentType, jobType string) string {
	if employmentType != "" {
		return employmentType
	}
	switch jobType {
	case EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContract:
		return jobType
	case "internship":
		return EmploymentTypeFullTime
	case "":
		return ""
	}
	return EmploymentTypeFullTime
}
