package job

import (
	"net/url"
	"strings"
)

// Filters is an immutable filter-criteria value rebuilt from scratch for every
// query. A zero-value field means "no constraint".
type Filters struct {
	Location       string
	EmploymentType string
	WorkPolicy     string
	Experience     string
	Department     string
	Search         string
}

func (f Filters) IsZero() bool {
	return f == Filters{}
}

// Alias spellings accepted on the public query string. Values are the closed
// vocabulary the records are stored with; anything else passes through as-is
// and simply matches nothing.
var employmentTypeAliases = map[string]string{
	"fulltime":  EmploymentTypeFullTime,
	"full time": EmploymentTypeFullTime,
	"parttime":  EmploymentTypePartTime,
	"part time": EmploymentTypePartTime,
}

var workPolicyAliases = map[string]string{
	"on-site": WorkPolicyOnsite,
	"on site": WorkPolicyOnsite,
	"office":  WorkPolicyOnsite,
}

var experienceAliases = map[string]string{
	"mid":       ExperienceMid,
	"midlevel":  ExperienceMid,
	"mid level": ExperienceMid,
}

// ParseFiltersFromQuery builds the filter set from the public careers page
// query string. Empty and whitespace-only values are stripped here, at the
// boundary, so they never reach the query builder.
func ParseFiltersFromQuery(query url.Values) Filters {
	employmentType := normalizeEnum(query.Get("employment_type"), employmentTypeAliases)
	if employmentType == "" {
		// legacy clients still send job_type
		employmentType = normalizeEnum(query.Get("job_type"), employmentTypeAliases)
	}

	return Filters{
		Location:       strings.TrimSpace(query.Get("location")),
		EmploymentType: employmentType,
		WorkPolicy:     normalizeEnum(query.Get("work_policy"), workPolicyAliases),
		Experience:     normalizeEnum(query.Get("experience"), experienceAliases),
		Department:     strings.TrimSpace(query.Get("department")),
		Search:         strings.TrimSpace(query.Get("search")),
	}
}

// Canonical spellings for write-side validation, shared with the filter
// parsing above so recruiters and the public page accept the same vocabulary.

func CanonicalEmploymentType(raw string) string {
	return normalizeEnum(raw, employmentTypeAliases)
}

func CanonicalWorkPolicy(raw string) string {
	return normalizeEnum(raw, workPolicyAliases)
}

func CanonicalExperience(raw string) string {
	return normalizeEnum(raw, experienceAliases)
}

func normalizeEnum(raw string, aliases map[string]string) string {
	val := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := aliases[val]; ok {
		return canonical
	}
	return val
}
