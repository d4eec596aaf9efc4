package job

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  Filters
	}{
		{
			name:  "empty query yields zero filters",
			query: url.Values{},
			want:  Filters{},
		},
		{
			name: "whitespace only values are stripped",
			query: url.Values{
				"location":   {"   "},
				"department": {"\t"},
				"search":     {""},
			},
			want: Filters{},
		},
		{
			name: "values are trimmed",
			query: url.Values{
				"location": {"  Bangalore  "},
				"search":   {" platform "},
			},
			want: Filters{Location: "Bangalore", Search: "platform"},
		},
		{
			name:  "employment type alias fulltime",
			query: url.Values{"employment_type": {"FullTime"}},
			want:  Filters{EmploymentType: "full-time"},
		},
		{
			name:  "employment type alias with space",
			query: url.Values{"employment_type": {"part time"}},
			want:  Filters{EmploymentType: "part-time"},
		},
		{
			name:  "legacy job_type param maps onto employment type",
			query: url.Values{"job_type": {"fulltime"}},
			want:  Filters{EmploymentType: "full-time"},
		},
		{
			name: "employment_type wins over legacy job_type",
			query: url.Values{
				"employment_type": {"contract"},
				"job_type":        {"fulltime"},
			},
			want: Filters{EmploymentType: "contract"},
		},
		{
			name:  "work policy alias office",
			query: url.Values{"work_policy": {"Office"}},
			want:  Filters{WorkPolicy: "onsite"},
		},
		{
			name:  "work policy alias on-site",
			query: url.Values{"work_policy": {"on-site"}},
			want:  Filters{WorkPolicy: "onsite"},
		},
		{
			name:  "experience alias mid",
			query: url.Values{"experience": {"Mid"}},
			want:  Filters{Experience: "mid-level"},
		},
		{
			name:  "unknown enum spelling passes through lowercased",
			query: url.Values{"employment_type": {"Freelance"}},
			want:  Filters{EmploymentType: "freelance"},
		},
		{
			name: "all filters together",
			query: url.Values{
				"location":        {"Remote, EU"},
				"employment_type": {"full time"},
				"work_policy":     {"remote"},
				"experience":      {"senior"},
				"department":      {"Engineering"},
				"search":          {"golang"},
			},
			want: Filters{
				Location:       "Remote, EU",
				EmploymentType: "full-time",
				WorkPolicy:     "remote",
				Experience:     "senior",
				Department:     "Engineering",
				Search:         "golang",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseFiltersFromQuery(tc.query))
		})
	}
}

func TestFiltersIsZero(t *testing.T) {
	assert.True(t, Filters{}.IsZero())
	assert.False(t, Filters{Search: "go"}.IsZero())
}

func TestNormalizeEmploymentType(t *testing.T) {
	tests := []struct {
		name           string
		employmentType string
		jobType        string
		want           string
	}{
		{"employment type wins when present", "part-time", "contract", "part-time"},
		{"canonical job type carried over", "", "contract", "contract"},
		{"legacy internship folds into full-time", "", "internship", "full-time"},
		{"both empty stays empty", "", "", ""},
		{"unknown legacy value defaults to full-time", "", "freelance", "full-time"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeEmploymentType(tc.employmentType, tc.jobType))
		})
	}
}

func TestCanonicalSpellings(t *testing.T) {
	assert.Equal(t, EmploymentTypeFullTime, CanonicalEmploymentType("Full Time"))
	assert.Equal(t, WorkPolicyOnsite, CanonicalWorkPolicy("ON SITE"))
	assert.Equal(t, ExperienceMid, CanonicalExperience("midlevel"))
	assert.Equal(t, "junior", CanonicalExperience("Junior"))
}
