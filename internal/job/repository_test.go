package job

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicJobsQueryNoFilters(t *testing.T) {
	stmt, args := publicJobsQuery(7, Filters{})

	assert.Equal(t, []interface{}{7}, args)
	assert.Contains(t, stmt, "WHERE company_id = $1")
	assert.NotContains(t, stmt, "AND")
	assert.True(t, strings.HasSuffix(stmt, "ORDER BY id"))
}

func TestPublicJobsQuerySingleFilters(t *testing.T) {
	tests := []struct {
		name       string
		filters    Filters
		wantClause string
		wantArg    interface{}
	}{
		{
			name:       "location is a substring match",
			filters:    Filters{Location: "bangalore"},
			wantClause: "location ILIKE '%' || $2 || '%'",
			wantArg:    "bangalore",
		},
		{
			name:       "employment type falls back to the legacy column",
			filters:    Filters{EmploymentType: "full-time"},
			wantClause: "LOWER(COALESCE(NULLIF(employment_type, ''), job_type, '')) = LOWER($2)",
			wantArg:    "full-time",
		},
		{
			name:       "work policy is case-insensitive equality",
			filters:    Filters{WorkPolicy: "remote"},
			wantClause: "LOWER(work_policy) = LOWER($2)",
			wantArg:    "remote",
		},
		{
			name:       "experience tolerates null rows",
			filters:    Filters{Experience: "senior"},
			wantClause: "LOWER(COALESCE(experience, '')) = LOWER($2)",
			wantArg:    "senior",
		},
		{
			name:       "department is a substring match",
			filters:    Filters{Department: "eng"},
			wantClause: "department ILIKE '%' || $2 || '%'",
			wantArg:    "eng",
		},
		{
			name:       "search spans title and description",
			filters:    Filters{Search: "go"},
			wantClause: "(title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')",
			wantArg:    "go",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stmt, args := publicJobsQuery(1, tc.filters)

			require.Len(t, args, 2)
			assert.Equal(t, 1, args[0])
			assert.Equal(t, tc.wantArg, args[1])
			assert.Contains(t, stmt, tc.wantClause)
		})
	}
}

func TestPublicJobsQueryCombinesWithAnd(t *testing.T) {
	stmt, args := publicJobsQuery(3, Filters{
		Location:       "berlin",
		EmploymentType: "contract",
		WorkPolicy:     "hybrid",
		Experience:     "junior",
		Department:     "sales",
		Search:         "account",
	})

	require.Len(t, args, 7)
	assert.Equal(t, []interface{}{3, "berlin", "contract", "hybrid", "junior", "sales", "account"}, args)
	assert.Equal(t, 6, strings.Count(stmt, " AND "))
	assert.True(t, strings.HasSuffix(stmt, "ORDER BY id"))
}

func TestResolveEmploymentTypeUpdate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("legacy alias folds into employment type", func(t *testing.T) {
		upd := resolveEmploymentTypeUpdate(JobRqUpdate{JobType: strPtr("internship")})
		require.NotNil(t, upd.EmploymentType)
		assert.Equal(t, EmploymentTypeFullTime, *upd.EmploymentType)
		assert.Nil(t, upd.JobType)
	})

	t.Run("employment type wins over the alias", func(t *testing.T) {
		upd := resolveEmploymentTypeUpdate(JobRqUpdate{
			EmploymentType: strPtr(EmploymentTypeContract),
			JobType:        strPtr("internship"),
		})
		require.NotNil(t, upd.EmploymentType)
		assert.Equal(t, EmploymentTypeContract, *upd.EmploymentType)
	})

	t.Run("empty employment type never reaches the row", func(t *testing.T) {
		upd := resolveEmploymentTypeUpdate(JobRqUpdate{EmploymentType: strPtr("")})
		assert.Nil(t, upd.EmploymentType)
	})

	t.Run("empty legacy alias never reaches the row", func(t *testing.T) {
		upd := resolveEmploymentTypeUpdate(JobRqUpdate{JobType: strPtr("")})
		assert.Nil(t, upd.EmploymentType)
		assert.Nil(t, upd.JobType)
	})

	t.Run("absent fields stay absent", func(t *testing.T) {
		upd := resolveEmploymentTypeUpdate(JobRqUpdate{})
		assert.Nil(t, upd.EmploymentType)
		assert.Nil(t, upd.JobType)
	})
}

func TestPublicJobsQueryPlaceholdersAreSequential(t *testing.T) {
	stmt, args := publicJobsQuery(3, Filters{Location: "berlin", Search: "go"})

	require.Len(t, args, 3)
	assert.Contains(t, stmt, "$1")
	assert.Contains(t, stmt, "$2")
	assert.Contains(t, stmt, "$3")
	assert.NotContains(t, stmt, "$4")
}
