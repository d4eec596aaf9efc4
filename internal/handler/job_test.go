package handler

import (
	"testing"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/job"
	"github.com/stretchr/testify/assert"
)

func TestNewJobViewExposesLegacyAlias(t *testing.T) {
	view := newJobView(job.Job{ID: 1, Title: "Backend Engineer", EmploymentType: "part-time"})

	assert.Equal(t, "part-time", view.EmploymentType)
	assert.Equal(t, "part-time", view.JobType)
}

func TestValidateJobEnums(t *testing.T) {
	t.Run("canonicalizes known spellings in place", func(t *testing.T) {
		employmentType := "Full Time"
		workPolicy := "office"
		experience := "mid"

		msg := validateJobEnums(&employmentType, &workPolicy, &experience)

		assert.Empty(t, msg)
		assert.Equal(t, "full-time", employmentType)
		assert.Equal(t, "onsite", workPolicy)
		assert.Equal(t, "mid-level", experience)
	})

	t.Run("rejects unknown employment type", func(t *testing.T) {
		employmentType := "freelance"
		msg := validateJobEnums(&employmentType, nil, nil)
		assert.Contains(t, msg, "employment_type")
	})

	t.Run("rejects unknown work policy", func(t *testing.T) {
		workPolicy := "nomad"
		msg := validateJobEnums(nil, &workPolicy, nil)
		assert.Contains(t, msg, "work_policy")
	})

	t.Run("rejects unknown experience", func(t *testing.T) {
		experience := "principal"
		msg := validateJobEnums(nil, nil, &experience)
		assert.Contains(t, msg, "experience")
	})

	t.Run("empty fields are not constrained", func(t *testing.T) {
		empty := ""
		assert.Empty(t, validateJobEnums(&empty, &empty, nil))
	})
}

func TestValidateJobUpdateEnums(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("rejects empty employment type", func(t *testing.T) {
		req := &job.JobRqUpdate{EmploymentType: strPtr("")}
		assert.Contains(t, validateJobUpdateEnums(req), "employment_type")
	})

	t.Run("rejects empty legacy job type", func(t *testing.T) {
		req := &job.JobRqUpdate{JobType: strPtr("")}
		assert.Contains(t, validateJobUpdateEnums(req), "job_type")
	})

	t.Run("rejects empty work policy", func(t *testing.T) {
		req := &job.JobRqUpdate{WorkPolicy: strPtr("")}
		assert.Contains(t, validateJobUpdateEnums(req), "work_policy")
	})

	t.Run("legacy alias is folded then validated", func(t *testing.T) {
		req := &job.JobRqUpdate{JobType: strPtr("internship")}
		assert.Empty(t, validateJobUpdateEnums(req))
		if assert.NotNil(t, req.EmploymentType) {
			assert.Equal(t, "full-time", *req.EmploymentType)
		}
		assert.Nil(t, req.JobType)
	})

	t.Run("unknown spellings are still rejected", func(t *testing.T) {
		req := &job.JobRqUpdate{EmploymentType: strPtr("freelance")}
		assert.Contains(t, validateJobUpdateEnums(req), "employment_type")
	})

	t.Run("absent fields pass", func(t *testing.T) {
		assert.Empty(t, validateJobUpdateEnums(&job.JobRqUpdate{}))
	})
}

func TestSanitizeStripsMarkup(t *testing.T) {
	assert.Equal(t, "Engineering", sanitize("<b>Engineering</b>"))
	assert.Equal(t, "hello", sanitize("  <script>alert(1)</script>hello  "))
}
