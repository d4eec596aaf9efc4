package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/company"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/job"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/server"
	"github.com/gorilla/mux"
)

type jobView struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	Location       string  `json:"location"`
	WorkPolicy     string  `json:"work_policy"`
	Department     *string `json:"department,omitempty"`
	EmploymentType string  `json:"employment_type"`
	JobType        string  `json:"job_type"` // read-only legacy alias of employment_type
	Experience     *string `json:"experience,omitempty"`
	SalaryRange    *string `json:"salary_range,omitempty"`
	PostedDate     string  `json:"posted_date"`
	TimeAgo        string  `json:"time_ago"`
}

func newJobView(j job.Job) jobView {
	return jobView{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		Location:       j.Location,
		WorkPolicy:     j.WorkPolicy,
		Department:     j.Department,
		EmploymentType: j.EmploymentType,
		JobType:        j.EmploymentType,
		Experience:     j.Experience,
		SalaryRange:    j.SalaryRange,
		PostedDate:     j.PostedDate,
		TimeAgo:        j.TimeAgo,
	}
}

func newJobViews(jobs []job.Job) []jobView {
	views := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, newJobView(j))
	}
	return views
}

// validateJobEnums canonicalizes and checks the closed-vocabulary fields.
// Returns a field-level message on failure, empty string when valid.
func validateJobEnums(employmentType, workPolicy *string, experience *string) string {
	if employmentType != nil && *employmentType != "" {
		*employmentType = job.CanonicalEmploymentType(*employmentType)
		if _, ok := job.ValidEmploymentTypes[*employmentType]; !ok {
			return "employment_type must be one of full-time, part-time, contract"
		}
	}
	if workPolicy != nil && *workPolicy != "" {
		*workPolicy = job.CanonicalWorkPolicy(*workPolicy)
		if _, ok := job.ValidWorkPolicies[*workPolicy]; !ok {
			return "work_policy must be one of remote, hybrid, onsite"
		}
	}
	if experience != nil && *experience != "" {
		*experience = job.CanonicalExperience(*experience)
		if _, ok := job.ValidExperienceLevels[*experience]; !ok {
			return "experience must be one of junior, mid-level, senior"
		}
	}
	return ""
}

// validateJobUpdateEnums is the partial-update variant: a present-but-empty
// enum is an explicit write, not an omission, and would clear the stored
// value, so it is rejected instead of skipped. The legacy job_type alias is
// folded into employment_type before validation.
func validateJobUpdateEnums(req *job.JobRqUpdate) string {
	if req.EmploymentType != nil && *req.EmploymentType == "" {
		return "employment_type cannot be empty"
	}
	if req.JobType != nil && *req.JobType == "" {
		return "job_type cannot be empty"
	}
	if req.WorkPolicy != nil && *req.WorkPolicy == "" {
		return "work_policy cannot be empty"
	}
	if req.EmploymentType == nil && req.JobType != nil {
		normalized := job.NormalizeEmploymentType("", *req.JobType)
		req.EmploymentType = &normalized
		req.JobType = nil
	}
	return validateJobEnums(req.EmploymentType, req.WorkPolicy, req.Experience)
}

func ListMyJobsHandler(svr server.Server, companyRepo *company.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		jobs, err := jobRepo.JobsByCompanyID(comp.ID)
		if err != nil {
			svr.Log(err, "unable to list jobs")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.JSON(w, http.StatusOK, newJobViews(jobs))
	}
}

func CreateJobHandler(svr server.Server, companyRepo *company.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		req := &job.JobRq{}
		if !decodeJSONBody(svr, w, r, req) {
			return
		}
		req.Title = sanitize(req.Title)
		req.Location = sanitize(req.Location)
		req.Description = sanitizePtr(req.Description)
		req.Department = sanitizePtr(req.Department)
		req.SalaryRange = sanitizePtr(req.SalaryRange)
		req.PostedDate = sanitize(req.PostedDate)
		if req.Title == "" {
			svr.JSONError(w, http.StatusBadRequest, "title is required")
			return
		}
		if req.Location == "" {
			svr.JSONError(w, http.StatusBadRequest, "location is required")
			return
		}
		// legacy clients send job_type instead of employment_type
		req.EmploymentType = job.NormalizeEmploymentType(req.EmploymentType, req.JobType)
		if msg := validateJobEnums(&req.EmploymentType, &req.WorkPolicy, req.Experience); msg != "" {
			svr.JSONError(w, http.StatusBadRequest, msg)
			return
		}
		j := &job.Job{
			CompanyID:      comp.ID,
			Title:          req.Title,
			Description:    req.Description,
			Location:       req.Location,
			WorkPolicy:     req.WorkPolicy,
			Department:     req.Department,
			EmploymentType: req.EmploymentType,
			Experience:     req.Experience,
			SalaryRange:    req.SalaryRange,
			PostedDate:     req.PostedDate,
		}
		if err := jobRepo.SaveJob(j); err != nil {
			svr.Log(err, "unable to save job")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.CacheFlushCompany(comp.Slug)
		svr.JSON(w, http.StatusCreated, newJobView(*j))
	}
}

func UpdateJobHandler(svr server.Server, companyRepo *company.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		jobID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			svr.JSONError(w, http.StatusBadRequest, "invalid job id")
			return
		}
		req := &job.JobRqUpdate{}
		if !decodeJSONBody(svr, w, r, req) {
			return
		}
		req.Title = sanitizePtr(req.Title)
		if req.Title != nil && *req.Title == "" {
			svr.JSONError(w, http.StatusBadRequest, "title cannot be empty")
			return
		}
		req.Location = sanitizePtr(req.Location)
		if req.Location != nil && *req.Location == "" {
			svr.JSONError(w, http.StatusBadRequest, "location cannot be empty")
			return
		}
		req.Description = sanitizePtr(req.Description)
		req.Department = sanitizePtr(req.Department)
		req.SalaryRange = sanitizePtr(req.SalaryRange)
		req.PostedDate = sanitizePtr(req.PostedDate)
		if msg := validateJobUpdateEnums(req); msg != "" {
			svr.JSONError(w, http.StatusBadRequest, msg)
			return
		}
		// ownership check first so a foreign job reads as forbidden, not missing
		existing, err := jobRepo.JobByID(jobID)
		if err == job.ErrJobNotFound {
			svr.JSONError(w, http.StatusNotFound, "job not found")
			return
		}
		if err != nil {
			svr.Log(err, "unable to find job")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if existing.CompanyID != comp.ID {
			svr.JSONError(w, http.StatusForbidden, "forbidden")
			return
		}
		if err := jobRepo.UpdateJob(jobID, comp.ID, *req); err == job.ErrJobNotFound {
			svr.JSONError(w, http.StatusNotFound, "job not found")
			return
		} else if err != nil {
			svr.Log(err, "unable to update job")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.CacheFlushCompany(comp.Slug)
		updated, err := jobRepo.JobByID(jobID)
		if err != nil {
			svr.Log(err, "unable to reload job after update")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.JSON(w, http.StatusOK, newJobView(updated))
	}
}

func DeleteJobHandler(svr server.Server, companyRepo *company.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		jobID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			svr.JSONError(w, http.StatusBadRequest, "invalid job id")
			return
		}
		existing, err := jobRepo.JobByID(jobID)
		if err == job.ErrJobNotFound {
			svr.JSONError(w, http.StatusNotFound, "job not found")
			return
		}
		if err != nil {
			svr.Log(err, "unable to find job")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if existing.CompanyID != comp.ID {
			svr.JSONError(w, http.StatusForbidden, "forbidden")
			return
		}
		if err := jobRepo.DeleteJob(jobID, comp.ID); err != nil {
			switch mutationStatus(err, job.ErrJobNotFound) {
			case http.StatusNotFound:
				svr.JSONError(w, http.StatusNotFound, "job not found")
			default:
				svr.Log(err, "unable to delete job")
				svr.JSONError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		svr.CacheFlushCompany(comp.Slug)
		svr.JSON(w, http.StatusOK, nil)
	}
}

// PublicJobsHandler serves the filterable public job listing for a company
// slug. All supplied filters must match; an unknown filter value returns an
// empty list rather than an error.
func PublicJobsHandler(svr server.Server, companyRepo *company.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		companySlug := vars["slug"]
		filters := job.ParseFiltersFromQuery(r.URL.Query())
		if filters.IsZero() {
			if b, ok := svr.CacheGet(server.CacheKeyPublicJobs + companySlug); ok {
				svr.JSON(w, http.StatusOK, json.RawMessage(b))
				return
			}
		}
		comp, err := companyRepo.CompanyBySlug(companySlug)
		if err == company.ErrCompanyNotFound {
			svr.JSONError(w, http.StatusNotFound, "company not found")
			return
		}
		if err != nil {
			svr.Log(err, "unable to find company "+companySlug)
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		jobs, err := jobRepo.PublicJobsByCompanyID(comp.ID, filters)
		if err != nil {
			svr.Log(err, "unable to list public jobs for "+companySlug)
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		views := newJobViews(jobs)
		if filters.IsZero() {
			if b, err := json.Marshal(views); err == nil {
				if err := svr.CacheSet(server.CacheKeyPublicJobs+companySlug, b); err != nil {
					svr.Log(err, "unable to cache public jobs for "+companySlug)
				}
			}
		}
		svr.JSON(w, http.StatusOK, views)
	}
}
