package job

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var ErrJobNotFound = errors.New("job not found")

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

const jobColumns = `id, company_id, title, description, location, work_policy, department, employment_type, experience, salary_range, posted_date, created_at`

func (r *Repository) JobByID(jobID int) (Job, error) {
	row := r.db.QueryRow(`SELECT `+jobColumns+` FROM job WHERE id = $1`, jobID)
	return scanJob(row.Scan)
}

// JobsByCompanyID lists a company's jobs in creation order, newest last.
func (r *Repository) JobsByCompanyID(companyID int) ([]Job, error) {
	rows, err := r.db.Query(`SELECT `+jobColumns+` FROM job WHERE company_id = $1 ORDER BY id`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

// PublicJobsByCompanyID runs the public filter query: every supplied predicate
// must hold (AND semantics), no predicates returns the whole listing. An
// unknown company id yields an empty result, not an error.
func (r *Repository) PublicJobsByCompanyID(companyID int, f Filters) ([]Job, error) {
	stmt, args := publicJobsQuery(companyID, f)
	rows, err := r.db.Query(stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

// publicJobsQuery composes the filter predicates into a single statement.
// Kept free of *sql.DB so the composition is testable on its own.
func publicJobsQuery(companyID int, f Filters) (string, []interface{}) {
	args := []interface{}{companyID}
	where := []string{"company_id = $1"}
	add := func(clause string, val string) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if f.Location != "" {
		add("location ILIKE '%%' || $%d || '%%'", f.Location)
	}
	if f.EmploymentType != "" {
		// legacy rows may carry only job_type, the two fields are one enum
		add("LOWER(COALESCE(NULLIF(employment_type, ''), job_type, '')) = LOWER($%d)", f.EmploymentType)
	}
	if f.WorkPolicy != "" {
		add("LOWER(work_policy) = LOWER($%d)", f.WorkPolicy)
	}
	if f.Experience != "" {
		add("LOWER(COALESCE(experience, '')) = LOWER($%d)", f.Experience)
	}
	if f.Department != "" {
		add("department ILIKE '%%' || $%d || '%%'", f.Department)
	}
	if f.Search != "" {
		args = append(args, f.Search)
		where = append(where, fmt.Sprintf("(title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", len(args), len(args)))
	}

	return `SELECT ` + jobColumns + ` FROM job WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id`, args
}

func (r *Repository) SaveJob(j *Job) error {
	j.EmploymentType = NormalizeEmploymentType(j.EmploymentType, "")
	if j.EmploymentType == "" {
		j.EmploymentType = EmploymentTypeFullTime
	}
	if j.WorkPolicy == "" {
		j.WorkPolicy = WorkPolicyOnsite
	}
	if j.PostedDate == "" {
		j.PostedDate = DefaultPostedDate
	}
	j.CreatedAt = time.Now().UTC()
	row := r.db.QueryRow(
		`INSERT INTO job (company_id, title, description, location, work_policy, department, employment_type, experience, salary_range, posted_date, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		j.CompanyID,
		j.Title,
		j.Description,
		j.Location,
		j.WorkPolicy,
		j.Department,
		j.EmploymentType,
		j.Experience,
		j.SalaryRange,
		j.PostedDate,
		j.CreatedAt,
	)
	return row.Scan(&j.ID)
}

// resolveEmploymentTypeUpdate folds the legacy job_type alias into
// employment_type for a partial update. Empty values are dropped rather than
// written: an explicit empty string must never clear the stored enum, the row
// would become unmatchable by any employment_type filter.
func resolveEmploymentTypeUpdate(upd JobRqUpdate) JobRqUpdate {
	if upd.EmploymentType == nil && upd.JobType != nil && *upd.JobType != "" {
		normalized := NormalizeEmploymentType("", *upd.JobType)
		upd.EmploymentType = &normalized
	}
	if upd.EmploymentType != nil && *upd.EmploymentType == "" {
		upd.EmploymentType = nil
	}
	upd.JobType = nil
	return upd
}

// UpdateJob applies a partial update to a job owned by the given company.
// Only non-nil fields are written; a write to employment_type clears the
// legacy job_type alias so the canonical column is the single source of truth.
func (r *Repository) UpdateJob(jobID, companyID int, upd JobRqUpdate) error {
	upd = resolveEmploymentTypeUpdate(upd)
	sets := []string{}
	args := []interface{}{jobID, companyID}
	appendSet := func(column string, val *string) {
		if val == nil {
			return
		}
		args = append(args, *val)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	appendSet("title", upd.Title)
	appendSet("description", upd.Description)
	appendSet("location", upd.Location)
	appendSet("work_policy", upd.WorkPolicy)
	appendSet("department", upd.Department)
	appendSet("experience", upd.Experience)
	appendSet("salary_range", upd.SalaryRange)
	appendSet("posted_date", upd.PostedDate)
	if upd.EmploymentType != nil {
		args = append(args, *upd.EmploymentType)
		sets = append(sets, fmt.Sprintf("employment_type = $%d, job_type = NULL", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}
	stmt := fmt.Sprintf(`UPDATE job SET %s WHERE id = $1 AND company_id = $2`, strings.Join(sets, ", "))
	res, err := r.db.Exec(stmt, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *Repository) DeleteJob(jobID, companyID int) error {
	res, err := r.db.Exec(`DELETE FROM job WHERE id = $1 AND company_id = $2`, jobID, companyID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func collectJobs(rows *sql.Rows) ([]Job, error) {
	jobs := []Job{}
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return jobs, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func scanJob(scan func(dest ...interface{}) error) (Job, error) {
	j := Job{}
	var description, department, experience, salaryRange sql.NullString
	err := scan(
		&j.ID,
		&j.CompanyID,
		&j.Title,
		&description,
		&j.Location,
		&j.WorkPolicy,
		&department,
		&j.EmploymentType,
		&experience,
		&salaryRange,
		&j.PostedDate,
		&j.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return j, ErrJobNotFound
	}
	if err != nil {
		return j, err
	}
	if description.Valid {
		j.Description = &description.String
	}
	if department.Valid {
		j.Department = &department.String
	}
	if experience.Valid {
		j.Experience = &experience.String
	}
	if salaryRange.Valid {
		j.SalaryRange = &salaryRange.String
	}
	j.TimeAgo = humanize.Time(j.CreatedAt)

	return j, nil
}
