package company

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/lib/pq"
)

var (
	ErrCompanyExists   = errors.New("recruiter already has a company")
	ErrCompanyNotFound = errors.New("company not found")
)

const (
	defaultPrimaryColor   = "#000000"
	defaultSecondaryColor = "#FFFFFF"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) CompanyBySlug(companySlug string) (Company, error) {
	row := r.db.QueryRow(`SELECT id, slug, name, recruiter_id, primary_color, secondary_color, logo_image_id, banner_image_id, culture_video_url, created_at, updated_at FROM company WHERE slug = $1`, companySlug)
	return scanCompany(row)
}

func (r *Repository) CompanyByRecruiterID(recruiterID string) (Company, error) {
	row := r.db.QueryRow(`SELECT id, slug, name, recruiter_id, primary_color, secondary_color, logo_image_id, banner_image_id, culture_video_url, created_at, updated_at FROM company WHERE recruiter_id = $1`, recruiterID)
	return scanCompany(row)
}

// SaveCompany creates the recruiter's company. Exactly one company per recruiter,
// enforced by the unique index on recruiter_id.
func (r *Repository) SaveCompany(c *Company) error {
	companySlug, err := r.UniqueSlug(c.Name)
	if err != nil {
		return err
	}
	if c.PrimaryColor == "" {
		c.PrimaryColor = defaultPrimaryColor
	}
	if c.SecondaryColor == "" {
		c.SecondaryColor = defaultSecondaryColor
	}
	c.Slug = companySlug
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	row := r.db.QueryRow(
		`INSERT INTO company (slug, name, recruiter_id, primary_color, secondary_color, culture_video_url, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`,
		c.Slug,
		c.Name,
		c.RecruiterID,
		c.PrimaryColor,
		c.SecondaryColor,
		c.CultureVideoURL,
		c.CreatedAt,
	)
	if err := row.Scan(&c.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrCompanyExists
		}
		return err
	}
	return nil
}

// UpdateCompany applies a partial update: only non-nil fields are written.
func (r *Repository) UpdateCompany(companyID int, upd CompanyRqUpdate) error {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{companyID}
	appendSet := func(column string, val *string) {
		if val == nil {
			return
		}
		args = append(args, *val)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	appendSet("name", upd.Name)
	appendSet("primary_color", upd.PrimaryColor)
	appendSet("secondary_color", upd.SecondaryColor)
	appendSet("logo_image_id", upd.LogoImageID)
	appendSet("banner_image_id", upd.BannerImageID)
	appendSet("culture_video_url", upd.CultureVideoURL)
	stmt := fmt.Sprintf(`UPDATE company SET %s WHERE id = $1`, strings.Join(sets, ", "))
	res, err := r.db.Exec(stmt, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *Repository) GetCompanySlugs() ([]string, error) {
	slugs := make([]string, 0)
	rows, err := r.db.Query(`SELECT slug FROM company ORDER BY created_at DESC`)
	if err != nil {
		return slugs, err
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return slugs, err
		}
		slugs = append(slugs, s)
	}

	return slugs, rows.Err()
}

func (r *Repository) SlugExists(companySlug string) (bool, error) {
	var count int
	row := r.db.QueryRow(`SELECT COUNT(*) as c FROM company WHERE slug = $1`, companySlug)
	err := row.Scan(&count)
	if count > 0 {
		return true, err
	}

	return false, err
}

// UniqueSlug slugifies the company name and makes it globally unique
// with a numeric suffix when the plain slug is taken.
func (r *Repository) UniqueSlug(name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for counter := 1; ; counter++ {
		exists, err := r.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = SlugCandidate(base, counter)
	}
}

// SlugCandidate returns the nth fallback slug for a taken base slug.
func SlugCandidate(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}

func scanCompany(row *sql.Row) (Company, error) {
	c := Company{}
	var logoID, bannerID, videoURL sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&c.ID,
		&c.Slug,
		&c.Name,
		&c.RecruiterID,
		&c.PrimaryColor,
		&c.SecondaryColor,
		&logoID,
		&bannerID,
		&videoURL,
		&c.CreatedAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return c, ErrCompanyNotFound
	}
	if err != nil {
		return c, err
	}
	if logoID.Valid {
		c.LogoImageID = &logoID.String
	}
	if bannerID.Valid {
		c.BannerImageID = &bannerID.String
	}
	if videoURL.Valid {
		c.CultureVideoURL = &videoURL.String
	}
	if updatedAt.Valid {
		c.UpdatedAt = updatedAt.Time
	} else {
		c.UpdatedAt = c.CreatedAt
	}

	return c, nil
}
