package section

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	// ErrOrderMismatch means a reorder sequence is not an exact permutation
	// of the company's current section ids.
	ErrOrderMismatch = errors.New("section ids do not match existing sections")
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

const sectionColumns = `id, company_id, section_type, title, content, "order", is_active, created_at, updated_at`

func (r *Repository) SectionByID(sectionID int) (Section, error) {
	row := r.db.QueryRow(`SELECT `+sectionColumns+` FROM content_section WHERE id = $1`, sectionID)
	return scanSection(row.Scan)
}

func (r *Repository) SectionsByCompanyID(companyID int) ([]Section, error) {
	rows, err := r.db.Query(`SELECT `+sectionColumns+` FROM content_section WHERE company_id = $1 ORDER BY "order", created_at`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSections(rows)
}

// ActiveSectionsByCompanyID is the public read path: only visible sections,
// in display order.
func (r *Repository) ActiveSectionsByCompanyID(companyID int) ([]Section, error) {
	rows, err := r.db.Query(`SELECT `+sectionColumns+` FROM content_section WHERE company_id = $1 AND is_active IS TRUE ORDER BY "order", created_at`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSections(rows)
}

// SaveSection appends a new section at the end of the company's display
// sequence: order = max existing + 1, or 0 for the first section. The order
// value is computed inside the insert so concurrent creates cannot collide
// with a stale read.
func (r *Repository) SaveSection(s *Section) error {
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	row := r.db.QueryRow(
		`INSERT INTO content_section (company_id, section_type, title, content, "order", is_active, created_at, updated_at)
		SELECT $1, $2, $3, $4, COALESCE(MAX("order") + 1, 0), $5, $6, $6 FROM content_section WHERE company_id = $1
		RETURNING id, "order"`,
		s.CompanyID,
		s.SectionType,
		s.Title,
		s.Content,
		s.IsActive,
		s.CreatedAt,
	)
	return row.Scan(&s.ID, &s.Order)
}

// UpdateSection applies a partial update scoped to the owning company.
// It never touches "order".
func (r *Repository) UpdateSection(sectionID, companyID int, upd SectionRqUpdate) error {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{sectionID, companyID}
	appendSet := func(column string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.SectionType != nil {
		appendSet("section_type", *upd.SectionType)
	}
	if upd.Title != nil {
		appendSet("title", *upd.Title)
	}
	if upd.Content != nil {
		appendSet("content", *upd.Content)
	}
	if upd.IsActive != nil {
		appendSet("is_active", *upd.IsActive)
	}
	stmt := fmt.Sprintf(`UPDATE content_section SET %s WHERE id = $1 AND company_id = $2`, strings.Join(sets, ", "))
	res, err := r.db.Exec(stmt, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// DeleteSection removes the section without renumbering the remaining ones,
// gaps in "order" are fine for display.
func (r *Repository) DeleteSection(sectionID, companyID int) error {
	res, err := r.db.Exec(`DELETE FROM content_section WHERE id = $1 AND company_id = $2`, sectionID, companyID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// ReorderSections assigns order = index for each id in the submitted sequence.
// The sequence must be an exact permutation of the company's current section
// ids, otherwise nothing is written and ErrOrderMismatch is returned. The
// whole reorder runs in one transaction with the rows locked, so a concurrent
// reader sees either the fully-old or the fully-new ordering.
func (r *Repository) ReorderSections(companyID int, sectionIDs []int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id FROM content_section WHERE company_id = $1 FOR UPDATE`, companyID)
	if err != nil {
		return err
	}
	existing := make([]int, 0, len(sectionIDs))
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		existing = append(existing, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if err := validateReorder(existing, sectionIDs); err != nil {
		return err
	}

	for index, id := range sectionIDs {
		if _, err := tx.Exec(`UPDATE content_section SET "order" = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3`, index, id, companyID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// validateReorder checks the submitted sequence is a bijection onto the
// existing id set: every existing id exactly once, nothing foreign.
func validateReorder(existing, submitted []int) error {
	if len(submitted) != len(existing) {
		return fmt.Errorf("%w: got %d ids, have %d sections", ErrOrderMismatch, len(submitted), len(existing))
	}
	known := make(map[int]bool, len(existing))
	for _, id := range existing {
		known[id] = false
	}
	for _, id := range submitted {
		seen, ok := known[id]
		if !ok {
			return fmt.Errorf("%w: unknown section id %d", ErrOrderMismatch, id)
		}
		if seen {
			return fmt.Errorf("%w: duplicate section id %d", ErrOrderMismatch, id)
		}
		known[id] = true
	}
	return nil
}

func collectSections(rows *sql.Rows) ([]Section, error) {
	sections := []Section{}
	for rows.Next() {
		s, err := scanSection(rows.Scan)
		if err != nil {
			return sections, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func scanSection(scan func(dest ...interface{}) error) (Section, error) {
	s := Section{}
	var updatedAt sql.NullTime
	err := scan(
		&s.ID,
		&s.CompanyID,
		&s.SectionType,
		&s.Title,
		&s.Content,
		&s.Order,
		&s.IsActive,
		&s.CreatedAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return s, ErrSectionNotFound
	}
	if err != nil {
		return s, err
	}
	if updatedAt.Valid {
		s.UpdatedAt = updatedAt.Time
	} else {
		s.UpdatedAt = s.CreatedAt
	}

	return s, nil
}
