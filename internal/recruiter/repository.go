package recruiter

import (
	"database/sql"
	"errors"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/segmentio/ksuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) SaveTokenSignOn(email, token string) error {
	if _, err := r.db.Exec(`INSERT INTO recruiter_sign_on_token (token, email, created_at) VALUES ($1, $2, $3)`, token, email, time.Now().UTC()); err != nil {
		return err
	}
	return nil
}

// GetOrCreateRecruiterFromToken resolves a sign-on token to a recruiter,
// creating the account on first sign-in.
// Returns the recruiter, whether the account existed already and an error.
func (r *Repository) GetOrCreateRecruiterFromToken(token string) (Recruiter, bool, error) {
	rec := Recruiter{}
	row := r.db.QueryRow(`SELECT t.token, t.email, r.id, r.email, r.created_at FROM recruiter_sign_on_token t LEFT JOIN recruiter r ON t.email = r.email WHERE t.token = $1 AND t.created_at > NOW() - INTERVAL '7 DAYS'`, token)
	var tokenRes, id, email, tokenEmail sql.NullString
	var createdAt sql.NullTime
	if err := row.Scan(&tokenRes, &tokenEmail, &id, &email, &createdAt); err != nil {
		return rec, false, err
	}
	if !tokenRes.Valid {
		return rec, false, errors.New("token not found")
	}
	if !email.Valid {
		// recruiter not found create new one
		recruiterID, err := ksuid.NewRandom()
		if err != nil {
			return rec, false, err
		}
		rec.ID = recruiterID.String()
		rec.Email = tokenEmail.String
		rec.CreatedAt = time.Now()
		rec.CreatedAtHumanised = humanize.Time(rec.CreatedAt.UTC())
		if _, err := r.db.Exec(`INSERT INTO recruiter (id, email, created_at) VALUES ($1, $2, $3)`, rec.ID, rec.Email, rec.CreatedAt); err != nil {
			return Recruiter{}, false, err
		}

		return rec, false, nil
	}
	rec.ID = id.String
	rec.Email = email.String
	rec.CreatedAt = createdAt.Time
	rec.CreatedAtHumanised = humanize.Time(rec.CreatedAt.UTC())

	return rec, true, nil
}

func (r *Repository) RecruiterByEmail(email string) (Recruiter, error) {
	rec := Recruiter{}
	row := r.db.QueryRow(`SELECT id, email, created_at FROM recruiter WHERE lower(email) = lower($1)`, email)
	if err := row.Scan(&rec.ID, &rec.Email, &rec.CreatedAt); err != nil {
		return rec, err
	}
	return rec, nil
}

// DeleteExpiredSignOnTokens deletes sign on tokens older than 1 week
func (r *Repository) DeleteExpiredSignOnTokens() error {
	_, err := r.db.Exec(`DELETE FROM recruiter_sign_on_token WHERE created_at < NOW() - INTERVAL '7 DAYS'`)
	return err
}
