package media

import (
	"database/sql"
	"errors"

	"github.com/segmentio/ksuid"
)

var ErrMediaNotFound = errors.New("media not found")

// Media is an opaque image blob (company logo or banner). The content is
// never interpreted beyond decode/re-encode at upload time, callers only
// ever get a reference id back.
type Media struct {
	ID        string
	Bytes     []byte
	MediaType string
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

func (r *Repository) SaveMedia(m Media) (string, error) {
	mediaID, err := ksuid.NewRandom()
	if err != nil {
		return "", err
	}
	_, err = r.db.Exec(`INSERT INTO image (id, bytes, media_type) VALUES ($1, $2, $3)`, mediaID.String(), m.Bytes, m.MediaType)
	if err != nil {
		return "", err
	}
	return mediaID.String(), nil
}

func (r *Repository) MediaByID(mediaID string) (Media, error) {
	var m Media
	row := r.db.QueryRow(`SELECT id, bytes, media_type FROM image WHERE id = $1`, mediaID)
	if err := row.Scan(&m.ID, &m.Bytes, &m.MediaType); err != nil {
		if err == sql.ErrNoRows {
			return Media{}, ErrMediaNotFound
		}
		return Media{}, err
	}
	return m, nil
}

func (r *Repository) DeleteMediaByID(mediaID string) error {
	_, err := r.db.Exec(`DELETE FROM image WHERE id = $1`, mediaID)
	return err
}

// DeleteStaleImages removes blobs no longer referenced by any company
// logo or banner.
func (r *Repository) DeleteStaleImages() error {
	_, err := r.db.Exec(`DELETE FROM image WHERE id NOT IN (SELECT logo_image_id FROM company WHERE logo_image_id IS NOT NULL) AND id NOT IN (SELECT banner_image_id FROM company WHERE banner_image_id IS NOT NULL)`)
	return err
}
