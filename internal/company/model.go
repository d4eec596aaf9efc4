package company

import (
	"time"
)

type Company struct {
	ID              int
	Slug            string
	Name            string
	RecruiterID     string
	PrimaryColor    string
	SecondaryColor  string
	LogoImageID     *string
	BannerImageID   *string
	CultureVideoURL *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CompanyRq struct {
	Name string `json:"name"`
}

// CompanyRqUpdate is a partial update: nil means "leave unchanged",
// a pointer to the empty string clears the field where the schema allows it.
type CompanyRqUpdate struct {
	Name            *string `json:"name,omitempty"`
	PrimaryColor    *string `json:"primary_color,omitempty"`
	SecondaryColor  *string `json:"secondary_color,omitempty"`
	LogoImageID     *string `json:"logo_image_id,omitempty"`
	BannerImageID   *string `json:"banner_image_id,omitempty"`
	CultureVideoURL *string `json:"culture_video_url,omitempty"`
}
