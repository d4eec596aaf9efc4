package section

import (
	"time"
)

const (
	TypeAbout    = "about"
	TypeLife     = "life"
	TypeBenefits = "benefits"
	TypeValues   = "values"
	TypeMission  = "mission"
	TypeCustom   = "custom"
)

var ValidSectionTypes = map[string]struct{}{
	TypeAbout:    {},
	TypeLife:     {},
	TypeBenefits: {},
	TypeValues:   {},
	TypeMission:  {},
	TypeCustom:   {},
}

// Section is a block of free-text content on the public careers page.
// Order values define the display sequence: ascending, gaps allowed.
type Section struct {
	ID          int
	CompanyID   int
	SectionType string
	Title       string
	Content     string
	Order       int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SectionRq struct {
	SectionType string `json:"section_type"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// SectionRqUpdate is a partial update: nil fields are left unchanged.
// Order is deliberately absent, it only moves through Reorder.
type SectionRqUpdate struct {
	SectionType *string `json:"section_type,omitempty"`
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
