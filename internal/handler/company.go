package handler

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/company"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/middleware"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/server"
	"github.com/gorilla/mux"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type companyView struct {
	ID              int     `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	PrimaryColor    string  `json:"primary_color"`
	SecondaryColor  string  `json:"secondary_color"`
	LogoImageID     *string `json:"logo_image_id,omitempty"`
	BannerImageID   *string `json:"banner_image_id,omitempty"`
	LogoURL         *string `json:"logo_url,omitempty"`
	BannerURL       *string `json:"banner_url,omitempty"`
	CultureVideoURL *string `json:"culture_video_url,omitempty"`
}

type publicCompanyView struct {
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	PrimaryColor    string  `json:"primary_color"`
	SecondaryColor  string  `json:"secondary_color"`
	LogoURL         *string `json:"logo_url,omitempty"`
	BannerURL       *string `json:"banner_url,omitempty"`
	CultureVideoURL *string `json:"culture_video_url,omitempty"`
}

func mediaURL(svr server.Server, mediaID *string) *string {
	if mediaID == nil || *mediaID == "" {
		return nil
	}
	u := svr.SiteURL() + "/x/s/m/" + *mediaID
	return &u
}

func newCompanyView(svr server.Server, c company.Company) companyView {
	return companyView{
		ID:              c.ID,
		Slug:            c.Slug,
		Name:            c.Name,
		PrimaryColor:    c.PrimaryColor,
		SecondaryColor:  c.SecondaryColor,
		LogoImageID:     c.LogoImageID,
		BannerImageID:   c.BannerImageID,
		LogoURL:         mediaURL(svr, c.LogoImageID),
		BannerURL:       mediaURL(svr, c.BannerImageID),
		CultureVideoURL: c.CultureVideoURL,
	}
}

func newPublicCompanyView(svr server.Server, c company.Company) publicCompanyView {
	return publicCompanyView{
		Slug:            c.Slug,
		Name:            c.Name,
		PrimaryColor:    c.PrimaryColor,
		SecondaryColor:  c.SecondaryColor,
		LogoURL:         mediaURL(svr, c.LogoImageID),
		BannerURL:       mediaURL(svr, c.BannerImageID),
		CultureVideoURL: c.CultureVideoURL,
	}
}

// CreateCompanyHandler registers the recruiter's company profile. One company
// per recruiter; the slug is generated from the name and kept stable after.
func CreateCompanyHandler(svr server.Server, companyRepo *company.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := middleware.GetRecruiterFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		req := &company.CompanyRq{}
		if !decodeJSONBody(svr, w, r, req) {
			return
		}
		name := sanitize(req.Name)
		if name == "" {
			svr.JSONError(w, http.StatusBadRequest, "name is required")
			return
		}
		if _, err := companyRepo.CompanyByRecruiterID(profile.RecruiterID); err == nil {
			svr.JSONError(w, http.StatusBadRequest, "company already exists")
			return
		} else if err != company.ErrCompanyNotFound {
			svr.Log(err, "unable to check for existing company")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		comp := &company.Company{Name: name, RecruiterID: profile.RecruiterID}
		if err := companyRepo.SaveCompany(comp); err == company.ErrCompanyExists {
			svr.JSONError(w, http.StatusBadRequest, "company already exists")
			return
		} else if err != nil {
			svr.Log(err, "unable to save company")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.JSON(w, http.StatusCreated, newCompanyView(svr, *comp))
	}
}

func MyCompanyHandler(svr server.Server, companyRepo *company.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		svr.JSON(w, http.StatusOK, newCompanyView(svr, comp))
	}
}

func UpdateMyCompanyHandler(svr server.Server, companyRepo *company.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		req := &company.CompanyRqUpdate{}
		if !decodeJSONBody(svr, w, r, req) {
			return
		}
		req.Name = sanitizePtr(req.Name)
		if req.Name != nil && *req.Name == "" {
			svr.JSONError(w, http.StatusBadRequest, "name cannot be empty")
			return
		}
		for _, color := range []*string{req.PrimaryColor, req.SecondaryColor} {
			if color != nil && !hexColorRe.MatchString(*color) {
				svr.JSONError(w, http.StatusBadRequest, "color must be a #RRGGBB value")
				return
			}
		}
		req.CultureVideoURL = sanitizePtr(req.CultureVideoURL)
		if err := companyRepo.UpdateCompany(comp.ID, *req); err != nil {
			svr.Log(err, "unable to update company")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.CacheFlushCompany(comp.Slug)
		updated, err := companyRepo.CompanyBySlug(comp.Slug)
		if err != nil {
			svr.Log(err, "unable to reload company after update")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.JSON(w, http.StatusOK, newCompanyView(svr, updated))
	}
}

// PublicCompanyHandler serves the public careers page profile for a slug.
func PublicCompanyHandler(svr server.Server, companyRepo *company.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		companySlug := vars["slug"]
		if b, ok := svr.CacheGet(server.CacheKeyPublicCompany + companySlug); ok {
			svr.JSON(w, http.StatusOK, json.RawMessage(b))
			return
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
		view := newPublicCompanyView(svr, comp)
		if b, err := json.Marshal(view); err == nil {
			if err := svr.CacheSet(server.CacheKeyPublicCompany+companySlug, b); err != nil {
				svr.Log(err, "unable to cache public company "+companySlug)
			}
		}
		svr.JSON(w, http.StatusOK, view)
	}
}
