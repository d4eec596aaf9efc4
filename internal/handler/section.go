package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/company"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/section"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/server"
	"github.com/gorilla/mux"
)

type sectionView struct {
	ID          int    `json:"id"`
	SectionType string `json:"section_type"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

type publicSectionView struct {
	SectionType string `json:"section_type"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentHTML string `json:"content_html"`
	Order       int    `json:"order"`
}

func newSectionView(s section.Section) sectionView {
	return sectionView{
		ID:          s.ID,
		SectionType: s.SectionType,
		Title:       s.Title,
		Content:     s.Content,
		Order:       s.Order,
		IsActive:    s.IsActive,
	}
}

func newSectionViews(sections []section.Section) []sectionView {
	views := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		views = append(views, newSectionView(s))
	}
	return views
}

// ownSection loads a section and checks it belongs to the given company.
// A section owned by someone else reads as forbidden, not missing.
func ownSection(svr server.Server, sectionRepo *section.Repository, w http.ResponseWriter, companyID, sectionID int) (section.Section, bool) {
	sec, err := sectionRepo.SectionByID(sectionID)
	if err == section.ErrSectionNotFound {
		svr.JSONError(w, http.StatusNotFound, "section not found")
		return section.Section{}, false
	}
	if err != nil {
		svr.Log(err, "unable to find section")
		svr.JSONError(w, http.StatusInternalServerError, "internal error")
		return section.Section{}, false
	}
	if sec.CompanyID != companyID {
		svr.JSONError(w, http.StatusForbidden, "forbidden")
		return section.Section{}, false
	}
	return sec, true
}

func ListMySectionsHandler(svr server.Server, companyRepo *company.Repository, sectionRepo *section.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		sections, err := sectionRepo.SectionsByCompanyID(comp.ID)
		if err != nil {
			svr.Log(err, "unable to list sections")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.JSON(w, http.StatusOK, newSectionViews(sections))
	}
}

func CreateSectionHandler(svr server.Server, companyRepo *company.Repository, sectionRepo *section.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		req := &section.SectionRq{}
		if !decodeJSONBody(svr, w, r, req) {
			return
		}
		req.Title = sanitize(req.Title)
		req.Content = sanitize(req.Content)
		if _, valid := section.ValidSectionTypes[req.SectionType]; !valid {
			svr.JSONError(w, http.StatusBadRequest, "section_type must be one of about, life, benefits, values, mission, custom")
			return
		}
		if req.Title == "" {
			svr.JSONError(w, http.StatusBadRequest, "title is required")
			return
		}
		existing, err := sectionRepo.SectionsByCompanyID(comp.ID)
		if err != nil {
			svr.Log(err, "unable to count sections")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if len(existing) >= svr.GetConfig().MaxSectionCount {
			svr.JSONError(w, http.StatusBadRequest, fmt.Sprintf("a page can have at most %d sections", svr.GetConfig().MaxSectionCount))
			return
		}
		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}
		sec := &section.Section{
			CompanyID:   comp.ID,
			SectionType: req.SectionType,
			Title:       req.Title,
			Content:     req.Content,
			IsActive:    isActive,
		}
		if err := sectionRepo.SaveSection(sec); err != nil {
			svr.Log(err, "unable to save section")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.CacheFlushCompany(comp.Slug)
		svr.JSON(w, http.StatusCreated, newSectionView(*sec))
	}
}

func UpdateSectionHandler(svr server.Server, companyRepo *company.Repository, sectionRepo *section.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		sectionID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			svr.JSONError(w, http.StatusBadRequest, "invalid section id")
			return
		}
		if _, ok := ownSection(svr, sectionRepo, w, comp.ID, sectionID); !ok {
			return
		}
		req := &section.SectionRqUpdate{}
		if !decodeJSONBody(svr, w, r, req) {
			return
		}
		if req.SectionType != nil {
			if _, valid := section.ValidSectionTypes[*req.SectionType]; !valid {
				svr.JSONError(w, http.StatusBadRequest, "section_type must be one of about, life, benefits, values, mission, custom")
				return
			}
		}
		req.Title = sanitizePtr(req.Title)
		if req.Title != nil && *req.Title == "" {
			svr.JSONError(w, http.StatusBadRequest, "title cannot be empty")
			return
		}
		req.Content = sanitizePtr(req.Content)
		if err := sectionRepo.UpdateSection(sectionID, comp.ID, *req); err == section.ErrSectionNotFound {
			svr.JSONError(w, http.StatusNotFound, "section not found")
			return
		} else if err != nil {
			svr.Log(err, "unable to update section")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.CacheFlushCompany(comp.Slug)
		updated, err := sectionRepo.SectionByID(sectionID)
		if err != nil {
			svr.Log(err, "unable to reload section after update")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.JSON(w, http.StatusOK, newSectionView(updated))
	}
}

func DeleteSectionHandler(svr server.Server, companyRepo *company.Repository, sectionRepo *section.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		sectionID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			svr.JSONError(w, http.StatusBadRequest, "invalid section id")
			return
		}
		if _, ok := ownSection(svr, sectionRepo, w, comp.ID, sectionID); !ok {
			return
		}
		if err := sectionRepo.DeleteSection(sectionID, comp.ID); err != nil {
			switch mutationStatus(err, section.ErrSectionNotFound) {
			case http.StatusNotFound:
				svr.JSONError(w, http.StatusNotFound, "section not found")
			default:
				svr.Log(err, "unable to delete section")
				svr.JSONError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		svr.CacheFlushCompany(comp.Slug)
		svr.JSON(w, http.StatusOK, nil)
	}
}

// ReorderSectionsHandler replaces the display order of the company's sections.
// The submitted ids must be an exact permutation of the existing set; a
// mismatch applies nothing.
func ReorderSectionsHandler(svr server.Server, companyRepo *company.Repository, sectionRepo *section.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp, ok := recruiterCompany(svr, companyRepo, w, r)
		if !ok {
			return
		}
		req := &struct {
			SectionIDs []int `json:"section_ids"`
		}{}
		if !decodeJSONBody(svr, w, r, req) {
			return
		}
		err := sectionRepo.ReorderSections(comp.ID, req.SectionIDs)
		if errors.Is(err, section.ErrOrderMismatch) {
			svr.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			svr.Log(err, "unable to reorder sections")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.CacheFlushCompany(comp.Slug)
		sections, err := sectionRepo.SectionsByCompanyID(comp.ID)
		if err != nil {
			svr.Log(err, "unable to list sections after reorder")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.JSON(w, http.StatusOK, newSectionViews(sections))
	}
}

// PublicSectionsHandler serves the active sections for a company slug in
// display order. Content is additionally rendered to HTML so embedded
// newlines come out as line breaks.
func PublicSectionsHandler(svr server.Server, companyRepo *company.Repository, sectionRepo *section.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		companySlug := vars["slug"]
		if b, ok := svr.CacheGet(server.CacheKeyPublicSections + companySlug); ok {
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
		sections, err := sectionRepo.ActiveSectionsByCompanyID(comp.ID)
		if err != nil {
			svr.Log(err, "unable to list public sections for "+companySlug)
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		views := make([]publicSectionView, 0, len(sections))
		for _, s := range sections {
			views = append(views, publicSectionView{
				SectionType: s.SectionType,
				Title:       s.Title,
				Content:     s.Content,
				ContentHTML: string(svr.MarkdownToHTML(s.Content)),
				Order:       s.Order,
			})
		}
		if b, err := json.Marshal(views); err == nil {
			if err := svr.CacheSet(server.CacheKeyPublicSections+companySlug, b); err != nil {
				svr.Log(err, "unable to cache public sections for "+companySlug)
			}
		}
		svr.JSON(w, http.StatusOK, views)
	}
}
