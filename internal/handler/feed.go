package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/company"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/job"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/server"
	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/snabb/sitemap"
)

// CompanyJobsRSSHandler serves a company's open positions as an RSS feed.
func CompanyJobsRSSHandler(svr server.Server, companyRepo *company.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		companySlug := vars["slug"]
		comp, err := companyRepo.CompanyBySlug(companySlug)
		if err == company.ErrCompanyNotFound {
			svr.JSONError(w, http.StatusNotFound, "company not found")
			return
		}
		if err != nil {
			svr.Log(err, "unable to find company "+companySlug)
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		jobs, err := jobRepo.PublicJobsByCompanyID(comp.ID, job.Filters{})
		if err != nil {
			svr.Log(err, "unable to retrieve jobs for rss feed")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		careersURL := fmt.Sprintf("%s/careers/%s", svr.SiteURL(), comp.Slug)
		feed := &feeds.Feed{
			Title:       fmt.Sprintf("%s Jobs", comp.Name),
			Link:        &feeds.Link{Href: careersURL},
			Description: fmt.Sprintf("Open positions at %s", comp.Name),
			Author:      &feeds.Author{Name: comp.Name},
			Created:     time.Now(),
		}
		for _, j := range jobs {
			description := ""
			if j.Description != nil {
				description = *j.Description
			}
			feed.Items = append(feed.Items, &feeds.Item{
				Title:       fmt.Sprintf("%s - %s", j.Title, j.Location),
				Link:        &feeds.Link{Href: fmt.Sprintf("%s/jobs/%d", careersURL, j.ID)},
				Description: string(svr.MarkdownToHTML(description)),
				Author:      &feeds.Author{Name: comp.Name},
				Created:     j.CreatedAt,
			})
		}
		rssFeed, err := feed.ToRss()
		if err != nil {
			svr.Log(err, "unable to convert rss feed to xml")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		svr.XML(w, http.StatusOK, []byte(rssFeed))
	}
}

// SitemapHandler lists every public careers page.
func SitemapHandler(svr server.Server, companyRepo *company.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slugs, err := companyRepo.GetCompanySlugs()
		if err != nil {
			svr.Log(err, "unable to list company slugs for sitemap")
			svr.TEXT(w, http.StatusInternalServerError, "unable to build sitemap")
			return
		}
		now := time.Now().UTC()
		sitemapFile := sitemap.New()
		for _, companySlug := range slugs {
			sitemapFile.Add(&sitemap.URL{
				Loc:        fmt.Sprintf("%s/careers/%s", svr.SiteURL(), companySlug),
				LastMod:    &now,
				ChangeFreq: sitemap.Weekly,
			})
		}
		buf := new(bytes.Buffer)
		if _, err := sitemapFile.WriteTo(buf); err != nil {
			svr.Log(err, "unable to write sitemap file")
			svr.TEXT(w, http.StatusInternalServerError, "unable to build sitemap")
			return
		}
		svr.XML(w, http.StatusOK, buf.Bytes())
	}
}
