package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/company"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/middleware"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/server"
	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all markup from recruiter-submitted free text before it
// reaches the database.
var strictPolicy = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

func sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := sanitize(*s)
	return &clean
}

// recruiterCompany resolves the signed-on recruiter's company for a dashboard
// request. On failure it has already written the response and returns false.
func recruiterCompany(svr server.Server, companyRepo *company.Repository, w http.ResponseWriter, r *http.Request) (company.Company, bool) {
	profile, err := middleware.GetRecruiterFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
	if err != nil {
		svr.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return company.Company{}, false
	}
	comp, err := companyRepo.CompanyByRecruiterID(profile.RecruiterID)
	if err == company.ErrCompanyNotFound {
		svr.JSONError(w, http.StatusNotFound, "company not found")
		return company.Company{}, false
	}
	if err != nil {
		svr.Log(err, "unable to find company for recruiter "+profile.RecruiterID)
		svr.JSONError(w, http.StatusInternalServerError, "internal error")
		return company.Company{}, false
	}
	return comp, true
}

func decodeJSONBody(svr server.Server, w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		svr.JSONError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// mutationStatus maps a repository error from a mutation that already passed
// its ownership check. The notFound sentinel covers the race where the row
// vanished between the check and the write, which is a 404, not a fault.
func mutationStatus(err, notFound error) int {
	switch err {
	case nil:
		return http.StatusOK
	case notFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func HealthCheckHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svr.Conn.Ping(); err != nil {
			svr.Log(err, "health check ping failed")
			svr.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func RobotsTXTHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.TEXT(w, http.StatusOK, "User-agent: *\nAllow: /\nSitemap: "+svr.SiteURL()+"/sitemap.xml\n")
	}
}
