package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/middleware"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/recruiter"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/server"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"
)

// RequestTokenSignOn emails a one-time sign-on link to the given address.
// The response is the same whether or not the address is known.
func RequestTokenSignOn(svr server.Server, recruiterRepo *recruiter.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &struct {
			Email string `json:"email"`
		}{}
		if !decodeJSONBody(svr, w, r, req) {
			return
		}
		if !svr.IsEmail(req.Email) {
			svr.JSONError(w, http.StatusBadRequest, "invalid email")
			return
		}
		k, err := ksuid.NewRandom()
		if err != nil {
			svr.Log(err, "unable to generate sign on token")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if err := recruiterRepo.SaveTokenSignOn(req.Email, k.String()); err != nil {
			svr.Log(err, "unable to save sign on token")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if err := svr.GetEmail().SendSignOnLink(svr.SiteURL(), req.Email, k.String()); err != nil {
			svr.Log(err, "unable to send sign on email")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.JSON(w, http.StatusOK, nil)
	}
}

func VerifyTokenSignOn(svr server.Server, recruiterRepo *recruiter.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		token := vars["token"]
		rec, _, err := recruiterRepo.GetOrCreateRecruiterFromToken(token)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to validate sign on token %s", token))
			svr.TEXT(w, http.StatusBadRequest, "Invalid or expired token")
			return
		}
		sess, err := svr.SessionStore.Get(r, middleware.SessionCookieName())
		if err != nil {
			svr.TEXT(w, http.StatusInternalServerError, "Invalid or expired token")
			return
		}
		stdClaims := &jwt.StandardClaims{
			ExpiresAt: time.Now().Add(30 * 24 * time.Hour).UTC().Unix(),
			IssuedAt:  time.Now().UTC().Unix(),
			Issuer:    svr.SiteURL(),
		}
		claims := middleware.RecruiterJWT{
			RecruiterID:    rec.ID,
			Email:          rec.Email,
			CreatedAt:      rec.CreatedAt,
			StandardClaims: *stdClaims,
		}
		tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		ss, err := tkn.SignedString(svr.GetJWTSigningKey())
		if err != nil {
			svr.Log(err, "unable to sign jwt")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		sess.Values["jwt"] = ss
		if err := sess.Save(r, w); err != nil {
			svr.Log(err, "unable to save jwt into session cookie")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.Redirect(w, r, http.StatusMovedPermanently, "/")
	}
}

func SignOut(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svr.SessionStore.Get(r, middleware.SessionCookieName())
		if err == nil {
			delete(sess.Values, "jwt")
			sess.Options.MaxAge = -1
			sess.Save(r, w)
		}
		svr.JSON(w, http.StatusOK, nil)
	}
}
