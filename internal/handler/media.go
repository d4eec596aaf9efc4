package handler

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io/ioutil"
	"net/http"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/company"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/media"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/server"
	"github.com/gorilla/mux"
	"github.com/nfnt/resize"
)

var allowedMediaTypes = []string{"image/png", "image/jpeg", "image/jpg"}

// SaveMediaHandler accepts a logo or banner upload for the recruiter's
// company. Images wider than the configured bound for their kind are scaled
// down, aspect ratio preserved.
func SaveMediaHandler(svr server.Server, companyRepo *company.Repository, mediaRepo *media.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := recruiterCompany(svr, companyRepo, w, r); !ok {
			return
		}
		// limits upload form size to 5mb
		maxMediaFileSize := 5 * 1024 * 1024
		r.Body = http.MaxBytesReader(w, r.Body, int64(maxMediaFileSize))
		imageFile, header, err := r.FormFile("image")
		if err != nil {
			svr.Log(err, "unable to read media file")
			svr.JSONError(w, http.StatusRequestEntityTooLarge, "image file is required and must be below 5mb")
			return
		}
		defer imageFile.Close()
		fileBytes, err := ioutil.ReadAll(imageFile)
		if err != nil {
			svr.Log(err, "unable to read image file content")
			svr.JSONError(w, http.StatusRequestEntityTooLarge, "image file is required and must be below 5mb")
			return
		}
		if header.Size > int64(maxMediaFileSize) {
			svr.Log(errors.New("media file is too large"), fmt.Sprintf("media file too large: %d > %d", header.Size, maxMediaFileSize))
			svr.JSONError(w, http.StatusRequestEntityTooLarge, "image file must be below 5mb")
			return
		}
		contentType := http.DetectContentType(fileBytes)
		contentTypeInvalid := true
		for _, allowedMedia := range allowedMediaTypes {
			if allowedMedia == contentType {
				contentTypeInvalid = false
			}
		}
		if contentTypeInvalid {
			svr.JSONError(w, http.StatusUnsupportedMediaType, "image must be png or jpeg")
			return
		}
		decImage, _, err := image.Decode(bytes.NewReader(fileBytes))
		if err != nil {
			svr.Log(err, "unable to decode image from bytes")
			svr.JSONError(w, http.StatusBadRequest, "image could not be decoded")
			return
		}
		maxWidth := svr.GetConfig().MaxBannerWidth
		if r.URL.Query().Get("kind") == "logo" {
			maxWidth = svr.GetConfig().MaxLogoWidth
		}
		if uint(decImage.Bounds().Dx()) > maxWidth {
			decImage = resize.Resize(maxWidth, 0, decImage, resize.Lanczos3)
		}
		encoded := new(bytes.Buffer)
		switch contentType {
		case "image/jpg", "image/jpeg":
			if err := jpeg.Encode(encoded, decImage, nil); err != nil {
				svr.Log(err, "unable to encode image into jpeg")
				svr.JSONError(w, http.StatusInternalServerError, "internal error")
				return
			}
		case "image/png":
			if err := png.Encode(encoded, decImage); err != nil {
				svr.Log(err, "unable to encode image into png")
				svr.JSONError(w, http.StatusInternalServerError, "internal error")
				return
			}
		}
		mediaID, err := mediaRepo.SaveMedia(media.Media{Bytes: encoded.Bytes(), MediaType: contentType})
		if err != nil {
			svr.Log(err, "unable to save media to db")
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.JSON(w, http.StatusCreated, map[string]string{
			"id":  mediaID,
			"url": svr.SiteURL() + "/x/s/m/" + mediaID,
		})
	}
}

func RetrieveMediaHandler(svr server.Server, mediaRepo *media.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		mediaID := vars["id"]
		m, err := mediaRepo.MediaByID(mediaID)
		if err == media.ErrMediaNotFound {
			svr.JSONError(w, http.StatusNotFound, "media not found")
			return
		}
		if err != nil {
			svr.Log(err, "unable to retrieve media by id "+mediaID)
			svr.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		svr.MEDIA(w, http.StatusOK, m.Bytes, m.MediaType)
	}
}
