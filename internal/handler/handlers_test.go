package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/job"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/section"
	"github.com/stretchr/testify/assert"
)

func TestMutationStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, mutationStatus(nil, job.ErrJobNotFound))
	})

	t.Run("row deleted concurrently reads as not found", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, mutationStatus(job.ErrJobNotFound, job.ErrJobNotFound))
		assert.Equal(t, http.StatusNotFound, mutationStatus(section.ErrSectionNotFound, section.ErrSectionNotFound))
	})

	t.Run("store failure is a server fault", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, mutationStatus(errors.New("connection reset"), job.ErrJobNotFound))
	})
}
