package company

import (
	"testing"

	"github.com/gosimple/slug"
	"github.com/stretchr/testify/assert"
)

func TestSlugCandidate(t *testing.T) {
	assert.Equal(t, "acme-corp-2", SlugCandidate("acme-corp", 2))
	assert.Equal(t, "acme-corp-10", SlugCandidate("acme-corp", 10))
}

func TestSlugGeneration(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Acme Corp", "acme-corp"},
		{"  White Carrot, Inc. ", "white-carrot-inc"},
		{"Café Müller", "cafe-muller"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, slug.Make(tc.name))
	}
}
