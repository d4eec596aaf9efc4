package section

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReorder(t *testing.T) {
	tests := []struct {
		name      string
		existing  []int
		submitted []int
		wantErr   bool
	}{
		{
			name:      "identity permutation",
			existing:  []int{1, 2, 3},
			submitted: []int{1, 2, 3},
		},
		{
			name:      "reversed permutation",
			existing:  []int{1, 2, 3},
			submitted: []int{3, 2, 1},
		},
		{
			name:      "empty against empty",
			existing:  []int{},
			submitted: []int{},
		},
		{
			name:      "missing id",
			existing:  []int{1, 2, 3},
			submitted: []int{1, 2},
			wantErr:   true,
		},
		{
			name:      "extra id",
			existing:  []int{1, 2},
			submitted: []int{1, 2, 3},
			wantErr:   true,
		},
		{
			name:      "duplicate id hides a missing one",
			existing:  []int{1, 2, 3},
			submitted: []int{1, 2, 2},
			wantErr:   true,
		},
		{
			name:      "foreign id",
			existing:  []int{1, 2, 3},
			submitted: []int{1, 2, 9},
			wantErr:   true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateReorder(tc.existing, tc.submitted)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrOrderMismatch), "want ErrOrderMismatch, got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidSectionTypes(t *testing.T) {
	for _, st := range []string{TypeAbout, TypeLife, TypeBenefits, TypeValues, TypeMission, TypeCustom} {
		_, ok := ValidSectionTypes[st]
		assert.True(t, ok, st)
	}
	_, ok := ValidSectionTypes["team"]
	assert.False(t, ok)
}
