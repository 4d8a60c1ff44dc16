package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrDuplicate), "ErrNotFound should not match ErrDuplicate")
	assert.False(t, errors.Is(ErrNotFound, ErrConstraint), "ErrNotFound should not match ErrConstraint")
	assert.False(t, errors.Is(ErrDuplicate, ErrConstraint), "ErrDuplicate should not match ErrConstraint")
}

func TestErrors_CanBeWrapped(t *testing.T) {
	wrapped := fmt.Errorf("video 123: %w", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound), "wrapped error should match ErrNotFound")
}

func TestMapSQLiteError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"unique", errors.New("constraint failed: UNIQUE constraint failed: videos.file_name (2067)"), ErrDuplicate},
		{"not null", errors.New("NOT NULL constraint failed: videos.source"), ErrConstraint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapSQLiteError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	other := errors.New("disk I/O error")
	assert.Equal(t, other, mapSQLiteError(other), "unknown errors pass through")
}
