package pagetemplate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceError_Error(t *testing.T) {
	t.Parallel()
	err := &SourceError{Root: "/etc/templates", File: "router.yml", Err: ErrParse}
	assert.Contains(t, err.Error(), "/etc/templates")
	assert.Contains(t, err.Error(), "router.yml")
	assert.Contains(t, err.Error(), "pagetemplate:")
}

func TestSourceError_RootOnly(t *testing.T) {
	t.Parallel()
	err := &SourceError{Root: "/missing", Err: ErrRootResolution}
	assert.NotContains(t, err.Error(), "file")
	assert.Contains(t, err.Error(), "/missing")
}

func TestSourceError_Unwrap(t *testing.T) {
	t.Parallel()
	err := &SourceError{Root: "r", File: "f", Err: fmt.Errorf("%w: boom", ErrStreamIO)}
	require.ErrorIs(t, err, ErrStreamIO)
	assert.NotErrorIs(t, err, ErrParse)
}

func TestSourceError_errorsAs(t *testing.T) {
	t.Parallel()
	outer := fmt.Errorf("outer: %w", &SourceError{Root: "r", File: "a.yml", Err: ErrParse})
	var se *SourceError
	require.ErrorAs(t, outer, &se)
	assert.Equal(t, "a.yml", se.File)
	assert.ErrorIs(t, se, ErrParse)
}

func TestSentinelErrors_Is(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"parse", ErrParse, ErrParse, true},
		{"root resolution", ErrRootResolution, ErrRootResolution, true},
		{"stream io", ErrStreamIO, ErrStreamIO, true},
		{"wrapped parse", fmt.Errorf("wrap: %w", ErrParse), ErrParse, true},
		{"wrong target", ErrParse, ErrStreamIO, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}
