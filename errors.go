package pagetemplate

import (
	"errors"
	"fmt"
)

// Sentinel errors for template loading.
// All use prefix "pagetemplate:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrParse          = errors.New("pagetemplate: template document is malformed")
	ErrRootResolution = errors.New("pagetemplate: template source root cannot be resolved")
	ErrStreamIO       = errors.New("pagetemplate: template stream I/O failed")
)

// SourceError wraps a sentinel error with the root and file it happened in.
// File is empty for root-level failures.
type SourceError struct {
	Root string
	File string
	Err  error
}

// Error implements error.
func (e *SourceError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("pagetemplate: root %q: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("pagetemplate: root %q file %q: %v", e.Root, e.File, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *SourceError) Unwrap() error { return e.Err }

// Compile-time check that SourceError implements error.
var _ error = (*SourceError)(nil)
