package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConstruction is the sentinel wrapped by every ConstructionError.
var ErrConstruction = errors.New("construction error")

// ErrOutputWrite is the sentinel wrapped by every OutputWriteError.
var ErrOutputWrite = errors.New("output write error")

// ConstructionError reports a missing translation key or a malformed language descriptor.
// Generation aborts on the first one; there is no partial document.
type ConstructionError struct {
	Section  string // Table section, e.g. "grievance_flow"
	Language string // Language code
	Field    string // Missing or invalid field
	Reason   string // Human-readable reason
}

func (e *ConstructionError) Error() string {
	var where []string
	if e.Section != "" {
		where = append(where, "section "+e.Section)
	}
	if e.Language != "" {
		where = append(where, "language "+e.Language)
	}
	if e.Field != "" {
		where = append(where, fmt.Sprintf("field %q", e.Field))
	}
	reason := e.Reason
	if reason == "" {
		reason = "missing"
	}
	if len(where) == 0 {
		return fmt.Sprintf("%s: %s", ErrConstruction, reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConstruction, strings.Join(where, ", "), reason)
}

func (e *ConstructionError) Unwrap() error { return ErrConstruction }

// MissingField builds the ConstructionError for an absent translation key.
func MissingField(section, lang, field string) *ConstructionError {
	return &ConstructionError{Section: section, Language: lang, Field: field, Reason: "missing"}
}

// OutputWriteError reports that the destination could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrOutputWrite, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying OS error to errors.Is.
func (e *OutputWriteError) Unwrap() []error { return []error{ErrOutputWrite, e.Err} }
