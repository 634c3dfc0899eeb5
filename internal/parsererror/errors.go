// Package parsererror defines the typed errors raised while loading,
// validating, and normalizing transaction files.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCandidates is reported when a candidate pattern matches no files.
// It is informational: the run ends normally.
var ErrNoCandidates = errors.New("no candidate files matched")

// SchemaError reports required columns that are absent from a loaded table.
type SchemaError struct {
	Source   string
	Missing  []string
	Required []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("the file '%s' is missing the following required columns: %s (expected columns: %s)",
		e.Source, strings.Join(e.Missing, ", "), strings.Join(e.Required, ", "))
}

// UnsupportedFormatError reports a file extension without a registered reader.
type UnsupportedFormatError struct {
	FilePath  string
	Extension string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unsupported file extension '%s' for %s", e.Extension, e.FilePath)
	}
	return fmt.Sprintf("unsupported file extension '%s' for %s (supported: %s)",
		e.Extension, e.FilePath, strings.Join(e.Supported, ", "))
}

// ParseError represents a value that could not be converted during normalization.
type ParseError struct {
	Source string
	Field  string
	Row    int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s' at row %d: %v",
		e.Source, e.Field, e.Value, e.Row, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not conform to the
// format its extension claims.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// IsFatal reports whether err belongs to the taxonomy that halts a run.
func IsFatal(err error) bool {
	var (
		schemaErr      *SchemaError
		unsupportedErr *UnsupportedFormatError
		parseErr       *ParseError
		formatErr      *InvalidFormatError
	)
	return errors.As(err, &schemaErr) ||
		errors.As(err, &unsupportedErr) ||
		errors.As(err, &parseErr) ||
		errors.As(err, &formatErr)
}
