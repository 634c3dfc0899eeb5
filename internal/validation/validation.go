// Package validation holds the checks applied to loaded tables and to user
// supplied options before the pipeline runs.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/parsererror"
)

// RequireColumns verifies that Date, Amount and Description are columns of
// table. source identifies the file in the returned *parsererror.SchemaError.
func RequireColumns(table models.RecordTable, source string) error {
	return RequireColumnSet(table, source, models.RequiredColumns())
}

// RequireColumnSet verifies that every name in required is a column of table.
func RequireColumnSet(table models.RecordTable, source string, required []string) error {
	var missing []string
	for _, column := range required {
		if !table.Has(column) {
			missing = append(missing, column)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	expected := append([]string(nil), required...)
	sort.Strings(expected)

	return &parsererror.SchemaError{
		Source:   source,
		Missing:  missing,
		Required: expected,
	}
}

// ReportFormats lists the accepted values of the report format option.
var ReportFormats = []string{"text", "json", "markdown", "xml"}

// IsValidReportFormat checks if the given report format is supported.
func IsValidReportFormat(format string) error {
	for _, f := range ReportFormats {
		if strings.EqualFold(f, format) {
			return nil
		}
	}
	return fmt.Errorf("unsupported report format: %s. Supported formats are %s",
		format, strings.Join(ReportFormats, ", "))
}
