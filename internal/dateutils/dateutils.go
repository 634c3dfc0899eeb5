// Package dateutils provides the date parsing and formatting used to
// canonicalize Date columns coming from different banks.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"
)

// CommonFormats is a list of standard formats to try when parsing dates.
// Order matters: ambiguous day/month strings resolve to the first match.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutFull,
	time.RFC3339,
	DateLayoutWithMonth,
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using CommonFormats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParseWithLayout parses dateStr with a layout that is either a Go reference
// layout or a strftime pattern such as "%Y-%m-%d".
func ParseWithLayout(dateStr, layout string) (time.Time, error) {
	if strings.Contains(layout, "%") {
		converted, err := StrftimeToLayout(layout)
		if err != nil {
			return time.Time{}, err
		}
		layout = converted
	}
	t, err := time.Parse(layout, CleanDateString(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q with layout %q: %w", dateStr, layout, err)
	}
	return t, nil
}

var strftimeDirectives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'b': "Jan",
	'h': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'z': "-0700",
	'Z': "MST",
	'f': "000000",
	'%': "%",
}

// StrftimeToLayout converts a strftime pattern to a Go reference layout.
func StrftimeToLayout(pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			b.WriteByte(pattern[i])
			continue
		}
		if i+1 >= len(pattern) {
			return "", fmt.Errorf("dangling %% in date format %q", pattern)
		}
		i++
		directive, ok := strftimeDirectives[pattern[i]]
		if !ok {
			return "", fmt.Errorf("unsupported directive %%%c in date format %q", pattern[i], pattern)
		}
		b.WriteString(directive)
	}
	return b.String(), nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims the string and collapses inner whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}
