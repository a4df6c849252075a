// Package dateutils provides the date and month-key operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date and month layouts
const (
	DateLayoutISO   = "2006-01-02"
	DateLayoutSlash = "2006/01/02"
	DateLayoutDot   = "2006.01.02"
	DateLayoutFull  = "2006-01-02 15:04:05"
	MonthKeyLayout  = "2006-01"
)

// CommonFormats is the list of formats accepted when normalizing imported dates.
// Year-first layouts only, the ones household ledgers and bank exports use in Japan.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutSlash,
	DateLayoutDot,
	DateLayoutFull,
	"2006年1月2日",
	"2006/1/2",
	"2006-1-2",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using the common formats.
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

// NormalizeDate parses a date in any common format and returns it as YYYY-MM-DD
func NormalizeDate(dateStr string) (string, error) {
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return ToISODate(t), nil
}

// ValidateDate checks that dateStr is a real calendar date in YYYY-MM-DD form
func ValidateDate(dateStr string) error {
	if _, err := time.Parse(DateLayoutISO, dateStr); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", dateStr, err)
	}
	return nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims and collapses whitespace in a date string
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// CurrentMonthKey returns the YYYY-MM key of the calendar month containing now
func CurrentMonthKey(now time.Time) string {
	return now.Format(MonthKeyLayout)
}

// ParseMonthKey validates a YYYY-MM month key and returns the first day of that month
func ParseMonthKey(key string) (time.Time, error) {
	key = strings.TrimSpace(key)
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", key, err)
	}
	return t, nil
}

// MonthOf returns the YYYY-MM key of a YYYY-MM-DD date, or "" when the date is too short
func MonthOf(dateStr string) string {
	if len(dateStr) < len(MonthKeyLayout) {
		return ""
	}
	return dateStr[:len(MonthKeyLayout)]
}

// TodayISO returns now as YYYY-MM-DD
func TodayISO(now time.Time) string {
	return ToISODate(now)
}
