package datemath

import (
	"errors"
	"regexp"
	"time"
)

// ISOLayout is the canonical date layout produced by the extractor.
const ISOLayout = "2006-01-02"

// ErrInvalidDate is returned when a date-shaped substring is not a real calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// InvalidDateError carries the substring that looked like a date but failed calendar validation.
type InvalidDateError struct {
	Pattern   string
	Substring string
}

func (e *InvalidDateError) Error() string {
	return "datemath: " + e.Pattern + ": " + ErrInvalidDate.Error() + ": " + e.Substring
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// dateRule pairs a surface pattern with the handler that turns its submatches into a date.
type dateRule struct {
	name    string
	pattern *regexp.Regexp
	build   func(groups []string) (year, month, day int, ok bool)
}

// Match is a successful extraction.
type Match struct {
	Date      time.Time
	Substring string
	Pattern   string
}
