package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december`

var months = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
}

// Extractor finds the first date mentioned in lowercase free text.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	rules []dateRule
}

// NewExtractor returns an Extractor with the rules evaluated in priority order:
// DD/MM/YYYY (or DD-MM-YYYY), DD/MM/YY, "Month DD, YYYY", "DD Month YYYY", "DDth Month YYYY".
func NewExtractor() *Extractor {
	return &Extractor{
		rules: []dateRule{
			{
				name:    "dd/mm/yyyy",
				pattern: regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`),
				build:   numericDate(false),
			},
			{
				name:    "dd/mm/yy",
				pattern: regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2})\b`),
				build:   numericDate(true),
			},
			{
				name:    "month dd, yyyy",
				pattern: regexp.MustCompile(`\b(` + monthNames + `)\s+(\d{1,2}),?\s+(\d{4})\b`),
				build: func(g []string) (int, int, int, bool) {
					return atoi(g[3]), months[g[1]], atoi(g[2]), true
				},
			},
			{
				name:    "dd month yyyy",
				pattern: regexp.MustCompile(`\b(\d{1,2})\s+(` + monthNames + `)\s+(\d{4})\b`),
				build: func(g []string) (int, int, int, bool) {
					return atoi(g[3]), months[g[2]], atoi(g[1]), true
				},
			},
			{
				name:    "ddth month yyyy",
				pattern: regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)\s+(` + monthNames + `)\s+(\d{4})\b`),
				build: func(g []string) (int, int, int, bool) {
					return atoi(g[3]), months[g[2]], atoi(g[1]), true
				},
			},
		},
	}
}

// Extract returns the first rule's first match in text. A nil Match with a nil error means no date
// was mentioned. A surface match that is not a valid calendar date returns *InvalidDateError and
// stops the search.
func (e *Extractor) Extract(text string) (*Match, error) {
	for _, rule := range e.rules {
		groups := rule.pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}

		year, month, day, ok := rule.build(groups)
		if !ok || !validDate(year, month, day) {
			return nil, &InvalidDateError{Pattern: rule.name, Substring: groups[0]}
		}

		return &Match{
			Date:      time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
			Substring: groups[0],
			Pattern:   rule.name,
		}, nil
	}
	return nil, nil
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(ISOLayout)
}

func numericDate(shortYear bool) func(g []string) (int, int, int, bool) {
	return func(g []string) (int, int, int, bool) {
		year := atoi(g[3])
		if shortYear {
			// 00-68 -> 2000s, 69-99 -> 1900s
			if year <= 68 {
				year += 2000
			} else {
				year += 1900
			}
		}
		return year, atoi(g[2]), atoi(g[1]), true
	}
}

// validDate rejects anything time.Date would normalise, e.g. 31/02 or month 13.
func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return n
}
