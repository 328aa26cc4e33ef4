package gsheets

import "strings"

// TokenFile is where an OAuth desktop token is looked up when the credentials are not a
// service account. scripts/gsheets-auth writes it.
const TokenFile = "token.json"

// Record is one data row keyed by the header row of its range.
type Record map[string]string

// Get returns the value for header, ignoring case and surrounding spaces in the header name.
func (r Record) Get(header string) string {
	if v, ok := r[header]; ok {
		return v
	}
	want := strings.TrimSpace(header)
	for k, v := range r {
		if strings.EqualFold(strings.TrimSpace(k), want) {
			return v
		}
	}
	return ""
}

// AppendResult reports what an append call wrote.
type AppendResult struct {
	UpdatedRange string
	UpdatedRows  int64
}
