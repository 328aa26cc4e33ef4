package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-timesheet/pkg/fuzzy"
)

func TestProcess(t *testing.T) {
	assert.Equal(t, "data analysis q3", fuzzy.Process("  Data-Analysis (Q3)  "))
	assert.Equal(t, "", fuzzy.Process("!!!"))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 100.0, fuzzy.Ratio("", ""))
	assert.Equal(t, 0.0, fuzzy.Ratio("abc", ""))
	assert.Equal(t, 100.0, fuzzy.Ratio("calls", "calls"))
	// lcs("abcd","abed") = 3 -> 2*3/8
	assert.InDelta(t, 75.0, fuzzy.Ratio("abcd", "abed"), 1e-9)
}

func TestTokenSetRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical ignoring case", a: "data analysis", b: "Data Analysis", want: 100},
		{name: "order independent", a: "analysis data", b: "data analysis", want: 100},
		{name: "subset scores full", a: "calls", b: "Client Calls", want: 100},
		{name: "duplicates ignored", a: "calls calls", b: "calls", want: 100},
		{name: "empty left", a: "", b: "Data Analysis", want: 0},
		{name: "empty right", a: "calls", b: "", want: 0},
		{name: "punctuation only", a: "...", b: "calls", want: 0},
		// no shared tokens: plain ratio of "abc" vs "xyz"
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, fuzzy.TokenSetRatio(tt.a, tt.b), 1e-9)
		})
	}
}

// Expected values are rapidfuzz.fuzz.token_set_ratio outputs.
func TestTokenSetRatioMatchesRapidFuzz(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{a: "data analysis", b: "data calls", want: 69.5652173913},
		{a: "data analysis", b: "data entry", want: 60.8695652174},
		{a: "data analysis", b: "data code", want: 61.5384615385},
		{a: "data analysis", b: "Client Calls", want: 40},
		{a: "weekly sync meeting", b: "Sync Meeting Weekly", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, fuzzy.TokenSetRatio(tt.a, tt.b), 1e-6)
		})
	}
}

func TestTokenSetRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"data analysis and review", "analysis of data"},
		{"client calls", "internal meetings"},
		{"code review", "review of code changes"},
	}
	for _, p := range pairs {
		assert.InDelta(t, fuzzy.TokenSetRatio(p[0], p[1]), fuzzy.TokenSetRatio(p[1], p[0]), 1e-9)
	}
}
