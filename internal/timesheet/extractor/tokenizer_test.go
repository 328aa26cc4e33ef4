package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/extractor"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []timesheet.RawTaskMention
	}{
		{
			name: "two tasks joined by and",
			text: "today is 23/09/2025. i spent 2 hours on data analysis and 2 hours on calls.",
			want: []timesheet.RawTaskMention{{TaskText: "data analysis", Hours: 2}, {TaskText: "calls", Hours: 2}},
		},
		{
			name: "mention order is kept",
			text: "2 hours on a, 3 hours on b",
			want: []timesheet.RawTaskMention{{TaskText: "a", Hours: 2}, {TaskText: "b", Hours: 3}},
		},
		{
			name: "number words and connectors",
			text: "three hours of email then one hour doing code review, then 1.5 hours for planning",
			want: []timesheet.RawTaskMention{
				{TaskText: "email", Hours: 3},
				{TaskText: "code review", Hours: 1},
				{TaskText: "planning", Hours: 1.5},
			},
		},
		{
			name: "no connector",
			text: "4 hours client workshop",
			want: []timesheet.RawTaskMention{{TaskText: "client workshop", Hours: 4}},
		},
		{
			name: "hyphenated description",
			text: "2 hours on follow-up calls",
			want: []timesheet.RawTaskMention{{TaskText: "follow-up calls", Hours: 2}},
		},
		{
			name: "empty description is kept",
			text: "i worked 8 hours.",
			want: []timesheet.RawTaskMention{{TaskText: "", Hours: 8}},
		},
		{
			name: "connector must be a whole word",
			text: "2 hours onboarding",
			want: []timesheet.RawTaskMention{{TaskText: "onboarding", Hours: 2}},
		},
		{
			name: "no quantity hour phrase",
			text: "nothing billable happened today",
			want: []timesheet.RawTaskMention{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Tokenize(tt.text))
		})
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	text := "1 hour on standup, 2 hours on design review and 5 hours on implementation"
	first := extractor.Tokenize(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, extractor.Tokenize(text))
	}
}
