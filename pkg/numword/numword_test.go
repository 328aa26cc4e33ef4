package numword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-timesheet/pkg/numword"
)

func TestParseDecimalWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "whole and tenth", in: "one point five hours", want: "1.5 hours"},
		{name: "hundredths without whole", in: "point two five", want: "0.25"},
		{name: "another filler", in: "and another point five hours on email", want: "and 0.5 hours on email"},
		{name: "another with whole", in: "another two point five hours", want: "2.5 hours"},
		{name: "ten point zero", in: "ten point zero hours", want: "10 hours"},
		{name: "two phrases", in: "one point five hours on a, two point two five hours on b", want: "1.5 hours on a, 2.25 hours on b"},
		{name: "no phrase", in: "two hours on calls", want: "two hours on calls"},
		{name: "embedded point word", in: "an appointment two hours", want: "an appointment two hours"},
		{name: "twenty is not a whole word", in: "twenty point five", want: "twenty 0.5"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numword.ParseDecimalWords(tt.in))
		})
	}
}

func TestWordValue(t *testing.T) {
	v, ok := numword.WordValue("ten")
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = numword.WordValue("eleven")
	assert.False(t, ok)
}
