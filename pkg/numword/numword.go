// Package numword rewrites spelled-out numbers in transcribed speech into numeric literals.
package numword

import (
	"regexp"
	"strconv"
)

var wordValues = map[string]int{
	"zero":  0,
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

const (
	wholeWords = `zero|one|two|three|four|five|six|seven|eight|nine|ten`
	digitWords = `zero|one|two|three|four|five|six|seven|eight|nine`
)

// decimalPhrase matches "[another] [whole] point d1 [d2]".
// Groups: 1 whole word (optional), 2 first digit word, 3 second digit word (optional).
var decimalPhrase = regexp.MustCompile(
	`\b(?:another\s+)?(?:(` + wholeWords + `)\s+)?point\s+(` + digitWords + `)(?:\s+(` + digitWords + `))?\b`,
)

// WordPattern is the alternation of number words zero..ten, for embedding in other expressions.
const WordPattern = wholeWords

// WordValue returns the value of a number word in zero..ten.
func WordValue(word string) (int, bool) {
	v, ok := wordValues[word]
	return v, ok
}

// ParseDecimalWords replaces decimal phrases such as "one point five" with "1.5".
// Input is expected to be lowercase; anything that is not a decimal phrase is left untouched.
func ParseDecimalWords(text string) string {
	return decimalPhrase.ReplaceAllStringFunc(text, func(match string) string {
		groups := decimalPhrase.FindStringSubmatch(match)
		if groups == nil {
			return match
		}

		// hundredths keeps the arithmetic exact
		hundredths := wordValues[groups[2]] * 10
		if groups[1] != "" {
			hundredths += wordValues[groups[1]] * 100
		}
		if groups[3] != "" {
			hundredths += wordValues[groups[3]]
		}

		return strconv.FormatFloat(float64(hundredths)/100, 'f', -1, 64)
	})
}
