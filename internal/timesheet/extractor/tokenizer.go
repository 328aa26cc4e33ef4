package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/numword"
)

// hourTrigger matches "<quantity> hour(s) [of|on|for|doing]". Group 1 is the quantity.
var hourTrigger = regexp.MustCompile(
	`\b(` + numword.WordPattern + `|\d+(?:\.\d+)?)\s*hours?\b(?:\s+(?:of|on|for|doing)\b)?`,
)

// joinerWords are dropped from the end of a description: "2 hours on x and 3 hours on y".
var joinerWords = map[string]struct{}{
	"and":     {},
	"then":    {},
	"also":    {},
	"plus":    {},
	"another": {},
}

// Tokenize returns every "<quantity> hours on <task>" mention in text, in the order they appear.
// text must already be lowercase and have gone through numword.ParseDecimalWords.
// A description runs up to the next trigger or the end of text and stops at sentence punctuation.
func Tokenize(text string) []timesheet.RawTaskMention {
	locs := hourTrigger.FindAllStringSubmatchIndex(text, -1)
	mentions := make([]timesheet.RawTaskMention, 0, len(locs))

	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		hours, ok := parseQuantity(text[loc[2]:loc[3]])
		if !ok {
			continue
		}

		mentions = append(mentions, timesheet.RawTaskMention{
			TaskText: cleanDescription(text[loc[1]:end]),
			Hours:    hours,
		})
	}

	return mentions
}

func parseQuantity(q string) (float64, bool) {
	if v, ok := numword.WordValue(q); ok {
		return float64(v), true
	}
	f, err := strconv.ParseFloat(q, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}

func cleanDescription(s string) string {
	if idx := strings.IndexFunc(s, isSentencePunct); idx >= 0 {
		s = s[:idx]
	}

	words := strings.Fields(s)
	for len(words) > 0 {
		if _, ok := joinerWords[words[len(words)-1]]; !ok {
			break
		}
		words = words[:len(words)-1]
	}

	return strings.Join(words, " ")
}

// isSentencePunct reports runes that end a task description. Hyphens and apostrophes
// stay inside words ("follow-up", "client's").
func isSentencePunct(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
		return false
	case r == '_', r == '-', r == '\'':
		return false
	}
	return true
}
