// Package fuzzy implements token based string similarity scores on a 0-100 scale.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// Process lowercases s, replaces every non letter/digit rune with a space and collapses whitespace.
func Process(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Ratio is the normalized Indel similarity of a and b: 100 * (1 - indel / (len(a)+len(b))).
// Two empty strings are identical.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 100
	}
	return 100 * float64(2*lcsLength(ra, rb)) / float64(total)
}

// TokenSetRatio compares the token sets of a and b, ignoring order and duplicates.
// If one set is contained in the other the score is 100; if either side has no tokens it is 0.
// Inputs go through Process first.
func TokenSetRatio(a, b string) float64 {
	tokensA := tokenSet(Process(a))
	tokensB := tokenSet(Process(b))
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	var intersect, diffAB, diffBA []string
	for tok := range tokensA {
		if _, ok := tokensB[tok]; ok {
			intersect = append(intersect, tok)
		} else {
			diffAB = append(diffAB, tok)
		}
	}
	for tok := range tokensB {
		if _, ok := tokensA[tok]; !ok {
			diffBA = append(diffBA, tok)
		}
	}

	if len(intersect) > 0 && (len(diffAB) == 0 || len(diffBA) == 0) {
		return 100
	}

	diffABJoined := joinSorted(diffAB)
	diffBAJoined := joinSorted(diffBA)
	abLen := runeLen(diffABJoined)
	baLen := runeLen(diffBAJoined)
	sectLen := runeLen(joinSorted(intersect))

	if sectLen == 0 {
		return Ratio(diffABJoined, diffBAJoined)
	}

	// "sect diffAB" vs "sect diffBA" share the sect prefix, so their distance is the
	// distance of the diffs, normalized by the full lengths including the joining space.
	sectABDist := 1 + abLen
	sectBADist := 1 + baLen
	sectABLen := sectLen + sectABDist
	sectBALen := sectLen + sectBADist

	result := 100 * (1 - float64(indelDistance(diffABJoined, diffBAJoined))/float64(sectABLen+sectBALen))
	sectABRatio := 100 * (1 - float64(sectABDist)/float64(sectLen+sectABLen))
	sectBARatio := 100 * (1 - float64(sectBADist)/float64(sectLen+sectBALen))

	return max(result, sectABRatio, sectBARatio)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func joinSorted(tokens []string) string {
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// indelDistance is the number of insertions and deletions turning a into b.
func indelDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	return len(ra) + len(rb) - 2*lcsLength(ra, rb)
}

func runeLen(s string) int {
	return len([]rune(s))
}

// lcsLength is the classic two-row dynamic program.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
