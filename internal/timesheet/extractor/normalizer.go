package extractor

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"voice-timesheet/internal/timesheet"
)

// DailyHours is the length of a working day every transcript is scaled to.
const DailyHours = 8

// Normalize rescales hours so they add up to DailyHours, keeping their proportions.
// Each share is truncated to hundredths, never rounded up; the hundredths lost that way go back
// one at a time to the entries with the largest cut-off remainder (earlier entry on ties),
// so the total is exactly DailyHours. A sequence that already sums to DailyHours is returned
// unchanged. A zero total is ErrDegenerateInput.
func Normalize(entries []timesheet.ResolvedEntry) ([]timesheet.ResolvedEntry, error) {
	out := make([]timesheet.ResolvedEntry, len(entries))
	copy(out, entries)

	target := decimal.NewFromInt(DailyHours)
	hours := make([]decimal.Decimal, len(entries))
	sum := decimal.Zero
	for i, e := range entries {
		hours[i] = decimal.NewFromFloat(e.Hours)
		sum = sum.Add(hours[i])
	}

	if sum.Equal(target) {
		return out, nil
	}
	if sum.IsZero() {
		return nil, &timesheet.StageError{
			Stage: timesheet.StageNormalize,
			Input: fmt.Sprintf("%d entries", len(entries)),
			Err:   timesheet.ErrDegenerateInput,
		}
	}

	hundred := decimal.NewFromInt(100)
	cents := make([]int64, len(entries))
	remainders := make([]decimal.Decimal, len(entries))
	var assigned int64
	for i, h := range hours {
		exact := h.Mul(target).Mul(hundred).Div(sum)
		whole := exact.Truncate(0)
		cents[i] = whole.IntPart()
		remainders[i] = exact.Sub(whole)
		assigned += cents[i]
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})

	leftover := target.Mul(hundred).IntPart() - assigned
	for k := 0; int64(k) < leftover && k < len(order); k++ {
		cents[order[k]]++
	}

	for i := range out {
		out[i].Hours = float64(cents[i]) / 100
	}
	return out, nil
}
