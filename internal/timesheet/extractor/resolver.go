package extractor

import (
	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/fuzzy"
)

// Match is the best catalog row for a piece of task text.
type Match struct {
	Position int
	Entry    timesheet.ReferenceEntry
	Score    float64
}

// BestMatch scores text against every catalog Description with fuzzy.TokenSetRatio and returns
// the highest scoring row. Ties go to the earliest row, so empty text resolves to row 0 with score 0.
func BestMatch(text string, catalog timesheet.Catalog) (Match, error) {
	if catalog.Len() == 0 {
		return Match{}, &timesheet.StageError{Stage: timesheet.StageResolve, Input: text, Err: timesheet.ErrEmptyCatalog}
	}

	best := Match{Position: -1, Score: -1}
	for i := 0; i < catalog.Len(); i++ {
		entry := catalog.At(i)
		score := fuzzy.TokenSetRatio(text, entry.Description)
		if score > best.Score {
			best = Match{Position: i, Entry: entry, Score: score}
		}
	}

	return best, nil
}

// Resolve binds a task mention to its best catalog row.
func Resolve(mention timesheet.RawTaskMention, date *string, catalog timesheet.Catalog) (timesheet.ResolvedEntry, error) {
	m, err := BestMatch(mention.TaskText, catalog)
	if err != nil {
		return timesheet.ResolvedEntry{}, err
	}

	return timesheet.ResolvedEntry{
		Date:               date,
		BillingID:          m.Entry.BillingID,
		Hours:              mention.Hours,
		MatchedDescription: m.Entry.Description,
		Score:              m.Score,
	}, nil
}
