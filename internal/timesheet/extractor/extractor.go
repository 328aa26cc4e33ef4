// Package extractor turns a transcribed workday summary into normalized, chargecode-resolved
// timesheet entries. Everything here is pure and deterministic; no I/O.
package extractor

import (
	"errors"
	"fmt"
	"strings"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/datemath"
	"voice-timesheet/pkg/numword"
)

// Extractor runs the extraction pipeline. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	dates *datemath.Extractor
}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{dates: datemath.NewExtractor()}
}

var defaultExtractor = New()

// Extract runs the default Extractor.
func Extract(transcript string, catalog timesheet.Catalog) (timesheet.ExtractResult, error) {
	return defaultExtractor.Extract(transcript, catalog)
}

// Extract lowercases the transcript, rewrites decimal phrases, pulls out the date and the task
// mentions, resolves each mention against catalog and normalizes the day to DailyHours.
// A transcript without task mentions yields a result with the date and no entries.
func (e *Extractor) Extract(transcript string, catalog timesheet.Catalog) (timesheet.ExtractResult, error) {
	text := numword.ParseDecimalWords(strings.ToLower(transcript))

	date, err := e.extractDate(text)
	if err != nil {
		return timesheet.ExtractResult{}, err
	}

	tasks := Tokenize(text)
	result := timesheet.ExtractResult{
		Date:    date,
		Tasks:   tasks,
		Entries: []timesheet.ResolvedEntry{},
	}
	if len(tasks) == 0 {
		return result, nil
	}

	resolved := make([]timesheet.ResolvedEntry, 0, len(tasks))
	for _, task := range tasks {
		entry, err := Resolve(task, date, catalog)
		if err != nil {
			return timesheet.ExtractResult{}, err
		}
		resolved = append(resolved, entry)
	}

	normalized, err := Normalize(resolved)
	if err != nil {
		return timesheet.ExtractResult{}, err
	}

	result.Entries = normalized
	return result, nil
}

func (e *Extractor) extractDate(text string) (*string, error) {
	m, err := e.dates.Extract(text)
	if err != nil {
		input := ""
		var dateErr *datemath.InvalidDateError
		if errors.As(err, &dateErr) {
			input = dateErr.Substring
		}
		return nil, &timesheet.StageError{Stage: timesheet.StageDate, Input: input, Err: fmt.Errorf("%w: %w", timesheet.ErrDateParse, err)}
	}
	if m == nil {
		return nil, nil
	}

	iso := datemath.Format(m.Date)
	return &iso, nil
}
