package timesheet

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the timesheet package.
var (
	ErrEmptyTranscript  = errors.New("transcript is empty")
	ErrDateParse        = errors.New("date could not be parsed")
	ErrEmptyCatalog     = errors.New("reference catalog is empty")
	ErrCatalogLoad      = errors.New("reference catalog could not be loaded")
	ErrDegenerateInput  = errors.New("total extracted hours is zero")
	ErrNoTasksExtracted = errors.New("no tasks extracted from transcript")
	ErrTranscription    = errors.New("transcription failed")
	ErrNoTranscriber    = errors.New("transcription is not configured")
	ErrPersist          = errors.New("failed to persist timesheet entries")
)

// Pipeline stage names carried by StageError.
const (
	StageDate      = "date"
	StageTokenize  = "tokenize"
	StageResolve   = "resolve"
	StageNormalize = "normalize"
)

// StageError reports which stage of the extraction pipeline failed and on what input.
// It unwraps to one of the sentinel errors above.
type StageError struct {
	Stage string
	Input string
	Err   error
}

func (e *StageError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %v: %q", e.Stage, e.Err, e.Input)
}

func (e *StageError) Unwrap() error { return e.Err }
