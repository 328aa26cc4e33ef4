package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice-timesheet/internal/timesheet"
)

// extract loads the catalog and runs the extraction pipeline on transcript.
func (uc *implUseCase) extract(ctx context.Context, transcript string) (timesheet.ExtractResult, error) {
	if strings.TrimSpace(transcript) == "" {
		return timesheet.ExtractResult{}, timesheet.ErrEmptyTranscript
	}

	catalog, err := uc.catalogRepo.LoadCatalog(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "timesheet.usecase.extract: LoadCatalog: %v", err)
		return timesheet.ExtractResult{}, fmt.Errorf("%w: %w", timesheet.ErrCatalogLoad, err)
	}

	res, err := uc.extractor.Extract(transcript, catalog)
	if err != nil {
		uc.logStageError(ctx, err)
		return timesheet.ExtractResult{}, err
	}

	if len(res.Entries) == 0 {
		uc.l.Warnf(ctx, "timesheet.usecase.extract: %v (transcript_length=%d)", timesheet.ErrNoTasksExtracted, len(transcript))
	}

	return res, nil
}

func (uc *implUseCase) logStageError(ctx context.Context, err error) {
	var stageErr *timesheet.StageError
	if errors.As(err, &stageErr) {
		uc.l.Warnf(ctx, "timesheet.usecase.extract: stage=%s input=%q: %v", stageErr.Stage, stageErr.Input, stageErr.Err)
		return
	}
	uc.l.Errorf(ctx, "timesheet.usecase.extract: %v", err)
}

func (uc *implUseCase) logMappings(ctx context.Context, entries []timesheet.ResolvedEntry) {
	for _, e := range entries {
		uc.l.Infof(ctx, "%.2fh → %s (%s, score=%.1f)", e.Hours, e.BillingID, e.MatchedDescription, e.Score)
	}
}
