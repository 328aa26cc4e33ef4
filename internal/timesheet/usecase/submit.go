package usecase

import (
	"context"
	"fmt"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
)

// Submit resolves a transcript and appends its entries to the timesheet in one batch.
// Nothing is written when extraction fails or yields no entries; RunID is empty in the latter case.
func (uc *implUseCase) Submit(ctx context.Context, input timesheet.SubmitInput) (timesheet.SubmitOutput, error) {
	res, err := uc.extract(ctx, input.Transcript)
	if err != nil {
		return timesheet.SubmitOutput{}, err
	}

	out := timesheet.SubmitOutput{
		Date:    res.Date,
		Tasks:   res.Tasks,
		Entries: res.Entries,
	}
	if len(res.Entries) == 0 {
		return out, nil
	}

	runID, err := uc.persist(ctx, res.Entries)
	if err != nil {
		return timesheet.SubmitOutput{}, err
	}
	out.RunID = runID

	return out, nil
}

func (uc *implUseCase) persist(ctx context.Context, entries []timesheet.ResolvedEntry) (string, error) {
	runID := uc.newRunID()
	uc.logMappings(ctx, entries)

	if err := uc.timesheetRepo.AppendEntries(ctx, repository.AppendEntriesOptions{
		RunID:   runID,
		Entries: entries,
	}); err != nil {
		uc.l.Errorf(ctx, "timesheet.usecase.Submit: AppendEntries run=%s: %v", runID, err)
		return "", fmt.Errorf("%w: %w", timesheet.ErrPersist, err)
	}

	uc.l.Infof(ctx, "timesheet.usecase.Submit: run=%s wrote %d entries", runID, len(entries))
	return runID, nil
}
