package usecase

import (
	"context"

	"voice-timesheet/internal/timesheet"
)

// Preview resolves a transcript without writing anything.
func (uc *implUseCase) Preview(ctx context.Context, input timesheet.PreviewInput) (timesheet.PreviewOutput, error) {
	res, err := uc.extract(ctx, input.Transcript)
	if err != nil {
		return timesheet.PreviewOutput{}, err
	}

	return timesheet.PreviewOutput{
		Date:    res.Date,
		Tasks:   res.Tasks,
		Entries: res.Entries,
	}, nil
}
