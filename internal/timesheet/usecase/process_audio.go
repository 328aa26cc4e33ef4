package usecase

import (
	"context"
	"fmt"

	"voice-timesheet/internal/timesheet"
)

// ProcessAudio transcribes the recording at input.FilePath and submits the transcript.
func (uc *implUseCase) ProcessAudio(ctx context.Context, input timesheet.ProcessAudioInput) (timesheet.ProcessAudioOutput, error) {
	if uc.transcriber == nil {
		return timesheet.ProcessAudioOutput{}, timesheet.ErrNoTranscriber
	}

	text, err := uc.transcriber.TranscribeFile(ctx, input.FilePath)
	if err != nil {
		uc.l.Errorf(ctx, "timesheet.usecase.ProcessAudio: TranscribeFile %s: %v", input.FilePath, err)
		return timesheet.ProcessAudioOutput{}, fmt.Errorf("%w: %w", timesheet.ErrTranscription, err)
	}
	uc.l.Infof(ctx, "timesheet.usecase.ProcessAudio: transcribed %d characters", len(text))

	sub, err := uc.Submit(ctx, timesheet.SubmitInput{Transcript: text})
	if err != nil {
		return timesheet.ProcessAudioOutput{}, err
	}

	return timesheet.ProcessAudioOutput{
		RunID:         sub.RunID,
		Transcription: text,
		Date:          sub.Date,
		Tasks:         sub.Tasks,
		Entries:       sub.Entries,
	}, nil
}
