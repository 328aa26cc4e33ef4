package timesheet

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Preview extracts and resolves entries from a transcript without persisting anything.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)

	// Submit extracts entries from a transcript and appends them to the timesheet in mention order.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)

	// ProcessAudio transcribes a recorded workday summary and submits it.
	ProcessAudio(ctx context.Context, input ProcessAudioInput) (ProcessAudioOutput, error)
}
