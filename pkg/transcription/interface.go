package transcription

import (
	"context"
	"io"
)

// ITranscriber turns recorded speech into text.
type ITranscriber interface {
	TranscribeFile(ctx context.Context, path string) (string, error)
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}
