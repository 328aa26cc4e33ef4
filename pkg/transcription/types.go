package transcription

import "errors"

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "whisper-1"
)

var (
	ErrMissingAPIKey = errors.New("transcription API key is required")
	ErrEmptyAudio    = errors.New("audio is empty")
)

// Response is the JSON body of an /audio/transcriptions call.
type Response struct {
	Text string `json:"text"`
}

// ErrorResponse is the error body OpenAI-compatible servers return.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
