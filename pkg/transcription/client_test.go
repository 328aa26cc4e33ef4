package transcription_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-timesheet/pkg/transcription"
)

func TestNew(t *testing.T) {
	_, err := transcription.New("")
	assert.True(t, errors.Is(err, transcription.ErrMissingAPIKey))

	c, err := transcription.New("key")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestTranscribe(t *testing.T) {
	var gotModel, gotFile, gotAuth, gotAudio string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotModel = r.FormValue("model")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotFile = hdr.Filename
		b, _ := io.ReadAll(f)
		gotAudio = string(b)

		w.Write([]byte(`{"text": "  Today is 23/09/2025. I spent 2 hours on calls.  "}`))
	}))
	defer ts.Close()

	c, err := transcription.New("secret")
	require.NoError(t, err)
	c.WithBaseURL(ts.URL + "/v1/")

	text, err := c.Transcribe(context.Background(), "day.mp3", strings.NewReader("RIFFfake"))
	require.NoError(t, err)

	assert.Equal(t, "Today is 23/09/2025. I spent 2 hours on calls.", text)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, transcription.DefaultModel, gotModel)
	assert.Equal(t, "day.mp3", gotFile)
	assert.Equal(t, "RIFFfake", gotAudio)
}

func TestTranscribeFile(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "whisper-large", r.FormValue("model"))
		w.Write([]byte(`{"text": "ok"}`))
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "note.wav")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o600))

	c, _ := transcription.New("k")
	text, err := c.WithBaseURL(ts.URL).WithModel("whisper-large").TranscribeFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)

	_, err = c.TranscribeFile(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}

func TestTranscribeErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key", "type": "auth"}}`))
	}))
	defer ts.Close()

	c, _ := transcription.New("bad")
	c.WithBaseURL(ts.URL)

	_, err := c.Transcribe(context.Background(), "a.mp3", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")

	_, err = c.Transcribe(context.Background(), "a.mp3", strings.NewReader(""))
	assert.True(t, errors.Is(err, transcription.ErrEmptyAudio))
}
