package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-timesheet/internal/timesheet"
)

const workday = "Today is 23/09/2025. I spent 2 hours on data analysis and 2 hours on calls."

func testCatalog() timesheet.Catalog {
	return timesheet.NewCatalog([]timesheet.ReferenceEntry{
		{Description: "Data Analysis", BillingID: "WBS-100"},
		{Description: "Client Calls", BillingID: "WBS-200"},
	})
}

type fixture struct {
	uc          *implUseCase
	l           *recordingLogger
	catalog     *mockCatalogRepo
	sheet       *mockTimesheetRepo
	transcriber *mockTranscriber
}

func newFixture() fixture {
	f := fixture{
		l:           &recordingLogger{},
		catalog:     &mockCatalogRepo{catalog: testCatalog()},
		sheet:       &mockTimesheetRepo{},
		transcriber: &mockTranscriber{text: workday},
	}
	f.uc = New(f.l, f.catalog, f.sheet, f.transcriber)
	f.uc.newRunID = func() string { return "run-1" }
	return f
}

func TestPreview(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Preview(context.Background(), timesheet.PreviewInput{Transcript: workday})
	require.NoError(t, err)

	require.NotNil(t, out.Date)
	assert.Equal(t, "2025-09-23", *out.Date)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, "WBS-100", out.Entries[0].BillingID)
	assert.Equal(t, 4.0, out.Entries[0].Hours)
	assert.Empty(t, f.sheet.calls)
}

func TestPreviewErrors(t *testing.T) {
	t.Run("empty transcript", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Preview(context.Background(), timesheet.PreviewInput{Transcript: "  "})
		assert.True(t, errors.Is(err, timesheet.ErrEmptyTranscript))
	})

	t.Run("catalog load failure", func(t *testing.T) {
		f := newFixture()
		f.catalog.err = errors.New("sheet unavailable")
		_, err := f.uc.Preview(context.Background(), timesheet.PreviewInput{Transcript: workday})
		assert.True(t, errors.Is(err, timesheet.ErrCatalogLoad))
	})

	t.Run("empty catalog", func(t *testing.T) {
		f := newFixture()
		f.catalog.catalog = timesheet.NewCatalog(nil)
		_, err := f.uc.Preview(context.Background(), timesheet.PreviewInput{Transcript: workday})
		assert.True(t, errors.Is(err, timesheet.ErrEmptyCatalog))
	})
}

func TestSubmit(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Submit(context.Background(), timesheet.SubmitInput{Transcript: workday})
	require.NoError(t, err)

	assert.Equal(t, "run-1", out.RunID)
	require.Len(t, f.sheet.calls, 1)
	assert.Equal(t, "run-1", f.sheet.calls[0].RunID)
	assert.Equal(t, out.Entries, f.sheet.calls[0].Entries)
	assert.Contains(t, f.l.infos, "4.00h → WBS-100 (Data Analysis, score=100.0)")
	assert.Contains(t, f.l.infos, "4.00h → WBS-200 (Client Calls, score=100.0)")
}

func TestSubmitPersistsNothingOnFailure(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantErr    error
	}{
		{name: "invalid date", transcript: "On 32/13/2024 I spent 2 hours on calls", wantErr: timesheet.ErrDateParse},
		{name: "zero hours", transcript: "zero hours on calls", wantErr: timesheet.ErrDegenerateInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.Submit(context.Background(), timesheet.SubmitInput{Transcript: tt.transcript})
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Empty(t, f.sheet.calls)
		})
	}
}

func TestSubmitNoTasks(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Submit(context.Background(), timesheet.SubmitInput{Transcript: "On 1/2/2024 I was on leave."})
	require.NoError(t, err)

	assert.Empty(t, out.RunID)
	assert.Empty(t, out.Entries)
	require.NotNil(t, out.Date)
	assert.Empty(t, f.sheet.calls)
	require.Len(t, f.l.warns, 1)
	assert.Contains(t, f.l.warns[0], timesheet.ErrNoTasksExtracted.Error())
}

func TestSubmitPersistError(t *testing.T) {
	f := newFixture()
	f.sheet.err = errors.New("quota exceeded")

	_, err := f.uc.Submit(context.Background(), timesheet.SubmitInput{Transcript: workday})
	assert.True(t, errors.Is(err, timesheet.ErrPersist))
}

func TestProcessAudio(t *testing.T) {
	f := newFixture()

	out, err := f.uc.ProcessAudio(context.Background(), timesheet.ProcessAudioInput{FilePath: "/tmp/day.mp3"})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/day.mp3", f.transcriber.gotPath)
	assert.Equal(t, workday, out.Transcription)
	assert.Equal(t, "run-1", out.RunID)
	assert.Equal(t, []timesheet.RawTaskMention{
		{TaskText: "data analysis", Hours: 2},
		{TaskText: "calls", Hours: 2},
	}, out.Tasks)
	assert.Len(t, f.sheet.calls, 1)
}

func TestProcessAudioErrors(t *testing.T) {
	t.Run("transcriber failure", func(t *testing.T) {
		f := newFixture()
		f.transcriber.err = errors.New("timeout")
		_, err := f.uc.ProcessAudio(context.Background(), timesheet.ProcessAudioInput{FilePath: "a.mp3"})
		assert.True(t, errors.Is(err, timesheet.ErrTranscription))
		assert.Empty(t, f.sheet.calls)
	})

	t.Run("no transcriber", func(t *testing.T) {
		f := newFixture()
		uc := New(f.l, f.catalog, f.sheet, nil)
		_, err := uc.ProcessAudio(context.Background(), timesheet.ProcessAudioInput{FilePath: "a.mp3"})
		assert.True(t, errors.Is(err, timesheet.ErrNoTranscriber))
	})

	t.Run("silent recording", func(t *testing.T) {
		f := newFixture()
		f.transcriber.text = ""
		_, err := f.uc.ProcessAudio(context.Background(), timesheet.ProcessAudioInput{FilePath: "a.mp3"})
		assert.True(t, errors.Is(err, timesheet.ErrEmptyTranscript))
	})
}
