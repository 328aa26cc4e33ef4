package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
)

// recordingLogger keeps formatted Info and Warn lines.
type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (m *recordingLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *recordingLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *recordingLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, fmt.Sprintf(template, arg...))
}
func (m *recordingLogger) Warn(ctx context.Context, arg ...any) {}
func (m *recordingLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *recordingLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *recordingLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockCatalogRepo struct {
	catalog timesheet.Catalog
	err     error
}

func (m *mockCatalogRepo) LoadCatalog(context.Context) (timesheet.Catalog, error) {
	return m.catalog, m.err
}

type mockTimesheetRepo struct {
	err   error
	calls []repository.AppendEntriesOptions
}

func (m *mockTimesheetRepo) AppendEntries(_ context.Context, opt repository.AppendEntriesOptions) error {
	m.calls = append(m.calls, opt)
	return m.err
}

type mockTranscriber struct {
	text    string
	err     error
	gotPath string
}

func (m *mockTranscriber) TranscribeFile(_ context.Context, path string) (string, error) {
	m.gotPath = path
	return m.text, m.err
}

func (m *mockTranscriber) Transcribe(context.Context, string, io.Reader) (string, error) {
	return m.text, m.err
}
