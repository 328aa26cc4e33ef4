package usecase

import (
	"github.com/google/uuid"

	"voice-timesheet/internal/timesheet/extractor"
	"voice-timesheet/internal/timesheet/repository"
	"voice-timesheet/pkg/log"
	"voice-timesheet/pkg/transcription"
)

type implUseCase struct {
	l             log.Logger
	extractor     *extractor.Extractor
	catalogRepo   repository.CatalogRepository
	timesheetRepo repository.TimesheetRepository
	transcriber   transcription.ITranscriber
	newRunID      func() string
}

// New creates the timesheet UseCase. transcriber may be nil, in which case ProcessAudio
// fails with timesheet.ErrNoTranscriber.
func New(
	l log.Logger,
	catalogRepo repository.CatalogRepository,
	timesheetRepo repository.TimesheetRepository,
	transcriber transcription.ITranscriber,
) *implUseCase {
	return &implUseCase{
		l:             l,
		extractor:     extractor.New(),
		catalogRepo:   catalogRepo,
		timesheetRepo: timesheetRepo,
		transcriber:   transcriber,
		newRunID:      uuid.NewString,
	}
}
