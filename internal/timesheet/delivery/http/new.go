package http

import (
	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/log"
)

// DefaultMaxUploadBytes bounds an audio upload when no limit is configured.
const DefaultMaxUploadBytes = 25 << 20

type handler struct {
	l              log.Logger
	uc             timesheet.UseCase
	uploadDir      string
	maxUploadBytes int64
}

// New creates the timesheet HTTP handler. Uploaded recordings are stored under uploadDir.
func New(l log.Logger, uc timesheet.UseCase, uploadDir string, maxUploadBytes int64) *handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &handler{
		l:              l,
		uc:             uc,
		uploadDir:      uploadDir,
		maxUploadBytes: maxUploadBytes,
	}
}
