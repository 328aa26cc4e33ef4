package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-timesheet/internal/timesheet"
	pkgErrors "voice-timesheet/pkg/errors"
	"voice-timesheet/pkg/response"
)

var (
	errFileRequired    = pkgErrors.NewHTTPError(http.StatusBadRequest, "multipart field \"file\" is required")
	errFileTooLarge    = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "audio file is too large")
	errInvalidAudio    = pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported audio format")
	errInvalidJSONBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "body must be JSON {\"transcript\": \"...\"}")
)

// mapError translates use case errors into HTTP errors from pkg/errors.
// Unknown errors are returned as they are.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timesheet.ErrEmptyTranscript):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, timesheet.ErrEmptyTranscript.Error())
	case errors.Is(err, timesheet.ErrDateParse):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, stageMessage(err, timesheet.ErrDateParse))
	case errors.Is(err, timesheet.ErrDegenerateInput):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, timesheet.ErrDegenerateInput.Error())
	case errors.Is(err, timesheet.ErrEmptyCatalog):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, timesheet.ErrEmptyCatalog.Error())
	case errors.Is(err, timesheet.ErrCatalogLoad):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, timesheet.ErrCatalogLoad.Error())
	case errors.Is(err, timesheet.ErrNoTranscriber):
		return pkgErrors.NewHTTPError(http.StatusNotImplemented, timesheet.ErrNoTranscriber.Error())
	case errors.Is(err, timesheet.ErrTranscription):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, timesheet.ErrTranscription.Error())
	case errors.Is(err, timesheet.ErrPersist):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, timesheet.ErrPersist.Error())
	default:
		return err
	}
}

// stageMessage appends the offending substring of a StageError to the sentinel's text.
func stageMessage(err, sentinel error) string {
	var stageErr *timesheet.StageError
	if errors.As(err, &stageErr) && stageErr.Input != "" {
		return sentinel.Error() + ": " + stageErr.Input
	}
	return sentinel.Error()
}

// mapRequestError keeps HTTP errors raised while reading the request and maps the rest.
func (h *handler) mapRequestError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return h.mapError(err)
}

// respondError writes an HTTP error with its own status, anything else as 500 without details.
func (h *handler) respondError(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		response.Error(c, httpErr, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "timesheet.http: unexpected error: %v", err)
	response.InternalError(c, err)
}
