package http

import (
	"github.com/gin-gonic/gin"

	"voice-timesheet/pkg/response"
)

// Upload godoc
// @Summary     Upload a recorded workday summary
// @Description Stores the audio file, transcribes it, resolves the spoken tasks to billing codes and appends them to the timesheet.
// @Tags        Timesheet
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Audio recording"
// @Success     200  {object} uploadResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "File too large"
// @Failure     422  {object} response.Resp "Unparseable date or zero hours"
// @Failure     502  {object} response.Resp "Transcription or timesheet write failed"
// @Failure     503  {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/timesheet/upload [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	path, err := h.processUploadReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.ProcessAudio(ctx, toProcessAudioInput(path))
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessAudio: %v", err)
		h.respondError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUploadResp(output))
}

// Preview godoc
// @Summary     Preview timesheet entries for a transcript
// @Description Extracts the date and task mentions, resolves billing codes and normalizes to an 8 hour day. Nothing is written.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       body body transcriptReq true "Transcript"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unparseable date or zero hours"
// @Failure     503  {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/timesheet/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		h.respondError(c, h.mapRequestError(err))
		return
	}

	output, err := h.uc.Preview(ctx, req.toPreviewInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		h.respondError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Submit godoc
// @Summary     Submit a transcript to the timesheet
// @Description Same as preview, then appends the entries to the timesheet in mention order.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       body body transcriptReq true "Transcript"
// @Success     200  {object} submitResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Unparseable date or zero hours"
// @Failure     502  {object} response.Resp "Timesheet write failed"
// @Failure     503  {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/timesheet/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		h.respondError(c, h.mapRequestError(err))
		return
	}

	output, err := h.uc.Submit(ctx, req.toSubmitInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		h.respondError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubmitResp(output))
}
