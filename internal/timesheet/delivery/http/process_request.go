package http

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var audioExtensions = map[string]struct{}{
	".mp3": {}, ".mp4": {}, ".mpeg": {}, ".mpga": {}, ".m4a": {},
	".wav": {}, ".webm": {}, ".ogg": {}, ".flac": {},
}

// processTranscriptReq binds and validates a JSON transcript body.
func (h *handler) processTranscriptReq(c *gin.Context) (transcriptReq, error) {
	var req transcriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidJSONBody
	}
	return req, req.validate()
}

// processUploadReq stores the multipart "file" field under the upload directory with a
// generated name and returns its path.
func (h *handler) processUploadReq(c *gin.Context) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", errFileRequired
	}
	if fh.Size > h.maxUploadBytes {
		return "", errFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := audioExtensions[ext]; !ok {
		return "", errInvalidAudio
	}

	dst := filepath.Join(h.uploadDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return dst, nil
}
