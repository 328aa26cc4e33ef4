package http

import (
	"strings"

	"voice-timesheet/internal/timesheet"
)

// --- Request DTOs ---

type transcriptReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

func (r transcriptReq) validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return timesheet.ErrEmptyTranscript
	}
	return nil
}

func (r transcriptReq) toPreviewInput() timesheet.PreviewInput {
	return timesheet.PreviewInput{Transcript: r.Transcript}
}

func (r transcriptReq) toSubmitInput() timesheet.SubmitInput {
	return timesheet.SubmitInput{Transcript: r.Transcript}
}

func toProcessAudioInput(path string) timesheet.ProcessAudioInput {
	return timesheet.ProcessAudioInput{FilePath: path}
}

// --- Response DTOs ---

type taskResp struct {
	Task  string  `json:"task"`
	Hours float64 `json:"hours"`
}

type entryResp struct {
	Date         *string `json:"date"`
	ChargecodeID string  `json:"chargecode_id"`
	Hours        float64 `json:"hours"`
	MatchedWith  string  `json:"matched_with"`
	Score        float64 `json:"score"`
}

func newTaskResps(tasks []timesheet.RawTaskMention) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = taskResp{Task: t.TaskText, Hours: t.Hours}
	}
	return out
}

func newEntryResps(entries []timesheet.ResolvedEntry) []entryResp {
	out := make([]entryResp, len(entries))
	for i, e := range entries {
		out[i] = entryResp{
			Date:         e.Date,
			ChargecodeID: e.BillingID,
			Hours:        e.Hours,
			MatchedWith:  e.MatchedDescription,
			Score:        e.Score,
		}
	}
	return out
}

type previewResp struct {
	Date    *string     `json:"date"`
	Tasks   []taskResp  `json:"tasks"`
	Entries []entryResp `json:"entries"`
}

func (h *handler) newPreviewResp(out timesheet.PreviewOutput) previewResp {
	return previewResp{
		Date:    out.Date,
		Tasks:   newTaskResps(out.Tasks),
		Entries: newEntryResps(out.Entries),
	}
}

type submitResp struct {
	RunID   string      `json:"run_id,omitempty"`
	Date    *string     `json:"date"`
	Tasks   []taskResp  `json:"tasks"`
	Entries []entryResp `json:"entries"`
}

func (h *handler) newSubmitResp(out timesheet.SubmitOutput) submitResp {
	return submitResp{
		RunID:   out.RunID,
		Date:    out.Date,
		Tasks:   newTaskResps(out.Tasks),
		Entries: newEntryResps(out.Entries),
	}
}

type uploadResp struct {
	RunID         string      `json:"run_id,omitempty"`
	Transcription string      `json:"transcription"`
	Date          *string     `json:"date"`
	Tasks         []taskResp  `json:"tasks"`
	Entries       []entryResp `json:"entries"`
}

func (h *handler) newUploadResp(out timesheet.ProcessAudioOutput) uploadResp {
	return uploadResp{
		RunID:         out.RunID,
		Transcription: out.Transcription,
		Date:          out.Date,
		Tasks:         newTaskResps(out.Tasks),
		Entries:       newEntryResps(out.Entries),
	}
}
