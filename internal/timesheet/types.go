package timesheet

// RawTaskMention is one "<quantity> hours on <task>" fragment found in a transcript.
type RawTaskMention struct {
	TaskText string  `json:"task"`
	Hours    float64 `json:"hours"`
}

// ReferenceEntry is one billable row of the reference catalog.
type ReferenceEntry struct {
	Description string `json:"description" yaml:"description"`
	Note        string `json:"note,omitempty" yaml:"note"`
	BillingID   string `json:"wbs_element" yaml:"wbs_element"`
}

// Catalog is an ordered, read-only list of ReferenceEntry. Matching is positional,
// so the zero-based index of an entry is its identity for tie breaking.
// A Catalog can be shared between goroutines.
type Catalog struct {
	entries []ReferenceEntry
}

// NewCatalog copies entries into a new Catalog.
func NewCatalog(entries []ReferenceEntry) Catalog {
	cp := make([]ReferenceEntry, len(entries))
	copy(cp, entries)
	return Catalog{entries: cp}
}

// Len returns the number of rows.
func (c Catalog) Len() int { return len(c.entries) }

// At returns the row at position i.
func (c Catalog) At(i int) ReferenceEntry { return c.entries[i] }

// Entries returns a copy of all rows.
func (c Catalog) Entries() []ReferenceEntry {
	cp := make([]ReferenceEntry, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// ResolvedEntry is a task mention bound to its best catalog match.
// Date is nil when the transcript mentions no date.
type ResolvedEntry struct {
	Date               *string `json:"date"`
	BillingID          string  `json:"chargecode_id"`
	Hours              float64 `json:"hours"`
	MatchedDescription string  `json:"matched_with"`
	Score              float64 `json:"score"`
}

// Row flattens the entry into the column order of the timesheet:
// date, billing id, hours, matched description, score.
func (e ResolvedEntry) Row() []any {
	var date any = ""
	if e.Date != nil {
		date = *e.Date
	}
	return []any{date, e.BillingID, e.Hours, e.MatchedDescription, e.Score}
}

// ExtractResult is the output of one run of the extraction engine.
type ExtractResult struct {
	Date    *string
	Tasks   []RawTaskMention
	Entries []ResolvedEntry
}

// --- UseCase Inputs ---

type PreviewInput struct {
	Transcript string
}

type SubmitInput struct {
	Transcript string
}

type ProcessAudioInput struct {
	FilePath string
}

// --- UseCase Outputs ---

type PreviewOutput struct {
	Date    *string
	Tasks   []RawTaskMention
	Entries []ResolvedEntry
}

type SubmitOutput struct {
	RunID   string
	Date    *string
	Tasks   []RawTaskMention
	Entries []ResolvedEntry
}

type ProcessAudioOutput struct {
	RunID         string
	Transcription string
	Date          *string
	Tasks         []RawTaskMention
	Entries       []ResolvedEntry
}
