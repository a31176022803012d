package models

// ChildNames lists the three pupils whose Friday marks are collected, in
// the fixed order used for missing-field messages and report rendering.
var ChildNames = []string{"muhammad", "abubakar", "hafsa"}

// Field identifiers surfaced to the user while a record is incomplete.
const (
	FieldDate      = "date"
	FieldArrival   = "arrival"
	FieldDeparture = "departure"
	FieldTopics    = "topics"
)

// MarkField derives the missing-field identifier for a child's Friday mark.
func MarkField(child string) string {
	return child + "_marks"
}

// OngoingRecord is the mutable daily-log entry being assembled across user
// turns. Empty strings mean "not provided yet". Mark values are kept as the
// raw digit strings the extractor captured; the nominal 0-20 range is not
// enforced.
type OngoingRecord struct {
	Date      string
	Arrival   string
	Departure string
	Topics    string
	IsFriday  bool
	Marks     map[string]string
}

// NewOngoingRecord returns a fully-empty record ready for extraction.
func NewOngoingRecord() OngoingRecord {
	return OngoingRecord{Marks: make(map[string]string)}
}

// Snapshot freezes the record into its finalized form. The marks map is
// copied so later turns cannot reach back into stored records.
func (r OngoingRecord) Snapshot() FinalizedRecord {
	marks := make(map[string]string, len(r.Marks))
	for child, mark := range r.Marks {
		marks[child] = mark
	}
	return FinalizedRecord{
		Date:      r.Date,
		Arrival:   r.Arrival,
		Departure: r.Departure,
		Topics:    r.Topics,
		IsFriday:  r.IsFriday,
		Marks:     marks,
	}
}

// FinalizedRecord is the immutable snapshot of a completed daily log.
// Records are created once, appended to the store, and never edited or
// removed afterwards.
type FinalizedRecord struct {
	Date      string            `json:"date"`
	Arrival   string            `json:"arrival"`
	Departure string            `json:"departure"`
	Topics    string            `json:"topics"`
	IsFriday  bool              `json:"is_friday"`
	Marks     map[string]string `json:"marks,omitempty"`
}

// Mark returns the stored mark for a child, empty when absent.
func (r FinalizedRecord) Mark(child string) string {
	return r.Marks[child]
}
