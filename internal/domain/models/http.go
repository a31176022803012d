package models

// EntryRequest is the inbound payload for one conversational turn.
type EntryRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// EntryResponse reports the outcome of a turn: either the fields still
// missing, or the finalized record plus the model's acknowledgement.
type EntryResponse struct {
	Status  string           `json:"status"`
	Missing []string         `json:"missing,omitempty"`
	Reply   string           `json:"reply,omitempty"`
	Record  *FinalizedRecord `json:"record,omitempty"`
}

// EntryListResponse exposes every record stored so far this session.
type EntryListResponse struct {
	Count   int               `json:"count"`
	Records []FinalizedRecord `json:"records"`
}

// ReminderResponse carries the advisory end-of-day reminder signal.
type ReminderResponse struct {
	Due     bool   `json:"due"`
	Message string `json:"message,omitempty"`
}
