package events

// CaseUpdatedPayload is the payload for case.updated events.
// Published whenever a case's core fields or timeline change.
type CaseUpdatedPayload struct {
	Type      string `json:"type"`      // always EventTypeCaseUpdated
	CaseID    string `json:"case_id"`   // owning case
	Rol       string `json:"rol"`       // court docket number
	Status    string `json:"status"`    // active, finished
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// MilestoneUpdatedPayload is the payload for milestone.updated events.
// Published when a milestone slot is created or its date changes.
type MilestoneUpdatedPayload struct {
	Type       string `json:"type"`                  // always EventTypeMilestoneUpdated
	CaseID     string `json:"case_id"`               // owning case
	EventID    string `json:"event_id"`              // milestone slot UUID
	Milestone  string `json:"milestone"`             // documents, demand_text, ... finished
	OccurredAt string `json:"occurred_at,omitempty"` // RFC3339, empty while pending
	Timestamp  string `json:"timestamp"`             // RFC3339Nano
}

// FilingSubmittedPayload is the payload for filing.submitted events.
// Published after a rendered document was relayed to the court.
type FilingSubmittedPayload struct {
	Type      string `json:"type"`      // always EventTypeFilingSubmitted
	CaseID    string `json:"case_id"`   // owning case
	Kind      string `json:"kind"`      // demand_text, preliminary_measure, response
	Name      string `json:"name"`      // filing name shown to the user
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// SuggestionSubmittedPayload is the payload for suggestion.submitted events.
// Clients reload the suggestion list of the affected milestone slot.
type SuggestionSubmittedPayload struct {
	Type         string `json:"type"`          // always EventTypeSuggestionSubmitted
	CaseID       string `json:"case_id"`       // owning case
	EventID      string `json:"event_id"`      // milestone slot UUID
	SuggestionID string `json:"suggestion_id"` // submitted suggestion UUID
	Timestamp    string `json:"timestamp"`     // RFC3339Nano
}

// AnalysisCompletedPayload is the payload for analysis.completed transient
// events. Advisory only; nothing blocks on it.
type AnalysisCompletedPayload struct {
	Type      string  `json:"type"`      // always EventTypeAnalysisCompleted
	CaseID    string  `json:"case_id"`   // owning case
	Kind      string  `json:"kind"`      // demand_text, preliminary_measure
	Score     float64 `json:"score"`     // 0..1
	Findings  int     `json:"findings"`  // number of reported problems
	Timestamp string  `json:"timestamp"` // RFC3339Nano
}
