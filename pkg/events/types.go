// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// The frontend keeps no local state worth diffing: every event is a
// signal to reload the affected view over REST. Persistent events are
// written to the events table in the same transaction as the NOTIFY so
// reconnecting clients can catch up without missing anything.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Case data changed: timeline, milestone dates, core fields.
	// Clients reload the case detail view.
	EventTypeCaseUpdated = "case.updated"

	// A milestone slot was created or its date changed.
	EventTypeMilestoneUpdated = "milestone.updated"

	// A rendered filing was relayed to the court.
	EventTypeFilingSubmitted = "filing.submitted"

	// A suggestion was submitted; the suggestion list must reload.
	EventTypeSuggestionSubmitted = "suggestion.submitted"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Background document analysis finished. Purely advisory.
	EventTypeAnalysisCompleted = "analysis.completed"
)

// GlobalCasesChannel is the channel for case-level status events.
// The case list page subscribes to this for real-time updates.
const GlobalCasesChannel = "cases"

// CaseChannel returns the channel name for a specific case's events.
// Format: "case:{case_id}"
func CaseChannel(caseID string) string {
	return "case:" + caseID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "case:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
