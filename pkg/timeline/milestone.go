// Package timeline classifies a collection case's milestone history into
// per-milestone and per-segment statuses for the case progress bar.
// Derivation is pure: identical inputs always yield identical output.
package timeline

import "time"

// Milestone identifies one slot of the fixed case timeline.
type Milestone string

// Timeline milestones in canonical order.
const (
	MilestoneDocuments       Milestone = "documents"
	MilestoneDemandText      Milestone = "demand_text"
	MilestoneDispatch        Milestone = "dispatch"
	MilestoneNotification    Milestone = "notification"
	MilestoneDefense         Milestone = "defense"
	MilestonePlaintiffAnswer Milestone = "plaintiff_answer"
	MilestoneFinished        Milestone = "finished"
)

// CanonicalOrder is the fixed milestone sequence. A case owns at most one
// event per milestone; position is defined by this slice, never by the
// arrival order of events.
var CanonicalOrder = []Milestone{
	MilestoneDocuments,
	MilestoneDemandText,
	MilestoneDispatch,
	MilestoneNotification,
	MilestoneDefense,
	MilestonePlaintiffAnswer,
	MilestoneFinished,
}

// Valid reports whether m names a known milestone.
func (m Milestone) Valid() bool {
	for _, known := range CanonicalOrder {
		if m == known {
			return true
		}
	}
	return false
}

// Index returns m's position in the canonical order, or -1 if unknown.
func (m Milestone) Index() int {
	for i, known := range CanonicalOrder {
		if m == known {
			return i
		}
	}
	return -1
}

// Event is one dated (or not yet dated) milestone of a case.
type Event struct {
	Milestone  Milestone
	OccurredAt *time.Time
}
