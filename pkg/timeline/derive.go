package timeline

import "time"

// OnTimeThresholdDays is the number of days a stage may run before it is
// considered overdue. Hardcoded today; if courts with different procedural
// deadlines are ever onboarded this becomes per-court configuration.
const OnTimeThresholdDays = 20

// Color is the visual classification of a milestone or connecting segment.
type Color string

// Milestone and segment colors.
const (
	ColorGray  Color = "gray"  // future milestone / inactive segment
	ColorBlue  Color = "blue"  // current milestone, within threshold
	ColorGreen Color = "green" // completed on time
	ColorRed   Color = "red"   // threshold exceeded
	ColorTeal  Color = "teal"  // segment left of the current milestone
)

// Status is the derived classification of a single milestone.
type Status struct {
	Milestone  Milestone  `json:"milestone"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
	Color      Color      `json:"color"`
	Overdue    bool       `json:"overdue"`
	Current    bool       `json:"current"`
}

// Derived is the full classification of a case timeline: one Status per
// canonical milestone and one segment color between each adjacent pair.
type Derived struct {
	Milestones []Status `json:"milestones"`
	Segments   []Color  `json:"segments"`
}

// Derive classifies the sparse event list against the canonical milestone
// order at the given instant. It has no side effects and reads no state
// beyond its arguments.
func Derive(events []Event, now time.Time) Derived {
	dates := make([]*time.Time, len(CanonicalOrder))
	for _, ev := range events {
		if idx := ev.Milestone.Index(); idx >= 0 {
			dates[idx] = ev.OccurredAt
		}
	}

	current := currentIndex(dates)

	statuses := make([]Status, len(CanonicalOrder))
	for i, m := range CanonicalOrder {
		st := Status{Milestone: m, OccurredAt: dates[i]}

		switch {
		case i > current:
			st.Color = ColorGray

		case i == current:
			st.Current = true
			st.Color, st.Overdue = classifyCurrent(dates, i, now)

		default:
			st.Color = classifyCompleted(dates, i)
		}
		statuses[i] = st
	}

	segments := make([]Color, len(CanonicalOrder)-1)
	for i := range segments {
		// Segment i joins milestones i and i+1; it goes gray once its
		// right-hand milestone reaches the current stage.
		if i+1 >= current {
			segments[i] = ColorGray
		} else {
			segments[i] = ColorTeal
		}
	}

	return Derived{Milestones: statuses, Segments: segments}
}

// currentIndex returns the index of the first undated milestone, or the
// last dated one when every slot has a date.
func currentIndex(dates []*time.Time) int {
	for i, d := range dates {
		if d == nil {
			return i
		}
	}
	return len(dates) - 1
}

// classifyCurrent colors the active milestone. An undated current milestone
// is measured from the last dated milestone before it; a dated one from its
// own date. The terminal milestone is never judged late.
func classifyCurrent(dates []*time.Time, i int, now time.Time) (Color, bool) {
	if CanonicalOrder[i] == MilestoneFinished && dates[i] != nil {
		return ColorGreen, false
	}

	ref := dates[i]
	if ref == nil {
		for j := i - 1; j >= 0; j-- {
			if dates[j] != nil {
				ref = dates[j]
				break
			}
		}
	}
	if ref == nil {
		// Nothing dated yet: the case just opened, nothing to measure against.
		return ColorBlue, false
	}

	if daysBetween(*ref, now) > OnTimeThresholdDays {
		return ColorRed, true
	}
	return ColorBlue, false
}

// classifyCompleted colors a milestone before the current stage by the gap
// to the next dated milestone.
func classifyCompleted(dates []*time.Time, i int) Color {
	if dates[i] == nil {
		return ColorGray
	}
	for j := i + 1; j < len(dates); j++ {
		if dates[j] != nil {
			if daysBetween(*dates[i], *dates[j]) > OnTimeThresholdDays {
				return ColorRed
			}
			return ColorGreen
		}
	}
	// No later dated milestone to judge against.
	return ColorGreen
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
