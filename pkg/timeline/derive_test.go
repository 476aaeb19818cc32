package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := testNow.AddDate(0, 0, -n)
	return &t
}

func TestDerive_EmptyTimeline(t *testing.T) {
	d := Derive(nil, testNow)

	require.Len(t, d.Milestones, len(CanonicalOrder))
	require.Len(t, d.Segments, len(CanonicalOrder)-1)

	// First milestone is current and blue (nothing to measure against),
	// everything after it gray.
	assert.True(t, d.Milestones[0].Current)
	assert.Equal(t, ColorBlue, d.Milestones[0].Color)
	for _, st := range d.Milestones[1:] {
		assert.Equal(t, ColorGray, st.Color)
		assert.False(t, st.Current)
	}
	for _, seg := range d.Segments {
		assert.Equal(t, ColorGray, seg)
	}
}

func TestDerive_CurrentStageWithinThreshold(t *testing.T) {
	events := []Event{
		{Milestone: MilestoneDocuments, OccurredAt: daysAgo(15)},
		{Milestone: MilestoneDemandText, OccurredAt: daysAgo(5)},
	}
	d := Derive(events, testNow)

	// Dispatch is the first undated milestone.
	assert.True(t, d.Milestones[2].Current)
	assert.Equal(t, ColorBlue, d.Milestones[2].Color)
	assert.False(t, d.Milestones[2].Overdue)

	// Completed milestones judged by gap to next dated one (10 days).
	assert.Equal(t, ColorGreen, d.Milestones[0].Color)
}

func TestDerive_CurrentStageOverdue(t *testing.T) {
	events := []Event{
		{Milestone: MilestoneDocuments, OccurredAt: daysAgo(40)},
	}
	d := Derive(events, testNow)

	// 40 days waiting on the demand text: red with the overdue marker.
	assert.True(t, d.Milestones[1].Current)
	assert.Equal(t, ColorRed, d.Milestones[1].Color)
	assert.True(t, d.Milestones[1].Overdue)
}

func TestDerive_UndatedTerminalMeasuredFromLastDated(t *testing.T) {
	events := []Event{
		{Milestone: MilestoneDocuments, OccurredAt: daysAgo(60)},
		{Milestone: MilestoneDemandText, OccurredAt: daysAgo(30)},
		{Milestone: MilestoneDispatch, OccurredAt: daysAgo(25)},
		{Milestone: MilestoneNotification, OccurredAt: daysAgo(21)},
		{Milestone: MilestoneDefense, OccurredAt: daysAgo(3)},
		{Milestone: MilestonePlaintiffAnswer, OccurredAt: daysAgo(2)},
	}
	d := Derive(events, testNow)

	// finished is the first undated slot, so it is current and measured
	// from plaintiff_answer two days ago.
	fin := d.Milestones[MilestoneFinished.Index()]
	assert.True(t, fin.Current)
	assert.Equal(t, ColorBlue, fin.Color)

	// documents -> demand_text was a 30-day gap: late completion.
	assert.Equal(t, ColorRed, d.Milestones[0].Color)
	// dispatch -> notification took 4 days: on time.
	assert.Equal(t, ColorGreen, d.Milestones[2].Color)
}

func TestDerive_AllDatedTightGapsNeverRed(t *testing.T) {
	events := make([]Event, len(CanonicalOrder))
	for i, m := range CanonicalOrder {
		events[i] = Event{Milestone: m, OccurredAt: daysAgo(5 * (len(CanonicalOrder) - i))}
	}
	d := Derive(events, testNow)

	for _, st := range d.Milestones {
		assert.NotEqual(t, ColorRed, st.Color, "milestone %s", st.Milestone)
		assert.False(t, st.Overdue)
	}
	// Fully dated timeline: finished is the current slot and never late.
	assert.True(t, d.Milestones[len(d.Milestones)-1].Current)
	assert.Equal(t, ColorGreen, d.Milestones[len(d.Milestones)-1].Color)
}

func TestDerive_SegmentsTealBeforeCurrent(t *testing.T) {
	events := []Event{
		{Milestone: MilestoneDocuments, OccurredAt: daysAgo(10)},
		{Milestone: MilestoneDemandText, OccurredAt: daysAgo(8)},
		{Milestone: MilestoneDispatch, OccurredAt: daysAgo(6)},
	}
	d := Derive(events, testNow)

	// Current index is 3 (notification). Segments whose right-hand
	// milestone sits before index 3 stay teal.
	assert.Equal(t, ColorTeal, d.Segments[0])
	assert.Equal(t, ColorTeal, d.Segments[1])
	assert.Equal(t, ColorGray, d.Segments[2])
	assert.Equal(t, ColorGray, d.Segments[3])
}

func TestDerive_EventWithAbsentDateStaysPending(t *testing.T) {
	events := []Event{
		{Milestone: MilestoneDocuments, OccurredAt: daysAgo(2)},
		{Milestone: MilestoneDemandText}, // slot exists, no date yet
	}
	d := Derive(events, testNow)

	assert.True(t, d.Milestones[1].Current)
	assert.Equal(t, ColorBlue, d.Milestones[1].Color)
}

func TestDerive_Idempotent(t *testing.T) {
	events := []Event{
		{Milestone: MilestoneDocuments, OccurredAt: daysAgo(25)},
		{Milestone: MilestoneDemandText, OccurredAt: daysAgo(1)},
	}

	first := Derive(events, testNow)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Derive(events, testNow))
	}

	// Event order in the input slice is irrelevant.
	reversed := []Event{events[1], events[0]}
	assert.Equal(t, first, Derive(reversed, testNow))
}

func TestMilestone_Index(t *testing.T) {
	assert.Equal(t, 0, MilestoneDocuments.Index())
	assert.Equal(t, 6, MilestoneFinished.Index())
	assert.Equal(t, -1, Milestone("bogus").Index())
	assert.False(t, Milestone("bogus").Valid())
	assert.True(t, MilestoneDefense.Valid())
}
