package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(CaseUpdatedPayload{
			Type:   EventTypeCaseUpdated,
			CaseID: "abc-123",
			Rol:    "C-1234-2026",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeCaseUpdated)
		assert.Contains(t, result, "abc-123")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(MilestoneUpdatedPayload{
			Type:      EventTypeMilestoneUpdated,
			CaseID:    "abc-123",
			EventID:   "evt-456",
			Milestone: strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Less(t, len(result), 8000)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, "abc-123")
		assert.Contains(t, result, "evt-456")
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	payload, _ := json.Marshal(FilingSubmittedPayload{
		Type:   EventTypeFilingSubmitted,
		CaseID: "abc-123",
		Kind:   "demand_text",
	})

	result, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, EventTypeFilingSubmitted, m["type"])
}

func TestInjectDBEventID_OversizedKeepsDBEventID(t *testing.T) {
	payload, _ := json.Marshal(map[string]any{
		"type":    EventTypeCaseUpdated,
		"case_id": "abc-123",
		"rol":     strings.Repeat("y", 8000),
	})

	result, err := injectDBEventIDAndTruncate(payload, 7)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, float64(7), m["db_event_id"])
	assert.Equal(t, "abc-123", m["case_id"])
}
