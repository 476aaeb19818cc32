package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/andeslegal/cobranza/test/database"
)

func insertEvent(t *testing.T, ctx context.Context, svc *EventService, caseID, channel string, payload map[string]any) int {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var id int
	err = svc.db.QueryRowContext(ctx,
		`INSERT INTO events (case_id, channel, payload, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		caseID, channel, raw, time.Now()).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.DB())
	ctx := context.Background()

	caseID := "case-1"
	channel := "case:" + caseID
	var ids []int
	for i := 0; i < 3; i++ {
		ids = append(ids, insertEvent(t, ctx, service, caseID, channel, map[string]any{
			"type":    "milestone.updated",
			"case_id": caseID,
			"seq":     float64(i),
		}))
	}
	insertEvent(t, ctx, service, "case-2", "case:case-2", map[string]any{
		"type": "case.updated", "case_id": "case-2",
	})

	t.Run("returns events after the cursor in order", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, ids[0], 100)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, ids[1], events[0].ID)
		assert.Equal(t, ids[2], events[1].ID)
		assert.Equal(t, "milestone.updated", events[0].Payload["type"])
		assert.Equal(t, caseID, events[0].CaseID)
	})

	t.Run("cursor zero returns everything on the channel", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 100)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("respects the limit", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, ids[0], events[0].ID)
	})

	t.Run("channels are isolated", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "case:case-2", 0, 100)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "case.updated", events[0].Payload["type"])
	})

	t.Run("unknown channel returns empty", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "case:nope", 0, 100)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.DB())
	ctx := context.Background()

	t.Run("removes a case's events", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			insertEvent(t, ctx, service, "case-a", "case:case-a", map[string]any{"type": "case.updated"})
		}
		insertEvent(t, ctx, service, "case-b", "case:case-b", map[string]any{"type": "case.updated"})

		n, err := service.CleanupCaseEvents(ctx, "case-a")
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		remaining, err := service.GetEventsSince(ctx, "case:case-b", 0, 100)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("removes orphaned events", func(t *testing.T) {
		c := newTestCase(t, ctx, client.Client)
		insertEvent(t, ctx, service, c.ID, "case:"+c.ID, map[string]any{"type": "case.updated"})
		insertEvent(t, ctx, service, "gone-case", "case:gone-case", map[string]any{"type": "case.updated"})

		n, err := service.CleanupOrphanedEvents(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)

		kept, err := service.GetEventsSince(ctx, "case:"+c.ID, 0, 100)
		require.NoError(t, err)
		assert.Len(t, kept, 1)
	})

	t.Run("rejects non-positive retention", func(t *testing.T) {
		_, err := service.CleanupOldEvents(ctx, 0)
		require.Error(t, err)
	})

	t.Run("drops events past retention", func(t *testing.T) {
		raw, err := json.Marshal(map[string]any{"type": "case.updated"})
		require.NoError(t, err)
		_, err = service.db.ExecContext(ctx,
			`INSERT INTO events (case_id, channel, payload, created_at) VALUES ($1, $2, $3, $4)`,
			"old-case", "case:old-case", raw, time.Now().Add(-48*time.Hour))
		require.NoError(t, err)

		n, err := service.CleanupOldEvents(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)

		left, err := service.GetEventsSince(ctx, "case:old-case", 0, 100)
		require.NoError(t, err)
		assert.Empty(t, left)
	})
}
