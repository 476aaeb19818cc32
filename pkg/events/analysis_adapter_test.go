package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/test/util"
)

// The analysis.completed event is transient, so the assertion has to happen
// on the NOTIFY wire itself: a dedicated connection LISTENs on the case
// channel and receives what the adapter broadcasts.
func TestAnalysisPublisher_BroadcastsNotify(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	const caseID = "case-analysis-1"
	channel := CaseChannel(caseID)

	conn, err := pgx.Connect(ctx, util.GetBaseConnectionString(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(ctx) })

	_, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize())
	require.NoError(t, err)

	adapter := NewAnalysisPublisher(NewEventPublisher(db))
	adapter.AnalysisCompleted(ctx, caseID, models.DocKindDemand, &models.AnalysisResult{
		Score: 0.85,
		Findings: []models.Finding{
			{Severity: "warning", Message: "falta el domicilio del demandado"},
			{Severity: "info", Message: "revisar la cuantía"},
		},
	})

	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	notification, err := conn.WaitForNotification(waitCtx)
	require.NoError(t, err)
	assert.Equal(t, channel, notification.Channel)

	var payload AnalysisCompletedPayload
	require.NoError(t, json.Unmarshal([]byte(notification.Payload), &payload))
	assert.Equal(t, EventTypeAnalysisCompleted, payload.Type)
	assert.Equal(t, caseID, payload.CaseID)
	assert.Equal(t, string(models.DocKindDemand), payload.Kind)
	assert.Equal(t, 0.85, payload.Score)
	assert.Equal(t, 2, payload.Findings)
	assert.NotEmpty(t, payload.Timestamp)

	// Transient: nothing lands in the events table.
	var count int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT count(*) FROM events WHERE case_id = $1", caseID).Scan(&count))
	assert.Equal(t, 0, count)
}
