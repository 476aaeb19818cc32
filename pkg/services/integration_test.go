package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/timeline"
	testdb "github.com/andeslegal/cobranza/test/database"
)

// TestServiceIntegration drives one case through its whole lifecycle across
// all services: milestones, documents, suggestions and the event outbox.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	caseService := NewCaseService(client.Client)
	documentService := NewDocumentService(client.Client, newTestStorage(t))
	suggestionService := NewSuggestionService(client.Client)
	eventService := NewEventService(client.DB())

	cse, err := caseService.CreateCase(ctx, models.CreateCaseRequest{
		Rol:        "C-5510-2026",
		Court:      "4º Juzgado Civil de Santiago",
		DebtorName: "Agrícola Los Robles Ltda",
		DebtorRUT:  "78.456.123-9",
	})
	require.NoError(t, err)

	t.Run("milestones advance the timeline", func(t *testing.T) {
		base := time.Now().Add(-30 * 24 * time.Hour)
		for i, m := range []timeline.Milestone{
			timeline.MilestoneDocuments,
			timeline.MilestoneDemandText,
			timeline.MilestoneDispatch,
		} {
			_, err := caseService.UpsertMilestone(ctx, cse.ID, models.UpsertMilestoneRequest{
				Milestone:  m,
				OccurredAt: timePtr(base.Add(time.Duration(i) * 24 * time.Hour)),
			})
			require.NoError(t, err)
		}

		tl, err := caseService.GetTimeline(ctx, cse.ID)
		require.NoError(t, err)
		assert.False(t, tl.Finished)

		var current timeline.Milestone
		for _, st := range tl.Derived.Milestones {
			if st.Current {
				current = st.Milestone
			}
		}
		assert.Equal(t, timeline.MilestoneNotification, current)
	})

	t.Run("documents and suggestions attach to the case", func(t *testing.T) {
		doc := uploadEvidence(t, ctx, documentService, cse.ID, "pagare-1.pdf")
		assert.Equal(t, 0, doc.Position)

		slot, err := caseService.GetMilestoneSlot(ctx, cse.ID, timeline.MilestoneDemandText)
		require.NoError(t, err)

		sg, err := suggestionService.CreateSuggestion(ctx, models.CreateSuggestionRequest{
			CaseEventID: slot.ID,
			Name:        "Demanda ejecutiva",
			DocType:     models.SuggestionResponse,
			Content: map[string]any{
				"heading":   "EN LO PRINCIPAL: CONTESTA DEMANDA",
				"arguments": []string{"La deuda se encuentra íntegramente pagada."},
				"prayer":    "RUEGO A US. tenerla por contestada.",
			},
			Score:       0.88,
		})
		require.NoError(t, err)

		_, err = suggestionService.MarkSubmitted(ctx, sg.ID, "cases/x/filing.pdf")
		require.NoError(t, err)

		pending, err := suggestionService.CountUnsubmitted(ctx, slot.ID)
		require.NoError(t, err)
		assert.Zero(t, pending)
	})

	t.Run("finishing the case flips its status", func(t *testing.T) {
		_, err := caseService.UpsertMilestone(ctx, cse.ID, models.UpsertMilestoneRequest{
			Milestone:  timeline.MilestoneFinished,
			OccurredAt: timePtr(time.Now()),
		})
		require.NoError(t, err)

		tl, err := caseService.GetTimeline(ctx, cse.ID)
		require.NoError(t, err)
		assert.True(t, tl.Finished)
	})

	t.Run("deleting the case leaves no orphaned outbox events", func(t *testing.T) {
		_, err := client.DB().ExecContext(ctx,
			`INSERT INTO events (case_id, channel, payload, created_at) VALUES ($1, $2, '{}', now())`,
			cse.ID, "case:"+cse.ID)
		require.NoError(t, err)

		require.NoError(t, caseService.SoftDeleteCase(ctx, cse.ID))

		// Soft delete keeps the row, so the event is not yet orphaned.
		removed, err := eventService.CleanupOrphanedEvents(ctx)
		require.NoError(t, err)
		assert.Zero(t, removed)

		removed, err = eventService.CleanupCaseEvents(ctx, cse.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
	})
}
