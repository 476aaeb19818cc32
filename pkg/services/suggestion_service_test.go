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

func TestSuggestionService_CreateSuggestion(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSuggestionService(client.Client)
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)
	slot := newTestMilestone(t, ctx, client.Client, c.ID, timeline.MilestoneDefense, timePtr(time.Now()))

	t.Run("creates a scored suggestion", func(t *testing.T) {
		sg, err := service.CreateSuggestion(ctx, models.CreateSuggestionRequest{
			CaseEventID: slot.ID,
			Name:        "Contestación de excepciones",
			DocType:     models.SuggestionExceptionsResponse,
			Content: map[string]any{
				"exceptions": []any{map[string]any{"title": "Prescripción", "argument": "..."}},
				"prayer":     "rechazar las excepciones",
			},
			Score: 0.82,
		})
		require.NoError(t, err)
		assert.Equal(t, slot.ID, sg.CaseEventID)
		assert.False(t, sg.Submitted)
		assert.Nil(t, sg.SubmittedAt)
		assert.InDelta(t, 0.82, sg.Score, 1e-9)
	})

	t.Run("content is optional", func(t *testing.T) {
		sg, err := service.CreateSuggestion(ctx, models.CreateSuggestionRequest{
			CaseEventID: slot.ID,
			Name:        "Borrador sin contenido",
			DocType:     models.SuggestionOther,
			Score:       0.1,
		})
		require.NoError(t, err)
		assert.Empty(t, sg.Content)
	})

	t.Run("validates score range and doc type", func(t *testing.T) {
		_, err := service.CreateSuggestion(ctx, models.CreateSuggestionRequest{
			CaseEventID: slot.ID, Name: "x", DocType: models.SuggestionResponse, Score: 1.5,
		})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateSuggestion(ctx, models.CreateSuggestionRequest{
			CaseEventID: slot.ID, Name: "x", DocType: "apelacion", Score: 0.5,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown case event returns ErrNotFound", func(t *testing.T) {
		_, err := service.CreateSuggestion(ctx, models.CreateSuggestionRequest{
			CaseEventID: "no-such-event",
			Name:        "x",
			DocType:     models.SuggestionResponse,
			Score:       0.5,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSuggestionService_ListSuggestions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSuggestionService(client.Client)
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)
	slot := newTestMilestone(t, ctx, client.Client, c.ID, timeline.MilestoneDefense, timePtr(time.Now()))

	names := []string{"Primera", "Segunda", "Tercera"}
	for _, name := range names {
		_, err := service.CreateSuggestion(ctx, models.CreateSuggestionRequest{
			CaseEventID: slot.ID,
			Name:        name,
			DocType:     models.SuggestionResponse,
			Score:       0.5,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	t.Run("orders by creation time", func(t *testing.T) {
		suggestions, err := service.ListSuggestions(ctx, slot.ID)
		require.NoError(t, err)
		require.Len(t, suggestions, 3)
		for i, sg := range suggestions {
			assert.Equal(t, names[i], sg.Name)
		}
	})

	t.Run("unknown event lists empty", func(t *testing.T) {
		suggestions, err := service.ListSuggestions(ctx, "no-such-event")
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})
}

func TestSuggestionService_MarkSubmitted(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSuggestionService(client.Client)
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)
	slot := newTestMilestone(t, ctx, client.Client, c.ID, timeline.MilestoneDefense, timePtr(time.Now()))

	sg, err := service.CreateSuggestion(ctx, models.CreateSuggestionRequest{
		CaseEventID: slot.ID,
		Name:        "Contestación",
		DocType:     models.SuggestionResponse,
		Content:     map[string]any{"heading": "h", "arguments": []any{"a"}, "prayer": "p"},
		Score:       0.9,
	})
	require.NoError(t, err)

	other, err := service.CreateSuggestion(ctx, models.CreateSuggestionRequest{
		CaseEventID: slot.ID,
		Name:        "Alternativa",
		DocType:     models.SuggestionResponse,
		Score:       0.4,
	})
	require.NoError(t, err)

	t.Run("records the filing once", func(t *testing.T) {
		n, err := service.CountUnsubmitted(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		marked, err := service.MarkSubmitted(ctx, sg.ID, c.ID+"/filed/contestacion.pdf")
		require.NoError(t, err)
		assert.True(t, marked.Submitted)
		require.NotNil(t, marked.SubmittedAt)
		require.NotNil(t, marked.StorageKey)
		assert.Contains(t, *marked.StorageKey, "contestacion.pdf")

		n, err = service.CountUnsubmitted(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		// The sibling suggestion is untouched.
		got, err := service.GetSuggestion(ctx, other.ID)
		require.NoError(t, err)
		assert.False(t, got.Submitted)
	})

	t.Run("second mark fails", func(t *testing.T) {
		_, err := service.MarkSubmitted(ctx, sg.ID, "")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("unknown suggestion returns ErrNotFound", func(t *testing.T) {
		_, err := service.MarkSubmitted(ctx, "no-such-suggestion", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
