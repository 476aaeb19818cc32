package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/timeline"
	testdb "github.com/andeslegal/cobranza/test/database"
)

func TestCaseService_CreateCase(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCaseService(client.Client)
	ctx := context.Background()

	t.Run("creates an active case", func(t *testing.T) {
		req := models.CreateCaseRequest{
			Rol:        "C-1234-2026",
			Court:      "1º Juzgado Civil de Santiago",
			DebtorName: "Comercial Andina SpA",
			DebtorRUT:  "76.123.456-7",
		}

		c, err := service.CreateCase(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, req.Rol, c.Rol)
		assert.Equal(t, req.Court, c.Court)
		assert.Equal(t, collectioncase.StatusActive, c.Status)
		assert.Nil(t, c.DeletedAt)
	})

	t.Run("rejects duplicate rol and court", func(t *testing.T) {
		req := models.CreateCaseRequest{
			Rol:        "C-7777-2026",
			Court:      "2º Juzgado Civil de Santiago",
			DebtorName: "Cliente Uno",
			DebtorRUT:  "11.111.111-1",
		}
		_, err := service.CreateCase(ctx, req)
		require.NoError(t, err)

		req.DebtorName = "Cliente Dos"
		_, err = service.CreateCase(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("same rol in a different court is allowed", func(t *testing.T) {
		_, err := service.CreateCase(ctx, models.CreateCaseRequest{
			Rol: "C-9876-2026", Court: "Juzgado de Letras de Talca",
			DebtorName: "Deudor A", DebtorRUT: "12.345.678-5",
		})
		require.NoError(t, err)

		_, err = service.CreateCase(ctx, models.CreateCaseRequest{
			Rol: "C-9876-2026", Court: "Juzgado de Letras de Curicó",
			DebtorName: "Deudor B", DebtorRUT: "12.345.678-5",
		})
		require.NoError(t, err)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name    string
			req     models.CreateCaseRequest
			wantErr string
		}{
			{
				name:    "missing rol",
				req:     models.CreateCaseRequest{Court: "c", DebtorName: "n", DebtorRUT: "r"},
				wantErr: "rol",
			},
			{
				name:    "missing court",
				req:     models.CreateCaseRequest{Rol: "C-1-2026", DebtorName: "n", DebtorRUT: "r"},
				wantErr: "court",
			},
			{
				name:    "missing debtor name",
				req:     models.CreateCaseRequest{Rol: "C-1-2026", Court: "c", DebtorRUT: "r"},
				wantErr: "debtor_name",
			},
			{
				name:    "missing debtor rut",
				req:     models.CreateCaseRequest{Rol: "C-1-2026", Court: "c", DebtorName: "n"},
				wantErr: "debtor_rut",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateCase(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestCaseService_GetCase(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCaseService(client.Client)
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)
	newTestMilestone(t, ctx, client.Client, c.ID, timeline.MilestoneDocuments, timePtr(time.Now()))

	t.Run("returns the case", func(t *testing.T) {
		got, err := service.GetCase(ctx, c.ID, false)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		assert.Nil(t, got.Edges.Events)
	})

	t.Run("loads edges on request", func(t *testing.T) {
		got, err := service.GetCase(ctx, c.ID, true)
		require.NoError(t, err)
		require.Len(t, got.Edges.Events, 1)
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetCase(ctx, "no-such-case", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCaseService_ListCases(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCaseService(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		newTestCase(t, ctx, client.Client)
	}
	deleted := newTestCase(t, ctx, client.Client)
	require.NoError(t, service.SoftDeleteCase(ctx, deleted.ID))

	t.Run("excludes soft deleted cases by default", func(t *testing.T) {
		resp, err := service.ListCases(ctx, models.CaseFilters{})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalCount)
		assert.Len(t, resp.Cases, 5)
	})

	t.Run("includes deleted cases when asked", func(t *testing.T) {
		resp, err := service.ListCases(ctx, models.CaseFilters{IncludeDeleted: true})
		require.NoError(t, err)
		assert.Equal(t, 6, resp.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := service.ListCases(ctx, models.CaseFilters{Limit: 2, Offset: 4})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalCount)
		assert.Len(t, resp.Cases, 1)
		assert.Equal(t, 2, resp.Limit)
		assert.Equal(t, 4, resp.Offset)
	})

	t.Run("filters by debtor rut", func(t *testing.T) {
		resp, err := service.ListCases(ctx, models.CaseFilters{DebtorRUT: "76.123.456-7"})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalCount)

		resp, err = service.ListCases(ctx, models.CaseFilters{DebtorRUT: "99.999.999-9"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalCount)
	})
}

func TestCaseService_UpsertMilestone(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCaseService(client.Client)
	ctx := context.Background()

	t.Run("creates then updates the same slot", func(t *testing.T) {
		c := newTestCase(t, ctx, client.Client)

		first := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		slot, err := service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone:  timeline.MilestoneDispatch,
			OccurredAt: &first,
			Detail:     "resolución que provee la demanda",
		})
		require.NoError(t, err)
		require.NotNil(t, slot.OccurredAt)
		assert.Equal(t, first, slot.OccurredAt.UTC())

		second := first.AddDate(0, 0, 3)
		updated, err := service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone:  timeline.MilestoneDispatch,
			OccurredAt: &second,
		})
		require.NoError(t, err)
		assert.Equal(t, slot.ID, updated.ID)
		assert.Equal(t, second, updated.OccurredAt.UTC())

		slots, err := client.CaseEvent.Query().All(ctx)
		require.NoError(t, err)
		assert.Len(t, slots, 1)
	})

	t.Run("clearing the date keeps the slot", func(t *testing.T) {
		c := newTestCase(t, ctx, client.Client)

		now := time.Now()
		_, err := service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone:  timeline.MilestoneNotification,
			OccurredAt: &now,
		})
		require.NoError(t, err)

		slot, err := service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone: timeline.MilestoneNotification,
		})
		require.NoError(t, err)
		assert.Nil(t, slot.OccurredAt)
	})

	t.Run("dating the terminal milestone finishes the case", func(t *testing.T) {
		c := newTestCase(t, ctx, client.Client)

		now := time.Now()
		_, err := service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone:  timeline.MilestoneFinished,
			OccurredAt: &now,
		})
		require.NoError(t, err)

		got, err := service.GetCase(ctx, c.ID, false)
		require.NoError(t, err)
		assert.Equal(t, collectioncase.StatusFinished, got.Status)

		// Clearing the date reopens the case.
		_, err = service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone: timeline.MilestoneFinished,
		})
		require.NoError(t, err)

		got, err = service.GetCase(ctx, c.ID, false)
		require.NoError(t, err)
		assert.Equal(t, collectioncase.StatusActive, got.Status)
	})

	t.Run("finished case only accepts terminal milestone writes", func(t *testing.T) {
		c := newTestCase(t, ctx, client.Client)

		now := time.Now()
		_, err := service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone:  timeline.MilestoneFinished,
			OccurredAt: &now,
		})
		require.NoError(t, err)

		_, err = service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone:  timeline.MilestoneDefense,
			OccurredAt: &now,
		})
		assert.ErrorIs(t, err, ErrCaseFinished)

		// Reopening through the terminal milestone unlocks the others again.
		_, err = service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone: timeline.MilestoneFinished,
		})
		require.NoError(t, err)

		_, err = service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone:  timeline.MilestoneDefense,
			OccurredAt: &now,
		})
		require.NoError(t, err)
	})

	t.Run("rejects unknown milestones", func(t *testing.T) {
		c := newTestCase(t, ctx, client.Client)
		_, err := service.UpsertMilestone(ctx, c.ID, models.UpsertMilestoneRequest{
			Milestone: timeline.Milestone("appeal"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown case returns ErrNotFound", func(t *testing.T) {
		now := time.Now()
		_, err := service.UpsertMilestone(ctx, "no-such-case", models.UpsertMilestoneRequest{
			Milestone:  timeline.MilestoneDocuments,
			OccurredAt: &now,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCaseService_GetTimeline(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCaseService(client.Client)
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	newTestMilestone(t, ctx, client.Client, c.ID, timeline.MilestoneDocuments, timePtr(base))
	newTestMilestone(t, ctx, client.Client, c.ID, timeline.MilestoneDemandText, timePtr(base.AddDate(0, 0, 5)))

	t.Run("classifies milestones in canonical order", func(t *testing.T) {
		resp, err := service.GetTimelineAt(ctx, c.ID, base.AddDate(0, 0, 10))
		require.NoError(t, err)
		assert.Equal(t, c.ID, resp.CaseID)
		assert.False(t, resp.Finished)
		require.Len(t, resp.Derived.Milestones, len(timeline.CanonicalOrder))

		assert.Equal(t, timeline.MilestoneDocuments, resp.Derived.Milestones[0].Milestone)
		assert.NotNil(t, resp.Derived.Milestones[0].OccurredAt)
		// Dispatch is the current milestone, 5 days after demand text.
		assert.True(t, resp.Derived.Milestones[2].Current)
	})

	t.Run("unknown case returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetTimeline(ctx, "no-such-case")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCaseService_SearchCases(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCaseService(client.Client)
	ctx := context.Background()

	now := time.Now()
	_, err := client.CollectionCase.Create().
		SetID("case-andina").
		SetRol("C-1111-2026").
		SetCourt("1º Juzgado Civil de Santiago").
		SetDebtorName("Comercial Andina Limitada").
		SetDebtorRut("76.111.111-1").
		SetCreatedAt(now).SetUpdatedAt(now).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.CollectionCase.Create().
		SetID("case-pacifico").
		SetRol("C-2222-2026").
		SetCourt("1º Juzgado Civil de Santiago").
		SetDebtorName("Transportes del Pacífico SpA").
		SetDebtorRut("76.222.222-2").
		SetCreatedAt(now).SetUpdatedAt(now).
		Save(ctx)
	require.NoError(t, err)

	t.Run("matches by debtor name", func(t *testing.T) {
		found, err := service.SearchCases(ctx, "andina", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "case-andina", found[0].ID)
	})

	t.Run("matches by rol", func(t *testing.T) {
		found, err := service.SearchCases(ctx, "C-2222-2026", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "case-pacifico", found[0].ID)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		found, err := service.SearchCases(ctx, "inexistente", 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestCaseService_SoftDeleteAndRestore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCaseService(client.Client)
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)

	require.NoError(t, service.SoftDeleteCase(ctx, c.ID))

	// Timeline reads treat a soft-deleted case as gone.
	_, err := service.GetTimeline(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Second delete is a no-op failure.
	assert.ErrorIs(t, service.SoftDeleteCase(ctx, c.ID), ErrNotFound)

	require.NoError(t, service.RestoreCase(ctx, c.ID))
	_, err = service.GetTimeline(ctx, c.ID)
	require.NoError(t, err)
}
