package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/pkg/config"
	"github.com/andeslegal/cobranza/pkg/database"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/services"
	testdb "github.com/andeslegal/cobranza/test/database"
)

func setupServices(t *testing.T) (*database.Client, *services.CaseService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewCaseService(client.Client), services.NewEventService(client.DB())
}

func retentionConfig() config.RetentionConfig {
	return config.RetentionConfig{
		CaseRetentionDays: 365,
		EventTTLHours:     1,
		IntervalMinutes:   60,
	}
}

func TestService_SoftDeletesOldFinishedCases(t *testing.T) {
	client, caseService, eventService := setupServices(t)
	ctx := context.Background()

	cse, err := caseService.CreateCase(ctx, models.CreateCaseRequest{
		Rol:        "C-9001-2024",
		Court:      "2º Juzgado Civil de Santiago",
		DebtorName: "Inversiones Lota Ltda",
		DebtorRUT:  "77.888.999-0",
	})
	require.NoError(t, err)

	err = client.CollectionCase.UpdateOneID(cse.ID).
		SetStatus(collectioncase.StatusFinished).
		SetUpdatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), caseService, eventService)
	svc.RunAll(ctx)

	deleted, err := client.CollectionCase.Get(ctx, cse.ID)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)
}

func TestService_KeepsRecentFinishedCases(t *testing.T) {
	client, caseService, eventService := setupServices(t)
	ctx := context.Background()

	cse, err := caseService.CreateCase(ctx, models.CreateCaseRequest{
		Rol:        "C-9002-2026",
		Court:      "2º Juzgado Civil de Santiago",
		DebtorName: "Transportes del Sur SpA",
		DebtorRUT:  "76.222.333-4",
	})
	require.NoError(t, err)

	err = client.CollectionCase.UpdateOneID(cse.ID).
		SetStatus(collectioncase.StatusFinished).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), caseService, eventService)
	svc.RunAll(ctx)

	kept, err := client.CollectionCase.Get(ctx, cse.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.DeletedAt)
}

func TestService_RemovesOrphanedAndExpiredEvents(t *testing.T) {
	client, caseService, eventService := setupServices(t)
	ctx := context.Background()

	cse, err := caseService.CreateCase(ctx, models.CreateCaseRequest{
		Rol:        "C-9003-2026",
		Court:      "3º Juzgado Civil de Santiago",
		DebtorName: "Constructora Aconcagua SA",
		DebtorRUT:  "96.111.222-3",
	})
	require.NoError(t, err)

	insert := func(caseID string, age time.Duration) {
		_, err := client.DB().ExecContext(ctx,
			`INSERT INTO events (case_id, channel, payload, created_at) VALUES ($1, $2, '{}', $3)`,
			caseID, "case:"+caseID, time.Now().Add(-age))
		require.NoError(t, err)
	}
	insert(cse.ID, time.Minute)      // live, recent
	insert(cse.ID, 48*time.Hour)     // live, past TTL
	insert("gone-case", time.Minute) // orphaned

	svc := NewService(retentionConfig(), caseService, eventService)
	svc.RunAll(ctx)

	var remaining int
	row := client.DB().QueryRowContext(ctx, `SELECT count(*) FROM events`)
	require.NoError(t, row.Scan(&remaining))
	assert.Equal(t, 1, remaining)
}

func TestService_StartStop(t *testing.T) {
	_, caseService, eventService := setupServices(t)

	svc := NewService(retentionConfig(), caseService, eventService)
	svc.Start(context.Background())
	svc.Stop()
}
