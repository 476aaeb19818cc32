package suggest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/ent"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/pkg/config"
	"github.com/andeslegal/cobranza/pkg/events"
	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/services"
	"github.com/andeslegal/cobranza/pkg/storage"
	testdb "github.com/andeslegal/cobranza/test/database"
)

type fakeSender struct {
	calls   atomic.Int32
	failErr error
	block   chan struct{}
}

func (f *fakeSender) SendDemand(ctx context.Context, creds models.Credentials, index int) error {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	return f.failErr
}

type fakeSignaler struct {
	mu      sync.Mutex
	signals []events.SuggestionSubmittedPayload
}

func (f *fakeSignaler) PublishSuggestionSubmitted(ctx context.Context, caseID string, payload events.SuggestionSubmittedPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signals = append(f.signals, payload)
	return nil
}

var (
	minioOnce     sync.Once
	minioEndpoint string
	minioErr      error
)

func newTestStorage(t *testing.T) *storage.MinioService {
	t.Helper()

	minioOnce.Do(func() {
		ctx := context.Background()
		container, err := tcminio.Run(ctx, "minio/minio:RELEASE.2024-01-16T16-07-38Z")
		if err != nil {
			minioErr = fmt.Errorf("failed to start minio container: %w", err)
			return
		}
		endpoint, err := container.ConnectionString(ctx)
		if err != nil {
			minioErr = fmt.Errorf("failed to get minio endpoint: %w", err)
			return
		}
		minioEndpoint = endpoint
	})
	require.NoError(t, minioErr, "Failed to setup shared minio container")

	svc, err := storage.NewMinioService(config.MinioConfig{
		Endpoint:  minioEndpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    fmt.Sprintf("test-%s", uuid.New().String()[:13]),
		UseSSL:    false,
	})
	require.NoError(t, err)
	require.NoError(t, svc.EnsureBucket(context.Background()))
	return svc
}

type fixture struct {
	client      *ent.Client
	suggestions *services.SuggestionService
	documents   *services.DocumentService
	selector    *Selector
	sender      *fakeSender
	signaler    *fakeSignaler
	caseID      string
	eventID     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	client := testdb.NewTestClient(t)
	suggestions := services.NewSuggestionService(client.Client)
	documents := services.NewDocumentService(client.Client, newTestStorage(t))
	cases := services.NewCaseService(client.Client)
	sender := &fakeSender{}
	signaler := &fakeSignaler{}

	now := time.Now()
	c, err := client.CollectionCase.Create().
		SetID(uuid.New().String()).
		SetRol(fmt.Sprintf("C-%s-2026", uuid.New().String()[:8])).
		SetCourt("1º Juzgado Civil de Santiago").
		SetDebtorName("Comercial Andina SpA").
		SetDebtorRut("76.123.456-7").
		SetCreatedAt(now).SetUpdatedAt(now).
		Save(ctx)
	require.NoError(t, err)

	slot, err := client.CaseEvent.Create().
		SetID(uuid.New().String()).
		SetCaseID(c.ID).
		SetMilestone(caseevent.MilestoneDefense).
		SetOccurredAt(now).
		SetCreatedAt(now).SetUpdatedAt(now).
		Save(ctx)
	require.NoError(t, err)

	return &fixture{
		client:      client.Client,
		suggestions: suggestions,
		documents:   documents,
		selector:    NewSelector(suggestions, documents, cases, sender, signaler),
		sender:      sender,
		signaler:    signaler,
		caseID:      c.ID,
		eventID:     slot.ID,
	}
}

func (f *fixture) addSuggestion(t *testing.T, name string, docType models.SuggestionType, content map[string]any, score float64) *ent.Suggestion {
	t.Helper()
	sg, err := f.suggestions.CreateSuggestion(context.Background(), models.CreateSuggestionRequest{
		CaseEventID: f.eventID,
		Name:        name,
		DocType:     docType,
		Content:     content,
		Score:       score,
	})
	require.NoError(t, err)
	return sg
}

func responseContent() map[string]any {
	return map[string]any{
		"heading":   "Contesta demanda",
		"arguments": []any{"La obligación se encuentra prescrita"},
		"prayer":    "rechazar la demanda en todas sus partes",
	}
}

func TestSelector_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addSuggestion(t, "Contestación", models.SuggestionResponse, responseContent(), 0.9)
	time.Sleep(5 * time.Millisecond)
	f.addSuggestion(t, "Sin contenido", models.SuggestionResponse, nil, 0.3)
	time.Sleep(5 * time.Millisecond)
	f.addSuggestion(t, "Forma desconocida", models.SuggestionCompromise, map[string]any{"foo": "bar"}, 0.2)

	previews, err := f.selector.List(ctx, f.eventID)
	require.NoError(t, err)
	require.Len(t, previews, 3)

	assert.Equal(t, "Contestación", previews[0].Name)
	assert.True(t, previews[0].Available)
	assert.False(t, previews[0].Submitted)

	assert.False(t, previews[1].Available)
	assert.False(t, previews[2].Available)
}

func TestSelector_Preview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	good := f.addSuggestion(t, "Contestación", models.SuggestionResponse, responseContent(), 0.9)
	bad := f.addSuggestion(t, "Rota", models.SuggestionResponse, map[string]any{"heading": "x"}, 0.2)

	t.Run("expands content into sections", func(t *testing.T) {
		preview, err := f.selector.Preview(ctx, good.ID)
		require.NoError(t, err)
		assert.True(t, preview.Available)
		require.NotEmpty(t, preview.Sections)
		assert.Equal(t, "Contesta demanda", preview.Sections[0].Heading)
		assert.Equal(t, "Por tanto", preview.Sections[len(preview.Sections)-1].Heading)
	})

	t.Run("mismatched shape falls back", func(t *testing.T) {
		_, err := f.selector.Preview(ctx, bad.ID)
		assert.ErrorIs(t, err, models.ErrUnsupportedShape)
	})

	t.Run("renders a PDF", func(t *testing.T) {
		pdf, err := f.selector.PreviewPDF(ctx, good.ID)
		require.NoError(t, err)
		assert.True(t, len(pdf) > 0)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("unknown suggestion", func(t *testing.T) {
		_, err := f.selector.Preview(ctx, "nope")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestSelector_Submit(t *testing.T) {
	t.Run("files, archives and signals", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		sg := f.addSuggestion(t, "Contestación", models.SuggestionResponse, responseContent(), 0.9)

		marked, err := f.selector.Submit(ctx, models.Credentials{RUT: "11.111.111-1", Password: "123"}, sg.ID, 4)
		require.NoError(t, err)
		assert.True(t, marked.Submitted)
		assert.EqualValues(t, 1, f.sender.calls.Load())

		// The rendered filing is archived with the case.
		docs, err := f.documents.List(ctx, f.caseID, models.DocumentResponse)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Contestación.pdf", docs[0].Name)
		require.NotNil(t, marked.StorageKey)
		assert.Equal(t, docs[0].StorageKey, *marked.StorageKey)

		// Connected clients are told to reload.
		require.Len(t, f.signaler.signals, 1)
		assert.Equal(t, f.caseID, f.signaler.signals[0].CaseID)
		assert.Equal(t, sg.ID, f.signaler.signals[0].SuggestionID)
	})

	t.Run("gateway failure keeps everything retryable", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		sg := f.addSuggestion(t, "Contestación", models.SuggestionResponse, responseContent(), 0.9)
		f.sender.failErr = gateway.ErrServerUnavailable

		_, err := f.selector.Submit(ctx, models.Credentials{}, sg.ID, 1)
		assert.ErrorIs(t, err, gateway.ErrServerUnavailable)

		got, err := f.suggestions.GetSuggestion(ctx, sg.ID)
		require.NoError(t, err)
		assert.False(t, got.Submitted)
		assert.Empty(t, f.signaler.signals)

		// Retry succeeds once the gateway recovers.
		f.sender.failErr = nil
		_, err = f.selector.Submit(ctx, models.Credentials{}, sg.ID, 1)
		require.NoError(t, err)
	})

	t.Run("content-less suggestions are not submittable", func(t *testing.T) {
		f := newFixture(t)
		sg := f.addSuggestion(t, "Sin contenido", models.SuggestionResponse, nil, 0.3)

		_, err := f.selector.Submit(context.Background(), models.Credentials{}, sg.ID, 1)
		assert.ErrorIs(t, err, ErrNotSubmittable)
		assert.EqualValues(t, 0, f.sender.calls.Load())
	})

	t.Run("second submit of the same suggestion fails", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		sg := f.addSuggestion(t, "Contestación", models.SuggestionResponse, responseContent(), 0.9)

		_, err := f.selector.Submit(ctx, models.Credentials{}, sg.ID, 1)
		require.NoError(t, err)

		_, err = f.selector.Submit(ctx, models.Credentials{}, sg.ID, 1)
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})

	t.Run("one pending submission per case event", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		first := f.addSuggestion(t, "Primera", models.SuggestionResponse, responseContent(), 0.9)
		second := f.addSuggestion(t, "Segunda", models.SuggestionResponse, responseContent(), 0.5)

		f.sender.block = make(chan struct{})
		done := make(chan error, 1)
		go func() {
			_, err := f.selector.Submit(ctx, models.Credentials{}, first.ID, 1)
			done <- err
		}()

		// Wait until the first submission reaches the gateway.
		require.Eventually(t, func() bool {
			return f.sender.calls.Load() == 1
		}, 2*time.Second, 10*time.Millisecond)

		_, err := f.selector.Submit(ctx, models.Credentials{}, second.ID, 2)
		assert.ErrorIs(t, err, ErrSubmissionPending)

		close(f.sender.block)
		require.NoError(t, <-done)

		// The gate is released after completion.
		f.sender.block = nil
		_, err = f.selector.Submit(ctx, models.Credentials{}, second.ID, 2)
		require.NoError(t, err)
	})
}

func TestSelector_SubmitUnknownSuggestion(t *testing.T) {
	f := newFixture(t)
	_, err := f.selector.Submit(context.Background(), models.Credentials{}, "nope", 1)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}
