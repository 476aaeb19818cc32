package services

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/ent"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/pkg/config"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/storage"
	"github.com/andeslegal/cobranza/pkg/timeline"
)

var (
	minioOnce     sync.Once
	minioEndpoint string
	minioErr      error
)

// newTestCase inserts a case with unique rol/court and returns it.
func newTestCase(t *testing.T, ctx context.Context, client *ent.Client) *ent.CollectionCase {
	t.Helper()

	now := time.Now()
	c, err := client.CollectionCase.Create().
		SetID(uuid.New().String()).
		SetRol(fmt.Sprintf("C-%s-2026", uuid.New().String()[:8])).
		SetCourt("1º Juzgado Civil de Santiago").
		SetDebtorName("Comercial Andina SpA").
		SetDebtorRut("76.123.456-7").
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	require.NoError(t, err)
	return c
}

// newTestMilestone inserts a dated milestone slot for the case.
func newTestMilestone(t *testing.T, ctx context.Context, client *ent.Client, caseID string, m timeline.Milestone, occurredAt *time.Time) *ent.CaseEvent {
	t.Helper()

	now := time.Now()
	create := client.CaseEvent.Create().
		SetID(uuid.New().String()).
		SetCaseID(caseID).
		SetMilestone(caseevent.Milestone(m)).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if occurredAt != nil {
		create = create.SetOccurredAt(*occurredAt)
	}
	slot, err := create.Save(ctx)
	require.NoError(t, err)
	return slot
}

// newTestStorage starts (once per package) a shared MinIO container and
// returns a storage service bound to a fresh bucket per test.
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

	bucket := fmt.Sprintf("test-%s", uuid.New().String()[:13])
	svc, err := storage.NewMinioService(config.MinioConfig{
		Endpoint:  minioEndpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    bucket,
		UseSSL:    false,
	})
	require.NoError(t, err)
	require.NoError(t, svc.EnsureBucket(context.Background()))

	return svc
}

// timePtr is a shorthand for literal milestone dates in tests.
func timePtr(tm time.Time) *time.Time {
	return &tm
}

// uploadEvidence uploads one small PDF-ish evidence file.
func uploadEvidence(t *testing.T, ctx context.Context, svc *DocumentService, caseID, name string) *ent.CaseDocument {
	t.Helper()

	body := []byte("%PDF-1.4 test " + name)
	doc, err := svc.Upload(ctx, models.UploadDocumentRequest{
		CaseID:      caseID,
		Kind:        models.DocumentEvidence,
		Name:        name,
		ContentType: "application/pdf",
		SizeBytes:   int64(len(body)),
		Body:        bytes.NewReader(body),
	})
	require.NoError(t, err)
	return doc
}
