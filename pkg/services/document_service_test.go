package services

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/ordering"
	testdb "github.com/andeslegal/cobranza/test/database"
)

func TestDocumentService_Upload(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocumentService(client.Client, newTestStorage(t))
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)

	t.Run("stores content and metadata", func(t *testing.T) {
		doc := uploadEvidence(t, ctx, service, c.ID, "pagare-banco.pdf")

		assert.Equal(t, 0, doc.Position)
		assert.Equal(t, "application/pdf", doc.ContentType)
		assert.Contains(t, doc.StorageKey, c.ID)

		got, content, err := service.Download(ctx, c.ID, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, got.ID)
		assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	})

	t.Run("positions follow upload order", func(t *testing.T) {
		c2 := newTestCase(t, ctx, client.Client)
		first := uploadEvidence(t, ctx, service, c2.ID, "primero.pdf")
		second := uploadEvidence(t, ctx, service, c2.ID, "segundo.pdf")
		assert.Equal(t, 0, first.Position)
		assert.Equal(t, 1, second.Position)
	})

	t.Run("rejects duplicate names within the case", func(t *testing.T) {
		c2 := newTestCase(t, ctx, client.Client)
		uploadEvidence(t, ctx, service, c2.ID, "pagare.pdf")

		_, err := service.Upload(ctx, models.UploadDocumentRequest{
			CaseID: c2.ID,
			Kind:   models.DocumentEvidence,
			Name:   "pagare.pdf",
			Body:   bytes.NewReader([]byte("x")),
		})
		assert.ErrorIs(t, err, ordering.ErrDuplicateName)
	})

	t.Run("caps evidence at the limit", func(t *testing.T) {
		c2 := newTestCase(t, ctx, client.Client)
		for i := 0; i < ordering.DefaultMaxItems; i++ {
			uploadEvidence(t, ctx, service, c2.ID, fmt.Sprintf("pagare-%d.pdf", i))
		}

		_, err := service.Upload(ctx, models.UploadDocumentRequest{
			CaseID: c2.ID,
			Kind:   models.DocumentEvidence,
			Name:   "uno-mas.pdf",
			Body:   bytes.NewReader([]byte("x")),
		})
		assert.ErrorIs(t, err, ordering.ErrListFull)

		docs, err := service.List(ctx, c2.ID, models.DocumentEvidence)
		require.NoError(t, err)
		assert.Len(t, docs, ordering.DefaultMaxItems)
	})

	t.Run("cap does not apply to rendered filings", func(t *testing.T) {
		c2 := newTestCase(t, ctx, client.Client)
		for i := 0; i < ordering.DefaultMaxItems; i++ {
			uploadEvidence(t, ctx, service, c2.ID, fmt.Sprintf("pagare-%d.pdf", i))
		}

		_, err := service.Upload(ctx, models.UploadDocumentRequest{
			CaseID: c2.ID,
			Kind:   models.DocumentDemandText,
			Name:   "demanda.pdf",
			Body:   bytes.NewReader([]byte("%PDF demanda")),
		})
		require.NoError(t, err)
	})

	t.Run("unknown case returns ErrNotFound", func(t *testing.T) {
		_, err := service.Upload(ctx, models.UploadDocumentRequest{
			CaseID: "no-such-case",
			Kind:   models.DocumentEvidence,
			Name:   "pagare.pdf",
			Body:   bytes.NewReader([]byte("x")),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates kind and name", func(t *testing.T) {
		_, err := service.Upload(ctx, models.UploadDocumentRequest{
			CaseID: c.ID, Kind: "carpeta", Name: "x", Body: bytes.NewReader(nil),
		})
		assert.True(t, IsValidationError(err))

		_, err = service.Upload(ctx, models.UploadDocumentRequest{
			CaseID: c.ID, Kind: models.DocumentEvidence, Name: "  ", Body: bytes.NewReader(nil),
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestDocumentService_Reorder(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocumentService(client.Client, newTestStorage(t))
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)
	a := uploadEvidence(t, ctx, service, c.ID, "a.pdf")
	b := uploadEvidence(t, ctx, service, c.ID, "b.pdf")
	d := uploadEvidence(t, ctx, service, c.ID, "c.pdf")

	t.Run("applies a full permutation", func(t *testing.T) {
		docs, err := service.Reorder(ctx, c.ID, models.ReorderDocumentsRequest{
			Kind:        models.DocumentEvidence,
			DocumentIDs: []string{d.ID, a.ID, b.ID},
		})
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, d.ID, docs[0].ID)
		assert.Equal(t, a.ID, docs[1].ID)
		assert.Equal(t, b.ID, docs[2].ID)

		labels, err := service.SubmissionLabels(ctx, c.ID, "Pagaré")
		require.NoError(t, err)
		assert.Equal(t, []string{"Pagaré 1", "Pagaré 2", "Pagaré 3"}, labels)
	})

	t.Run("rejects partial orderings", func(t *testing.T) {
		_, err := service.Reorder(ctx, c.ID, models.ReorderDocumentsRequest{
			Kind:        models.DocumentEvidence,
			DocumentIDs: []string{a.ID, b.ID},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects repeated ids", func(t *testing.T) {
		_, err := service.Reorder(ctx, c.ID, models.ReorderDocumentsRequest{
			Kind:        models.DocumentEvidence,
			DocumentIDs: []string{a.ID, a.ID, b.ID},
		})
		assert.True(t, IsValidationError(err))

		// The stored order is untouched.
		docs, err := service.List(ctx, c.ID, models.DocumentEvidence)
		require.NoError(t, err)
		assert.Equal(t, d.ID, docs[0].ID)
	})

	t.Run("rejects foreign ids", func(t *testing.T) {
		_, err := service.Reorder(ctx, c.ID, models.ReorderDocumentsRequest{
			Kind:        models.DocumentEvidence,
			DocumentIDs: []string{a.ID, b.ID, "not-here"},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestDocumentService_Rename(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocumentService(client.Client, newTestStorage(t))
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)
	a := uploadEvidence(t, ctx, service, c.ID, "a.pdf")
	uploadEvidence(t, ctx, service, c.ID, "b.pdf")

	t.Run("renames", func(t *testing.T) {
		doc, err := service.Rename(ctx, c.ID, a.ID, "pagare-original.pdf")
		require.NoError(t, err)
		assert.Equal(t, "pagare-original.pdf", doc.Name)
	})

	t.Run("rejects collisions and keeps the old name", func(t *testing.T) {
		_, err := service.Rename(ctx, c.ID, a.ID, "b.pdf")
		assert.ErrorIs(t, err, ordering.ErrDuplicateName)

		doc, err := service.Get(ctx, c.ID, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "pagare-original.pdf", doc.Name)
	})

	t.Run("renaming to the current name is a no-op", func(t *testing.T) {
		_, err := service.Rename(ctx, c.ID, a.ID, "pagare-original.pdf")
		require.NoError(t, err)
	})

	t.Run("unknown document returns ErrNotFound", func(t *testing.T) {
		_, err := service.Rename(ctx, c.ID, "nope", "x.pdf")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocumentService(client.Client, newTestStorage(t))
	ctx := context.Background()

	c := newTestCase(t, ctx, client.Client)
	a := uploadEvidence(t, ctx, service, c.ID, "a.pdf")
	b := uploadEvidence(t, ctx, service, c.ID, "b.pdf")
	d := uploadEvidence(t, ctx, service, c.ID, "c.pdf")

	t.Run("compacts positions", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, c.ID, b.ID))

		docs, err := service.List(ctx, c.ID, models.DocumentEvidence)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, a.ID, docs[0].ID)
		assert.Equal(t, 0, docs[0].Position)
		assert.Equal(t, d.ID, docs[1].ID)
		assert.Equal(t, 1, docs[1].Position)
	})

	t.Run("frees a slot under the cap", func(t *testing.T) {
		uploadEvidence(t, ctx, service, c.ID, "reemplazo.pdf")
	})

	t.Run("unknown document returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, service.Delete(ctx, c.ID, b.ID), ErrNotFound)
	})
}
