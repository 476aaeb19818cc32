package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andeslegal/cobranza/ent"
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/ordering"
	"github.com/andeslegal/cobranza/pkg/storage"
)

// DocumentService manages case file metadata and the object storage behind
// it. Evidence files are position-ordered and capped; the order feeds the
// submission labels, so reorders are full permutations, never partial.
type DocumentService struct {
	client  *ent.Client
	storage *storage.MinioService
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(client *ent.Client, storage *storage.MinioService) *DocumentService {
	return &DocumentService{client: client, storage: storage}
}

// Upload stores one file's content in object storage and records its
// metadata. Evidence uploads past the per-case cap are rejected whole with
// ordering.ErrListFull. A name already taken within the case and kind
// returns ordering.ErrDuplicateName.
func (s *DocumentService) Upload(httpCtx context.Context, req models.UploadDocumentRequest) (*ent.CaseDocument, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name", "required")
	}
	if !req.Kind.Valid() {
		return nil, NewValidationError("kind", fmt.Sprintf("unknown document kind %q", req.Kind))
	}
	if req.Body == nil {
		return nil, NewValidationError("body", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	exists, err := s.client.CollectionCase.Query().
		Where(collectioncase.IDEQ(req.CaseID), collectioncase.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check case: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	siblings, err := s.client.CaseDocument.Query().
		Where(
			casedocument.CaseIDEQ(req.CaseID),
			casedocument.KindEQ(casedocument.Kind(req.Kind)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing documents: %w", err)
	}

	if req.Kind == models.DocumentEvidence && len(siblings) >= ordering.DefaultMaxItems {
		return nil, fmt.Errorf("%w: case already holds %d evidence files",
			ordering.ErrListFull, len(siblings))
	}
	for _, sib := range siblings {
		if sib.Name == req.Name {
			return nil, fmt.Errorf("%w: %q", ordering.ErrDuplicateName, req.Name)
		}
	}

	documentID := uuid.New().String()
	key := storage.ObjectKey(req.CaseID, documentID, req.Name)

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}

	if err := s.storage.Upload(ctx, key, req.Body, req.SizeBytes, contentType); err != nil {
		return nil, fmt.Errorf("failed to store document content: %w", err)
	}

	doc, err := s.client.CaseDocument.Create().
		SetID(documentID).
		SetCaseID(req.CaseID).
		SetKind(casedocument.Kind(req.Kind)).
		SetName(req.Name).
		SetStorageKey(key).
		SetPosition(len(siblings)).
		SetContentType(contentType).
		SetSizeBytes(req.SizeBytes).
		SetUploadedAt(time.Now()).
		Save(ctx)
	if err != nil {
		// Roll back the orphaned object; the row is the source of truth.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			slog.Warn("Failed to delete orphaned object after metadata failure",
				"key", key, "error", delErr)
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	return doc, nil
}

// List returns a case's documents of one kind in their current order.
func (s *DocumentService) List(ctx context.Context, caseID string, kind models.DocumentKind) ([]*ent.CaseDocument, error) {
	if !kind.Valid() {
		return nil, NewValidationError("kind", fmt.Sprintf("unknown document kind %q", kind))
	}

	docs, err := s.client.CaseDocument.Query().
		Where(
			casedocument.CaseIDEQ(caseID),
			casedocument.KindEQ(casedocument.Kind(kind)),
		).
		Order(ent.Asc(casedocument.FieldPosition), ent.Asc(casedocument.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// Get retrieves one document's metadata.
func (s *DocumentService) Get(ctx context.Context, caseID, documentID string) (*ent.CaseDocument, error) {
	doc, err := s.client.CaseDocument.Query().
		Where(
			casedocument.IDEQ(documentID),
			casedocument.CaseIDEQ(caseID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// Download returns one document's metadata and full content.
func (s *DocumentService) Download(ctx context.Context, caseID, documentID string) (*ent.CaseDocument, []byte, error) {
	doc, err := s.Get(ctx, caseID, documentID)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.storage.Download(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch document content: %w", err)
	}
	return doc, content, nil
}

// PresignedURL returns a short-lived direct download link for one document.
func (s *DocumentService) PresignedURL(ctx context.Context, caseID, documentID string) (string, error) {
	doc, err := s.Get(ctx, caseID, documentID)
	if err != nil {
		return "", err
	}
	return s.storage.PresignedURL(ctx, doc.StorageKey)
}

// Reorder replaces the ordering of a case's documents of one kind. The
// request must name every current document exactly once; anything else
// leaves the stored order untouched.
func (s *DocumentService) Reorder(httpCtx context.Context, caseID string, req models.ReorderDocumentsRequest) ([]*ent.CaseDocument, error) {
	if !req.Kind.Valid() {
		return nil, NewValidationError("kind", fmt.Sprintf("unknown document kind %q", req.Kind))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	docs, err := tx.CaseDocument.Query().
		Where(
			casedocument.CaseIDEQ(caseID),
			casedocument.KindEQ(casedocument.Kind(req.Kind)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	if len(req.DocumentIDs) != len(docs) {
		return nil, NewValidationError("document_ids",
			fmt.Sprintf("expected %d ids, got %d", len(docs), len(req.DocumentIDs)))
	}
	byID := make(map[string]*ent.CaseDocument, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}

	seen := make(map[string]bool, len(req.DocumentIDs))
	for pos, id := range req.DocumentIDs {
		doc, ok := byID[id]
		if !ok {
			return nil, NewValidationError("document_ids", fmt.Sprintf("unknown document %q", id))
		}
		if seen[id] {
			return nil, NewValidationError("document_ids", fmt.Sprintf("document %q listed twice", id))
		}
		seen[id] = true

		if doc.Position != pos {
			if err := tx.CaseDocument.UpdateOneID(id).SetPosition(pos).Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to move document %s: %w", id, err)
			}
		}
	}

	reordered, err := tx.CaseDocument.Query().
		Where(
			casedocument.CaseIDEQ(caseID),
			casedocument.KindEQ(casedocument.Kind(req.Kind)),
		).
		Order(ent.Asc(casedocument.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload documents: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reorder: %w", err)
	}

	return reordered, nil
}

// Rename changes a document's display name. A collision with a sibling of
// the same kind returns ordering.ErrDuplicateName and keeps the old name.
func (s *DocumentService) Rename(httpCtx context.Context, caseID, documentID, name string) (*ent.CaseDocument, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := s.Get(ctx, caseID, documentID)
	if err != nil {
		return nil, err
	}

	taken, err := s.client.CaseDocument.Query().
		Where(
			casedocument.CaseIDEQ(caseID),
			casedocument.KindEQ(doc.Kind),
			casedocument.NameEQ(name),
			casedocument.IDNEQ(documentID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", ordering.ErrDuplicateName, name)
	}

	doc, err = doc.Update().SetName(name).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to rename document: %w", err)
	}
	return doc, nil
}

// Delete removes a document's metadata and content and closes the gap in
// the remaining positions.
func (s *DocumentService) Delete(httpCtx context.Context, caseID, documentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	doc, err := tx.CaseDocument.Query().
		Where(
			casedocument.IDEQ(documentID),
			casedocument.CaseIDEQ(caseID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	if err := tx.CaseDocument.DeleteOneID(documentID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	// Compact positions so labels stay contiguous.
	later, err := tx.CaseDocument.Query().
		Where(
			casedocument.CaseIDEQ(caseID),
			casedocument.KindEQ(doc.Kind),
			casedocument.PositionGT(doc.Position),
		).
		Order(ent.Asc(casedocument.FieldPosition)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list trailing documents: %w", err)
	}
	for _, d := range later {
		if err := tx.CaseDocument.UpdateOneID(d.ID).SetPosition(d.Position - 1).Exec(ctx); err != nil {
			return fmt.Errorf("failed to shift document %s: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	// Content removal after commit; a leftover object is harmless.
	if err := s.storage.Delete(context.Background(), doc.StorageKey); err != nil {
		slog.Warn("Failed to delete stored object", "key", doc.StorageKey, "error", err)
	}

	return nil
}

// SubmissionLabels returns the labels implied by the current evidence order,
// e.g. "Pagaré 1", "Pagaré 2".
func (s *DocumentService) SubmissionLabels(ctx context.Context, caseID, prefix string) ([]string, error) {
	docs, err := s.List(ctx, caseID, models.DocumentEvidence)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(docs))
	for i := range docs {
		labels[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return labels, nil
}
