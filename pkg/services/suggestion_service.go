package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andeslegal/cobranza/ent"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/suggestion"
	"github.com/andeslegal/cobranza/pkg/models"
)

// SuggestionService stores the scored candidate documents attached to case
// events. Creation order is the display order; it never changes afterwards.
type SuggestionService struct {
	client *ent.Client
}

// NewSuggestionService creates a new SuggestionService
func NewSuggestionService(client *ent.Client) *SuggestionService {
	return &SuggestionService{client: client}
}

// CreateSuggestion attaches one candidate document to a case event.
func (s *SuggestionService) CreateSuggestion(httpCtx context.Context, req models.CreateSuggestionRequest) (*ent.Suggestion, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name", "required")
	}
	if !req.DocType.Valid() {
		return nil, NewValidationError("doc_type", fmt.Sprintf("unknown type %q", req.DocType))
	}
	if req.Score < 0 || req.Score > 1 {
		return nil, NewValidationError("score", "must be between 0 and 1")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.CaseEvent.Query().
		Where(caseevent.IDEQ(req.CaseEventID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check case event: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	create := s.client.Suggestion.Create().
		SetID(uuid.New().String()).
		SetCaseEventID(req.CaseEventID).
		SetName(req.Name).
		SetDocType(suggestion.DocType(req.DocType)).
		SetScore(req.Score).
		SetCreatedAt(time.Now())
	if req.Content != nil {
		create = create.SetContent(req.Content)
	}

	sg, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	return sg, nil
}

// ListSuggestions returns a case event's suggestions oldest first.
func (s *SuggestionService) ListSuggestions(ctx context.Context, caseEventID string) ([]*ent.Suggestion, error) {
	suggestions, err := s.client.Suggestion.Query().
		Where(suggestion.CaseEventIDEQ(caseEventID)).
		Order(ent.Asc(suggestion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}

// GetSuggestion retrieves a suggestion by ID
func (s *SuggestionService) GetSuggestion(ctx context.Context, suggestionID string) (*ent.Suggestion, error) {
	sg, err := s.client.Suggestion.Get(ctx, suggestionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}
	return sg, nil
}

// MarkSubmitted records a successful court filing of a suggestion, storing
// the key of the rendered document. Marking twice returns ErrAlreadyExists.
func (s *SuggestionService) MarkSubmitted(httpCtx context.Context, suggestionID, storageKey string) (*ent.Suggestion, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sg, err := s.GetSuggestion(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if sg.Submitted {
		return nil, ErrAlreadyExists
	}

	update := sg.Update().
		SetSubmitted(true).
		SetSubmittedAt(time.Now())
	if storageKey != "" {
		update = update.SetStorageKey(storageKey)
	}

	sg, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark suggestion submitted: %w", err)
	}
	return sg, nil
}

// CountUnsubmitted returns how many of a case event's suggestions have not
// been filed yet.
func (s *SuggestionService) CountUnsubmitted(ctx context.Context, caseEventID string) (int, error) {
	n, err := s.client.Suggestion.Query().
		Where(
			suggestion.CaseEventIDEQ(caseEventID),
			suggestion.SubmittedEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsubmitted suggestions: %w", err)
	}
	return n, nil
}
