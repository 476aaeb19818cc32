// Package suggest drives the candidate-response selector: listing scored
// suggestions for a case event, previewing them by their content shape and
// relaying the chosen one to the court e-filing gateway.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/andeslegal/cobranza/ent"
	"github.com/andeslegal/cobranza/pkg/events"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/render"
	"github.com/andeslegal/cobranza/pkg/services"
)

var (
	// ErrSubmissionPending is returned while another submission for the
	// same case event is still in flight.
	ErrSubmissionPending = errors.New("a submission is already pending for this case event")

	// ErrNotSubmittable is returned when a suggestion has no content that
	// renders to a filing.
	ErrNotSubmittable = errors.New("suggestion is not submittable")
)

// CourtSender relays a filing to the court e-filing system. Implemented by
// gateway.PJUDClient.
type CourtSender interface {
	SendDemand(ctx context.Context, creds models.Credentials, index int) error
}

// ReloadSignaler tells connected clients to reload after a submission.
// Implemented by events.EventPublisher.
type ReloadSignaler interface {
	PublishSuggestionSubmitted(ctx context.Context, caseID string, payload events.SuggestionSubmittedPayload) error
}

// Selector lists, previews and submits the suggestions of case events. One
// submission per case event may be in flight at a time; a second attempt
// fails fast instead of double-filing.
type Selector struct {
	suggestions *services.SuggestionService
	documents   *services.DocumentService
	cases       *services.CaseService
	sender      CourtSender
	signaler    ReloadSignaler

	mu       sync.Mutex
	inflight map[string]bool
}

// NewSelector creates a Selector over the given stores and gateway.
func NewSelector(
	suggestions *services.SuggestionService,
	documents *services.DocumentService,
	cases *services.CaseService,
	sender CourtSender,
	signaler ReloadSignaler,
) *Selector {
	return &Selector{
		suggestions: suggestions,
		documents:   documents,
		cases:       cases,
		sender:      sender,
		signaler:    signaler,
		inflight:    make(map[string]bool),
	}
}

// List returns a case event's suggestions oldest first, each flagged with
// whether its content renders to a preview. Undecodable content never fails
// the listing.
func (s *Selector) List(ctx context.Context, caseEventID string) ([]models.SuggestionPreview, error) {
	stored, err := s.suggestions.ListSuggestions(ctx, caseEventID)
	if err != nil {
		return nil, err
	}

	previews := make([]models.SuggestionPreview, 0, len(stored))
	for _, sg := range stored {
		preview := models.SuggestionPreview{
			SuggestionID: sg.ID,
			Name:         sg.Name,
			DocType:      models.SuggestionType(sg.DocType),
			Score:        sg.Score,
			Submitted:    sg.Submitted,
		}
		if _, err := decodeStored(sg); err == nil {
			preview.Available = true
		}
		previews = append(previews, preview)
	}
	return previews, nil
}

// Preview returns one suggestion with its content expanded into display
// sections. ErrUnsupportedShape when the content does not match its tag.
func (s *Selector) Preview(ctx context.Context, suggestionID string) (*models.SuggestionPreview, error) {
	sg, err := s.suggestions.GetSuggestion(ctx, suggestionID)
	if err != nil {
		return nil, err
	}

	content, err := decodeStored(sg)
	if err != nil {
		return nil, err
	}

	return &models.SuggestionPreview{
		SuggestionID: sg.ID,
		Name:         sg.Name,
		DocType:      models.SuggestionType(sg.DocType),
		Score:        sg.Score,
		Submitted:    sg.Submitted,
		Available:    true,
		Sections:     sectionsOf(content),
	}, nil
}

// PreviewPDF renders one suggestion to its filing PDF without submitting.
func (s *Selector) PreviewPDF(ctx context.Context, suggestionID string) ([]byte, error) {
	sg, err := s.suggestions.GetSuggestion(ctx, suggestionID)
	if err != nil {
		return nil, err
	}

	content, err := decodeStored(sg)
	if err != nil {
		return nil, err
	}
	return render.Suggestion(sg.Name, content)
}

// Submit renders the suggestion and files it at the court under the given
// demand index. On success the rendered PDF is stored with the case, the
// suggestion is marked submitted and connected clients are told to reload.
// On gateway failure nothing is recorded, so the submission can be retried.
func (s *Selector) Submit(ctx context.Context, creds models.Credentials, suggestionID string, courtIndex int) (*ent.Suggestion, error) {
	sg, err := s.suggestions.GetSuggestion(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if sg.Submitted {
		return nil, services.ErrAlreadyExists
	}

	content, err := decodeStored(sg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSubmittable, err)
	}
	pdf, err := render.Suggestion(sg.Name, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSubmittable, err)
	}

	if !s.acquire(sg.CaseEventID) {
		return nil, ErrSubmissionPending
	}
	defer s.release(sg.CaseEventID)

	slot, err := s.cases.GetCaseEvent(ctx, sg.CaseEventID)
	if err != nil {
		return nil, err
	}

	if err := s.sender.SendDemand(ctx, creds, courtIndex); err != nil {
		return nil, err
	}

	// The filing went through; everything after is bookkeeping.
	storageKey := ""
	doc, err := s.documents.Upload(ctx, models.UploadDocumentRequest{
		CaseID:      slot.CaseID,
		Kind:        models.DocumentResponse,
		Name:        sg.Name + ".pdf",
		ContentType: "application/pdf",
		SizeBytes:   int64(len(pdf)),
		Body:        bytes.NewReader(pdf),
	})
	if err != nil {
		slog.Warn("Failed to archive submitted filing", "suggestion_id", sg.ID, "error", err)
	} else {
		storageKey = doc.StorageKey
	}

	marked, err := s.suggestions.MarkSubmitted(ctx, sg.ID, storageKey)
	if err != nil {
		return nil, fmt.Errorf("filing sent but not recorded: %w", err)
	}

	if err := s.signaler.PublishSuggestionSubmitted(ctx, slot.CaseID, events.SuggestionSubmittedPayload{
		Type:         events.EventTypeSuggestionSubmitted,
		CaseID:       slot.CaseID,
		EventID:      slot.ID,
		SuggestionID: sg.ID,
	}); err != nil {
		slog.Warn("Failed to signal suggestion submission", "suggestion_id", sg.ID, "error", err)
	}

	return marked, nil
}

func (s *Selector) acquire(caseEventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[caseEventID] {
		return false
	}
	s.inflight[caseEventID] = true
	return true
}

func (s *Selector) release(caseEventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, caseEventID)
}

// decodeStored parses a stored suggestion's content against its type tag.
func decodeStored(sg *ent.Suggestion) (*models.DocumentContent, error) {
	if len(sg.Content) == 0 {
		return nil, fmt.Errorf("%w: no content", models.ErrUnsupportedShape)
	}
	raw, err := json.Marshal(sg.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnsupportedShape, err)
	}
	return models.DecodeDocumentContent(models.SuggestionType(sg.DocType), raw)
}

// sectionsOf flattens decoded content into titled display blocks.
func sectionsOf(content *models.DocumentContent) []models.Section {
	var sections []models.Section
	switch content.Type {
	case models.SuggestionResponse:
		doc := content.Response
		sections = append(sections, models.Section{Heading: doc.Heading})
		for i, arg := range doc.Arguments {
			sections = append(sections, models.Section{
				Heading: fmt.Sprintf("Argumento %d", i+1),
				Body:    arg,
			})
		}
		sections = append(sections, models.Section{Heading: "Por tanto", Body: doc.Prayer})

	case models.SuggestionExceptionsResponse:
		doc := content.ExceptionsResponse
		for _, exc := range doc.Exceptions {
			sections = append(sections, models.Section{Heading: exc.Title, Body: exc.Argument})
		}
		sections = append(sections, models.Section{Heading: "Por tanto", Body: doc.Prayer})

	case models.SuggestionCompromise:
		doc := content.Compromise
		for i, term := range doc.Terms {
			sections = append(sections, models.Section{
				Heading: fmt.Sprintf("Cláusula %d", i+1),
				Body:    term,
			})
		}
		for _, inst := range doc.Installments {
			sections = append(sections, models.Section{
				Heading: "Cuota",
				Body:    fmt.Sprintf("$%d con vencimiento %s", inst.Amount, inst.DueDate.Format("02-01-2006")),
			})
		}

	case models.SuggestionDemandCorrection:
		doc := content.DemandCorrection
		for _, corr := range doc.Corrections {
			sections = append(sections, models.Section{
				Heading: corr.Reference,
				Body:    fmt.Sprintf("Donde dice %q debe decir %q", corr.Original, corr.Corrected),
			})
		}
	}
	return sections
}
