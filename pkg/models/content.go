package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedShape is returned when a suggestion's content does not match
// the shape its declared type tag requires. Callers fall back to a
// "preview unavailable" state instead of failing the whole listing.
var ErrUnsupportedShape = errors.New("document content does not match its declared type")

// SuggestionType discriminates the content shape of a candidate response
// document.
type SuggestionType string

// Suggestion document types.
const (
	SuggestionResponse           SuggestionType = "response"
	SuggestionExceptionsResponse SuggestionType = "exceptions_response"
	SuggestionCompromise         SuggestionType = "compromise"
	SuggestionDemandCorrection   SuggestionType = "demand_text_correction"
	SuggestionOther              SuggestionType = "other"
)

// Valid reports whether t names a known suggestion type.
func (t SuggestionType) Valid() bool {
	switch t {
	case SuggestionResponse, SuggestionExceptionsResponse,
		SuggestionCompromise, SuggestionDemandCorrection, SuggestionOther:
		return true
	}
	return false
}

// ResponseContent answers the counterparty's last filing.
type ResponseContent struct {
	Heading   string   `json:"heading"`
	Arguments []string `json:"arguments"`
	Prayer    string   `json:"prayer"`
}

// Exception is one procedural or substantive exception raised against the
// demand.
type Exception struct {
	Title    string `json:"title"`
	Argument string `json:"argument"`
}

// ExceptionsResponseContent rebuts the exceptions opposed by the defense.
type ExceptionsResponseContent struct {
	Exceptions []Exception `json:"exceptions"`
	Prayer     string      `json:"prayer"`
}

// Installment is one payment of a proposed compromise.
type Installment struct {
	DueDate time.Time `json:"due_date"`
	Amount  int64     `json:"amount"`
}

// CompromiseContent proposes a payment agreement (avenimiento).
type CompromiseContent struct {
	Terms        []string      `json:"terms"`
	Installments []Installment `json:"installments"`
}

// Correction is one amendment to the original demand text.
type Correction struct {
	Reference string `json:"reference"`
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// DemandCorrectionContent rectifies the originally filed demand text.
type DemandCorrectionContent struct {
	Corrections []Correction `json:"corrections"`
}

// DocumentContent is the tagged union of suggestion document shapes.
// Exactly one variant is non-nil; the Type field is the discriminator.
// It is validated once, at deserialization, so downstream code never
// re-checks shapes ad hoc.
type DocumentContent struct {
	Type               SuggestionType             `json:"type"`
	Response           *ResponseContent           `json:"response,omitempty"`
	ExceptionsResponse *ExceptionsResponseContent `json:"exceptions_response,omitempty"`
	Compromise         *CompromiseContent         `json:"compromise,omitempty"`
	DemandCorrection   *DemandCorrectionContent   `json:"demand_text_correction,omitempty"`
}

// DecodeDocumentContent parses raw suggestion content against the declared
// type tag. A shape mismatch (wrong or empty variant for the tag) returns
// ErrUnsupportedShape; the "other" type never decodes to a renderable shape.
func DecodeDocumentContent(docType SuggestionType, raw json.RawMessage) (*DocumentContent, error) {
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrUnsupportedShape, docType)
	}
	if docType == SuggestionOther {
		return nil, fmt.Errorf("%w: type %q has no renderable shape", ErrUnsupportedShape, docType)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty content for type %q", ErrUnsupportedShape, docType)
	}

	content := &DocumentContent{Type: docType}

	var err error
	switch docType {
	case SuggestionResponse:
		var v ResponseContent
		if err = json.Unmarshal(raw, &v); err == nil && len(v.Arguments) > 0 {
			content.Response = &v
			return content, nil
		}
	case SuggestionExceptionsResponse:
		var v ExceptionsResponseContent
		if err = json.Unmarshal(raw, &v); err == nil && len(v.Exceptions) > 0 {
			content.ExceptionsResponse = &v
			return content, nil
		}
	case SuggestionCompromise:
		var v CompromiseContent
		if err = json.Unmarshal(raw, &v); err == nil && len(v.Terms) > 0 {
			content.Compromise = &v
			return content, nil
		}
	case SuggestionDemandCorrection:
		var v DemandCorrectionContent
		if err = json.Unmarshal(raw, &v); err == nil && len(v.Corrections) > 0 {
			content.DemandCorrection = &v
			return content, nil
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedShape, err)
	}
	return nil, fmt.Errorf("%w: required fields missing for type %q", ErrUnsupportedShape, docType)
}
