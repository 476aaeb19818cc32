package models

// CreateSuggestionRequest attaches one scored candidate document to a case
// event. Content may be absent, which leaves the suggestion preview-only.
type CreateSuggestionRequest struct {
	CaseEventID string         `json:"case_event_id"`
	Name        string         `json:"name"`
	DocType     SuggestionType `json:"doc_type"`
	Content     map[string]any `json:"content,omitempty"`
	Score       float64        `json:"score"`
}

// SuggestionPreview is one renderable suggestion as shown in the selector.
// Available is false when the stored content does not decode to a known
// shape; such suggestions are listed but cannot be previewed or submitted.
type SuggestionPreview struct {
	SuggestionID string         `json:"suggestion_id"`
	Name         string         `json:"name"`
	DocType      SuggestionType `json:"doc_type"`
	Score        float64        `json:"score"`
	Submitted    bool           `json:"submitted"`
	Available    bool           `json:"available"`
	Sections     []Section      `json:"sections,omitempty"`
}
