// Package models contains the request/response and domain types shared by
// the service layer, the workflow pipeline and the HTTP API.
package models

import "time"

// DocKind selects which document pipeline a workflow run drives.
type DocKind string

// Pipeline document kinds.
const (
	DocKindDemand      DocKind = "demand_text"
	DocKindPreliminary DocKind = "preliminary_measure"
)

// Valid reports whether k is a known document kind.
func (k DocKind) Valid() bool {
	return k == DocKindDemand || k == DocKindPreliminary
}

// PartyRole classifies a party named in the structured demand input.
type PartyRole string

// Party roles required by the pre-submission checklist.
const (
	RolePlaintiff          PartyRole = "plaintiff"
	RoleSponsoringAttorney PartyRole = "sponsoring_attorney"
	RoleDefendant          PartyRole = "defendant"
	RoleRepresentative     PartyRole = "representative"
)

// Party is one person or company involved in the collection suit.
type Party struct {
	Role    PartyRole `json:"role"`
	Name    string    `json:"name"`
	RUT     string    `json:"rut"`
	Address string    `json:"address,omitempty"`
}

// DebtItem is one credit instrument backing the demand (pagaré, factura...).
type DebtItem struct {
	Instrument string     `json:"instrument"`
	Amount     int64      `json:"amount"`
	Currency   string     `json:"currency"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

// DemandInput is the structured "input information" produced by the Extract
// stage and edited in the Adjust stage. The Generate stage consumes it
// deterministically.
type DemandInput struct {
	Court       string     `json:"court"`
	Procedure   string     `json:"procedure,omitempty"`
	Parties     []Party    `json:"parties"`
	Debts       []DebtItem `json:"debts"`
	ContextText string     `json:"context_text,omitempty"`
	// ExtraRequests are the user-ordered additional request clauses
	// (otrosíes); their order is part of the document.
	ExtraRequests []string `json:"extra_requests,omitempty"`
}

// CountRole returns how many parties carry the given role.
func (in *DemandInput) CountRole(role PartyRole) int {
	n := 0
	for _, p := range in.Parties {
		if p.Role == role {
			n++
		}
	}
	return n
}

// Section is one titled block of a generated document.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// DocumentStructure is the Generate stage's output: the full structured
// document from which the PDF is rendered.
type DocumentStructure struct {
	Kind     DocKind   `json:"kind"`
	Title    string    `json:"title"`
	Preamble string    `json:"preamble,omitempty"`
	Sections []Section `json:"sections"`
	Prayer   string    `json:"prayer,omitempty"`
}

// Finding is one observation from the Analyze stage.
type Finding struct {
	Severity string `json:"severity"` // info, warning, critical
	Message  string `json:"message"`
}

// AnalysisResult is the Analyze stage's output. It informs the user but
// never blocks advancing to Send.
type AnalysisResult struct {
	Score    float64   `json:"score"`
	Findings []Finding `json:"findings"`
}
