package models

import (
	"time"

	"github.com/andeslegal/cobranza/ent"
	"github.com/andeslegal/cobranza/pkg/timeline"
)

// CreateCaseRequest contains the fields for opening a collection case.
type CreateCaseRequest struct {
	Rol        string `json:"rol"`
	Court      string `json:"court"`
	DebtorName string `json:"debtor_name"`
	DebtorRUT  string `json:"debtor_rut"`
}

// CaseFilters narrows and paginates case listings.
type CaseFilters struct {
	Status         string     `json:"status,omitempty"`
	Court          string     `json:"court,omitempty"`
	DebtorRUT      string     `json:"debtor_rut,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
}

// UpsertMilestoneRequest sets or clears the date of one milestone slot.
type UpsertMilestoneRequest struct {
	Milestone  timeline.Milestone `json:"milestone"`
	OccurredAt *time.Time         `json:"occurred_at,omitempty"`
	Detail     string             `json:"detail,omitempty"`
}

// CaseListResponse is a paginated case listing.
type CaseListResponse struct {
	Cases      []*ent.CollectionCase `json:"cases"`
	TotalCount int                   `json:"total_count"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}

// CaseTimelineResponse is the classified progress bar for a case.
type CaseTimelineResponse struct {
	CaseID   string           `json:"case_id"`
	Derived  timeline.Derived `json:"timeline"`
	AsOf     time.Time        `json:"as_of"`
	Finished bool             `json:"finished"`
}

// Credentials carry the user's court e-filing identity. They are relayed
// to the gateway per call and never persisted.
type Credentials struct {
	RUT      string `json:"rut"`
	Password string `json:"password"`
}
