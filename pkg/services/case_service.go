package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/andeslegal/cobranza/ent"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/timeline"
)

// CaseService manages collection case lifecycle and milestone slots
type CaseService struct {
	client *ent.Client
}

// NewCaseService creates a new CaseService
func NewCaseService(client *ent.Client) *CaseService {
	return &CaseService{client: client}
}

// CreateCase opens a new collection case. The (rol, court) pair is unique;
// a duplicate returns ErrAlreadyExists.
func (s *CaseService) CreateCase(httpCtx context.Context, req models.CreateCaseRequest) (*ent.CollectionCase, error) {
	if strings.TrimSpace(req.Rol) == "" {
		return nil, NewValidationError("rol", "required")
	}
	if strings.TrimSpace(req.Court) == "" {
		return nil, NewValidationError("court", "required")
	}
	if strings.TrimSpace(req.DebtorName) == "" {
		return nil, NewValidationError("debtor_name", "required")
	}
	if strings.TrimSpace(req.DebtorRUT) == "" {
		return nil, NewValidationError("debtor_rut", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	c, err := s.client.CollectionCase.Create().
		SetID(uuid.New().String()).
		SetRol(strings.TrimSpace(req.Rol)).
		SetCourt(strings.TrimSpace(req.Court)).
		SetDebtorName(strings.TrimSpace(req.DebtorName)).
		SetDebtorRut(strings.TrimSpace(req.DebtorRUT)).
		SetStatus(collectioncase.StatusActive).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	return c, nil
}

// GetCase retrieves a case by ID with optional edge loading
func (s *CaseService) GetCase(ctx context.Context, caseID string, withEdges bool) (*ent.CollectionCase, error) {
	query := s.client.CollectionCase.Query().Where(collectioncase.IDEQ(caseID))

	if withEdges {
		query = query.
			WithEvents(func(q *ent.CaseEventQuery) {
				q.WithSuggestions().Order(ent.Asc(caseevent.FieldCreatedAt))
			}).
			WithDocuments()
	}

	c, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	return c, nil
}

// ListCases lists cases with filtering and pagination
func (s *CaseService) ListCases(ctx context.Context, filters models.CaseFilters) (*models.CaseListResponse, error) {
	query := s.client.CollectionCase.Query()

	if filters.Status != "" {
		query = query.Where(collectioncase.StatusEQ(collectioncase.Status(filters.Status)))
	}
	if filters.Court != "" {
		query = query.Where(collectioncase.CourtEQ(filters.Court))
	}
	if filters.DebtorRUT != "" {
		query = query.Where(collectioncase.DebtorRutEQ(filters.DebtorRUT))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(collectioncase.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(collectioncase.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(collectioncase.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	cases, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(collectioncase.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	return &models.CaseListResponse{
		Cases:      cases,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// SearchCases performs Spanish full-text search over debtor names and rols
func (s *CaseService) SearchCases(ctx context.Context, query string, limit int) ([]*ent.CollectionCase, error) {
	if limit <= 0 {
		limit = 20
	}

	cases, err := s.client.CollectionCase.Query().
		Where(collectioncase.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP(
				"to_tsvector('spanish', debtor_name || ' ' || rol) @@ plainto_tsquery('spanish', $1)",
				query))
		}).
		Limit(limit).
		Order(ent.Desc(collectioncase.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search cases: %w", err)
	}

	return cases, nil
}

// UpsertMilestone sets or clears one milestone slot of a case timeline. A
// case holds at most one slot per milestone; a repeated upsert updates the
// existing slot in place. Dating the terminal milestone flips the case to
// finished, clearing it flips the case back to active.
func (s *CaseService) UpsertMilestone(httpCtx context.Context, caseID string, req models.UpsertMilestoneRequest) (*ent.CaseEvent, error) {
	if !req.Milestone.Valid() {
		return nil, NewValidationError("milestone", fmt.Sprintf("unknown milestone %q", req.Milestone))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := tx.CollectionCase.Query().
		Where(collectioncase.IDEQ(caseID), collectioncase.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}

	// A finished case accepts writes only to the terminal milestone, which
	// is how it gets reopened.
	if c.Status == collectioncase.StatusFinished && req.Milestone != timeline.MilestoneFinished {
		return nil, ErrCaseFinished
	}

	now := time.Now()
	existing, err := tx.CaseEvent.Query().
		Where(
			caseevent.CaseIDEQ(caseID),
			caseevent.MilestoneEQ(caseevent.Milestone(req.Milestone)),
		).
		Only(ctx)

	var slot *ent.CaseEvent
	switch {
	case err == nil:
		update := existing.Update().
			SetDetail(req.Detail).
			SetUpdatedAt(now)
		if req.OccurredAt != nil {
			update = update.SetOccurredAt(*req.OccurredAt)
		} else {
			update = update.ClearOccurredAt()
		}
		slot, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update milestone slot: %w", err)
		}
	case ent.IsNotFound(err):
		create := tx.CaseEvent.Create().
			SetID(uuid.New().String()).
			SetCaseID(caseID).
			SetMilestone(caseevent.Milestone(req.Milestone)).
			SetDetail(req.Detail).
			SetCreatedAt(now).
			SetUpdatedAt(now)
		if req.OccurredAt != nil {
			create = create.SetOccurredAt(*req.OccurredAt)
		}
		slot, err = create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create milestone slot: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to query milestone slot: %w", err)
	}

	// The terminal milestone drives case status.
	if req.Milestone == timeline.MilestoneFinished {
		status := collectioncase.StatusActive
		if req.OccurredAt != nil {
			status = collectioncase.StatusFinished
		}
		if _, err := c.Update().SetStatus(status).SetUpdatedAt(now).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to update case status: %w", err)
		}
	} else {
		if _, err := c.Update().SetUpdatedAt(now).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to touch case: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return slot, nil
}

// GetTimeline assembles the classified progress bar for a case as of now.
func (s *CaseService) GetTimeline(ctx context.Context, caseID string) (*models.CaseTimelineResponse, error) {
	return s.GetTimelineAt(ctx, caseID, time.Now())
}

// GetTimelineAt classifies the case timeline at a given instant. Derivation
// is pure, so the same instant always yields the same response.
func (s *CaseService) GetTimelineAt(ctx context.Context, caseID string, asOf time.Time) (*models.CaseTimelineResponse, error) {
	c, err := s.client.CollectionCase.Query().
		Where(collectioncase.IDEQ(caseID), collectioncase.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}

	slots, err := s.client.CaseEvent.Query().
		Where(caseevent.CaseIDEQ(caseID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load milestone slots: %w", err)
	}

	events := make([]timeline.Event, 0, len(slots))
	for _, slot := range slots {
		events = append(events, timeline.Event{
			Milestone:  timeline.Milestone(slot.Milestone),
			OccurredAt: slot.OccurredAt,
		})
	}

	return &models.CaseTimelineResponse{
		CaseID:   caseID,
		Derived:  timeline.Derive(events, asOf),
		AsOf:     asOf,
		Finished: c.Status == collectioncase.StatusFinished,
	}, nil
}

// GetCaseEvent retrieves a milestone slot by its own ID.
func (s *CaseService) GetCaseEvent(ctx context.Context, eventID string) (*ent.CaseEvent, error) {
	slot, err := s.client.CaseEvent.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case event: %w", err)
	}
	return slot, nil
}

// GetMilestoneSlot retrieves one milestone slot of a case, ErrNotFound when
// the slot has never been upserted.
func (s *CaseService) GetMilestoneSlot(ctx context.Context, caseID string, m timeline.Milestone) (*ent.CaseEvent, error) {
	slot, err := s.client.CaseEvent.Query().
		Where(
			caseevent.CaseIDEQ(caseID),
			caseevent.MilestoneEQ(caseevent.Milestone(m)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get milestone slot: %w", err)
	}
	return slot, nil
}

// SoftDeleteCase marks a case deleted without destroying its history.
func (s *CaseService) SoftDeleteCase(ctx context.Context, caseID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.CollectionCase.Update().
		Where(collectioncase.IDEQ(caseID), collectioncase.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to soft delete case: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RestoreCase restores a soft-deleted case
func (s *CaseService) RestoreCase(ctx context.Context, caseID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.CollectionCase.UpdateOneID(caseID).
		ClearDeletedAt().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore case: %w", err)
	}
	return nil
}

// SoftDeleteOldFinishedCases soft deletes finished cases past the retention
// period.
func (s *CaseService) SoftDeleteOldFinishedCases(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.CollectionCase.Update().
		Where(
			collectioncase.StatusEQ(collectioncase.StatusFinished),
			collectioncase.UpdatedAtLT(cutoff),
			collectioncase.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete finished cases: %w", err)
	}

	return count, nil
}
