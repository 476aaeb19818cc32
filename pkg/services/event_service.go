package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// EventService reads and prunes the raw events table that backs WebSocket
// delivery. The table is written by the event publisher with plain SQL and
// is not part of the ORM schema, so this service works on *sql.DB directly.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

// StoredEvent is one persisted event row with its decoded payload.
type StoredEvent struct {
	ID        int
	CaseID    string
	Channel   string
	Payload   map[string]any
	CreatedAt time.Time
}

// GetEventsSince retrieves events on a channel after the given ID, oldest
// first, capped at limit. Used by the WebSocket catchup mechanism.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]StoredEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, case_id, channel, payload, created_at
		 FROM events
		 WHERE channel = $1 AND id > $2
		 ORDER BY id ASC
		 LIMIT $3`,
		channel, sinceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []StoredEvent
	for rows.Next() {
		var (
			evt        StoredEvent
			rawPayload []byte
		)
		if err := rows.Scan(&evt.ID, &evt.CaseID, &evt.Channel, &rawPayload, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		if err := json.Unmarshal(rawPayload, &evt.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode event %d payload: %w", evt.ID, err)
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}

	return events, nil
}

// CleanupCaseEvents removes all persisted events for a case. Called when a
// case is hard deleted; active subscribers have already received them.
func (s *EventService) CleanupCaseEvents(ctx context.Context, caseID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := s.db.ExecContext(writeCtx, `DELETE FROM events WHERE case_id = $1`, caseID)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup case events: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleaned up events: %w", err)
	}
	return int(count), nil
}

// CleanupOrphanedEvents removes events whose case no longer exists.
func (s *EventService) CleanupOrphanedEvents(ctx context.Context) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := s.db.ExecContext(writeCtx,
		`DELETE FROM events
		 WHERE case_id <> ''
		   AND NOT EXISTS (SELECT 1 FROM collection_cases c WHERE c.case_id = events.case_id)`)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleaned up events: %w", err)
	}
	return int(count), nil
}

// CleanupOldEvents removes events older than the retention window. Events
// only serve reconnect catchup, so stale rows are safe to drop.
func (s *EventService) CleanupOldEvents(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %s", retention)
	}
	cutoff := time.Now().Add(-retention)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := s.db.ExecContext(writeCtx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleaned up events: %w", err)
	}
	return int(count), nil
}
