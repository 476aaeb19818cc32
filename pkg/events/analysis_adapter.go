package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/andeslegal/cobranza/pkg/models"
)

// AnalysisPublisher forwards completed analysis runs from the workflow
// pipelines to the transient analysis.completed channel.
type AnalysisPublisher struct {
	publisher *EventPublisher
}

// NewAnalysisPublisher creates an adapter over an EventPublisher.
func NewAnalysisPublisher(p *EventPublisher) *AnalysisPublisher {
	return &AnalysisPublisher{publisher: p}
}

// AnalysisCompleted broadcasts the finished run to the case channel.
// Failures are logged and swallowed; the result stays available over REST.
func (a *AnalysisPublisher) AnalysisCompleted(ctx context.Context, caseID string, kind models.DocKind, result *models.AnalysisResult) {
	payload := AnalysisCompletedPayload{
		Type:      EventTypeAnalysisCompleted,
		CaseID:    caseID,
		Kind:      string(kind),
		Score:     result.Score,
		Findings:  len(result.Findings),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
	if err := a.publisher.PublishAnalysisCompleted(ctx, caseID, payload); err != nil {
		slog.Warn("Failed to publish analysis completion",
			"case_id", caseID, "kind", kind, "error", err)
	}
}
