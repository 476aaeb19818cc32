package workflow

import (
	"context"

	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/models"
)

// PJUDSender adapts the court gateway client to the pipeline's Sender. The
// court identifies the target demand by its index in the user's demand
// list; the PDF and labels stay client-side in the filing record.
type PJUDSender struct {
	client *gateway.PJUDClient
}

// NewPJUDSender wraps a court gateway client.
func NewPJUDSender(client *gateway.PJUDClient) *PJUDSender {
	return &PJUDSender{client: client}
}

// Send files the submission under its demand list index.
func (s *PJUDSender) Send(ctx context.Context, creds models.Credentials, sub Submission) error {
	return s.client.SendDemand(ctx, creds, sub.CourtIndex)
}
