package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseChannel(t *testing.T) {
	tests := []struct {
		name   string
		caseID string
		want   string
	}{
		{
			name:   "formats case channel correctly",
			caseID: "abc-123",
			want:   "case:abc-123",
		},
		{
			name:   "handles UUID format",
			caseID: "550e8400-e29b-41d4-a716-446655440000",
			want:   "case:550e8400-e29b-41d4-a716-446655440000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CaseChannel(tt.caseID))
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	types := []string{
		EventTypeCaseUpdated,
		EventTypeMilestoneUpdated,
		EventTypeFilingSubmitted,
		EventTypeSuggestionSubmitted,
		EventTypeAnalysisCompleted,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestGlobalCasesChannel(t *testing.T) {
	assert.Equal(t, "cases", GlobalCasesChannel)
}
