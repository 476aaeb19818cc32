package workflow

import (
	"sync"

	"github.com/andeslegal/cobranza/pkg/models"
)

// Registry hands out one pipeline per (case, document kind). Each pipeline
// is owned exclusively by its case for the registry's lifetime; state is
// in-memory only and discarded when the case is released.
type Registry struct {
	extractor Extractor
	analyzer  Analyzer
	sender    Sender
	notifier  AnalysisNotifier

	mu        sync.Mutex
	pipelines map[registryKey]*Pipeline
}

type registryKey struct {
	caseID string
	kind   models.DocKind
}

// NewRegistry creates a registry wiring every pipeline to the given stage
// collaborators. notifier receives completed analysis runs and may be nil.
func NewRegistry(extractor Extractor, analyzer Analyzer, sender Sender, notifier AnalysisNotifier) *Registry {
	return &Registry{
		extractor: extractor,
		analyzer:  analyzer,
		sender:    sender,
		notifier:  notifier,
		pipelines: make(map[registryKey]*Pipeline),
	}
}

// Pipeline returns the existing pipeline for the case and kind, creating
// one on first use.
func (r *Registry) Pipeline(caseID string, kind models.DocKind) *Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey{caseID: caseID, kind: kind}
	if p, ok := r.pipelines[key]; ok {
		return p
	}
	p := NewPipeline(kind, r.extractor, r.analyzer, r.sender)
	p.caseID = caseID
	p.notifier = r.notifier
	r.pipelines[key] = p
	return p
}

// Release discards all pipeline state for a case, for both document kinds.
func (r *Registry) Release(caseID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pipelines, registryKey{caseID: caseID, kind: models.DocKindDemand})
	delete(r.pipelines, registryKey{caseID: caseID, kind: models.DocKindPreliminary})
}
