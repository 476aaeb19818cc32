// Package workflow drives the staged document pipeline for a case:
// Extract -> Generate -> Analyze (side branch) -> Adjust -> Send.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/ordering"
	"github.com/andeslegal/cobranza/pkg/render"
)

// ErrBusy is returned when a stage is triggered while another run is in
// flight. Triggers are gated, never queued.
var ErrBusy = errors.New("a pipeline run is already in flight")

// ErrNoInput is returned when Generate or Adjust runs before a successful
// Extract.
var ErrNoInput = errors.New("no extracted input information yet")

// ChecklistError reports the pre-submission checks that failed. When it is
// returned, no network call was made.
type ChecklistError struct {
	Problems []string
}

func (e *ChecklistError) Error() string {
	return "submission checklist failed: " + strings.Join(e.Problems, "; ")
}

// Extractor produces structured demand input from evidence files and
// free-text context.
type Extractor interface {
	Extract(ctx context.Context, kind models.DocKind, files []gateway.EvidenceFile, contextText string) (*models.DemandInput, error)
}

// Analyzer reviews a generated document structure. Its failure never blocks
// the pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, kind models.DocKind, structure *models.DocumentStructure) (*models.AnalysisResult, error)
}

// Submission is what the Send stage hands to the court gateway.
type Submission struct {
	Kind           models.DocKind
	CourtIndex     int
	PDF            []byte
	EvidenceLabels []string
}

// Sender relays a validated submission to the court e-filing system.
type Sender interface {
	Send(ctx context.Context, creds models.Credentials, sub Submission) error
}

// AnalysisNotifier is told when a background analysis run finishes with a
// result. Delivery is advisory; the pipeline never blocks on it.
type AnalysisNotifier interface {
	AnalysisCompleted(ctx context.Context, caseID string, kind models.DocKind, result *models.AnalysisResult)
}

const analyzeTimeout = 2 * time.Minute

// Pipeline owns the in-memory state of one document workflow: the current
// structured input, the generated structure, the cached rendered PDF and
// the latest analysis. State lives only as long as the instance.
type Pipeline struct {
	caseID    string
	kind      models.DocKind
	extractor Extractor
	analyzer  Analyzer
	sender    Sender
	notifier  AnalysisNotifier // optional

	busy atomic.Bool

	mu        sync.Mutex
	evidence  *ordering.List
	requests  *ordering.List
	input     *models.DemandInput
	structure *models.DocumentStructure
	pdf       []byte
	analysis  *models.AnalysisResult

	analysisDone chan struct{}
}

// NewPipeline creates an empty pipeline for the given document kind.
func NewPipeline(kind models.DocKind, extractor Extractor, analyzer Analyzer, sender Sender) *Pipeline {
	return &Pipeline{
		kind:      kind,
		extractor: extractor,
		analyzer:  analyzer,
		sender:    sender,
		evidence:  ordering.NewList(ordering.DefaultMaxItems),
		requests:  ordering.NewList(ordering.DefaultMaxItems),
	}
}

// acquire claims the busy flag, failing instead of queueing.
func (p *Pipeline) acquire() error {
	if !p.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

func (p *Pipeline) release() { p.busy.Store(false) }

// AddEvidence inserts uploaded files, enforcing the item cap atomically.
func (p *Pipeline) AddEvidence(items ...ordering.Item) ([]ordering.Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evidence.Insert(items...)
}

// MoveEvidence reorders the evidence list.
func (p *Pipeline) MoveEvidence(from, to int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evidence.Move(from, to)
}

// RemoveEvidence drops one uploaded file by id.
func (p *Pipeline) RemoveEvidence(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evidence.Remove(id)
}

// Evidence returns the current evidence items in order.
func (p *Pipeline) Evidence() []ordering.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.evidence.Items()
}

// AddRequest appends an additional request clause (otrosí).
func (p *Pipeline) AddRequest(name, text string) (ordering.Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	items, err := p.requests.Insert(ordering.Item{Name: name, Payload: []byte(text)})
	if err != nil {
		return ordering.Item{}, err
	}
	return items[0], nil
}

// MoveRequest reorders the request clauses.
func (p *Pipeline) MoveRequest(from, to int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests.Move(from, to)
}

// RenameRequest relabels a clause; duplicate labels are rejected.
func (p *Pipeline) RenameRequest(id, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests.Rename(id, name)
}

// RemoveRequest drops one clause by id.
func (p *Pipeline) RemoveRequest(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests.Remove(id)
}

// Requests returns the current clauses in order.
func (p *Pipeline) Requests() []ordering.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests.Items()
}

// Extract runs the first stage: evidence plus context in, structured input
// out. A failure leaves any previously extracted input untouched.
func (p *Pipeline) Extract(ctx context.Context, contextText string) (*models.DemandInput, error) {
	if err := p.acquire(); err != nil {
		return nil, err
	}
	defer p.release()

	p.mu.Lock()
	items := p.evidence.Items()
	p.mu.Unlock()

	files := make([]gateway.EvidenceFile, len(items))
	for i, it := range items {
		files[i] = gateway.EvidenceFile{
			Name:        it.Name,
			ContentType: "application/pdf",
			Data:        it.Payload,
		}
	}

	input, err := p.extractor.Extract(ctx, p.kind, files, contextText)
	if err != nil {
		return nil, fmt.Errorf("extract stage: %w", err)
	}

	p.mu.Lock()
	p.input = input
	p.mu.Unlock()
	return input, nil
}

// Generate runs the second stage: it deterministically builds the document
// structure from the current input, renders the PDF into memory, and kicks
// off the analysis side branch. A failure leaves the previous structure and
// PDF untouched.
func (p *Pipeline) Generate(ctx context.Context) (*models.DocumentStructure, error) {
	if err := p.acquire(); err != nil {
		return nil, err
	}
	defer p.release()
	return p.generate(ctx)
}

// Adjust replaces the structured input with the edited version and re-runs
// Generate (and therefore Analyze), overwriting the cached PDF.
func (p *Pipeline) Adjust(ctx context.Context, edited *models.DemandInput) (*models.DocumentStructure, error) {
	if err := p.acquire(); err != nil {
		return nil, err
	}
	defer p.release()

	if edited == nil {
		return nil, ErrNoInput
	}
	p.mu.Lock()
	p.input = edited
	p.mu.Unlock()
	return p.generate(ctx)
}

func (p *Pipeline) generate(ctx context.Context) (*models.DocumentStructure, error) {
	p.mu.Lock()
	input := p.input
	requests := p.requests.Items()
	p.mu.Unlock()

	if input == nil {
		return nil, ErrNoInput
	}

	// The user-ordered clauses are part of the input information.
	input.ExtraRequests = make([]string, 0, len(requests))
	for _, r := range requests {
		input.ExtraRequests = append(input.ExtraRequests, string(r.Payload))
	}

	structure := BuildStructure(p.kind, input)
	pdf, err := render.Document(structure)
	if err != nil {
		return nil, fmt.Errorf("generate stage: %w", err)
	}

	done := make(chan struct{})
	p.mu.Lock()
	p.structure = structure
	p.pdf = pdf
	p.analysisDone = done
	p.mu.Unlock()

	// Analysis is fire-and-forget relative to Generate: it is triggered
	// automatically, and its failure never blocks advancing to Send.
	go p.runAnalysis(structure, done)

	return structure, nil
}

func (p *Pipeline) runAnalysis(structure *models.DocumentStructure, done chan struct{}) {
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	result, err := p.analyzer.Analyze(ctx, p.kind, structure)
	if err != nil {
		slog.Warn("document analysis failed", "kind", p.kind, "error", err)
		return
	}

	p.mu.Lock()
	// Ignore stale results: a newer Generate has replaced the structure.
	stale := p.structure != structure
	if !stale {
		p.analysis = result
	}
	p.mu.Unlock()

	if !stale && p.notifier != nil {
		p.notifier.AnalysisCompleted(ctx, p.caseID, p.kind, result)
	}
}

// AnalysisDone reports completion of the analysis kicked off by the latest
// Generate. Nil when Generate has not run.
func (p *Pipeline) AnalysisDone() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.analysisDone
}

// Analysis returns the latest analysis result, if any.
func (p *Pipeline) Analysis() *models.AnalysisResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.analysis
}

// Input returns the current structured input information.
func (p *Pipeline) Input() *models.DemandInput {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input
}

// PDF returns the cached rendered document.
func (p *Pipeline) PDF() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pdf
}

// checklist validates the submission preconditions. All violations are
// collected so the user sees the full list at once.
func (p *Pipeline) checklist() *ChecklistError {
	p.mu.Lock()
	defer p.mu.Unlock()

	var problems []string
	if len(p.pdf) == 0 {
		problems = append(problems, "no existe un documento generado para enviar")
	}
	n := p.evidence.Len()
	if n < 1 || n > ordering.DefaultMaxItems {
		problems = append(problems,
			fmt.Sprintf("la cantidad de documentos fundantes debe estar entre 1 y %d", ordering.DefaultMaxItems))
	}
	if p.input == nil {
		problems = append(problems, "falta la información estructurada de la demanda")
	} else {
		if p.input.CountRole(models.RolePlaintiff) < 1 {
			problems = append(problems, "debe existir al menos un demandante")
		}
		if p.input.CountRole(models.RoleSponsoringAttorney) < 1 {
			problems = append(problems, "debe existir al menos un abogado patrocinante")
		}
		if p.input.CountRole(models.RoleDefendant) < 1 {
			problems = append(problems, "debe existir al menos un demandado")
		}
	}

	if len(problems) > 0 {
		return &ChecklistError{Problems: problems}
	}
	return nil
}

// Send validates the checklist and, only when every check passes, relays
// the rendered document to the court. A checklist violation aborts with no
// network call. A gateway timeout is passed through unchanged so callers
// can show the "may have partially succeeded" message.
func (p *Pipeline) Send(ctx context.Context, creds models.Credentials, courtIndex int) error {
	if err := p.acquire(); err != nil {
		return err
	}
	defer p.release()

	if err := p.checklist(); err != nil {
		return err
	}

	p.mu.Lock()
	sub := Submission{
		Kind:           p.kind,
		CourtIndex:     courtIndex,
		PDF:            p.pdf,
		EvidenceLabels: p.evidence.Labels("Pagaré"),
	}
	p.mu.Unlock()

	if err := p.sender.Send(ctx, creds, sub); err != nil {
		return fmt.Errorf("send stage: %w", err)
	}
	return nil
}
