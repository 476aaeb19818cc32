package workflow

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/ordering"
)

type fakeExtractor struct {
	mu      sync.Mutex
	input   *models.DemandInput
	err     error
	calls   int
	started chan struct{}
	block   chan struct{}
}

func (f *fakeExtractor) Extract(ctx context.Context, kind models.DocKind, files []gateway.EvidenceFile, contextText string) (*models.DemandInput, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.input, nil
}

type fakeAnalyzer struct {
	result *models.AnalysisResult
	err    error
	calls  atomic.Int32
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, kind models.DocKind, structure *models.DocumentStructure) (*models.AnalysisResult, error) {
	f.calls.Add(1)
	return f.result, f.err
}

type fakeSender struct {
	err   error
	calls atomic.Int32
	last  Submission
}

func (f *fakeSender) Send(ctx context.Context, creds models.Credentials, sub Submission) error {
	f.calls.Add(1)
	f.last = sub
	return f.err
}

func completeInput() *models.DemandInput {
	return &models.DemandInput{
		Court: "Santiago",
		Parties: []models.Party{
			{Role: models.RolePlaintiff, Name: "Banco Austral", RUT: "96.000.000-1"},
			{Role: models.RoleSponsoringAttorney, Name: "María Pérez", RUT: "12.345.678-5"},
			{Role: models.RoleDefendant, Name: "Juan Soto", RUT: "9.876.543-2"},
		},
		Debts: []models.DebtItem{
			{Instrument: "Pagaré a la vista", Amount: 1_500_000, Currency: "CLP"},
		},
	}
}

func newTestPipeline(extractor *fakeExtractor, analyzer *fakeAnalyzer, sender *fakeSender) *Pipeline {
	if extractor == nil {
		extractor = &fakeExtractor{input: completeInput()}
	}
	if analyzer == nil {
		analyzer = &fakeAnalyzer{result: &models.AnalysisResult{Score: 0.9}}
	}
	if sender == nil {
		sender = &fakeSender{}
	}
	return NewPipeline(models.DocKindDemand, extractor, analyzer, sender)
}

func addEvidence(t *testing.T, p *Pipeline, n int) {
	t.Helper()
	items := make([]ordering.Item, n)
	for i := range items {
		items[i] = ordering.Item{Name: "pagaré", Payload: []byte("pdf-bytes")}
	}
	_, err := p.AddEvidence(items...)
	require.NoError(t, err)
}

func runFullPipeline(t *testing.T, p *Pipeline) {
	t.Helper()
	ctx := context.Background()
	addEvidence(t, p, 2)
	_, err := p.Extract(ctx, "cobro de tres pagarés")
	require.NoError(t, err)
	_, err = p.Generate(ctx)
	require.NoError(t, err)
	<-p.AnalysisDone()
}

func TestPipeline_FullRun(t *testing.T) {
	analyzer := &fakeAnalyzer{result: &models.AnalysisResult{Score: 0.8}}
	sender := &fakeSender{}
	p := newTestPipeline(nil, analyzer, sender)

	runFullPipeline(t, p)

	require.NotNil(t, p.Input())
	require.NotNil(t, p.PDF())
	assert.Equal(t, "%PDF", string(p.PDF()[:4]))
	require.NotNil(t, p.Analysis())
	assert.InDelta(t, 0.8, p.Analysis().Score, 1e-9)

	require.NoError(t, p.Send(context.Background(), models.Credentials{RUT: "1-9", Password: "x"}, 4))
	assert.Equal(t, int32(1), sender.calls.Load())
	assert.Equal(t, 4, sender.last.CourtIndex)
	assert.Equal(t, []string{"Pagaré 1", "Pagaré 2"}, sender.last.EvidenceLabels)
}

func TestPipeline_GenerateRequiresExtract(t *testing.T) {
	p := newTestPipeline(nil, nil, nil)
	_, err := p.Generate(context.Background())
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPipeline_ExtractFailureKeepsPriorInput(t *testing.T) {
	extractor := &fakeExtractor{input: completeInput()}
	p := newTestPipeline(extractor, nil, nil)
	addEvidence(t, p, 1)

	first, err := p.Extract(context.Background(), "primera pasada")
	require.NoError(t, err)

	extractor.err = errors.New("upstream exploded")
	_, err = p.Extract(context.Background(), "segunda pasada")
	require.Error(t, err)

	// The prior stage output survives a failed re-run.
	assert.Same(t, first, p.Input())
}

func TestPipeline_AnalysisFailureDoesNotBlockSend(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("analysis service down")}
	sender := &fakeSender{}
	p := newTestPipeline(nil, analyzer, sender)

	runFullPipeline(t, p)
	assert.Nil(t, p.Analysis())

	require.NoError(t, p.Send(context.Background(), models.Credentials{RUT: "1-9", Password: "x"}, 0))
	assert.Equal(t, int32(1), sender.calls.Load())
}

func TestPipeline_AdjustOverwritesCachedPDF(t *testing.T) {
	p := newTestPipeline(nil, nil, nil)
	runFullPipeline(t, p)
	firstPDF := p.PDF()

	edited := completeInput()
	edited.Debts[0].Amount = 9_999_999
	_, err := p.Adjust(context.Background(), edited)
	require.NoError(t, err)
	<-p.AnalysisDone()

	assert.Same(t, edited, p.Input())
	assert.NotEqual(t, firstPDF, p.PDF())
}

func TestPipeline_BusyFlagGatesOverlappingRuns(t *testing.T) {
	extractor := &fakeExtractor{
		input:   completeInput(),
		started: make(chan struct{}),
		block:   make(chan struct{}),
	}
	p := newTestPipeline(extractor, nil, nil)
	addEvidence(t, p, 1)

	errCh := make(chan error, 1)
	go func() {
		_, err := p.Extract(context.Background(), "larga")
		errCh <- err
	}()
	<-extractor.started

	// Every stage trigger is rejected while the first run is in flight.
	_, err := p.Extract(context.Background(), "otra")
	assert.ErrorIs(t, err, ErrBusy)
	_, err = p.Generate(context.Background())
	assert.ErrorIs(t, err, ErrBusy)
	_, err = p.Adjust(context.Background(), completeInput())
	assert.ErrorIs(t, err, ErrBusy)
	assert.ErrorIs(t, p.Send(context.Background(), models.Credentials{RUT: "1-9", Password: "x"}, 0), ErrBusy)

	close(extractor.block)
	require.NoError(t, <-errCh)

	// Released after completion.
	_, err = p.Generate(context.Background())
	require.NoError(t, err)
	<-p.AnalysisDone()
}

func TestPipeline_SendChecklist(t *testing.T) {
	creds := models.Credentials{RUT: "1-9", Password: "x"}

	t.Run("no rendered document", func(t *testing.T) {
		sender := &fakeSender{}
		p := newTestPipeline(nil, nil, sender)
		addEvidence(t, p, 1)
		_, err := p.Extract(context.Background(), "")
		require.NoError(t, err)

		var checklist *ChecklistError
		err = p.Send(context.Background(), creds, 0)
		require.ErrorAs(t, err, &checklist)
		assert.Equal(t, int32(0), sender.calls.Load(), "no network call on checklist failure")
	})

	t.Run("zero evidence files", func(t *testing.T) {
		sender := &fakeSender{}
		p := newTestPipeline(nil, nil, sender)
		_, err := p.Extract(context.Background(), "")
		require.NoError(t, err)
		_, err = p.Generate(context.Background())
		require.NoError(t, err)
		<-p.AnalysisDone()

		var checklist *ChecklistError
		err = p.Send(context.Background(), creds, 0)
		require.ErrorAs(t, err, &checklist)
		assert.Equal(t, int32(0), sender.calls.Load())
	})

	t.Run("missing required roles", func(t *testing.T) {
		for _, missing := range []models.PartyRole{
			models.RolePlaintiff, models.RoleSponsoringAttorney, models.RoleDefendant,
		} {
			input := completeInput()
			kept := input.Parties[:0]
			for _, party := range input.Parties {
				if party.Role != missing {
					kept = append(kept, party)
				}
			}
			input.Parties = kept

			sender := &fakeSender{}
			p := newTestPipeline(&fakeExtractor{input: input}, nil, sender)
			addEvidence(t, p, 1)
			_, err := p.Extract(context.Background(), "")
			require.NoError(t, err)
			_, err = p.Generate(context.Background())
			require.NoError(t, err)
			<-p.AnalysisDone()

			var checklist *ChecklistError
			err = p.Send(context.Background(), creds, 0)
			require.ErrorAs(t, err, &checklist, "missing role %s must block send", missing)
			assert.Equal(t, int32(0), sender.calls.Load())
		}
	})

	t.Run("all checks pass simultaneously", func(t *testing.T) {
		sender := &fakeSender{}
		p := newTestPipeline(nil, nil, sender)
		runFullPipeline(t, p)
		require.NoError(t, p.Send(context.Background(), creds, 0))
		assert.Equal(t, int32(1), sender.calls.Load())
	})
}

func TestPipeline_EvidenceCapBlocksEleventhFile(t *testing.T) {
	p := newTestPipeline(nil, nil, nil)
	addEvidence(t, p, 10)

	_, err := p.AddEvidence(ordering.Item{Name: "extra"})
	assert.ErrorIs(t, err, ordering.ErrListFull)
	assert.Len(t, p.Evidence(), 10)
}

func TestPipeline_SendTimeoutPassedThrough(t *testing.T) {
	sender := &fakeSender{err: gateway.ErrGatewayTimeout}
	p := newTestPipeline(nil, nil, sender)
	runFullPipeline(t, p)

	err := p.Send(context.Background(), models.Credentials{RUT: "1-9", Password: "x"}, 0)
	assert.ErrorIs(t, err, gateway.ErrGatewayTimeout)
}

func TestPipeline_StaleAnalysisIgnored(t *testing.T) {
	analyzer := &fakeAnalyzer{result: &models.AnalysisResult{Score: 0.5}}
	p := newTestPipeline(nil, analyzer, nil)
	runFullPipeline(t, p)

	// A re-generate replaces the structure; only the analysis bound to
	// the latest structure may land.
	_, err := p.Adjust(context.Background(), completeInput())
	require.NoError(t, err)
	<-p.AnalysisDone()

	require.NotNil(t, p.Analysis())
	assert.GreaterOrEqual(t, int(analyzer.calls.Load()), 2)
}

func TestPipeline_RequestClausesFlowIntoDocument(t *testing.T) {
	p := newTestPipeline(nil, nil, nil)
	addEvidence(t, p, 1)

	first, err := p.AddRequest("Patrocinio", "Vengo en designar abogado patrocinante.")
	require.NoError(t, err)
	_, err = p.AddRequest("Documentos", "Acompaño los pagarés que indica.")
	require.NoError(t, err)

	require.NoError(t, p.MoveRequest(1, 0))
	require.NoError(t, p.RenameRequest(first.ID, "Patrocinio y poder"))

	_, err = p.Extract(context.Background(), "")
	require.NoError(t, err)
	structure, err := p.Generate(context.Background())
	require.NoError(t, err)
	<-p.AnalysisDone()

	// Clause order drives the otrosí ordering of the document.
	var otrosies []string
	for _, sec := range structure.Sections {
		if len(sec.Heading) > 0 && sec.Heading[len(sec.Heading)-1] == ':' {
			otrosies = append(otrosies, sec.Body)
		}
	}
	require.Len(t, otrosies, 2)
	assert.Equal(t, "Acompaño los pagarés que indica.", otrosies[0])
	assert.Equal(t, "Vengo en designar abogado patrocinante.", otrosies[1])
}

func TestRegistry_OnePipelinePerCaseAndKind(t *testing.T) {
	reg := NewRegistry(&fakeExtractor{input: completeInput()}, &fakeAnalyzer{}, &fakeSender{}, nil)

	a := reg.Pipeline("case-1", models.DocKindDemand)
	b := reg.Pipeline("case-1", models.DocKindDemand)
	c := reg.Pipeline("case-1", models.DocKindPreliminary)
	d := reg.Pipeline("case-2", models.DocKindDemand)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.NotSame(t, a, d)

	reg.Release("case-1")
	assert.NotSame(t, a, reg.Pipeline("case-1", models.DocKindDemand))
}

type fakeNotifier struct {
	mu     sync.Mutex
	calls  int
	caseID string
	kind   models.DocKind
	result *models.AnalysisResult
}

func (f *fakeNotifier) AnalysisCompleted(ctx context.Context, caseID string, kind models.DocKind, result *models.AnalysisResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.caseID = caseID
	f.kind = kind
	f.result = result
}

func TestRegistry_NotifiesCompletedAnalysis(t *testing.T) {
	notifier := &fakeNotifier{}
	analyzer := &fakeAnalyzer{result: &models.AnalysisResult{
		Score:    0.7,
		Findings: []models.Finding{{Severity: "warning", Message: "falta la cuantía"}},
	}}
	reg := NewRegistry(&fakeExtractor{input: completeInput()}, analyzer, &fakeSender{}, notifier)
	p := reg.Pipeline("case-5", models.DocKindDemand)

	_, err := p.Extract(context.Background(), "")
	require.NoError(t, err)
	_, err = p.Generate(context.Background())
	require.NoError(t, err)
	<-p.AnalysisDone()

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "case-5", notifier.caseID)
	assert.Equal(t, models.DocKindDemand, notifier.kind)
	assert.Equal(t, analyzer.result, notifier.result)
}

func TestRegistry_FailedAnalysisNotNotified(t *testing.T) {
	notifier := &fakeNotifier{}
	analyzer := &fakeAnalyzer{err: errors.New("service down")}
	reg := NewRegistry(&fakeExtractor{input: completeInput()}, analyzer, &fakeSender{}, notifier)
	p := reg.Pipeline("case-6", models.DocKindDemand)

	_, err := p.Extract(context.Background(), "")
	require.NoError(t, err)
	_, err = p.Generate(context.Background())
	require.NoError(t, err)
	<-p.AnalysisDone()

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, 0, notifier.calls)
}

func TestBuildStructure_Deterministic(t *testing.T) {
	input := completeInput()
	input.ExtraRequests = []string{"Acompaña documentos", "Patrocinio y poder"}

	first := BuildStructure(models.DocKindDemand, input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildStructure(models.DocKindDemand, input))
	}

	assert.Equal(t, "Demanda ejecutiva de cobro de pesos", first.Title)
	assert.Contains(t, first.Prayer, "$1500000")

	pre := BuildStructure(models.DocKindPreliminary, input)
	assert.Equal(t, "Medida prejudicial precautoria", pre.Title)
}

func TestPipeline_AnalysisDoneNilBeforeGenerate(t *testing.T) {
	p := newTestPipeline(nil, nil, nil)
	assert.Nil(t, p.AnalysisDone())
}
