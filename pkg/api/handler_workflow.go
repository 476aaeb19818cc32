package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andeslegal/cobranza/pkg/events"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/ordering"
	"github.com/andeslegal/cobranza/pkg/render"
	"github.com/andeslegal/cobranza/pkg/workflow"
)

// itemView is the JSON shape of an ordered pipeline item. Evidence payloads
// stay server-side; only request clauses carry their text out.
type itemView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SizeBytes int    `json:"size_bytes,omitempty"`
	Text      string `json:"text,omitempty"`
}

func evidenceViews(items []ordering.Item) []itemView {
	views := make([]itemView, len(items))
	for i, it := range items {
		views[i] = itemView{ID: it.ID, Name: it.Name, SizeBytes: len(it.Payload)}
	}
	return views
}

func requestViews(items []ordering.Item) []itemView {
	views := make([]itemView, len(items))
	for i, it := range items {
		views[i] = itemView{ID: it.ID, Name: it.Name, Text: string(it.Payload)}
	}
	return views
}

// pipelineFrom resolves the per-case pipeline for the kind in the path.
func (s *Server) pipelineFrom(c *gin.Context) (*workflow.Pipeline, models.DocKind, bool) {
	kind := models.DocKind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown workflow kind"})
		return nil, kind, false
	}
	return s.workflows.Pipeline(c.Param("id"), kind), kind, true
}

func (s *Server) addPipelineEvidenceHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one file is required"})
		return
	}

	items := make([]ordering.Item, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return
		}
		items = append(items, ordering.Item{Name: fh.Filename, Payload: data})
	}

	inserted, err := p.AddEvidence(items...)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": evidenceViews(inserted)})
}

func (s *Server) listPipelineEvidenceHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": evidenceViews(p.Evidence())})
}

type moveItemRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (s *Server) movePipelineEvidenceHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	var req moveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := p.MoveEvidence(req.From, req.To); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": evidenceViews(p.Evidence())})
}

func (s *Server) removePipelineEvidenceHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	if err := p.RemoveEvidence(c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addRequestRequest struct {
	Name string `json:"name" binding:"required"`
	Text string `json:"text" binding:"required"`
}

func (s *Server) addPipelineRequestHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	var req addRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and text are required"})
		return
	}
	item, err := p.AddRequest(req.Name, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, itemView{ID: item.ID, Name: item.Name, Text: string(item.Payload)})
}

func (s *Server) listPipelineRequestsHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": requestViews(p.Requests())})
}

func (s *Server) movePipelineRequestHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	var req moveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := p.MoveRequest(req.From, req.To); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": requestViews(p.Requests())})
}

func (s *Server) renamePipelineRequestHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	var req renameDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if err := p.RenameRequest(c.Param("itemId"), req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": requestViews(p.Requests())})
}

func (s *Server) removePipelineRequestHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	if err := p.RemoveRequest(c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type extractRequest struct {
	Context string `json:"context"`
}

func (s *Server) extractHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	input, err := p.Extract(c.Request.Context(), req.Context)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"input": input})
}

func (s *Server) generateHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	structure, err := p.Generate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"structure": structure})
}

func (s *Server) adjustHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	var edited models.DemandInput
	if err := c.ShouldBindJSON(&edited); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	structure, err := p.Adjust(c.Request.Context(), &edited)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"structure": structure})
}

func (s *Server) pipelineStateHandler(c *gin.Context) {
	p, kind, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"kind":     kind,
		"input":    p.Input(),
		"evidence": evidenceViews(p.Evidence()),
		"requests": requestViews(p.Requests()),
		"analysis": p.Analysis(),
		"has_pdf":  len(p.PDF()) > 0,
	})
}

func (s *Server) pipelinePDFHandler(c *gin.Context) {
	p, _, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	pdf := p.PDF()
	if len(pdf) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no generated document"})
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdf)
}

type sendRequest struct {
	RUT        string `json:"rut" binding:"required"`
	Password   string `json:"password" binding:"required"`
	CourtIndex int    `json:"court_index"`
}

func (s *Server) sendHandler(c *gin.Context) {
	p, kind, ok := s.pipelineFrom(c)
	if !ok {
		return
	}
	caseID := c.Param("id")

	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "court credentials are required"})
		return
	}

	creds := models.Credentials{RUT: req.RUT, Password: req.Password}
	if err := p.Send(c.Request.Context(), creds, req.CourtIndex); err != nil {
		s.noteGatewayResult(err)
		respondError(c, err)
		return
	}
	s.noteGatewayResult(nil)

	cse, err := s.cases.GetCase(c.Request.Context(), caseID, false)
	if err != nil {
		// The filing already went out; report success regardless.
		slog.Warn("Failed to load case after filing", "case_id", caseID, "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "submitted"})
		return
	}

	filingName := render.FilingName(kind, cse.Rol)
	if _, err := s.documents.Upload(c.Request.Context(), models.UploadDocumentRequest{
		CaseID:      caseID,
		Kind:        models.DocumentKind(kind),
		Name:        filingName,
		ContentType: "application/pdf",
		SizeBytes:   int64(len(p.PDF())),
		Body:        bytes.NewReader(p.PDF()),
	}); err != nil {
		slog.Warn("Failed to archive submitted filing", "case_id", caseID, "error", err)
	}

	if err := s.publisher.PublishFilingSubmitted(c.Request.Context(), caseID, events.FilingSubmittedPayload{
		Type:      events.EventTypeFilingSubmitted,
		CaseID:    caseID,
		Kind:      string(kind),
		Name:      filingName,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish filing event", "case_id", caseID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "submitted", "name": filingName})
}
