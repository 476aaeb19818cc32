package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/workflow"
)

type stubExtractor struct {
	input *models.DemandInput
	err   error
}

func (e *stubExtractor) Extract(_ context.Context, _ models.DocKind, _ []gateway.EvidenceFile, contextText string) (*models.DemandInput, error) {
	if e.err != nil {
		return nil, e.err
	}
	in := *e.input
	in.ContextText = contextText
	return &in, nil
}

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(_ context.Context, _ models.DocKind, _ *models.DocumentStructure) (*models.AnalysisResult, error) {
	return &models.AnalysisResult{Score: 0.9}, nil
}

type stubCourtSender struct {
	calls int
	err   error
}

func (s *stubCourtSender) Send(_ context.Context, _ models.Credentials, _ workflow.Submission) error {
	s.calls++
	return s.err
}

func completeInput() *models.DemandInput {
	return &models.DemandInput{
		Court: "1º Juzgado Civil de Santiago",
		Parties: []models.Party{
			{Role: models.RolePlaintiff, Name: "Banco Austral", RUT: "96.555.444-3"},
			{Role: models.RoleSponsoringAttorney, Name: "María Pérez", RUT: "12.345.678-5"},
			{Role: models.RoleDefendant, Name: "Comercial Andina SpA", RUT: "76.123.456-7"},
		},
		Debts: []models.DebtItem{
			{Instrument: "pagaré", Amount: 4_500_000, Currency: "CLP"},
		},
	}
}

// workflowTestRouter registers the pipeline routes without the auth
// middleware so the handlers can be exercised directly.
func workflowTestRouter(sender workflow.Sender) (*gin.Engine, *workflow.Registry) {
	gin.SetMode(gin.TestMode)
	reg := workflow.NewRegistry(&stubExtractor{input: completeInput()}, stubAnalyzer{}, sender, nil)
	s := &Server{workflows: reg}

	router := gin.New()
	wf := router.Group("/cases/:id/workflow/:kind")
	wf.POST("/evidence", s.addPipelineEvidenceHandler)
	wf.GET("/evidence", s.listPipelineEvidenceHandler)
	wf.PUT("/evidence/order", s.movePipelineEvidenceHandler)
	wf.DELETE("/evidence/:itemId", s.removePipelineEvidenceHandler)
	wf.POST("/requests", s.addPipelineRequestHandler)
	wf.GET("/requests", s.listPipelineRequestsHandler)
	wf.PUT("/requests/order", s.movePipelineRequestHandler)
	wf.PATCH("/requests/:itemId", s.renamePipelineRequestHandler)
	wf.DELETE("/requests/:itemId", s.removePipelineRequestHandler)
	wf.POST("/extract", s.extractHandler)
	wf.POST("/generate", s.generateHandler)
	wf.POST("/adjust", s.adjustHandler)
	wf.GET("/state", s.pipelineStateHandler)
	wf.GET("/pdf", s.pipelinePDFHandler)
	wf.POST("/send", s.sendHandler)
	return router, reg
}

func multipartFiles(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 " + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWorkflowEvidenceHandlers(t *testing.T) {
	router, _ := workflowTestRouter(&stubCourtSender{})
	base := "/cases/case-1/workflow/demand_text"

	t.Run("upload and list evidence", func(t *testing.T) {
		body, contentType := multipartFiles(t, "pagare.pdf", "factura.pdf")
		req := httptest.NewRequest(http.MethodPost, base+"/evidence", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Items []itemView `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "pagare.pdf", resp.Items[0].Name)
		assert.NotEmpty(t, resp.Items[0].ID)
		assert.Positive(t, resp.Items[0].SizeBytes)

		listReq := httptest.NewRequest(http.MethodGet, base+"/evidence", nil)
		listRec := httptest.NewRecorder()
		router.ServeHTTP(listRec, listReq)
		require.Equal(t, http.StatusOK, listRec.Code)
		require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 2)
	})

	t.Run("reorder evidence", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, base+"/evidence/order", strings.NewReader(`{"from":0,"to":1}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Items []itemView `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "factura.pdf", resp.Items[0].Name)
		assert.Equal(t, "pagare.pdf", resp.Items[1].Name)
	})

	t.Run("out of range move is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, base+"/evidence/order", strings.NewReader(`{"from":0,"to":9}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("removing unknown item is not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, base+"/evidence/nope", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown workflow kind is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cases/case-1/workflow/apelacion/evidence", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("evidence cap rejects the whole batch", func(t *testing.T) {
		body, contentType := multipartFiles(t,
			"a1.pdf", "a2.pdf", "a3.pdf", "a4.pdf", "a5.pdf",
			"a6.pdf", "a7.pdf", "a8.pdf", "a9.pdf")
		req := httptest.NewRequest(http.MethodPost, base+"/evidence", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestWorkflowRequestHandlers(t *testing.T) {
	router, _ := workflowTestRouter(&stubCourtSender{})
	base := "/cases/case-2/workflow/demand_text"

	rec := postJSON(router, base+"/requests", `{"name":"Exhorto","text":"Se oficie al conservador."}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created itemView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Se oficie al conservador.", created.Text)

	t.Run("rename keeps text", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, base+"/requests/"+created.ID, strings.NewReader(`{"name":"Exhorto al CBR"}`))
		req.Header.Set("Content-Type", "application/json")
		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		require.Equal(t, http.StatusOK, r.Code)

		var resp struct {
			Items []itemView `json:"items"`
		}
		require.NoError(t, json.Unmarshal(r.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Exhorto al CBR", resp.Items[0].Name)
		assert.Equal(t, "Se oficie al conservador.", resp.Items[0].Text)
	})

	t.Run("remove request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, base+"/requests/"+created.ID, nil)
		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)
		assert.Equal(t, http.StatusNoContent, r.Code)
	})
}

func TestWorkflowStageHandlers(t *testing.T) {
	sender := &stubCourtSender{}
	router, _ := workflowTestRouter(sender)
	base := "/cases/case-3/workflow/demand_text"

	body, contentType := multipartFiles(t, "pagare.pdf")
	req := httptest.NewRequest(http.MethodPost, base+"/evidence", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("pdf before generate is not found", func(t *testing.T) {
		r := httptest.NewRecorder()
		router.ServeHTTP(r, httptest.NewRequest(http.MethodGet, base+"/pdf", nil))
		assert.Equal(t, http.StatusNotFound, r.Code)
	})

	t.Run("generate before extract has no input", func(t *testing.T) {
		r := postJSON(router, base+"/generate", `{}`)
		assert.Equal(t, http.StatusConflict, r.Code)
	})

	t.Run("send before generate fails the checklist", func(t *testing.T) {
		r := postJSON(router, base+"/send", `{"rut":"12.345.678-5","password":"clave"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, r.Code)
		assert.Zero(t, sender.calls)
	})

	t.Run("extract then generate produces a pdf", func(t *testing.T) {
		r := postJSON(router, base+"/extract", `{"context":"Cobro de pagaré impago."}`)
		require.Equal(t, http.StatusOK, r.Code)

		var extracted struct {
			Input models.DemandInput `json:"input"`
		}
		require.NoError(t, json.Unmarshal(r.Body.Bytes(), &extracted))
		assert.Equal(t, "Cobro de pagaré impago.", extracted.Input.ContextText)

		r = postJSON(router, base+"/generate", `{}`)
		require.Equal(t, http.StatusOK, r.Code)

		pdfRec := httptest.NewRecorder()
		router.ServeHTTP(pdfRec, httptest.NewRequest(http.MethodGet, base+"/pdf", nil))
		require.Equal(t, http.StatusOK, pdfRec.Code)
		assert.Equal(t, "application/pdf", pdfRec.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(pdfRec.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("state reflects the pipeline", func(t *testing.T) {
		r := httptest.NewRecorder()
		router.ServeHTTP(r, httptest.NewRequest(http.MethodGet, base+"/state", nil))
		require.Equal(t, http.StatusOK, r.Code)

		var state struct {
			Kind     string     `json:"kind"`
			HasPDF   bool       `json:"has_pdf"`
			Evidence []itemView `json:"evidence"`
			Input    *models.DemandInput
		}
		require.NoError(t, json.Unmarshal(r.Body.Bytes(), &state))
		assert.Equal(t, "demand_text", state.Kind)
		assert.True(t, state.HasPDF)
		assert.Len(t, state.Evidence, 1)
		require.NotNil(t, state.Input)
	})

	t.Run("adjust replaces input and regenerates", func(t *testing.T) {
		edited := completeInput()
		edited.Procedure = "juicio ejecutivo"
		payload, err := json.Marshal(edited)
		require.NoError(t, err)

		r := postJSON(router, base+"/adjust", string(payload))
		require.Equal(t, http.StatusOK, r.Code)
	})

	t.Run("send without credentials is a bad request", func(t *testing.T) {
		r := postJSON(router, base+"/send", `{}`)
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.Zero(t, sender.calls)
	})

	t.Run("rejected credentials surface as unauthorized", func(t *testing.T) {
		sender.err = gateway.ErrCredentialRejected
		r := postJSON(router, base+"/send", `{"rut":"12.345.678-5","password":"mala","court_index":2}`)
		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.Equal(t, 1, sender.calls)
		sender.err = nil
	})
}
