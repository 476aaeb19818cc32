package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/ordering"
	"github.com/andeslegal/cobranza/pkg/services"
	"github.com/andeslegal/cobranza/pkg/suggest"
	"github.com/andeslegal/cobranza/pkg/workflow"
)

func recordError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, err)
	return rec
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"ordered item not found", ordering.ErrNotFound, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"case finished", services.ErrCaseFinished, http.StatusConflict},
		{"list full", ordering.ErrListFull, http.StatusConflict},
		{"duplicate name", ordering.ErrDuplicateName, http.StatusConflict},
		{"bad index", ordering.ErrBadIndex, http.StatusBadRequest},
		{"pipeline busy", workflow.ErrBusy, http.StatusConflict},
		{"no extracted input", workflow.ErrNoInput, http.StatusConflict},
		{"submission pending", suggest.ErrSubmissionPending, http.StatusConflict},
		{"not submittable", suggest.ErrNotSubmittable, http.StatusUnprocessableEntity},
		{"unsupported content shape", models.ErrUnsupportedShape, http.StatusUnprocessableEntity},
		{"credential rejected", gateway.ErrCredentialRejected, http.StatusUnauthorized},
		{"authentication required", gateway.ErrAuthenticationRequired, http.StatusUnauthorized},
		{"court unavailable", gateway.ErrServerUnavailable, http.StatusBadGateway},
		{"gateway timeout", gateway.ErrGatewayTimeout, http.StatusGatewayTimeout},
		{"court record not found", gateway.ErrNotFound, http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recordError(t, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRespondError_WrappedErrorsUnwrap(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), services.ErrNotFound)
	rec := recordError(t, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRespondError_ValidationErrorCarriesField(t *testing.T) {
	rec := recordError(t, services.NewValidationError("rol", "rol is required"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rol", body["field"])
	assert.Contains(t, body["error"], "rol is required")
}

func TestRespondError_ChecklistProblemsListed(t *testing.T) {
	err := &workflow.ChecklistError{Problems: []string{
		"no existe un documento generado para enviar",
		"debe existir al menos un demandado",
	}}
	rec := recordError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Problems []string `json:"problems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Problems, 2)
	assert.Contains(t, body.Problems, "debe existir al menos un demandado")
}

func TestRespondError_InternalErrorHidesDetail(t *testing.T) {
	rec := recordError(t, errors.New("pq: connection refused"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
