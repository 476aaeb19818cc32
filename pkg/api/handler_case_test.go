package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// These cover only parameter validation, which returns 400 before any
// service is touched. Happy paths run against real services in the
// service-layer integration tests.
func TestCaseHandlers_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}
	router := gin.New()
	router.GET("/cases", s.listCasesHandler)
	router.GET("/search/cases", s.searchCasesHandler)
	router.GET("/cases/:id/timeline", s.getTimelineHandler)
	router.PUT("/cases/:id/milestones", s.upsertMilestoneHandler)
	router.POST("/cases/:id/documents", s.uploadDocumentHandler)
	router.PATCH("/cases/:id/documents/:docId", s.renameDocumentHandler)
	router.GET("/pjud/demands", s.listDemandsHandler)
	router.POST("/suggestions/:id/submit", s.submitSuggestionHandler)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"list with malformed created_after", http.MethodGet, "/cases?created_after=yesterday", ""},
		{"list with malformed created_before", http.MethodGet, "/cases?created_before=2026-01-01", ""},
		{"search without query", http.MethodGet, "/search/cases", ""},
		{"timeline with malformed as_of", http.MethodGet, "/cases/c1/timeline?as_of=not-a-date", ""},
		{"milestone upsert with invalid body", http.MethodPut, "/cases/c1/milestones", "{not json"},
		{"document upload without file", http.MethodPost, "/cases/c1/documents", ""},
		{"rename without name", http.MethodPatch, "/cases/c1/documents/d1", "{}"},
		{"demand list without credential headers", http.MethodGet, "/pjud/demands", ""},
		{"submit without credentials", http.MethodPost, "/suggestions/s1/submit", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
