package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andeslegal/cobranza/pkg/models"
)

func (s *Server) listSuggestionsHandler(c *gin.Context) {
	previews, err := s.selector.List(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": previews, "count": len(previews)})
}

func (s *Server) createSuggestionHandler(c *gin.Context) {
	var req models.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.CaseEventID = c.Param("eventId")

	sg, err := s.suggestions.CreateSuggestion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sg)
}

func (s *Server) previewSuggestionHandler(c *gin.Context) {
	preview, err := s.selector.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (s *Server) previewSuggestionPDFHandler(c *gin.Context) {
	pdf, err := s.selector.PreviewPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdf)
}

type submitSuggestionRequest struct {
	RUT        string `json:"rut" binding:"required"`
	Password   string `json:"password" binding:"required"`
	CourtIndex int    `json:"court_index"`
}

func (s *Server) submitSuggestionHandler(c *gin.Context) {
	var req submitSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "court credentials are required"})
		return
	}

	creds := models.Credentials{RUT: req.RUT, Password: req.Password}
	sg, err := s.selector.Submit(c.Request.Context(), creds, c.Param("id"), req.CourtIndex)
	s.noteGatewayResult(err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sg)
}
