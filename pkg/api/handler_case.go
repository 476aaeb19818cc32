package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andeslegal/cobranza/ent"
	"github.com/andeslegal/cobranza/pkg/events"
	"github.com/andeslegal/cobranza/pkg/models"
)

func (s *Server) createCaseHandler(c *gin.Context) {
	var req models.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cse, err := s.cases.CreateCase(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	s.publishCaseUpdated(c, cse)
	c.JSON(http.StatusCreated, cse)
}

func (s *Server) listCasesHandler(c *gin.Context) {
	filters := models.CaseFilters{
		Status:    c.Query("status"),
		Court:     c.Query("court"),
		DebtorRUT: c.Query("debtor_rut"),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Offset = n
		}
	}
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "created_after must be RFC3339"})
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "created_before must be RFC3339"})
			return
		}
		filters.CreatedBefore = &t
	}
	filters.IncludeDeleted = c.Query("include_deleted") == "true"

	resp, err := s.cases.ListCases(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) searchCasesHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}
	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	cases, err := s.cases.SearchCases(c.Request.Context(), query, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cases": cases, "count": len(cases)})
}

func (s *Server) getCaseHandler(c *gin.Context) {
	withEdges := c.Query("expand") == "true"
	cse, err := s.cases.GetCase(c.Request.Context(), c.Param("id"), withEdges)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cse)
}

func (s *Server) deleteCaseHandler(c *gin.Context) {
	if err := s.cases.SoftDeleteCase(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getTimelineHandler(c *gin.Context) {
	caseID := c.Param("id")

	var (
		resp *models.CaseTimelineResponse
		err  error
	)
	if v := c.Query("as_of"); v != "" {
		asOf, perr := time.Parse(time.RFC3339, v)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "as_of must be RFC3339"})
			return
		}
		resp, err = s.cases.GetTimelineAt(c.Request.Context(), caseID, asOf)
	} else {
		resp, err = s.cases.GetTimeline(c.Request.Context(), caseID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) upsertMilestoneHandler(c *gin.Context) {
	caseID := c.Param("id")

	var req models.UpsertMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	slot, err := s.cases.UpsertMilestone(c.Request.Context(), caseID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	occurredAt := ""
	if slot.OccurredAt != nil {
		occurredAt = slot.OccurredAt.Format(time.RFC3339)
	}
	now := time.Now().Format(time.RFC3339Nano)
	if err := s.publisher.PublishMilestoneUpdated(c.Request.Context(), caseID, events.MilestoneUpdatedPayload{
		Type:       events.EventTypeMilestoneUpdated,
		CaseID:     caseID,
		EventID:    slot.ID,
		Milestone:  string(slot.Milestone),
		OccurredAt: occurredAt,
		Timestamp:  now,
	}); err != nil {
		slog.Warn("Failed to publish milestone update", "case_id", caseID, "error", err)
	}
	if cse, gerr := s.cases.GetCase(c.Request.Context(), caseID, false); gerr == nil {
		s.publishCaseUpdated(c, cse)
	}

	c.JSON(http.StatusOK, slot)
}

// publishCaseUpdated signals the case list view; failures only log since
// the REST write already succeeded.
func (s *Server) publishCaseUpdated(c *gin.Context, cse *ent.CollectionCase) {
	err := s.publisher.PublishCaseUpdated(c.Request.Context(), cse.ID, events.CaseUpdatedPayload{
		Type:      events.EventTypeCaseUpdated,
		CaseID:    cse.ID,
		Rol:       cse.Rol,
		Status:    string(cse.Status),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish case update", "case_id", cse.ID, "error", err)
	}
}
