package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/models"
	"github.com/andeslegal/cobranza/pkg/ordering"
	"github.com/andeslegal/cobranza/pkg/services"
	"github.com/andeslegal/cobranza/pkg/suggest"
	"github.com/andeslegal/cobranza/pkg/workflow"
)

// respondError maps domain errors to HTTP responses. Checklist failures
// carry their individual problems so the frontend can show them inline.
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error(), "field": validErr.Field})
		return
	}

	var checklistErr *workflow.ChecklistError
	if errors.As(err, &checklistErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "la demanda no está lista para enviarse",
			"problems": checklistErr.Problems,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, ordering.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrCaseFinished):
		c.JSON(http.StatusConflict, gin.H{"error": "case is finished"})
	case errors.Is(err, ordering.ErrListFull):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ordering.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ordering.ErrBadIndex):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, workflow.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "otra operación del flujo está en curso"})
	case errors.Is(err, workflow.ErrNoInput):
		c.JSON(http.StatusConflict, gin.H{"error": "primero debe extraerse la información de entrada"})
	case errors.Is(err, suggest.ErrSubmissionPending):
		c.JSON(http.StatusConflict, gin.H{"error": "ya hay un envío en curso para esta etapa"})
	case errors.Is(err, suggest.ErrNotSubmittable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "la sugerencia no tiene contenido enviable"})
	case errors.Is(err, models.ErrUnsupportedShape):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "vista previa no disponible"})
	case errors.Is(err, gateway.ErrCredentialRejected),
		errors.Is(err, gateway.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": gateway.UserMessage(err)})
	case errors.Is(err, gateway.ErrServerUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": gateway.UserMessage(err)})
	case errors.Is(err, gateway.ErrGatewayTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": gateway.UserMessage(err)})
	case errors.Is(err, gateway.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": gateway.UserMessage(err)})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
