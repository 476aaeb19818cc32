// Package api exposes the case management HTTP surface: authentication,
// case and timeline CRUD, document handling, the suggestion selector, the
// demand workflow pipeline and the WebSocket reload channel.
package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andeslegal/cobranza/pkg/config"
	"github.com/andeslegal/cobranza/pkg/database"
	"github.com/andeslegal/cobranza/pkg/events"
	"github.com/andeslegal/cobranza/pkg/gateway"
	"github.com/andeslegal/cobranza/pkg/middleware"
	"github.com/andeslegal/cobranza/pkg/services"
	"github.com/andeslegal/cobranza/pkg/suggest"
	"github.com/andeslegal/cobranza/pkg/workflow"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	cfg *config.Config
	db  *database.Client

	cases       *services.CaseService
	documents   *services.DocumentService
	suggestions *services.SuggestionService
	eventStore  *services.EventService

	selector  *suggest.Selector
	workflows *workflow.Registry
	pjud      *gateway.PJUDClient

	publisher   *events.EventPublisher
	connManager *events.ConnectionManager

	warnings *services.SystemWarningsService
}

// SetWarningsService attaches the transient system-warning store surfaced
// by the health endpoint.
func (s *Server) SetWarningsService(w *services.SystemWarningsService) {
	s.warnings = w
}

// NewServer creates an API server over the given services.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	cases *services.CaseService,
	documents *services.DocumentService,
	suggestions *services.SuggestionService,
	eventStore *services.EventService,
	selector *suggest.Selector,
	workflows *workflow.Registry,
	pjud *gateway.PJUDClient,
	publisher *events.EventPublisher,
	connManager *events.ConnectionManager,
) *Server {
	return &Server{
		cfg:         cfg,
		db:          db,
		cases:       cases,
		documents:   documents,
		suggestions: suggestions,
		eventStore:  eventStore,
		selector:    selector,
		workflows:   workflows,
		pjud:        pjud,
		publisher:   publisher,
		connManager: connManager,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(s.cfg.Server.AllowedOrigins))
	router.Use(middleware.RateLimit(300, time.Minute))

	router.GET("/health", s.healthHandler)

	api := router.Group("/api/v1")
	api.POST("/auth/login", s.loginHandler)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&s.cfg.Auth))
	{
		protected.GET("/auth/me", s.currentUserHandler)

		protected.POST("/cases", s.createCaseHandler)
		protected.GET("/cases", s.listCasesHandler)
		// Registered outside /cases; the router cannot mix a static
		// segment with the :id wildcard at the same level.
		protected.GET("/search/cases", s.searchCasesHandler)
		protected.GET("/cases/:id", s.getCaseHandler)
		protected.DELETE("/cases/:id", s.deleteCaseHandler)
		protected.GET("/cases/:id/timeline", s.getTimelineHandler)
		protected.PUT("/cases/:id/milestones", s.upsertMilestoneHandler)

		protected.POST("/cases/:id/documents", s.uploadDocumentHandler)
		protected.GET("/cases/:id/documents", s.listDocumentsHandler)
		protected.GET("/cases/:id/documents/:docId", s.downloadDocumentHandler)
		protected.PUT("/cases/:id/documents/order", s.reorderDocumentsHandler)
		protected.PATCH("/cases/:id/documents/:docId", s.renameDocumentHandler)
		protected.DELETE("/cases/:id/documents/:docId", s.deleteDocumentHandler)

		protected.GET("/events/:eventId/suggestions", s.listSuggestionsHandler)
		protected.POST("/events/:eventId/suggestions", s.createSuggestionHandler)
		protected.GET("/suggestions/:id/preview", s.previewSuggestionHandler)
		protected.GET("/suggestions/:id/preview.pdf", s.previewSuggestionPDFHandler)
		protected.POST("/suggestions/:id/submit", s.submitSuggestionHandler)

		protected.GET("/pjud/demands", s.listDemandsHandler)

		wf := protected.Group("/cases/:id/workflow/:kind")
		{
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
		}
	}

	router.GET("/ws", s.wsHandler)

	return router
}
