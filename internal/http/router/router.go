package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/pipeline-api/internal/auth"
	"github.com/straye-as/pipeline-api/internal/config"
	"github.com/straye-as/pipeline-api/internal/http/handler"
	"github.com/straye-as/pipeline-api/internal/http/middleware"
	"github.com/straye-as/pipeline-api/internal/pipeline"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/straye-as/pipeline-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg             *config.Config
	logger          *zap.Logger
	db              *gorm.DB
	board           *pipeline.Board
	authMiddleware  *auth.Middleware
	rateLimiter     *middleware.RateLimiter
	leadHandler     *handler.LeadHandler
	pipelineHandler *handler.PipelineHandler
	companyHandler  *handler.CompanyHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	board *pipeline.Board,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	leadHandler *handler.LeadHandler,
	pipelineHandler *handler.PipelineHandler,
	companyHandler *handler.CompanyHandler,
) *Router {
	return &Router{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		board:           board,
		authMiddleware:  authMiddleware,
		rateLimiter:     rateLimiter,
		leadHandler:     leadHandler,
		pipelineHandler: pipelineHandler,
		companyHandler:  companyHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health checks
	r.Get("/health", rt.health)
	r.Get("/health/db", rt.healthDB)
	r.Get("/health/ready", rt.healthReady)

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes, all authenticated
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.authMiddleware.Authenticate)
		r.Use(rt.rateLimiter.LimitByUser)

		// Leads
		r.Route("/leads", func(r chi.Router) {
			r.Get("/", rt.leadHandler.List)
			r.Post("/", rt.leadHandler.Create)
			r.Get("/{id}", rt.leadHandler.GetByID)
			r.Put("/{id}", rt.leadHandler.Update)
			r.Delete("/{id}", rt.leadHandler.Delete)
			r.Post("/{id}/status", rt.leadHandler.ChangeStatus)
			r.Post("/{id}/contacts", rt.leadHandler.LogContact)
			r.Get("/{id}/activities", rt.leadHandler.ListActivities)
		})

		r.Get("/followups", rt.leadHandler.Followups)

		// Pipeline board
		r.Route("/pipeline", func(r chi.Router) {
			r.Get("/board", rt.pipelineHandler.Board)
			r.Get("/statuses", rt.pipelineHandler.Statuses)
			r.With(rt.authMiddleware.RequireService).Post("/refresh", rt.pipelineHandler.Refresh)
		})

		// Companies (derived from leads)
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", rt.companyHandler.List)
			r.Get("/{key}", rt.companyHandler.GetByKey)
		})
	})

	return r
}
