// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/infrastructure/http/v1/handlers"
	"orderdesk/internal/infrastructure/http/v1/middleware"
	"orderdesk/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Service runs the desk workflow
	Service *drafts.Service

	// Version is reported by /health/info
	Version string

	// Mode is a gin mode; empty means release
	Mode string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	mode := cfg.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Service, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	v1 := router.Group("/api/v1")
	{
		registerDeskRoutes(v1, cfg)
	}

	return router
}

// registerDeskRoutes registers catalog, pricing, draft, invoice and plan endpoints.
func registerDeskRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	catalogHandler := handlers.NewCatalogHandler(baseHandler, cfg.Service)
	rg.GET("/catalog/products", catalogHandler.List)

	pricingHandler := handlers.NewPricingHandler(baseHandler, cfg.Service)
	rg.POST("/pricing", pricingHandler.Quote)

	draftHandler := handlers.NewDraftHandler(baseHandler, cfg.Service)
	draftsGroup := rg.Group("/drafts")
	{
		draftsGroup.POST("", draftHandler.Create)
		draftsGroup.GET("/:id", draftHandler.Get)
		draftsGroup.PATCH("/:id", draftHandler.Update)
		draftsGroup.DELETE("/:id", draftHandler.Delete)
		draftsGroup.POST("/:id/price", draftHandler.Price)
		draftsGroup.POST("/:id/invoice", draftHandler.Invoice)
	}

	invoiceHandler := handlers.NewInvoiceHandler(baseHandler, cfg.Service)
	rg.GET("/invoices/last", invoiceHandler.Last)
	rg.POST("/share", invoiceHandler.Share)

	planHandler := handlers.NewPlanHandler(baseHandler, cfg.Service)
	rg.GET("/plan/weekly", planHandler.Weekly)
}
