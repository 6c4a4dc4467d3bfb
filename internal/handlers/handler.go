package handlers

import (
	"context"

	"inventory_management/internal/logger"
	"inventory_management/internal/metrics"
	"inventory_management/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	metrics        *metrics.Metrics
	db             Pinger
	allowedOrigins []string
	version        string
}

// Option customizes a Handler.
type Option func(*Handler)

func WithMetrics(m *metrics.Metrics) Option { return func(h *Handler) { h.metrics = m } }

// WithHealthCheck makes /health ping the store.
func WithHealthCheck(db Pinger) Option { return func(h *Handler) { h.db = db } }

func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) { h.allowedOrigins = origins }
}

func WithVersion(v string) Option { return func(h *Handler) { h.version = v } }

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, version: defaultVersion}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.requestLogger, h.metrics.Middleware(), h.cors())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.root)
	router.GET("/health", h.health)
	if h.metrics != nil {
		router.GET("/metrics", h.metrics.Handler())
	}

	h.registerAuthRoutes(router)
	h.registerProductRoutes(router)

	// live inventory stats over a WebSocket upgrade on the same port
	router.GET("/ws", h.userIdentity, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/register", h.register)
	r.POST("/login", h.login)
}

func (h *Handler) registerProductRoutes(r *gin.Engine) {
	products := r.Group("/products", h.userIdentity)
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/stats", h.productStats)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id/quantity", h.updateQuantity)
	}
}
