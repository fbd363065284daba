package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"storefront/internal/service"
)

const defaultHealthTimeout = 2 * time.Second

// HealthChecker performs a trivial storage round-trip.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Config carries the boundary's collaborators that are not resource services.
type Config struct {
	Health HealthChecker
	// HealthTimeout bounds the storage probe behind /health.
	HealthTimeout time.Duration
	// RequestTimeout bounds every request context. Zero disables it.
	RequestTimeout time.Duration
	Logger         *logrus.Logger
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	cfg      Config
	users    service.UserService
	products service.ProductService
	orders   service.OrderService
}

func NewHandler(cfg Config, users service.UserService, products service.ProductService, orders service.OrderService) *Handler {
	if cfg.HealthTimeout <= 0 {
		cfg.HealthTimeout = defaultHealthTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	return &Handler{
		cfg:      cfg,
		users:    users,
		products: products,
		orders:   orders,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestLogger(h.cfg.Logger), requestTimeout(h.cfg.RequestTimeout))

	router.GET("/health", h.health)

	users := router.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.PATCH("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}

	products := router.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.PATCH("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.PUT("/:id", h.updateOrder)
		orders.PATCH("/:id", h.updateOrder)
		orders.DELETE("/:id", h.deleteOrder)
	}
}

type HealthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

// health always answers 200; a slow or failing store only degrades the db field.
func (h *Handler) health(c *gin.Context) {
	resp := HealthResponse{Status: "ok", DB: "ok"}
	if h.cfg.Health == nil {
		resp.DB = "error"
		c.JSON(http.StatusOK, resp)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.HealthTimeout)
	defer cancel()

	if err := probe(ctx, h.cfg.Health); err != nil {
		h.cfg.Logger.WithError(err).Warn("health probe failed")
		resp.DB = "error"
	}
	c.JSON(http.StatusOK, resp)
}

// probe returns once the check finishes or ctx expires, whichever comes first.
func probe(ctx context.Context, check HealthChecker) error {
	done := make(chan error, 1)
	go func() {
		done <- check.Ping(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
