package rest

import (
	"context"
	"path/filepath"
	"time"

	"github.com/Gunvolt24/customer-api/internal/ports"
	"github.com/Gunvolt24/customer-api/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Дефолты пагинации на HTTP-границе (границы диапазона проверяют сервисы).
const (
	defaultCustomersPageSize = 20
	defaultOrdersPageSize    = 10
)

// Handler — HTTP-обработчики поверх сервисов чтения.
type Handler struct {
	customers ports.CustomerReadService
	orders    ports.OrderReadService
	log       ports.Logger
	timeout   time.Duration // бюджет на обработку одного запроса (0 — без лимита)
}

// NewHandler — конструктор Handler.
func NewHandler(customers ports.CustomerReadService, orders ports.OrderReadService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{customers: customers, orders: orders, log: log, timeout: timeout}
}

// requestCtx — контекст запроса с таймаутом обработчика (если задан).
func (h *Handler) requestCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.timeout)
	}
	return c.Request.Context(), func() {}
}

// NewRouter — сборка маршрутов. otelServiceName непустой — включаем otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", httpx.CORSMiddleware())
	{
		api.GET("/customers", h.listCustomers)
		api.GET("/customers/count", h.customerCount)
		api.GET("/customers/:id", h.getCustomerByID)
		api.GET("/customers/:id/exists", h.customerExists)
		api.GET("/customers/:id/orders", h.listCustomerOrders)
		api.GET("/customers/:id/orders/count", h.countCustomerOrders)
		api.GET("/customers/:id/orders/:orderId", h.getCustomerOrder)
		api.GET("/orders/:orderId", h.getOrderByID)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}
