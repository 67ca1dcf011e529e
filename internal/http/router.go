// Package httpapi wires the HTTP transport (Gin) to the storefront state
// layer, middleware, and route handlers. It centralizes cross-cutting
// concerns such as tracing, correlation IDs, logging, panic recovery,
// metrics, compression, CORS, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/duckshop/go-storefront/internal/config"
	"github.com/duckshop/go-storefront/internal/gateway"
	"github.com/duckshop/go-storefront/internal/http/handlers"
	"github.com/duckshop/go-storefront/internal/http/middleware"
	"github.com/duckshop/go-storefront/internal/services"
	"github.com/duckshop/go-storefront/internal/shop"
	"github.com/duckshop/go-storefront/internal/utils"
)

// App bundles the storefront state layer behind the HTTP transport. One App
// serves one shopper session, matching the single-user model of the client.
type App struct {
	Sessions *services.SessionStore
	Shop     *shop.Client
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Orders   *services.OrderService
	Payments *services.PaymentService
	Tracking *services.TrackingService
	Prices   *utils.PriceFormatter
}

// NewApp performs dependency injection: gateway ← session store (token
// source), typed client ← gateway, services ← client. The session store
// restores any persisted session from db before the first request.
func NewApp(ctx context.Context, cfg config.Config, db *gorm.DB) *App {
	sessions := services.NewSessionStore(ctx, db)
	gw := gateway.New(cfg.API, sessions)
	client := shop.NewClient(gw)

	orders := services.NewOrderService(client, sessions)
	return &App{
		Sessions: sessions,
		Shop:     client,
		Catalog:  services.NewCatalogService(client, sessions),
		Cart:     services.NewCartService(client, sessions),
		Orders:   orders,
		Payments: services.NewPaymentService(client, orders, sessions),
		Tracking: services.NewTrackingService(client, sessions),
		Prices:   utils.NewPriceFormatter(cfg.PriceLocale),
	}
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine, then mounts the versioned view API under /api/v1.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Structured logging
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per IP)
//  8. Compression and CORS
func RegisterRoutes(r *gin.Engine, app *App, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured request logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)
	r.Use(rl.Handler())

	// 8) Compression and CORS
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	sessionH := handlers.NewSessionHandlers(app.Shop, app.Sessions, app.Cart)
	storeH := handlers.NewStoreHandlers(app.Catalog, app.Cart, app.Orders, app.Prices)
	paymentH := handlers.NewPaymentHandlers(app.Payments, app.Tracking, app.Cart, app.Prices)

	// View API
	api := r.Group("/api/v1")
	{
		// Session
		api.POST("/session", sessionH.Login)
		api.DELETE("/session", sessionH.Logout)
		api.GET("/session", sessionH.CurrentSession)
		api.POST("/register", sessionH.Register)

		// Store
		api.GET("/products", storeH.Products)
		api.GET("/cart", storeH.Cart)
		api.POST("/cart/items", storeH.AddToCart)
		api.GET("/orders", storeH.Orders)

		// Payment and tracking
		api.GET("/payment", paymentH.PaymentPage)
		api.POST("/payment/selection", paymentH.SelectPaymentOrder)
		api.POST("/payment", paymentH.Pay)
		api.GET("/tracking", paymentH.TrackingPage)
		api.POST("/tracking/selection", paymentH.SelectTrackingOrder)
	}
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader. Requests exceeding the cap cause downstream body
// reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
