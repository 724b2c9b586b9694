package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/credibank/credit-system/internal/api/handler"
	"github.com/credibank/credit-system/internal/core/ports"
	"github.com/credibank/credit-system/internal/core/service"
	mongodb "github.com/credibank/credit-system/internal/infrastructure/db/mongo"
	rediscache "github.com/credibank/credit-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the credit lookup then runs without its read cache.
func NewRouter(db *mongo.Database, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("credit_system"))

	// --- Dependencies ---
	customerRepo := mongodb.NewCustomerRepository(db)
	creditRepo := mongodb.NewCreditRepository(db)

	var cache ports.CreditCache
	if rdb != nil {
		cache = rediscache.NewCreditCache(rdb, cacheTTL)
	}

	customerService := service.NewCustomerService(customerRepo, creditRepo, log)
	creditService := service.NewCreditService(creditRepo, customerService, cache, log)

	customerHandler := handler.NewCustomerHandler(customerService)
	creditHandler := handler.NewCreditHandler(creditService)

	// --- Customer routes ---
	e.POST("/api/customers", customerHandler.Create)
	e.GET("/api/customers/:customerId", customerHandler.Get)
	e.PATCH("/api/customers", customerHandler.Update)
	e.DELETE("/api/customers/:customerId", customerHandler.Delete)

	// --- Credit routes ---
	e.POST("/api/credits", creditHandler.Create)
	e.GET("/api/credits", creditHandler.List)
	e.GET("/api/credits/:creditCode", creditHandler.GetByCode)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
