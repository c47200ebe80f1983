package server

import (
	"context"
	"log/slog"
	"net/http"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const APIPrefix = "/api/v1"

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Ledger      *handlers.LedgerHandler
	Dashboard   *handlers.DashboardHandler
	Preferences *handlers.PreferenceHandler
	Health      *handlers.HealthCheckHandler
	// Dev is mounted only when set
	Dev *handlers.DevHandler
}

// NewRouter builds the echo instance serving the ledger API. The rate limiter
// cleanup goroutine stops when ctx is done.
func NewRouter(ctx context.Context, cfg *config.Config, h Handlers, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiter(ctx, cfg.Security))

	e.GET("/health", h.Health.HealthCheck)

	api := e.Group(APIPrefix)

	transactions := api.Group("/transactions")
	transactions.GET("", h.Ledger.ListTransactions)
	transactions.POST("", h.Ledger.AddTransaction)
	transactions.DELETE("", h.Ledger.Reset)
	transactions.POST("/undo", h.Ledger.Undo)

	api.GET("/dashboard", h.Dashboard.GetDashboard)
	api.GET("/suggestions", h.Dashboard.GetSuggestions)
	api.GET("/charts", h.Dashboard.GetCharts)

	preferences := api.Group("/preferences")
	preferences.GET("/theme", h.Preferences.GetTheme)
	preferences.POST("/theme/toggle", h.Preferences.ToggleTheme)

	if h.Dev != nil {
		api.POST("/dev/seed", h.Dev.SeedDemoLedger)
	}

	return e
}

// NewMetricsServer serves the default Prometheus registry on its own listener
func NewMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
