package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	ctx    context.Context
	cancel context.CancelFunc
	router *echo.Echo
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func newTestRouter(ctx context.Context, security config.SecurityConfig) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repositories.NewMemoryStateRepository()
	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())

	ledger := services.NewLedgerService(store, nil, metrics, logger)
	charts := services.NewChartBuilder(func() string { return "#123456" })
	dashboard := services.NewDashboardService(ledger, charts, metrics)
	preferences := services.NewPreferenceService(store, metrics)

	cfg := &config.Config{
		Server:   config.ServerConfig{CORSAllowOrigins: []string{"*"}},
		Security: security,
	}

	return NewRouter(ctx, cfg, Handlers{
		Ledger:      handlers.NewLedgerHandler(ledger),
		Dashboard:   handlers.NewDashboardHandler(dashboard),
		Preferences: handlers.NewPreferenceHandler(preferences),
		Health:      handlers.NewHealthCheckHandler(store, config.StorageBackendMemory),
	}, logger)
}

func (s *RouterTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.router = newTestRouter(s.ctx, config.SecurityConfig{RateLimitPerSecond: 1000, RateLimitBurst: 1000})
}

func (s *RouterTestSuite) TearDownTest() {
	s.cancel()
}

func (s *RouterTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *RouterTestSuite) TestAddListUndoFlow() {
	rec := s.do(http.MethodPost, APIPrefix+"/transactions",
		`{"type":"expense","category":"Food","amount":"50","date":"2024-01-10","repeat":true}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, APIPrefix+"/transactions",
		`{"type":"income","category":"Salary","amount":1000,"date":"2024-01-01"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, APIPrefix+"/transactions", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var list struct {
		Count        int `json:"count"`
		HistoryDepth int `json:"historyDepth"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Equal(13, list.Count)
	s.Equal(2, list.HistoryDepth)

	rec = s.do(http.MethodPost, APIPrefix+"/transactions/undo", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, APIPrefix+"/transactions/undo", "")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "LEDGER_001")
}

func (s *RouterTestSuite) TestInvalidAmountRejected() {
	rec := s.do(http.MethodPost, APIPrefix+"/transactions",
		`{"type":"expense","category":"Food","amount":"-5","date":"2024-01-10"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_005")
}

func (s *RouterTestSuite) TestResetRequiresConfirmation() {
	rec := s.do(http.MethodDelete, APIPrefix+"/transactions", "")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "LEDGER_002")

	rec = s.do(http.MethodDelete, APIPrefix+"/transactions?confirm=true", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestDashboardRoutes() {
	s.do(http.MethodPost, APIPrefix+"/transactions",
		`{"type":"expense","category":"Rent","amount":"800","date":"2024-02-01"}`)

	for _, target := range []string{
		APIPrefix + "/dashboard?view=monthly&month=1",
		APIPrefix + "/suggestions",
		APIPrefix + "/charts?view=overall",
	} {
		s.Run(target, func() {
			rec := s.do(http.MethodGet, target, "")
			s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		})
	}

	rec := s.do(http.MethodGet, APIPrefix+"/charts?view=weekly", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestThemeToggle() {
	rec := s.do(http.MethodGet, APIPrefix+"/preferences/theme", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"theme":"light"`)

	rec = s.do(http.MethodPost, APIPrefix+"/preferences/theme/toggle", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"theme":"dark"`)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, APIPrefix+"/accounts", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func TestRouter_RateLimited(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := newTestRouter(ctx, config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 1})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "SYSTEM_006")
}

func TestNewMetricsServer(t *testing.T) {
	srv := NewMetricsServer(":0")

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func (s *RouterTestSuite) TestDevRoutesHiddenByDefault() {
	rec := s.do(http.MethodPost, APIPrefix+"/dev/seed", "")

	s.Equal(http.StatusNotFound, rec.Code)
}
