package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	ledger    services.LedgerServiceInterface
	generator services.DemoDataGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(ledger services.LedgerServiceInterface, generator services.DemoDataGeneratorInterface) *DevHandler {
	return &DevHandler{
		ledger:    ledger,
		generator: generator,
	}
}

// SeedDemoLedger replays generated submissions through the ledger
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - count: Number of one-off entries to add (default: 40, max: 100)
//   - year: Year the entries fall in (default: current year)
//
// Every submission is a regular add, so each one can be undone. Each add rewrites
// the whole history under the ledger lock, which is why count is capped low.
func (h *DevHandler) SeedDemoLedger(c echo.Context) error {
	count, err := getIntParam(c, "count", services.DefaultDemoEntries)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if count < 0 {
		count = 0
	}
	if count > services.MaxDemoEntries {
		count = services.MaxDemoEntries
	}

	year, err := getIntParam(c, "year", time.Now().Year())
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if year < 1 || year > 9999 {
		year = time.Now().Year()
	}

	entries := h.generator.Generate(year, count)
	for _, entry := range entries {
		if _, err := h.ledger.AddTransaction(c.Request().Context(), entry.Transaction, entry.Repeat); err != nil {
			return sendModelError(c, err)
		}
	}

	slog.Info("demo ledger seeded", "submissions", len(entries), "year", year)

	return c.JSON(http.StatusOK, dto.SeedDemoResponse{
		Message:      "demo data generated successfully",
		Submissions:  len(entries),
		Count:        len(h.ledger.Transactions()),
		HistoryDepth: h.ledger.HistoryDepth(),
	})
}
