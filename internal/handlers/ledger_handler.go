package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// LedgerHandler handles transaction store HTTP requests
type LedgerHandler struct {
	ledger services.LedgerServiceInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledger services.LedgerServiceInterface) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// ListTransactions returns every recorded transaction in insertion order
// @Summary List transactions
// @Description Retrieve the full transaction store
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.TransactionListResponse "Transactions in insertion order"
// @Router /transactions [get]
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	transactions := h.ledger.Transactions()

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Count:        len(transactions),
		HistoryDepth: h.ledger.HistoryDepth(),
	})
}

// AddTransaction records an income or expense, optionally repeated monthly for a year
// @Summary Add transaction
// @Description Append one entry, or twelve monthly entries when repeat is true
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.AddTransactionRequest true "Transaction details"
// @Success 201 {object} dto.AddTransactionResponse "Entries appended"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid amount or VALIDATION_007 - Invalid date"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *LedgerHandler) AddTransaction(c echo.Context) error {
	var req dto.AddTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	template, err := req.ToTransaction()
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	added, err := h.ledger.AddTransaction(c.Request().Context(), template, req.Repeat)
	if err != nil {
		return sendModelError(c, err)
	}

	slog.Debug("transaction request handled",
		"client_ip", getClientIP(c),
		"added", len(added))

	return c.JSON(http.StatusCreated, dto.AddTransactionResponse{
		Added:        added,
		Count:        len(h.ledger.Transactions()),
		HistoryDepth: h.ledger.HistoryDepth(),
		Message:      "Transaction added",
	})
}

// Undo restores the ledger to the snapshot before the last add
// @Summary Undo last add
// @Description Pop the newest history snapshot and restore the previous one
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.UndoResponse "Ledger restored"
// @Failure 422 {object} errors.ErrorResponse "LEDGER_001 - Nothing to undo"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/undo [post]
func (h *LedgerHandler) Undo(c echo.Context) error {
	transactions, err := h.ledger.Undo(c.Request().Context())
	if err != nil {
		if stderrors.Is(err, services.ErrNothingToUndo) {
			return SendError(c, errors.LedgerNothingToUndo)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UndoResponse{
		Transactions: transactions,
		HistoryDepth: h.ledger.HistoryDepth(),
		Message:      "Last action undone",
	})
}

// Reset clears every transaction and the undo history
// @Summary Reset ledger
// @Description Delete all transactions and history. Requires confirm=true.
// @Tags Transactions
// @Produce json
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.ResetResponse "Ledger cleared"
// @Failure 422 {object} errors.ErrorResponse "LEDGER_002 - Reset not confirmed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [delete]
func (h *LedgerHandler) Reset(c echo.Context) error {
	if !getBoolParam(c, "confirm") {
		return SendError(c, errors.LedgerResetNotConfirmed)
	}

	if err := h.ledger.Reset(c.Request().Context()); err != nil {
		return SendSystemError(c, err)
	}

	slog.Info("ledger reset requested", "client_ip", getClientIP(c))

	return c.JSON(http.StatusOK, dto.ResetResponse{Message: "All data has been reset"})
}
