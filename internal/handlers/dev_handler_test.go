package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoLedger(t *testing.T) {
	ledger := services.NewLedgerService(repositories.NewMemoryStateRepository(), nil, nil, nil)
	handler := NewDevHandler(ledger, services.NewDemoDataGenerator(42))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/seed?count=5&year=2024", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.SeedDemoLedger(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SeedDemoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// salary and rent repeat twelve times each
	assert.Equal(t, 7, resp.Submissions)
	assert.Equal(t, 29, resp.Count)
	assert.Equal(t, 7, resp.HistoryDepth)

	for _, txn := range ledger.Transactions() {
		assert.Equal(t, 2024, txn.Date.Year())
		assert.True(t, txn.Amount.IsPositive())
	}
}

func TestSeedDemoLedger_StopsOnLedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := service_mocks.NewMockLedgerServiceInterface(ctrl)
	ledger.EXPECT().AddTransaction(gomock.Any(), gomock.Any(), true).Return(nil, stderrors.New("boom"))

	handler := NewDevHandler(ledger, services.NewDemoDataGenerator(1))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/seed?count=0", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.SeedDemoLedger(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSeedDemoLedger_RejectsNonNumericCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := service_mocks.NewMockLedgerServiceInterface(ctrl)
	handler := NewDevHandler(ledger, services.NewDemoDataGenerator(1))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/seed?count=lots", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.SeedDemoLedger(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_003")
}
