package handlers

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// fieldErrorCodes picks the error code reported for the first failing field
var fieldErrorCodes = map[string]errors.ErrorCode{
	"amount":   errors.ValidationInvalidAmount,
	"date":     errors.ValidationInvalidDate,
	"type":     errors.ValidationInvalidType,
	"view":     errors.LedgerInvalidView,
	"month":    errors.LedgerInvalidMonth,
}

// sendValidationError maps validator failures onto the ledger error codes
func sendValidationError(c echo.Context, err error) error {
	fields := validation.FieldErrors(err)
	if len(fields) == 0 {
		return SendError(c, errors.ValidationGeneral)
	}

	details := make([]string, 0, len(fields))
	for _, f := range fields {
		details = append(details, f.Message)
	}

	code, ok := fieldErrorCodes[fields[0].Field]
	if !ok {
		code = errors.ValidationGeneral
	}

	return SendError(c, code, errors.WithDetails(details...))
}

// sendModelError maps domain validation errors to responses; anything unknown is a system error
func sendModelError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrInvalidDate):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.ValidationInvalidType, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrInvalidViewMode):
		return SendError(c, errors.LedgerInvalidView, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrInvalidMonth):
		return SendError(c, errors.LedgerInvalidMonth, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

var errNotAnInteger = stderrors.New("must be an integer")

// getIntParam reads an integer query parameter. An absent parameter yields defaultValue,
// anything that is not a whole integer is an error.
func getIntParam(c echo.Context, name string, defaultValue int) (int, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("%s %w", name, errNotAnInteger)
	}

	return value, nil
}

func getBoolParam(c echo.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.QueryParam(name))) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
