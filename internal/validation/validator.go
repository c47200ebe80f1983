package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("date_format", validateDateFormat)
	_ = v.RegisterValidation("view_mode", validateViewMode)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validatePositiveAmount validates that an amount is greater than 0. String fields
// are parsed as decimals so amounts can travel as JSON numbers or strings.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	case reflect.String:
		amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return false
		}
		return amount.IsPositive()
	default:
		return false
	}
}

// validateTransactionType validates that transaction type is income or expense
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateDateFormat validates a YYYY-MM-DD date, RFC 3339 also accepted
func validateDateFormat(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// validateViewMode validates the chart view; empty means the overall view
func validateViewMode(fl validator.FieldLevel) bool {
	switch models.ViewMode(fl.Field().String()) {
	case "", models.ViewOverall, models.ViewMonthly:
		return true
	default:
		return false
	}
}

// FieldError is a single failed rule on a request field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// FieldErrors flattens validator errors into field/rule pairs. Non-validation
// errors come back as a single entry with an empty field.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}
	return fields
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "positive_amount":
		return fmt.Sprintf("%s must be a number greater than zero", fe.Field())
	case "transaction_type":
		return fmt.Sprintf("%s must be %s or %s", fe.Field(), models.TransactionTypeIncome, models.TransactionTypeExpense)
	case "date_format":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	case "view_mode":
		return fmt.Sprintf("%s must be %s or %s", fe.Field(), models.ViewOverall, models.ViewMonthly)
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}
