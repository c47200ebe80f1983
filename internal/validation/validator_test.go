package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator()
}

type entryRequest struct {
	Type     string      `json:"type" validate:"required,transaction_type"`
	Category string      `json:"category"`
	Amount   json.Number `json:"amount" validate:"required,positive_amount"`
	Date     string      `json:"date" validate:"required,date_format"`
	View     string      `json:"view" validate:"view_mode"`
}

func (s *ValidatorTestSuite) validRequest() entryRequest {
	return entryRequest{
		Type:     "expense",
		Category: "Food",
		Amount:   "12.50",
		Date:     "2024-01-20",
	}
}

func (s *ValidatorTestSuite) TestValidRequest() {
	s.NoError(s.validator.Struct(s.validRequest()))
}

func (s *ValidatorTestSuite) TestRuleViolations() {
	testCases := []struct {
		name   string
		mutate func(r *entryRequest)
		field  string
		rule   string
	}{
		{"missing amount", func(r *entryRequest) { r.Amount = "" }, "amount", "required"},
		{"zero amount", func(r *entryRequest) { r.Amount = "0" }, "amount", "positive_amount"},
		{"negative amount", func(r *entryRequest) { r.Amount = "-5" }, "amount", "positive_amount"},
		{"non numeric amount", func(r *entryRequest) { r.Amount = "abc" }, "amount", "positive_amount"},
		{"unknown type", func(r *entryRequest) { r.Type = "transfer" }, "type", "transaction_type"},
		{"missing date", func(r *entryRequest) { r.Date = "" }, "date", "required"},
		{"bad date", func(r *entryRequest) { r.Date = "20/01/2024" }, "date", "date_format"},
		{"unknown view", func(r *entryRequest) { r.View = "weekly" }, "view", "view_mode"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := s.validRequest()
			tc.mutate(&req)

			fields := FieldErrors(s.validator.Struct(req))

			s.Require().Len(fields, 1)
			s.Equal(tc.field, fields[0].Field)
			s.Equal(tc.rule, fields[0].Rule)
			s.NotEmpty(fields[0].Message)
		})
	}
}

func (s *ValidatorTestSuite) TestPositiveAmount_NumericKinds() {
	type numbers struct {
		Int   int     `validate:"positive_amount"`
		Float float64 `validate:"positive_amount"`
	}

	s.NoError(s.validator.Struct(numbers{Int: 1, Float: 0.01}))
	s.Error(s.validator.Struct(numbers{Int: 0, Float: 1}))
	s.Error(s.validator.Struct(numbers{Int: 1, Float: -1}))
}

func (s *ValidatorTestSuite) TestFieldErrors_NonValidationError() {
	fields := FieldErrors(errors.New("boom"))

	s.Require().Len(fields, 1)
	s.Empty(fields[0].Field)
	s.Equal("boom", fields[0].Message)

	s.Nil(FieldErrors(nil))
}

func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	s.Same(GetValidator(), GetValidator())
}
