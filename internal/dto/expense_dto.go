package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseRequest struct {
	Date          time.Time       `json:"date"           validate:"required"`
	ExpenseType   string          `json:"expense_type"   validate:"required,oneof=SALARY RENT ELECTRICITY WATER MAINTENANCE TRANSPORTATION SUPPLIES MISCELLANEOUS"`
	Amount        decimal.Decimal `json:"amount"         validate:"min=0"`
	Notes         *string         `json:"notes"`
	PaidTo        *string         `json:"paid_to"`
	PaymentMethod *string         `json:"payment_method" validate:"omitempty,max=20"`
	ReferenceNo   *string         `json:"reference_no"`
}

type ExpenseResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	ExpenseType   string          `json:"expense_type"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         *string         `json:"notes"`
	PaidTo        *string         `json:"paid_to"`
	PaymentMethod *string         `json:"payment_method"`
	ReferenceNo   *string         `json:"reference_no"`
}

// ExpenseTypeTotal is one row of the monthly per-type breakdown.
type ExpenseTypeTotal struct {
	ExpenseType string          `json:"expense_type"`
	Total       decimal.Decimal `json:"total"`
	Count       int64           `json:"count"`
}

type ExpenseSummaryResponse struct {
	Month    int                `json:"month"`
	Year     int                `json:"year"`
	Expenses []ExpenseTypeTotal `json:"expenses"`
}
