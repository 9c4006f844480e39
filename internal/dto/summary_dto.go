package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateSummaryRequest manually overwrites a stored summary for a date.
// The aggregator will clobber these values on the next generate for the date.
type UpdateSummaryRequest struct {
	CounterKgs    decimal.Decimal `json:"counter_kgs"    validate:"min=0"`
	CounterAmount decimal.Decimal `json:"counter_amount" validate:"min=0"`
	HotelKgs      decimal.Decimal `json:"hotel_kgs"      validate:"min=0"`
	HotelAmount   decimal.Decimal `json:"hotel_amount"   validate:"min=0"`
	Expenses      decimal.Decimal `json:"expenses"       validate:"min=0"`
	Balance       decimal.Decimal `json:"balance"`
}

type DailySummaryResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	CounterKgs    decimal.Decimal `json:"counter_kgs"`
	CounterAmount decimal.Decimal `json:"counter_amount"`
	HotelKgs      decimal.Decimal `json:"hotel_kgs"`
	HotelAmount   decimal.Decimal `json:"hotel_amount"`
	Expenses      decimal.Decimal `json:"expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// EmailReportRequest optionally overrides the configured report recipient.
type EmailReportRequest struct {
	ToEmail string `json:"to_email" validate:"omitempty,email"`
}
