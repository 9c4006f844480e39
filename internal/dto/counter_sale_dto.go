package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CounterSaleRequest struct {
	Date          time.Time       `json:"date"           validate:"required"`
	BillNo        string          `json:"bill_no"        validate:"required,min=1,max=50"`
	Kgs           decimal.Decimal `json:"kgs"            validate:"min=0"`
	Amount        decimal.Decimal `json:"amount"         validate:"min=0"`
	PaymentMethod *string         `json:"payment_method" validate:"omitempty,max=20"`
	Notes         *string         `json:"notes"`
}

type CounterSaleResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	BillNo        string          `json:"bill_no"`
	Kgs           decimal.Decimal `json:"kgs"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod *string         `json:"payment_method"`
	Notes         *string         `json:"notes"`
}
