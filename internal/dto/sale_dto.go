package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleRequest struct {
	HotelID        string          `json:"hotel_id"        validate:"required,uuid"`
	Date           time.Time       `json:"date"            validate:"required"`
	BillNo         string          `json:"bill_no"         validate:"required,min=1,max=50"`
	Kgs            decimal.Decimal `json:"kgs"             validate:"min=0"`
	BillAmount     decimal.Decimal `json:"bill_amount"     validate:"min=0"`
	ReceivedAmount decimal.Decimal `json:"received_amount" validate:"min=0"`
	Balance        decimal.Decimal `json:"balance"`
}

type SaleResponse struct {
	ID             string          `json:"id"`
	HotelID        string          `json:"hotel_id"`
	Date           time.Time       `json:"date"`
	BillNo         string          `json:"bill_no"`
	Kgs            decimal.Decimal `json:"kgs"`
	BillAmount     decimal.Decimal `json:"bill_amount"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	Balance        decimal.Decimal `json:"balance"`
}
