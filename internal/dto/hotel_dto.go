package dto

import "github.com/shopspring/decimal"

type HotelRequest struct {
	Name           string          `json:"name"            validate:"required,min=1,max=150"`
	Address        string          `json:"address"         validate:"required,min=1"`
	Phone          string          `json:"phone"           validate:"required,min=1,max=30"`
	OpeningBalance decimal.Decimal `json:"opening_balance" validate:"min=0"`
}

type HotelResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}
