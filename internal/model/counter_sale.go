package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CounterSale is a walk-in cash sale at the counter.
type CounterSale struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date   time.Time       `gorm:"index;not null"`
	BillNo string          `gorm:"not null"`
	Kgs    decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// PaymentMethod: CASH / UPI / CARD etc.
	PaymentMethod *string `gorm:"type:varchar(20)"`
	Notes         *string
	CreatedAt     time.Time
}
