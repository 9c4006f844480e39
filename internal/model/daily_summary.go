package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySummary is the derived per-day aggregate over sales, counter sales and
// expenses. At most one row exists per calendar date (date is truncated to
// midnight UTC); regenerating a date overwrites the fields in place and keeps
// the original id. The row is never invalidated automatically when the
// underlying records change — staleness until the next generate is accepted.
type DailySummary struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date          time.Time       `gorm:"uniqueIndex;not null"`
	CounterKgs    decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	CounterAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	HotelKgs      decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	HotelAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Expenses      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Balance = HotelAmount + CounterAmount - Expenses
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
