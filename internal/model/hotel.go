package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Hotel is a client account that buys on credit.
// Deleting a hotel does NOT cascade to its sales — orphaned sale rows keep
// the stale hotel_id and are still counted by the aggregators.
type Hotel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string          `gorm:"not null"`
	Address        string          `gorm:"not null"`
	Phone          string          `gorm:"not null"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
