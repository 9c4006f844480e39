package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a credit sale billed to a hotel client.
// HotelID is a plain indexed column, not a DB-level foreign key, so that
// deleting a hotel never blocks on (or cascades into) its sale history.
type Sale struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HotelID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Date           time.Time       `gorm:"index;not null"`
	BillNo         string          `gorm:"not null"`
	Kgs            decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	BillAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ReceivedAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Balance = BillAmount - ReceivedAmount, stored as sent by the client
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
