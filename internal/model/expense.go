package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseTypes are the accepted categories for Expense.ExpenseType.
var ExpenseTypes = []string{
	"SALARY", "RENT", "ELECTRICITY", "WATER",
	"MAINTENANCE", "TRANSPORTATION", "SUPPLIES", "MISCELLANEOUS",
}

// Expense is a business outgoing payment.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date        time.Time       `gorm:"index;not null"`
	ExpenseType string          `gorm:"type:varchar(20);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes       *string
	// PaidTo is the name of the person/company paid
	PaidTo *string
	// PaymentMethod: CASH / UPI / BANK_TRANSFER etc.
	PaymentMethod *string `gorm:"type:varchar(20)"`
	// ReferenceNo tracks the payment/bill reference
	ReferenceNo *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
