package repository

import (
	"context"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseFilter narrows List; zero-value fields are ignored.
type ExpenseFilter struct {
	From        *time.Time
	To          *time.Time // exclusive
	ExpenseType string
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	List(ctx context.Context, f ExpenseFilter) ([]model.Expense, error)
	Update(ctx context.Context, e *model.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumWindow(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumTotal(ctx context.Context) (decimal.Decimal, error)
	// SumByType groups window totals per expense_type for the monthly report
	SumByType(ctx context.Context, from, to time.Time) ([]dto.ExpenseTypeTotal, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepo) List(ctx context.Context, f ExpenseFilter) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).Model(&model.Expense{})
	if f.From != nil && f.To != nil {
		q = q.Where("date >= ? AND date < ?", *f.From, *f.To)
	}
	if f.ExpenseType != "" {
		q = q.Where("expense_type = ?", f.ExpenseType)
	}
	var expenses []model.Expense
	err := q.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Update(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Expense{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *expenseRepo) SumWindow(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var row struct{ Amount decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS amount").
		Where("date >= ? AND date < ?", from, to).
		Scan(&row).Error
	return row.Amount, err
}

func (r *expenseRepo) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	var row struct{ Amount decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS amount").
		Scan(&row).Error
	return row.Amount, err
}

func (r *expenseRepo) SumByType(ctx context.Context, from, to time.Time) ([]dto.ExpenseTypeTotal, error) {
	var rows []dto.ExpenseTypeTotal
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("expense_type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("date >= ? AND date < ?", from, to).
		Group("expense_type").
		Order("expense_type ASC").
		Scan(&rows).Error
	return rows, err
}
