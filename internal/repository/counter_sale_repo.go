package repository

import (
	"context"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CounterSaleRepository interface {
	Create(ctx context.Context, cs *model.CounterSale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CounterSale, error)
	List(ctx context.Context) ([]model.CounterSale, error)
	ListWindow(ctx context.Context, from, to time.Time) ([]model.CounterSale, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SumWindow(ctx context.Context, from, to time.Time) (kgs, amount decimal.Decimal, err error)
	SumTotal(ctx context.Context) (kgs, amount decimal.Decimal, err error)
}

type counterSaleRepo struct{ db *gorm.DB }

func NewCounterSaleRepository(db *gorm.DB) CounterSaleRepository {
	return &counterSaleRepo{db: db}
}

func (r *counterSaleRepo) Create(ctx context.Context, cs *model.CounterSale) error {
	return r.db.WithContext(ctx).Create(cs).Error
}

func (r *counterSaleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CounterSale, error) {
	var cs model.CounterSale
	err := r.db.WithContext(ctx).First(&cs, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *counterSaleRepo) List(ctx context.Context) ([]model.CounterSale, error) {
	var sales []model.CounterSale
	err := r.db.WithContext(ctx).Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *counterSaleRepo) ListWindow(ctx context.Context, from, to time.Time) ([]model.CounterSale, error) {
	var sales []model.CounterSale
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&sales).Error
	return sales, err
}

func (r *counterSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.CounterSale{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *counterSaleRepo) SumWindow(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var row sumRow
	err := r.db.WithContext(ctx).Model(&model.CounterSale{}).
		Select("COALESCE(SUM(kgs), 0) AS kgs, COALESCE(SUM(amount), 0) AS amount").
		Where("date >= ? AND date < ?", from, to).
		Scan(&row).Error
	return row.Kgs, row.Amount, err
}

func (r *counterSaleRepo) SumTotal(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var row sumRow
	err := r.db.WithContext(ctx).Model(&model.CounterSale{}).
		Select("COALESCE(SUM(kgs), 0) AS kgs, COALESCE(SUM(amount), 0) AS amount").
		Scan(&row).Error
	return row.Kgs, row.Amount, err
}
