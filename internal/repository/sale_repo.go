package repository

import (
	"context"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]model.Sale, error)
	Update(ctx context.Context, s *model.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SumWindow aggregates kgs and bill_amount over date ∈ [from, to)
	SumWindow(ctx context.Context, from, to time.Time) (kgs, amount decimal.Decimal, err error)
	SumTotal(ctx context.Context) (kgs, amount decimal.Decimal, err error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Update(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *saleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Sale{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// sumRow receives COALESCE'd SUM columns; decimal.Decimal scans NUMERIC directly.
type sumRow struct {
	Kgs    decimal.Decimal
	Amount decimal.Decimal
}

func (r *saleRepo) SumWindow(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var row sumRow
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(kgs), 0) AS kgs, COALESCE(SUM(bill_amount), 0) AS amount").
		Where("date >= ? AND date < ?", from, to).
		Scan(&row).Error
	return row.Kgs, row.Amount, err
}

func (r *saleRepo) SumTotal(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var row sumRow
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(kgs), 0) AS kgs, COALESCE(SUM(bill_amount), 0) AS amount").
		Scan(&row).Error
	return row.Kgs, row.Amount, err
}
