package repository

import (
	"context"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/model"

	"gorm.io/gorm"
)

type SummaryRepository interface {
	// FindByDate matches on the exact (midnight-truncated) date
	FindByDate(ctx context.Context, date time.Time) (*model.DailySummary, error)
	Create(ctx context.Context, s *model.DailySummary) error
	Update(ctx context.Context, s *model.DailySummary) error
	List(ctx context.Context) ([]model.DailySummary, error)
	// Range returns summaries with date ∈ [from, to), ascending by date
	Range(ctx context.Context, from, to time.Time) ([]model.DailySummary, error)
}

type summaryRepo struct{ db *gorm.DB }

func NewSummaryRepository(db *gorm.DB) SummaryRepository { return &summaryRepo{db: db} }

func (r *summaryRepo) FindByDate(ctx context.Context, date time.Time) (*model.DailySummary, error) {
	var s model.DailySummary
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *summaryRepo) Create(ctx context.Context, s *model.DailySummary) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *summaryRepo) Update(ctx context.Context, s *model.DailySummary) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *summaryRepo) List(ctx context.Context) ([]model.DailySummary, error) {
	var summaries []model.DailySummary
	err := r.db.WithContext(ctx).Order("date DESC").Find(&summaries).Error
	return summaries, err
}

func (r *summaryRepo) Range(ctx context.Context, from, to time.Time) ([]model.DailySummary, error) {
	var summaries []model.DailySummary
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&summaries).Error
	return summaries, err
}
