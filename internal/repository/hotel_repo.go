package repository

import (
	"context"

	"github.com/varunreddy1024/ledger-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HotelRepository interface {
	Create(ctx context.Context, h *model.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Hotel, error)
	List(ctx context.Context) ([]model.Hotel, error)
	Update(ctx context.Context, h *model.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type hotelRepo struct{ db *gorm.DB }

func NewHotelRepository(db *gorm.DB) HotelRepository { return &hotelRepo{db: db} }

func (r *hotelRepo) Create(ctx context.Context, h *model.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *hotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Hotel, error) {
	var h model.Hotel
	err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *hotelRepo) List(ctx context.Context) ([]model.Hotel, error) {
	var hotels []model.Hotel
	err := r.db.WithContext(ctx).Order("name ASC").Find(&hotels).Error
	return hotels, err
}

func (r *hotelRepo) Update(ctx context.Context, h *model.Hotel) error {
	return r.db.WithContext(ctx).Save(h).Error
}

// Delete removes the hotel only. Sales referencing it are deliberately left
// in place — the ledger history must survive client churn.
func (r *hotelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Hotel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *hotelRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Hotel{}).Count(&n).Error
	return n, err
}
