package service

import (
	"context"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/repository"

	"github.com/shopspring/decimal"
)

var zero = decimal.Zero

// DashboardFilter is an optional single-date or date-range restriction.
// Both bounds set means range mode; both nil means all-time totals.
type DashboardFilter struct {
	From *time.Time
	To   *time.Time // exclusive
	// Echo fields for the response
	Single, Start, End *string
}

type DashboardService interface {
	Stats(ctx context.Context, f DashboardFilter) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	hotels       repository.HotelRepository
	sales        repository.SaleRepository
	counterSales repository.CounterSaleRepository
	expenses     repository.ExpenseRepository
}

func NewDashboardService(
	hotels repository.HotelRepository,
	sales repository.SaleRepository,
	counterSales repository.CounterSaleRepository,
	expenses repository.ExpenseRepository,
) DashboardService {
	return &dashboardService{
		hotels:       hotels,
		sales:        sales,
		counterSales: counterSales,
		expenses:     expenses,
	}
}

func (s *dashboardService) Stats(ctx context.Context, f DashboardFilter) (*dto.DashboardStatsResponse, error) {
	windowed := f.From != nil && f.To != nil

	var (
		hotelKgs, hotelAmount     = zero, zero
		counterKgs, counterAmount = zero, zero
		totalExpenses             = zero
		err                       error
	)

	if windowed {
		hotelKgs, hotelAmount, err = s.sales.SumWindow(ctx, *f.From, *f.To)
	} else {
		hotelKgs, hotelAmount, err = s.sales.SumTotal(ctx)
	}
	if err != nil {
		return nil, err
	}

	if windowed {
		counterKgs, counterAmount, err = s.counterSales.SumWindow(ctx, *f.From, *f.To)
	} else {
		counterKgs, counterAmount, err = s.counterSales.SumTotal(ctx)
	}
	if err != nil {
		return nil, err
	}

	if windowed {
		totalExpenses, err = s.expenses.SumWindow(ctx, *f.From, *f.To)
	} else {
		totalExpenses, err = s.expenses.SumTotal(ctx)
	}
	if err != nil {
		return nil, err
	}

	// Hotel count is never date-filtered
	totalHotels, err := s.hotels.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalHotelSales:   hotelAmount,
		TotalHotelKgs:     hotelKgs,
		TotalCounterSales: counterAmount,
		TotalCounterKgs:   counterKgs,
		TotalHotels:       totalHotels,
		TotalExpenses:     totalExpenses,
		DateFilter: dto.DashboardDateFilter{
			Single: f.Single,
			Start:  f.Start,
			End:    f.End,
		},
	}, nil
}
