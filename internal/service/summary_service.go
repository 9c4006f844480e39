package service

import (
	"context"
	"errors"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/repository"

	"gorm.io/gorm"
)

type SummaryService interface {
	// Generate aggregates the three record sets over [day, day+1) and
	// upserts the summary row for day, preserving its id on overwrite.
	Generate(ctx context.Context, day time.Time) (*dto.DailySummaryResponse, error)
	Get(ctx context.Context, day time.Time) (*dto.DailySummaryResponse, error)
	List(ctx context.Context) ([]dto.DailySummaryResponse, error)
	// Range returns summaries with date ∈ [start, end+1day), ascending
	Range(ctx context.Context, start, end time.Time) ([]dto.DailySummaryResponse, error)
	Update(ctx context.Context, day time.Time, req dto.UpdateSummaryRequest) (*dto.DailySummaryResponse, error)
}

type summaryService struct {
	summaries    repository.SummaryRepository
	sales        repository.SaleRepository
	counterSales repository.CounterSaleRepository
	expenses     repository.ExpenseRepository
}

func NewSummaryService(
	summaries repository.SummaryRepository,
	sales repository.SaleRepository,
	counterSales repository.CounterSaleRepository,
	expenses repository.ExpenseRepository,
) SummaryService {
	return &summaryService{
		summaries:    summaries,
		sales:        sales,
		counterSales: counterSales,
		expenses:     expenses,
	}
}

// Day truncates t to midnight UTC — the natural key of a summary.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *summaryService) Generate(ctx context.Context, day time.Time) (*dto.DailySummaryResponse, error) {
	day = Day(day)
	next := day.AddDate(0, 0, 1)

	hotelKgs, hotelAmount, err := s.sales.SumWindow(ctx, day, next)
	if err != nil {
		return nil, err
	}
	counterKgs, counterAmount, err := s.counterSales.SumWindow(ctx, day, next)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenses.SumWindow(ctx, day, next)
	if err != nil {
		return nil, err
	}

	balance := hotelAmount.Add(counterAmount).Sub(totalExpenses)

	// Upsert keyed by date. Two concurrent generates for the same date race
	// here: last write wins, a partial view is possible. Accepted — the next
	// generate repairs the row.
	existing, err := s.summaries.FindByDate(ctx, day)
	switch {
	case err == nil:
		existing.CounterKgs = counterKgs
		existing.CounterAmount = counterAmount
		existing.HotelKgs = hotelKgs
		existing.HotelAmount = hotelAmount
		existing.Expenses = totalExpenses
		existing.Balance = balance
		if err := s.summaries.Update(ctx, existing); err != nil {
			return nil, err
		}
		return summaryResponse(existing), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		created := &model.DailySummary{
			Date:          day,
			CounterKgs:    counterKgs,
			CounterAmount: counterAmount,
			HotelKgs:      hotelKgs,
			HotelAmount:   hotelAmount,
			Expenses:      totalExpenses,
			Balance:       balance,
		}
		if err := s.summaries.Create(ctx, created); err != nil {
			return nil, err
		}
		return summaryResponse(created), nil
	default:
		return nil, err
	}
}

func (s *summaryService) Get(ctx context.Context, day time.Time) (*dto.DailySummaryResponse, error) {
	sum, err := s.summaries.FindByDate(ctx, Day(day))
	if err != nil {
		return nil, err
	}
	return summaryResponse(sum), nil
}

func (s *summaryService) List(ctx context.Context) ([]dto.DailySummaryResponse, error) {
	sums, err := s.summaries.List(ctx)
	if err != nil {
		return nil, err
	}
	return summaryResponses(sums), nil
}

func (s *summaryService) Range(ctx context.Context, start, end time.Time) ([]dto.DailySummaryResponse, error) {
	from := Day(start)
	to := Day(end).AddDate(0, 0, 1) // end date is inclusive
	sums, err := s.summaries.Range(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return summaryResponses(sums), nil
}

func (s *summaryService) Update(ctx context.Context, day time.Time, req dto.UpdateSummaryRequest) (*dto.DailySummaryResponse, error) {
	sum, err := s.summaries.FindByDate(ctx, Day(day))
	if err != nil {
		return nil, err
	}
	sum.CounterKgs = req.CounterKgs
	sum.CounterAmount = req.CounterAmount
	sum.HotelKgs = req.HotelKgs
	sum.HotelAmount = req.HotelAmount
	sum.Expenses = req.Expenses
	sum.Balance = req.Balance
	if err := s.summaries.Update(ctx, sum); err != nil {
		return nil, err
	}
	return summaryResponse(sum), nil
}

func summaryResponse(m *model.DailySummary) *dto.DailySummaryResponse {
	return &dto.DailySummaryResponse{
		ID:            m.ID.String(),
		Date:          m.Date,
		CounterKgs:    m.CounterKgs,
		CounterAmount: m.CounterAmount,
		HotelKgs:      m.HotelKgs,
		HotelAmount:   m.HotelAmount,
		Expenses:      m.Expenses,
		Balance:       m.Balance,
	}
}

func summaryResponses(ms []model.DailySummary) []dto.DailySummaryResponse {
	resp := make([]dto.DailySummaryResponse, len(ms))
	for i := range ms {
		resp[i] = *summaryResponse(&ms[i])
	}
	return resp
}
