package service

import (
	"context"
	"testing"

	"github.com/varunreddy1024/ledger-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubHotelRepo struct {
	hotels []model.Hotel
}

func (r *stubHotelRepo) Create(_ context.Context, h *model.Hotel) error {
	h.ID = uuid.New()
	r.hotels = append(r.hotels, *h)
	return nil
}

func (r *stubHotelRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Hotel, error) {
	for i := range r.hotels {
		if r.hotels[i].ID == id {
			return &r.hotels[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubHotelRepo) List(_ context.Context) ([]model.Hotel, error) { return r.hotels, nil }

func (r *stubHotelRepo) Update(_ context.Context, _ *model.Hotel) error { return nil }

func (r *stubHotelRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubHotelRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.hotels)), nil
}

func newTestDashboardService() (DashboardService, *stubHotelRepo, *stubSaleRepo, *stubCounterSaleRepo, *stubExpenseRepo) {
	hotels := &stubHotelRepo{}
	sales := &stubSaleRepo{}
	counter := &stubCounterSaleRepo{}
	expenses := &stubExpenseRepo{}
	return NewDashboardService(hotels, sales, counter, expenses), hotels, sales, counter, expenses
}

func TestStatsAllTime(t *testing.T) {
	svc, hotels, sales, counter, expenses := newTestDashboardService()
	hotels.hotels = []model.Hotel{{ID: uuid.New()}, {ID: uuid.New()}}
	sales.sales = []model.Sale{
		{Date: day("2024-01-10"), Kgs: dec("10"), BillAmount: dec("100")},
		{Date: day("2024-02-10"), Kgs: dec("5"), BillAmount: dec("50")},
	}
	counter.sales = []model.CounterSale{
		{Date: day("2024-01-10"), Kgs: dec("2"), Amount: dec("30")},
	}
	expenses.expenses = []model.Expense{
		{Date: day("2024-01-10"), ExpenseType: "RENT", Amount: dec("40")},
	}

	resp, err := svc.Stats(context.Background(), DashboardFilter{})
	assert.NoError(t, err)
	assert.True(t, resp.TotalHotelSales.Equal(dec("150")))
	assert.True(t, resp.TotalHotelKgs.Equal(dec("15")))
	assert.True(t, resp.TotalCounterSales.Equal(dec("30")))
	assert.True(t, resp.TotalExpenses.Equal(dec("40")))
	assert.Equal(t, int64(2), resp.TotalHotels)
	assert.Nil(t, resp.DateFilter.Single)
}

func TestStatsSingleDateWindow(t *testing.T) {
	svc, hotels, sales, _, _ := newTestDashboardService()
	hotels.hotels = []model.Hotel{{ID: uuid.New()}}
	sales.sales = []model.Sale{
		{Date: day("2024-01-10"), Kgs: dec("10"), BillAmount: dec("100")},
		{Date: day("2024-01-11"), Kgs: dec("5"), BillAmount: dec("50")},
	}

	from := day("2024-01-10")
	to := from.AddDate(0, 0, 1)
	single := "2024-01-10"
	resp, err := svc.Stats(context.Background(), DashboardFilter{From: &from, To: &to, Single: &single})
	assert.NoError(t, err)
	assert.True(t, resp.TotalHotelSales.Equal(dec("100")))
	assert.True(t, resp.TotalHotelKgs.Equal(dec("10")))
	// Hotel count ignores the window
	assert.Equal(t, int64(1), resp.TotalHotels)
	assert.Equal(t, "2024-01-10", *resp.DateFilter.Single)
}

func TestStatsEmptyStore(t *testing.T) {
	svc, _, _, _, _ := newTestDashboardService()

	resp, err := svc.Stats(context.Background(), DashboardFilter{})
	assert.NoError(t, err)
	assert.True(t, resp.TotalHotelSales.Equal(decimal.Zero))
	assert.True(t, resp.TotalExpenses.Equal(decimal.Zero))
	assert.Equal(t, int64(0), resp.TotalHotels)
}
