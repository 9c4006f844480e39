package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubSummaryRepo struct {
	byDate map[string]*model.DailySummary
}

func newStubSummaryRepo() *stubSummaryRepo {
	return &stubSummaryRepo{byDate: make(map[string]*model.DailySummary)}
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

func (r *stubSummaryRepo) FindByDate(_ context.Context, date time.Time) (*model.DailySummary, error) {
	s, ok := r.byDate[dateKey(date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSummaryRepo) Create(_ context.Context, s *model.DailySummary) error {
	s.ID = uuid.New()
	cp := *s
	r.byDate[dateKey(s.Date)] = &cp
	return nil
}

func (r *stubSummaryRepo) Update(_ context.Context, s *model.DailySummary) error {
	cp := *s
	r.byDate[dateKey(s.Date)] = &cp
	return nil
}

func (r *stubSummaryRepo) List(_ context.Context) ([]model.DailySummary, error) {
	out := make([]model.DailySummary, 0, len(r.byDate))
	for _, s := range r.byDate {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *stubSummaryRepo) Range(_ context.Context, from, to time.Time) ([]model.DailySummary, error) {
	var out []model.DailySummary
	for _, s := range r.byDate {
		if !s.Date.Before(from) && s.Date.Before(to) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type stubSaleRepo struct {
	sales []model.Sale
}

func (r *stubSaleRepo) Create(_ context.Context, s *model.Sale) error {
	s.ID = uuid.New()
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			return &r.sales[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) { return r.sales, nil }

func (r *stubSaleRepo) ListByHotel(_ context.Context, hotelID uuid.UUID) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if s.HotelID == hotelID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSaleRepo) Update(_ context.Context, _ *model.Sale) error { return nil }

func (r *stubSaleRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubSaleRepo) SumWindow(_ context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	kgs, amount := decimal.Zero, decimal.Zero
	for _, s := range r.sales {
		if !s.Date.Before(from) && s.Date.Before(to) {
			kgs = kgs.Add(s.Kgs)
			amount = amount.Add(s.BillAmount)
		}
	}
	return kgs, amount, nil
}

func (r *stubSaleRepo) SumTotal(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	return r.SumWindow(ctx, time.Time{}, time.Unix(1<<40, 0))
}

type stubCounterSaleRepo struct {
	sales []model.CounterSale
}

func (r *stubCounterSaleRepo) Create(_ context.Context, cs *model.CounterSale) error {
	cs.ID = uuid.New()
	r.sales = append(r.sales, *cs)
	return nil
}

func (r *stubCounterSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CounterSale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			return &r.sales[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCounterSaleRepo) List(_ context.Context) ([]model.CounterSale, error) {
	return r.sales, nil
}

func (r *stubCounterSaleRepo) ListWindow(_ context.Context, from, to time.Time) ([]model.CounterSale, error) {
	var out []model.CounterSale
	for _, cs := range r.sales {
		if !cs.Date.Before(from) && cs.Date.Before(to) {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (r *stubCounterSaleRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubCounterSaleRepo) SumWindow(_ context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	kgs, amount := decimal.Zero, decimal.Zero
	for _, cs := range r.sales {
		if !cs.Date.Before(from) && cs.Date.Before(to) {
			kgs = kgs.Add(cs.Kgs)
			amount = amount.Add(cs.Amount)
		}
	}
	return kgs, amount, nil
}

func (r *stubCounterSaleRepo) SumTotal(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	return r.SumWindow(ctx, time.Time{}, time.Unix(1<<40, 0))
}

type stubExpenseRepo struct {
	expenses []model.Expense
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	e.ID = uuid.New()
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Expense, error) {
	for i := range r.expenses {
		if r.expenses[i].ID == id {
			return &r.expenses[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubExpenseRepo) List(_ context.Context, _ repository.ExpenseFilter) ([]model.Expense, error) {
	return r.expenses, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, _ *model.Expense) error { return nil }

func (r *stubExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubExpenseRepo) SumWindow(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.expenses {
		if !e.Date.Before(from) && e.Date.Before(to) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (r *stubExpenseRepo) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	return r.SumWindow(ctx, time.Time{}, time.Unix(1<<40, 0))
}

func (r *stubExpenseRepo) SumByType(_ context.Context, _, _ time.Time) ([]dto.ExpenseTypeTotal, error) {
	return nil, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(value string) decimal.Decimal { return decimal.RequireFromString(value) }

func newTestSummaryService() (SummaryService, *stubSummaryRepo, *stubSaleRepo, *stubCounterSaleRepo, *stubExpenseRepo) {
	summaries := newStubSummaryRepo()
	sales := &stubSaleRepo{}
	counter := &stubCounterSaleRepo{}
	expenses := &stubExpenseRepo{}
	return NewSummaryService(summaries, sales, counter, expenses), summaries, sales, counter, expenses
}

// ── Generate ─────────────────────────────────────────────────────────────────

func TestGenerateAggregatesOneDay(t *testing.T) {
	svc, _, sales, _, expenses := newTestSummaryService()

	hotelID := uuid.New()
	sales.sales = []model.Sale{
		{ID: uuid.New(), HotelID: hotelID, Date: day("2024-01-20"), Kgs: dec("10"), BillAmount: dec("100")},
		{ID: uuid.New(), HotelID: hotelID, Date: day("2024-01-20"), Kgs: dec("20"), BillAmount: dec("200")},
		// Next day — outside the window
		{ID: uuid.New(), HotelID: hotelID, Date: day("2024-01-21"), Kgs: dec("99"), BillAmount: dec("999")},
	}
	expenses.expenses = []model.Expense{
		{ID: uuid.New(), Date: day("2024-01-20"), ExpenseType: "RENT", Amount: dec("50")},
	}

	resp, err := svc.Generate(context.Background(), day("2024-01-20"))
	assert.NoError(t, err)
	assert.True(t, resp.HotelKgs.Equal(dec("30")), "hotel kgs = %s", resp.HotelKgs)
	assert.True(t, resp.HotelAmount.Equal(dec("300")))
	assert.True(t, resp.CounterKgs.Equal(decimal.Zero))
	assert.True(t, resp.CounterAmount.Equal(decimal.Zero))
	assert.True(t, resp.Expenses.Equal(dec("50")))
	assert.True(t, resp.Balance.Equal(dec("250")), "balance = %s", resp.Balance)
}

func TestGenerateZeroRecordDay(t *testing.T) {
	svc, summaries, _, _, _ := newTestSummaryService()

	resp, err := svc.Generate(context.Background(), day("2024-03-05"))
	assert.NoError(t, err)
	assert.True(t, resp.Balance.Equal(decimal.Zero))
	assert.True(t, resp.HotelKgs.Equal(decimal.Zero))

	// An all-zero row is still persisted
	stored, err := summaries.FindByDate(context.Background(), day("2024-03-05"))
	assert.NoError(t, err)
	assert.True(t, stored.Expenses.Equal(decimal.Zero))
}

func TestGenerateUpsertPreservesID(t *testing.T) {
	svc, _, sales, _, _ := newTestSummaryService()

	first, err := svc.Generate(context.Background(), day("2024-01-20"))
	assert.NoError(t, err)

	sales.sales = append(sales.sales, model.Sale{
		ID: uuid.New(), HotelID: uuid.New(), Date: day("2024-01-20"),
		Kgs: dec("5"), BillAmount: dec("75"),
	})

	second, err := svc.Generate(context.Background(), day("2024-01-20"))
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.HotelAmount.Equal(dec("75")))
	assert.True(t, second.Balance.Equal(dec("75")))
}

func TestGenerateIdempotent(t *testing.T) {
	svc, _, sales, _, _ := newTestSummaryService()
	sales.sales = []model.Sale{
		{ID: uuid.New(), HotelID: uuid.New(), Date: day("2024-01-20"), Kgs: dec("10"), BillAmount: dec("100")},
	}

	first, err := svc.Generate(context.Background(), day("2024-01-20"))
	assert.NoError(t, err)
	second, err := svc.Generate(context.Background(), day("2024-01-20"))
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.Balance.Equal(second.Balance))
}

func TestGenerateTruncatesToMidnight(t *testing.T) {
	svc, summaries, _, _, _ := newTestSummaryService()

	// Mid-day timestamp keys the same summary row as its midnight
	_, err := svc.Generate(context.Background(), day("2024-01-20").Add(14*time.Hour))
	assert.NoError(t, err)

	_, err = summaries.FindByDate(context.Background(), day("2024-01-20"))
	assert.NoError(t, err)
}

// ── Get / Update ─────────────────────────────────────────────────────────────

func TestGetMissingSummary(t *testing.T) {
	svc, _, _, _, _ := newTestSummaryService()

	_, err := svc.Get(context.Background(), day("2024-06-01"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateOverwritesStoredSummary(t *testing.T) {
	svc, _, _, _, _ := newTestSummaryService()

	_, err := svc.Generate(context.Background(), day("2024-06-01"))
	assert.NoError(t, err)

	resp, err := svc.Update(context.Background(), day("2024-06-01"), dto.UpdateSummaryRequest{
		HotelKgs: dec("12"), HotelAmount: dec("120"), Expenses: dec("20"), Balance: dec("100"),
	})
	assert.NoError(t, err)
	assert.True(t, resp.HotelAmount.Equal(dec("120")))
	assert.True(t, resp.Balance.Equal(dec("100")))
}

func TestUpdateMissingSummary(t *testing.T) {
	svc, _, _, _, _ := newTestSummaryService()

	_, err := svc.Update(context.Background(), day("2024-06-01"), dto.UpdateSummaryRequest{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// ── Range ────────────────────────────────────────────────────────────────────

func TestRangeIsEndInclusiveAndAscending(t *testing.T) {
	svc, _, _, _, _ := newTestSummaryService()

	for _, d := range []string{"2024-01-05", "2024-01-31", "2024-01-01", "2024-02-01"} {
		_, err := svc.Generate(context.Background(), day(d))
		assert.NoError(t, err)
	}

	got, err := svc.Range(context.Background(), day("2024-01-01"), day("2024-01-31"))
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, day("2024-01-01"), got[0].Date)
	assert.Equal(t, day("2024-01-05"), got[1].Date)
	assert.Equal(t, day("2024-01-31"), got[2].Date)
}
