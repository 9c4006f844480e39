package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/repository"
	"github.com/varunreddy1024/ledger-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ── Stubs ────────────────────────────────────────────────────────────────────

type stubSummaryService struct {
	byDate map[string]*dto.DailySummaryResponse
}

func newStubSummaryService() *stubSummaryService {
	return &stubSummaryService{byDate: make(map[string]*dto.DailySummaryResponse)}
}

func (s *stubSummaryService) Generate(_ context.Context, d time.Time) (*dto.DailySummaryResponse, error) {
	resp := &dto.DailySummaryResponse{ID: uuid.NewString(), Date: d}
	s.byDate[d.Format("2006-01-02")] = resp
	return resp, nil
}

func (s *stubSummaryService) Get(_ context.Context, d time.Time) (*dto.DailySummaryResponse, error) {
	resp, ok := s.byDate[d.Format("2006-01-02")]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return resp, nil
}

func (s *stubSummaryService) List(_ context.Context) ([]dto.DailySummaryResponse, error) {
	out := make([]dto.DailySummaryResponse, 0, len(s.byDate))
	for _, r := range s.byDate {
		out = append(out, *r)
	}
	return out, nil
}

func (s *stubSummaryService) Range(_ context.Context, _, _ time.Time) ([]dto.DailySummaryResponse, error) {
	return s.List(context.Background())
}

func (s *stubSummaryService) Update(_ context.Context, d time.Time, _ dto.UpdateSummaryRequest) (*dto.DailySummaryResponse, error) {
	return s.Get(context.Background(), d)
}

type stubReportService struct{}

func (stubReportService) BuildPDF(_ context.Context, _ time.Time) (string, error) {
	return "", gorm.ErrRecordNotFound
}

func (stubReportService) EmailReport(_ context.Context, _ time.Time, _ string) error {
	return gorm.ErrRecordNotFound
}

type stubExpenseRepo struct{}

func (stubExpenseRepo) Create(_ context.Context, _ *model.Expense) error { return nil }

func (stubExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Expense, error) {
	return nil, gorm.ErrRecordNotFound
}

func (stubExpenseRepo) List(_ context.Context, _ repository.ExpenseFilter) ([]model.Expense, error) {
	return nil, nil
}

func (stubExpenseRepo) Update(_ context.Context, _ *model.Expense) error { return nil }

func (stubExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (stubExpenseRepo) SumWindow(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubExpenseRepo) SumTotal(_ context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubExpenseRepo) SumByType(_ context.Context, _, _ time.Time) ([]dto.ExpenseTypeTotal, error) {
	return []dto.ExpenseTypeTotal{}, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func summaryTestRouter(svc service.SummaryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSummaryHandler(svc, stubReportService{})
	r := gin.New()
	r.POST("/daily-summary/generate/:date", h.Generate)
	r.GET("/daily-summary/range/:start/:end", h.Range)
	r.GET("/daily-summary/:date", h.Get)
	r.GET("/daily-summary/:date/pdf", h.DownloadPDF)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestGenerateRejectsMalformedDate(t *testing.T) {
	r := summaryTestRouter(newStubSummaryService())

	for _, path := range []string{
		"/daily-summary/generate/2024-13-01",
		"/daily-summary/generate/20-01-2024",
		"/daily-summary/generate/notadate",
	} {
		w := do(r, http.MethodPost, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "Invalid date format. Use YYYY-MM-DD")
	}
}

func TestGetSummaryNotFound(t *testing.T) {
	r := summaryTestRouter(newStubSummaryService())

	w := do(r, http.MethodGet, "/daily-summary/2024-01-20")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Summary not found for this date")
}

func TestGetSummaryAfterGenerate(t *testing.T) {
	svc := newStubSummaryService()
	r := summaryTestRouter(svc)

	w := do(r, http.MethodPost, "/daily-summary/generate/2024-01-20")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/daily-summary/2024-01-20")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRangeRejectsMalformedBounds(t *testing.T) {
	r := summaryTestRouter(newStubSummaryService())

	w := do(r, http.MethodGet, "/daily-summary/range/2024-01-01/nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadPDFMissingSummary(t *testing.T) {
	r := summaryTestRouter(newStubSummaryService())

	w := do(r, http.MethodGet, "/daily-summary/2024-01-20/pdf")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMonthlySummaryValidatesMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewExpensesHandler(stubExpenseRepo{})
	r := gin.New()
	r.GET("/expenses/summary/:month/:year", h.MonthlySummary)

	for _, path := range []string{
		"/expenses/summary/0/2024",
		"/expenses/summary/13/2024",
		"/expenses/summary/abc/2024",
	} {
		w := do(r, http.MethodGet, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "Invalid month")
	}

	w := do(r, http.MethodGet, "/expenses/summary/2/2024")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInvalidUUIDPathParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewExpensesHandler(stubExpenseRepo{})
	r := gin.New()
	r.GET("/expenses/:id", h.Get)

	w := do(r, http.MethodGet, "/expenses/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id format")
}
