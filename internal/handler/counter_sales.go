package handler

import (
	"net/http"

	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type CounterSalesHandler struct{ repo repository.CounterSaleRepository }

func NewCounterSalesHandler(repo repository.CounterSaleRepository) *CounterSalesHandler {
	return &CounterSalesHandler{repo: repo}
}

func (h *CounterSalesHandler) Create(c *gin.Context) {
	var req dto.CounterSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale := &model.CounterSale{
		Date:          req.Date,
		BillNo:        req.BillNo,
		Kgs:           req.Kgs,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if err := h.repo.Create(c.Request.Context(), sale); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sale.ID.String()})
}

func (h *CounterSalesHandler) List(c *gin.Context) {
	sales, err := h.repo.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, counterSaleResponses(sales))
}

func (h *CounterSalesHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	sale, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, counterSaleResponse(sale))
}

// ListByDate returns the counter sales belonging to one calendar day.
func (h *CounterSalesHandler) ListByDate(c *gin.Context) {
	day, ok := parseDateParam(c, c.Param("date"))
	if !ok {
		return
	}
	sales, err := h.repo.ListWindow(c.Request.Context(), day, day.AddDate(0, 0, 1))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, counterSaleResponses(sales))
}

func (h *CounterSalesHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Sale deleted successfully"})
}

func counterSaleResponse(m *model.CounterSale) dto.CounterSaleResponse {
	return dto.CounterSaleResponse{
		ID:            m.ID.String(),
		Date:          m.Date,
		BillNo:        m.BillNo,
		Kgs:           m.Kgs,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		Notes:         m.Notes,
	}
}

func counterSaleResponses(ms []model.CounterSale) []dto.CounterSaleResponse {
	resp := make([]dto.CounterSaleResponse, len(ms))
	for i := range ms {
		resp[i] = counterSaleResponse(&ms[i])
	}
	return resp
}
