package handler

import (
	"net/http"

	"github.com/varunreddy1024/ledger-backend/internal/apierror"
	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SalesHandler struct {
	repo   repository.SaleRepository
	hotels repository.HotelRepository
}

func NewSalesHandler(repo repository.SaleRepository, hotels repository.HotelRepository) *SalesHandler {
	return &SalesHandler{repo: repo, hotels: hotels}
}

// Create rejects sales whose hotel does not exist. Sales are never checked
// again afterwards — a later hotel delete orphans them, by accepted policy.
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.SaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid hotel_id format"))
		return
	}
	if _, err := h.hotels.FindByID(c.Request.Context(), hotelID); err != nil {
		writeServiceError(c, err, "Hotel not found")
		return
	}

	sale := &model.Sale{
		HotelID:        hotelID,
		Date:           req.Date,
		BillNo:         req.BillNo,
		Kgs:            req.Kgs,
		BillAmount:     req.BillAmount,
		ReceivedAmount: req.ReceivedAmount,
		Balance:        req.Balance,
	}
	if err := h.repo.Create(c.Request.Context(), sale); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sale.ID.String()})
}

func (h *SalesHandler) List(c *gin.Context) {
	sales, err := h.repo.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, saleResponses(sales))
}

func (h *SalesHandler) ListByHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}
	if _, err := h.hotels.FindByID(c.Request.Context(), hotelID); err != nil {
		writeServiceError(c, err, "Hotel not found")
		return
	}
	sales, err := h.repo.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, saleResponses(sales))
}

func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	sale, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, saleResponse(sale))
}

func (h *SalesHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.SaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Sale not found")
		return
	}
	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid hotel_id format"))
		return
	}
	sale.HotelID = hotelID
	sale.Date = req.Date
	sale.BillNo = req.BillNo
	sale.Kgs = req.Kgs
	sale.BillAmount = req.BillAmount
	sale.ReceivedAmount = req.ReceivedAmount
	sale.Balance = req.Balance
	if err := h.repo.Update(c.Request.Context(), sale); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Sale updated successfully"})
}

func (h *SalesHandler) Delete(c *gin.Context) {
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

func saleResponse(m *model.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:             m.ID.String(),
		HotelID:        m.HotelID.String(),
		Date:           m.Date,
		BillNo:         m.BillNo,
		Kgs:            m.Kgs,
		BillAmount:     m.BillAmount,
		ReceivedAmount: m.ReceivedAmount,
		Balance:        m.Balance,
	}
}

func saleResponses(ms []model.Sale) []dto.SaleResponse {
	resp := make([]dto.SaleResponse, len(ms))
	for i := range ms {
		resp[i] = saleResponse(&ms[i])
	}
	return resp
}
