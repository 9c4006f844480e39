package handler

import (
	"net/http"

	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// HotelsHandler is thin enough to sit directly on the repository — hotels
// carry no business rules beyond existence checks.
type HotelsHandler struct{ repo repository.HotelRepository }

func NewHotelsHandler(repo repository.HotelRepository) *HotelsHandler {
	return &HotelsHandler{repo: repo}
}

func (h *HotelsHandler) Create(c *gin.Context) {
	var req dto.HotelRequest
	if !bindAndValidate(c, &req) {
		return
	}
	hotel := &model.Hotel{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		OpeningBalance: req.OpeningBalance,
	}
	if err := h.repo.Create(c.Request.Context(), hotel); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": hotel.ID.String()})
}

func (h *HotelsHandler) List(c *gin.Context) {
	hotels, err := h.repo.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp := make([]dto.HotelResponse, len(hotels))
	for i := range hotels {
		resp[i] = hotelResponse(&hotels[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HotelsHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	hotel, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, hotelResponse(hotel))
}

func (h *HotelsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.HotelRequest
	if !bindAndValidate(c, &req) {
		return
	}
	hotel, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Hotel not found")
		return
	}
	hotel.Name = req.Name
	hotel.Address = req.Address
	hotel.Phone = req.Phone
	hotel.OpeningBalance = req.OpeningBalance
	if err := h.repo.Update(c.Request.Context(), hotel); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Hotel updated successfully"})
}

// Delete removes the hotel. Sales referencing it are left orphaned on purpose
// — the ledger history must remain intact for past summaries.
func (h *HotelsHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Hotel deleted successfully"})
}

func hotelResponse(m *model.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:             m.ID.String(),
		Name:           m.Name,
		Address:        m.Address,
		Phone:          m.Phone,
		OpeningBalance: m.OpeningBalance,
	}
}
