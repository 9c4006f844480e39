package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/apierror"
	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type ExpensesHandler struct{ repo repository.ExpenseRepository }

func NewExpensesHandler(repo repository.ExpenseRepository) *ExpensesHandler {
	return &ExpensesHandler{repo: repo}
}

func (h *ExpensesHandler) Create(c *gin.Context) {
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	expense := &model.Expense{
		Date:          req.Date,
		ExpenseType:   req.ExpenseType,
		Amount:        req.Amount,
		Notes:         req.Notes,
		PaidTo:        req.PaidTo,
		PaymentMethod: req.PaymentMethod,
		ReferenceNo:   req.ReferenceNo,
	}
	if err := h.repo.Create(c.Request.Context(), expense); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": expense.ID.String()})
}

// List supports optional ?start_date=&end_date= (both or neither) and
// ?expense_type= filters.
func (h *ExpensesHandler) List(c *gin.Context) {
	var filter repository.ExpenseFilter

	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr != "" && endStr != "" {
		start, ok := parseDateParam(c, startStr)
		if !ok {
			return
		}
		end, ok := parseDateParam(c, endStr)
		if !ok {
			return
		}
		to := end.AddDate(0, 0, 1) // end date inclusive
		filter.From = &start
		filter.To = &to
	}
	filter.ExpenseType = c.Query("expense_type")

	expenses, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, expenseResponses(expenses))
}

func (h *ExpensesHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	expense, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, expenseResponse(expense))
}

func (h *ExpensesHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	expense, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Expense not found")
		return
	}
	expense.Date = req.Date
	expense.ExpenseType = req.ExpenseType
	expense.Amount = req.Amount
	expense.Notes = req.Notes
	expense.PaidTo = req.PaidTo
	expense.PaymentMethod = req.PaymentMethod
	expense.ReferenceNo = req.ReferenceNo
	if err := h.repo.Update(c.Request.Context(), expense); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Expense updated successfully"})
}

func (h *ExpensesHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Expense deleted successfully"})
}

// MonthlySummary groups the month's expenses per type.
func (h *ExpensesHandler) MonthlySummary(c *gin.Context) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid month"))
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid year"))
		return
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := h.repo.SumByType(c.Request.Context(), from, to)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ExpenseSummaryResponse{
		Month:    month,
		Year:     year,
		Expenses: rows,
	})
}

func expenseResponse(m *model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:            m.ID.String(),
		Date:          m.Date,
		ExpenseType:   m.ExpenseType,
		Amount:        m.Amount,
		Notes:         m.Notes,
		PaidTo:        m.PaidTo,
		PaymentMethod: m.PaymentMethod,
		ReferenceNo:   m.ReferenceNo,
	}
}

func expenseResponses(ms []model.Expense) []dto.ExpenseResponse {
	resp := make([]dto.ExpenseResponse, len(ms))
	for i := range ms {
		resp[i] = expenseResponse(&ms[i])
	}
	return resp
}
