package handler

import (
	"errors"
	"net/http"

	"github.com/varunreddy1024/ledger-backend/internal/apierror"
	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaries service.SummaryService
	reports   service.ReportService
}

func NewSummaryHandler(summaries service.SummaryService, reports service.ReportService) *SummaryHandler {
	return &SummaryHandler{summaries: summaries, reports: reports}
}

// Generate recomputes and stores the summary for a date.
//
//	@Summary  Generate daily summary
//	@Tags     daily-summary
//	@Param    date  path  string  true  "YYYY-MM-DD"
//	@Success  200  {object}  dto.DailySummaryResponse
//	@Router   /daily-summary/generate/{date} [post]
func (h *SummaryHandler) Generate(c *gin.Context) {
	day, ok := parseDateParam(c, c.Param("date"))
	if !ok {
		return
	}
	resp, err := h.summaries.Generate(c.Request.Context(), day)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SummaryHandler) List(c *gin.Context) {
	resp, err := h.summaries.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SummaryHandler) Get(c *gin.Context) {
	day, ok := parseDateParam(c, c.Param("date"))
	if !ok {
		return
	}
	resp, err := h.summaries.Get(c.Request.Context(), day)
	if err != nil {
		writeServiceError(c, err, "Summary not found for this date")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SummaryHandler) Update(c *gin.Context) {
	day, ok := parseDateParam(c, c.Param("date"))
	if !ok {
		return
	}
	var req dto.UpdateSummaryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.summaries.Update(c.Request.Context(), day, req)
	if err != nil {
		writeServiceError(c, err, "Summary not found for this date")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Range returns summaries between start and end, both inclusive.
func (h *SummaryHandler) Range(c *gin.Context) {
	start, ok := parseDateParam(c, c.Param("start"))
	if !ok {
		return
	}
	end, ok := parseDateParam(c, c.Param("end"))
	if !ok {
		return
	}
	resp, err := h.summaries.Range(c.Request.Context(), start, end)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadPDF renders the summary for a date as a PDF attachment.
func (h *SummaryHandler) DownloadPDF(c *gin.Context) {
	day, ok := parseDateParam(c, c.Param("date"))
	if !ok {
		return
	}
	path, err := h.reports.BuildPDF(c.Request.Context(), day)
	if err != nil {
		writeServiceError(c, err, "Summary not found for this date")
		return
	}
	c.FileAttachment(path, "daily_summary_"+service.Day(day).Format("2006-01-02")+".pdf")
}

// EmailReport renders the PDF and queues the email. Returns 202: delivery
// happens asynchronously on the worker pool.
func (h *SummaryHandler) EmailReport(c *gin.Context) {
	day, ok := parseDateParam(c, c.Param("date"))
	if !ok {
		return
	}
	var req dto.EmailReportRequest
	if c.Request.ContentLength > 0 {
		if !bindAndValidate(c, &req) {
			return
		}
	}
	if err := h.reports.EmailReport(c.Request.Context(), day, req.ToEmail); err != nil {
		if errors.Is(err, service.ErrNoRecipient) {
			c.JSON(http.StatusBadRequest, apierror.New("No recipient email configured"))
			return
		}
		writeServiceError(c, err, "Summary not found for this date")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"detail": "Report queued for delivery"})
}
