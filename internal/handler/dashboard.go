package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/dto"
	"github.com/varunreddy1024/ledger-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const statsCacheTTL = 60 * time.Second

type DashboardHandler struct {
	svc service.DashboardService
	rdb *redis.Client
}

func NewDashboardHandler(svc service.DashboardService, rdb *redis.Client) *DashboardHandler {
	return &DashboardHandler{svc: svc, rdb: rdb}
}

// Stats godoc
// @Summary Dashboard totals, optionally restricted to a date or date range
// @Tags dashboard
// @Produce json
// @Param date query string false "Single date YYYY-MM-DD"
// @Param start_date query string false "Range start YYYY-MM-DD"
// @Param end_date query string false "Range end YYYY-MM-DD (inclusive)"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 400 {object} apierror.APIError
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var filter service.DashboardFilter
	cacheKey := "dashboard:stats"

	switch {
	case c.Query("date") != "":
		dateStr := c.Query("date")
		day, ok := parseDateParam(c, dateStr)
		if !ok {
			return
		}
		next := day.AddDate(0, 0, 1)
		filter.From = &day
		filter.To = &next
		filter.Single = &dateStr
		cacheKey += ":date:" + dateStr
	case c.Query("start_date") != "" && c.Query("end_date") != "":
		startStr := c.Query("start_date")
		endStr := c.Query("end_date")
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
		filter.Start = &startStr
		filter.End = &endStr
		cacheKey += ":range:" + startStr + ":" + endStr
	}

	// Try Redis first; the totals tolerate a minute of staleness.
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.DashboardStatsResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.svc.Stats(ctx, filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// Populate cache best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, statsCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
