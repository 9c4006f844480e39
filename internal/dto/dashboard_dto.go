package dto

import "github.com/shopspring/decimal"

// DashboardDateFilter echoes back the filter the client sent.
type DashboardDateFilter struct {
	Single *string `json:"single"`
	Start  *string `json:"start"`
	End    *string `json:"end"`
}

type DashboardStatsResponse struct {
	TotalHotelSales   decimal.Decimal     `json:"totalHotelSales"`
	TotalHotelKgs     decimal.Decimal     `json:"totalHotelKgs"`
	TotalCounterSales decimal.Decimal     `json:"totalCounterSales"`
	TotalCounterKgs   decimal.Decimal     `json:"totalCounterKgs"`
	TotalHotels       int64               `json:"totalHotels"`
	TotalExpenses     decimal.Decimal     `json:"totalExpenses"`
	DateFilter        DashboardDateFilter `json:"dateFilter"`
}
