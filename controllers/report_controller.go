package controllers

import (
	"strconv"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/pkg/resp"
	"github.com/tuananhtran-web/orderbanhmi/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

func dateRange(c *gin.Context) (string, string) {
	today := time.Now().Format("2006-01-02")
	start := c.DefaultQuery("start", today)
	end := c.DefaultQuery("end", today)
	return start, end
}

// GET /admin/reports/summary?start=&end=
func (r *ReportController) Summary(c *gin.Context) {
	start, end := dateRange(c)
	summary, err := r.Reports.RangeSummary(start, end)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// GET /admin/reports/ranking?start=&end=
func (r *ReportController) Ranking(c *gin.Context) {
	start, end := dateRange(c)
	stats, err := r.Reports.ItemRanking(start, end)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/reports/daily?year=&month=
func (r *ReportController) Daily(c *gin.Context) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		resp.BadRequest(c, "invalid year")
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		resp.BadRequest(c, "invalid month")
		return
	}

	series, err := r.Reports.DailySeries(year, time.Month(month))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, series)
}
