package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appreport "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/report"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/report"
)

// ReportHandler exposes the dashboards and forecasts
type ReportHandler struct {
	BaseHandler
	reports        *appreport.Service
	currencySymbol string
}

// NewReportHandler creates a report handler
func NewReportHandler(reports *appreport.Service, currencySymbol string, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler:    NewBaseHandler(log),
		reports:        reports,
		currencySymbol: currencySymbol,
	}
}

// RegisterRoutes mounts the reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/financial", h.Financial)
		reports.GET("/receivables", h.Receivables)
		reports.GET("/run-sheet", h.RunSheet)
		reports.GET("/forecast/:productId", h.Forecast)
	}
}

// Dashboard returns the landing page summary
func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, gin.H{
		"currency_symbol": h.currencySymbol,
		"summary":         summary,
	})
}

// Financial returns revenue, cost and profit figures, optionally
// restricted to a date range via from/to query parameters.
func (h *ReportHandler) Financial(c *gin.Context) {
	rng, ok := h.parseDateRange(c)
	if !ok {
		return
	}
	summary, err := h.reports.Financial(c.Request.Context(), rng)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, gin.H{
		"currency_symbol": h.currencySymbol,
		"summary":         summary,
	})
}

// Receivables returns outstanding balances per customer
func (h *ReportHandler) Receivables(c *gin.Context) {
	receivables, err := h.reports.Receivables(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, receivables)
}

// RunSheet returns pending deliveries for the drivers
func (h *ReportHandler) RunSheet(c *gin.Context) {
	entries, err := h.reports.RunSheet(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, entries)
}

// parseDateRange reads optional from/to query parameters as
// YYYY-MM-DD dates. A false return means the response was written.
func (h *ReportHandler) parseDateRange(c *gin.Context) (report.DateRange, bool) {
	var rng report.DateRange
	for _, p := range []struct {
		name string
		dest **time.Time
	}{
		{"from", &rng.From},
		{"to", &rng.To},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, fmt.Sprintf("%s must be a YYYY-MM-DD date", p.name))
			return report.DateRange{}, false
		}
		*p.dest = &day
	}
	if rng.From != nil && rng.To != nil && rng.To.Before(*rng.From) {
		h.BadRequest(c, "to must not be before from")
		return report.DateRange{}, false
	}
	return rng, true
}

// Forecast returns the demand forecast for one product
func (h *ReportHandler) Forecast(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "productId")
	if !ok {
		return
	}
	result, err := h.reports.Forecast(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, http.StatusOK, result)
}
