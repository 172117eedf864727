package report

import (
	"math"
	"time"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/report"
)

// DailyPoint is one day of the forecast series
type DailyPoint struct {
	Day      time.Time `json:"day"`
	Quantity float64   `json:"quantity"`
}

// ForecastResult is a naive constant forecast for one product
type ForecastResult struct {
	History         []DailyPoint `json:"history"`
	DailyAverage    float64      `json:"daily_average"`
	Predicted       []DailyPoint `json:"predicted"`
	ForecastTotal   float64      `json:"forecast_total"`
	StockQuantity   int64        `json:"stock_quantity"`
	ReorderQuantity int64        `json:"reorder_quantity"`
}

// BuildForecast derives a flat demand forecast from historical daily
// sales. The history is the full trailing historyDays window ending
// today, days without sales counting as zero, so a product that sold
// only recently is still averaged over the whole window. The daily
// average is the mean of the last windowDays entries (or all entries
// when fewer exist), each of the next windowDays days is predicted at
// that average, and the reorder quantity covers the gap between
// forecast demand and current stock.
func BuildForecast(history []report.DailyQuantity, stock int64, today time.Time, historyDays, windowDays int) ForecastResult {
	result := ForecastResult{StockQuantity: stock}
	today = truncateDay(today)

	byDay := make(map[time.Time]int64, len(history))
	for _, h := range history {
		byDay[truncateDay(h.Day)] += h.Quantity
	}

	if len(byDay) > 0 {
		windowStart := today.AddDate(0, 0, -(historyDays - 1))
		for day := windowStart; !day.After(today); day = day.AddDate(0, 0, 1) {
			result.History = append(result.History, DailyPoint{
				Day:      day,
				Quantity: float64(byDay[day]),
			})
		}
	}

	if n := len(result.History); n > 0 {
		span := windowDays
		if n < span {
			span = n
		}
		var sum float64
		for _, p := range result.History[n-span:] {
			sum += p.Quantity
		}
		result.DailyAverage = sum / float64(span)
	}

	for i := 1; i <= windowDays; i++ {
		result.Predicted = append(result.Predicted, DailyPoint{
			Day:      today.AddDate(0, 0, i),
			Quantity: result.DailyAverage,
		})
	}
	result.ForecastTotal = result.DailyAverage * float64(windowDays)

	if float64(stock) < result.ForecastTotal {
		result.ReorderQuantity = int64(math.Ceil(result.ForecastTotal-float64(stock))) + 1
	}
	return result
}

// truncateDay normalizes to a UTC calendar date so series entries from
// different sources compare equal.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
