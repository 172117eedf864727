package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/report"
)

func day(t *testing.T, offset int) time.Time {
	t.Helper()
	base := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestBuildForecastSevenDayAverage(t *testing.T) {
	today := day(t, 0)
	quantities := []int64{2, 4, 3, 5, 1, 0, 6}
	var history []report.DailyQuantity
	for i, q := range quantities {
		if q == 0 {
			continue // zero days come from gap filling
		}
		history = append(history, report.DailyQuantity{Day: day(t, i-6), Quantity: q})
	}

	result := BuildForecast(history, 10, today, 90, 7)

	require.Len(t, result.History, 90)
	for i, q := range quantities {
		assert.Equal(t, float64(q), result.History[83+i].Quantity)
	}
	assert.InDelta(t, 3.0, result.DailyAverage, 1e-9)
	assert.InDelta(t, 21.0, result.ForecastTotal, 1e-9)

	require.Len(t, result.Predicted, 7)
	for _, p := range result.Predicted {
		assert.InDelta(t, 3.0, p.Quantity, 1e-9)
	}

	// Forecast 21 against stock 10: order the shortfall plus one.
	assert.Equal(t, int64(12), result.ReorderQuantity)
}

func TestBuildForecastFillsGapsWithZero(t *testing.T) {
	today := day(t, 0)
	history := []report.DailyQuantity{
		{Day: day(t, -4), Quantity: 10},
		{Day: day(t, 0), Quantity: 5},
	}

	result := BuildForecast(history, 100, today, 90, 7)

	// The series spans the whole window, not just the days with sales.
	require.Len(t, result.History, 90)
	assert.Equal(t, 10.0, result.History[85].Quantity)
	assert.Equal(t, 0.0, result.History[86].Quantity)
	assert.Equal(t, 0.0, result.History[88].Quantity)
	assert.Equal(t, 5.0, result.History[89].Quantity)
	// Last 7 days: [0,0,10,0,0,0,5].
	assert.InDelta(t, 15.0/7.0, result.DailyAverage, 1e-9)
}

func TestBuildForecastRecentSaleAveragedOverFullWindow(t *testing.T) {
	today := day(t, 0)
	history := []report.DailyQuantity{{Day: day(t, -2), Quantity: 7}}

	result := BuildForecast(history, 3, today, 90, 7)

	require.Len(t, result.History, 90)
	assert.InDelta(t, 1.0, result.DailyAverage, 1e-9)
	assert.InDelta(t, 7.0, result.ForecastTotal, 1e-9)
	// Forecast 7 against stock 3: order the shortfall plus one.
	assert.Equal(t, int64(5), result.ReorderQuantity)
}

func TestBuildForecastNoHistory(t *testing.T) {
	result := BuildForecast(nil, 5, day(t, 0), 90, 7)

	assert.Empty(t, result.History)
	assert.Zero(t, result.DailyAverage)
	assert.Zero(t, result.ForecastTotal)
	assert.Zero(t, result.ReorderQuantity)
	assert.Len(t, result.Predicted, 7)
}

func TestBuildForecastSufficientStockNeedsNoReorder(t *testing.T) {
	history := []report.DailyQuantity{{Day: day(t, -1), Quantity: 7}}
	result := BuildForecast(history, 100, day(t, 0), 90, 7)

	assert.Zero(t, result.ReorderQuantity)
}

func TestBuildForecastClipsToHistoryWindow(t *testing.T) {
	today := day(t, 0)
	history := []report.DailyQuantity{
		{Day: day(t, -200), Quantity: 50},
		{Day: day(t, 0), Quantity: 2},
	}

	result := BuildForecast(history, 0, today, 90, 7)

	// The 200-day-old sale is outside the window; series spans 90 days.
	require.Len(t, result.History, 90)
	assert.Equal(t, 2.0, result.History[89].Quantity)
}
