package services

import (
	"testing"

	"realestate-valley/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(period string, avg float64) models.PeriodAggregate {
	return models.PeriodAggregate{Period: period, Label: period[:4] + "." + period[4:], Count: 1, PriceSamples: 1, AvgPrice: avg}
}

func empty(period string) models.PeriodAggregate {
	return models.PeriodAggregate{Period: period}
}

func TestForecastLinearSeries(t *testing.T) {
	series := []models.PeriodAggregate{
		point("202501", 10),
		point("202502", 11),
		point("202503", 12),
	}

	fc := NewForecastService().Forecast(series, 2)

	require.True(t, fc.Sufficient)
	require.NotNil(t, fc.Model)
	assert.InDelta(t, 1.0, fc.Model.Slope, 1e-9)
	assert.InDelta(t, 10.0, fc.Model.Intercept, 1e-9)
	assert.Equal(t, models.DirectionUpward, fc.Model.Direction)

	for i, want := range []float64{10, 11, 12} {
		require.NotNil(t, fc.Historical[i].Trend)
		assert.Equal(t, want, *fc.Historical[i].Trend)
	}

	require.Len(t, fc.Future, 2)
	assert.Equal(t, 13.0, fc.Future[0].Predicted)
	assert.Equal(t, "202504", fc.Future[0].Period)
	assert.Equal(t, "2025.04", fc.Future[0].Label)
	assert.Equal(t, 14.0, fc.Future[1].Predicted)

	assert.Equal(t, 12.0, fc.Model.CurrentValue)
	assert.Equal(t, 14.0, fc.Model.ProjectedValue)
	assert.Equal(t, 16.67, fc.Model.ChangePercent)
	assert.Equal(t, models.ConfidenceLow, fc.Confidence)
	assert.NotEmpty(t, fc.Disclaimer)
}

func TestForecastInsufficientData(t *testing.T) {
	series := []models.PeriodAggregate{
		point("202501", 10),
		empty("202502"),
		point("202503", 12),
	}

	fc := NewForecastService().Forecast(series, 6)

	assert.False(t, fc.Sufficient)
	assert.Nil(t, fc.Model)
	assert.Empty(t, fc.Future)
	require.Len(t, fc.Historical, 3)
	for _, h := range fc.Historical {
		assert.Nil(t, h.Trend)
	}
	assert.NotEmpty(t, fc.Disclaimer)
}

func TestForecastSkipsUnusablePeriods(t *testing.T) {
	series := []models.PeriodAggregate{
		point("202501", 10),
		empty("202502"),
		point("202503", 11),
		point("202504", 12),
	}

	fc := NewForecastService().Forecast(series, 1)

	require.True(t, fc.Sufficient)
	assert.Equal(t, 3, fc.Model.UsablePoints)
	assert.Nil(t, fc.Historical[1].Trend)
	assert.Equal(t, 11.0, *fc.Historical[2].Trend)
	assert.Equal(t, 13.0, fc.Future[0].Predicted)
	assert.Equal(t, "202505", fc.Future[0].Period)
}

func TestForecastFlatSeries(t *testing.T) {
	series := []models.PeriodAggregate{point("202501", 5), point("202502", 5), point("202503", 5)}

	fc := NewForecastService().Forecast(series, 3)

	assert.Equal(t, models.DirectionStable, fc.Model.Direction)
	assert.Zero(t, fc.Model.Slope)
	assert.Zero(t, fc.Model.ChangePercent)
}

func TestForecastClampsNegativeProjections(t *testing.T) {
	series := []models.PeriodAggregate{point("202501", 3), point("202502", 2), point("202503", 1)}

	fc := NewForecastService().Forecast(series, 2)

	assert.Equal(t, models.DirectionDownward, fc.Model.Direction)
	assert.Equal(t, 0.0, fc.Future[0].Predicted)
	assert.False(t, fc.Future[0].Clamped)
	assert.Equal(t, 0.0, fc.Future[1].Predicted)
	assert.Equal(t, -1.0, fc.Future[1].RawPredicted)
	assert.True(t, fc.Future[1].Clamped)
	assert.Equal(t, -200.0, fc.Model.ChangePercent)
}

func TestForecastLeavesInputUntouched(t *testing.T) {
	series := []models.PeriodAggregate{point("202501", 10), point("202502", 11), point("202503", 12)}
	before := append([]models.PeriodAggregate(nil), series...)

	NewForecastService().Forecast(series, 6)

	assert.Equal(t, before, series)
}

func TestClassifyDirection(t *testing.T) {
	assert.Equal(t, models.DirectionUpward, ClassifyDirection(0.02))
	assert.Equal(t, models.DirectionDownward, ClassifyDirection(-0.02))
	assert.Equal(t, models.DirectionStable, ClassifyDirection(0.005))
	assert.Equal(t, models.DirectionStable, ClassifyDirection(-0.01))
}
