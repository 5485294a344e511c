package services

import (
	"fmt"
	"math"

	"realestate-valley/internal/models"
	"realestate-valley/internal/utils"
)

const (
	// MinForecastPoints is the fewest usable periods a trend is fitted on.
	MinForecastPoints = 3
	DefaultHorizon    = 6
	MaxHorizon        = 24

	// slope in 억 per month below which the trend counts as flat
	directionThreshold = 0.01
)

type ForecastService struct{}

func NewForecastService() *ForecastService {
	return &ForecastService{}
}

// Forecast fits an ordinary least squares line through the average prices of
// the periods that have a usable price and extends it horizon months past
// the last period of series. It does not modify series.
func (s *ForecastService) Forecast(series []models.PeriodAggregate, horizon int) *models.Forecast {
	fc := &models.Forecast{
		Confidence: models.ConfidenceLow,
		Disclaimer: models.ForecastDisclaimer,
		Historical: make([]models.HistoricalPoint, len(series)),
		Future:     []models.ProjectedPoint{},
	}

	var usable []int
	for i, agg := range series {
		fc.Historical[i] = models.HistoricalPoint{PeriodAggregate: agg}
		if agg.HasPrice() {
			usable = append(usable, i)
		}
	}

	n := len(usable)
	if n < MinForecastPoints || horizon <= 0 {
		return fc
	}

	ys := make([]float64, n)
	for k, i := range usable {
		ys[k] = series[i].AvgPrice
	}
	slope, intercept := fitLine(ys)

	for k, i := range usable {
		trend := round2(slope*float64(k) + intercept)
		fc.Historical[i].Trend = &trend
	}

	lastPeriod := series[len(series)-1].Period
	for j := 1; j <= horizon; j++ {
		raw := slope*float64(n-1+j) + intercept
		point := models.ProjectedPoint{
			Predicted:    round2(raw),
			RawPredicted: round2(raw),
		}
		if raw < 0 {
			point.Predicted = 0
			point.Clamped = true
		}
		if period, err := utils.AddMonths(lastPeriod, j); err == nil {
			point.Period = period
			point.Label = utils.PeriodLabel(period)
		} else {
			point.Label = fmt.Sprintf("+%d", j)
		}
		fc.Future = append(fc.Future, point)
	}

	final := fc.Future[len(fc.Future)-1]
	current := ys[n-1]
	fc.Model = &models.TrendModel{
		Slope:          slope,
		Intercept:      intercept,
		Direction:      ClassifyDirection(slope),
		CurrentValue:   current,
		ProjectedValue: final.Predicted,
		ChangePercent:  changePercent(current, final.RawPredicted),
		UsablePoints:   n,
		Horizon:        horizon,
	}
	fc.Sufficient = true
	return fc
}

// ClassifyDirection maps a monthly slope to upward, downward or stable.
func ClassifyDirection(slope float64) models.Direction {
	switch {
	case slope > directionThreshold:
		return models.DirectionUpward
	case slope < -directionThreshold:
		return models.DirectionDownward
	default:
		return models.DirectionStable
	}
}

// fitLine regresses ys on their indices 0..len(ys)-1.
func fitLine(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	var sumX, sumY float64
	for i, y := range ys {
		sumX += float64(i)
		sumY += y
	}
	xMean, yMean := sumX/n, sumY/n

	var num, den float64
	for i, y := range ys {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}
	if den != 0 {
		slope = num / den
	}
	return slope, yMean - slope*xMean
}

func changePercent(current, projected float64) float64 {
	if current == 0 {
		return 0
	}
	return round2((projected - current) / current * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
