package transformers

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"realestate-valley/internal/models"
	"realestate-valley/internal/utils"

	"github.com/shopspring/decimal"
)

// manwon per 억
var eokDivisor = decimal.NewFromInt(10000)

type aggregateTransformer struct{}

func NewAggregateTransformer() AggregateTransformer {
	return &aggregateTransformer{}
}

// Aggregate computes count, means and price extremes for one period. Count
// includes every record; the means only cover records whose value parsed.
func (t *aggregateTransformer) Aggregate(period string, records []models.TransactionRecord) models.PeriodAggregate {
	agg := models.PeriodAggregate{
		Period: period,
		Label:  utils.PeriodLabel(period),
		Count:  len(records),
	}

	prices := make([]decimal.Decimal, 0, len(records))
	areaSum := decimal.Zero
	for _, r := range records {
		if p, ok := ParsePrice(r.Price); ok {
			prices = append(prices, decimal.NewFromInt(p))
		}
		if a, ok := ParseArea(r.Area); ok {
			areaSum = areaSum.Add(decimal.NewFromFloat(a))
			agg.AreaSamples++
		}
	}

	if agg.AreaSamples > 0 {
		agg.AvgArea = areaSum.Div(decimal.NewFromInt(int64(agg.AreaSamples))).Round(2).InexactFloat64()
	}
	if len(prices) == 0 {
		return agg
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i].LessThan(prices[j]) })
	sum := decimal.Zero
	for _, p := range prices {
		sum = sum.Add(p)
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(prices))))

	agg.PriceSamples = len(prices)
	agg.AvgPriceRaw = mean.Round(2).InexactFloat64()
	agg.AvgPrice = toEok(mean)
	// upper median for even counts
	agg.MedianPrice = toEok(prices[len(prices)/2])
	agg.MinPrice = toEok(prices[0])
	agg.MaxPrice = toEok(prices[len(prices)-1])
	return agg
}

func toEok(manwon decimal.Decimal) float64 {
	return manwon.Div(eokDivisor).Round(2).InexactFloat64()
}

// ParsePrice reads a deal amount in 만원. Thousands separators are ignored;
// values that are not positive integers are unusable.
func ParsePrice(s string) (int64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	p, err := strconv.ParseInt(s, 10, 64)
	if err != nil || p <= 0 {
		return 0, false
	}
	return p, true
}

// ParseArea reads an exclusive-use area in m². Non-finite and non-positive
// values are unusable.
func ParseArea(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return 0, false
	}
	return a, true
}
