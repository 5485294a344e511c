package models

// PeriodAggregate summarises one month of transactions. Prices are in 억
// (100,000,000 KRW) except AvgPriceRaw, which keeps the feed's 만원 unit.
type PeriodAggregate struct {
	Period       string  `json:"period"`
	Label        string  `json:"label"`
	Count        int     `json:"count"`
	PriceSamples int     `json:"price_samples"`
	AreaSamples  int     `json:"area_samples"`
	AvgPrice     float64 `json:"avg_price"`
	AvgPriceRaw  float64 `json:"avg_price_raw"`
	MedianPrice  float64 `json:"median_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	AvgArea      float64 `json:"avg_area"`
	Failed       bool    `json:"failed,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// HasPrice reports whether the period contributed at least one usable price.
func (a PeriodAggregate) HasPrice() bool {
	return a.PriceSamples > 0
}

// SeriesRequest holds the query parameters shared by the series and
// forecast endpoints.
type SeriesRequest struct {
	Region  string `form:"region" validate:"required,region"`
	Months  int    `form:"months" validate:"omitempty,min=1"`
	Periods string `form:"periods" validate:"omitempty,periodlist"`
	Complex string `form:"complex" validate:"omitempty,max=100"`
	Horizon int    `form:"horizon" validate:"omitempty,min=1,max=24"`
}

// ZoneSeriesRequest holds the query parameters of the zone series endpoint.
type ZoneSeriesRequest struct {
	Zone    string `form:"-" validate:"required,zone"`
	Months  int    `form:"months" validate:"omitempty,min=1"`
	Periods string `form:"periods" validate:"omitempty,periodlist"`
}

type SeriesResponse struct {
	Region  Region            `json:"region"`
	Complex string            `json:"complex,omitempty"`
	Periods []string          `json:"periods"`
	Data    []PeriodAggregate `json:"data"`
}

type ZoneSeriesResponse struct {
	Zone    Zone              `json:"zone"`
	Periods []string          `json:"periods"`
	Data    []PeriodAggregate `json:"data"`
}
