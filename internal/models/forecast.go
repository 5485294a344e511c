package models

type Direction string

const (
	DirectionUpward   Direction = "upward"
	DirectionDownward Direction = "downward"
	DirectionStable   Direction = "stable"
)

// ConfidenceLow is the only confidence level a linear projection carries.
const ConfidenceLow = "low"

// ForecastDisclaimer accompanies every forecast response.
const ForecastDisclaimer = "Linear trend over recent monthly averages. Low confidence: it ignores seasonality, policy changes and market shocks, and is not investment advice."

// HistoricalPoint is an observed period with its fitted trend value. Trend is
// nil for periods without a usable price or when the fit was not possible.
type HistoricalPoint struct {
	PeriodAggregate
	Trend *float64 `json:"trend"`
}

// ProjectedPoint is one extrapolated month.
type ProjectedPoint struct {
	Period       string  `json:"period"`
	Label        string  `json:"label"`
	Predicted    float64 `json:"predicted"`
	RawPredicted float64 `json:"raw_predicted"`
	Clamped      bool    `json:"clamped"`
}

type TrendModel struct {
	Slope          float64   `json:"slope"`
	Intercept      float64   `json:"intercept"`
	Direction      Direction `json:"direction"`
	CurrentValue   float64   `json:"current_value"`
	ProjectedValue float64   `json:"projected_value"`
	ChangePercent  float64   `json:"change_percent"`
	UsablePoints   int       `json:"usable_points"`
	Horizon        int       `json:"horizon"`
}

type Forecast struct {
	Sufficient bool              `json:"sufficient"`
	Confidence string            `json:"confidence"`
	Disclaimer string            `json:"disclaimer"`
	Model      *TrendModel       `json:"model"`
	Historical []HistoricalPoint `json:"historical"`
	Future     []ProjectedPoint  `json:"future"`
}

type ForecastResponse struct {
	Region  Region `json:"region"`
	Complex string `json:"complex,omitempty"`
	*Forecast
}
