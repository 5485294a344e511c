package validators

import (
	"realestate-valley/internal/models"
)

type TransactionValidator interface {
	ValidateTradeRequest(req *models.TradeRequest) error
	ValidateSeriesRequest(req *models.SeriesRequest) error
	ValidateZoneSeriesRequest(req *models.ZoneSeriesRequest) error
}
