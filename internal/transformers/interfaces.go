package transformers

import (
	"io"

	"realestate-valley/internal/models"
)

// TradeFeedParser turns a raw trade feed document into records.
type TradeFeedParser interface {
	Parse(r io.Reader) (*models.TransactionFeed, error)
}

// AggregateTransformer summarises one period's records.
type AggregateTransformer interface {
	Aggregate(period string, records []models.TransactionRecord) models.PeriodAggregate
}
