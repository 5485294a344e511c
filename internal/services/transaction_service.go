package services

import (
	"bytes"
	"context"
	"errors"
	"time"

	apperrors "realestate-valley/internal/errors"
	"realestate-valley/internal/models"
	"realestate-valley/internal/transformers"
	"realestate-valley/internal/utils"
	"realestate-valley/pkg/logger"
	"realestate-valley/pkg/molit"
)

const tradeEndpoint = "apt_trade"

// TradeFetcher is the upstream call the service depends on.
type TradeFetcher interface {
	FetchTrades(ctx context.Context, q molit.TradeQuery) ([]byte, error)
}

type TransactionService struct {
	client TradeFetcher
	parser transformers.TradeFeedParser
}

func NewTransactionService(client TradeFetcher, parser transformers.TradeFeedParser) *TransactionService {
	return &TransactionService{
		client: client,
		parser: parser,
	}
}

// GetTransactions fetches and parses the first page of deals for a district
// and month.
func (s *TransactionService) GetTransactions(ctx context.Context, regionCode, yearMonth string) (*models.TransactionFeed, error) {
	return s.GetTransactionsPage(ctx, molit.TradeQuery{RegionCode: regionCode, YearMonth: yearMonth})
}

// GetTransactionsPage fetches and parses one page of the feed.
func (s *TransactionService) GetTransactionsPage(ctx context.Context, q molit.TradeQuery) (*models.TransactionFeed, error) {
	start := time.Now()
	body, err := s.client.FetchTrades(ctx, q)
	utils.RecordUpstreamDuration(tradeEndpoint, start)
	if err != nil {
		utils.RecordUpstreamError(tradeEndpoint, errorKind(err))
		return nil, err
	}

	feed, err := s.parser.Parse(bytes.NewReader(body))
	if err != nil {
		kind := apperrors.ErrParseFailed
		if errors.Is(err, apperrors.ErrFetchFailed) {
			kind = apperrors.ErrFetchFailed
		}
		upErr := &apperrors.UpstreamError{
			Kind:    kind,
			Region:  q.RegionCode,
			Period:  q.YearMonth,
			Excerpt: utils.Excerpt(body, molit.ExcerptLimit),
			Err:     err,
		}
		utils.RecordUpstreamError(tradeEndpoint, upErr.KindLabel())
		logger.GlobalLogger.Errorf("Trade feed rejected: region=%s, period=%s, error=%v", q.RegionCode, q.YearMonth, upErr)
		return nil, upErr
	}

	if feed.Truncated {
		logger.GlobalLogger.WithFields(logger.Fields{
			"region":      q.RegionCode,
			"period":      q.YearMonth,
			"total_count": feed.TotalCount,
			"returned":    len(feed.Records),
		}).Warn("Trade feed page is smaller than the reported total")
	}

	return feed, nil
}

// errorKind labels err with its application error code.
func errorKind(err error) string {
	return apperrors.MapError(err).Code
}
