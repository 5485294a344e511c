package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"realestate-valley/internal/models"
	"realestate-valley/internal/repositories"
	"realestate-valley/internal/transformers"
	"realestate-valley/internal/utils"
	"realestate-valley/pkg/cache"
	"realestate-valley/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// TransactionSource supplies the parsed feed for one district and month.
type TransactionSource interface {
	GetTransactions(ctx context.Context, regionCode, yearMonth string) (*models.TransactionFeed, error)
}

// SeriesQuery selects a district, the months to aggregate and an optional
// apartment complex name.
type SeriesQuery struct {
	Region  models.Region
	Periods []string
	Complex string
}

type SeriesService struct {
	source      TransactionSource
	cache       repositories.TransactionCache
	aggregator  transformers.AggregateTransformer
	concurrency int
	openTTL     time.Duration
	now         func() time.Time
	group       singleflight.Group
	log         *logrus.Entry
}

type SeriesOption func(*SeriesService)

// WithConcurrency bounds how many periods are fetched at once.
func WithConcurrency(n int) SeriesOption {
	return func(s *SeriesService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithOpenPeriodTTL sets the expiration of cached records for the current month.
func WithOpenPeriodTTL(ttl time.Duration) SeriesOption {
	return func(s *SeriesService) {
		s.openTTL = ttl
	}
}

func WithClock(now func() time.Time) SeriesOption {
	return func(s *SeriesService) {
		s.now = now
	}
}

func NewSeriesService(
	source TransactionSource,
	cache repositories.TransactionCache,
	aggregator transformers.AggregateTransformer,
	opts ...SeriesOption,
) *SeriesService {
	s := &SeriesService{
		source:      source,
		cache:       cache,
		aggregator:  aggregator,
		concurrency: 1,
		now:         time.Now,
		log:         logger.GlobalLogger.WithComponent("series"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.openTTL <= 0 {
		s.log.Warn("Current-month records are cached until evicted; deals reported later this month will not appear")
	}
	return s
}

// PeriodExpirationPolicy expires current-month keys after openTTL and keeps
// closed months until evicted.
func PeriodExpirationPolicy(openTTL time.Duration, now func() time.Time) repositories.ExpirationPolicy {
	return func(key string) time.Duration {
		_, period, ok := cache.ParseTransactionKey(key)
		if !ok || !utils.IsOpenPeriod(period, now()) {
			return 0
		}
		return openTTL
	}
}

// GetSeries returns one aggregate per requested period, in request order.
// A period whose fetch fails is returned empty with Failed set.
func (s *SeriesService) GetSeries(ctx context.Context, q SeriesQuery) []models.PeriodAggregate {
	return s.collect(ctx, q.Periods, func(ctx context.Context, period string) (models.PeriodAggregate, error) {
		records, err := s.loadRecords(ctx, q.Region.Code, period)
		if err != nil {
			return models.PeriodAggregate{}, err
		}
		return s.aggregator.Aggregate(period, filterByComplex(records, q.Complex)), nil
	})
}

// GetZoneSeries merges every member district per period before aggregating.
// A period fails only when no district could be loaded.
func (s *SeriesService) GetZoneSeries(ctx context.Context, zone models.Zone, periods []string) []models.PeriodAggregate {
	return s.collect(ctx, periods, func(ctx context.Context, period string) (models.PeriodAggregate, error) {
		var (
			merged   []models.TransactionRecord
			failures int
			lastErr  error
		)
		for _, code := range zone.RegionCodes {
			records, err := s.loadRecords(ctx, code, period)
			if err != nil {
				failures++
				lastErr = err
				continue
			}
			merged = append(merged, records...)
		}
		if failures > 0 && failures == len(zone.RegionCodes) {
			return models.PeriodAggregate{}, lastErr
		}

		agg := s.aggregator.Aggregate(period, merged)
		if failures > 0 {
			agg.Error = fmt.Sprintf("%d of %d districts unavailable", failures, len(zone.RegionCodes))
			s.log.Errorf("Zone period partially loaded: zone=%s, period=%s, failed=%d, last_error=%v", zone.ID, period, failures, lastErr)
		}
		return agg, nil
	})
}

func (s *SeriesService) collect(
	ctx context.Context,
	periods []string,
	build func(ctx context.Context, period string) (models.PeriodAggregate, error),
) []models.PeriodAggregate {
	out := make([]models.PeriodAggregate, len(periods))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, period := range periods {
		i, period := i, period
		g.Go(func() error {
			agg, err := build(ctx, period)
			if err != nil {
				out[i] = s.degraded(period, err)
				return nil
			}
			out[i] = agg
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (s *SeriesService) degraded(period string, err error) models.PeriodAggregate {
	utils.RecordDegradedPeriod()
	s.log.Errorf("Series period degraded: period=%s, error=%v", period, err)

	agg := s.aggregator.Aggregate(period, nil)
	agg.Failed = true
	agg.Error = errorKind(err)
	return agg
}

// sharedFetchTimeout bounds a fetch that outlives the caller who started it.
const sharedFetchTimeout = 30 * time.Second

// loadRecords serves from cache, otherwise fetches once per key even when
// several callers miss at the same time. The fetch ignores the starting
// caller's cancellation; each caller stops waiting when its own context
// ends. Failures are not cached.
func (s *SeriesService) loadRecords(ctx context.Context, regionCode, period string) ([]models.TransactionRecord, error) {
	key := cache.TransactionKey(regionCode, period)
	if records, found := s.cached(ctx, key); found {
		return records, nil
	}

	ch := s.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()

		if records, found := s.cached(fetchCtx, key); found {
			return records, nil
		}

		feed, err := s.source.GetTransactions(fetchCtx, regionCode, period)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(fetchCtx, key, feed.Records, s.expirationFor(period)); err != nil {
			s.log.Errorf("Failed to cache records: key=%s, error=%v", key, err)
		}
		return feed.Records, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.log.Debugf("Shared in-flight fetch: key=%s", key)
		}
		return res.Val.([]models.TransactionRecord), nil
	}
}

func (s *SeriesService) cached(ctx context.Context, key string) ([]models.TransactionRecord, bool) {
	records, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Errorf("Cache read failed: key=%s, error=%v", key, err)
		return nil, false
	}
	return records, found
}

func (s *SeriesService) expirationFor(period string) time.Duration {
	if utils.IsOpenPeriod(period, s.now()) {
		return s.openTTL
	}
	return 0
}

func filterByComplex(records []models.TransactionRecord, complexName string) []models.TransactionRecord {
	complexName = strings.TrimSpace(complexName)
	if complexName == "" {
		return records
	}
	filtered := make([]models.TransactionRecord, 0, len(records))
	for _, r := range records {
		if r.AptName == complexName {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
