package molit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apperrors "realestate-valley/internal/errors"
	"realestate-valley/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL, key string) *Client {
	return NewClient(config.MolitConfig{
		BaseURL:    baseURL,
		ServiceKey: key,
		Timeout:    2 * time.Second,
		PageSize:   1000,
	})
}

func TestFetchTradesSendsQuery(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/getRTMSDataSvcAptTrade", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "secret+key", q.Get("serviceKey"))
		assert.Equal(t, "11680", q.Get("LAWD_CD"))
		assert.Equal(t, "202501", q.Get("DEAL_YMD"))
		assert.Equal(t, "1", q.Get("pageNo"))
		assert.Equal(t, "1000", q.Get("numOfRows"))
		_, _ = w.Write([]byte("<response><body><items/></body></response>"))
	}))
	defer srv.Close()

	// percent-encoded keys are accepted as well
	c := newTestClient(srv.URL, "secret%2Bkey")
	body, err := c.FetchTrades(context.Background(), TradeQuery{RegionCode: "11680", YearMonth: "202501"})
	require.NoError(t, err)
	assert.Contains(t, string(body), "<items/>")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchTradesMissingKeyMakesNoRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "  ")
	assert.False(t, c.HasServiceKey())

	_, err := c.FetchTrades(context.Background(), TradeQuery{RegionCode: "11680", YearMonth: "202501"})
	assert.ErrorIs(t, err, apperrors.ErrMissingServiceKey)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestFetchTradesNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "key")
	_, err := c.FetchTrades(context.Background(), TradeQuery{RegionCode: "11680", YearMonth: "202501"})
	require.Error(t, err)

	var upErr *apperrors.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
	assert.Equal(t, http.StatusServiceUnavailable, upErr.StatusCode)
	assert.Len(t, upErr.Excerpt, ExcerptLimit)
	assert.Equal(t, "11680", upErr.Region)
}

func TestFetchTradesNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(url, "key")
	_, err := c.FetchTrades(context.Background(), TradeQuery{RegionCode: "11680", YearMonth: "202501"})
	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
}

func TestFetchTradesHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := newTestClient(srv.URL, "key")
	_, err := c.FetchTrades(ctx, TradeQuery{RegionCode: "11680", YearMonth: "202501"})
	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
}
