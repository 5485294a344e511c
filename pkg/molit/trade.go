package molit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	apperrors "realestate-valley/internal/errors"
	"realestate-valley/internal/utils"
	"realestate-valley/pkg/logger"
)

const (
	tradePath        = "/getRTMSDataSvcAptTrade"
	DefaultPageNo    = 1
	DefaultNumOfRows = 1000

	// ExcerptLimit caps the body text carried in errors and logs.
	ExcerptLimit = 256
	maxBodyBytes = 32 << 20
)

// TradeQuery selects one page of deals for a district and month.
type TradeQuery struct {
	RegionCode string
	YearMonth  string
	PageNo     int
	NumOfRows  int
}

// FetchTrades performs one GET against the trade feed and returns the raw
// body. It does not retry.
func (c *Client) FetchTrades(ctx context.Context, q TradeQuery) ([]byte, error) {
	if !c.HasServiceKey() {
		return nil, apperrors.ErrMissingServiceKey
	}
	if q.PageNo <= 0 {
		q.PageNo = DefaultPageNo
	}
	if q.NumOfRows <= 0 {
		q.NumOfRows = c.pageSize
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, c.fetchError(q, 0, nil, fmt.Errorf("rate limiter: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tradeURL(q), nil)
	if err != nil {
		return nil, c.fetchError(q, 0, nil, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/xml")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Trade feed request failed: region=%s, period=%s, error=%v", q.RegionCode, q.YearMonth, err)
		return nil, c.fetchError(q, 0, nil, fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.fetchError(q, resp.StatusCode, body, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.GlobalLogger.Errorf("Trade feed returned non-success status: region=%s, period=%s, status=%d", q.RegionCode, q.YearMonth, resp.StatusCode)
		return nil, c.fetchError(q, resp.StatusCode, body, fmt.Errorf("unexpected status %s", resp.Status))
	}

	logger.GlobalLogger.Debugf("Trade feed fetched: region=%s, period=%s, bytes=%d", q.RegionCode, q.YearMonth, len(body))
	return body, nil
}

func (c *Client) tradeURL(q TradeQuery) string {
	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("LAWD_CD", q.RegionCode)
	params.Set("DEAL_YMD", q.YearMonth)
	params.Set("pageNo", strconv.Itoa(q.PageNo))
	params.Set("numOfRows", strconv.Itoa(q.NumOfRows))
	return c.baseURL + tradePath + "?" + params.Encode()
}

func (c *Client) fetchError(q TradeQuery, status int, body []byte, err error) error {
	return &apperrors.UpstreamError{
		Kind:       apperrors.ErrFetchFailed,
		Region:     q.RegionCode,
		Period:     q.YearMonth,
		StatusCode: status,
		Excerpt:    utils.Excerpt(body, ExcerptLimit),
		Err:        err,
	}
}
