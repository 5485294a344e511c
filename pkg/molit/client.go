package molit

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"realestate-valley/pkg/config"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://apis.data.go.kr/1613000/RTMSDataSvcAptTrade"
	defaultTimeout = 10 * time.Second
)

// Client calls the MOLIT apartment trade feed on data.go.kr.
type Client struct {
	serviceKey string
	baseURL    string
	userAgent  string
	pageSize   int
	limiter    *rate.Limiter
	httpClient *http.Client
}

// NewClient creates a client from the molit configuration section.
func NewClient(cfg config.MolitConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultNumOfRows
	}

	return &Client{
		serviceKey: normalizeServiceKey(cfg.ServiceKey),
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		pageSize:   pageSize,
		limiter:    rate.NewLimiter(limit, burst),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// HasServiceKey reports whether a data.go.kr service key is configured.
func (c *Client) HasServiceKey() bool {
	return c.serviceKey != ""
}

// PageSize is the numOfRows sent when a query leaves it unset.
func (c *Client) PageSize() int {
	return c.pageSize
}

// data.go.kr hands out the key both raw and percent-encoded. Query encoding
// is applied once when the request is built, so an encoded key is decoded
// here to avoid double encoding.
func normalizeServiceKey(key string) string {
	key = strings.TrimSpace(key)
	if strings.Contains(key, "%") {
		if decoded, err := url.QueryUnescape(key); err == nil {
			return decoded
		}
	}
	return key
}
