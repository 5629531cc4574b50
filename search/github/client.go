package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/reposcout/internal/metrics"
	"github.com/kitbuilder587/reposcout/search"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "reposcout"

	// результаты всегда по убыванию звёзд, вызывающий это не настраивает
	sortField = "stars"
	sortOrder = "desc"
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Now        func() time.Time
}

type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	now       func() time.Time
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

var ErrNullPayload = errors.New("response body is null")

var _ search.Client = (*Client)(nil)

func New(cfg Config, logger *zap.Logger, m *metrics.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = search.DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client:    cfg.HTTPClient,
		now:       cfg.Now,
		logger:    logger,
		metrics:   m,
	}
}

type searchResponse struct {
	Items             []json.RawMessage `json:"items"`
	TotalCount        *int              `json:"total_count"`
	IncompleteResults *bool             `json:"incomplete_results"`
}

// Search runs a single repository search request. Results are always sorted
// by stars, descending.
func (c *Client) Search(ctx context.Context, req search.SearchRequest) (*search.SearchResult, error) {
	return c.search(ctx, "search", req)
}

// Trending searches for repositories created within the timeframe window,
// optionally restricted to one language. Unknown timeframes fall back to weekly.
func (c *Client) Trending(ctx context.Context, req search.TrendingRequest) (*search.SearchResult, error) {
	q := search.TrendingQuery(req.Language, req.Timeframe, c.now())

	return c.search(ctx, "trending", search.SearchRequest{
		Query:   q,
		Page:    search.DefaultPage,
		PerPage: search.DefaultPerPage,
	})
}

func (c *Client) search(ctx context.Context, kind string, req search.SearchRequest) (*search.SearchResult, error) {
	start := time.Now()
	c.metrics.IncRequestsInFlight()
	defer c.metrics.DecRequestsInFlight()

	res, err := c.do(ctx, req.Normalize())
	c.metrics.RecordSearchRequest(kind, statusLabel(err), time.Since(start))
	return res, err
}

func (c *Client) do(ctx context.Context, req search.SearchRequest) (*search.SearchResult, error) {
	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("per_page", strconv.Itoa(req.PerPage))
	params.Set("sort", sortField)
	params.Set("order", sortOrder)

	endpoint := c.baseURL + search.RepositoriesPath + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github+json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("searching repositories",
		zap.String("query", req.Query),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		// отмена со стороны вызывающего - не сетевая ошибка, отдаём как есть
		if ctx.Err() != nil {
			return nil, err
		}
		if isTransportFailure(err) {
			c.logger.Debug("search transport failure", zap.Error(err))
			return nil, search.Network(err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	c.logger.Debug("search response received", zap.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, search.RateLimited()
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, search.InvalidQuery()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, search.Upstream(resp.StatusCode, reasonPhrase(resp))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, fmt.Errorf("unmarshal response: %w", ErrNullPayload)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return search.NewSearchResult(payload.Items, payload.TotalCount, payload.IncompleteResults), nil
}

// isTransportFailure - ответа не было вообще: соединение, DNS или таймаут.
// Редиректы и прочие ошибки клиента сюда не попадают.
func isTransportFailure(err error) bool {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}
	cause := urlErr.Err

	var opErr *net.OpError
	if errors.As(cause, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(cause, &dnsErr) {
		return true
	}
	var netErr net.Error
	return errors.As(cause, &netErr) && netErr.Timeout()
}

// reasonPhrase достаёт текст статуса из "500 Internal Server Error".
func reasonPhrase(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func statusLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if kind, ok := search.KindOf(err); ok {
		return kind.String()
	}
	return "error"
}
