package apisports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-cache/internal/platform/logging"
	"github.com/riskibarqy/football-cache/internal/platform/resilience"
	"github.com/riskibarqy/football-cache/internal/usecase"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	defaultHost    = "v3.football.api-sports.io"
	maxBodyBytes   = 6 << 20
	maxPages       = 50
)

var errTransient = crerr.New("api-sports transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Host           string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RatePerMinute  int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to api-sports v3. It implements usecase.SportsProvider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	maxRetries int
	limiter    *rate.Limiter
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.Group[[]byte]
	backoff    func(attempt int) time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		// Defaults go on a copy; the caller may share its client.
		*httpClient = *cfg.HTTPClient
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = cfg.Timeout
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultHost
	}

	var limiter *rate.Limiter
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), 1)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		host:       host,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		maxRetries: max(cfg.MaxRetries, 0),
		limiter:    limiter,
		logger:     logger.Named("apisports"),
		breaker:    cfg.CircuitBreaker.Build(),
		backoff: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * time.Second
		},
	}
}

var _ usecase.SportsProvider = (*Client)(nil)

type envelope[T any] struct {
	Errors   any    `json:"errors"`
	Results  int    `json:"results"`
	Paging   paging `json:"paging"`
	Response []T    `json:"response"`
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// get fetches one page of endpoint and decodes its response array.
func get[T any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]T, paging, error) {
	raw, err := c.doJSON(ctx, endpoint, query)
	if err != nil {
		return nil, paging{}, err
	}

	var env envelope[T]
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, paging{}, fmt.Errorf("%w: decode %s payload: %v", usecase.ErrUpstream, endpoint, err)
	}
	if msg := providerErrors(env.Errors); msg != "" {
		return nil, paging{}, fmt.Errorf("%w: %s: provider errors: %s", usecase.ErrUpstream, endpoint, c.sanitize(msg))
	}
	return env.Response, env.Paging, nil
}

// getAll drains every page of endpoint.
func getAll[T any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]T, error) {
	var out []T
	for page := 1; page <= maxPages; page++ {
		q := cloneValues(query)
		if page > 1 {
			q.Set("page", strconv.Itoa(page))
		}
		items, pg, err := get[T](ctx, c, endpoint, q)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		out = append(out, items...)
		if pg.Total <= page {
			return out, nil
		}
	}
	c.logger.WarnContext(ctx, "api-sports pagination truncated", "endpoint", endpoint, "max_pages", maxPages)
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	fullURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err, shared := c.flight.Do(fullURL, func() ([]byte, error) {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "api-sports circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if reqErr != nil && isTransient(reqErr) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return raw, reqErr
	})
	if shared {
		c.logger.DebugContext(ctx, "api-sports request shared", "endpoint", endpoint)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("x-rapidapi-host", c.host)
		req.Header.Set("x-rapidapi-key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("%w: send request: %s", errTransient, c.sanitize(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errTransient, resp.StatusCode, c.sanitize(abbreviateBody(raw)))
			default:
				return nil, fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrUpstream, resp.StatusCode, c.sanitize(abbreviateBody(raw)))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(c.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "api-sports request failed", "url", fullURL, "error", lastErr)
	return nil, fmt.Errorf("%w: %w", usecase.ErrUpstream, lastErr)
}

func isTransient(err error) bool {
	return errors.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// sanitize removes the api key from text that may end up in logs or responses.
func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

// providerErrors flattens the envelope "errors" field, which is an empty
// array on success and an object of messages on failure.
func providerErrors(v any) string {
	switch errs := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(errs)
	case []any:
		parts := make([]string, 0, len(errs))
		for _, item := range errs {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		parts := make([]string, 0, len(errs))
		for _, key := range slices.Sorted(maps.Keys(errs)) {
			parts = append(parts, key+": "+fmt.Sprint(errs[key]))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(errs)
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for key, values := range v {
		out[key] = append([]string(nil), values...)
	}
	return out
}
