// Package translate is a Google translate (gtx) client that fills the Persian
// columns of cached entities.
package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-cache/internal/platform/cache"
	"github.com/riskibarqy/football-cache/internal/platform/i18n"
	"github.com/riskibarqy/football-cache/internal/platform/logging"
	"github.com/riskibarqy/football-cache/internal/usecase"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultBaseURL     = "https://translate.googleapis.com/translate_a/single"
	defaultTargetLang  = "fa"
	defaultConcurrency = 4
	maxBodyBytes       = 1 << 20
)

var errTransient = crerr.New("translate transient failure")

type Config struct {
	HTTPClient  *http.Client
	BaseURL     string
	TargetLang  string
	Timeout     time.Duration
	Concurrency int
	CacheTTL    time.Duration
	Logger      *logging.Logger
}

// Client implements i18n.Translator. Every source string costs one request;
// results are memoized per target language.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	targetLang  string
	concurrency int
	memo        *cache.Store[string]
	logger      *logging.Logger
}

func NewClient(cfg Config) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid translate base url")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		*httpClient = *cfg.HTTPClient
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = cfg.Timeout
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}
	target := strings.TrimSpace(cfg.TargetLang)
	if target == "" {
		target = defaultTargetLang
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		targetLang:  target,
		concurrency: concurrency,
		memo:        cache.NewStore[string](cfg.CacheTTL),
		logger:      logger.Named("translate"),
	}, nil
}

var _ i18n.Translator = (*Client)(nil)

type pair struct {
	source string
	target string
}

// Translate returns a dictionary for texts. Duplicates and blanks are
// dropped first; the first failure cancels the remaining requests.
func (c *Client) Translate(ctx context.Context, texts []string) (i18n.Dictionary, error) {
	texts = i18n.Unique(texts)
	dict := make(i18n.Dictionary, len(texts))
	if len(texts) == 0 {
		return dict, nil
	}

	p := pool.NewWithResults[pair]().
		WithContext(ctx).
		WithMaxGoroutines(c.concurrency).
		WithCancelOnError().
		WithFirstError()
	for _, text := range texts {
		p.Go(func(ctx context.Context) (pair, error) {
			translated, err := c.memo.GetOrLoad(ctx, c.targetLang+"\x00"+text, func(ctx context.Context) (string, error) {
				return c.translateOne(ctx, text)
			})
			if err != nil {
				return pair{}, err
			}
			return pair{source: text, target: translated}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		c.logger.WarnContext(ctx, "translate batch failed", "texts", len(texts), "transient", isTransient(err), "error", err)
		return nil, fmt.Errorf("%w: translate: %w", usecase.ErrUpstream, err)
	}
	for _, r := range results {
		dict[r.source] = r.target
	}
	return dict, nil
}

func (c *Client) translateOne(ctx context.Context, text string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(text), nil)
	if err != nil {
		return "", crerr.Wrap(err, "build translate request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", crerr.Mark(crerr.Wrap(err, "send translate request"), errTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", crerr.Mark(crerr.Wrap(err, "read translate response"), errTransient)
	}
	if resp.StatusCode != http.StatusOK {
		err := crerr.Newf("translate status=%d", resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			err = crerr.Mark(err, errTransient)
		}
		return "", err
	}
	return parseResponse(raw)
}

func (c *Client) requestURL(text string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString("?client=gtx&sl=auto&dt=t&tl=")
	_, _ = buf.WriteString(url.QueryEscape(c.targetLang))
	_, _ = buf.WriteString("&q=")
	_, _ = buf.WriteString(url.QueryEscape(text))
	return buf.String()
}

// parseResponse joins the translated segments of a gtx payload:
// [[["<translated>","<source>",...],...],null,"en",...]
func parseResponse(raw []byte) (string, error) {
	var payload []any
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return "", crerr.Wrap(err, "decode translate response")
	}
	if len(payload) == 0 {
		return "", crerr.New("empty translate response")
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return "", crerr.Newf("unexpected translate response shape %T", payload[0])
	}

	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			b.WriteString(s)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func isTransient(err error) bool {
	return crerr.Is(err, errTransient)
}

func normalizeBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return defaultBaseURL, nil
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}
