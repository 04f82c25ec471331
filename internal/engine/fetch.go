package engine

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// FetchPage returns the body of pageURL as text, truncated to MaxBodyBytes.
// Bodies are cached; callers own charset decoding beyond UTF-8.
func FetchPage(ctx context.Context, pageURL string) (string, error) {
	key := CacheKey("page", pageURL)
	if data, ok := CacheGet(ctx, key); ok {
		return string(data), nil
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("fetch %s: %w", pageURL, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	metrics.PageFetches.Add(1)
	var (
		body []byte
		err  error
	)
	if cfg.BrowserClient != nil {
		body, err = fetchWithBrowser(ctx, cfg.BrowserClient, pageURL)
	} else {
		body, err = fetchWithRetry(ctx, pageURL)
	}
	if err != nil {
		metrics.FetchErrors.Add(1)
		slog.Warn("fetch failed", slog.String("url", pageURL), slog.Any("error", err))
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	CacheSet(ctx, key, body)
	return string(body), nil
}

// fetchWithBrowser fetches through the TLS-fingerprinted client.
func fetchWithBrowser(ctx context.Context, bc *BrowserClient, pageURL string) ([]byte, error) {
	return RetryDo(ctx, func() ([]byte, error) {
		headers := ChromeHeaders()
		data, _, status, err := bc.Do(http.MethodGet, pageURL, headers, nil)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, &statusError{code: status}
		}
		return capBody(data), nil
	})
}

// newFetchClient creates an HTTP client with proper settings for web scraping.
func newFetchClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 15 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// statusError is a non-200 response status.
type statusError struct {
	code int
}

func (e *statusError) Error() string { return fmt.Sprintf("status %d", e.code) }

// fetchWithRetry performs an HTTP GET with exponential backoff. Retryable
// statuses (429, 5xx gateway errors) are retried; everything else is final.
func fetchWithRetry(ctx context.Context, pageURL string) ([]byte, error) {
	client := cfg.HTTPClient
	if client == nil {
		client = newFetchClient()
	}

	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", RandomUserAgent())
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err := client.Do(req)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		defer resp.Body.Close()

		if IsRetryableStatus(resp.StatusCode) {
			return nil, &statusError{code: resp.StatusCode}
		}
		if resp.StatusCode != http.StatusOK {
			return nil, backoff.Permanent(&statusError{code: resp.StatusCode})
		}
		body, err := readResponseBody(resp)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return body, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second

	return backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3), backoff.WithMaxElapsedTime(cfg.FetchTimeout))
}

// readResponseBody reads at most MaxBodyBytes, handling gzip decompression if needed.
func readResponseBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return io.ReadAll(io.LimitReader(r, cfg.MaxBodyBytes))
}

func capBody(data []byte) []byte {
	if int64(len(data)) > cfg.MaxBodyBytes {
		return data[:cfg.MaxBodyBytes]
	}
	return data
}
