package engine

import (
	"context"

	stealth "github.com/anatolykoptev/go-stealth"
)

// BrowserClient fetches with a Chrome TLS fingerprint; see main for setup.
type BrowserClient = stealth.BrowserClient

func ChromeHeaders() map[string]string { return stealth.ChromeHeaders() }
func RandomUserAgent() string          { return stealth.RandomUserAgent() }
func IsRetryableStatus(code int) bool  { return stealth.IsRetryableStatus(code) }

// RetryDo retries fn with the stealth client's default backoff policy.
func RetryDo[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	return stealth.RetryDo(ctx, stealth.DefaultRetryConfig, fn)
}
