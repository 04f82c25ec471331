package engine

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	FetchTimeout         time.Duration
	MaxBodyBytes         int64   // pages are truncated to this size before any anchor search
	MaxPatternLen        int     // longest anchor pattern accepted from callers
	FetchRPS             float64 // outbound page fetches per second, 0 = unlimited
	FetchBurst           int
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client   // nil = newFetchClient()
	BrowserClient        *BrowserClient // nil = plain net/http fetches
}

// Defaults used when a Config field is left zero.
const (
	defaultFetchTimeout  = 20 * time.Second
	defaultMaxBodyBytes  = 8 << 20
	defaultMaxPatternLen = 512
)

var cfg Config

var limiter *rate.Limiter

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = defaultFetchTimeout
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
	if c.MaxPatternLen <= 0 {
		c.MaxPatternLen = defaultMaxPatternLen
	}
	cfg = c

	limiter = nil
	if c.FetchRPS > 0 {
		burst := c.FetchBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(c.FetchRPS), burst)
	}
}
