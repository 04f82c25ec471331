package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	PageFetches       atomic.Int64
	FetchErrors       atomic.Int64
	Extractions       atomic.Int64
	ExtractionErrors  atomic.Int64
	DroppedCandidates atomic.Int64
	LiteralFallbacks  atomic.Int64
	ArraySplits       atomic.Int64
	YouTubePages      atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"page_fetches":       metrics.PageFetches.Load(),
		"fetch_errors":       metrics.FetchErrors.Load(),
		"extractions":        metrics.Extractions.Load(),
		"extraction_errors":  metrics.ExtractionErrors.Load(),
		"dropped_candidates": metrics.DroppedCandidates.Load(),
		"literal_fallbacks":  metrics.LiteralFallbacks.Load(),
		"array_splits":       metrics.ArraySplits.Load(),
		"youtube_pages":      metrics.YouTubePages.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"page_fetches", "fetch_errors",
		"extractions", "extraction_errors", "dropped_candidates", "literal_fallbacks",
		"array_splits", "youtube_pages",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sources/ sub-package.
func IncrYouTubePages() { metrics.YouTubePages.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(name string, threshold time.Duration, fn func() error) error {
	start := time.Now()
	err := fn()
	if elapsed := time.Since(start); elapsed > threshold {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
