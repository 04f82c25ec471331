// Package toolutil provides shared helper functions for go_jsobj MCP tools.
package toolutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_jsobj/internal/engine"
)

// ErrInputSource is returned when a tool gets neither or both of text and url.
var ErrInputSource = errors.New("exactly one of text or url is required")

// CacheLoadJSON tries to load a cached value of type T from the engine cache.
// Returns the decoded value and true on hit; zero value and false on miss or decode error.
// Numbers decoded into interface fields stay json.Number.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	var out T
	cached, ok := engine.CacheGet(ctx, key)
	if !ok {
		return out, false
	}
	dec := json.NewDecoder(bytes.NewReader(cached))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		slog.Debug("cache decode failed", slog.String("key", key), slog.Any("error", err))
		var zero T
		return zero, false
	}
	return out, true
}

// CacheStoreJSON marshals v and stores it in the engine cache.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	engine.CacheSet(ctx, key, data)
}

// LoadSource returns the text a tool should search: text itself, or the
// page at url. Exactly one of the two must be set.
func LoadSource(ctx context.Context, text, url string) (string, error) {
	switch {
	case text != "" && url != "":
		return "", ErrInputSource
	case text != "":
		return text, nil
	case url != "":
		page, err := engine.FetchPage(ctx, url)
		if err != nil {
			return "", fmt.Errorf("load %s: %w", url, err)
		}
		return page, nil
	default:
		return "", ErrInputSource
	}
}
