package toolutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anatolykoptev/go_jsobj/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheJSONRoundTrip(t *testing.T) {
	engine.InitCache("", time.Minute, 10, time.Minute)
	ctx := context.Background()
	key := engine.CacheKey("toolutil", "round-trip")

	_, ok := CacheLoadJSON[engine.ExtractOutput](ctx, key)
	assert.False(t, ok)

	CacheStoreJSON(ctx, key, engine.ExtractOutput{
		Anchor: "x",
		Value:  map[string]any{"n": json.Number("12345678901234567890")},
	})

	got, ok := CacheLoadJSON[engine.ExtractOutput](ctx, key)
	require.True(t, ok)
	assert.Equal(t, "x", got.Anchor)
	assert.Equal(t, map[string]any{"n": json.Number("12345678901234567890")}, got.Value)
}

func TestCacheLoadJSONBadData(t *testing.T) {
	engine.InitCache("", time.Minute, 10, time.Minute)
	ctx := context.Background()
	key := engine.CacheKey("toolutil", "bad")

	engine.CacheSet(ctx, key, []byte("not json"))
	_, ok := CacheLoadJSON[engine.ExtractOutput](ctx, key)
	assert.False(t, ok)
}

func TestLoadSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fetched page"))
	}))
	defer srv.Close()
	engine.Init(engine.Config{HTTPClient: srv.Client()})
	engine.InitCache("", time.Minute, 10, time.Minute)
	ctx := context.Background()

	text, err := LoadSource(ctx, "inline", "")
	require.NoError(t, err)
	assert.Equal(t, "inline", text)

	text, err = LoadSource(ctx, "", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "fetched page", text)

	_, err = LoadSource(ctx, "", "")
	assert.True(t, errors.Is(err, ErrInputSource))

	_, err = LoadSource(ctx, "inline", srv.URL)
	assert.True(t, errors.Is(err, ErrInputSource))
}
