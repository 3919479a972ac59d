package instagram

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karpix25/parser-mass/internal/config"
	"github.com/karpix25/parser-mass/internal/source"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	c := New(config.APIConfig{
		BaseURL:      srv.URL,
		APIKey:       "test-key",
		APIHost:      "test-host",
		MaxReqPerMin: 600000,
		Timeout:      5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:    2,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     time.Millisecond,
		},
	}, logger)
	c.glitchDelay = 0
	return c
}

func page(token string, items ...map[string]any) []byte {
	body := map[string]any{
		"data":             map[string]any{"items": items},
		"pagination_token": token,
	}
	b, _ := json.Marshal(body)
	return b
}

func reel(id, code string, takenAt int64) map[string]any {
	return map[string]any{
		"id":            id,
		"code":          code,
		"taken_at":      takenAt,
		"like_count":    10,
		"play_count":    100,
		"comment_count": 3,
		"caption":       map[string]any{"text": "hello #promo"},
	}
}

func TestFetchReels_PaginationTerminates(t *testing.T) {
	calls := 0
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("pagination_token") {
		case "":
			w.Write(page("t2", reel("1", "aaa", 1730000000)))
		case "t2":
			w.Write(page("", reel("2", "bbb", 1730000100)))
		default:
			t.Errorf("unexpected token %q", r.URL.Query().Get("pagination_token"))
		}
	})

	result, err := c.FetchReels(context.Background(), "alice")

	require.NoError(t, err)
	assert.False(t, result.PaginationFailed)
	assert.Equal(t, 2, calls)
	require.Len(t, result.Videos, 2)
	assert.Equal(t, "1", result.Videos[0].VideoID)
	assert.Equal(t, "https://www.instagram.com/reel/aaa/", result.Videos[0].VideoURL)
	assert.Equal(t, "2", result.Videos[1].VideoID)
}

func TestFetchReels_GlitchRecovery(t *testing.T) {
	// Page 2 first returns a token with zero items, then data on the retry.
	secondPageCalls := 0
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("pagination_token") {
		case "":
			w.Write(page("t2", reel("1", "aaa", 1730000000)))
		case "t2":
			secondPageCalls++
			if secondPageCalls == 1 {
				w.Write(page("t3"))
				return
			}
			w.Write(page("", reel("X", "xxx", 1730000100)))
		}
	})

	result, err := c.FetchReels(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, 2, secondPageCalls)
	require.Len(t, result.Videos, 2)
	assert.Equal(t, "X", result.Videos[1].VideoID)
}

func TestFetchReels_GlitchRetryStillEmpty(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pagination_token") == "" {
			w.Write(page("t2", reel("1", "aaa", 1730000000)))
			return
		}
		w.Write(page("t3"))
	})

	result, err := c.FetchReels(context.Background(), "alice")

	require.NoError(t, err)
	assert.False(t, result.PaginationFailed)
	require.Len(t, result.Videos, 1)
}

func TestFetchReels_NotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	result, err := c.FetchReels(context.Background(), "gone")

	require.Error(t, err)
	assert.True(t, source.IsNotFound(err))
	assert.Empty(t, result.Videos)
}

func TestFetchReels_TransientFailureKeepsCollected(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pagination_token") == "" {
			w.Write(page("t2", reel("1", "aaa", 1730000000)))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	result, err := c.FetchReels(context.Background(), "alice")

	require.NoError(t, err)
	assert.True(t, result.PaginationFailed)
	assert.Contains(t, result.LastError, "502")
	require.Len(t, result.Videos, 1)
}

func TestFetchReels_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write(page("", reel("1", "aaa", 1730000000)))
	})

	result, err := c.FetchReels(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, result.Videos, 1)
}

func TestNormalizeReel_Fallbacks(t *testing.T) {
	var item reelItem
	require.NoError(t, json.Unmarshal([]byte(`{
		"pk": 987,
		"shortcode": "zzz",
		"view_count": 55,
		"caption": "plain string caption"
	}`), &item))

	v, ok := normalizeReel(item, "alice")

	require.True(t, ok)
	assert.Equal(t, "987", v.VideoID)
	assert.Equal(t, "https://www.instagram.com/reel/zzz/", v.VideoURL)
	assert.Equal(t, int64(55), v.Views)
	assert.Equal(t, "plain string caption", v.Caption)
	// missing taken_at falls back to the current date
	assert.Equal(t, time.Now().UTC().Year(), v.PublishDate.Year())
}

func TestNormalizeReel_DropsItemsWithoutURL(t *testing.T) {
	_, ok := normalizeReel(reelItem{TakenAt: 1730000000}, "alice")
	assert.False(t, ok)
}
