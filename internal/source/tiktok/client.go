// Package tiktok fetches a profile's latest videos through the
// ScrapeCreators API, following the max_cursor/has_more pagination.
package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/karpix25/parser-mass/internal/config"
	"github.com/karpix25/parser-mass/internal/domain"
	"github.com/karpix25/parser-mass/internal/source"
)

type Client struct {
	api     *source.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

func New(cfg config.APIConfig, logger *slog.Logger) *Client {
	logger = logger.With("source", domain.PlatformTikTok)
	return &Client{
		api:     source.NewClient(cfg, logger),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{"x-api-key": c.apiKey}
}

// FetchVideos pages through a profile's videos, newest first, until amount
// records are collected or the upstream reports no further pages. The
// profile is addressed by handle when one is configured, else by user id.
// Not-found (HTTP 403/404 or an explicit not-exist payload) is returned as
// an error; other exhausted failures keep the records collected so far.
func (c *Client) FetchVideos(ctx context.Context, userID, handle string, amount int) (*domain.FetchResult, error) {
	result := &domain.FetchResult{}
	target := handle
	if target == "" {
		target = userID
	}
	cursor := "0"

	for len(result.Videos) < amount {
		q := url.Values{
			"max_cursor": {cursor},
			"sort_by":    {"latest"},
		}
		if handle != "" {
			q.Set("handle", handle)
		} else {
			q.Set("user_id", userID)
		}

		var resp videosResponse
		if err := c.api.GetJSON(ctx, c.baseURL+"/profile/videos", q, c.headers(), &resp); err != nil {
			if source.IsNotFound(err) {
				return result, fmt.Errorf("profile %s: %w", target, err)
			}
			result.PaginationFailed = true
			result.LastError = err.Error()
			c.logger.Error("pagination aborted", "profile", target, "error", err)
			break
		}

		if resp.notExist() {
			return result, fmt.Errorf("profile %s: %w", target, &source.APIError{Status: 404, Body: resp.StatusMsg})
		}

		items := resp.AwemeList
		if len(items) == 0 {
			items = resp.Videos
		}
		if len(items) == 0 {
			c.logger.Debug("empty page, end of list", "profile", target)
			break
		}

		for _, item := range items {
			if len(result.Videos) >= amount {
				break
			}
			result.Videos = append(result.Videos, normalizeVideo(item, handle, target))
		}

		cursor = string(resp.MaxCursor)
		c.logger.Debug("page fetched",
			"profile", target, "items", len(items), "next_cursor", cursor, "has_more", resp.HasMore)

		if !resp.HasMore || cursor == "" || cursor == "0" {
			break
		}
	}

	return result, nil
}

func normalizeVideo(item videoItem, handle, target string) domain.Video {
	videoID := string(item.ID)
	if videoID == "" {
		videoID = string(item.AwemeID)
	}

	// The sheet-configured handle wins over whatever the API reports, so a
	// renamed profile keeps accruing rows under the tracked name.
	account := handle
	if account == "" {
		for _, v := range []string{
			item.Author.UniqueID, item.Author.UniqueIDCamel, item.Author.Handle,
			item.Author.Username, item.Author.Nickname,
		} {
			if v != "" {
				account = strings.TrimSpace(v)
				break
			}
		}
	}
	if account == "" {
		account = target
	}

	videoURL := item.URL
	if videoURL == "" {
		videoURL = fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", account, videoID)
	}

	dt := time.Now().UTC()
	if item.CreateTime > 0 {
		dt = time.Unix(item.CreateTime, 0).UTC()
	}
	isoYear, week := dt.ISOWeek()

	stats := item.Stats
	if stats == (videoStats{}) {
		stats = item.Statistics
	}

	caption := item.Title
	if caption == "" {
		caption = item.Desc
	}

	return domain.Video{
		Platform:    domain.PlatformTikTok,
		Account:     account,
		VideoID:     videoID,
		VideoURL:    videoURL,
		PublishDate: time.Date(dt.Year(), dt.Month(), dt.Day(), 0, 0, 0, 0, time.UTC),
		ISOYear:     isoYear,
		Week:        week,
		Views:       stats.PlayCount,
		Likes:       stats.DiggCount,
		Comments:    stats.CommentCount,
		Caption:     caption,
	}
}

type videosResponse struct {
	AwemeList []videoItem `json:"aweme_list"`
	Videos    []videoItem `json:"videos"`
	HasMore   bool        `json:"has_more"`
	MaxCursor flexString  `json:"max_cursor"`
	StatusMsg string      `json:"status_msg"`
}

// notExist catches the upstream variant that reports a deleted profile in
// the payload instead of the HTTP status.
func (r *videosResponse) notExist() bool {
	msg := strings.ToLower(r.StatusMsg)
	return strings.Contains(msg, "not exist") || strings.Contains(msg, "doesn't exist")
}

type videoItem struct {
	ID          flexString `json:"id"`
	AwemeID     flexString `json:"aweme_id"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Desc        string     `json:"desc"`
	CreateTime  int64      `json:"create_time"`
	Stats       videoStats `json:"stats"`
	Statistics  videoStats `json:"statistics"`
	Author      author     `json:"author"`
}

type videoStats struct {
	PlayCount    int64 `json:"play_count"`
	DiggCount    int64 `json:"digg_count"`
	CommentCount int64 `json:"comment_count"`
}

type author struct {
	UniqueID      string `json:"unique_id"`
	UniqueIDCamel string `json:"uniqueId"`
	Handle        string `json:"handle"`
	Username      string `json:"username"`
	Nickname      string `json:"nickname"`
}

// flexString accepts both string and numeric JSON values; ids and cursors
// arrive as either depending on the upstream schema variant.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	*f = flexString(b)
	return nil
}
