// Package youtube fetches a channel's Shorts through the ScrapeCreators API:
// one list call per channel, then a detail call per video.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
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
	logger = logger.With("source", domain.PlatformYouTube)
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

// FetchShorts lists up to amount Shorts for a channel and resolves each
// one's counters through a detail call. Detail failures are counted and
// skipped; a not-found on the list call is returned as an error.
func (c *Client) FetchShorts(ctx context.Context, channelID string, amount int) (*domain.FetchResult, error) {
	result := &domain.FetchResult{}

	q := url.Values{"amount": {strconv.Itoa(amount)}}
	// UC-prefixed identifiers are channel ids, everything else is a handle.
	if strings.HasPrefix(channelID, "UC") {
		q.Set("channelId", channelID)
	} else {
		q.Set("handle", channelID)
	}

	var shorts shortsList
	if err := c.api.GetJSON(ctx, c.baseURL+"/channel/shorts/simple", q, c.headers(), &shorts); err != nil {
		if source.IsNotFound(err) {
			return result, fmt.Errorf("channel %s: %w", channelID, err)
		}
		result.PaginationFailed = true
		result.LastError = err.Error()
		c.logger.Error("shorts list fetch failed", "channel", channelID, "error", err)
		return result, nil
	}

	c.logger.Info("shorts listed", "channel", channelID, "count", len(shorts))

	for _, s := range shorts {
		if s.URL == "" {
			continue
		}

		var d videoDetails
		if err := c.api.GetJSON(ctx, c.baseURL+"/video", url.Values{"url": {s.URL}}, c.headers(), &d); err != nil {
			result.Failed++
			c.logger.Warn("video details fetch failed", "channel", channelID, "url", s.URL, "error", err)
			continue
		}

		result.Videos = append(result.Videos, normalizeShort(s, d, channelID))
	}

	return result, nil
}

func normalizeShort(s shortItem, d videoDetails, channelID string) domain.Video {
	dt := parsePublishDate(d.PublishDateText)
	isoYear, week := dt.ISOWeek()

	account := channelID
	for _, v := range []string{d.Channel.Handle, d.Channel.Title, d.Channel.ID} {
		if v != "" {
			account = v
			break
		}
	}

	videoID := s.ID
	if videoID == "" {
		videoID = d.ID
	}
	videoURL := d.URL
	if videoURL == "" {
		videoURL = s.URL
	}

	caption := d.Title
	if d.Description != "" {
		caption = strings.TrimSpace(d.Title + "\n" + d.Description)
	}

	return domain.Video{
		Platform:    domain.PlatformYouTube,
		Account:     account,
		VideoID:     videoID,
		VideoURL:    videoURL,
		PublishDate: time.Date(dt.Year(), dt.Month(), dt.Day(), 0, 0, 0, 0, time.UTC),
		ISOYear:     isoYear,
		Week:        week,
		Views:       d.ViewCountInt,
		Likes:       d.LikeCountInt,
		Comments:    d.CommentCountInt,
		Caption:     caption,
	}
}

// parsePublishDate handles the formats publishDateText has been seen in;
// anything unparseable falls back to now.
func parsePublishDate(text string) time.Time {
	for _, layout := range []string{"Jan 2, 2006", "2006-01-02", time.RFC3339} {
		if dt, err := time.Parse(layout, text); err == nil {
			return dt.UTC()
		}
	}
	return time.Now().UTC()
}

type shortItem struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// shortsList tolerates both response variants: a bare array and an object
// wrapping it under "shorts".
type shortsList []shortItem

func (s *shortsList) UnmarshalJSON(b []byte) error {
	var items []shortItem
	if err := json.Unmarshal(b, &items); err == nil {
		*s = items
		return nil
	}
	var wrapped struct {
		Shorts []shortItem `json:"shorts"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	*s = wrapped.Shorts
	return nil
}

type videoDetails struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	PublishDateText string `json:"publishDateText"`
	ViewCountInt    int64  `json:"viewCountInt"`
	LikeCountInt    int64  `json:"likeCountInt"`
	CommentCountInt int64  `json:"commentCountInt"`
	Channel         struct {
		ID     string `json:"id"`
		Handle string `json:"handle"`
		Title  string `json:"title"`
	} `json:"channel"`
}
