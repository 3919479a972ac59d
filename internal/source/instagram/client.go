// Package instagram fetches reels for a tracked account through a
// RapidAPI-style scraping gateway.
package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/karpix25/parser-mass/internal/config"
	"github.com/karpix25/parser-mass/internal/domain"
	"github.com/karpix25/parser-mass/internal/source"
)

type Client struct {
	api         *source.Client
	baseURL     string
	apiKey      string
	apiHost     string
	glitchDelay time.Duration
	logger      *slog.Logger
}

func New(cfg config.APIConfig, logger *slog.Logger) *Client {
	logger = logger.With("source", domain.PlatformInstagram)
	return &Client{
		api:         source.NewClient(cfg, logger),
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		apiHost:     cfg.APIHost,
		glitchDelay: 2 * time.Second,
		logger:      logger,
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"x-rapidapi-key":  c.apiKey,
		"x-rapidapi-host": c.apiHost,
	}
}

// FetchReels pages through an account's reels until the upstream stops
// returning a pagination token. A permanent not-found is returned as an
// error; any other exhausted failure ends pagination but keeps the records
// collected so far.
//
// The upstream occasionally pairs a non-empty token with an empty item list
// on a transient basis. That page is re-fetched exactly once before being
// treated as end-of-stream.
func (c *Client) FetchReels(ctx context.Context, username string) (*domain.FetchResult, error) {
	result := &domain.FetchResult{}
	token := ""
	page := 0

	c.logger.Info("fetching reels", "username", username)

	for {
		page++

		resp, err := c.fetchPage(ctx, username, token)
		if err != nil {
			if source.IsNotFound(err) {
				return result, fmt.Errorf("profile %s: %w", username, err)
			}
			result.PaginationFailed = true
			result.LastError = err.Error()
			c.logger.Error("pagination aborted", "username", username, "page", page, "error", err)
			break
		}

		items := resp.Data.Items
		next := resp.PaginationToken

		if next != "" && len(items) == 0 {
			c.logger.Warn("empty page with pagination token, re-fetching once",
				"username", username, "page", page)
			items, next = c.refetchGlitchPage(ctx, username, token, next)
		}

		if len(items) == 0 {
			break
		}

		for _, item := range items {
			v, ok := normalizeReel(item, username)
			if !ok {
				continue
			}
			result.Videos = append(result.Videos, v)
		}

		c.logger.Debug("page fetched",
			"username", username, "page", page, "items", len(items), "total", len(result.Videos))

		if next == "" {
			break
		}
		token = next
	}

	c.logger.Info("reels fetched",
		"username", username,
		"videos", len(result.Videos),
		"pagination_failed", result.PaginationFailed,
	)
	return result, nil
}

// refetchGlitchPage retries the same page once. On recovery it returns the
// retried page's items and token; otherwise it signals end-of-stream.
func (c *Client) refetchGlitchPage(ctx context.Context, username, token, next string) ([]reelItem, string) {
	select {
	case <-ctx.Done():
		return nil, ""
	case <-time.After(c.glitchDelay):
	}

	resp, err := c.fetchPage(ctx, username, token)
	if err != nil {
		c.logger.Warn("retry after empty page failed", "username", username, "error", err)
		return nil, ""
	}
	if len(resp.Data.Items) == 0 {
		c.logger.Warn("retry after empty page returned no data", "username", username)
		return nil, ""
	}
	c.logger.Info("recovered after token retry", "username", username, "items", len(resp.Data.Items))
	if resp.PaginationToken != "" {
		next = resp.PaginationToken
	}
	return resp.Data.Items, next
}

func (c *Client) fetchPage(ctx context.Context, username, token string) (*reelsResponse, error) {
	q := url.Values{
		"username_or_id_or_url": {username},
		"url_embed_safe":        {"false"},
	}
	if token != "" {
		q.Set("pagination_token", token)
	}

	var resp reelsResponse
	if err := c.api.GetJSON(ctx, c.baseURL, q, c.headers(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func normalizeReel(item reelItem, username string) (domain.Video, bool) {
	videoURL := item.Permalink
	if videoURL == "" {
		if shortcode := firstNonEmpty(item.Code, item.Shortcode); shortcode != "" {
			videoURL = fmt.Sprintf("https://www.instagram.com/reel/%s/", shortcode)
		}
	}
	if videoURL == "" {
		return domain.Video{}, false
	}

	taken := item.TakenAt
	if taken == 0 {
		taken = item.Caption.CreatedAtUTC
	}
	if taken == 0 {
		taken = item.Caption.CreatedAt
	}
	dt := time.Now().UTC()
	if taken > 0 {
		dt = time.Unix(taken, 0).UTC()
	}
	isoYear, week := dt.ISOWeek()

	views := item.PlayCount
	if views == 0 {
		views = item.ViewCount
	}
	caption := item.Caption.Text
	if caption == "" {
		caption = item.CaptionText
	}

	return domain.Video{
		Platform:    domain.PlatformInstagram,
		Account:     username,
		VideoID:     firstNonEmpty(item.ID.String(), item.PK.String()),
		VideoURL:    videoURL,
		PublishDate: time.Date(dt.Year(), dt.Month(), dt.Day(), 0, 0, 0, 0, time.UTC),
		ISOYear:     isoYear,
		Week:        week,
		Views:       views,
		Likes:       item.LikeCount,
		Comments:    item.CommentCount,
		Caption:     caption,
	}, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type reelsResponse struct {
	Data struct {
		Items []reelItem `json:"items"`
	} `json:"data"`
	PaginationToken string `json:"pagination_token"`
}

type reelItem struct {
	ID           json.Number  `json:"id"`
	PK           json.Number  `json:"pk"`
	Code         string       `json:"code"`
	Shortcode    string       `json:"shortcode"`
	Permalink    string       `json:"permalink"`
	TakenAt      int64        `json:"taken_at"`
	LikeCount    int64        `json:"like_count"`
	PlayCount    int64        `json:"play_count"`
	ViewCount    int64        `json:"view_count"`
	CommentCount int64        `json:"comment_count"`
	Caption      captionField `json:"caption"`
	CaptionText  string       `json:"caption_text"`
}

// captionField arrives either as an object or a bare string, depending on
// the upstream schema variant.
type captionField struct {
	Text         string
	CreatedAtUTC int64
	CreatedAt    int64
}

func (c *captionField) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &c.Text)
	}
	var obj struct {
		Text         string `json:"text"`
		CreatedAtUTC int64  `json:"created_at_utc"`
		CreatedAt    int64  `json:"created_at"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil
	}
	c.Text = obj.Text
	c.CreatedAtUTC = obj.CreatedAtUTC
	c.CreatedAt = obj.CreatedAt
	return nil
}
