package domain

import "time"

// Platform identifiers as stored in video_stats.platform.
const (
	PlatformInstagram = "instagram"
	PlatformYouTube   = "youtube"
	PlatformTikTok    = "tiktok"
)

type Video struct {
	ID          int64     `db:"id"`
	Platform    string    `db:"platform"`
	Account     string    `db:"account"`
	VideoID     string    `db:"video_id"`
	VideoURL    string    `db:"video_url"`
	PublishDate time.Time `db:"publish_date"`
	ISOYear     int       `db:"iso_year"`
	Week        int       `db:"week"`
	Views       int64     `db:"views"`
	Likes       int64     `db:"likes"`
	Comments    int64     `db:"comments"`
	Caption     string    `db:"caption"`
	ClientTag   *string   `db:"client_tag"`
	Company     *string   `db:"company"`
	Product     *string   `db:"product"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// TagRule is one row of the tag taxonomy: a lowercase hashtag (without '#')
// and the company/product it attributes matched videos to.
type TagRule struct {
	Tag     string
	Company string
	Product string
}

// FetchResult is what a platform client hands back for one target.
// Videos holds everything collected before any failure point; PaginationFailed
// marks a permanently aborted pagination whose partial results are still usable.
type FetchResult struct {
	Videos           []Video
	Failed           int
	PaginationFailed bool
	LastError        string
}

type UpsertResult int

const (
	UpsertSkipped UpsertResult = iota
	UpsertInserted
	UpsertUpdated
)
