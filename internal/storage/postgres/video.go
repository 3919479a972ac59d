package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karpix25/parser-mass/internal/domain"
)

type VideoStore struct {
	db     *sqlx.DB
	schema string
}

func NewVideoStore(db *sqlx.DB, schema string) *VideoStore {
	return &VideoStore{db: db, schema: schema}
}

// Upsert writes one video record, resolving conflicts on the platform's
// natural key: video_url for youtube (the shorts flow is URL-first and the
// id can be absent), video_id for instagram and tiktok. Counters and
// classification are refreshed on conflict; identity fields never change.
func (s *VideoStore) Upsert(ctx context.Context, v *domain.Video) (domain.UpsertResult, error) {
	conflictCol := "video_id"
	updateSet := `
			account = EXCLUDED.account,
			video_url = EXCLUDED.video_url,`
	if v.Platform == domain.PlatformYouTube {
		conflictCol = "video_url"
		updateSet = `
			account = EXCLUDED.account,`
	}

	query := fmt.Sprintf(`
		INSERT INTO %s.video_stats (
			platform, account, video_id, video_url, publish_date,
			iso_year, week, likes, views, comments, caption,
			client_tag, company, product, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW()
		)
		ON CONFLICT (%s) DO UPDATE SET%s
			likes = EXCLUDED.likes,
			views = EXCLUDED.views,
			comments = EXCLUDED.comments,
			caption = EXCLUDED.caption,
			client_tag = EXCLUDED.client_tag,
			company = EXCLUDED.company,
			product = EXCLUDED.product,
			updated_at = NOW()
		RETURNING (xmax = 0)`, s.schema, conflictCol, updateSet)

	var inserted bool
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		v.Platform,
		v.Account,
		v.VideoID,
		v.VideoURL,
		v.PublishDate,
		v.ISOYear,
		v.Week,
		v.Likes,
		v.Views,
		v.Comments,
		v.Caption,
		v.ClientTag,
		v.Company,
		v.Product,
	).Scan(&inserted)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.UpsertSkipped, nil
	}
	if err != nil {
		return domain.UpsertSkipped, err
	}
	if inserted {
		return domain.UpsertInserted, nil
	}
	return domain.UpsertUpdated, nil
}
