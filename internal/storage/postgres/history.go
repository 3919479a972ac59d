package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type HistoryStore struct {
	db     *sqlx.DB
	schema string
}

func NewHistoryStore(db *sqlx.DB, schema string) *HistoryStore {
	return &HistoryStore{db: db, schema: schema}
}

// UpdateViewsHistory snapshots the current view counts of all company-tagged
// videos into the weekly history table. Re-running within the same week
// overwrites that week's snapshot.
func (s *HistoryStore) UpdateViewsHistory(ctx context.Context) error {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s.reels_views_history (video_id, company_tag, platform, views_count, week_start_date)
		SELECT
			video_id,
			company AS company_tag,
			platform,
			CAST(views AS BIGINT) AS views_count,
			(date_trunc('week', (now() AT TIME ZONE 'America/Argentina/Buenos_Aires')))::date AS week_start_date
		FROM %[1]s.video_stats
		WHERE company IS NOT NULL
		ON CONFLICT (video_id, week_start_date) DO UPDATE SET
			views_count = EXCLUDED.views_count,
			collected_at = now(),
			company_tag = EXCLUDED.company_tag,
			platform = EXCLUDED.platform`, s.schema)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query)
	return err
}
