package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karpix25/parser-mass/internal/domain"
)

type RunStore struct {
	db     *sqlx.DB
	schema string
}

func NewRunStore(db *sqlx.DB, schema string) *RunStore {
	return &RunStore{db: db, schema: schema}
}

// Insert records one finished sync run. The per-target failure details and
// the optional target filter travel in the accounts_json column.
func (s *RunStore) Insert(ctx context.Context, run *domain.RunResult) error {
	payload := map[string]any{}
	if len(run.TargetFilter) > 0 {
		payload["target_filter"] = run.TargetFilter
	}
	if len(run.Failed) > 0 {
		payload["failed"] = run.Failed
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal run details: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s.parse_runs (
			started_at, finished_at, status, total_accounts, new_videos, errors, accounts_json
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`, s.schema)

	_, err = GetExecutor(ctx, s.db).ExecContext(ctx, query,
		run.StartedAt,
		run.FinishedAt,
		run.Status,
		run.TotalAccounts,
		run.NewVideos,
		run.Errors,
		string(data),
	)
	return err
}
