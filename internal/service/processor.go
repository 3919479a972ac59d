package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/karpix25/parser-mass/internal/domain"
	"github.com/karpix25/parser-mass/internal/tagging"
)

const progressEvery = 25

// deps is the collaborator set shared by the platform processors.
type deps struct {
	refs     ReferenceData
	videos   VideoStore
	tx       TransactionManager
	notifier Notifier
	logger   *slog.Logger

	// pause is the sleep between successive writes for one target, on top
	// of the client's own request pacing.
	pause time.Duration
}

type saveStats struct {
	inserted int
	updated  int
	skipped  int
	failed   int
}

// saveVideos classifies and upserts one target's videos. A failed record is
// counted and skipped; it never aborts the rest of the batch.
func (d *deps) saveVideos(ctx context.Context, videos []domain.Video, rules []domain.TagRule) saveStats {
	var stats saveStats

	for i := range videos {
		v := &videos[i]

		match := tagging.Tags(v.Caption, rules)
		v.ClientTag = match.ClientTag
		v.Company = match.Company
		v.Product = match.Product

		var res domain.UpsertResult
		err := d.tx.WithTransaction(ctx, func(txCtx context.Context) error {
			var err error
			res, err = d.videos.Upsert(txCtx, v)
			return err
		})
		if err != nil {
			stats.failed++
			d.logger.Warn("failed to save video",
				"account", v.Account,
				"video_url", v.VideoURL,
				"error", err,
			)
			continue
		}

		switch res {
		case domain.UpsertInserted:
			stats.inserted++
		case domain.UpsertUpdated:
			stats.updated++
		default:
			stats.skipped++
		}

		if (i+1)%progressEvery == 0 {
			d.logProgress(videos[i].Account, i+1, len(videos), stats)
		}

		if d.pause > 0 && i < len(videos)-1 {
			select {
			case <-ctx.Done():
				return stats
			case <-time.After(d.pause):
			}
		}
	}

	if len(videos) > 0 {
		d.logProgress(videos[0].Account, len(videos), len(videos), stats)
	}
	return stats
}

func (d *deps) logProgress(account string, done, total int, stats saveStats) {
	d.logger.Info("save progress",
		"account", account,
		"done", done,
		"total", total,
		"inserted", stats.inserted,
		"updated", stats.updated,
		"skipped", stats.skipped,
		"failed", stats.failed,
	)
}

// notifyDeleted and notifyStats are fire-and-forget: a notification failure
// never fails the target.
func (d *deps) notifyDeleted(ctx context.Context, platform, target string) {
	if err := d.notifier.MarkDeleted(ctx, platform, target); err != nil {
		d.logger.Warn("deleted notification failed", "platform", platform, "target", target, "error", err)
	}
}

func (d *deps) notifyStats(ctx context.Context, platform, target string, count int) {
	if err := d.notifier.UpdateStats(ctx, platform, target, count); err != nil {
		d.logger.Warn("stats notification failed", "platform", platform, "target", target, "error", err)
	}
}

// targetSelected applies an optional case-folded filter. A nil or empty
// filter selects everything.
func targetSelected(filter map[string]struct{}, id string) bool {
	if len(filter) == 0 {
		return true
	}
	_, ok := filter[strings.ToLower(id)]
	return ok
}

// FilterSet case-folds a list of target identifiers into a lookup set.
func FilterSet(targets []string) map[string]struct{} {
	if len(targets) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}
