package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/karpix25/parser-mass/internal/domain"
	"github.com/karpix25/parser-mass/internal/source"
)

type InstagramProcessor struct {
	deps
	client InstagramClient
}

func NewInstagramProcessor(
	client InstagramClient,
	refs ReferenceData,
	videos VideoStore,
	tx TransactionManager,
	notifier Notifier,
	logger *slog.Logger,
	pause time.Duration,
) *InstagramProcessor {
	return &InstagramProcessor{
		deps: deps{
			refs:     refs,
			videos:   videos,
			tx:       tx,
			notifier: notifier,
			logger:   logger.With("platform", domain.PlatformInstagram),
			pause:    pause,
		},
		client: client,
	}
}

func (p *InstagramProcessor) Platform() string { return domain.PlatformInstagram }

func (p *InstagramProcessor) Process(ctx context.Context, filter map[string]struct{}, rules []domain.TagRule) (*domain.PlatformResult, error) {
	result := &domain.PlatformResult{Platform: domain.PlatformInstagram}

	for _, acc := range p.refs.Accounts(ctx, false) {
		if !targetSelected(filter, acc.Username) || acc.Amount <= 0 {
			continue
		}
		result.Targets++

		fetched, err := p.client.FetchReels(ctx, acc.Username)
		if err != nil {
			if source.IsNotFound(err) {
				p.logger.Warn("account no longer exists", "username", acc.Username)
				p.notifyDeleted(ctx, domain.PlatformInstagram, acc.Username)
				result.Failures = append(result.Failures, domain.Failure{
					Target: acc.Username,
					Reason: "not found / deleted",
				})
			} else {
				p.logger.Error("account failed", "username", acc.Username, "error", err)
				result.Failures = append(result.Failures, domain.Failure{
					Target: acc.Username,
					Reason: err.Error(),
				})
			}
			continue
		}

		// Collected records are still written when pagination died midway.
		if fetched.PaginationFailed {
			reason := fetched.LastError
			if reason == "" {
				reason = "pagination failed"
			}
			result.Failures = append(result.Failures, domain.Failure{
				Target: acc.Username,
				Reason: reason,
			})
		}

		videos := fetched.Videos
		if len(videos) > acc.Amount {
			videos = videos[:acc.Amount]
		}

		stats := p.saveVideos(ctx, videos, rules)
		result.NewVideos += stats.inserted + stats.updated

		p.notifyStats(ctx, domain.PlatformInstagram, acc.Username, stats.inserted+stats.updated)
		p.logger.Info("account done",
			"username", acc.Username,
			"videos", len(videos),
			"inserted", stats.inserted,
			"updated", stats.updated,
			"failed", stats.failed,
		)
	}

	return result, nil
}
