package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/karpix25/parser-mass/internal/domain"
	"github.com/karpix25/parser-mass/internal/source"
)

type YouTubeProcessor struct {
	deps
	client YouTubeClient
}

func NewYouTubeProcessor(
	client YouTubeClient,
	refs ReferenceData,
	videos VideoStore,
	tx TransactionManager,
	notifier Notifier,
	logger *slog.Logger,
	pause time.Duration,
) *YouTubeProcessor {
	return &YouTubeProcessor{
		deps: deps{
			refs:     refs,
			videos:   videos,
			tx:       tx,
			notifier: notifier,
			logger:   logger.With("platform", domain.PlatformYouTube),
			pause:    pause,
		},
		client: client,
	}
}

func (p *YouTubeProcessor) Platform() string { return domain.PlatformYouTube }

func (p *YouTubeProcessor) Process(ctx context.Context, filter map[string]struct{}, rules []domain.TagRule) (*domain.PlatformResult, error) {
	result := &domain.PlatformResult{Platform: domain.PlatformYouTube}

	for _, ch := range p.refs.Channels(ctx, false) {
		if !targetSelected(filter, ch.ChannelID) || ch.Amount <= 0 {
			continue
		}
		result.Targets++

		fetched, err := p.client.FetchShorts(ctx, ch.ChannelID, ch.Amount)
		if err != nil {
			if source.IsNotFound(err) {
				p.logger.Warn("channel no longer exists", "channel_id", ch.ChannelID)
				p.notifyDeleted(ctx, domain.PlatformYouTube, ch.ChannelID)
				result.Failures = append(result.Failures, domain.Failure{
					Target: ch.ChannelID,
					Reason: "not found / deleted",
				})
			} else {
				p.logger.Error("channel failed", "channel_id", ch.ChannelID, "error", err)
				result.Failures = append(result.Failures, domain.Failure{
					Target: ch.ChannelID,
					Reason: err.Error(),
				})
			}
			continue
		}

		if fetched.PaginationFailed {
			reason := fetched.LastError
			if reason == "" {
				reason = "pagination failed"
			}
			result.Failures = append(result.Failures, domain.Failure{
				Target: ch.ChannelID,
				Reason: reason,
			})
		}
		if fetched.Failed > 0 {
			p.logger.Warn("some shorts could not be resolved",
				"channel_id", ch.ChannelID, "failed", fetched.Failed)
		}

		stats := p.saveVideos(ctx, fetched.Videos, rules)
		result.NewVideos += stats.inserted + stats.updated

		p.notifyStats(ctx, domain.PlatformYouTube, ch.ChannelID, stats.inserted+stats.updated)
		p.logger.Info("channel done",
			"channel_id", ch.ChannelID,
			"videos", len(fetched.Videos),
			"inserted", stats.inserted,
			"updated", stats.updated,
			"failed", stats.failed,
		)
	}

	return result, nil
}
