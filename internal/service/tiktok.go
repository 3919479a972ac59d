package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/karpix25/parser-mass/internal/domain"
	"github.com/karpix25/parser-mass/internal/source"
)

type TikTokProcessor struct {
	deps
	client TikTokClient
}

func NewTikTokProcessor(
	client TikTokClient,
	refs ReferenceData,
	videos VideoStore,
	tx TransactionManager,
	notifier Notifier,
	logger *slog.Logger,
	pause time.Duration,
) *TikTokProcessor {
	return &TikTokProcessor{
		deps: deps{
			refs:     refs,
			videos:   videos,
			tx:       tx,
			notifier: notifier,
			logger:   logger.With("platform", domain.PlatformTikTok),
			pause:    pause,
		},
		client: client,
	}
}

func (p *TikTokProcessor) Platform() string { return domain.PlatformTikTok }

func (p *TikTokProcessor) Process(ctx context.Context, filter map[string]struct{}, rules []domain.TagRule) (*domain.PlatformResult, error) {
	result := &domain.PlatformResult{Platform: domain.PlatformTikTok}

	for _, profile := range p.refs.Profiles(ctx, false) {
		if !targetSelected(filter, profile.UserID) || profile.Amount <= 0 {
			continue
		}
		result.Targets++

		fetched, err := p.client.FetchVideos(ctx, profile.UserID, profile.Username, profile.Amount)
		if err != nil {
			if source.IsNotFound(err) {
				p.logger.Warn("profile no longer exists", "user_id", profile.UserID)
				p.notifyDeleted(ctx, domain.PlatformTikTok, profile.UserID)
				result.Failures = append(result.Failures, domain.Failure{
					Target: profile.UserID,
					Reason: "not found / deleted",
				})
			} else {
				p.logger.Error("profile failed", "user_id", profile.UserID, "error", err)
				result.Failures = append(result.Failures, domain.Failure{
					Target: profile.UserID,
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
				Target: profile.UserID,
				Reason: reason,
			})
		}

		stats := p.saveVideos(ctx, fetched.Videos, rules)
		result.NewVideos += stats.inserted + stats.updated

		p.notifyStats(ctx, domain.PlatformTikTok, profile.UserID, stats.inserted+stats.updated)
		p.logger.Info("profile done",
			"user_id", profile.UserID,
			"username", profile.Username,
			"videos", len(fetched.Videos),
			"inserted", stats.inserted,
			"updated", stats.updated,
			"failed", stats.failed,
		)
	}

	return result, nil
}
