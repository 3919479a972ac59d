package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/karpix25/parser-mass/internal/domain"
)

type VideoStore interface {
	Upsert(ctx context.Context, video *domain.Video) (domain.UpsertResult, error)
}

type RunStore interface {
	Insert(ctx context.Context, run *domain.RunResult) error
}

type HistoryStore interface {
	UpdateViewsHistory(ctx context.Context) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	MarkDeleted(ctx context.Context, platform, target string) error
	UpdateStats(ctx context.Context, platform, target string, videoCount int) error
	Close() error
}

type ReferenceData interface {
	Preload(ctx context.Context, force bool)
	Accounts(ctx context.Context, force bool) []domain.Account
	Tags(ctx context.Context, force bool) []domain.TagRule
	Channels(ctx context.Context, force bool) []domain.Channel
	Profiles(ctx context.Context, force bool) []domain.Profile
}

type InstagramClient interface {
	FetchReels(ctx context.Context, username string) (*domain.FetchResult, error)
}

type YouTubeClient interface {
	FetchShorts(ctx context.Context, channelID string, amount int) (*domain.FetchResult, error)
}

type TikTokClient interface {
	FetchVideos(ctx context.Context, userID, handle string, amount int) (*domain.FetchResult, error)
}

type Processor interface {
	Platform() string
	Process(ctx context.Context, filter map[string]struct{}, rules []domain.TagRule) (*domain.PlatformResult, error)
}
