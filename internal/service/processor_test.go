package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/karpix25/parser-mass/internal/domain"
	"github.com/karpix25/parser-mass/internal/service/mocks"
	"github.com/karpix25/parser-mass/internal/source"
)

type ProcessorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	refs     *mocks.MockReferenceData
	videos   *mocks.MockVideoStore
	notifier *mocks.MockNotifier
	tx       *mocks.MockTransactionManager

	logger *slog.Logger
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.refs = mocks.NewMockReferenceData(s.ctrl)
	s.videos = mocks.NewMockVideoStore(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.tx = mocks.NewMockTransactionManager(s.ctrl)

	s.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) newInstagram(client InstagramClient) *InstagramProcessor {
	return NewInstagramProcessor(client, s.refs, s.videos, s.tx, s.notifier, s.logger, 0)
}

func (s *ProcessorTestSuite) newYouTube(client YouTubeClient) *YouTubeProcessor {
	return NewYouTubeProcessor(client, s.refs, s.videos, s.tx, s.notifier, s.logger, 0)
}

func (s *ProcessorTestSuite) newTikTok(client TikTokClient) *TikTokProcessor {
	return NewTikTokProcessor(client, s.refs, s.videos, s.tx, s.notifier, s.logger, 0)
}

func (s *ProcessorTestSuite) TestYouTube_FilterPreservesConfiguredAmount() {
	ctx := context.Background()
	client := mocks.NewMockYouTubeClient(s.ctrl)

	s.refs.EXPECT().Channels(ctx, false).Return([]domain.Channel{
		{ChannelID: "chan1", Amount: 10},
		{ChannelID: "chan2", Amount: 5},
	})

	client.EXPECT().FetchShorts(ctx, "chan1", 10).Return(&domain.FetchResult{}, nil)
	s.notifier.EXPECT().UpdateStats(ctx, domain.PlatformYouTube, "chan1", 0).Return(nil)

	result, err := s.newYouTube(client).Process(ctx, FilterSet([]string{"Chan1"}), nil)

	s.NoError(err)
	s.Equal(1, result.Targets)
	s.Empty(result.Failures)
}

func (s *ProcessorTestSuite) TestYouTube_ZeroAmountSkipped() {
	ctx := context.Background()
	client := mocks.NewMockYouTubeClient(s.ctrl)

	s.refs.EXPECT().Channels(ctx, false).Return([]domain.Channel{
		{ChannelID: "chan1", Amount: 0},
		{ChannelID: "chan2", Amount: 3},
	})

	client.EXPECT().FetchShorts(ctx, "chan2", 3).Return(&domain.FetchResult{}, nil)
	s.notifier.EXPECT().UpdateStats(ctx, domain.PlatformYouTube, "chan2", 0).Return(nil)

	result, err := s.newYouTube(client).Process(ctx, nil, nil)

	s.NoError(err)
	s.Equal(1, result.Targets)
}

func (s *ProcessorTestSuite) TestInstagram_NotFoundMarksDeleted() {
	ctx := context.Background()
	client := mocks.NewMockInstagramClient(s.ctrl)

	s.refs.EXPECT().Accounts(ctx, false).Return([]domain.Account{
		{Username: "gone_account", Amount: 5},
	})

	client.EXPECT().FetchReels(ctx, "gone_account").Return(
		&domain.FetchResult{},
		&source.APIError{Status: 404, Body: "user not found"},
	)
	s.notifier.EXPECT().MarkDeleted(ctx, domain.PlatformInstagram, "gone_account").Return(nil)

	result, err := s.newInstagram(client).Process(ctx, nil, nil)

	s.NoError(err)
	s.Require().Len(result.Failures, 1)
	s.Equal("gone_account", result.Failures[0].Target)
	s.Equal("not found / deleted", result.Failures[0].Reason)
	s.Equal(0, result.NewVideos)
}

func (s *ProcessorTestSuite) TestInstagram_CapsToConfiguredAmount() {
	ctx := context.Background()
	client := mocks.NewMockInstagramClient(s.ctrl)

	s.refs.EXPECT().Accounts(ctx, false).Return([]domain.Account{
		{Username: "busy_account", Amount: 2},
	})

	fetched := &domain.FetchResult{Videos: []domain.Video{
		{Platform: domain.PlatformInstagram, Account: "busy_account", VideoID: "1", VideoURL: "u1"},
		{Platform: domain.PlatformInstagram, Account: "busy_account", VideoID: "2", VideoURL: "u2"},
		{Platform: domain.PlatformInstagram, Account: "busy_account", VideoID: "3", VideoURL: "u3"},
	}}
	client.EXPECT().FetchReels(ctx, "busy_account").Return(fetched, nil)

	s.videos.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domain.UpsertInserted, nil).Times(2)
	s.notifier.EXPECT().UpdateStats(ctx, domain.PlatformInstagram, "busy_account", 2).Return(nil)

	result, err := s.newInstagram(client).Process(ctx, nil, nil)

	s.NoError(err)
	s.Equal(2, result.NewVideos)
}

func (s *ProcessorTestSuite) TestInstagram_PaginationFailureKeepsCollected() {
	ctx := context.Background()
	client := mocks.NewMockInstagramClient(s.ctrl)

	s.refs.EXPECT().Accounts(ctx, false).Return([]domain.Account{
		{Username: "flaky_account", Amount: 10},
	})

	fetched := &domain.FetchResult{
		Videos:           []domain.Video{{Platform: domain.PlatformInstagram, Account: "flaky_account", VideoID: "1", VideoURL: "u1"}},
		PaginationFailed: true,
		LastError:        "status 502",
	}
	client.EXPECT().FetchReels(ctx, "flaky_account").Return(fetched, nil)

	s.videos.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domain.UpsertInserted, nil)
	s.notifier.EXPECT().UpdateStats(ctx, domain.PlatformInstagram, "flaky_account", 1).Return(nil)

	result, err := s.newInstagram(client).Process(ctx, nil, nil)

	s.NoError(err)
	s.Equal(1, result.NewVideos)
	s.Require().Len(result.Failures, 1)
	s.Equal("status 502", result.Failures[0].Reason)
}

func (s *ProcessorTestSuite) TestInstagram_TagsAppliedBeforeWrite() {
	ctx := context.Background()
	client := mocks.NewMockInstagramClient(s.ctrl)

	s.refs.EXPECT().Accounts(ctx, false).Return([]domain.Account{
		{Username: "tagged_account", Amount: 5},
	})

	fetched := &domain.FetchResult{Videos: []domain.Video{
		{Platform: domain.PlatformInstagram, Account: "tagged_account", VideoID: "1", VideoURL: "u1", Caption: "big #promo today"},
	}}
	client.EXPECT().FetchReels(ctx, "tagged_account").Return(fetched, nil)

	var written *domain.Video
	s.videos.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v *domain.Video) (domain.UpsertResult, error) {
			written = v
			return domain.UpsertInserted, nil
		},
	)
	s.notifier.EXPECT().UpdateStats(ctx, domain.PlatformInstagram, "tagged_account", 1).Return(nil)

	rules := []domain.TagRule{{Tag: "promo", Company: "Acme", Product: "Widget"}}
	_, err := s.newInstagram(client).Process(ctx, nil, rules)

	s.NoError(err)
	s.Require().NotNil(written)
	s.Require().NotNil(written.ClientTag)
	s.Equal("#promo", *written.ClientTag)
	s.Equal("Acme", *written.Company)
	s.Equal("Widget", *written.Product)
}

func (s *ProcessorTestSuite) TestInstagram_WriteFailureDoesNotAbortBatch() {
	ctx := context.Background()
	client := mocks.NewMockInstagramClient(s.ctrl)

	s.refs.EXPECT().Accounts(ctx, false).Return([]domain.Account{
		{Username: "acct", Amount: 5},
	})

	fetched := &domain.FetchResult{Videos: []domain.Video{
		{Platform: domain.PlatformInstagram, Account: "acct", VideoID: "1", VideoURL: "u1"},
		{Platform: domain.PlatformInstagram, Account: "acct", VideoID: "2", VideoURL: "u2"},
	}}
	client.EXPECT().FetchReels(ctx, "acct").Return(fetched, nil)

	gomock.InOrder(
		s.videos.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domain.UpsertSkipped, errors.New("constraint violation")),
		s.videos.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domain.UpsertInserted, nil),
	)
	s.notifier.EXPECT().UpdateStats(ctx, domain.PlatformInstagram, "acct", 1).Return(nil)

	result, err := s.newInstagram(client).Process(ctx, nil, nil)

	s.NoError(err)
	s.Equal(1, result.NewVideos)
	s.Empty(result.Failures)
}

func (s *ProcessorTestSuite) TestInstagram_TransientFailureRecorded() {
	ctx := context.Background()
	client := mocks.NewMockInstagramClient(s.ctrl)

	s.refs.EXPECT().Accounts(ctx, false).Return([]domain.Account{
		{Username: "acct1", Amount: 5},
		{Username: "acct2", Amount: 5},
	})

	client.EXPECT().FetchReels(ctx, "acct1").Return(nil, errors.New("after 3 attempts: status 503"))
	client.EXPECT().FetchReels(ctx, "acct2").Return(&domain.FetchResult{}, nil)
	s.notifier.EXPECT().UpdateStats(ctx, domain.PlatformInstagram, "acct2", 0).Return(nil)

	result, err := s.newInstagram(client).Process(ctx, nil, nil)

	s.NoError(err)
	s.Equal(2, result.Targets)
	s.Require().Len(result.Failures, 1)
	s.Equal("acct1", result.Failures[0].Target)
	s.Contains(result.Failures[0].Reason, "503")
}

func (s *ProcessorTestSuite) TestTikTok_UsesProfileIdentifiers() {
	ctx := context.Background()
	client := mocks.NewMockTikTokClient(s.ctrl)

	s.refs.EXPECT().Profiles(ctx, false).Return([]domain.Profile{
		{UserID: "12345", Username: "dancer", Amount: 4},
		{UserID: "67890", Username: "singer", Amount: 4},
	})

	client.EXPECT().FetchVideos(ctx, "12345", "dancer", 4).Return(&domain.FetchResult{}, nil)
	s.notifier.EXPECT().UpdateStats(ctx, domain.PlatformTikTok, "12345", 0).Return(nil)

	result, err := s.newTikTok(client).Process(ctx, FilterSet([]string{"12345"}), nil)

	s.NoError(err)
	s.Equal(1, result.Targets)
}

func (s *ProcessorTestSuite) TestTikTok_NotFoundPayloadMarksDeleted() {
	ctx := context.Background()
	client := mocks.NewMockTikTokClient(s.ctrl)

	s.refs.EXPECT().Profiles(ctx, false).Return([]domain.Profile{
		{UserID: "12345", Username: "ghost", Amount: 4},
	})

	client.EXPECT().FetchVideos(ctx, "12345", "ghost", 4).Return(
		nil, &source.APIError{Status: 404, Body: "user doesn't exist"},
	)
	s.notifier.EXPECT().MarkDeleted(ctx, domain.PlatformTikTok, "12345").Return(nil)

	result, err := s.newTikTok(client).Process(ctx, nil, nil)

	s.NoError(err)
	s.Require().Len(result.Failures, 1)
	s.Equal("not found / deleted", result.Failures[0].Reason)
}

func (s *ProcessorTestSuite) TestNotifierFailureDoesNotFailTarget() {
	ctx := context.Background()
	client := mocks.NewMockYouTubeClient(s.ctrl)

	s.refs.EXPECT().Channels(ctx, false).Return([]domain.Channel{
		{ChannelID: "chan1", Amount: 2},
	})

	client.EXPECT().FetchShorts(ctx, "chan1", 2).Return(&domain.FetchResult{}, nil)
	s.notifier.EXPECT().UpdateStats(ctx, domain.PlatformYouTube, "chan1", 0).
		Return(errors.New("broker unavailable"))

	result, err := s.newYouTube(client).Process(ctx, nil, nil)

	s.NoError(err)
	s.Equal(1, result.Targets)
	s.Empty(result.Failures)
}
