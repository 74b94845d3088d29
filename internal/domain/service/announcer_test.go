package service

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testWebhookURL = "https://discord.com/api/webhooks/1/token/slack"

func newTestAnnouncer(m allMocks, cfg AnnouncerConfig) *announcer {
	return newAnnouncer(cfg, m.mockFractalService, m.mockJokeProvider, m.mockNotifier, zap.NewNop())
}

func testFacts() *entity.DailyFacts {
	return &entity.DailyFacts{
		Date:            time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
		Index:           3,
		ActiveFractals:  []string{"kinfall", "aquatic_ruins"},
		Featured:        []string{"Kinfall"},
		Undesirable:     []string{"Aquatic Ruins"},
		WithNamedEffect: []string{"Kinfall"},
	}
}

func Test_announcer_Announce(t *testing.T) {
	cfg := AnnouncerConfig{
		WebhookURL:  testWebhookURL,
		RoleID:      "42",
		NamedEffect: domain.DefaultNamedEffect,
	}

	tests := []struct {
		name      string
		cfg       AnnouncerConfig
		buildMock func(m allMocks)
		wantErr   error
	}{
		{
			name: "Should send the message with the joke",
			cfg:  cfg,
			buildMock: func(m allMocks) {
				m.mockFractalService.EXPECT().DailyFacts().Return(testFacts(), nil).Times(1)
				m.mockJokeProvider.EXPECT().Fetch(gomock.Any()).Return("Why?", nil).Times(1)
				m.mockNotifier.EXPECT().
					Send(gomock.Any(), testWebhookURL, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, text string) error {
						assert.Contains(t, text, "<@&42> Daily Fractal Poke!")
						assert.Contains(t, text, "**Joke of the day:**\nWhy?")
						assert.Contains(t, text, "Kinfall is daily today!")
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should send without a joke when the joke fetch fails",
			cfg:  cfg,
			buildMock: func(m allMocks) {
				m.mockFractalService.EXPECT().DailyFacts().Return(testFacts(), nil).Times(1)
				m.mockJokeProvider.EXPECT().Fetch(gomock.Any()).Return("", errors.New("timeout")).Times(1)
				m.mockNotifier.EXPECT().
					Send(gomock.Any(), testWebhookURL, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, text string) error {
						assert.NotContains(t, text, "Joke of the day")
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should not call the joke provider when jokes are skipped",
			cfg: AnnouncerConfig{
				WebhookURL:  testWebhookURL,
				NamedEffect: domain.DefaultNamedEffect,
				SkipJoke:    true,
			},
			buildMock: func(m allMocks) {
				m.mockFractalService.EXPECT().DailyFacts().Return(testFacts(), nil).Times(1)
				m.mockNotifier.EXPECT().Send(gomock.Any(), testWebhookURL, gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name: "Should abort before sending on inconsistent data",
			cfg:  cfg,
			buildMock: func(m allMocks) {
				m.mockFractalService.EXPECT().
					DailyFacts().
					Return(nil, domain.DataConsistencyf("fractal %q not found in catalog", "lonely_tower")).
					Times(1)
			},
			wantErr: domain.ErrDataConsistency,
		},
		{
			name: "Should return the delivery error",
			cfg:  cfg,
			buildMock: func(m allMocks) {
				m.mockFractalService.EXPECT().DailyFacts().Return(testFacts(), nil).Times(1)
				m.mockJokeProvider.EXPECT().Fetch(gomock.Any()).Return("Why?", nil).Times(1)
				m.mockNotifier.EXPECT().Send(gomock.Any(), testWebhookURL, gomock.Any()).Return(context.DeadlineExceeded).Times(1)
			},
			wantErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			err := newTestAnnouncer(m, tt.cfg).Announce(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_announcer_Announce_MissingWebhook(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	err := newTestAnnouncer(m, AnnouncerConfig{NamedEffect: domain.DefaultNamedEffect}).Announce(context.Background())
	require.Error(t, err)
}

func Test_announcer_Preview(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockFractalService.EXPECT().DailyFacts().Return(testFacts(), nil).Times(1)
	m.mockJokeProvider.EXPECT().Fetch(gomock.Any()).Return("Why?", nil).Times(1)

	msg, err := newTestAnnouncer(m, AnnouncerConfig{NamedEffect: domain.DefaultNamedEffect}).Preview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Daily Fractal Poke!"+
		"\n\n**Joke of the day:**\nWhy?"+
		"\n\n**Fractals:**"+
		"\nKinfall is daily today!"+
		"\nUnfortunately, Aquatic Ruins is also daily."+
		"\nKinfall has No Pain, No Gain."+
		"\nReact with ✅ if you can make it today or ❌ if you skip.", msg)
}

func TestNew(t *testing.T) {
	s := New(Params{
		Reference: testReference(),
		Classification: entity.Classification{
			Featured:    []string{"kinfall"},
			NamedEffect: domain.DefaultNamedEffect,
		},
		Clock: func() time.Time { return date(2025, time.January, 3) },
	})

	require.NotNil(t, s.Fractal)
	require.NotNil(t, s.Announcer)

	facts, err := s.Fractal.DailyFacts()
	require.NoError(t, err)
	assert.Equal(t, []string{"Kinfall"}, facts.Featured)
}
