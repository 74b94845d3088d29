package service

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// AnnouncerConfig holds the delivery settings of the daily announcement
type AnnouncerConfig struct {
	WebhookURL  string
	RoleID      string
	NamedEffect string
	// SkipJoke disables the joke collaborator entirely.
	SkipJoke bool
}

type announcer struct {
	cfg      AnnouncerConfig
	fractals contract.FractalService
	jokes    contract.JokeProvider
	notifier contract.Notifier
	log      *zap.Logger
}

func newAnnouncer(cfg AnnouncerConfig, fractals contract.FractalService, jokes contract.JokeProvider, notifier contract.Notifier, log *zap.Logger) *announcer {
	return &announcer{
		cfg:      cfg,
		fractals: fractals,
		jokes:    jokes,
		notifier: notifier,
		log:      log,
	}
}

// Preview builds today's announcement without sending it.
func (a *announcer) Preview(ctx context.Context) (string, error) {
	facts, err := a.fractals.DailyFacts()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve daily facts")
	}

	return buildDailyMessage(a.cfg.RoleID, a.fetchJoke(ctx), a.cfg.NamedEffect, facts), nil
}

// Announce builds today's announcement and posts it to the webhook.
func (a *announcer) Announce(ctx context.Context) error {
	if a.cfg.WebhookURL == "" {
		return errors.New("webhook url is not configured")
	}

	msg, err := a.Preview(ctx)
	if err != nil {
		return err
	}

	if err := a.notifier.Send(ctx, a.cfg.WebhookURL, msg); err != nil {
		return errors.Wrap(err, "failed to send daily message")
	}

	a.log.Info("daily message sent", zap.Int("length", len(msg)))
	return nil
}

// fetchJoke never fails: a missing joke only drops that section of the message.
func (a *announcer) fetchJoke(ctx context.Context) string {
	if a.cfg.SkipJoke || a.jokes == nil {
		return ""
	}

	joke, err := a.jokes.Fetch(ctx)
	if err != nil {
		a.log.Warn("failed to fetch joke, sending without it", zap.Error(err))
		return ""
	}

	return joke
}
