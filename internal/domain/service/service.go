package service

import (
	"time"

	"github.com/diegoclair/fractal-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
	"go.uber.org/zap"
)

var (
	_ contract.FractalService   = (*fractalService)(nil)
	_ contract.AnnouncerService = (*announcer)(nil)
)

type Services struct {
	Fractal   *fractalService
	Announcer *announcer
}

// Params carries everything the services need, built once at startup.
type Params struct {
	Reference      *entity.ReferenceData
	Classification entity.Classification
	Announcer      AnnouncerConfig
	Jokes          contract.JokeProvider
	Notifier       contract.Notifier
	// Clock defaults to time.Now.
	Clock  func() time.Time
	Logger *zap.Logger
}

func New(p Params) *Services {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fractal := newFractal(p.Reference, p.Classification, p.Clock, logger.Named("fractal"))

	return &Services{
		Fractal:   fractal,
		Announcer: newAnnouncer(p.Announcer, fractal, p.Jokes, p.Notifier, logger.Named("announcer")),
	}
}
