package contract

import (
	"context"
	"time"

	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
)

type FractalService interface {
	DailyIndex(date time.Time) (int, error)
	DailyFractals(index int) []string
	DailyInstabilities(index int, fractalIDs []string) (map[string][]string, error)
	DailyFacts() (*entity.DailyFacts, error)
	FractalName(fractalID string) (string, error)
}

type AnnouncerService interface {
	Preview(ctx context.Context) (string, error)
	Announce(ctx context.Context) error
}
