package contract

import (
	"context"

	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
)

// ReferenceRepo loads the static reference tables
type ReferenceRepo interface {
	Load(ctx context.Context) (*entity.ReferenceData, error)
}

// ReferenceStore is a ReferenceRepo that can also be written to
type ReferenceStore interface {
	ReferenceRepo
	Save(ctx context.Context, ref *entity.ReferenceData) error
}
