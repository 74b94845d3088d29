package database

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
)

// instance implements contract.ReferenceStore
type instance struct {
	db   *DB
	repo *referenceRepo
}

// NewReferenceStore creates a reference store backed by the database
func NewReferenceStore(db *DB) contract.ReferenceStore {
	return &instance{
		db:   db,
		repo: newReferenceRepo(db.conn),
	}
}

func (i *instance) Load(ctx context.Context) (*entity.ReferenceData, error) {
	ref, err := i.repo.load(ctx)
	if err != nil {
		return nil, err
	}

	if len(ref.Fractals) == 0 {
		return nil, domain.DataConsistencyf("reference store is empty, run the seed command first")
	}

	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return ref, nil
}

// Save replaces every reference table in a single transaction
func (i *instance) Save(ctx context.Context, ref *entity.ReferenceData) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	return i.withTransaction(ctx, func(repo *referenceRepo) error {
		if err := repo.clear(ctx); err != nil {
			return errors.Wrap(err, "failed to clear reference tables")
		}

		if err := repo.save(ctx, ref); err != nil {
			return errors.Wrap(err, "failed to save reference tables")
		}

		return nil
	})
}

// withTransaction executes a function within a database transaction
func (i *instance) withTransaction(ctx context.Context, fn func(repo *referenceRepo) error) error {
	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	err = fn(newReferenceRepo(tx))
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return errors.WithSecondaryError(errors.Wrap(err, "error rolling back transaction"), rbErr)
		}
		return err
	}

	return tx.Commit()
}
