package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/data"
	"github.com/diegoclair/fractal-rotation-bot/internal/config"
	"github.com/diegoclair/fractal-rotation-bot/internal/database"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/service"
	"github.com/diegoclair/fractal-rotation-bot/internal/joke"
	"github.com/diegoclair/fractal-rotation-bot/internal/refdata"
	"github.com/diegoclair/fractal-rotation-bot/internal/webhook"
	"github.com/diegoclair/fractal-rotation-bot/migrator/sqlite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds what every command needs: configuration, logger and, once
// opened, the database.
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *database.DB
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = newLogger(cfg)
	if err != nil {
		return err
	}

	return nil
}

// close is safe to call more than once.
func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error("failed to close database", zap.Error(err))
		}
		a.db = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid LOG_LEVEL %q", cfg.LogLevel)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// openDatabase opens the SQLite store and runs the migrations.
func (a *app) openDatabase() (*database.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	db, err := database.New(a.cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	a.log.Info("running migrations", zap.String("path", a.cfg.DatabasePath))
	if err := sqlite.Migrate(db.DB()); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			a.log.Error("failed to close database", zap.Error(closeErr))
		}
		return nil, err
	}

	a.db = db
	return db, nil
}

// jsonRepo reads the JSON tables from DATA_DIR, or the embedded ones.
func (a *app) jsonRepo() contract.ReferenceRepo {
	if a.cfg.DataDir != "" {
		return refdata.NewJSONRepo(os.DirFS(a.cfg.DataDir))
	}
	return refdata.NewJSONRepo(data.Files)
}

func (a *app) referenceRepo() (contract.ReferenceRepo, error) {
	if a.cfg.DataSource == config.DataSourceSQLite {
		db, err := a.openDatabase()
		if err != nil {
			return nil, err
		}
		return database.NewReferenceStore(db), nil
	}
	return a.jsonRepo(), nil
}

// services loads the reference tables and wires the domain services.
func (a *app) services(ctx context.Context, clock func() time.Time, skipJoke bool) (*service.Services, error) {
	repo, err := a.referenceRepo()
	if err != nil {
		return nil, err
	}

	ref, err := repo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reference data")
	}
	a.log.Debug("reference data loaded",
		zap.String("source", a.cfg.DataSource),
		zap.Int("fractals", len(ref.Fractals)),
		zap.Int("instabilities", len(ref.Instabilities)),
	)

	httpClient := &http.Client{Timeout: a.cfg.HTTPTimeout}

	return service.New(service.Params{
		Reference:      ref,
		Classification: a.cfg.Classification(),
		Announcer: service.AnnouncerConfig{
			WebhookURL:  a.cfg.WebhookURL,
			RoleID:      a.cfg.RoleID,
			NamedEffect: a.cfg.NamedEffect,
			SkipJoke:    skipJoke,
		},
		Jokes:    joke.New(a.cfg.JokeAPIURL, httpClient),
		Notifier: webhook.New(a.cfg.WebhookUsername, httpClient),
		Clock:    clock,
		Logger:   a.log,
	}), nil
}
