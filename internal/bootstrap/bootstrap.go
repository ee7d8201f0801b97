// Package bootstrap holds the wiring shared by the server and closer binaries.
package bootstrap

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"volleyhub/internal/config"
	"volleyhub/internal/infrastructure/database"
	"volleyhub/internal/infrastructure/database/sqlc_generated"
	"volleyhub/internal/infrastructure/memstore"
	"volleyhub/internal/ports/output"
)

// SetupLogger configures the global zerolog logger: console output outside
// production, JSON otherwise.
func SetupLogger(cfg *config.Config) {
	zerolog.SetGlobalLevel(cfg.Level())
	zerolog.TimeFieldFormat = time.RFC3339
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	log.Logger = log.With().Str("service", cfg.ServiceName).Logger()
	zerolog.DefaultContextLogger = &log.Logger
}

// Storage bundles the output ports backed by one store.
type Storage struct {
	Tx             output.TxManager
	Events         output.EventRepository
	Participations output.ParticipationRepository
	Feedback       output.FeedbackRepository
	Close          func()
}

// OpenStorage connects to Postgres (running migrations first) or builds an
// in-memory store, depending on cfg.Storage.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.Storage == config.StorageMemory {
		store := memstore.New()
		log.Ctx(ctx).Warn().Msg("⚠️ using in-memory storage, data is lost on restart")
		return &Storage{
			Tx:             store,
			Events:         store.Events(),
			Participations: store.Participations(),
			Feedback:       store.Feedback(),
			Close:          func() {},
		}, nil
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	q := sqlc_generated.New(pool)
	return &Storage{
		Tx:             database.NewTxManager(pool),
		Events:         database.NewEventRepository(q),
		Participations: database.NewParticipationRepository(q),
		Feedback:       database.NewFeedbackRepository(q),
		Close:          pool.Close,
	}, nil
}
