// Command closer runs one expired-event sweep and exits. It is meant for an
// external time-based trigger such as a cron job.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"volleyhub/internal/application"
	"volleyhub/internal/bootstrap"
	"volleyhub/internal/config"
	"volleyhub/internal/infrastructure/broker"
	"volleyhub/internal/infrastructure/mq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ invalid configuration")
	}
	bootstrap.SetupLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ storage initialisation failed")
	}
	defer storage.Close()

	var notifiers application.Notifiers
	if cfg.RabbitURL != "" {
		pub, err := mq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Error().Err(err).Msg("❌ rabbitmq connection failed, closing without notifications")
		} else {
			defer pub.Close()
			notifiers = append(notifiers, mq.NewNotifier(pub))
		}
	}

	closed, err := application.NewCloserService(storage.Events, broker.NewHub(), notifiers).CloseExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("❌ close expired events failed")
		storage.Close()
		os.Exit(1)
	}
	log.Info().Int("closed", closed).Msg("✅ sweep done")
}
