package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"volleyhub/internal/adapters/discord"
	"volleyhub/internal/adapters/httpapi"
	"volleyhub/internal/adapters/scheduler"
	"volleyhub/internal/application"
	"volleyhub/internal/bootstrap"
	"volleyhub/internal/config"
	"volleyhub/internal/infrastructure/broker"
	"volleyhub/internal/infrastructure/i18n"
	"volleyhub/internal/infrastructure/mq"
	"volleyhub/internal/infrastructure/obs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ invalid configuration")
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	shutdownTracer, err := obs.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint, cfg.Environment)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ tracer initialisation failed")
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn().Err(err).Msg("⚠️ tracer shutdown failed")
		}
	}()

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ storage initialisation failed")
	}
	defer storage.Close()

	hub := broker.NewHub()
	tr := i18n.NewTranslator(cfg.DefaultLocale)
	loc := cfg.Location()

	var notifiers application.Notifiers
	if cfg.RabbitURL != "" {
		pub, err := mq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ rabbitmq connection failed")
		}
		defer pub.Close()
		notifiers = append(notifiers, mq.NewNotifier(pub))
		log.Info().Str("exchange", cfg.RabbitExchange).Msg("✅ RabbitMQ publisher ready")
	}

	session, err := discordSession(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ discord session failed")
	}
	if session != nil {
		notifiers = append(notifiers, discord.NewNotifier(session, tr, cfg.DefaultLocale, loc))
	}

	events := application.NewEventService(storage.Tx, storage.Events, storage.Participations, hub, notifiers, loc)
	participations := application.NewParticipationService(storage.Participations, hub)
	feedback := application.NewFeedbackService(storage.Tx, storage.Events, storage.Feedback, hub, notifiers)
	closer := application.NewCloserService(storage.Events, hub, notifiers)

	if session != nil {
		bot := discord.NewBot(session, discord.NewHandler(events, tr, loc))
		if err := bot.Open(ctx); err != nil {
			log.Fatal().Err(err).Msg("❌ discord bot failed to start")
		}
		defer bot.Close()
	}

	go scheduler.NewCloser(closer, cfg.CloserInterval).Run(ctx)

	verifier, err := httpapi.NewJWTVerifier(ctx, cfg.JWTSecret, cfg.JWKSURL)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ token verifier failed")
	}
	defer verifier.Close()

	router := httpapi.SetupRoutes(httpapi.Services{
		Events:         events,
		Participations: participations,
		Feedback:       feedback,
	}, verifier, tr, httpapi.Options{
		ServiceName: cfg.ServiceName,
		CORSOrigins: cfg.CORSOrigins,
		Production:  cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("✅ HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("❌ HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("❌ HTTP shutdown failed")
	}
}

// discordSession returns nil when no bot token is configured.
func discordSession(cfg *config.Config) (*discordgo.Session, error) {
	if cfg.DiscordToken == "" {
		return nil, nil
	}
	return discord.NewSession(cfg.DiscordToken)
}
