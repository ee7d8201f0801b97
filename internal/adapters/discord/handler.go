package discord

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"volleyhub/internal/ports/input"
	pkgdiscord "volleyhub/pkg/discord"
)

type translator interface {
	T(locale, key string, data map[string]any) string
	Error(locale string, err error) string
}

// Handler handles Discord interactions using use cases.
type Handler struct {
	events input.EventUseCase
	tr     translator
	loc    *time.Location
}

func NewHandler(events input.EventUseCase, tr translator, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{events: events, tr: tr, loc: loc}
}

func (h *Handler) translateFor(locale string) pkgdiscord.Translate {
	return func(key string, data map[string]any) string {
		return h.tr.T(locale, key, data)
	}
}

// ctx carries the global logger so use cases can log through log.Ctx.
func (h *Handler) ctx() (context.Context, context.CancelFunc) {
	ctx := log.With().Str("adapter", "discord").Logger().WithContext(context.Background())
	return context.WithTimeout(ctx, 10*time.Second)
}
