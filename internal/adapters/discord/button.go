package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"volleyhub/internal/domain"
	pkgdiscord "volleyhub/pkg/discord"
)

const applyPrefix = pkgdiscord.ApplyButtonPrefix

// HandleApply applies the clicking user to the game behind the button.
func (h *Handler) HandleApply(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := h.ctx()
	defer cancel()

	locale := interactionLocale(i)
	eventID := strings.TrimPrefix(i.MessageComponentData().CustomID, applyPrefix)
	userID := interactionUserID(i)

	if _, err := h.events.ApplyToEvent(ctx, eventID, userID); err != nil {
		if domain.Code(err) == "" {
			log.Ctx(ctx).Error().Err(err).Str("event_id", eventID).Msg("❌ apply from discord")
		}
		respondEphemeral(s, i.Interaction, h.tr.Error(locale, err))
		return
	}
	respondEphemeral(s, i.Interaction, h.tr.T(locale, "discord.apply.ok", nil))
}
