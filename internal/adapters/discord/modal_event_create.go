package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/input"
	pkgdiscord "volleyhub/pkg/discord"
)

// parseHostForm turns the host modal values into a create command for organizerID.
func parseHostForm(organizerID string, values map[string]string) (input.CreateEventCommand, error) {
	duration, err := strconv.ParseFloat(strings.TrimSpace(values[fieldDuration]), 64)
	if err != nil {
		return input.CreateEventCommand{}, fmt.Errorf("%w: duration %q", domain.ErrInvalidSchedule, values[fieldDuration])
	}
	findNum, err := strconv.Atoi(strings.TrimSpace(values[fieldFindNum]))
	if err != nil {
		return input.CreateEventCommand{}, fmt.Errorf("%w: find_num %q", domain.ErrInvalidEvent, values[fieldFindNum])
	}
	return input.CreateEventCommand{
		OrganizerID:   organizerID,
		CourtName:     strings.TrimSpace(values[fieldCourt]),
		Date:          strings.TrimSpace(values[fieldDate]),
		StartTime:     strings.TrimSpace(values[fieldStart]),
		DurationHours: duration,
		FindNum:       findNum,
	}, nil
}

func (h *Handler) HandleHostModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := h.ctx()
	defer cancel()

	locale := interactionLocale(i)
	cmd, err := parseHostForm(interactionUserID(i), pkgdiscord.ModalValues(i.ModalSubmitData()))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.tr.Error(locale, err))
		return
	}
	event, err := h.events.CreateEvent(ctx, cmd)
	if err != nil {
		if domain.Code(err) == "" {
			log.Ctx(ctx).Error().Err(err).Msg("❌ create game from discord")
		}
		respondEphemeral(s, i.Interaction, h.tr.Error(locale, err))
		return
	}

	tr := h.translateFor(locale)
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: tr("discord.host.ok", map[string]any{
				"Court": event.Court.Name,
				"Start": pkgdiscord.FormatEventWindow(event.StartAt, event.EndAt, h.loc),
			}),
			Components: pkgdiscord.ApplyButtons([]entities.Event{*event}, tr),
		},
	})
}
