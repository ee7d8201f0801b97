package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"volleyhub/internal/domain"
)

const (
	acceptPrefix  = "btn_organizer_accept_"
	declinePrefix = "btn_organizer_decline_"
)

func decisionID(prefix, eventID, userID string) string {
	return fmt.Sprintf("%s%s:%s", prefix, eventID, userID)
}

// parseDecisionID splits "btn_organizer_<verb>_<eventID>:<userID>".
func parseDecisionID(customID string) (accept bool, eventID, userID string, ok bool) {
	var rest string
	switch {
	case strings.HasPrefix(customID, acceptPrefix):
		accept, rest = true, strings.TrimPrefix(customID, acceptPrefix)
	case strings.HasPrefix(customID, declinePrefix):
		rest = strings.TrimPrefix(customID, declinePrefix)
	default:
		return false, "", "", false
	}
	eventID, userID, ok = strings.Cut(rest, ":")
	if !ok || eventID == "" || userID == "" {
		return false, "", "", false
	}
	return accept, eventID, userID, true
}

func organizerButtons(eventID, userID string, tr func(string) string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    tr("discord.button.accept"),
					Style:    discordgo.SuccessButton,
					CustomID: decisionID(acceptPrefix, eventID, userID),
				},
				discordgo.Button{
					Label:    tr("discord.button.decline"),
					Style:    discordgo.DangerButton,
					CustomID: decisionID(declinePrefix, eventID, userID),
				},
			},
		},
	}
}

// HandleOrganizerDecision accepts or declines an application from the DM buttons.
// Approval uses the capacity read just before the decision.
func (h *Handler) HandleOrganizerDecision(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := h.ctx()
	defer cancel()

	locale := interactionLocale(i)
	accept, eventID, applicantID, ok := parseDecisionID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}
	organizerID := interactionUserID(i)

	var err error
	if accept {
		ev, getErr := h.events.GetEvent(ctx, eventID)
		if getErr != nil {
			respondEphemeral(s, i.Interaction, h.tr.Error(locale, getErr))
			return
		}
		_, err = h.events.Approve(ctx, organizerID, eventID, applicantID, ev.FindNum)
	} else {
		_, err = h.events.Decline(ctx, organizerID, eventID, applicantID)
	}
	if err != nil {
		if domain.Code(err) == "" {
			log.Ctx(ctx).Error().Err(err).Str("event_id", eventID).Bool("accept", accept).Msg("❌ organizer decision")
		}
		respondEphemeral(s, i.Interaction, h.tr.Error(locale, err))
		return
	}

	key := "discord.organizer.declined"
	if accept {
		key = "discord.organizer.accepted"
	}
	// Replace the DM buttons so the decision cannot be clicked twice.
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    h.tr.T(locale, key, map[string]any{"UserID": applicantID}),
			Components: []discordgo.MessageComponent{},
		},
	})
}
