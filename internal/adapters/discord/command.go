package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	pkgdiscord "volleyhub/pkg/discord"
)

const (
	subGames = "games"
	subHost  = "host"

	hostModalID = "host_game_modal"

	fieldCourt    = "court"
	fieldDate     = "date"
	fieldStart    = "start"
	fieldDuration = "duration"
	fieldFindNum  = "find_num"
)

func (h *Handler) command() *discordgo.ApplicationCommand {
	tr := h.translateFor("")
	return &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: tr("discord.command.help", nil),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subGames, Description: tr("discord.command.games", nil)},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subHost, Description: tr("discord.command.host", nil)},
		},
	}
}

func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := i.ApplicationCommandData().Options
	if len(opts) > 0 && opts[0].Name == subHost {
		h.openHostModal(s, i)
		return
	}
	h.listGames(s, i)
}

func (h *Handler) listGames(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := h.ctx()
	defer cancel()

	locale := interactionLocale(i)
	events, err := h.events.ListUpcoming(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("❌ list upcoming games")
		respondEphemeral(s, i.Interaction, h.tr.Error(locale, err))
		return
	}
	tr := h.translateFor(locale)
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildUpcomingEmbed(events, tr, h.loc)},
			Components: pkgdiscord.ApplyButtons(events, tr),
		},
	})
}

func textRow(id, label, placeholder string, required bool) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{CustomID: id, Label: label, Style: discordgo.TextInputShort, Required: required, Placeholder: placeholder},
	}}
}

func (h *Handler) openHostModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	tr := h.translateFor(interactionLocale(i))
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: hostModalID,
			Title:    tr("discord.host.title", nil),
			Components: []discordgo.MessageComponent{
				textRow(fieldCourt, tr("discord.host.court", nil), "Riverside Gym", true),
				textRow(fieldDate, tr("discord.host.date", nil), "2026-02-15", true),
				textRow(fieldStart, tr("discord.host.start", nil), "18:30", true),
				textRow(fieldDuration, tr("discord.host.duration", nil), "2", true),
				textRow(fieldFindNum, tr("discord.host.find_num", nil), "4", true),
			},
		},
	})
}
