package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"volleyhub/internal/domain/entities"
)

const (
	embedColor = 0xF5A623
	// Discord caps embeds at 25 fields and messages at 5 rows of 5 buttons.
	maxListed     = 25
	buttonsPerRow = 5

	ApplyButtonPrefix = "btn_apply_"
)

// Translate renders an i18n key with optional template data.
type Translate func(key string, data map[string]any) string

func listed(events []entities.Event) []entities.Event {
	if len(events) > maxListed {
		return events[:maxListed]
	}
	return events
}

func describeEvent(e entities.Event, tr Translate) string {
	var b strings.Builder
	b.WriteString(tr("discord.upcoming.slots", map[string]any{
		"FindNum":     e.FindNum,
		"AverageCost": e.AverageCost,
	}))
	if e.SkillLevel != "" {
		b.WriteString("\n" + tr("discord.upcoming.level", map[string]any{"Level": e.SkillLevel}))
	}
	if e.Court.Address != "" {
		b.WriteString("\n📍 " + e.Court.Address)
	}
	b.WriteString(fmt.Sprintf("\n👤 <@%s>", e.CreatorID))
	return b.String()
}

// BuildUpcomingEmbed lists upcoming games, one field per game.
func BuildUpcomingEmbed(events []entities.Event, tr Translate, loc *time.Location) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🏐 " + tr("discord.upcoming.title", nil),
		Color: embedColor,
	}
	if len(events) == 0 {
		embed.Description = tr("discord.upcoming.empty", nil)
		return embed
	}
	for _, e := range listed(events) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s · %s", e.Court.Name, FormatEventWindow(e.StartAt, e.EndAt, loc)),
			Value: describeEvent(e, tr),
		})
	}
	return embed
}

// ApplyButtons returns one Apply button per listed game that still has open slots.
func ApplyButtons(events []entities.Event, tr Translate) []discordgo.MessageComponent {
	label := tr("discord.button.apply", nil)
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent
	for _, e := range listed(events) {
		if e.FindNum <= 0 {
			continue
		}
		row = append(row, discordgo.Button{
			Label:    truncate(label+" · "+e.Court.Name, 80),
			Style:    discordgo.PrimaryButton,
			CustomID: ApplyButtonPrefix + e.ID,
		})
		if len(row) == buttonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}
	return rows
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
