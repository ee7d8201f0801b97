package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"volleyhub/internal/domain/entities"
)

func echo(key string, _ map[string]any) string { return key }

func TestFormatEventWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	if got := FormatEventWindow(start, start.Add(2*time.Hour), time.UTC); got != "01/01/2024 14:00-16:00" {
		t.Errorf("same day = %q", got)
	}
	late := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	if got := FormatEventWindow(late, late.Add(2*time.Hour), nil); got != "01/01/2024 23:00 - 02/01/2024 01:00" {
		t.Errorf("overnight = %q", got)
	}
	if FormatEventWindow(time.Time{}, start, nil) != "" {
		t.Error("zero start should render empty")
	}
}

func TestBuildUpcomingEmbed(t *testing.T) {
	empty := BuildUpcomingEmbed(nil, echo, time.UTC)
	if empty.Description != "discord.upcoming.empty" || len(empty.Fields) != 0 {
		t.Fatalf("empty embed = %+v", empty)
	}

	start := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	events := make([]entities.Event, 30)
	for i := range events {
		events[i] = entities.Event{ID: "e", Court: entities.Court{Name: "Gym"}, StartAt: start, EndAt: start.Add(time.Hour), FindNum: 1}
	}
	embed := BuildUpcomingEmbed(events, echo, time.UTC)
	if len(embed.Fields) != maxListed {
		t.Fatalf("fields = %d, want %d", len(embed.Fields), maxListed)
	}
	if !strings.Contains(embed.Fields[0].Name, "Gym") {
		t.Fatalf("field name = %q", embed.Fields[0].Name)
	}
}

func TestApplyButtonsSkipsFullGames(t *testing.T) {
	events := []entities.Event{
		{ID: "a", FindNum: 2},
		{ID: "b", FindNum: 0},
		{ID: "c", FindNum: 1},
	}
	rows := ApplyButtons(events, echo)
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	buttons := rows[0].(discordgo.ActionsRow).Components
	if len(buttons) != 2 {
		t.Fatalf("buttons = %d, want 2", len(buttons))
	}
	if id := buttons[1].(discordgo.Button).CustomID; id != ApplyButtonPrefix+"c" {
		t.Fatalf("custom id = %q", id)
	}
}

func TestModalValues(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "court", Value: "Riverside Gym"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "date", Value: "2024-01-01"},
			}},
		},
	}
	got := ModalValues(data)
	if got["court"] != "Riverside Gym" || got["date"] != "2024-01-01" {
		t.Fatalf("values = %v", got)
	}
}
