package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"volleyhub/internal/ports/output"
	pkgdiscord "volleyhub/pkg/discord"
)

var _ output.Notifier = (*Notifier)(nil)

type dmSender interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier delivers notifications as direct messages: new applications go to
// the organizer with Accept/Decline buttons, decisions and feedback go to the
// player.
type Notifier struct {
	dm     dmSender
	tr     translator
	locale string
	loc    *time.Location
}

func NewNotifier(dm dmSender, tr translator, locale string, loc *time.Location) *Notifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Notifier{dm: dm, tr: tr, locale: locale, loc: loc}
}

func (n *Notifier) Notify(_ context.Context, note output.Notification) error {
	data := map[string]any{
		"UserID": note.UserID,
		"Court":  note.CourtName,
		"Start":  pkgdiscord.FormatEventDateTime(note.StartAt, n.loc),
	}
	switch note.Kind {
	case output.NotifyApplied:
		tr := func(key string) string { return n.tr.T(n.locale, key, nil) }
		return n.send(note.OrganizerID, &discordgo.MessageSend{
			Content:    n.tr.T(n.locale, "discord.organizer.new_application", data),
			Components: organizerButtons(note.EventID, note.UserID, tr),
		})
	case output.NotifyAccepted:
		return n.send(note.UserID, &discordgo.MessageSend{Content: "🎉 " + n.tr.T(n.locale, "discord.notify.accepted", data)})
	case output.NotifyDeclined:
		return n.send(note.UserID, &discordgo.MessageSend{Content: n.tr.T(n.locale, "discord.notify.declined", data)})
	case output.NotifyFeedbackSubmitted:
		return n.send(note.UserID, &discordgo.MessageSend{Content: n.tr.T(n.locale, "discord.notify.feedback", data)})
	}
	return nil
}

func (n *Notifier) send(userID string, msg *discordgo.MessageSend) error {
	if userID == "" {
		return nil
	}
	ch, err := n.dm.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("create DM channel: %w", err)
	}
	if ch == nil {
		return errors.New("create DM channel: no channel returned")
	}
	if _, err := n.dm.ChannelMessageSendComplex(ch.ID, msg); err != nil {
		return fmt.Errorf("send DM: %w", err)
	}
	return nil
}
