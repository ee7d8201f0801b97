package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const commandName = "volley"

// Bot is the Discord adapter.
type Bot struct {
	session  *discordgo.Session
	handler  *Handler
	commands []*discordgo.ApplicationCommand
}

// NewSession opens nothing yet; it only validates the token format.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages
	return s, nil
}

func NewBot(session *discordgo.Session, handler *Handler) *Bot {
	b := &Bot{session: session, handler: handler}
	b.session.AddHandler(b.handleInteraction)
	return b
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == commandName {
			b.handler.HandleCommand(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == hostModalID {
			b.handler.HandleHostModalSubmit(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case strings.HasPrefix(customID, applyPrefix):
			b.handler.HandleApply(s, i)
		case strings.HasPrefix(customID, acceptPrefix), strings.HasPrefix(customID, declinePrefix):
			b.handler.HandleOrganizerDecision(s, i)
		}
	}
}

// Open connects the gateway and registers the slash command globally.
func (b *Bot) Open(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	cmd := b.handler.command()
	created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("command", cmd.Name).Msg("⚠️ slash command registration failed")
	} else {
		b.commands = append(b.commands, created)
	}
	log.Ctx(ctx).Info().Str("user", b.session.State.User.Username).Msg("🤖 Discord bot online")
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}
