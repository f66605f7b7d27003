package handler

import (
	"context"
	"deskbot/internal/core/domain"
	"deskbot/internal/core/domain/command"
	"deskbot/internal/core/port"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Command routes inbound messages to registered command handlers. Messages
// without the prefix, bot-authored messages, and unrecognized commands are
// dropped without a reply.
type Command struct {
	registry   port.CommandRegistry
	textSender port.TextSender
	prefix     string
	timeout    time.Duration
}

func NewCommand(registry port.CommandRegistry, textSender port.TextSender, prefix string,
	timeout time.Duration) *Command {
	return &Command{registry: registry, textSender: textSender, prefix: prefix, timeout: timeout}
}

// Handle is the discordgo MessageCreate callback.
func (c *Command) Handle(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	stripped, ok := strings.CutPrefix(m.Content, c.prefix)
	if !ok {
		return
	}

	log.Debug().Str("message", m.Content).Msg("received command")

	cmd := command.ParseCommand(stripped)
	if cmd == "" {
		return
	}

	commandHandler, err := c.registry.Get(cmd)
	if err != nil {
		// unrelated chat traffic that happens to start with the prefix
		log.Debug().Str("command", cmd).Msg("no handler for command")
		return
	}

	msg := &domain.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Username:  m.Author.Username,
		Command:   cmd,
		Text:      command.ParseCommandArgs(stripped),
	}

	go c.respond(commandHandler, msg)
}

func (c *Command) respond(commandHandler port.Command, msg *domain.Message) {
	dispatchID, _ := uuid.NewV4()

	l := log.With().
		Str("dispatchId", dispatchID.String()).
		Str("command", msg.Command).
		Str("channelId", msg.ChannelID).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			l.Error().Interface("panic", r).Msg("command handler panicked")
			_ = c.textSender.NotifyAndReturnError(context.Background(),
				errors.New(command.GenericFailure), msg)
		}
	}()

	if err := commandHandler.Respond(context.Background(), c.timeout, msg); err != nil {
		l.Err(err).Msg("failed to respond to command")
	}
}
