package command

import (
	"context"
	"deskbot/internal/core/domain"
	"deskbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type Ping struct {
	textSender port.TextSender
	command    string
}

func NewPing(textSender port.TextSender, command string) *Ping {
	return &Ping{textSender: textSender, command: command}
}

func (h *Ping) GetCommand() string {
	return h.command
}

func (h *Ping) GetDescription() string {
	return "check if the bot is responsive"
}

func (h *Ping) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	log.Debug().
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("command", h.GetCommand()).
		Msg("handling request")

	_, err := h.textSender.SendMessageReply(ctx, message, "pong!")
	if err != nil {
		return err
	}

	return nil
}
