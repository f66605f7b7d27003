package command

import (
	"context"
	"deskbot/internal/core/domain"
	"deskbot/internal/core/port"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Help struct {
	registry   port.CommandRegistry
	textSender port.TextSender
	command    string
}

func NewHelp(registry port.CommandRegistry, textSender port.TextSender, command string) *Help {
	return &Help{registry: registry, textSender: textSender, command: command}
}

func (h *Help) GetCommand() string {
	return h.command
}

func (h *Help) GetDescription() string {
	return "list all commands"
}

func (h *Help) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	log.Debug().
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("command", h.GetCommand()).
		Msg("handling request")

	sb := &strings.Builder{}
	sb.WriteString("available commands:\n")

	for _, name := range h.registry.ListCommands() {
		handler, err := h.registry.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(sb, "%s — %s\n", name, handler.GetDescription())
	}

	_, err := h.textSender.SendMessageReply(ctx, message, strings.TrimRight(sb.String(), "\n"))
	if err != nil {
		return err
	}

	return nil
}
