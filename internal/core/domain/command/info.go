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

const (
	BotName    = "deskbot"
	BotVersion = "1.2.0"
)

type Info struct {
	registry   port.CommandRegistry
	textSender port.TextSender
	command    string
}

func NewInfo(registry port.CommandRegistry, textSender port.TextSender, command string) *Info {
	return &Info{registry: registry, textSender: textSender, command: command}
}

func (h *Info) GetCommand() string {
	return h.command
}

func (h *Info) GetDescription() string {
	return "display bot information"
}

func (h *Info) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	log.Debug().
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("command", h.GetCommand()).
		Msg("handling request")

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%s %s — a bot for discovering board games\n", BotName, BotVersion)
	fmt.Fprintf(sb, "Commands: %s\n", strings.Join(h.registry.ListCommands(), ", "))
	sb.WriteString("Powered by the zatrolene-hry.cz catalog")

	_, err := h.textSender.SendMessageReply(ctx, message, sb.String())
	if err != nil {
		return err
	}

	return nil
}
