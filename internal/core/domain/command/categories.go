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

type Categories struct {
	catalog    port.Catalog
	textSender port.TextSender
	command    string
}

func NewCategories(catalog port.Catalog, textSender port.TextSender, command string) *Categories {
	return &Categories{catalog: catalog, textSender: textSender, command: command}
}

func (h *Categories) GetCommand() string {
	return h.command
}

func (h *Categories) GetDescription() string {
	return "list available game categories"
}

func (h *Categories) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	go h.textSender.SendChatAction(ctx, message.ChannelID, domain.Typing)

	categories, err := h.catalog.GetCategories(ctx)
	if err != nil {
		l.Error().Err(err).Msg("category listing failed")
		return h.textSender.NotifyAndReturnError(ctx, userFacing(err), message)
	}

	if len(categories) == 0 {
		_, err = h.textSender.SendMessageReply(ctx, message, "no categories available")
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
			return err
		}
		return nil
	}

	sb := &strings.Builder{}
	for _, category := range categories {
		fmt.Fprintf(sb, "• %s (id %s)\n", category.Name, category.ID)
	}

	_, err = h.textSender.SendMessageReply(ctx, message, strings.TrimRight(sb.String(), "\n"))
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return err
	}

	return nil
}
