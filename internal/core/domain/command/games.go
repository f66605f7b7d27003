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

const DefaultResultLimit = 10

type Games struct {
	catalog     port.Catalog
	textSender  port.TextSender
	command     string
	resultLimit int
}

func NewGames(catalog port.Catalog, textSender port.TextSender, command string, resultLimit int) *Games {
	if resultLimit <= 0 {
		resultLimit = DefaultResultLimit
	}
	return &Games{catalog: catalog, textSender: textSender, command: command, resultLimit: resultLimit}
}

func (h *Games) GetCommand() string {
	return h.command
}

func (h *Games) GetDescription() string {
	return "search for board games"
}

func (h *Games) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	query := strings.TrimSpace(message.Text)
	if query == "" {
		_ = h.textSender.NotifyAndReturnError(ctx,
			fmt.Errorf("usage: %s <query>", h.command), message)
		return nil
	}

	go h.textSender.SendChatAction(ctx, message.ChannelID, domain.Typing)

	results, err := h.catalog.SearchGames(ctx, query)
	if err != nil {
		l.Error().Err(err).Msg("search failed")
		return h.textSender.NotifyAndReturnError(ctx, userFacing(err), message)
	}

	if len(results) == 0 {
		_, err = h.textSender.SendMessageReply(ctx, message,
			fmt.Sprintf("no games found for %q", query))
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
			return err
		}
		return nil
	}

	_, err = h.textSender.SendMessageReply(ctx, message, renderGameList(results, h.resultLimit))
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return err
	}

	return nil
}
