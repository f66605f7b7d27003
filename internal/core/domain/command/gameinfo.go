package command

import (
	"context"
	"deskbot/internal/core/domain"
	"deskbot/internal/core/port"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// IDParser validates a raw gameinfo argument and returns the canonical
// identifier to query the catalog with.
type IDParser func(raw string) (string, error)

// ParseNumericID accepts positive integer identifiers, the catalog's canonical
// ID format.
func ParseNumericID(raw string) (string, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return "", fmt.Errorf("not a valid game id: %q", raw)
	}
	return strconv.Itoa(id), nil
}

type GameInfo struct {
	catalog    port.Catalog
	textSender port.TextSender
	parseID    IDParser
	command    string
}

func NewGameInfo(catalog port.Catalog, textSender port.TextSender, parseID IDParser, command string) *GameInfo {
	if parseID == nil {
		parseID = ParseNumericID
	}
	return &GameInfo{catalog: catalog, textSender: textSender, parseID: parseID, command: command}
}

func (h *GameInfo) GetCommand() string {
	return h.command
}

func (h *GameInfo) GetDescription() string {
	return "get detailed information about a game"
}

func (h *GameInfo) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	gameID, err := h.parseID(strings.TrimSpace(message.Text))
	if err != nil {
		_ = h.textSender.NotifyAndReturnError(ctx,
			fmt.Errorf("usage: %s <game id>", h.command), message)
		return nil
	}

	go h.textSender.SendChatAction(ctx, message.ChannelID, domain.Typing)

	game, err := h.catalog.GetGameDetails(ctx, gameID)
	if err != nil {
		if apiErr, ok := domain.AsAPIError(err); ok && apiErr.Kind == domain.KindNotFound {
			_, err = h.textSender.SendMessageReply(ctx, message,
				fmt.Sprintf("game with id %s not found", gameID))
			if err != nil {
				l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
				return err
			}
			return nil
		}

		l.Error().Err(err).Msg("detail lookup failed")
		return h.textSender.NotifyAndReturnError(ctx, userFacing(err), message)
	}

	if game == nil {
		return h.textSender.NotifyAndReturnError(ctx, errors.New(msgGeneric), message)
	}

	_, err = h.textSender.SendMessageReply(ctx, message, renderGameDetail(game))
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return err
	}

	return nil
}
