package port

import (
	"context"
	"deskbot/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends a reply to the message's channel, referencing the
	// triggering message, and returns the sent message ID.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) (string, error)
	// SendChatAction signals activity (e.g. typing) in a channel until the context is done.
	SendChatAction(ctx context.Context, channelID string, action domain.Action)
	// NotifyAndReturnError sends the user-facing wording for an error and returns the error.
	NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error
}
