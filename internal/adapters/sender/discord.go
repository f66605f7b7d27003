package sender

import (
	"context"
	"deskbot/internal/core/domain"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// DiscordMessageLimit is the platform's per-message character cap.
const DiscordMessageLimit = 2000

const chatActionRepeat = 5 * time.Second

// DiscordSession is the slice of *discordgo.Session the sender needs.
type DiscordSession interface {
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
}

type DiscordSender struct {
	session DiscordSession
}

func NewDiscordSender(session DiscordSession) *DiscordSender {
	return &DiscordSender{session: session}
}

func (s *DiscordSender) SendMessageReply(ctx context.Context, message *domain.Message, text string) (string, error) {
	sent, err := s.session.ChannelMessageSendReply(
		message.ChannelID,
		truncate(text, DiscordMessageLimit),
		&discordgo.MessageReference{
			MessageID: message.ID,
			ChannelID: message.ChannelID,
			GuildID:   message.GuildID,
		},
		discordgo.WithContext(ctx),
	)
	if err != nil {
		log.Error().Err(err).Str("channelId", message.ChannelID).Msg("failed to send reply")
		return "", err
	}

	return sent.ID, nil
}

func (s *DiscordSender) SendChatAction(ctx context.Context, channelID string, _ domain.Action) {
	log.Debug().Str("channelId", channelID).Msg("starting action routine")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("channelId", channelID).Msg("done, stopping action routine")
			return
		default:
		}

		err := s.session.ChannelTyping(channelID, discordgo.WithContext(ctx))
		if err != nil {
			log.Err(err).Msg("error sending typing indicator")
			return
		}

		time.Sleep(chatActionRepeat)
	}
}

func (s *DiscordSender) NotifyAndReturnError(ctx context.Context, notifyErr error, message *domain.Message) error {
	_, err := s.SendMessageReply(ctx, message, notifyErr.Error())
	if err != nil {
		log.Error().Err(err).Msg("failed to notify user about error")
	}

	return notifyErr
}

// truncate caps text at limit runes, marking the cut with an ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit-1]) + "…"
}
