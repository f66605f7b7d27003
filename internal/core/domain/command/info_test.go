package command

import (
	"context"
	"deskbot/internal/core/domain"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInfo_Respond(t *testing.T) {
	registry := &Registry{}
	registry.Register(&MockResponder{command: "ping"})
	registry.Register(&MockResponder{command: "games"})

	mockSender := new(MockSender)
	infoCmd := NewInfo(registry, mockSender, "info")

	msg := &domain.Message{ID: "123", ChannelID: "456"}

	mockSender.On("SendMessageReply", mock.Anything, msg,
		mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, BotName) &&
				strings.Contains(text, BotVersion) &&
				strings.Contains(text, "games, ping") &&
				strings.Contains(text, "zatrolene-hry.cz")
		})).
		Return("1", nil)

	err := infoCmd.Respond(context.Background(), time.Second, msg)
	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}
