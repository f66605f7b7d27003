package handler

import (
	"context"
	"deskbot/internal/core/domain"
	"deskbot/internal/core/port"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRegistry struct {
	mock.Mock
	cmd port.Command
}

func (m *MockRegistry) Get(cmd string) (port.Command, error) {
	args := m.Called(cmd)
	return m.cmd, args.Error(1)
}

func (m *MockRegistry) Register(handler port.Command) {
	m.cmd = handler
	m.Called(handler)
}

func (m *MockRegistry) ListCommands() []string {
	m.Called()
	return []string{"foo", "bar"}
}

type MockCmdHandler struct {
	mock.Mock
}

func (m *MockCmdHandler) Respond(ctx context.Context, timeout time.Duration, msg *domain.Message) error {
	args := m.Called(ctx, timeout, msg)
	return args.Error(0)
}

func (m *MockCmdHandler) GetCommand() string {
	m.Called()
	return ""
}

func (m *MockCmdHandler) GetDescription() string {
	return ""
}

type PanicCmdHandler struct{}

func (p *PanicCmdHandler) Respond(_ context.Context, _ time.Duration, _ *domain.Message) error {
	panic("boom")
}

func (p *PanicCmdHandler) GetCommand() string     { return "" }
func (p *PanicCmdHandler) GetDescription() string { return "" }

type MockTextSender struct {
	mock.Mock
}

func (m *MockTextSender) SendMessageReply(ctx context.Context, message *domain.Message, text string) (string, error) {
	args := m.Called(ctx, message, text)
	return args.String(0), args.Error(1)
}

func (m *MockTextSender) SendChatAction(_ context.Context, _ string, _ domain.Action) {}

func (m *MockTextSender) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	m.Called(ctx, err, message)
	return err
}

func makeMessage(content string, bot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "m1",
			ChannelID: "c100",
			GuildID:   "g200",
			Content:   content,
			Author:    &discordgo.User{ID: "u300", Username: "bob", Bot: bot},
		},
	}
}

func TestCommand_Handle(t *testing.T) {
	type testcase struct {
		name       string
		message    *discordgo.MessageCreate
		mockSetup  func(r *MockRegistry, ch *MockCmdHandler)
		wantCalled bool
		wantMsg    *domain.Message
	}

	tests := []testcase{
		{
			name:    "message without prefix ignored",
			message: makeMessage("hello there", false),
			mockSetup: func(_ *MockRegistry, _ *MockCmdHandler) {
				// no call
			},
			wantCalled: false,
		},
		{
			name:    "bot-authored message ignored",
			message: makeMessage("!ping", true),
			mockSetup: func(_ *MockRegistry, _ *MockCmdHandler) {
				// no call
			},
			wantCalled: false,
		},
		{
			name:    "bare prefix ignored",
			message: makeMessage("!  ", false),
			mockSetup: func(_ *MockRegistry, _ *MockCmdHandler) {
				// no call
			},
			wantCalled: false,
		},
		{
			name:    "unknown command dropped silently",
			message: makeMessage("!frobnicate", false),
			mockSetup: func(r *MockRegistry, _ *MockCmdHandler) {
				r.On("Get", "frobnicate").Return(nil, errors.New("command not found"))
			},
			wantCalled: false,
		},
		{
			name:    "known command dispatched with parsed fields",
			message: makeMessage("!games catan seafarers", false),
			mockSetup: func(r *MockRegistry, ch *MockCmdHandler) {
				r.On("Get", "games").Return(ch, nil)
				ch.On("Respond", mock.Anything, mock.Anything,
					mock.AnythingOfType("*domain.Message")).Return(nil)
			},
			wantCalled: true,
			wantMsg: &domain.Message{
				ID:        "m1",
				ChannelID: "c100",
				GuildID:   "g200",
				Username:  "bob",
				Command:   "games",
				Text:      "catan seafarers",
			},
		},
		{
			name:    "command name matched case-insensitively",
			message: makeMessage("!PING", false),
			mockSetup: func(r *MockRegistry, ch *MockCmdHandler) {
				r.On("Get", "ping").Return(ch, nil)
				ch.On("Respond", mock.Anything, mock.Anything,
					mock.AnythingOfType("*domain.Message")).Return(nil)
			},
			wantCalled: true,
		},
		{
			name:    "handler error is swallowed",
			message: makeMessage("!games fail", false),
			mockSetup: func(r *MockRegistry, ch *MockCmdHandler) {
				r.On("Get", "games").Return(ch, nil)
				ch.On("Respond", mock.Anything, mock.Anything,
					mock.AnythingOfType("*domain.Message")).Return(errors.New("fail"))
			},
			wantCalled: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := new(MockRegistry)
			cmdHandler := new(MockCmdHandler)
			textSender := new(MockTextSender)
			reg.cmd = cmdHandler
			tc.mockSetup(reg, cmdHandler)

			ch := NewCommand(reg, textSender, "!", 3*time.Second)
			ch.Handle(nil, tc.message)

			// Respond runs in a goroutine, wait for finish
			time.Sleep(100 * time.Millisecond)

			reg.AssertExpectations(t)
			if tc.wantCalled {
				if tc.wantMsg != nil {
					cmdHandler.AssertCalled(t, "Respond",
						mock.Anything,
						mock.Anything,
						mock.MatchedBy(func(msg *domain.Message) bool {
							assert.Equal(t, tc.wantMsg, msg)
							return assert.ObjectsAreEqual(tc.wantMsg, msg)
						}),
					)
				} else {
					cmdHandler.AssertCalled(t, "Respond",
						mock.Anything,
						mock.Anything,
						mock.AnythingOfType("*domain.Message"),
					)
				}
			} else {
				assert.Empty(t, cmdHandler.Calls)
			}

			// silent policy: no replies from the dispatch layer itself
			assert.Empty(t, textSender.Calls)
		})
	}
}

func TestCommand_Handle_PanickingHandlerAnswersGenerically(t *testing.T) {
	reg := new(MockRegistry)
	textSender := new(MockTextSender)
	reg.cmd = &PanicCmdHandler{}
	reg.On("Get", "games").Return(reg.cmd, nil)

	textSender.On("NotifyAndReturnError", mock.Anything,
		mock.MatchedBy(func(err error) bool {
			return strings.Contains(err.Error(), "something went wrong")
		}),
		mock.AnythingOfType("*domain.Message"))

	ch := NewCommand(reg, textSender, "!", 3*time.Second)
	ch.Handle(nil, makeMessage("!games catan", false))

	time.Sleep(100 * time.Millisecond)

	textSender.AssertExpectations(t)
}
