package command

import (
	"context"
	"deskbot/internal/core/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessageReply(ctx context.Context, message *domain.Message, text string) (string, error) {
	args := m.Called(ctx, message, text)
	return args.String(0), args.Error(1)
}

func (m *MockSender) SendChatAction(_ context.Context, _ string, _ domain.Action) {
	// mocked
}

func (m *MockSender) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	m.Called(ctx, err, message)
	return err
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) SearchGames(ctx context.Context, query string) ([]domain.GameSummary, error) {
	args := m.Called(ctx, query)
	games, _ := args.Get(0).([]domain.GameSummary)
	return games, args.Error(1)
}

func (m *MockCatalog) GetGameDetails(ctx context.Context, gameID string) (*domain.GameDetail, error) {
	args := m.Called(ctx, gameID)
	detail, _ := args.Get(0).(*domain.GameDetail)
	return detail, args.Error(1)
}

func (m *MockCatalog) GetCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *MockCatalog) GetGamesByCategory(ctx context.Context, categoryID string) ([]domain.GameSummary, error) {
	args := m.Called(ctx, categoryID)
	games, _ := args.Get(0).([]domain.GameSummary)
	return games, args.Error(1)
}

func (m *MockCatalog) GetPopularGames(ctx context.Context) ([]domain.GameSummary, error) {
	args := m.Called(ctx)
	games, _ := args.Get(0).([]domain.GameSummary)
	return games, args.Error(1)
}

type MockResponder struct {
	command     string
	description string
}

func (m *MockResponder) Respond(_ context.Context, _ time.Duration, _ *domain.Message) error {
	return nil
}

func (m *MockResponder) GetCommand() string {
	return m.command
}

func (m *MockResponder) GetDescription() string {
	return m.description
}
