package port

import (
	"context"
	"deskbot/internal/core/domain"
)

// Catalog is the outbound port to the board-game catalog service. Every method
// returns either a payload or a *domain.APIError, never both.
type Catalog interface {
	SearchGames(ctx context.Context, query string) ([]domain.GameSummary, error)
	GetGameDetails(ctx context.Context, gameID string) (*domain.GameDetail, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetGamesByCategory(ctx context.Context, categoryID string) ([]domain.GameSummary, error)
	GetPopularGames(ctx context.Context) ([]domain.GameSummary, error)
}
