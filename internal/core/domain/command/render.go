package command

import (
	"deskbot/internal/core/domain"
	"errors"
	"fmt"
	"strings"
)

// GenericFailure is the fallback reply when a handler fails in a way that has
// no specific wording.
const GenericFailure = "something went wrong handling that command"

const (
	msgNetworkFailure = "can't reach the game service right now, try again later"
	msgTimeout        = "the game service took too long to respond, try again"
	msgNotFound       = "couldn't find that in the game catalog"
	msgRateLimited    = "the game service is rate limiting us, give it a moment"
	msgUpstream       = "the game service is having trouble, try again later"
	msgMalformed      = "the game service returned something unexpected"
	msgGeneric        = GenericFailure
)

// userFacing translates a catalog failure into an error whose text is safe to
// show to the user. Raw status codes and transport errors never pass through.
func userFacing(err error) error {
	apiErr, ok := domain.AsAPIError(err)
	if !ok {
		return errors.New(msgGeneric)
	}

	switch apiErr.Kind {
	case domain.KindNetworkFailure:
		return errors.New(msgNetworkFailure)
	case domain.KindTimeout:
		return errors.New(msgTimeout)
	case domain.KindNotFound:
		return errors.New(msgNotFound)
	case domain.KindRateLimited:
		return errors.New(msgRateLimited)
	case domain.KindUpstreamUnavailable, domain.KindUpstreamError:
		return errors.New(msgUpstream)
	case domain.KindMalformedResponse:
		return errors.New(msgMalformed)
	default:
		return errors.New(msgGeneric)
	}
}

// renderGameList returns a numbered list capped at limit entries, with a
// "+K more" suffix when results were cut off.
func renderGameList(games []domain.GameSummary, limit int) string {
	sb := &strings.Builder{}

	shown := len(games)
	if shown > limit {
		shown = limit
	}

	for i, game := range games[:shown] {
		fmt.Fprintf(sb, "%d. %s (id %s)", i+1, game.Name, game.ID)
		if game.Category != "" {
			fmt.Fprintf(sb, " — %s", game.Category)
		}
		sb.WriteString("\n")
	}

	if rest := len(games) - shown; rest > 0 {
		fmt.Fprintf(sb, "+%d more", rest)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderGameDetail prints the name followed by one line per populated field.
// Absent optional fields are omitted entirely.
func renderGameDetail(game *domain.GameDetail) string {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "%s (id %s)\n", game.Name, game.ID)

	if game.Category != "" {
		fmt.Fprintf(sb, "Category: %s\n", game.Category)
	}

	switch {
	case game.MinPlayers > 0 && game.MaxPlayers > game.MinPlayers:
		fmt.Fprintf(sb, "Players: %d-%d\n", game.MinPlayers, game.MaxPlayers)
	case game.MinPlayers > 0:
		fmt.Fprintf(sb, "Players: %d\n", game.MinPlayers)
	}

	if game.Playtime != "" {
		fmt.Fprintf(sb, "Playtime: %s\n", game.Playtime)
	}

	if game.Rating > 0 {
		fmt.Fprintf(sb, "Rating: %.1f\n", game.Rating)
	}

	if game.Year > 0 {
		fmt.Fprintf(sb, "Year: %d\n", game.Year)
	}

	if game.Description != "" {
		fmt.Fprintf(sb, "%s\n", game.Description)
	}

	if game.ImageURL != "" {
		fmt.Fprintf(sb, "%s\n", game.ImageURL)
	}

	return strings.TrimRight(sb.String(), "\n")
}
