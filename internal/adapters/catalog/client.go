package catalog

import (
	"bytes"
	"context"
	"deskbot/internal/core/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultTimeout = 10 * time.Second

// Client talks to the zatrolene-hry.cz catalog API. Every call issues exactly
// one request; failures come back as *domain.APIError.
type Client struct {
	baseURL string
	apiKey  string
	httpC   *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpC:   &http.Client{Timeout: DefaultTimeout},
	}
}

type gameResponse struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	MinPlayers  int         `json:"min_players"`
	MaxPlayers  int         `json:"max_players"`
	Playtime    string      `json:"playtime"`
	Rating      float64     `json:"rating"`
	Year        int         `json:"year"`
	ImageURL    string      `json:"image_url"`
}

type categoryResponse struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

func (c *Client) SearchGames(ctx context.Context, query string) ([]domain.GameSummary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &domain.APIError{Kind: domain.KindInvalidArgument, Err: domain.ErrEmptyQuery}
	}

	params := url.Values{}
	params.Set("query", query)

	body, err := c.getJSON(ctx, "games/search", params)
	if err != nil {
		return nil, err
	}

	return decodeGameList(body)
}

func (c *Client) GetGameDetails(ctx context.Context, gameID string) (*domain.GameDetail, error) {
	body, err := c.getJSON(ctx, "games/"+url.PathEscape(gameID), nil)
	if err != nil {
		return nil, err
	}

	raw, err := unwrapObject(body, "game", "data")
	if err != nil {
		return nil, &domain.APIError{Kind: domain.KindMalformedResponse, Err: err}
	}

	var resp gameResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &domain.APIError{Kind: domain.KindMalformedResponse, Err: err}
	}

	if resp.Name == "" {
		return nil, &domain.APIError{Kind: domain.KindMalformedResponse,
			Err: errors.New("game detail missing name")}
	}

	detail := &domain.GameDetail{
		GameSummary: toGameSummary(resp),
		MinPlayers:  resp.MinPlayers,
		MaxPlayers:  resp.MaxPlayers,
		Playtime:    resp.Playtime,
		Rating:      resp.Rating,
		Year:        resp.Year,
		ImageURL:    resp.ImageURL,
	}

	return detail, nil
}

func (c *Client) GetCategories(ctx context.Context) ([]domain.Category, error) {
	body, err := c.getJSON(ctx, "categories", nil)
	if err != nil {
		return nil, err
	}

	raw, uErr := unwrapList(body, "categories", "data", "results", "items")
	if uErr != nil {
		return nil, &domain.APIError{Kind: domain.KindMalformedResponse, Err: uErr}
	}

	var resp []categoryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &domain.APIError{Kind: domain.KindMalformedResponse, Err: err}
	}

	categories := make([]domain.Category, 0, len(resp))
	for _, category := range resp {
		categories = append(categories, domain.Category{
			ID:   category.ID.String(),
			Name: category.Name,
		})
	}

	return categories, nil
}

func (c *Client) GetGamesByCategory(ctx context.Context, categoryID string) ([]domain.GameSummary, error) {
	body, err := c.getJSON(ctx, "categories/"+url.PathEscape(categoryID)+"/games", nil)
	if err != nil {
		return nil, err
	}

	return decodeGameList(body)
}

func (c *Client) GetPopularGames(ctx context.Context) ([]domain.GameSummary, error) {
	body, err := c.getJSON(ctx, "games/popular", nil)
	if err != nil {
		return nil, err
	}

	return decodeGameList(body)
}

// getJSON issues a single GET and maps transport and status failures to the
// APIError taxonomy. A nil error means a 2xx response.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + "/" + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("error creating catalog request")
		return nil, &domain.APIError{Kind: domain.KindNetworkFailure, Err: err}
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpC.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer res.Body.Close()

	if apiErr := classifyStatus(res.StatusCode); apiErr != nil {
		log.Debug().Int("status", res.StatusCode).Str("endpoint", endpoint).
			Msg("catalog request failed")
		return nil, apiErr
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &domain.APIError{Kind: domain.KindNetworkFailure,
			Err: fmt.Errorf("error reading catalog response: %w", err)}
	}

	return body, nil
}

func classifyTransport(err error) *domain.APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.APIError{Kind: domain.KindTimeout, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &domain.APIError{Kind: domain.KindTimeout, Err: err}
	}

	return &domain.APIError{Kind: domain.KindNetworkFailure, Err: err}
}

func classifyStatus(status int) *domain.APIError {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return &domain.APIError{Kind: domain.KindNotFound, StatusCode: status}
	case status == http.StatusTooManyRequests:
		return &domain.APIError{Kind: domain.KindRateLimited, StatusCode: status}
	case status >= 500:
		return &domain.APIError{Kind: domain.KindUpstreamUnavailable, StatusCode: status}
	default:
		return &domain.APIError{Kind: domain.KindUpstreamError, StatusCode: status}
	}
}

func decodeGameList(body []byte) ([]domain.GameSummary, error) {
	raw, err := unwrapList(body, "games", "data", "results", "items")
	if err != nil {
		return nil, &domain.APIError{Kind: domain.KindMalformedResponse, Err: err}
	}

	var resp []gameResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &domain.APIError{Kind: domain.KindMalformedResponse, Err: err}
	}

	games := make([]domain.GameSummary, 0, len(resp))
	for _, game := range resp {
		games = append(games, toGameSummary(game))
	}

	return games, nil
}

func toGameSummary(resp gameResponse) domain.GameSummary {
	return domain.GameSummary{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Description: resp.Description,
		Category:    resp.Category,
	}
}

// unwrapList tolerates the two list shapes the catalog serves: a bare JSON
// array, or an object wrapping the array under one of the given keys.
func unwrapList(body []byte, keys ...string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("error unmarshalling list response: %w", err)
	}

	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if inner := bytes.TrimSpace(raw); len(inner) > 0 && inner[0] == '[' {
			return inner, nil
		}
	}

	return nil, errors.New("no list payload in response")
}

// unwrapObject tolerates a bare detail object or one wrapped under a known key.
func unwrapObject(body []byte, keys ...string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.New("response is not an object")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("error unmarshalling detail response: %w", err)
	}

	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if inner := bytes.TrimSpace(raw); len(inner) > 0 && inner[0] == '{' {
			return inner, nil
		}
	}

	return trimmed, nil
}
