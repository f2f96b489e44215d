// Package nba fetches scoreboard, box-score, play-by-play, and standings
// data from the NBA live-data CDN and maps the wire payloads onto domain
// models.
package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/frankyaorenjie/nba-score-cli/internal/domain/model"
)

// Default client configuration.
const (
	DefaultBaseURL = "https://cdn.nba.com/static/json/liveData"

	defaultTimeout        = 15 * time.Second
	defaultRequestsPerSec = 4
	defaultBurst          = 2
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL overrides the CDN base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit sets the outbound request rate.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), defaultBurst)
		}
	}
}

// Client talks to the NBA CDN. All fetchers return an error on any
// network or decode failure; the caller decides how to degrade.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// New creates a CDN client with configuration options.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		userAgent:  "nba-score-cli/1.0",
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestsPerSec), defaultBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scoreboard fetches today's games.
func (c *Client) Scoreboard(ctx context.Context) ([]model.Game, error) {
	var dto scoreboardResponse
	if err := c.fetch(ctx, c.baseURL+"/scoreboard/todaysScoreboard_00.json", &dto); err != nil {
		return nil, err
	}
	games := make([]model.Game, 0, len(dto.Scoreboard.Games))
	for _, g := range dto.Scoreboard.Games {
		games = append(games, g.toGame())
	}
	return games, nil
}

// BoxScore fetches one game's box-score metadata.
func (c *Client) BoxScore(ctx context.Context, gameID string) (*model.Game, error) {
	var dto boxScoreResponse
	url := fmt.Sprintf("%s/boxscore/boxscore_%s.json", c.baseURL, gameID)
	if err := c.fetch(ctx, url, &dto); err != nil {
		return nil, err
	}
	game := dto.Game.toGame()
	return &game, nil
}

// PlayByPlay fetches one game's play-by-play actions in feed order.
func (c *Client) PlayByPlay(ctx context.Context, gameID string) ([]model.PlayEvent, error) {
	var dto playByPlayResponse
	url := fmt.Sprintf("%s/playbyplay/playbyplay_%s.json", c.baseURL, gameID)
	if err := c.fetch(ctx, url, &dto); err != nil {
		return nil, err
	}
	events := make([]model.PlayEvent, 0, len(dto.Game.Actions))
	for _, a := range dto.Game.Actions {
		events = append(events, a.toPlayEvent())
	}
	return events, nil
}

// Standings fetches the league standings table.
func (c *Client) Standings(ctx context.Context) ([]model.Standing, error) {
	var dto standingsResponse
	if err := c.fetch(ctx, c.baseURL+"/standings/standings_00.json", &dto); err != nil {
		return nil, err
	}
	rows := make([]model.Standing, 0, len(dto.Standings.Teams))
	for _, t := range dto.Standings.Teams {
		rows = append(rows, t.toStanding())
	}
	return rows, nil
}

// fetch makes a rate-limited GET request and decodes the JSON body.
func (c *Client) fetch(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for keep-alive
		return fmt.Errorf("nba cdn: unexpected status %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
