// Package service drives the dashboard's poll/recompute cycle: fetch
// fresh scoreboard and per-game data on a fixed cadence, rebuild the
// differential series and chart for the selected game, and hand
// immutable snapshots to the display layer.
package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/frankyaorenjie/nba-score-cli/internal/domain/chart"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/model"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/timeline"
	"github.com/frankyaorenjie/nba-score-cli/internal/notify"
	"github.com/frankyaorenjie/nba-score-cli/pkg/logger"
	"github.com/frankyaorenjie/nba-score-cli/pkg/metrics"
)

// Default service configuration.
const (
	defaultInterval   = 10 * time.Second
	defaultChartWidth = 120
)

// Fetcher is the upstream data dependency. Any error from a fetcher is
// treated as "no data this cycle"; the service never crashes on it.
type Fetcher interface {
	Scoreboard(ctx context.Context) ([]model.Game, error)
	BoxScore(ctx context.Context, gameID string) (*model.Game, error)
	PlayByPlay(ctx context.Context, gameID string) ([]model.PlayEvent, error)
	Standings(ctx context.Context) ([]model.Standing, error)
}

// Watched reports whether a player is on the watch list.
type Watched interface {
	Players() []string
}

// GameDetail is the recomputed state of the selected game.
type GameDetail struct {
	Game        model.Game
	Series      []model.DifferentialSample
	LeadChanges int
	Chart       chart.Chart
	Events      []model.PlayEvent
}

// Snapshot is one immutable result of a poll cycle, consumed by value.
type Snapshot struct {
	Cycle     string // correlation id, also carried in log fields
	At        time.Time
	Games     []model.Game
	Standings []model.Standing
	Detail    *GameDetail
}

// Service owns the polling loop and the latest snapshot.
type Service struct {
	mu sync.RWMutex

	fetcher  Fetcher
	notifier notify.Notifier
	watch    Watched
	log      logger.Logger

	interval   time.Duration
	chartWidth int
	alerting   bool

	selected   string
	snapshot   Snapshot
	lastDiff   map[string]int // per-game last nonzero lead, for alert flips
	seenEvents map[string]int // per-game count of already-alerted events

	updates   chan Snapshot
	refreshCh chan struct{}
	stopCh    chan struct{}
	started   bool
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the upstream data source.
func WithFetcher(f Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithNotifier sets the desktop alert sink.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithWatchlist sets the player watch list used for play alerts.
func WithWatchlist(w Watched) Option {
	return func(s *Service) {
		s.watch = w
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithInterval sets the poll cadence.
func WithInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithChartWidth caps the rasterized chart width.
func WithChartWidth(w int) Option {
	return func(s *Service) {
		if w > 0 {
			s.chartWidth = w
		}
	}
}

// WithAlerting toggles desktop alerts.
func WithAlerting(enabled bool) Option {
	return func(s *Service) {
		s.alerting = enabled
	}
}

// New creates a Service with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		notifier:   notify.Noop{},
		interval:   defaultInterval,
		chartWidth: defaultChartWidth,
		lastDiff:   make(map[string]int),
		seenEvents: make(map[string]int),
		updates:    make(chan Snapshot, 1),
		refreshCh:  make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	return s
}

// Start launches the polling loop. It polls once immediately so the UI
// has data before the first tick.
func (s *Service) Start(ctx context.Context) error {
	if s.fetcher == nil {
		return errors.New("service: no fetcher configured")
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	go s.run(ctx)
	return nil
}

// Stop terminates the polling loop.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	close(s.stopCh)
}

// Updates returns the snapshot stream. The channel holds only the most
// recent snapshot; a slow consumer sees the freshest state, not a backlog.
func (s *Service) Updates() <-chan Snapshot {
	return s.updates
}

// Snapshot returns the latest snapshot by value.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Select switches the detail view to the given game and triggers an
// immediate refresh. An empty id closes the detail view.
func (s *Service) Select(gameID string) {
	s.mu.Lock()
	s.selected = gameID
	s.mu.Unlock()

	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
}

func (s *Service) run(ctx context.Context) {
	s.pollOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		case <-s.refreshCh:
			s.pollOnce(ctx)
		}
	}
}

// pollOnce runs one fetch-and-recompute cycle. A scoreboard failure
// keeps the previous snapshot on screen; per-game failures degrade per
// the fetch-to-null contract.
func (s *Service) pollOnce(ctx context.Context) {
	cycle := uuid.NewString()

	games, err := s.fetchScoreboard(ctx)
	if err != nil {
		metrics.RecordPollFailure()
		s.log.Warn(ctx, "scoreboard fetch failed; keeping stale view",
			logger.String("cycle", cycle), logger.Error(err))
		return
	}

	next := Snapshot{
		Cycle: cycle,
		At:    time.Now(),
		Games: games,
	}

	// Standings are decorative; reuse the previous table on failure.
	if standings, err := s.fetchStandings(ctx); err == nil {
		next.Standings = standings
	} else {
		s.log.Debug(ctx, "standings fetch failed; reusing previous",
			logger.String("cycle", cycle), logger.Error(err))
		next.Standings = s.Snapshot().Standings
	}

	s.mu.RLock()
	selected := s.selected
	s.mu.RUnlock()

	if selected != "" {
		detail, ok := s.buildDetail(ctx, cycle, selected)
		if !ok {
			// Box score is the detail's anchor; without it the stale
			// detail pane stays up.
			metrics.RecordPollFailure()
			next.Detail = s.Snapshot().Detail
		} else {
			next.Detail = detail
		}
	}

	s.detectAlerts(ctx, next)

	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()

	// Replace any unconsumed snapshot with the fresh one.
	select {
	case <-s.updates:
	default:
	}
	s.updates <- next

	metrics.RecordPollCycle()
	s.log.Debug(ctx, "poll cycle complete",
		logger.String("cycle", cycle),
		logger.Int("games", len(games)))
}

// buildDetail recomputes the selected game's series and chart. The box
// score and play-by-play are fetched concurrently; a missing play-by-play
// is treated as an empty event list so the chart degrades to the
// baseline series instead of disappearing.
func (s *Service) buildDetail(ctx context.Context, cycle, gameID string) (*GameDetail, bool) {
	var (
		game   *model.Game
		events []model.PlayEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		game, err = s.fetchBoxScore(gctx, gameID)
		return err
	})
	g.Go(func() error {
		fetched, err := s.fetchPlayByPlay(gctx, gameID)
		if err != nil {
			s.log.Debug(gctx, "play-by-play fetch failed; treating as empty",
				logger.String("cycle", cycle), logger.Error(err))
			return nil
		}
		events = fetched
		return nil
	})
	if err := g.Wait(); err != nil || game == nil {
		s.log.Warn(ctx, "box score fetch failed; keeping stale detail",
			logger.String("cycle", cycle), logger.String("game", gameID), logger.Error(err))
		return nil, false
	}

	start := time.Now()
	res := timeline.Reconstruct(*game, events)
	ch := chart.Rasterize(res.Series, game.Home.Tricode, game.Away.Tricode, s.chartWidth)
	metrics.ObserveRasterizeDuration(time.Since(start))

	return &GameDetail{
		Game:        *game,
		Series:      res.Series,
		LeadChanges: res.LeadChanges,
		Chart:       ch,
		Events:      events,
	}, true
}

// detectAlerts compares the new snapshot with remembered per-game state
// and dispatches desktop notifications for lead flips and watched-player
// plays. Alerts are best-effort; a dispatch error is logged and dropped.
func (s *Service) detectAlerts(ctx context.Context, next Snapshot) {
	if !s.alerting {
		return
	}

	for _, g := range next.Games {
		if g.Status != model.StatusLive {
			continue
		}
		diff := g.Home.Score - g.Away.Score
		if diff == 0 {
			continue
		}
		prev := s.lastDiff[g.ID]
		if (prev > 0 && diff < 0) || (prev < 0 && diff > 0) {
			leader, trailer := g.Home, g.Away
			if diff < 0 {
				leader, trailer = g.Away, g.Home
			}
			s.dispatch(ctx, "Lead change",
				leader.Tricode+" takes the lead over "+trailer.Tricode)
		}
		s.lastDiff[g.ID] = diff
	}

	if next.Detail == nil || s.watch == nil {
		return
	}
	players := s.watch.Players()
	if len(players) == 0 {
		return
	}
	gameID := next.Detail.Game.ID
	seen, sighted := s.seenEvents[gameID]
	if !sighted {
		// First detail for this game: everything already on the feed is
		// history, not news. Alert only on events appended after this.
		s.seenEvents[gameID] = len(next.Detail.Events)
		return
	}
	for i, ev := range next.Detail.Events {
		if i < seen {
			continue
		}
		for _, p := range players {
			if strings.Contains(ev.Description, surname(p)) {
				s.dispatch(ctx, p, ev.Description)
				break
			}
		}
	}
	s.seenEvents[gameID] = len(next.Detail.Events)
}

func (s *Service) dispatch(ctx context.Context, title, body string) {
	if err := s.notifier.Notify(ctx, title, body); err != nil {
		s.log.Warn(ctx, "notification dispatch failed", logger.Error(err))
		return
	}
	metrics.RecordAlertSent()
}

// surname extracts the part of a player name play descriptions use.
func surname(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[len(fields)-1]
}

// Instrumented fetch wrappers.

func (s *Service) fetchScoreboard(ctx context.Context) ([]model.Game, error) {
	start := time.Now()
	games, err := s.fetcher.Scoreboard(ctx)
	metrics.ObserveFetchLatency("scoreboard", time.Since(start))
	if err != nil {
		metrics.RecordFetchError("scoreboard")
	}
	return games, err
}

func (s *Service) fetchStandings(ctx context.Context) ([]model.Standing, error) {
	start := time.Now()
	rows, err := s.fetcher.Standings(ctx)
	metrics.ObserveFetchLatency("standings", time.Since(start))
	if err != nil {
		metrics.RecordFetchError("standings")
	}
	return rows, err
}

func (s *Service) fetchBoxScore(ctx context.Context, gameID string) (*model.Game, error) {
	start := time.Now()
	game, err := s.fetcher.BoxScore(ctx, gameID)
	metrics.ObserveFetchLatency("boxscore", time.Since(start))
	if err != nil {
		metrics.RecordFetchError("boxscore")
	}
	return game, err
}

func (s *Service) fetchPlayByPlay(ctx context.Context, gameID string) ([]model.PlayEvent, error) {
	start := time.Now()
	events, err := s.fetcher.PlayByPlay(ctx, gameID)
	metrics.ObserveFetchLatency("playbyplay", time.Since(start))
	if err != nil {
		metrics.RecordFetchError("playbyplay")
	}
	return events, err
}
