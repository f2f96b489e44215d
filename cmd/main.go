// Command nba-score-cli is a terminal dashboard for live NBA scores.
//
// Usage:
//
//	nba-score-cli watch
//	nba-score-cli today
//	nba-score-cli chart --game 0022500541 --width 100
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/frankyaorenjie/nba-score-cli/internal/adapters/nba"
	"github.com/frankyaorenjie/nba-score-cli/internal/adapters/tui"
	service "github.com/frankyaorenjie/nba-score-cli/internal/app"
	"github.com/frankyaorenjie/nba-score-cli/internal/config"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/chart"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/timeline"
	"github.com/frankyaorenjie/nba-score-cli/internal/notify"
	"github.com/frankyaorenjie/nba-score-cli/internal/watchlist"
	"github.com/frankyaorenjie/nba-score-cli/pkg/logger"
	"github.com/frankyaorenjie/nba-score-cli/pkg/metrics"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:          "nba-score-cli",
		Short:        "NBA terminal scoreboard and game-flow charts",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	root.AddCommand(watchCmd())
	root.AddCommand(todayCmd())
	root.AddCommand(chartCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and initializes logging; stdout stays free
// for the UI.
func setup() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.LogFile); err != nil {
		return nil, err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(context.Background(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel))
		_ = logger.SetLevelString("info")
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *nba.Client {
	return nba.New(
		nba.WithBaseURL(cfg.APIBaseURL),
		nba.WithTimeout(cfg.RequestTimeout()),
		nba.WithRateLimit(cfg.RateLimitPerSec),
	)
}

// --------------------------------------------------------------------------
// watch command
// --------------------------------------------------------------------------

func watchCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Launch the live dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			wlPath := cfg.WatchlistPath
			if wlPath == "" {
				if wlPath, err = watchlist.DefaultPath(); err != nil {
					return err
				}
			}
			wl, err := watchlist.Load(wlPath)
			if err != nil {
				return err
			}

			if width <= 0 {
				width = cfg.ChartWidth
			}
			svc := service.New(
				service.WithFetcher(newClient(cfg)),
				service.WithLogger(logger.Get()),
				service.WithInterval(cfg.RefreshInterval()),
				service.WithChartWidth(width),
				service.WithNotifier(notify.New()),
				service.WithWatchlist(wl),
				service.WithAlerting(cfg.Notifications),
			)
			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Stop()

			go func() {
				if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
					logger.Get().Warn(ctx, "metrics listener failed", logger.Error(err))
				}
			}()

			ui := tui.New(svc, wl, logger.Get())
			go func() {
				<-ctx.Done()
				ui.Stop()
			}()
			return ui.Run(ctx)
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "chart width in columns (default: config chart_width)")
	return cmd
}

// --------------------------------------------------------------------------
// today command
// --------------------------------------------------------------------------

func todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's scoreboard and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			games, err := newClient(cfg).Scoreboard(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch scoreboard: %w", err)
			}
			if len(games) == 0 {
				fmt.Println("no games today")
				return nil
			}
			for _, g := range games {
				fmt.Printf("%-4s %3d  @  %-4s %3d   %s   [%s]\n",
					g.Away.Tricode, g.Away.Score,
					g.Home.Tricode, g.Home.Score,
					g.StatusText, g.ID)
			}
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// chart command
// --------------------------------------------------------------------------

func chartCmd() *cobra.Command {
	var gameID string
	var width int
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print a one-shot game-flow chart and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			client := newClient(cfg)
			game, err := client.BoxScore(cmd.Context(), gameID)
			if err != nil {
				return fmt.Errorf("fetch box score: %w", err)
			}
			// A missing play-by-play degrades to the baseline chart.
			events, err := client.PlayByPlay(cmd.Context(), gameID)
			if err != nil {
				events = nil
			}

			if width <= 0 {
				width = cfg.ChartWidth
			}
			res := timeline.Reconstruct(*game, events)
			c := chart.Rasterize(res.Series, game.Home.Tricode, game.Away.Tricode, width)

			fmt.Printf("%s %d - %d %s   %s\n\n",
				game.Away.Tricode, game.Away.Score,
				game.Home.Score, game.Home.Tricode,
				game.StatusText)
			fmt.Print(tui.RenderText(c, res.LeadChanges))
			return nil
		},
	}
	cmd.Flags().StringVar(&gameID, "game", "", "game id (see `nba-score-cli today`)")
	cmd.Flags().IntVar(&width, "width", 0, "chart width in columns (default: config chart_width)")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}
