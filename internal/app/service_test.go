package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	service "github.com/frankyaorenjie/nba-score-cli/internal/app"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/model"
	"github.com/frankyaorenjie/nba-score-cli/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeFetcher struct {
	mu        sync.Mutex
	games     []model.Game
	boxscore  *model.Game
	events    []model.PlayEvent
	scoreErr  error
	boxErr    error
	pbpErr    error
	standings []model.Standing
	standErr  error
}

func (f *fakeFetcher) Scoreboard(context.Context) ([]model.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.games, f.scoreErr
}

func (f *fakeFetcher) BoxScore(context.Context, string) (*model.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.boxscore, f.boxErr
}

func (f *fakeFetcher) PlayByPlay(context.Context, string) ([]model.PlayEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events, f.pbpErr
}

func (f *fakeFetcher) Standings(context.Context) ([]model.Standing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.standings, f.standErr
}

func (f *fakeFetcher) set(mutate func(*fakeFetcher)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(f)
}

type recordingNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (n *recordingNotifier) Notify(_ context.Context, title, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.titles = append(n.titles, title)
	return nil
}

func (n *recordingNotifier) seen() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.titles...)
}

type fakeWatchlist struct {
	players []string
}

func (w *fakeWatchlist) Players() []string { return w.players }

func liveGame(id string, home, away int) model.Game {
	return model.Game{
		ID:     id,
		Home:   model.Team{Tricode: "GSW", Score: home, Periods: []int{home}},
		Away:   model.Team{Tricode: "LAL", Score: away, Periods: []int{away}},
		Status: model.StatusLive,
		Period: 1,
	}
}

func waitSnapshot(c <-chan service.Snapshot) (service.Snapshot, bool) {
	select {
	case snap := <-c:
		return snap, true
	case <-time.After(2 * time.Second):
		return service.Snapshot{}, false
	}
}

func TestServicePolling(t *testing.T) {
	if err := logger.Init(""); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	Convey("Given a service over a healthy fetcher", t, func() {
		fetcher := &fakeFetcher{games: []model.Game{liveGame("001", 10, 8)}}
		svc := service.New(
			service.WithFetcher(fetcher),
			service.WithInterval(20*time.Millisecond),
			service.WithChartWidth(80),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When the first cycle completes", func() {
			snap, ok := waitSnapshot(svc.Updates())

			Convey("Then a snapshot with the scoreboard is delivered", func() {
				So(ok, ShouldBeTrue)
				So(snap.Games, ShouldHaveLength, 1)
				So(snap.Cycle, ShouldNotBeEmpty)
				So(snap.Detail, ShouldBeNil)
			})
		})

		Convey("When a game is selected", func() {
			box := liveGame("001", 12, 8)
			fetcher.set(func(f *fakeFetcher) {
				f.boxscore = &box
				f.events = []model.PlayEvent{
					{Period: 1, Clock: model.ParseClock("PT11M00.00S"), ScoreHome: 2, ScoreAway: 0, HasScore: true},
					{Period: 1, Clock: model.ParseClock("PT08M00.00S"), ScoreHome: 12, ScoreAway: 8, HasScore: true},
				}
			})
			svc.Select("001")

			Convey("Then the next snapshot carries a recomputed detail", func() {
				var snap service.Snapshot
				ok := false
				deadline := time.Now().Add(2 * time.Second)
				for time.Now().Before(deadline) {
					s, got := waitSnapshot(svc.Updates())
					if got && s.Detail != nil {
						snap, ok = s, true
						break
					}
				}
				So(ok, ShouldBeTrue)
				So(snap.Detail.Game.ID, ShouldEqual, "001")
				So(len(snap.Detail.Series), ShouldBeGreaterThan, 1)
				So(snap.Detail.Chart.Cols, ShouldBeGreaterThan, 0)
				So(snap.Detail.Chart.Home, ShouldEqual, "GSW")
			})
		})
	})
}

func TestServiceDegradation(t *testing.T) {
	if err := logger.Init(""); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	Convey("Given a selected game whose play-by-play is unavailable", t, func() {
		box := liveGame("002", 0, 0)
		fetcher := &fakeFetcher{
			games:    []model.Game{liveGame("002", 0, 0)},
			boxscore: &box,
			pbpErr:   errors.New("cdn 500"),
		}
		svc := service.New(
			service.WithFetcher(fetcher),
			service.WithInterval(20*time.Millisecond),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()
		svc.Select("002")

		Convey("Then the detail degrades to the baseline series", func() {
			var snap service.Snapshot
			ok := false
			deadline := time.Now().Add(2 * time.Second)
			for time.Now().Before(deadline) {
				s, got := waitSnapshot(svc.Updates())
				if got && s.Detail != nil {
					snap, ok = s, true
					break
				}
			}
			So(ok, ShouldBeTrue)
			So(snap.Detail.Series, ShouldHaveLength, 1)
			So(snap.Detail.Series[0].Diff, ShouldEqual, 0)
			So(snap.Detail.LeadChanges, ShouldEqual, 0)
		})
	})

	Convey("Given a scoreboard outage", t, func() {
		fetcher := &fakeFetcher{scoreErr: errors.New("network down")}
		svc := service.New(
			service.WithFetcher(fetcher),
			service.WithInterval(20*time.Millisecond),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("Then no snapshot is emitted and the stale view survives", func() {
			select {
			case <-svc.Updates():
				So("snapshot emitted", ShouldBeEmpty)
			case <-time.After(150 * time.Millisecond):
				So(svc.Snapshot().Cycle, ShouldBeEmpty)
			}
		})
	})
}

func TestServiceAlerts(t *testing.T) {
	if err := logger.Init(""); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	Convey("Given alerting on a live game", t, func() {
		fetcher := &fakeFetcher{games: []model.Game{liveGame("003", 10, 8)}}
		notifier := &recordingNotifier{}
		svc := service.New(
			service.WithFetcher(fetcher),
			service.WithInterval(20*time.Millisecond),
			service.WithNotifier(notifier),
			service.WithAlerting(true),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		_, ok := waitSnapshot(svc.Updates())
		So(ok, ShouldBeTrue)

		Convey("When the lead flips", func() {
			fetcher.set(func(f *fakeFetcher) {
				f.games = []model.Game{liveGame("003", 10, 13)}
			})

			Convey("Then a lead-change alert is dispatched", func() {
				deadline := time.Now().Add(2 * time.Second)
				for time.Now().Before(deadline) {
					if len(notifier.seen()) > 0 {
						break
					}
					time.Sleep(10 * time.Millisecond)
				}
				So(notifier.seen(), ShouldContain, "Lead change")
			})
		})
	})

	Convey("Given a watched player and a game selected mid-stream", t, func() {
		box := liveGame("004", 10, 8)
		history := []model.PlayEvent{
			{Period: 1, Clock: model.ParseClock("PT11M00.00S"), ScoreHome: 2, ScoreAway: 0, HasScore: true, Description: "James 26' 3PT"},
			{Period: 1, Clock: model.ParseClock("PT09M00.00S"), ScoreHome: 5, ScoreAway: 0, HasScore: true, Description: "James 3PT pullup"},
			{Period: 1, Clock: model.ParseClock("PT07M00.00S"), ScoreHome: 7, ScoreAway: 0, HasScore: true, Description: "James driving layup"},
		}
		fetcher := &fakeFetcher{
			games:    []model.Game{liveGame("004", 10, 8)},
			boxscore: &box,
			events:   history,
		}
		notifier := &recordingNotifier{}
		svc := service.New(
			service.WithFetcher(fetcher),
			service.WithInterval(20*time.Millisecond),
			service.WithNotifier(notifier),
			service.WithAlerting(true),
			service.WithWatchlist(&fakeWatchlist{players: []string{"LeBron James"}}),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()
		svc.Select("004")

		ok := false
		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			if s, got := waitSnapshot(svc.Updates()); got && s.Detail != nil {
				ok = true
				break
			}
		}
		So(ok, ShouldBeTrue)

		Convey("Then the historical plays raise no alerts", func() {
			So(notifier.seen(), ShouldBeEmpty)
		})

		Convey("When a new play lands on the feed", func() {
			fetcher.set(func(f *fakeFetcher) {
				f.events = append(history, model.PlayEvent{
					Period: 1, Clock: model.ParseClock("PT05M00.00S"),
					ScoreHome: 9, ScoreAway: 0, HasScore: true,
					Description: "James driving dunk",
				})
			})

			Convey("Then exactly that play is alerted", func() {
				deadline := time.Now().Add(2 * time.Second)
				for time.Now().Before(deadline) {
					if len(notifier.seen()) > 0 {
						break
					}
					time.Sleep(10 * time.Millisecond)
				}
				So(notifier.seen(), ShouldResemble, []string{"LeBron James"})
			})
		})
	})
}
