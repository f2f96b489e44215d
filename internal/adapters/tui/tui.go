// Package tui renders dashboard snapshots in the terminal: a game list,
// a standings table, and a per-game detail pane with the score-flow
// chart. It consumes snapshots by value and pushes no logic back into
// the domain.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	service "github.com/frankyaorenjie/nba-score-cli/internal/app"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/model"
	"github.com/frankyaorenjie/nba-score-cli/pkg/logger"
)

// Controller is the slice of the polling service the UI drives.
type Controller interface {
	Updates() <-chan service.Snapshot
	Snapshot() service.Snapshot
	Select(gameID string)
}

// Watchlist is the slice of the watch list the UI mutates.
type Watchlist interface {
	Add(name string) error
	Remove(name string) error
	Contains(name string) bool
}

// App wires the tview widgets to the snapshot stream.
type App struct {
	app   *tview.Application
	ctrl  Controller
	watch Watchlist
	log   logger.Logger

	games     *tview.List
	detail    *tview.TextView
	standings *tview.Table
	status    *tview.TextView
	input     *tview.InputField
	layout    *tview.Flex
	pages     *tview.Pages

	gameIDs  []int // list index -> snapshot games index
	snapshot service.Snapshot
}

// New builds the widget tree.
func New(ctrl Controller, watch Watchlist, log logger.Logger) *App {
	a := &App{
		app:   tview.NewApplication(),
		ctrl:  ctrl,
		watch: watch,
		log:   log,
	}

	a.games = tview.NewList().ShowSecondaryText(true)
	a.games.SetBorder(true).SetTitle(" Games ")
	a.games.SetSelectedFunc(func(int, string, string, rune) {
		a.selectCurrent()
	})

	a.detail = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	a.detail.SetBorder(true).SetTitle(" Game Flow ")

	a.standings = tview.NewTable().SetBorders(false)
	a.standings.SetBorder(true).SetTitle(" Standings ")

	a.status = tview.NewTextView().SetDynamicColors(true)
	a.status.SetText("[gray]enter[-] chart  [gray]s[-] standings  [gray]w[-] watch player  [gray]q[-] quit")

	a.input = tview.NewInputField().SetLabel("watch/unwatch player: ")
	a.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			a.toggleWatch(a.input.GetText())
		}
		a.input.SetText("")
		a.layout.RemoveItem(a.input)
		a.app.SetFocus(a.games)
	})

	main := tview.NewFlex().
		AddItem(a.games, 0, 1, true).
		AddItem(a.detail, 0, 2, false)

	a.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(main, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.pages = tview.NewPages().
		AddPage("main", a.layout, true, true).
		AddPage("standings", a.standings, true, false)

	a.app.SetRoot(a.pages, true).SetInputCapture(a.handleKey)
	return a
}

// Run drives the UI until ctx is cancelled or the user quits.
func (a *App) Run(ctx context.Context) error {
	go a.consume(ctx)
	a.apply(a.ctrl.Snapshot())
	return a.app.Run()
}

// Stop terminates the UI event loop.
func (a *App) Stop() {
	a.app.Stop()
}

// consume forwards snapshots into the UI thread.
func (a *App) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			a.app.QueueUpdateDraw(func() {})
			a.app.Stop()
			return
		case snap := <-a.ctrl.Updates():
			a.app.QueueUpdateDraw(func() {
				a.apply(snap)
			})
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if a.app.GetFocus() == a.input {
		return ev
	}
	switch ev.Rune() {
	case 'q':
		a.app.Stop()
		return nil
	case 's':
		a.toggleStandings()
		return nil
	case 'w':
		a.layout.AddItem(a.input, 1, 0, true)
		a.app.SetFocus(a.input)
		return nil
	}
	return ev
}

func (a *App) toggleStandings() {
	if name, _ := a.pages.GetFrontPage(); name == "standings" {
		a.pages.SwitchToPage("main")
		return
	}
	a.pages.SwitchToPage("standings")
}

func (a *App) toggleWatch(name string) {
	if name == "" || a.watch == nil {
		return
	}
	var err error
	if a.watch.Contains(name) {
		err = a.watch.Remove(name)
	} else {
		err = a.watch.Add(name)
	}
	if err != nil {
		a.log.Warn(context.Background(), "watch list update failed", logger.Error(err))
	}
}

func (a *App) selectCurrent() {
	idx := a.games.GetCurrentItem()
	if idx < 0 || idx >= len(a.gameIDs) {
		return
	}
	game := a.snapshot.Games[a.gameIDs[idx]]
	a.ctrl.Select(game.ID)
	a.detail.SetTitle(fmt.Sprintf(" %s @ %s ", game.Away.Tricode, game.Home.Tricode))
}

// apply repaints every pane from a fresh snapshot.
func (a *App) apply(snap service.Snapshot) {
	a.snapshot = snap
	a.repaintGames(snap.Games)
	a.repaintStandings(snap.Standings)
	if snap.Detail != nil {
		a.detail.SetText(renderDetail(*snap.Detail))
	}
}

func (a *App) repaintGames(games []model.Game) {
	current := a.games.GetCurrentItem()
	a.games.Clear()
	a.gameIDs = a.gameIDs[:0]
	for i, g := range games {
		main := fmt.Sprintf("%s %d - %d %s", g.Away.Tricode, g.Away.Score, g.Home.Score, g.Home.Tricode)
		a.games.AddItem(main, g.StatusText, 0, nil)
		a.gameIDs = append(a.gameIDs, i)
	}
	if current >= 0 && current < a.games.GetItemCount() {
		a.games.SetCurrentItem(current)
	}
}

func (a *App) repaintStandings(rows []model.Standing) {
	a.standings.Clear()
	headers := []string{"#", "Team", "W", "L", "GB", "Conf"}
	for col, h := range headers {
		a.standings.SetCell(0, col,
			tview.NewTableCell(h).SetAttributes(tcell.AttrBold).SetSelectable(false))
	}
	for i, s := range rows {
		a.standings.SetCell(i+1, 0, tview.NewTableCell(fmt.Sprintf("%d", s.Rank)))
		a.standings.SetCell(i+1, 1, tview.NewTableCell(s.Tricode+" "+s.Name))
		a.standings.SetCell(i+1, 2, tview.NewTableCell(fmt.Sprintf("%d", s.Wins)))
		a.standings.SetCell(i+1, 3, tview.NewTableCell(fmt.Sprintf("%d", s.Losses)))
		a.standings.SetCell(i+1, 4, tview.NewTableCell(fmt.Sprintf("%.1f", s.GamesBack)))
		a.standings.SetCell(i+1, 5, tview.NewTableCell(s.Conference))
	}
}
