// Package model contains domain models passed between layers.
package model

import "time"

// GameStatus is the lifecycle state of a game.
type GameStatus int

const (
	StatusScheduled GameStatus = iota + 1
	StatusLive
	StatusFinal
)

// String returns the display name of the status.
func (s GameStatus) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusLive:
		return "live"
	case StatusFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Team identifies one side of a game as shown on the scoreboard.
type Team struct {
	Tricode string // e.g. "GSW"
	Name    string // e.g. "Warriors"
	Score   int
	Periods []int // per-period scores; length drives period count
	Wins    int
	Losses  int
}

// Game is the box-score metadata for a single game.
type Game struct {
	ID         string
	Home       Team
	Away       Team
	Status     GameStatus
	Period     int       // current period for live games
	Clock      GameClock // current clock for live games
	StartTime  time.Time
	StatusText string // display text, e.g. "Final", "Q3 4:12", "7:30 pm ET"
}

// PeriodCount returns the number of periods played or scheduled, never
// fewer than the four regulation quarters.
func (g Game) PeriodCount() int {
	n := len(g.Home.Periods)
	if m := len(g.Away.Periods); m > n {
		n = m
	}
	if n < 4 {
		n = 4
	}
	return n
}

// PlayEvent is one play-by-play record. Events arrive in non-decreasing
// game-time order and are consumed in that order; HasScore marks records
// that carry a running score (substitutions and timeouts do not).
type PlayEvent struct {
	Period      int
	Clock       GameClock
	ScoreHome   int
	ScoreAway   int
	HasScore    bool
	Description string
}

// Diff returns the home-minus-away score differential of the event.
func (e PlayEvent) Diff() int {
	return e.ScoreHome - e.ScoreAway
}

// DifferentialSample is one point of the dense per-minute differential
// series produced by the timeline reconstructor.
type DifferentialSample struct {
	ElapsedMinutes float64
	NormalizedTime float64 // elapsed / total game minutes, unclamped
	Diff           int
}

// Standing is one row of a conference standings table, consumed as-is
// from the standings endpoint.
type Standing struct {
	Tricode    string
	Name       string
	Conference string
	Rank       int
	Wins       int
	Losses     int
	GamesBack  float64
}
