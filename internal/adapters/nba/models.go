package nba

import (
	"strconv"
	"time"

	"github.com/frankyaorenjie/nba-score-cli/internal/domain/model"
)

// Wire DTOs for the CDN payloads. Kept separate from domain models so
// feed quirks (string scores, status codes) stay at the edge.

// Game status codes on the wire.
const (
	wireStatusScheduled = 1
	wireStatusLive      = 2
	wireStatusFinal     = 3
)

type scoreboardResponse struct {
	Scoreboard struct {
		GameDate string    `json:"gameDate"`
		Games    []gameDTO `json:"games"`
	} `json:"scoreboard"`
}

type boxScoreResponse struct {
	Game gameDTO `json:"game"`
}

type playByPlayResponse struct {
	Game struct {
		GameID  string      `json:"gameId"`
		Actions []actionDTO `json:"actions"`
	} `json:"game"`
}

type standingsResponse struct {
	Standings struct {
		Teams []standingDTO `json:"teams"`
	} `json:"standings"`
}

type gameDTO struct {
	GameID         string  `json:"gameId"`
	GameStatus     int     `json:"gameStatus"`
	GameStatusText string  `json:"gameStatusText"`
	Period         int     `json:"period"`
	GameClock      string  `json:"gameClock"`
	GameTimeUTC    string  `json:"gameTimeUTC"`
	HomeTeam       teamDTO `json:"homeTeam"`
	AwayTeam       teamDTO `json:"awayTeam"`
}

type teamDTO struct {
	TeamTricode string      `json:"teamTricode"`
	TeamName    string      `json:"teamName"`
	Score       int         `json:"score"`
	Wins        int         `json:"wins"`
	Losses      int         `json:"losses"`
	Periods     []periodDTO `json:"periods"`
}

type periodDTO struct {
	Period int `json:"period"`
	Score  int `json:"score"`
}

// actionDTO carries running scores as strings; non-scoring actions
// (substitutions, timeouts) leave them empty.
type actionDTO struct {
	Period      int    `json:"period"`
	Clock       string `json:"clock"`
	ScoreHome   string `json:"scoreHome"`
	ScoreAway   string `json:"scoreAway"`
	Description string `json:"description"`
}

type standingDTO struct {
	TeamTricode    string  `json:"teamTricode"`
	TeamName       string  `json:"teamName"`
	Conference     string  `json:"conference"`
	ConferenceRank int     `json:"conferenceRank"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	GamesBack      float64 `json:"gamesBack"`
}

func (d gameDTO) toGame() model.Game {
	start, _ := time.Parse(time.RFC3339, d.GameTimeUTC)
	return model.Game{
		ID:         d.GameID,
		Home:       d.HomeTeam.toTeam(),
		Away:       d.AwayTeam.toTeam(),
		Status:     toStatus(d.GameStatus),
		Period:     d.Period,
		Clock:      model.ParseClock(d.GameClock),
		StartTime:  start,
		StatusText: d.GameStatusText,
	}
}

func (d teamDTO) toTeam() model.Team {
	periods := make([]int, 0, len(d.Periods))
	for _, p := range d.Periods {
		periods = append(periods, p.Score)
	}
	return model.Team{
		Tricode: d.TeamTricode,
		Name:    d.TeamName,
		Score:   d.Score,
		Periods: periods,
		Wins:    d.Wins,
		Losses:  d.Losses,
	}
}

func (d actionDTO) toPlayEvent() model.PlayEvent {
	home, errH := strconv.Atoi(d.ScoreHome)
	away, errA := strconv.Atoi(d.ScoreAway)
	return model.PlayEvent{
		Period:      d.Period,
		Clock:       model.ParseClock(d.Clock),
		ScoreHome:   home,
		ScoreAway:   away,
		HasScore:    errH == nil && errA == nil,
		Description: d.Description,
	}
}

func (d standingDTO) toStanding() model.Standing {
	return model.Standing{
		Tricode:    d.TeamTricode,
		Name:       d.TeamName,
		Conference: d.Conference,
		Rank:       d.ConferenceRank,
		Wins:       d.Wins,
		Losses:     d.Losses,
		GamesBack:  d.GamesBack,
	}
}

func toStatus(code int) model.GameStatus {
	switch code {
	case wireStatusLive:
		return model.StatusLive
	case wireStatusFinal:
		return model.StatusFinal
	case wireStatusScheduled:
		return model.StatusScheduled
	default:
		return model.StatusScheduled
	}
}
