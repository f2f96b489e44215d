package model_test

import (
	"testing"

	"github.com/frankyaorenjie/nba-score-cli/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseClock(t *testing.T) {
	Convey("Given play-by-play duration tokens", t, func() {
		Convey("Then PT-style tokens parse minutes and fractional seconds", func() {
			c := model.ParseClock("PT11M30.00S")
			So(c.MinutesLeft, ShouldEqual, 11)
			So(c.SecondsLeft, ShouldAlmostEqual, 30.0)

			c = model.ParseClock("PT0M59.90S")
			So(c.MinutesLeft, ShouldEqual, 0)
			So(c.SecondsLeft, ShouldAlmostEqual, 59.9)
		})

		Convey("Then MM:SS tokens parse as well", func() {
			c := model.ParseClock("4:12")
			So(c.MinutesLeft, ShouldEqual, 4)
			So(c.SecondsLeft, ShouldAlmostEqual, 12.0)
		})

		Convey("Then surrounding whitespace is tolerated", func() {
			c := model.ParseClock(" PT2M05.00S ")
			So(c.MinutesLeft, ShouldEqual, 2)
			So(c.SecondsLeft, ShouldAlmostEqual, 5.0)
		})
	})

	Convey("Given malformed tokens", t, func() {
		Convey("Then they normalize to the zero clock, never an error", func() {
			for _, s := range []string{"garbage", "", "PTM S", "12:xx", "PT11M61.00S", "11:61"} {
				c := model.ParseClock(s)
				So(c.MinutesLeft, ShouldEqual, 0)
				So(c.SecondsLeft, ShouldEqual, 0.0)
			}
		})
	})
}

func TestGameClockString(t *testing.T) {
	Convey("Given a clock", t, func() {
		Convey("Then it renders as MM:SS with padded seconds", func() {
			So(model.GameClock{MinutesLeft: 4, SecondsLeft: 7.3}.String(), ShouldEqual, "4:07")
			So(model.GameClock{MinutesLeft: 11, SecondsLeft: 30}.String(), ShouldEqual, "11:30")
		})
	})
}

func TestGamePeriodCount(t *testing.T) {
	Convey("Given box-score period arrays", t, func() {
		Convey("Then regulation games report four periods", func() {
			g := model.Game{
				Home: model.Team{Periods: []int{20, 20, 20, 20}},
				Away: model.Team{Periods: []int{18, 22, 19, 21}},
			}
			So(g.PeriodCount(), ShouldEqual, 4)
		})

		Convey("Then overtime extends the count", func() {
			g := model.Game{
				Home: model.Team{Periods: []int{20, 20, 20, 20, 10}},
				Away: model.Team{Periods: []int{18, 22, 19, 21, 8}},
			}
			So(g.PeriodCount(), ShouldEqual, 5)
		})

		Convey("Then a pre-game empty array still reports regulation", func() {
			So(model.Game{}.PeriodCount(), ShouldEqual, 4)
		})

		Convey("Then mismatched arrays take the longer side", func() {
			g := model.Game{
				Home: model.Team{Periods: []int{20, 20, 20}},
				Away: model.Team{Periods: []int{18, 22, 19, 21, 8}},
			}
			So(g.PeriodCount(), ShouldEqual, 5)
		})
	})
}
