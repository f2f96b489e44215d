package teams_test

import (
	"testing"

	"github.com/frankyaorenjie/nba-score-cli/internal/domain/teams"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLookup(t *testing.T) {
	Convey("Given the franchise table", t, func() {
		Convey("Then known tricodes resolve to names and colors", func() {
			So(teams.Name("GSW"), ShouldEqual, "Warriors")
			So(teams.Name("BOS"), ShouldEqual, "Celtics")
			So(teams.Known("LAL"), ShouldBeTrue)
			So(teams.Color("LAL"), ShouldNotEqual, teams.DefaultColor)
		})

		Convey("Then unknown tricodes fall back explicitly", func() {
			So(teams.Known("XYZ"), ShouldBeFalse)
			So(teams.Name("XYZ"), ShouldEqual, "XYZ")
			So(teams.Color("XYZ"), ShouldEqual, teams.DefaultColor)
		})
	})
}
