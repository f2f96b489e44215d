package tui

import (
	"strings"
	"testing"

	service "github.com/frankyaorenjie/nba-score-cli/internal/app"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/chart"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleSeries(diffs []int) []model.DifferentialSample {
	series := make([]model.DifferentialSample, len(diffs))
	for i, d := range diffs {
		series[i] = model.DifferentialSample{
			ElapsedMinutes: float64(i),
			NormalizedTime: float64(i) / 48.0,
			Diff:           d,
		}
	}
	return series
}

func TestRenderText(t *testing.T) {
	Convey("Given a rasterized chart", t, func() {
		c := chart.Rasterize(sampleSeries([]int{0, 3, 5, -2}), "GSW", "LAL", 60)

		Convey("When rendered as plain text", func() {
			out := RenderText(c, 1)
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

			Convey("Then every grid row plus axis and footer are present", func() {
				// rows + x-axis + blank + lead-change footer
				So(lines, ShouldHaveLength, c.Rows+3)
				So(out, ShouldContainSubstring, "Q1")
				So(out, ShouldContainSubstring, "Lead changes: 1")
			})

			Convey("And y labels gutter every row", func() {
				So(lines[0], ShouldStartWith, "+")
				So(strings.Contains(lines[c.ZeroRow], " 0 "), ShouldBeTrue)
			})

			Convey("And no color tags leak into plain output", func() {
				So(out, ShouldNotContainSubstring, "[#")
				So(out, ShouldNotContainSubstring, "[-]")
			})
		})
	})
}

func TestRenderDetailColors(t *testing.T) {
	Convey("Given a detail for a home-led game", t, func() {
		series := sampleSeries([]int{0, 4, 6})
		d := service.GameDetail{
			Game: model.Game{
				Home:       model.Team{Tricode: "GSW", Score: 66},
				Away:       model.Team{Tricode: "LAL", Score: 60},
				Status:     model.StatusLive,
				StatusText: "Q3 4:12",
			},
			Series:      series,
			LeadChanges: 0,
			Chart:       chart.Rasterize(series, "GSW", "LAL", 60),
		}

		Convey("When rendered for the detail pane", func() {
			out := renderDetail(d)

			Convey("Then glyphs carry the home team's color tag", func() {
				So(out, ShouldContainSubstring, "[#ffc72c]") // Warriors gold
				So(out, ShouldContainSubstring, "Q3 4:12")
				So(out, ShouldContainSubstring, "Lead changes: 0")
			})
		})
	})
}
