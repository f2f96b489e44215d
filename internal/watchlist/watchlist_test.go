package watchlist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/frankyaorenjie/nba-score-cli/internal/watchlist"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWatchlist(t *testing.T) {
	Convey("Given a fresh watch-list path", t, func() {
		path := filepath.Join(t.TempDir(), "nba-score-cli", "watchlist.json")

		Convey("When loading a file that does not exist", func() {
			w, err := watchlist.Load(path)

			Convey("Then an empty list is returned", func() {
				So(err, ShouldBeNil)
				So(w.Players(), ShouldBeEmpty)
			})
		})

		Convey("When adding and removing players", func() {
			w, err := watchlist.Load(path)
			So(err, ShouldBeNil)

			So(w.Add("Stephen Curry"), ShouldBeNil)
			So(w.Add("LeBron James"), ShouldBeNil)
			So(w.Add("Stephen Curry"), ShouldBeNil) // idempotent

			Convey("Then membership and ordering hold", func() {
				So(w.Contains("Stephen Curry"), ShouldBeTrue)
				So(w.Players(), ShouldResemble, []string{"LeBron James", "Stephen Curry"})
			})

			Convey("And changes persist across a reload", func() {
				So(w.Remove("LeBron James"), ShouldBeNil)

				reloaded, err := watchlist.Load(path)
				So(err, ShouldBeNil)
				So(reloaded.Players(), ShouldResemble, []string{"Stephen Curry"})
				So(reloaded.Contains("LeBron James"), ShouldBeFalse)
			})
		})

		Convey("When the file holds invalid JSON", func() {
			So(os.MkdirAll(filepath.Dir(path), 0o755), ShouldBeNil)
			So(os.WriteFile(path, []byte("not json"), 0o644), ShouldBeNil)

			_, err := watchlist.Load(path)

			Convey("Then loading fails loudly instead of clobbering the file", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
