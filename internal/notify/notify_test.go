package notify

import (
	"context"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNoop(t *testing.T) {
	Convey("Given the no-op notifier", t, func() {
		Convey("When an alert is dispatched", func() {
			err := Noop{}.Notify(context.Background(), "Lead change", "GSW ahead by 2")

			Convey("Then it is swallowed without error", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestCommandArgs(t *testing.T) {
	Convey("Given the notify-send argument builder", t, func() {
		name, args := notifySendArgs("Lead change", "GSW ahead by 2")

		Convey("Then title and body become positional arguments", func() {
			So(name, ShouldEqual, "notify-send")
			So(args, ShouldResemble, []string{"Lead change", "GSW ahead by 2"})
		})
	})

	Convey("Given the osascript argument builder", t, func() {
		name, args := osascriptArgs("Lead change", `Curry hits a "logo" three`)

		Convey("Then the alert is quoted into a display script", func() {
			So(name, ShouldEqual, "osascript")
			So(args, ShouldHaveLength, 2)
			So(args[0], ShouldEqual, "-e")
			So(args[1], ShouldStartWith, "display notification ")
			So(args[1], ShouldContainSubstring, `\"logo\"`)
			So(strings.Contains(args[1], "Lead change"), ShouldBeTrue)
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Given the current platform", t, func() {
		Convey("When constructing a notifier", func() {
			n := New()

			Convey("Then a usable implementation is always returned", func() {
				So(n, ShouldNotBeNil)
			})
		})
	})
}
