package model

import (
	"regexp"
	"strconv"
	"strings"
)

// GameClock is the time remaining in a period.
type GameClock struct {
	MinutesLeft int
	SecondsLeft float64
}

// Clock token shapes seen on the wire. The CDN play-by-play feed uses
// ISO-8601-ish durations ("PT11M23.00S"); box scores use "MM:SS".
var (
	durationClockRe = regexp.MustCompile(`^PT(\d+)M(\d+(?:\.\d+)?)S$`)
	colonClockRe    = regexp.MustCompile(`^(\d+):(\d+(?:\.\d+)?)$`)
)

// ParseClock parses a clock token in either wire shape. Unparseable input
// degrades to a zero clock rather than an error: dirty upstream data must
// never abort a render, it just places the event at the start of its
// period.
func ParseClock(s string) GameClock {
	s = strings.TrimSpace(s)
	for _, re := range []*regexp.Regexp{durationClockRe, colonClockRe} {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		minutes, err := strconv.Atoi(m[1])
		if err != nil {
			break
		}
		seconds, err := strconv.ParseFloat(m[2], 64)
		if err != nil || seconds >= 60 {
			break
		}
		return GameClock{MinutesLeft: minutes, SecondsLeft: seconds}
	}
	return GameClock{}
}

// String renders the clock as MM:SS for display.
func (c GameClock) String() string {
	return strconv.Itoa(c.MinutesLeft) + ":" + twoDigit(int(c.SecondsLeft))
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
