// Package timeline reconstructs a dense, per-minute score-differential
// series from a sparse play-by-play stream.
//
// The play-by-play feed is irregular: scoring plays arrive seconds or
// minutes apart and several may land inside the same game minute. The
// reconstructor discretizes the stream into integer minute buckets
// (last write wins within a bucket), counts lead changes, and fills
// gaps by carrying the last known differential forward so downstream
// charting always sees one sample per elapsed minute.
package timeline

import (
	"math"

	"github.com/frankyaorenjie/nba-score-cli/internal/domain/model"
)

// Regulation period length in minutes. Overtime periods are shorter on
// the court, but bucketing stays on the 12-minute-per-period scale the
// box score's period count implies.
const minutesPerPeriod = 12

// Result holds the reconstructed series and the lead-change count.
type Result struct {
	Series       []model.DifferentialSample
	LeadChanges  int
	TotalMinutes int
}

// Reconstruct converts play-by-play events into a gap-free differential
// series covering minutes 0..endMinute inclusive. For a final game the
// series spans the whole game; for a live game it stops at the last
// observed minute. Events are consumed in input order: later events
// overwrite earlier ones that fall in the same minute bucket, and lead
// changes are counted per event, not per bucket.
//
// Empty input (including play-by-play that never carries a score)
// yields the single pre-game baseline sample {0, 0, 0}.
func Reconstruct(game model.Game, events []model.PlayEvent) Result {
	totalMinutes := game.PeriodCount() * minutesPerPeriod

	buckets := make(map[int]int)
	maxBucket := 0
	leadChanges := 0
	lastLead := 0
	scored := false

	for _, ev := range events {
		if !ev.HasScore {
			continue
		}
		// A zero clock is the lossy fallback for unparseable tokens and
		// anchors the event at the start of its period.
		inPeriod := 0.0
		if ev.Clock != (model.GameClock{}) {
			inPeriod = minutesPerPeriod - float64(ev.Clock.MinutesLeft) - ev.Clock.SecondsLeft/60
		}
		bucket := int(math.Floor(float64(ev.Period-1)*minutesPerPeriod + inPeriod))

		diff := ev.Diff()
		buckets[bucket] = diff
		scored = true
		if bucket > maxBucket {
			maxBucket = bucket
		}

		if diff != 0 {
			if (lastLead > 0 && diff < 0) || (lastLead < 0 && diff > 0) {
				leadChanges++
			}
			lastLead = diff
		}
	}

	if !scored {
		return Result{
			Series:       []model.DifferentialSample{{ElapsedMinutes: 0, NormalizedTime: 0, Diff: 0}},
			TotalMinutes: totalMinutes,
		}
	}

	endMinute := maxBucket
	if game.Status == model.StatusFinal {
		endMinute = totalMinutes
	}

	series := make([]model.DifferentialSample, 0, endMinute+1)
	diff := 0
	for minute := 0; minute <= endMinute; minute++ {
		if d, ok := buckets[minute]; ok {
			diff = d
		}
		series = append(series, model.DifferentialSample{
			ElapsedMinutes: float64(minute),
			// Not clamped to 1.0: a malformed period count should show
			// up in the chart, not be hidden here.
			NormalizedTime: float64(minute) / float64(totalMinutes),
			Diff:           diff,
		})
	}

	return Result{Series: series, LeadChanges: leadChanges, TotalMinutes: totalMinutes}
}
