// Package chart rasterizes a score-differential series into a bounded
// character grid with a data-driven vertical scale.
//
// The grid is an abstract rendering: each plotted point carries a glyph
// class (home leading, away leading, neutral) and the display layer
// decides what color that maps to. The package performs no I/O.
package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/frankyaorenjie/nba-score-cli/internal/domain/model"
)

// GlyphClass tells the display layer which side a plotted point favors.
type GlyphClass int

const (
	Neutral GlyphClass = iota
	HomeLeading
	AwayLeading
)

// Grid glyphs.
const (
	pointGlyph    = '•'
	baselineGlyph = '─'
	blankGlyph    = ' '
)

const (
	// Horizontal density: character columns per game minute, before the
	// available width caps it.
	colsPerMinute = 1.8

	// Differentials above this magnitude switch to the coarser row scale.
	coarseThreshold = 20

	coarseInterval = 4
	fineInterval   = 2

	regulationPeriods = 4
	minutesPerPeriod  = 12
	overtimeMinutes   = 5
)

// Cell is one character of the rasterized grid.
type Cell struct {
	Ch    rune
	Class GlyphClass
}

// Tick is a horizontal-axis label anchored to a column.
type Tick struct {
	Col   int
	Label string
}

// Chart is the rasterized result handed to the display layer.
type Chart struct {
	Grid     [][]Cell // Rows x Cols
	YLabels  []string // one per row, right-aligned
	XLabels  []Tick   // period boundaries
	Rows     int
	Cols     int
	ZeroRow  int
	Interval int
	YMax     int
	YMin     int
	Home     string
	Away     string
}

// Rasterize plots the differential series onto a character grid no wider
// than width. The vertical scale is chosen from the data: a 2-point row
// interval for close games, 4 for blowouts, and the y range always
// straddles zero so the baseline is visible even in a wire-to-wire game.
//
// Each column holds at most one plotted glyph; when several samples map
// to the same column the temporally last one wins. A degenerate width
// still yields a renderable 1-column grid.
func Rasterize(series []model.DifferentialSample, home, away string, width int) Chart {
	totalMinutes := inferTotalMinutes(series)

	dataMax, dataMin := 0, 0
	for _, s := range series {
		if s.Diff > dataMax {
			dataMax = s.Diff
		}
		if s.Diff < dataMin {
			dataMin = s.Diff
		}
	}

	maxAbs := dataMax
	if -dataMin > maxAbs {
		maxAbs = -dataMin
	}
	if maxAbs < 1 {
		maxAbs = 1
	}
	interval := fineInterval
	if maxAbs > coarseThreshold {
		interval = coarseInterval
	}

	// Both bounds are pushed past zero so the axis brackets the
	// baseline even for a series that never leaves one side.
	top := dataMax
	if top < 1 {
		top = 1
	}
	bottom := dataMin
	if bottom > -1 {
		bottom = -1
	}
	yMax := int(math.Ceil(float64(top)/float64(interval))) * interval
	yMin := int(math.Floor(float64(bottom)/float64(interval))) * interval

	rows := (yMax-yMin)/interval + 1
	zeroRow := yMax / interval

	cols := int(math.Min(float64(width), float64(totalMinutes)*colsPerMinute))
	if cols < 1 {
		cols = 1
	}

	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
		ch := blankGlyph
		if r == zeroRow {
			ch = baselineGlyph
		}
		for c := range grid[r] {
			grid[r][c] = Cell{Ch: ch}
		}
	}

	for _, s := range series {
		x := int(s.NormalizedTime * float64(cols-1))
		if x < 0 {
			x = 0
		}
		if x >= cols {
			x = cols - 1
		}
		y := (yMax - roundToInterval(s.Diff, interval)) / interval
		if y < 0 || y >= rows {
			continue
		}

		// Clear the column before plotting so the last sample mapped
		// here is the only one that survives.
		for r := 0; r < rows; r++ {
			ch := blankGlyph
			if r == zeroRow {
				ch = baselineGlyph
			}
			grid[r][x] = Cell{Ch: ch}
		}

		class := Neutral
		switch {
		case y < zeroRow:
			class = HomeLeading
		case y > zeroRow:
			class = AwayLeading
		}
		grid[y][x] = Cell{Ch: pointGlyph, Class: class}
	}

	return Chart{
		Grid:     grid,
		YLabels:  yLabels(yMax, yMin, interval),
		XLabels:  periodTicks(totalMinutes, cols),
		Rows:     rows,
		Cols:     cols,
		ZeroRow:  zeroRow,
		Interval: interval,
		YMax:     yMax,
		YMin:     yMin,
		Home:     home,
		Away:     away,
	}
}

// inferTotalMinutes recovers the game length from the series itself:
// every sample carries elapsed/total, so any sample past minute zero
// determines the scale. A bare baseline series implies regulation.
func inferTotalMinutes(series []model.DifferentialSample) int {
	for i := len(series) - 1; i >= 0; i-- {
		s := series[i]
		if s.NormalizedTime > 0 {
			return int(math.Round(s.ElapsedMinutes / s.NormalizedTime))
		}
	}
	return regulationPeriods * minutesPerPeriod
}

// roundToInterval snaps a differential to the nearest multiple of the
// row interval. Lossy, but it keeps one glyph per row bucket.
func roundToInterval(diff, interval int) int {
	return int(math.Round(float64(diff)/float64(interval))) * interval
}

// yLabels builds the vertical axis from yMax down to yMin: positive
// values signed, zero bare, all right-aligned to a common width.
func yLabels(yMax, yMin, interval int) []string {
	raw := make([]string, 0, (yMax-yMin)/interval+1)
	widest := 0
	for v := yMax; v >= yMin; v -= interval {
		var label string
		switch {
		case v > 0:
			label = "+" + strconv.Itoa(v)
		default:
			label = strconv.Itoa(v)
		}
		if len(label) > widest {
			widest = len(label)
		}
		raw = append(raw, label)
	}
	labels := make([]string, len(raw))
	for i, label := range raw {
		labels[i] = strings.Repeat(" ", widest-len(label)) + label
	}
	return labels
}

// periodTicks marks period boundaries on the horizontal axis: Q1..Q4 at
// 12-minute steps, then OT labels advancing 5 minutes each against the
// same 12-minute-per-period scale the series was bucketed on.
func periodTicks(totalMinutes, cols int) []Tick {
	periods := totalMinutes / minutesPerPeriod
	if periods < regulationPeriods {
		periods = regulationPeriods
	}
	ticks := make([]Tick, 0, periods)
	for p := 1; p <= periods; p++ {
		var minute int
		var label string
		if p <= regulationPeriods {
			minute = (p - 1) * minutesPerPeriod
			label = "Q" + strconv.Itoa(p)
		} else {
			minute = regulationPeriods*minutesPerPeriod + (p-regulationPeriods-1)*overtimeMinutes
			label = "OT" + strconv.Itoa(p-regulationPeriods)
		}
		col := int(float64(minute) / float64(totalMinutes) * float64(cols-1))
		if col < 0 {
			col = 0
		}
		if col >= cols {
			col = cols - 1
		}
		ticks = append(ticks, Tick{Col: col, Label: label})
	}
	return ticks
}
