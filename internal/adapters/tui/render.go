package tui

import (
	"fmt"
	"strings"

	service "github.com/frankyaorenjie/nba-score-cli/internal/app"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/chart"
	"github.com/frankyaorenjie/nba-score-cli/internal/domain/teams"
)

// renderDetail builds the detail pane text: header, colored chart, axis,
// and the lead-change count.
func renderDetail(d service.GameDetail) string {
	var b strings.Builder

	g := d.Game
	fmt.Fprintf(&b, "%s%s[-] %d - %d %s%s[-]   [gray]%s[-]\n\n",
		colorTag(g.Away.Tricode), g.Away.Tricode, g.Away.Score,
		g.Home.Score, colorTag(g.Home.Tricode), g.Home.Tricode,
		g.StatusText)

	writeChart(&b, d.Chart, true)

	fmt.Fprintf(&b, "\nLead changes: %d\n", d.LeadChanges)
	return b.String()
}

// RenderText builds a plain, uncolored rendering of a chart for one-shot
// stdout output.
func RenderText(c chart.Chart, leadChanges int) string {
	var b strings.Builder
	writeChart(&b, c, false)
	fmt.Fprintf(&b, "\nLead changes: %d\n", leadChanges)
	return b.String()
}

// writeChart rasterized-grid -> text. With color enabled, each plotted
// glyph gets the leading team's color tag; the display layer owns this
// mapping, the chart itself only carries glyph classes.
func writeChart(b *strings.Builder, c chart.Chart, color bool) {
	margin := 0
	for _, l := range c.YLabels {
		if len(l) > margin {
			margin = len(l)
		}
	}

	for r := 0; r < c.Rows; r++ {
		label := ""
		if r < len(c.YLabels) {
			label = c.YLabels[r]
		}
		b.WriteString(strings.Repeat(" ", margin-len(label)))
		b.WriteString(label)
		b.WriteByte(' ')
		for x := 0; x < c.Cols; x++ {
			cell := c.Grid[r][x]
			if !color || cell.Ch != '•' {
				b.WriteRune(cell.Ch)
				continue
			}
			switch cell.Class {
			case chart.HomeLeading:
				b.WriteString(colorTag(c.Home))
			case chart.AwayLeading:
				b.WriteString(colorTag(c.Away))
			default:
				b.WriteString("[white]")
			}
			b.WriteRune(cell.Ch)
			b.WriteString("[-]")
		}
		b.WriteByte('\n')
	}

	// Bottom axis: tick labels at their data columns.
	axis := make([]byte, c.Cols)
	for i := range axis {
		axis[i] = ' '
	}
	for _, t := range c.XLabels {
		for i := 0; i < len(t.Label) && t.Col+i < c.Cols; i++ {
			axis[t.Col+i] = t.Label[i]
		}
	}
	b.WriteString(strings.Repeat(" ", margin+1))
	b.WriteString(strings.TrimRight(string(axis), " "))
	b.WriteByte('\n')
}

// colorTag returns the tview color tag for a team's franchise color.
func colorTag(tricode string) string {
	return fmt.Sprintf("[#%06x]", teams.Color(tricode).Hex())
}
