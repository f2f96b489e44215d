// Package teams holds the static NBA franchise tables: tricode to
// display name and tricode to terminal color. Both are closed mappings
// with explicit fallbacks; unknown tricodes render, they just render
// plainly.
package teams

import "github.com/gdamore/tcell/v2"

type info struct {
	name  string
	color tcell.Color
}

var franchises = map[string]info{
	"ATL": {"Hawks", tcell.NewHexColor(0xE03A3E)},
	"BOS": {"Celtics", tcell.NewHexColor(0x007A33)},
	"BKN": {"Nets", tcell.NewHexColor(0xBEBEBE)},
	"CHA": {"Hornets", tcell.NewHexColor(0x00788C)},
	"CHI": {"Bulls", tcell.NewHexColor(0xCE1141)},
	"CLE": {"Cavaliers", tcell.NewHexColor(0x860038)},
	"DAL": {"Mavericks", tcell.NewHexColor(0x00538C)},
	"DEN": {"Nuggets", tcell.NewHexColor(0xFEC524)},
	"DET": {"Pistons", tcell.NewHexColor(0x1D42BA)},
	"GSW": {"Warriors", tcell.NewHexColor(0xFFC72C)},
	"HOU": {"Rockets", tcell.NewHexColor(0xCE1141)},
	"IND": {"Pacers", tcell.NewHexColor(0xFDBB30)},
	"LAC": {"Clippers", tcell.NewHexColor(0xC8102E)},
	"LAL": {"Lakers", tcell.NewHexColor(0x552583)},
	"MEM": {"Grizzlies", tcell.NewHexColor(0x5D76A9)},
	"MIA": {"Heat", tcell.NewHexColor(0x98002E)},
	"MIL": {"Bucks", tcell.NewHexColor(0x00471B)},
	"MIN": {"Timberwolves", tcell.NewHexColor(0x236192)},
	"NOP": {"Pelicans", tcell.NewHexColor(0x85714D)},
	"NYK": {"Knicks", tcell.NewHexColor(0xF58426)},
	"OKC": {"Thunder", tcell.NewHexColor(0x007AC1)},
	"ORL": {"Magic", tcell.NewHexColor(0x0077C0)},
	"PHI": {"76ers", tcell.NewHexColor(0x006BB6)},
	"PHX": {"Suns", tcell.NewHexColor(0xE56020)},
	"POR": {"Trail Blazers", tcell.NewHexColor(0xE03A3E)},
	"SAC": {"Kings", tcell.NewHexColor(0x5A2D81)},
	"SAS": {"Spurs", tcell.NewHexColor(0xC4CED4)},
	"TOR": {"Raptors", tcell.NewHexColor(0xCE1141)},
	"UTA": {"Jazz", tcell.NewHexColor(0x002B5C)},
	"WAS": {"Wizards", tcell.NewHexColor(0x002B5C)},
}

// DefaultColor is used for tricodes outside the table (expansion teams,
// all-star exhibitions, dirty data).
var DefaultColor = tcell.ColorWhite

// Color returns the franchise color for a tricode, or DefaultColor.
func Color(tricode string) tcell.Color {
	if f, ok := franchises[tricode]; ok {
		return f.color
	}
	return DefaultColor
}

// Name returns the franchise nickname for a tricode, or the tricode
// itself when unknown.
func Name(tricode string) string {
	if f, ok := franchises[tricode]; ok {
		return f.name
	}
	return tricode
}

// Known reports whether the tricode is in the table.
func Known(tricode string) bool {
	_, ok := franchises[tricode]
	return ok
}
