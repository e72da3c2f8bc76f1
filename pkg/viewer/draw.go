package viewer

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sudorandom/travel-atlas/pkg/atlas"
	"github.com/sudorandom/travel-atlas/pkg/citylist"
	"github.com/sudorandom/travel-atlas/pkg/selection"
)

const (
	margin   = 40.0
	fontSize = 22.0
	lineGap  = 32.0
	maxRows  = 24
)

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.screen {
	case ScreenMap:
		g.drawMap(screen)
	case ScreenList:
		g.drawList(screen)
	}
}

func (g *Game) drawMap(screen *ebiten.Image) {
	screen.DrawImage(g.bgImage, nil)
	if g.highlight != nil {
		screen.DrawImage(g.highlight, nil)
	}

	st := g.machine.State()
	switch st.Phase {
	case selection.Selected:
		g.drawPanel(screen, []string{selection.Prompt(st), "Enter: show details    Esc: cancel"})
	case selection.DetailShown:
		if g.detail != nil {
			g.drawPanel(screen, DetailLines(*g.detail, maxRows-6))
		}
	default:
		g.drawPanel(screen, []string{"Tap a country    Tab: city list"})
	}
}

func (g *Game) drawList(screen *ebiten.Image) {
	screen.Fill(atlas.ColorWater)
	lines := []string{"Search: " + g.list.Query + cursor(g.ticks)}
	switch {
	case g.list.Loading:
		lines = append(lines, "Loading"+strings.Repeat(".", (g.ticks/15)%4))
	case g.list.Failed:
		lines = append(lines, "Could not load cities")
	default:
		lines = append(lines, fmt.Sprintf("%d of %d cities", len(g.list.Visible), len(g.list.Records)))
		lines = append(lines, Rows(g.list.Visible, maxRows)...)
	}
	g.drawText(screen, lines, margin, margin)
}

// drawPanel draws lines in a box along the bottom of the view.
func (g *Game) drawPanel(screen *ebiten.Image, lines []string) {
	h := float64(len(lines))*lineGap + 20
	top := float64(g.Size) - margin - h
	w := float64(g.Size) - 2*margin
	vector.DrawFilledRect(screen, float32(margin), float32(top), float32(w), float32(h), ColorPanel, false)
	vector.StrokeRect(screen, float32(margin), float32(top), float32(w), float32(h), 1, ColorBorder, false)
	vector.DrawFilledRect(screen, float32(margin), float32(top), 4, float32(h), ColorAccent, false)
	g.drawText(screen, lines, margin+15, top+10)
}

func (g *Game) drawText(screen *ebiten.Image, lines []string, x, y float64) {
	if g.fontSource == nil {
		return
	}
	face := &text.GoTextFace{Source: g.fontSource, Size: fontSize}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*lineGap)
		op.ColorScale.Scale(1, 1, 1, 0.9)
		text.Draw(screen, line, face, op)
	}
}

func cursor(ticks int) string {
	if (ticks/30)%2 == 0 {
		return "_"
	}
	return ""
}

// EditQuery applies typed characters and a backspace to a query.
func EditQuery(q string, typed []rune, backspace bool) string {
	if backspace && q != "" {
		r := []rune(q)
		q = string(r[:len(r)-1])
	}
	for _, c := range typed {
		if c >= ' ' {
			q += string(c)
		}
	}
	return q
}

// Rows formats at most limit records as list lines.
func Rows(records []citylist.CityRecord, limit int) []string {
	n := len(records)
	if n > limit {
		n = limit
	}
	rows := make([]string, 0, n+1)
	for _, r := range records[:n] {
		rows = append(rows, fmt.Sprintf("%s, %s", r.City, r.Country))
	}
	if len(records) > limit {
		rows = append(rows, fmt.Sprintf("... %d more", len(records)-limit))
	}
	return rows
}

// DetailLines renders the detail panel, listing at most maxCities cities.
func DetailLines(d citylist.Detail, maxCities int) []string {
	title := d.Name
	if d.ISO2 != "" {
		title = fmt.Sprintf("%s (%s)", d.Name, d.ISO2)
	}
	lines := []string{title}
	if d.Capital != "" {
		lines = append(lines, "Capital: "+d.Capital)
	}
	if d.Region != "" {
		lines = append(lines, "Region: "+d.Region)
	}
	if len(d.Cities) == 0 {
		lines = append(lines, "No cities loaded")
	} else {
		shown := d.Cities
		if len(shown) > maxCities {
			shown = shown[:maxCities]
		}
		line := "Cities: " + strings.Join(shown, ", ")
		if len(d.Cities) > maxCities {
			line += fmt.Sprintf(" and %d more", len(d.Cities)-maxCities)
		}
		lines = append(lines, line)
	}
	return append(lines, "Backspace: back to map")
}
