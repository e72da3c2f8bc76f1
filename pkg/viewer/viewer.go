// Package viewer is the interactive map and city list, drawn with ebiten.
package viewer

import (
	"bytes"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sudorandom/travel-atlas/pkg/atlas"
	"github.com/sudorandom/travel-atlas/pkg/citylist"
	"github.com/sudorandom/travel-atlas/pkg/selection"
	"golang.org/x/image/font/gofont/goregular"
)

type Screen int

const (
	ScreenMap Screen = iota
	ScreenList
)

var (
	ColorPanel  = color.RGBA{0, 0, 0, 180}
	ColorBorder = color.RGBA{36, 42, 53, 255}
	ColorAccent = atlas.ColorHighlight
)

type Game struct {
	Size int

	atlas   *atlas.Atlas
	machine selection.Machine
	list    citylist.ListState
	loads   <-chan citylist.Result
	screen  Screen

	bgImage     *ebiten.Image
	highlight   *ebiten.Image
	highlighted string
	detail      *citylist.Detail

	fontSource *text.GoTextFaceSource
	ticks      int
}

// NewGame builds the viewer. loads delivers the city list once; a closed
// channel without a value leaves the list loading forever, which only happens
// after teardown.
func NewGame(a *atlas.Atlas, loads <-chan citylist.Result) *Game {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		slog.Warn("Font unavailable, drawing without labels", "error", err)
	}
	size := int(atlas.ViewSize)
	return &Game{
		Size:       size,
		atlas:      a,
		list:       citylist.NewListState(),
		loads:      loads,
		bgImage:    ebiten.NewImageFromImage(a.Rasterize(size, "")),
		fontSource: s,
	}
}

func (g *Game) Layout(w, h int) (int, int) { return g.Size, g.Size }

func (g *Game) Update() error {
	g.ticks++
	g.pollLoad()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if g.screen == ScreenMap {
			g.screen = ScreenList
		} else {
			g.screen = ScreenMap
		}
		return nil
	}

	switch g.screen {
	case ScreenMap:
		g.updateMap()
	case ScreenList:
		g.updateList()
	}
	return nil
}

func (g *Game) pollLoad() {
	if g.loads == nil {
		return
	}
	select {
	case res, ok := <-g.loads:
		g.loads = nil
		if ok {
			g.list = g.list.WithResult(res)
		}
	default:
	}
}

func (g *Game) updateMap() {
	for _, p := range pressedPoints() {
		g.apply(selection.Event{Kind: selection.EventTap, Feature: g.atlas.FeatureAt(p[0], p[1])})
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.apply(selection.Event{Kind: selection.EventConfirm})
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.apply(selection.Event{Kind: selection.EventCancel})
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.apply(selection.Event{Kind: selection.EventBack})
	}
}

func (g *Game) apply(ev selection.Event) {
	st, err := g.machine.Apply(ev)
	if err != nil {
		slog.Debug("Ignoring input", "event", ev.Kind, "error", err)
		return
	}
	slog.Debug("Selection changed", "state", st)
	g.syncSelection(st)
}

// syncSelection keeps the overlay and detail panel in step with the machine.
func (g *Game) syncSelection(st selection.State) {
	if st.Feature != g.highlighted {
		g.highlighted = st.Feature
		g.highlight = nil
		if st.Feature != "" {
			g.highlight = ebiten.NewImageFromImage(g.atlas.RasterizeFeature(g.Size, st.Feature, atlas.ColorHighlight))
		}
	}
	g.detail = nil
	if st.Phase == selection.DetailShown {
		d := citylist.DetailFor(st.Feature, g.list.Records)
		g.detail = &d
	}
}

func (g *Game) updateList() {
	q := EditQuery(g.list.Query, ebiten.AppendInputChars(nil), inpututil.IsKeyJustPressed(ebiten.KeyBackspace))
	if q != g.list.Query {
		g.list = g.list.WithQuery(q)
	}
}

func pressedPoints() [][2]float64 {
	var pts [][2]float64
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, [2]float64{float64(x), float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, [2]float64{float64(x), float64(y)})
	}
	return pts
}
