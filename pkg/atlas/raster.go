package atlas

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"
)

var (
	ColorWater     = color.RGBA{8, 10, 15, 255}
	ColorLand      = color.RGBA{26, 29, 35, 255}
	ColorOutline   = color.RGBA{36, 42, 53, 255}
	ColorHighlight = color.RGBA{0, 191, 255, 255}
)

// Rasterize draws the map into a size x size image. The named feature, if any,
// is filled with ColorHighlight.
func (a *Atlas) Rasterize(size int, highlight string) *image.RGBA {
	a.compute()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{ColorWater}, image.Point{}, draw.Src)
	scale := float64(size) / ViewSize
	for _, pf := range a.projected {
		c := ColorLand
		if highlight != "" && strings.EqualFold(pf.name, highlight) {
			c = ColorHighlight
		}
		fillRings(img, pf.rings, scale, c)
		for _, ring := range pf.rings {
			drawRing(img, ring, scale, ColorOutline)
		}
	}
	return img
}

// RasterizeFeature draws only the named feature on a transparent image, for
// use as an overlay on top of a Rasterize background.
func (a *Atlas) RasterizeFeature(size int, name string, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	rings := a.ProjectedRings(name)
	if rings == nil {
		return img
	}
	fillRings(img, rings, float64(size)/ViewSize, c)
	return img
}

// fillRings is an even-odd scanline fill across all rings.
func fillRings(img *image.RGBA, rings []orb.Ring, scale float64, c color.RGBA) {
	if len(rings) == 0 {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, ring := range rings {
		for _, p := range ring {
			y := p.Y() * scale
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}
	if math.IsInf(minY, 0) {
		return
	}
	var nodes []int
	for y := int(minY); y <= int(maxY); y++ {
		if y < 0 || y >= h {
			continue
		}
		nodes = nodes[:0]
		fy := float64(y)
		for _, ring := range rings {
			for i := 0; i < len(ring); i++ {
				j := (i + 1) % len(ring)
				yi, yj := ring[i].Y()*scale, ring[j].Y()*scale
				if (yi < fy && yj >= fy) || (yj < fy && yi >= fy) {
					xi, xj := ring[i].X()*scale, ring[j].X()*scale
					nodes = append(nodes, int(xi+(fy-yi)/(yj-yi)*(xj-xi)))
				}
			}
		}
		sort.Ints(nodes)
		for i := 0; i < len(nodes)-1; i += 2 {
			xs, xe := nodes[i], nodes[i+1]
			if xs < 0 {
				xs = 0
			}
			if xe >= w {
				xe = w - 1
			}
			for x := xs; x < xe; x++ {
				setPixel(img, x, y, c)
			}
		}
	}
}

// drawRing strokes a ring given in view coordinates. Closing is implied by
// the GeoJSON ring repeating its first point.
func drawRing(img *image.RGBA, ring orb.Ring, scale float64, c color.RGBA) {
	for i := 1; i < len(ring); i++ {
		drawSegment(img, scaled(ring[i-1], scale), scaled(ring[i], scale), c)
	}
}

func scaled(p orb.Point, scale float64) orb.Point {
	return orb.Point{p.X() * scale, p.Y() * scale}
}

// drawSegment plots one pixel per step along the longer axis of a-b.
func drawSegment(img *image.RGBA, a, b orb.Point, c color.RGBA) {
	d := orb.Point{b.X() - a.X(), b.Y() - a.Y()}
	steps := int(math.Ceil(math.Max(math.Abs(d.X()), math.Abs(d.Y()))))
	if steps == 0 {
		setPixel(img, int(math.Round(a.X())), int(math.Round(a.Y())), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setPixel(img, int(math.Round(a.X()+d.X()*t)), int(math.Round(a.Y()+d.Y()*t)), c)
	}
}

// setPixel writes c at x,y, ignoring points outside img.
func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}
	off := img.PixOffset(x, y)
	img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = c.R, c.G, c.B, c.A
}
