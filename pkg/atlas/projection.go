package atlas

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

const (
	// ViewSize is the side of the square output space.
	ViewSize = 1000.0
	// Padding is added around the raw data bounds on every side.
	Padding = 10.0
	// Epsilon is the smallest axis span that is still projected linearly.
	Epsilon = 1e-9
)

var ErrDegenerateGeometry = errors.New("degenerate geometry: zero span bounds")

// Bounds is the padded axis-aligned box around every vertex of a feature set.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Width      float64
	Height     float64
}

// ComputeBounds walks every vertex once and pads the result by Padding.
// A set without vertices yields the zero Bounds.
func ComputeBounds(features []Feature) Bounds {
	var (
		b     orb.Bound
		found bool
	)
	for _, f := range features {
		for _, ring := range f.Polygons {
			for _, p := range ring {
				if !found {
					b = orb.Bound{Min: p, Max: p}
					found = true
					continue
				}
				b = b.Extend(p)
			}
		}
	}
	if !found {
		return Bounds{}
	}
	return boundsFrom(b.Pad(Padding))
}

func boundsFrom(b orb.Bound) Bounds {
	return Bounds{
		MinX:   b.Min.X(),
		MaxX:   b.Max.X(),
		MinY:   b.Min.Y(),
		MaxY:   b.Max.Y(),
		Width:  b.Max.X() - b.Min.X(),
		Height: b.Max.Y() - b.Min.Y(),
	}
}

// Validate reports ErrDegenerateGeometry for an axis Project cannot scale.
func (b Bounds) Validate() error {
	if b.Width <= Epsilon || b.Height <= Epsilon {
		return fmt.Errorf("%w: width=%g height=%g", ErrDegenerateGeometry, b.Width, b.Height)
	}
	return nil
}

// Project maps p into the [0,ViewSize] square. Each axis scales on its own, so
// the aspect ratio of the data is not kept. Y grows downwards, putting north at
// the top. An axis with no span maps to the middle of the view.
func Project(p orb.Point, b Bounds) (x, y float64) {
	x, y = ViewSize/2, ViewSize/2
	if b.Width > Epsilon {
		x = (p.X() - b.MinX) / b.Width * ViewSize
	}
	if b.Height > Epsilon {
		y = (b.MaxY - p.Y()) / b.Height * ViewSize
	}
	return x, y
}
