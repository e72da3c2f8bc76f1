package atlas

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// FeatureAt returns the name of the feature under the view point (x, y), or
// "" when the point falls on no feature. Rings are combined with the even-odd
// rule, so holes are not part of a feature. When features overlap the last
// one in data order wins, matching the drawing order.
func (a *Atlas) FeatureAt(x, y float64) string {
	a.compute()
	pt := orb.Point{x, y}
	for i := len(a.projected) - 1; i >= 0; i-- {
		pf := a.projected[i]
		if len(pf.rings) == 0 || !pf.bound.Contains(pt) {
			continue
		}
		inside := false
		for _, ring := range pf.rings {
			if len(ring) < 3 {
				continue
			}
			if planar.RingContains(ring, pt) {
				inside = !inside
			}
		}
		if inside {
			return pf.name
		}
	}
	return ""
}
