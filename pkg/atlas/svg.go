package atlas

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type SVGOptions struct {
	Selected  string
	Land      string
	Outline   string
	Highlight string
	Water     string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Land:      "#1a1d23",
		Outline:   "#242a35",
		Highlight: "#00bfff",
		Water:     "#080a0f",
	}
}

// PathData renders rings as SVG path data in view coordinates.
func PathData(rings []orb.Ring) string {
	var sb strings.Builder
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		for i, p := range ring {
			if i == 0 {
				sb.WriteString("M")
			} else {
				sb.WriteString("L")
			}
			sb.WriteString(strconv.FormatFloat(p.X(), 'f', 2, 64))
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(p.Y(), 'f', 2, 64))
		}
		sb.WriteString("Z")
	}
	return sb.String()
}

// WriteSVG draws every feature into a 0 0 1000 1000 viewbox.
func (a *Atlas) WriteSVG(w io.Writer, opts SVGOptions) error {
	a.compute()
	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">`+"\n", ViewSize, ViewSize); err != nil {
		return err
	}
	if opts.Water != "" {
		if _, err := fmt.Fprintf(w, `<rect width="%g" height="%g" fill="%s"/>`+"\n", ViewSize, ViewSize, opts.Water); err != nil {
			return err
		}
	}
	for _, pf := range a.projected {
		fill := opts.Land
		if opts.Selected != "" && strings.EqualFold(pf.name, opts.Selected) {
			fill = opts.Highlight
		}
		_, err := fmt.Fprintf(w, `<path data-name="%s" d="%s" fill="%s" stroke="%s" fill-rule="evenodd"/>`+"\n",
			html.EscapeString(pf.name), PathData(pf.rings), fill, opts.Outline)
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}
