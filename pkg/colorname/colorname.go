// Package colorname labels RGB colors with the nearest CSS3/SVG color name.
package colorname

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/pyhub-apps/pdfcolors-golang/pkg/color"
)

type entry struct {
	name string
	rgb  [3]uint8
}

var (
	// palette follows colornames.Names, which is sorted by name.
	palette []entry
	// byRGB maps each palette value to its first name, so duplicates such
	// as aqua/cyan and gray/grey resolve to the alphabetically first one.
	byRGB = make(map[[3]uint8]string)
)

func init() {
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		rgb := [3]uint8{c.R, c.G, c.B}
		palette = append(palette, entry{name: name, rgb: rgb})
		if _, ok := byRGB[rgb]; !ok {
			byRGB[rgb] = name
		}
	}
}

// Denormalize scales a [0,1] triple to bytes, truncating like color.Hex.
func Denormalize(rgb [3]float64) [3]uint8 {
	return [3]uint8{color.Byte(rgb[0]), color.Byte(rgb[1]), color.Byte(rgb[2])}
}

// Name returns the standard name for rgb, or the nearest one if there is
// no exact match.
func Name(rgb [3]float64) string {
	name, _ := Lookup(Denormalize(rgb))
	return name
}

// Lookup returns the name for rgb and whether it was an exact match.
// Otherwise the name with the smallest squared RGB distance is returned;
// on a tie the first one in palette order wins.
func Lookup(rgb [3]uint8) (name string, exact bool) {
	if name, ok := byRGB[rgb]; ok {
		return name, true
	}
	return Nearest(rgb), false
}

// Nearest returns the palette name closest to rgb.
func Nearest(rgb [3]uint8) string {
	return nearest(palette, rgb)
}

// nearest scans p in order; an entry only replaces the current best when it
// is strictly closer, so the earliest of equidistant entries wins.
func nearest(p []entry, rgb [3]uint8) string {
	best, bestDist := "", -1
	for _, e := range p {
		d := distance(rgb, e.rgb)
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.name, d
		}
	}
	return best
}

// HexToName looks up a #RRGGBB (or RRGGBB) code.
func HexToName(hex string) (name string, exact bool, err error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return "", false, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return "", false, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	name, exact = Lookup([3]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v)})
	return name, exact, nil
}

func distance(a, b [3]uint8) int {
	d := 0
	for i := range a {
		x := int(a[i]) - int(b[i])
		d += x * x
	}
	return d
}
