package binplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// String2Float parses s as a float clamped to [low,high]. A trailing "%"
// divides by 100. Unparsable values yield def.
func String2Float(s string, low, high, def float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// -------------------------------------------------------------------------
// Points

// String2Glyph maps a point shape name to a glyph drawer.
func String2Glyph(s string) draw.GlyphDrawer {
	switch s {
	case "circle":
		return draw.RingGlyph{}
	case "square":
		return draw.SquareGlyph{}
	case "delta":
		return draw.TriangleGlyph{}
	case "solid-square":
		return draw.BoxGlyph{}
	case "solid-delta":
		return draw.PyramidGlyph{}
	case "cross":
		return draw.CrossGlyph{}
	case "plus":
		return draw.PlusGlyph{}
	}
	return draw.CircleGlyph{}
}

// -------------------------------------------------------------------------
// Lines

// String2Dashes maps a line type name to a dash pattern. Solid and
// unknown line types have no dashes.
func String2Dashes(s string) []vg.Length {
	switch s {
	case "dashed":
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case "dotted":
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case "dotdash":
		return []vg.Length{vg.Points(1), vg.Points(2), vg.Points(4), vg.Points(2)}
	case "longdash":
		return []vg.Length{vg.Points(10), vg.Points(3)}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a builtin color name.
// Anything else is drawn in a conspicuous pinkish gray.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
