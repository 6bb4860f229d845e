package binplot

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg/draw"
)

func TestString2Color(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"green", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
		{"blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"nonsens", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
	}

	for i, tc := range tests {
		got := String2Color(tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestString2Float(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"2.5", 2.5},
		{"50%", 0.5},
		{"-3", 0},
		{"99", 10},
		{"", 7},
		{"big", 7},
	}
	for i, tc := range tests {
		if got := String2Float(tc.s, 0, 10, 7); got != tc.want {
			t.Errorf("%d %q: got %g, want %g", i, tc.s, got, tc.want)
		}
	}
}

func TestString2Glyph(t *testing.T) {
	if _, ok := String2Glyph("solid-square").(draw.BoxGlyph); !ok {
		t.Errorf("solid-square is not a box")
	}
	if _, ok := String2Glyph("solid-circle").(draw.CircleGlyph); !ok {
		t.Errorf("solid-circle is not a circle")
	}
	if String2Dashes("solid") != nil || len(String2Dashes("dotdash")) != 4 {
		t.Errorf("unexpected dashes")
	}
}

func TestMergeStyles(t *testing.T) {
	s := MergeStyles(Style{"color": "blue", "size": ""}, DefaultTheme.LineStyle)
	if s["color"] != "blue" || s["size"] != "1" || s["linetype"] != "solid" {
		t.Errorf("Got %v", s)
	}
}
