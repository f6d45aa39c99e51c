// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"math"
	"testing"

	"gioui.org/layout"
	"gioui.org/unit"
)

func TestBubbleLayout(t *testing.T) {
	child := fixed(image.Pt(90, 45))
	tests := []struct {
		bubble Bubble
		size   image.Point
		body   image.Rectangle
	}{
		{
			Bubble{ArrowHeight: unit.Dp(10)},
			image.Pt(90, 55),
			image.Rect(0, 10, 90, 55),
		},
		// The default arrow is 2/9 of the width.
		{
			Bubble{Side: SideBottom},
			image.Pt(90, 65),
			image.Rect(0, 0, 90, 45),
		},
		// The default arrow is 2/9 of the height.
		{
			Bubble{Side: SideLeft, Shadow: true, ShadowRadius: unit.Dp(5)},
			image.Pt(110, 55),
			image.Rect(15, 5, 105, 50),
		},
		{
			Bubble{Side: SideRight, ArrowHeight: unit.Dp(4), Margin: layout.UniformInset(unit.Dp(3))},
			image.Pt(100, 51),
			image.Rect(0, 0, 96, 51),
		},
		// The default shadow is 7/90 of the larger side.
		{
			Bubble{ArrowHeight: unit.Dp(10), Shadow: true},
			image.Pt(104, 69),
			image.Rect(7, 17, 97, 62),
		},
	}
	for _, test := range tests {
		b := test.bubble
		b.Color = color.NRGBA{A: 0xff}
		b.ShadowColor = color.NRGBA{A: 0x40}
		gtx := newContext(layout.Constraints{Max: image.Pt(500, 500)})
		dims := b.Layout(gtx, child)
		if dims.Size != test.size {
			t.Errorf("%v: size = %v, want %v", b.Side, dims.Size, test.size)
		}
		m := b.Margin
		content := image.Pt(90+gtx.Dp(m.Left+m.Right), 45+gtx.Dp(m.Top+m.Bottom))
		if got := b.shape(gtx, content).body; got != test.body {
			t.Errorf("%v: body = %v, want %v", b.Side, got, test.body)
		}
	}
}

func TestBubbleDefaults(t *testing.T) {
	gtx := newContext(layout.Constraints{Max: image.Pt(500, 500)})
	s := Bubble{Side: SideBottom}.shape(gtx, image.Pt(90, 45))
	if math.Abs(float64(s.arrowW-20)) > 1e-3 {
		t.Errorf("default arrow width = %v, want 20", s.arrowW)
	}
	if math.Abs(float64(s.corner-2.5)) > 1e-3 {
		t.Errorf("default corner radius = %v, want 2.5", s.corner)
	}
	if s.tip != 45 {
		t.Errorf("default tip = %v, want centre 45", s.tip)
	}
}

func TestBubbleArrowClamp(t *testing.T) {
	gtx := newContext(layout.Constraints{Max: image.Pt(500, 500)})
	tests := []struct {
		offset unit.Dp
		want   float32
	}{
		{1, 9},
		{30, 30},
		{1000, 91},
	}
	for _, test := range tests {
		b := Bubble{
			ArrowWidth:   unit.Dp(10),
			ArrowHeight:  unit.Dp(10),
			ArrowOffset:  test.offset,
			CornerRadius: unit.Dp(4),
		}
		if got := b.shape(gtx, image.Pt(100, 40)).tip; got != test.want {
			t.Errorf("offset %v: tip = %v, want %v", test.offset, got, test.want)
		}
	}

	// An arrow wider than the straight edge is centred.
	b := Bubble{ArrowWidth: unit.Dp(100), ArrowHeight: unit.Dp(5), ArrowOffset: 3, Side: SideLeft}
	s := b.shape(gtx, image.Pt(40, 30))
	if s.tip != 15 || s.arrowW != 30 {
		t.Errorf("wide arrow: tip %v width %v, want 15 and 30", s.tip, s.arrowW)
	}
}

func TestBubbleChildConstraints(t *testing.T) {
	var childMax image.Point
	child := func(gtx layout.Context) layout.Dimensions {
		childMax = gtx.Constraints.Max
		return layout.Dimensions{Size: image.Pt(10, 10)}
	}
	b := Bubble{ArrowHeight: unit.Dp(10), Shadow: true, ShadowRadius: unit.Dp(5)}
	b.Layout(newContext(layout.Constraints{Max: image.Pt(200, 200)}), child)
	if want := image.Pt(190, 180); childMax != want {
		t.Errorf("child max = %v, want %v", childMax, want)
	}
}

func TestBubbleChildren(t *testing.T) {
	gtx := newContext(layout.Constraints{Min: image.Pt(10, 10), Max: image.Pt(100, 100)})
	if dims := (Bubble{}).Layout(gtx); dims.Size != image.Pt(10, 10) {
		t.Errorf("empty bubble size = %v, want minimum constraint", dims.Size)
	}

	defer func() {
		if err := recover(); err == nil {
			t.Error("Bubble with two children did not panic")
		}
	}()
	w := fixed(image.Pt(1, 1))
	Bubble{}.Layout(gtx, w, w)
}
