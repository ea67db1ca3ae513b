// seehuhn.de/go/frame - rectangle geometry for layout code
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package frame

import (
	"math/rand/v2"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
)

// randRect returns a rectangle with coordinates on a 1/8 grid, so that
// sums and halves are exact.
func randRect(rng *rand.Rand) Rect {
	return R(
		float64(rng.IntN(161)-80)/8,
		float64(rng.IntN(161)-80)/8,
		float64(rng.IntN(80)+1)/8,
		float64(rng.IntN(80)+1)/8,
	)
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestVertexCoordinates(t *testing.T) {
	r := R(1, 2, 3, 4) // x in [1,4], y in [2,6]
	tests := []struct {
		c    Convention
		v    RectVertex
		want Point
	}{
		{YDown, TopLeft, Pt(1, 2)},
		{YDown, BottomLeft, Pt(1, 6)},
		{YDown, BottomRight, Pt(4, 6)},
		{YDown, TopRight, Pt(4, 2)},
		{YUp, TopLeft, Pt(1, 6)},
		{YUp, BottomLeft, Pt(1, 2)},
		{YUp, BottomRight, Pt(4, 2)},
		{YUp, TopRight, Pt(4, 6)},
	}
	for _, test := range tests {
		got := test.c.Vertex(r, test.v)
		if got != test.want {
			t.Errorf("%s: %s = %s, want %s", test.c, test.v, got, test.want)
		}
	}

	if r.TopLeft() != Pt(1, 2) || r.BottomRight() != Pt(4, 6) ||
		r.BottomLeft() != Pt(1, 6) || r.TopRight() != Pt(4, 2) {
		t.Error("named corner accessors disagree with YDown")
	}
}

func TestVertexNegativeSize(t *testing.T) {
	r := R(4, 6, -3, -4)
	if got := r.TopLeft(); got != Pt(1, 2) {
		t.Errorf("TopLeft = %s, want (1, 2)", got)
	}
	if got := r.BottomRight(); got != Pt(4, 6) {
		t.Errorf("BottomRight = %s, want (4, 6)", got)
	}
}

func TestNextVertex(t *testing.T) {
	cw := []RectVertex{TopLeft, TopRight, BottomRight, BottomLeft, TopLeft}
	for i := range 4 {
		if got := cw[i].Next(Clockwise); got != cw[i+1] {
			t.Errorf("%s.Next(Clockwise) = %s, want %s", cw[i], got, cw[i+1])
		}
		if got := cw[i+1].Next(CounterClockwise); got != cw[i] {
			t.Errorf("%s.Next(CounterClockwise) = %s, want %s", cw[i+1], got, cw[i])
		}
	}
}

func collect(seq func(func(RectVertex, Point) bool)) ([]RectVertex, []Point) {
	var vs []RectVertex
	var ps []Point
	for v, p := range seq {
		vs = append(vs, v)
		ps = append(ps, p)
	}
	return vs, ps
}

func TestVerticesOrder(t *testing.T) {
	r := R(0, 0, 2, 1)
	tests := []struct {
		d     Direction
		start RectVertex
		want  []RectVertex
	}{
		{Clockwise, TopLeft, []RectVertex{TopLeft, TopRight, BottomRight, BottomLeft}},
		{Clockwise, BottomRight, []RectVertex{BottomRight, BottomLeft, TopLeft, TopRight}},
		{CounterClockwise, TopLeft, []RectVertex{TopLeft, BottomLeft, BottomRight, TopRight}},
		{CounterClockwise, TopRight, []RectVertex{TopRight, TopLeft, BottomLeft, BottomRight}},
	}
	for _, test := range tests {
		vs, ps := collect(r.Vertices(test.d, test.start))
		if !slices.Equal(vs, test.want) {
			t.Errorf("%s from %s: got %v, want %v", test.d, test.start, vs, test.want)
		}
		for i, v := range vs {
			if ps[i] != r.Vertex(v) {
				t.Errorf("%s from %s: point %d = %s, want %s",
					test.d, test.start, i, ps[i], r.Vertex(v))
			}
		}
	}
}

func TestVerticesReverse(t *testing.T) {
	rng := newRand()
	for range 200 {
		r := randRect(rng)
		_, cw := collect(r.Vertices(Clockwise, TopLeft))
		_, ccw := collect(r.Vertices(CounterClockwise, TopLeft))
		if len(cw) != 4 || len(ccw) != 4 {
			t.Fatalf("%s: got %d and %d vertices", r, len(cw), len(ccw))
		}

		// Both walks start at the top left; after that, the counter-clockwise
		// walk is the clockwise walk backwards.
		rev := slices.Clone(cw[1:])
		slices.Reverse(rev)
		if ccw[0] != cw[0] || !slices.Equal(ccw[1:], rev) {
			t.Errorf("%s: cw %v and ccw %v are not reverses", r, cw, ccw)
		}

		seen := make(map[RectVertex]bool)
		vs, _ := collect(r.Vertices(Clockwise, BottomLeft))
		for _, v := range vs {
			seen[v] = true
		}
		if len(seen) != 4 {
			t.Errorf("%s: clockwise walk visits %v", r, vs)
		}
	}
}

func TestVerticesRestartable(t *testing.T) {
	seq := R(0, 0, 1, 1).Vertices(Clockwise, BottomLeft)
	first, _ := collect(seq)
	second, _ := collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second walk %v differs from first %v", second, first)
	}
}

func TestVerticesEarlyStop(t *testing.T) {
	n := 0
	for range R(0, 0, 1, 1).AllVertices() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("loop ran %d times, want 2", n)
	}
}

func TestVertexFor(t *testing.T) {
	rng := newRand()
	for range 200 {
		r := randRect(rng)
		for _, c := range []Convention{YDown, YUp} {
			for _, v := range AllVertices {
				got, ok := c.VertexFor(r, c.Vertex(r, v))
				if !ok || got != v {
					t.Errorf("%s %s: VertexFor(%s) = %s, %t", c, r, v, got, ok)
				}
			}
		}
	}

	r := R(0, 0, 10, 10)
	for _, p := range []Point{Pt(5, 5), Pt(0, 5), Pt(10, 10.000001), Pt(-0.5, 0)} {
		if v, ok := r.VertexFor(p); ok {
			t.Errorf("VertexFor(%s) = %s, want no match", p, v)
		}
	}
}

func TestVerticesFrom(t *testing.T) {
	r := R(0, 0, 4, 2)
	seq, ok := YDown.VerticesFrom(r, Clockwise, Pt(4, 2)) // bottom right in YDown
	if !ok {
		t.Fatal("corner not found")
	}
	vs, _ := collect(seq)
	want := []RectVertex{BottomRight, BottomLeft, TopLeft, TopRight}
	if !slices.Equal(vs, want) {
		t.Errorf("got %v, want %v", vs, want)
	}

	if _, ok := YDown.VerticesFrom(r, Clockwise, Pt(1, 1)); ok {
		t.Error("interior point accepted as start")
	}
}

func TestOutline(t *testing.T) {
	r := R(1, 1, 2, 3)
	var cmds []path.Command
	var pts []Point
	for cmd, args := range YUp.Outline(r, CounterClockwise, TopLeft) {
		cmds = append(cmds, cmd)
		for _, a := range args {
			pts = append(pts, PointFromVec2(a))
		}
	}

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if !slices.Equal(cmds, wantCmds) {
		t.Errorf("commands %v, want %v", cmds, wantCmds)
	}
	wantPts := []Point{Pt(1, 4), Pt(1, 1), Pt(3, 1), Pt(3, 4)}
	if !slices.Equal(pts, wantPts) {
		t.Errorf("points %v, want %v", pts, wantPts)
	}
}

func TestVertexString(t *testing.T) {
	if s := BottomRight.String(); s != "bottom right" {
		t.Errorf("BottomRight.String() = %q", s)
	}
	if s := RectVertex(7).String(); s != "RectVertex(7)" {
		t.Errorf("RectVertex(7).String() = %q", s)
	}
}
