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
	"iter"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// RectVertex names one corner of a rectangle.
type RectVertex int

// The corners are numbered in counter-clockwise order, starting at the top
// left. The numbering does not depend on the [Convention].
const (
	TopLeft RectVertex = iota
	BottomLeft
	BottomRight
	TopRight
)

// AllVertices lists the four corners in numbering order.
var AllVertices = [4]RectVertex{TopLeft, BottomLeft, BottomRight, TopRight}

func (v RectVertex) String() string {
	switch v {
	case TopLeft:
		return "top left"
	case BottomLeft:
		return "bottom left"
	case BottomRight:
		return "bottom right"
	case TopRight:
		return "top right"
	default:
		return "RectVertex(" + strconv.Itoa(int(v)) + ")"
	}
}

// Direction is the sense of rotation used when walking around a rectangle.
type Direction int

const (
	// Clockwise visits top left, top right, bottom right, bottom left.
	Clockwise Direction = iota

	// CounterClockwise visits top left, bottom left, bottom right, top right.
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Next returns the corner following v in direction d.
// Walking four steps in the same direction returns to v.
func (v RectVertex) Next(d Direction) RectVertex {
	// The numbering is counter-clockwise.
	if d == CounterClockwise {
		return (v + 1) & 3
	}
	return (v + 3) & 3
}

// Vertex returns the coordinates of corner v of r.
func (c Convention) Vertex(r Rect, v RectVertex) Point {
	top, bottom := r.MinY(), r.MaxY()
	if !c.topIsMin() {
		top, bottom = bottom, top
	}
	switch v {
	case TopLeft:
		return Point{X: r.MinX(), Y: top}
	case BottomLeft:
		return Point{X: r.MinX(), Y: bottom}
	case BottomRight:
		return Point{X: r.MaxX(), Y: bottom}
	case TopRight:
		return Point{X: r.MaxX(), Y: top}
	default:
		panic("frame: invalid RectVertex " + strconv.Itoa(int(v)))
	}
}

// Vertices returns the four corners of r, starting at start and walking in
// direction d. Every call of the returned sequence yields the same four
// pairs.
func (c Convention) Vertices(r Rect, d Direction, start RectVertex) iter.Seq2[RectVertex, Point] {
	return func(yield func(RectVertex, Point) bool) {
		v := start
		for range 4 {
			if !yield(v, c.Vertex(r, v)) {
				return
			}
			v = v.Next(d)
		}
	}
}

// VerticesFrom is like [Convention.Vertices], but starts at the corner
// located at p. If p is not a corner of r, the second return value is
// false.
func (c Convention) VerticesFrom(r Rect, d Direction, p Point) (iter.Seq2[RectVertex, Point], bool) {
	v, ok := c.VertexFor(r, p)
	if !ok {
		return nil, false
	}
	return c.Vertices(r, d, v), true
}

// VertexFor returns the corner of r located exactly at p.
// No rounding tolerance is applied. For degenerate rectangles, where
// several corners coincide, the first match in numbering order is returned.
func (c Convention) VertexFor(r Rect, p Point) (RectVertex, bool) {
	for _, v := range AllVertices {
		if c.Vertex(r, v) == p {
			return v, true
		}
	}
	return 0, false
}

// Outline returns a closed path around r, visiting the corners in the
// order given by [Convention.Vertices].
func (c Convention) Outline(r Rect, d Direction, start RectVertex) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		cmd := path.CmdMoveTo
		for _, p := range c.Vertices(r, d, start) {
			if !yield(cmd, []vec.Vec2{p.Vec2()}) {
				return
			}
			cmd = path.CmdLineTo
		}
		yield(path.CmdClose, nil)
	}
}

// Vertex returns corner v of r, using the [Default] convention.
func (r Rect) Vertex(v RectVertex) Point {
	return Default.Vertex(r, v)
}

// TopLeft returns the top left corner of r, using the [Default] convention.
func (r Rect) TopLeft() Point { return Default.Vertex(r, TopLeft) }

// BottomLeft returns the bottom left corner of r, using the [Default]
// convention.
func (r Rect) BottomLeft() Point { return Default.Vertex(r, BottomLeft) }

// BottomRight returns the bottom right corner of r, using the [Default]
// convention.
func (r Rect) BottomRight() Point { return Default.Vertex(r, BottomRight) }

// TopRight returns the top right corner of r, using the [Default]
// convention.
func (r Rect) TopRight() Point { return Default.Vertex(r, TopRight) }

// Vertices walks around r, using the [Default] convention.
func (r Rect) Vertices(d Direction, start RectVertex) iter.Seq2[RectVertex, Point] {
	return Default.Vertices(r, d, start)
}

// AllVertices walks counter-clockwise around r, starting at the top left.
func (r Rect) AllVertices() iter.Seq2[RectVertex, Point] {
	return Default.Vertices(r, CounterClockwise, TopLeft)
}

// VertexFor returns the corner of r located at p, using the [Default]
// convention.
func (r Rect) VertexFor(p Point) (RectVertex, bool) {
	return Default.VertexFor(r, p)
}

// Outline returns a closed path around r, using the [Default] convention.
func (r Rect) Outline(d Direction, start RectVertex) path.Path {
	return Default.Outline(r, d, start)
}
