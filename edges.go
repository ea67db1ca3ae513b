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
	"math/bits"
	"strings"
)

// RectEdges is a set of sides of a rectangle.
type RectEdges uint8

// The four sides of a rectangle.
const (
	EdgeTop RectEdges = 1 << iota
	EdgeLeft
	EdgeBottom
	EdgeRight
)

// Has reports whether all sides in f are in e.
func (e RectEdges) Has(f RectEdges) bool {
	return e&f == f
}

// Count returns the number of sides in e.
func (e RectEdges) Count() int {
	return bits.OnesCount8(uint8(e))
}

func (e RectEdges) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, s := range []struct {
		edge RectEdges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeLeft, "left"},
		{EdgeBottom, "bottom"},
		{EdgeRight, "right"},
	} {
		if e&s.edge != 0 {
			parts = append(parts, s.name)
		}
	}
	return strings.Join(parts, "|")
}

// EdgesFor returns the sides of r on which p lies.
//
// A point lies on a side if its coordinate equals the coordinate of the
// side exactly and it is within the extent of the side. Corners belong to
// two sides; interior and exterior points to none.
func (c Convention) EdgesFor(r Rect, p Point) RectEdges {
	minX, maxX := r.MinX(), r.MaxX()
	minY, maxY := r.MinY(), r.MaxY()
	if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
		return 0
	}

	var e RectEdges
	if p.X == minX {
		e |= EdgeLeft
	}
	if p.X == maxX {
		e |= EdgeRight
	}
	lo, hi := EdgeTop, EdgeBottom
	if !c.topIsMin() {
		lo, hi = hi, lo
	}
	if p.Y == minY {
		e |= lo
	}
	if p.Y == maxY {
		e |= hi
	}
	return e
}

// EdgesFor returns the sides of r on which p lies, using the [Default]
// convention.
func (r Rect) EdgesFor(p Point) RectEdges {
	return Default.EdgesFor(r, p)
}
