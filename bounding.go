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
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoInput is returned when a bounding rectangle of nothing is
	// requested.
	ErrNoInput = errors.New("frame: no input")

	// ErrNotFinite is returned when an input coordinate is infinite or NaN.
	ErrNotFinite = errors.New("frame: coordinate is not finite")
)

// bounds accumulates the extremal coordinates of a point set.
type bounds struct {
	minX, minY, maxX, maxY float64
	n                      int
}

func (b *bounds) add(p Point) {
	if b.n == 0 {
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
	} else {
		b.minX = min(b.minX, p.X)
		b.maxX = max(b.maxX, p.X)
		b.minY = min(b.minY, p.Y)
		b.maxY = max(b.maxY, p.Y)
	}
	b.n++
}

func (b *bounds) rect() Rect {
	return fromEdges(b.minX, b.minY, b.maxX, b.maxY)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// BoundingPoints returns the smallest axis-aligned rectangle which contains
// all given points. The result does not depend on the order of the points.
//
// If no points are given, [ErrNoInput] is returned. If a coordinate is
// infinite or NaN, an error wrapping [ErrNotFinite] is returned.
func BoundingPoints(pts ...Point) (Rect, error) {
	if len(pts) == 0 {
		Logger().Debug("bounding rectangle of no points")
		return Rect{}, ErrNoInput
	}
	var b bounds
	for i, p := range pts {
		if !isFinite(p.X) || !isFinite(p.Y) {
			Logger().Debug("bounding rectangle rejected", "index", i, "point", p)
			return Rect{}, fmt.Errorf("point %d %s: %w", i, p, ErrNotFinite)
		}
		b.add(p)
	}
	return b.rect(), nil
}

// BoundingRects returns the smallest axis-aligned rectangle which contains
// the four corners of every given rectangle.
//
// If no rectangles are given, [ErrNoInput] is returned. If a coordinate is
// infinite or NaN, an error wrapping [ErrNotFinite] is returned.
func BoundingRects(rects ...Rect) (Rect, error) {
	if len(rects) == 0 {
		Logger().Debug("bounding rectangle of no rectangles")
		return Rect{}, ErrNoInput
	}
	var b bounds
	for i, r := range rects {
		for _, p := range r.AllVertices() {
			if !isFinite(p.X) || !isFinite(p.Y) {
				Logger().Debug("bounding rectangle rejected", "index", i, "rect", r)
				return Rect{}, fmt.Errorf("rect %d %s: %w", i, r, ErrNotFinite)
			}
			b.add(p)
		}
	}
	return b.rect(), nil
}
