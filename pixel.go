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
	"math"
	"strconv"
)

// PixelScale is the number of device pixels per unit of length.
//
// The zero value means that no scale is known, for example because no
// display is attached. Negative, infinite and NaN values are treated the
// same way. Without a scale, pixel alignment truncates every coordinate to
// an integer.
type PixelScale float64

// NoScale indicates that the pixel scale is unknown.
const NoScale PixelScale = 0

// Known reports whether s is a usable scale factor.
func (s PixelScale) Known() bool {
	return s > 0 && !math.IsInf(float64(s), 0)
}

// LinearAlignment selects the rounding used to snap single coordinates to
// the pixel grid.
type LinearAlignment int

// The linear alignment modes.
const (
	LinearRound LinearAlignment = iota
	LinearCeil
	LinearFloor
)

func (a LinearAlignment) String() string {
	switch a {
	case LinearRound:
		return "round"
	case LinearCeil:
		return "ceil"
	case LinearFloor:
		return "floor"
	default:
		return "LinearAlignment(" + strconv.Itoa(int(a)) + ")"
	}
}

// ArealAlignment selects how the edges of a rectangle are snapped to the
// pixel grid.
type ArealAlignment int

// The areal alignment modes.
const (
	// ArealExtend moves every edge outwards, so that the result contains
	// the input rectangle.
	ArealExtend ArealAlignment = iota

	// ArealRound moves every edge to the nearest pixel boundary.
	ArealRound

	// ArealShrink moves every edge inwards, so that the result is contained
	// in the input rectangle.
	ArealShrink
)

func (a ArealAlignment) String() string {
	switch a {
	case ArealExtend:
		return "extend"
	case ArealRound:
		return "round"
	case ArealShrink:
		return "shrink"
	default:
		return "ArealAlignment(" + strconv.Itoa(int(a)) + ")"
	}
}

// toGrid converts v to device pixels. A value which was produced by
// dividing a whole number of pixels by s maps back to exactly that number,
// so that snapping is idempotent. All other values are scaled unchanged.
func toGrid(v float64, s PixelScale) float64 {
	n := v * float64(s)
	if k := math.Round(n); k/float64(s) == v {
		return k
	}
	return n
}

// floorGrid returns the largest pixel boundary k with k/s <= v.
func floorGrid(v float64, s PixelScale) float64 {
	k := math.Floor(toGrid(v, s))
	if k/float64(s) > v {
		k--
	}
	return k
}

// ceilGrid returns the smallest pixel boundary k with k/s >= v.
func ceilGrid(v float64, s PixelScale) float64 {
	k := math.Ceil(toGrid(v, s))
	if k/float64(s) < v {
		k++
	}
	return k
}

func roundGrid(v float64, s PixelScale) float64 {
	return math.Round(toGrid(v, s))
}

func snap(v float64, s PixelScale, grid func(float64, PixelScale) float64) float64 {
	return grid(v, s) / float64(s)
}

func (a LinearAlignment) rounding() func(float64, PixelScale) float64 {
	switch a {
	case LinearCeil:
		return ceilGrid
	case LinearFloor:
		return floorGrid
	default:
		return roundGrid
	}
}

func logNoScale(kind string) {
	Logger().Debug("no pixel scale, truncating", "kind", kind)
}

// AlignScalar snaps v to the pixel grid of scale s.
// If s is not known, v is truncated to an integer.
func AlignScalar(v float64, a LinearAlignment, s PixelScale) float64 {
	if !s.Known() {
		logNoScale("scalar")
		return math.Trunc(v)
	}
	return snap(v, s, a.rounding())
}

// AlignToPixels snaps both coordinates of p to the pixel grid of scale s.
// If s is not known, the coordinates are truncated to integers.
func (p Point) AlignToPixels(a LinearAlignment, s PixelScale) Point {
	if !s.Known() {
		logNoScale("point")
		return Point{X: math.Trunc(p.X), Y: math.Trunc(p.Y)}
	}
	round := a.rounding()
	return Point{X: snap(p.X, s, round), Y: snap(p.Y, s, round)}
}

// AlignToPixels snaps both components of sz to the pixel grid of scale s.
// If s is not known, the components are truncated to integers.
func (sz Size) AlignToPixels(a LinearAlignment, s PixelScale) Size {
	if !s.Known() {
		logNoScale("size")
		return Size{Width: math.Trunc(sz.Width), Height: math.Trunc(sz.Height)}
	}
	round := a.rounding()
	return Size{Width: snap(sz.Width, s, round), Height: snap(sz.Height, s, round)}
}

// AlignToPixels snaps the edges of r to the pixel grid of scale s.
//
// The minimum and maximum coordinates are snapped separately, so the
// result does not depend on the [Convention]. With [ArealShrink], a span
// which contains no pixel boundary at all collapses to zero length at its
// minimum, so that the result stays inside r. For a known scale the result
// has non-negative size, and aligning an aligned rectangle again leaves it
// unchanged.
//
// If s is not known, origin and size are truncated to integers.
func (r Rect) AlignToPixels(a ArealAlignment, s PixelScale) Rect {
	if !s.Known() {
		logNoScale("rect")
		return Rect{
			Origin: Point{X: math.Trunc(r.Origin.X), Y: math.Trunc(r.Origin.Y)},
			Size:   Size{Width: math.Trunc(r.Size.Width), Height: math.Trunc(r.Size.Height)},
		}
	}

	var lo, hi func(float64, PixelScale) float64
	switch a {
	case ArealExtend:
		lo, hi = floorGrid, ceilGrid
	case ArealShrink:
		lo, hi = ceilGrid, floorGrid
	default:
		lo, hi = roundGrid, roundGrid
	}

	minX, maxX := snapSpan(r.MinX(), r.MaxX(), s, lo, hi)
	minY, maxY := snapSpan(r.MinY(), r.MaxY(), s, lo, hi)
	return fromEdges(minX, minY, maxX, maxY)
}

// snapSpan snaps the interval [a, b] in grid units and converts back.
// If the snapped interval is inverted, the empty span at a is returned.
func snapSpan(a, b float64, s PixelScale, lo, hi func(float64, PixelScale) float64) (float64, float64) {
	ga := lo(a, s)
	gb := hi(b, s)
	if gb < ga {
		return a, a
	}
	return ga / float64(s), gb / float64(s)
}
