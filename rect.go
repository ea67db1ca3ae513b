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
	"fmt"
	"hash/maphash"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Rect is an axis-aligned rectangle given by its origin and size.
//
// The origin is the corner with the smallest coordinates as long as the
// size is non-negative. The accessors MinX, MaxX, MinY and MaxY work on the
// standardized rectangle, so they are ordered even for negative sizes.
type Rect struct {
	Origin Point
	Size   Size
}

// R returns the rectangle with origin (x, y), width w and height h.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// RectWithSize returns the rectangle of the given size at the origin.
func RectWithSize(s Size) Rect {
	return Rect{Size: s}
}

// RectAround returns the rectangle of the given size centered at c.
func RectAround(c Point, s Size) Rect {
	return Rect{
		Origin: Point{X: c.X - s.Width*0.5, Y: c.Y - s.Height*0.5},
		Size:   s,
	}
}

// RectFromGeom converts a geom rectangle.
func RectFromGeom(g rect.Rect) Rect {
	return Rect{
		Origin: Point{X: g.LLx, Y: g.LLy},
		Size:   Size{Width: g.URx - g.LLx, Height: g.URy - g.LLy},
	}
}

// Geom returns r as a geom rectangle, with the lower-left corner at the
// minimum coordinates.
func (r Rect) Geom() rect.Rect {
	return rect.Rect{LLx: r.MinX(), LLy: r.MinY(), URx: r.MaxX(), URy: r.MaxY()}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s+%s", r.Origin, r.Size)
}

// Hash returns a hash of the rectangle, consistent with ==.
func (r Rect) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, r)
}

// Standardized returns an equivalent rectangle with non-negative size.
func (r Rect) Standardized() Rect {
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// MinX returns the smallest x-coordinate of r.
func (r Rect) MinX() float64 {
	return min(r.Origin.X, r.Origin.X+r.Size.Width)
}

// MidX returns the x-coordinate of the center of r.
func (r Rect) MidX() float64 {
	return r.Origin.X + r.Size.Width*0.5
}

// MaxX returns the largest x-coordinate of r.
func (r Rect) MaxX() float64 {
	return max(r.Origin.X, r.Origin.X+r.Size.Width)
}

// MinY returns the smallest y-coordinate of r.
func (r Rect) MinY() float64 {
	return min(r.Origin.Y, r.Origin.Y+r.Size.Height)
}

// MidY returns the y-coordinate of the center of r.
func (r Rect) MidY() float64 {
	return r.Origin.Y + r.Size.Height*0.5
}

// MaxY returns the largest y-coordinate of r.
func (r Rect) MaxY() float64 {
	return max(r.Origin.Y, r.Origin.Y+r.Size.Height)
}

// Width returns the absolute width of r.
func (r Rect) Width() float64 {
	return math.Abs(r.Size.Width)
}

// Height returns the absolute height of r.
func (r Rect) Height() float64 {
	return math.Abs(r.Size.Height)
}

// Center returns the center of r.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// IsEmpty reports whether r has zero area.
func (r Rect) IsEmpty() bool {
	return r.Size.Width == 0 || r.Size.Height == 0
}

// WithCenter returns r moved so that its center is c.
func (r Rect) WithCenter(c Point) Rect {
	return RectAround(c, r.Size)
}

// WithOrigin returns r with the origin replaced.
func (r Rect) WithOrigin(o Point) Rect {
	return Rect{Origin: o, Size: r.Size}
}

// WithX returns r with the x-coordinate of the origin replaced.
func (r Rect) WithX(x float64) Rect {
	r.Origin.X = x
	return r
}

// WithY returns r with the y-coordinate of the origin replaced.
func (r Rect) WithY(y float64) Rect {
	r.Origin.Y = y
	return r
}

// WithSize returns r with the size replaced.
func (r Rect) WithSize(s Size) Rect {
	return Rect{Origin: r.Origin, Size: s}
}

// WithWidth returns r with the width replaced.
func (r Rect) WithWidth(w float64) Rect {
	r.Size.Width = w
	return r
}

// WithHeight returns r with the height replaced.
func (r Rect) WithHeight(h float64) Rect {
	r.Size.Height = h
	return r
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.Origin.X += dx
	r.Origin.Y += dy
	return r
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vector) Rect {
	return r.Offset(v.DX, v.DY)
}

// Guaranteed returns r enlarged around its center so that it is at least
// as large as s in both dimensions. The result has non-negative size.
func (r Rect) Guaranteed(s Size) Rect {
	return RectAround(r.Center(), Size{
		Width:  max(r.Width(), s.Width),
		Height: max(r.Height(), s.Height),
	})
}

// SwappedDimensions returns r with width and height exchanged.
// The origin is kept.
func (r Rect) SwappedDimensions() Rect {
	return Rect{Origin: r.Origin, Size: r.Size.Swapped()}
}

// BlendRects blends origin and size of two rectangles,
// see [BlendPoints] and [BlendSizes].
func BlendRects(r1 Rect, w1 float64, r2 Rect, w2 float64) Rect {
	return Rect{
		Origin: BlendPoints(r1.Origin, w1, r2.Origin, w2),
		Size:   BlendSizes(r1.Size, w1, r2.Size, w2),
	}
}

// Touches reports whether r and o overlap or share boundary points.
func (r Rect) Touches(o Rect) bool {
	return !(r.MaxX() < o.MinX() || r.MinX() > o.MaxX() ||
		r.MaxY() < o.MinY() || r.MinY() > o.MaxY())
}

// ContainsRect reports whether o lies inside r, boundary included.
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX() >= r.MinX() && o.MaxX() <= r.MaxX() &&
		o.MinY() >= r.MinY() && o.MaxY() <= r.MaxY()
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return fromEdges(
		min(r.MinX(), o.MinX()), min(r.MinY(), o.MinY()),
		max(r.MaxX(), o.MaxX()), max(r.MaxY(), o.MaxY()),
	)
}

// Intersect returns the common part of r and o.
// If the rectangles do not touch, the zero Rect and false are returned.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	if !r.Touches(o) {
		return Rect{}, false
	}
	return fromEdges(
		max(r.MinX(), o.MinX()), max(r.MinY(), o.MinY()),
		min(r.MaxX(), o.MaxX()), min(r.MaxY(), o.MaxY()),
	), true
}

// AddRect adds origins and sizes componentwise.
func (r Rect) AddRect(o Rect) Rect {
	return Rect{Origin: r.Origin.Add(o.Origin), Size: r.Size.Add(o.Size)}
}

// SubRect subtracts origins and sizes componentwise.
func (r Rect) SubRect(o Rect) Rect {
	return Rect{Origin: r.Origin.Sub(o.Origin), Size: r.Size.Sub(o.Size)}
}

// AddPoint moves the origin of r by p.
func (r Rect) AddPoint(p Point) Rect {
	return Rect{Origin: r.Origin.Add(p), Size: r.Size}
}

// SubPoint moves the origin of r by -p.
func (r Rect) SubPoint(p Point) Rect {
	return Rect{Origin: r.Origin.Sub(p), Size: r.Size}
}

// AddSize grows r by s, keeping the origin.
func (r Rect) AddSize(s Size) Rect {
	return Rect{Origin: r.Origin, Size: r.Size.Add(s)}
}

// SubSize shrinks r by s, keeping the origin.
func (r Rect) SubSize(s Size) Rect {
	return Rect{Origin: r.Origin, Size: r.Size.Sub(s)}
}

// fromEdges builds the rectangle with the given minimum and maximum
// coordinates.
func fromEdges(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		Origin: Point{X: minX, Y: minY},
		Size:   Size{Width: maxX - minX, Height: maxY - minY},
	}
}

// RectFromEdges returns the rectangle with the given side coordinates,
// where top and bottom are interpreted according to c.
func (c Convention) RectFromEdges(top, right, bottom, left float64) Rect {
	if c.topIsMin() {
		return fromEdges(left, top, right, bottom)
	}
	return fromEdges(left, bottom, right, top)
}
