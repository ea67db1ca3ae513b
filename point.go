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

	"seehuhn.de/go/geom/vec"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromVec2 converts a geom vector into a point.
func PointFromVec2(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec2 returns the point as a geom vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Vector returns the displacement from the origin to p.
func (p Point) Vector() Vector {
	return Vector{DX: p.X, DY: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Hash returns a hash of the point, consistent with ==.
func (p Point) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, p)
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns p divided by s.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the scalar product of p and q, seen as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Move returns p displaced by v.
func (p Point) Move(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Mid returns the point half way between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// WithX returns p with the x-coordinate replaced.
func (p Point) WithX(x float64) Point {
	return Point{X: x, Y: p.Y}
}

// WithY returns p with the y-coordinate replaced.
func (p Point) WithY(y float64) Point {
	return Point{X: p.X, Y: y}
}

// AddX returns p moved horizontally by d.
func (p Point) AddX(d float64) Point {
	return Point{X: p.X + d, Y: p.Y}
}

// AddY returns p moved vertically by d.
func (p Point) AddY(d float64) Point {
	return Point{X: p.X, Y: p.Y + d}
}

// BlendPoints returns the point which divides the segment from p1 to p2 in the
// ratio w1:w2, i.e. the weighted mean (w2*p1 + w1*p2)/(w1+w2) written in
// terms of w1/w2. If w2 is zero, p2 is returned.
func BlendPoints(p1 Point, w1 float64, p2 Point, w2 float64) Point {
	if w2 == 0 {
		return p2
	}
	return Divide(p1, p2, w1/w2)
}

// Divide returns (p1 + ratio*p2)/(1 + ratio).
func Divide(p1, p2 Point, ratio float64) Point {
	return Point{
		X: (p1.X + ratio*p2.X) / (1 + ratio),
		Y: (p1.Y + ratio*p2.Y) / (1 + ratio),
	}
}

// Inside reports whether p lies in the open interior of r.
func (p Point) Inside(r Rect) bool {
	return p.X > r.MinX() && p.X < r.MaxX() &&
		p.Y > r.MinY() && p.Y < r.MaxY()
}

// On reports whether p lies on the boundary of r.
func (p Point) On(r Rect) bool {
	return Default.EdgesFor(r, p) != 0
}

// ContainedIn reports whether p lies inside r or on its boundary.
func (p Point) ContainedIn(r Rect) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// circleDist2 returns the squared distance from p to the center of r and
// the squared radius of the largest circle inscribed in r.
func (p Point) circleDist2(r Rect) (d2, r2 float64) {
	dx := p.X - r.MidX()
	dy := p.Y - r.MidY()
	radius := r.Size.Standardized().MinSide() / 2
	return dx*dx + dy*dy, radius * radius
}

// InsideCircleOf reports whether p lies strictly inside the largest circle
// inscribed in r.
func (p Point) InsideCircleOf(r Rect) bool {
	d2, r2 := p.circleDist2(r)
	return d2 < r2
}

// OnCircleOf reports whether p lies exactly on the largest circle inscribed
// in r.
func (p Point) OnCircleOf(r Rect) bool {
	d2, r2 := p.circleDist2(r)
	return d2 == r2
}

// ContainedInCircleOf reports whether p lies inside or on the largest
// circle inscribed in r.
func (p Point) ContainedInCircleOf(r Rect) bool {
	d2, r2 := p.circleDist2(r)
	return d2 <= r2
}
