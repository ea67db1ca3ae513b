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

// Vector is a displacement in the plane.
type Vector struct {
	DX, DY float64
}

// Vec returns the vector (dx, dy).
func Vec(dx, dy float64) Vector {
	return Vector{DX: dx, DY: dy}
}

// Vec2 returns v as a geom vector.
func (v Vector) Vec2() vec.Vec2 {
	return vec.Vec2{X: v.DX, Y: v.DY}
}

func (v Vector) String() string {
	return fmt.Sprintf("[%g, %g]", v.DX, v.DY)
}

// Hash returns a hash of the vector, consistent with ==.
func (v Vector) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, v)
}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector {
	return Vector{DX: v.DX + w.DX, DY: v.DY + w.DY}
}

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{DX: v.DX - w.DX, DY: v.DY - w.DY}
}

// Mul returns v scaled by s.
func (v Vector) Mul(s float64) Vector {
	return Vector{DX: v.DX * s, DY: v.DY * s}
}

// Div returns v divided by s.
func (v Vector) Div(s float64) Vector {
	return Vector{DX: v.DX / s, DY: v.DY / s}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

// Dot returns the scalar product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.DX*w.DX + v.DY*w.DY
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Lerp interpolates linearly between v (t=0) and w (t=1).
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{
		DX: v.DX + (w.DX-v.DX)*t,
		DY: v.DY + (w.DY-v.DY)*t,
	}
}
