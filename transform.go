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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// ErrSingular is returned when a transform without inverse is inverted.
var ErrSingular = errors.New("frame: singular transform")

// Transform is an affine map of the plane, stored as [a b c d tx ty].
// A point (x, y) is mapped to
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// This is the element order used by PDF and by [matrix.Matrix].
type Transform [6]float64

// Identity is the neutral element of [Transform.Concat].
var Identity = Transform{1, 0, 0, 1, 0, 0}

// Translation returns the transform which moves every point by (x, y).
func Translation(x, y float64) Transform {
	return Transform{1, 0, 0, 1, x, y}
}

// TranslationBy returns the transform which moves every point by v.
func TranslationBy(v Vector) Transform {
	return Transform{1, 0, 0, 1, v.DX, v.DY}
}

// Scaling returns the transform which scales x by sx and y by sy.
func Scaling(sx, sy float64) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// UniformScaling returns the transform which scales both axes by s.
func UniformScaling(s float64) Transform {
	return Transform{s, 0, 0, s, 0, 0}
}

// Rotation returns the rotation by angle radians about the origin.
// Positive angles turn the x-axis towards the y-axis.
func Rotation(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// TransformFromMatrix converts a geom matrix.
func TransformFromMatrix(m matrix.Matrix) Transform {
	return Transform(m)
}

// Matrix returns t as a geom matrix.
func (t Transform) Matrix() matrix.Matrix {
	return matrix.Matrix(t)
}

// Concat returns the transform which first applies t and then u.
func (t Transform) Concat(u Transform) Transform {
	return Transform{
		t[0]*u[0] + t[1]*u[2],
		t[0]*u[1] + t[1]*u[3],
		t[2]*u[0] + t[3]*u[2],
		t[2]*u[1] + t[3]*u[3],
		t[4]*u[0] + t[5]*u[2] + u[4],
		t[4]*u[1] + t[5]*u[3] + u[5],
	}
}

// Translated returns the transform which first moves by (x, y) and then
// applies t.
func (t Transform) Translated(x, y float64) Transform {
	return Translation(x, y).Concat(t)
}

// Scaled returns the transform which first scales by (sx, sy) and then
// applies t.
func (t Transform) Scaled(sx, sy float64) Transform {
	return Scaling(sx, sy).Concat(t)
}

// Rotated returns the transform which first rotates by angle and then
// applies t.
func (t Transform) Rotated(angle float64) Transform {
	return Rotation(angle).Concat(t)
}

// Determinant returns the determinant of the linear part of t.
func (t Transform) Determinant() float64 {
	return t[0]*t[3] - t[1]*t[2]
}

// IsIdentity reports whether t equals [Identity].
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// Inverse returns the inverse of t.
// If t is singular, [Identity] and [ErrSingular] are returned.
func (t Transform) Inverse() (Transform, error) {
	det := t.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		Logger().Debug("cannot invert transform", "transform", t[:], "det", det)
		return Identity, ErrSingular
	}
	a := t[3] / det
	b := -t[1] / det
	c := -t[2] / det
	d := t[0] / det
	return Transform{
		a, b, c, d,
		-(t[4]*a + t[5]*c),
		-(t[4]*b + t[5]*d),
	}, nil
}

// ApplyPoint maps p through t.
func (t Transform) ApplyPoint(p Point) Point {
	return Point{
		X: t[0]*p.X + t[2]*p.Y + t[4],
		Y: t[1]*p.X + t[3]*p.Y + t[5],
	}
}

// ApplyVector maps v through the linear part of t.
func (t Transform) ApplyVector(v Vector) Vector {
	return Vector{
		DX: t[0]*v.DX + t[2]*v.DY,
		DY: t[1]*v.DX + t[3]*v.DY,
	}
}

// ApplySize maps s through the linear part of t, like [Transform.ApplyVector].
func (t Transform) ApplySize(s Size) Size {
	return Size{
		Width:  t[0]*s.Width + t[2]*s.Height,
		Height: t[1]*s.Width + t[3]*s.Height,
	}
}

// ApplyRect returns the bounding rectangle of the image of r under t.
// An error is returned if the image has non-finite coordinates.
func (t Transform) ApplyRect(r Rect) (Rect, error) {
	var pts [4]Point
	i := 0
	for _, p := range r.AllVertices() {
		pts[i] = t.ApplyPoint(p)
		i++
	}
	return BoundingPoints(pts[:]...)
}
