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
	"testing"

	"seehuhn.de/go/geom/matrix"
)

func closeTo(a, b Transform) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
		in   Point
		want Point
	}{
		{"identity", Identity, Pt(3, -4), Pt(3, -4)},
		{"translation", Translation(1, 2), Pt(3, 4), Pt(4, 6)},
		{"scaling", Scaling(2, -1), Pt(3, 4), Pt(6, -4)},
		{"translate then scale", Translation(1, 2).Concat(Scaling(2, 3)), Pt(1, 1), Pt(4, 9)},
		{"scale then translate", Scaling(2, 3).Concat(Translation(1, 2)), Pt(1, 1), Pt(3, 5)},
		{"translated", Scaling(2, 3).Translated(1, 2), Pt(1, 1), Pt(4, 9)},
		{"shear", Transform{1, 0, 1, 1, 0, 0}, Pt(2, 3), Pt(5, 3)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.t.ApplyPoint(test.in)
			if got != test.want {
				t.Errorf("got %s, want %s", got, test.want)
			}
		})
	}
}

func TestTransformRotation(t *testing.T) {
	p := Rotation(math.Pi / 2).ApplyPoint(Pt(1, 0))
	if math.Abs(p.X) > 1e-15 || math.Abs(p.Y-1) > 1e-15 {
		t.Errorf("rotating (1, 0) by 90°: got %s", p)
	}

	// Rotated prepends the rotation
	tr := Translation(5, 0).Rotated(math.Pi)
	p = tr.ApplyPoint(Pt(1, 0))
	if math.Abs(p.X-4) > 1e-12 || math.Abs(p.Y) > 1e-12 {
		t.Errorf("rotate then translate: got %s, want (4, 0)", p)
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	tr := Scaling(2, 3).Concat(Translation(10, 20))
	if got := tr.ApplyVector(Vec(1, 1)); got != Vec(2, 3) {
		t.Errorf("vector: got %s", got)
	}
	if got := tr.ApplySize(Sz(1, 1)); got != Sz(2, 3) {
		t.Errorf("size: got %s", got)
	}
}

func TestTransformInverse(t *testing.T) {
	transforms := []Transform{
		Identity,
		Translation(3, -7),
		Scaling(2, 0.5),
		Rotation(0.3).Translated(1, 2),
		{1, 2, 3, 4, 5, 6},
	}
	for _, tr := range transforms {
		inv, err := tr.Inverse()
		if err != nil {
			t.Errorf("%v: %v", tr, err)
			continue
		}
		if prod := tr.Concat(inv); !closeTo(prod, Identity) {
			t.Errorf("%v: t·t⁻¹ = %v", tr, prod)
		}
		if prod := inv.Concat(tr); !closeTo(prod, Identity) {
			t.Errorf("%v: t⁻¹·t = %v", tr, prod)
		}
	}
}

func TestTransformSingular(t *testing.T) {
	singular := []Transform{
		{},
		Scaling(0, 1),
		{1, 2, 2, 4, 0, 0},
		{math.NaN(), 0, 0, 1, 0, 0},
		{math.Inf(1), 0, 0, 1, 0, 0},
	}
	for _, tr := range singular {
		inv, err := tr.Inverse()
		if !errors.Is(err, ErrSingular) {
			t.Errorf("%v: got error %v", tr, err)
		}
		if !inv.IsIdentity() {
			t.Errorf("%v: got %v, want identity", tr, inv)
		}
	}
}

func TestTransformApplyRect(t *testing.T) {
	r := R(0, 0, 2, 1)
	got, err := Rotation(math.Pi / 2).ApplyRect(r)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.MinX()+1) > 1e-12 || math.Abs(got.MaxX()) > 1e-12 ||
		math.Abs(got.MinY()) > 1e-12 || math.Abs(got.MaxY()-2) > 1e-12 {
		t.Errorf("got %s, want about (-1, 0)+1×2", got)
	}

	got, err = Scaling(-1, 2).ApplyRect(r)
	if err != nil {
		t.Fatal(err)
	}
	if want := R(-2, 0, 2, 2); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	_, err = Scaling(math.Inf(1), 1).ApplyRect(r)
	if !errors.Is(err, ErrNotFinite) {
		t.Errorf("infinite scale: got error %v", err)
	}
}

func TestTransformMatrix(t *testing.T) {
	if Identity.Matrix() != matrix.Identity {
		t.Errorf("identity converts to %v", Identity.Matrix())
	}
	m := matrix.Matrix{1, 2, 3, 4, 5, 6}
	if got := TransformFromMatrix(m); got.Matrix() != m {
		t.Errorf("got %v, want %v", got.Matrix(), m)
	}
	if d := TransformFromMatrix(m).Determinant(); d != -2 {
		t.Errorf("determinant %g, want -2", d)
	}
}
