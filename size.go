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
)

// Size is the extent of a rectangle.
//
// Negative values may occur in intermediate results. Geometric operations
// such as bounding, alignment and the derived accessors of [Rect] use the
// absolute values.
type Size struct {
	Width, Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// MaxSize is the largest finite size.
var MaxSize = Size{Width: math.MaxFloat64, Height: math.MaxFloat64}

func (s Size) String() string {
	return fmt.Sprintf("%g×%g", s.Width, s.Height)
}

// Hash returns a hash of the size, consistent with ==.
func (s Size) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, s)
}

// Add returns the componentwise sum s+t.
func (s Size) Add(t Size) Size {
	return Size{Width: s.Width + t.Width, Height: s.Height + t.Height}
}

// Sub returns the componentwise difference s-t.
func (s Size) Sub(t Size) Size {
	return Size{Width: s.Width - t.Width, Height: s.Height - t.Height}
}

// Mul returns s scaled by f.
func (s Size) Mul(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Div returns s divided by f.
func (s Size) Div(f float64) Size {
	return Size{Width: s.Width / f, Height: s.Height / f}
}

// Neg returns the size with both components negated.
func (s Size) Neg() Size {
	return Size{Width: -s.Width, Height: -s.Height}
}

// AddWidth returns s with d added to the width.
func (s Size) AddWidth(d float64) Size {
	return Size{Width: s.Width + d, Height: s.Height}
}

// AddHeight returns s with d added to the height.
func (s Size) AddHeight(d float64) Size {
	return Size{Width: s.Width, Height: s.Height + d}
}

// WithWidth returns s with the width replaced.
func (s Size) WithWidth(w float64) Size {
	return Size{Width: w, Height: s.Height}
}

// WithHeight returns s with the height replaced.
func (s Size) WithHeight(h float64) Size {
	return Size{Width: s.Width, Height: h}
}

// MinSide returns the shorter of width and height.
func (s Size) MinSide() float64 {
	return min(s.Width, s.Height)
}

// MaxSide returns the longer of width and height.
func (s Size) MaxSide() float64 {
	return max(s.Width, s.Height)
}

// Integral rounds both components up to integers.
func (s Size) Integral() Size {
	return Size{Width: math.Ceil(s.Width), Height: math.Ceil(s.Height)}
}

// Swapped exchanges width and height.
func (s Size) Swapped() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Standardized returns s with both components made non-negative.
func (s Size) Standardized() Size {
	return Size{Width: math.Abs(s.Width), Height: math.Abs(s.Height)}
}

// Contains reports whether t fits into s in both dimensions.
func (s Size) Contains(t Size) bool {
	return s.Width >= t.Width && s.Height >= t.Height
}

// BlendSizes is the [Size] analogue of [BlendPoints].
func BlendSizes(s1 Size, w1 float64, s2 Size, w2 float64) Size {
	if w2 == 0 {
		return s2
	}
	mix := w1 / w2
	return Size{
		Width:  (s1.Width + mix*s2.Width) / (1 + mix),
		Height: (s1.Height + mix*s2.Height) / (1 + mix),
	}
}
