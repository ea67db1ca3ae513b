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


package testcases

import "seehuhn.de/go/frame"

// TestCase defines a single geometry example.
type TestCase struct {
	Name       string           // lowercase a-z, 0-9 and _ only
	Convention frame.Convention // direction of the y-axis
	Op         Operation        // what to compute
	Want       frame.Rect       // expected result, unless Err is set
	Err        error            // expected error, matched with errors.Is
}

// Operation is the computation a test case performs.
type Operation interface {
	// Inputs returns the rectangles the operation reads, for drawing.
	Inputs() []frame.Rect
}

// AlignV aligns Rect vertically against Ref.
type AlignV struct {
	Rect, Ref    frame.Rect
	Mine, Theirs frame.VerticalAnchor
}

// Inputs implements [Operation].
func (op AlignV) Inputs() []frame.Rect { return []frame.Rect{op.Rect, op.Ref} }

// AlignH aligns Rect horizontally against Ref.
type AlignH struct {
	Rect, Ref    frame.Rect
	Mine, Theirs frame.HorizontalAnchor
}

// Inputs implements [Operation].
func (op AlignH) Inputs() []frame.Rect { return []frame.Rect{op.Rect, op.Ref} }

// AlignBoth aligns Rect against Ref along both axes, vertically first.
type AlignBoth struct {
	Rect, Ref   frame.Rect
	VMine, VRef frame.VerticalAnchor
	HMine, HRef frame.HorizontalAnchor
}

// Inputs implements [Operation].
func (op AlignBoth) Inputs() []frame.Rect { return []frame.Rect{op.Rect, op.Ref} }

// BoundPoints computes the bounding rectangle of Points.
type BoundPoints struct {
	Points []frame.Point
}

// Inputs implements [Operation].
func (op BoundPoints) Inputs() []frame.Rect {
	res := make([]frame.Rect, len(op.Points))
	for i, p := range op.Points {
		res[i] = frame.Rect{Origin: p}
	}
	return res
}

// BoundRects computes the bounding rectangle of Rects.
type BoundRects struct {
	Rects []frame.Rect
}

// Inputs implements [Operation].
func (op BoundRects) Inputs() []frame.Rect { return op.Rects }

// Snap aligns Rect to the pixel grid.
type Snap struct {
	Rect  frame.Rect
	Mode  frame.ArealAlignment
	Scale frame.PixelScale
}

// Inputs implements [Operation].
func (op Snap) Inputs() []frame.Rect { return []frame.Rect{op.Rect} }

// Run performs the operation of tc.
func (tc TestCase) Run() (frame.Rect, error) {
	c := tc.Convention
	switch op := tc.Op.(type) {
	case AlignV:
		return c.AlignVertical(op.Rect, op.Mine, op.Theirs, op.Ref), nil
	case AlignH:
		return c.AlignHorizontal(op.Rect, op.Mine, op.Theirs, op.Ref), nil
	case AlignBoth:
		r := c.AlignVertical(op.Rect, op.VMine, op.VRef, op.Ref)
		return c.AlignHorizontal(r, op.HMine, op.HRef, op.Ref), nil
	case BoundPoints:
		return frame.BoundingPoints(op.Points...)
	case BoundRects:
		return frame.BoundingRects(op.Rects...)
	case Snap:
		return op.Rect.AlignToPixels(op.Mode, op.Scale), nil
	default:
		panic("testcases: unknown operation")
	}
}
