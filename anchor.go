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

import "strconv"

// VerticalAnchor names a horizontal line of a rectangle.
type VerticalAnchor int

// The vertical anchors. Which coordinate is the top depends on the
// [Convention].
const (
	AnchorTop VerticalAnchor = iota
	AnchorMiddle
	AnchorBottom
)

func (a VerticalAnchor) String() string {
	switch a {
	case AnchorTop:
		return "top"
	case AnchorMiddle:
		return "middle"
	case AnchorBottom:
		return "bottom"
	default:
		return "VerticalAnchor(" + strconv.Itoa(int(a)) + ")"
	}
}

// HorizontalAnchor names a vertical line of a rectangle.
type HorizontalAnchor int

// The horizontal anchors.
const (
	AnchorLeft HorizontalAnchor = iota
	AnchorCenter
	AnchorRight
)

func (a HorizontalAnchor) String() string {
	switch a {
	case AnchorLeft:
		return "left"
	case AnchorCenter:
		return "center"
	case AnchorRight:
		return "right"
	default:
		return "HorizontalAnchor(" + strconv.Itoa(int(a)) + ")"
	}
}

// Anchor is the set of anchor types accepted by [Align].
type Anchor interface {
	VerticalAnchor | HorizontalAnchor
	line(c Convention) axisLine
	isVertical() bool
}

// axisLine is the position of an anchor along its axis.
type axisLine int

const (
	lineMin axisLine = iota
	lineMid
	lineMax
)

func (a VerticalAnchor) line(c Convention) axisLine {
	switch a {
	case AnchorTop:
		if c.topIsMin() {
			return lineMin
		}
		return lineMax
	case AnchorBottom:
		if c.topIsMin() {
			return lineMax
		}
		return lineMin
	case AnchorMiddle:
		return lineMid
	default:
		panic("frame: invalid VerticalAnchor " + strconv.Itoa(int(a)))
	}
}

func (VerticalAnchor) isVertical() bool { return true }

func (a HorizontalAnchor) line(Convention) axisLine {
	switch a {
	case AnchorLeft:
		return lineMin
	case AnchorCenter:
		return lineMid
	case AnchorRight:
		return lineMax
	default:
		panic("frame: invalid HorizontalAnchor " + strconv.Itoa(int(a)))
	}
}

func (HorizontalAnchor) isVertical() bool { return false }

// alignMin returns the new minimum coordinate of a span of length size
// whose line mine is placed on the line theirs of the reference span.
//
// The 3×3 table of combinations factors into the position of the
// reference line and the offset of the moving line from its minimum.
func alignMin(mine, theirs axisLine, refMin, refMid, refMax, size float64) float64 {
	target := [3]float64{refMin, refMid, refMax}[theirs]
	offset := [3]float64{0, size * 0.5, size}[mine]
	return target - offset
}

// Align moves r along one axis so that the anchor line mine of r coincides
// with the anchor line theirs of ref. The size of r and its position along
// the other axis are unchanged.
func Align[A Anchor](c Convention, r Rect, mine, theirs A, ref Rect) Rect {
	if mine.isVertical() {
		newMin := alignMin(mine.line(c), theirs.line(c),
			ref.MinY(), ref.MidY(), ref.MaxY(), r.Height())
		r.Origin.Y = originFromMin(newMin, r.Size.Height)
	} else {
		newMin := alignMin(mine.line(c), theirs.line(c),
			ref.MinX(), ref.MidX(), ref.MaxX(), r.Width())
		r.Origin.X = originFromMin(newMin, r.Size.Width)
	}
	return r
}

// originFromMin converts a minimum coordinate back into an origin
// coordinate, for a span with the given signed length.
func originFromMin(newMin, size float64) float64 {
	if size < 0 {
		return newMin - size
	}
	return newMin
}

// AlignVertical moves r vertically so that its line mine lies on the line
// theirs of ref.
func (c Convention) AlignVertical(r Rect, mine, theirs VerticalAnchor, ref Rect) Rect {
	return Align(c, r, mine, theirs, ref)
}

// AlignHorizontal moves r horizontally so that its line mine lies on the
// line theirs of ref.
func (c Convention) AlignHorizontal(r Rect, mine, theirs HorizontalAnchor, ref Rect) Rect {
	return Align(c, r, mine, theirs, ref)
}

// AlignVertical is [Convention.AlignVertical] for the [Default] convention.
func (r Rect) AlignVertical(mine, theirs VerticalAnchor, ref Rect) Rect {
	return Align(Default, r, mine, theirs, ref)
}

// AlignHorizontal is [Convention.AlignHorizontal] for the [Default]
// convention.
func (r Rect) AlignHorizontal(mine, theirs HorizontalAnchor, ref Rect) Rect {
	return Align(Default, r, mine, theirs, ref)
}
