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


// Package frame implements rectangle geometry for layout and rendering code.
//
// All types are small immutable values: [Point], [Size], [Vector], [Rect]
// and the affine [Transform]. On top of these the package provides bounding
// rectangles for point and rectangle sets, a named vertex and edge model with
// directional traversal, anchor based alignment of one rectangle against
// another, and snapping to a device pixel grid.
//
// The package never consults the host environment. Where the result depends
// on the orientation of the y-axis a [Convention] is passed explicitly, and
// pixel alignment takes the [PixelScale] as an argument. The package
// seehuhn.de/go/frame/screen can be used to find the scale of the current
// display.
//
// All functions are safe for concurrent use.
package frame

import "strconv"

//go:generate go run ./testcases/export

// Convention selects the direction of the y-axis.
//
// The convention decides which side of a rectangle is called "top": with
// [YDown] the top edge is at MinY, with [YUp] it is at MaxY. Coordinates
// are never changed by the convention, only the names attached to them.
type Convention int

const (
	// YDown is the convention of screen and image coordinates,
	// where y grows towards the bottom of the display.
	YDown Convention = iota

	// YUp is the convention of PDF and PostScript user space,
	// where y grows towards the top of the page.
	YUp
)

// Default is the convention used by the methods of [Rect] which do not
// take a convention argument.
const Default = YDown

func (c Convention) String() string {
	switch c {
	case YDown:
		return "y-down"
	case YUp:
		return "y-up"
	default:
		return "Convention(" + strconv.Itoa(int(c)) + ")"
	}
}

// topIsMin reports whether the top edge of a rectangle is at MinY.
func (c Convention) topIsMin() bool {
	return c != YUp
}

// Mix returns the linear mix a*(1-t) + b*t.
func Mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
