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

import (
	"math"

	"seehuhn.de/go/frame"
)

var boundCases = []TestCase{
	{
		Name: "points_two_corners",
		Op:   BoundPoints{Points: []frame.Point{{X: 0, Y: 0}, {X: 4, Y: 3}}},
		Want: frame.R(0, 0, 4, 3),
	},
	{
		Name: "points_scattered",
		Op: BoundPoints{Points: []frame.Point{
			{X: 5, Y: 1}, {X: -2, Y: 7}, {X: 3, Y: -4}, {X: 0, Y: 0},
		}},
		Want: frame.R(-2, -4, 7, 11),
	},
	{
		Name: "points_single",
		Op:   BoundPoints{Points: []frame.Point{{X: 3, Y: 3}}},
		Want: frame.R(3, 3, 0, 0),
	},
	{
		Name: "rects_two",
		Op:   BoundRects{Rects: []frame.Rect{frame.R(0, 0, 2, 2), frame.R(5, 6, 1, 1)}},
		Want: frame.R(0, 0, 6, 7),
	},
	{
		Name: "rects_negative_size",
		Op:   BoundRects{Rects: []frame.Rect{frame.R(4, 4, -2, -2), frame.R(0, 0, 1, 1)}},
		Want: frame.R(0, 0, 4, 4),
	},
	{
		Name: "rects_nested",
		Op:   BoundRects{Rects: []frame.Rect{frame.R(1, 1, 2, 2), frame.R(0, 0, 8, 8)}},
		Want: frame.R(0, 0, 8, 8),
	},
	{
		Name: "points_empty",
		Op:   BoundPoints{},
		Err:  frame.ErrNoInput,
	},
	{
		Name: "rects_empty",
		Op:   BoundRects{},
		Err:  frame.ErrNoInput,
	},
	{
		Name: "points_infinite",
		Op:   BoundPoints{Points: []frame.Point{{X: 0, Y: 0}, {X: math.Inf(1), Y: 1}}},
		Err:  frame.ErrNotFinite,
	},
	{
		Name: "points_negative_infinite",
		Op:   BoundPoints{Points: []frame.Point{{X: 0, Y: math.Inf(-1)}}},
		Err:  frame.ErrNotFinite,
	},
	{
		Name: "rects_infinite",
		Op:   BoundRects{Rects: []frame.Rect{frame.R(0, 0, 1, 1), frame.R(0, 0, math.Inf(1), 1)}},
		Err:  frame.ErrNotFinite,
	},
}
