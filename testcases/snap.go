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

var snapInput = frame.R(0.25, 0.5, 2.5, 1.25)

var snapCases = []TestCase{
	{
		Name: "extend_scale1",
		Op:   Snap{Rect: snapInput, Mode: frame.ArealExtend, Scale: 1},
		Want: frame.R(0, 0, 3, 2),
	},
	{
		Name: "shrink_scale1",
		Op:   Snap{Rect: snapInput, Mode: frame.ArealShrink, Scale: 1},
		Want: frame.R(1, 1, 1, 0),
	},
	{
		Name: "round_scale1",
		Op:   Snap{Rect: snapInput, Mode: frame.ArealRound, Scale: 1},
		Want: frame.R(0, 1, 3, 1),
	},
	{
		Name: "extend_scale2",
		Op:   Snap{Rect: snapInput, Mode: frame.ArealExtend, Scale: 2},
		Want: frame.R(0, 0.5, 3, 1.5),
	},
	{
		Name: "shrink_scale2",
		Op:   Snap{Rect: snapInput, Mode: frame.ArealShrink, Scale: 2},
		Want: frame.R(0.5, 0.5, 2, 1),
	},
	{
		Name: "extend_scale3",
		Op:   Snap{Rect: frame.R(0.25, 0, 1, 1), Mode: frame.ArealExtend, Scale: 3},
		Want: frame.R(0, 0, 4.0/3, 1),
	},
	{
		Name: "shrink_collapse",
		Op:   Snap{Rect: frame.R(0.25, 0.25, 0.5, 0.5), Mode: frame.ArealShrink, Scale: 1},
		Want: frame.R(0.25, 0.25, 0, 0),
	},
	{
		Name: "extend_aligned",
		Op:   Snap{Rect: frame.R(1, 2, 3, 4), Mode: frame.ArealExtend, Scale: 2},
		Want: frame.R(1, 2, 3, 4),
	},
	{
		Name: "no_scale_truncates",
		Op:   Snap{Rect: frame.R(1.7, -1.7, 2.9, 3.2), Mode: frame.ArealExtend, Scale: frame.NoScale},
		Want: frame.R(1, -1, 2, 3),
	},
	{
		Name:       "extend_y_up",
		Convention: frame.YUp,
		Op:         Snap{Rect: snapInput, Mode: frame.ArealExtend, Scale: 1},
		Want:       frame.R(0, 0, 3, 2),
	},
}
