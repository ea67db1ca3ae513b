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

// moving and reference rectangles shared by the anchor table cases.
var (
	alignRect = frame.R(2, 3, 4, 2)
	alignRef  = frame.R(10, 10, 8, 6)
)

// Expected origin coordinates of alignRect after alignment against
// alignRef, indexed by [mine][theirs].
var (
	// y-down: top=10, middle=13, bottom=16 on the reference, height 2
	wantVerticalDown = [3][3]float64{
		{10, 13, 16},
		{9, 12, 15},
		{8, 11, 14},
	}

	// y-up: top=16, middle=13, bottom=10 on the reference
	wantVerticalUp = [3][3]float64{
		{14, 11, 8},
		{15, 12, 9},
		{16, 13, 10},
	}

	// left=10, center=14, right=18 on the reference, width 4
	wantHorizontal = [3][3]float64{
		{10, 14, 18},
		{8, 12, 16},
		{6, 10, 14},
	}
)

var verticalAnchors = []frame.VerticalAnchor{
	frame.AnchorTop, frame.AnchorMiddle, frame.AnchorBottom,
}

var horizontalAnchors = []frame.HorizontalAnchor{
	frame.AnchorLeft, frame.AnchorCenter, frame.AnchorRight,
}

var alignCases = makeAlignCases()

func makeAlignCases() []TestCase {
	var cases []TestCase

	conventions := []struct {
		c    frame.Convention
		tag  string
		want [3][3]float64
	}{
		{frame.YDown, "down", wantVerticalDown},
		{frame.YUp, "up", wantVerticalUp},
	}
	for _, conv := range conventions {
		for i, mine := range verticalAnchors {
			for j, theirs := range verticalAnchors {
				cases = append(cases, TestCase{
					Name:       "vertical_" + conv.tag + "_" + mine.String() + "_" + theirs.String(),
					Convention: conv.c,
					Op:         AlignV{Rect: alignRect, Ref: alignRef, Mine: mine, Theirs: theirs},
					Want:       alignRect.WithY(conv.want[i][j]),
				})
			}
		}
	}

	for i, mine := range horizontalAnchors {
		for j, theirs := range horizontalAnchors {
			cases = append(cases, TestCase{
				Name: "horizontal_" + mine.String() + "_" + theirs.String(),
				Op:   AlignH{Rect: alignRect, Ref: alignRef, Mine: mine, Theirs: theirs},
				Want: alignRect.WithX(wantHorizontal[i][j]),
			})
		}
	}

	cases = append(cases,
		TestCase{
			Name: "both_middle_center",
			Op: AlignBoth{
				Rect:  frame.R(0, 0, 2, 2),
				Ref:   frame.R(10, 10, 4, 4),
				VMine: frame.AnchorMiddle,
				VRef:  frame.AnchorMiddle,
				HMine: frame.AnchorCenter,
				HRef:  frame.AnchorCenter,
			},
			Want: frame.R(11, 11, 2, 2),
		},
		TestCase{
			Name: "both_below_right",
			Op: AlignBoth{
				Rect:  frame.R(0, 0, 3, 1),
				Ref:   frame.R(4, 4, 6, 2),
				VMine: frame.AnchorTop,
				VRef:  frame.AnchorBottom,
				HMine: frame.AnchorRight,
				HRef:  frame.AnchorRight,
			},
			Want: frame.R(7, 6, 3, 1),
		},
		TestCase{
			Name: "negative_size",
			Op: AlignH{
				Rect:   frame.R(4, 0, -2, 1),
				Ref:    frame.R(10, 0, 4, 1),
				Mine:   frame.AnchorLeft,
				Theirs: frame.AnchorLeft,
			},
			Want: frame.R(12, 0, -2, 1),
		},
	)
	return cases
}
