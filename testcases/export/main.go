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


// Command export writes all test cases to testdata/testcases.json, for use
// by implementations in other languages.
package main

import (
	"encoding/json"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"

	"seehuhn.de/go/frame"
	"seehuhn.de/go/frame/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Convention string        `json:"convention"`
	Op         string        `json:"op"`
	Rects      []jsonRect    `json:"rects,omitempty"`
	Points     [][]jsonFloat `json:"points,omitempty"`
	Anchors    []string      `json:"anchors,omitempty"`
	Mode       string        `json:"mode,omitempty"`
	Scale      float64       `json:"scale,omitempty"`
	Want       *jsonRect     `json:"want,omitempty"`
	Error      string        `json:"error,omitempty"`
}

type jsonRect struct {
	X      jsonFloat `json:"x"`
	Y      jsonFloat `json:"y"`
	Width  jsonFloat `json:"width"`
	Height jsonFloat `json:"height"`
}

// jsonFloat encodes infinities as the strings "inf" and "-inf",
// which plain JSON numbers cannot represent.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	x := float64(f)
	switch {
	case math.IsInf(x, 1):
		return []byte(`"inf"`), nil
	case math.IsInf(x, -1):
		return []byte(`"-inf"`), nil
	case math.IsNaN(x):
		return []byte(`"nan"`), nil
	}
	return strconv.AppendFloat(nil, x, 'g', -1, 64), nil
}

func rectToJSON(r frame.Rect) jsonRect {
	return jsonRect{
		X:      jsonFloat(r.Origin.X),
		Y:      jsonFloat(r.Origin.Y),
		Width:  jsonFloat(r.Size.Width),
		Height: jsonFloat(r.Size.Height),
	}
}

func rectsToJSON(rects ...frame.Rect) []jsonRect {
	res := make([]jsonRect, len(rects))
	for i, r := range rects {
		res[i] = rectToJSON(r)
	}
	return res
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Convention: tc.Convention.String(),
	}

	switch op := tc.Op.(type) {
	case testcases.AlignV:
		jtc.Op = "align_vertical"
		jtc.Rects = rectsToJSON(op.Rect, op.Ref)
		jtc.Anchors = []string{op.Mine.String(), op.Theirs.String()}
	case testcases.AlignH:
		jtc.Op = "align_horizontal"
		jtc.Rects = rectsToJSON(op.Rect, op.Ref)
		jtc.Anchors = []string{op.Mine.String(), op.Theirs.String()}
	case testcases.AlignBoth:
		jtc.Op = "align_both"
		jtc.Rects = rectsToJSON(op.Rect, op.Ref)
		jtc.Anchors = []string{
			op.VMine.String(), op.VRef.String(),
			op.HMine.String(), op.HRef.String(),
		}
	case testcases.BoundPoints:
		jtc.Op = "bound_points"
		jtc.Points = make([][]jsonFloat, len(op.Points))
		for i, p := range op.Points {
			jtc.Points[i] = []jsonFloat{jsonFloat(p.X), jsonFloat(p.Y)}
		}
	case testcases.BoundRects:
		jtc.Op = "bound_rects"
		jtc.Rects = rectsToJSON(op.Rects...)
	case testcases.Snap:
		jtc.Op = "snap"
		jtc.Rects = rectsToJSON(op.Rect)
		jtc.Mode = op.Mode.String()
		jtc.Scale = float64(op.Scale)
	}

	if tc.Err != nil {
		jtc.Error = tc.Err.Error()
	} else {
		want := rectToJSON(tc.Want)
		jtc.Want = &want
	}
	return jtc
}
