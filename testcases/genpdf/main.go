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


// Command genpdf draws every test case into a PDF file, for visual
// inspection of the expected results.
//
// Input rectangles are stroked in grey, the result is filled in white on a
// black background. Snapping cases also show the pixel grid.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/frame"
	"seehuhn.de/go/frame/screen"
	"seehuhn.de/go/frame/testcases"
)

const (
	outDir = "testdata/sheets"
	unit   = 24.0 // PDF points per unit of length
	margin = 1.0  // border around the drawing, in units
)

func main() {
	profilePath := flag.String("profile", "", "display profile (YAML)")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if *verbose {
		frame.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Err != nil {
				continue
			}
			name := category + "_" + tc.Name
			if err := generatePDF(tc, filepath.Join(outDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	// Show how the snapping cases look on the current display.
	prof, err := screen.Detect(*profilePath)
	if err != nil {
		panic(err)
	}
	if !prof.Scale.Known() {
		frame.Logger().Info("no display scale, skipping display sheets")
		return
	}
	for _, mode := range []frame.ArealAlignment{frame.ArealExtend, frame.ArealRound, frame.ArealShrink} {
		tc := testcases.TestCase{
			Name:       "display_" + mode.String(),
			Convention: prof.Convention,
			Op:         testcases.Snap{Rect: frame.R(0.3, 0.45, 2.6, 1.7), Mode: mode, Scale: prof.Scale},
		}
		tc.Want, _ = tc.Run()
		if err := generatePDF(tc, filepath.Join(outDir, tc.Name+".pdf")); err != nil {
			panic(fmt.Errorf("%s: %w", tc.Name, err))
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	got, err := tc.Run()
	if err != nil {
		return err
	}
	if got != tc.Want {
		return fmt.Errorf("result %s, want %s", got, tc.Want)
	}

	inputs := tc.Op.Inputs()
	box, err := frame.BoundingRects(append(slices.Clone(inputs), got)...)
	if err != nil {
		return err
	}
	box = frame.R(box.MinX()-margin, box.MinY()-margin, box.Width()+2*margin, box.Height()+2*margin)

	paper := &pdf.Rectangle{
		URx: math.Ceil(box.Width() * unit),
		URy: math.Ceil(box.Height() * unit),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// Map case coordinates to the page. PDF is y-up, so y-down cases are
	// flipped.
	toPage := frame.Translation(-box.MinX(), -box.MinY()).Concat(frame.UniformScaling(unit))
	if tc.Convention == frame.YDown {
		toPage = toPage.Concat(frame.Transform{1, 0, 0, -1, 0, paper.URy})
	}
	page.Transform(toPage.Matrix())

	drawRect := func(r frame.Rect) {
		for cmd, pts := range tc.Convention.Outline(r, frame.Clockwise, frame.TopLeft) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetLineWidth(1 / unit)

	if op, ok := tc.Op.(testcases.Snap); ok && op.Scale.Known() {
		page.SetStrokeColor(color.DeviceGray(0.25))
		step := 1 / float64(op.Scale)
		for x := math.Ceil(box.MinX()/step) * step; x <= box.MaxX(); x += step {
			page.MoveTo(x, box.MinY())
			page.LineTo(x, box.MaxY())
		}
		for y := math.Ceil(box.MinY()/step) * step; y <= box.MaxY(); y += step {
			page.MoveTo(box.MinX(), y)
			page.LineTo(box.MaxX(), y)
		}
		page.Stroke()
	}

	page.SetFillColor(color.DeviceGray(1))
	drawRect(got)
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetLineWidth(2 / unit)
	for _, r := range inputs {
		if r.IsEmpty() {
			// points and collapsed rects get a small marker
			c := r.Center()
			drawRect(frame.RectAround(c, frame.Sz(4/unit, 4/unit)))
			continue
		}
		drawRect(r)
	}
	page.Stroke()

	return page.Close()
}
