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


//go:build windows

package screen

import (
	"fmt"
	"syscall"

	"github.com/lxn/win"

	"seehuhn.de/go/frame"
)

// baseDPI is the logical resolution which Windows treats as scale 1.
const baseDPI = 96

// SystemScale returns the pixel scale of the primary display, computed from
// the horizontal resolution of the desktop device context.
func SystemScale() (frame.PixelScale, error) {
	hdc := win.GetDC(0)
	if hdc == 0 {
		return frame.NoScale, fmt.Errorf("screen: GetDC failed: %w", syscall.GetLastError())
	}
	defer win.ReleaseDC(0, hdc)

	dpi := win.GetDeviceCaps(hdc, win.LOGPIXELSX)
	if dpi <= 0 {
		return frame.NoScale, fmt.Errorf("screen: GetDeviceCaps returned %d", dpi)
	}
	return frame.PixelScale(float64(dpi) / baseDPI), nil
}
