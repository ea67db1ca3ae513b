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


// Package screen finds the pixel scale and coordinate convention of the
// display a program runs on.
//
// The geometry functions in seehuhn.de/go/frame never look at the host
// system. Programs call [Detect] once and pass the resulting [Profile]
// values into the pixel alignment functions.
package screen

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/frame"
)

// Environment variables which override the profile file.
const (
	EnvScale      = "FRAME_PIXEL_SCALE"
	EnvConvention = "FRAME_CONVENTION"
)

var (
	// ErrUnsupported is returned by [SystemScale] on platforms where the
	// display scale cannot be queried.
	ErrUnsupported = errors.New("screen: pixel scale query not supported")

	// ErrBadConvention is returned for unknown convention names.
	ErrBadConvention = errors.New("screen: unknown coordinate convention")

	// ErrBadScale is returned for scale values which are not positive
	// finite numbers.
	ErrBadScale = errors.New("screen: invalid pixel scale")
)

// Profile describes the geometry of a display.
type Profile struct {
	// Scale is the number of device pixels per unit, or [frame.NoScale].
	Scale frame.PixelScale

	// Convention is the direction of the y-axis.
	Convention frame.Convention
}

// DefaultProfile is used when nothing is configured: unknown scale and
// y growing downwards.
var DefaultProfile = Profile{
	Scale:      frame.NoScale,
	Convention: frame.Default,
}

// profileFile is the YAML form of a profile.
type profileFile struct {
	Scale      *float64 `yaml:"scale"`
	Convention string   `yaml:"convention"`
}

// LoadProfile reads a profile from a YAML file of the form
//
//	scale: 2
//	convention: y-up
//
// Missing keys keep the values from [DefaultProfile].
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	return ParseProfile(data)
}

// ParseProfile decodes a profile in the format accepted by [LoadProfile].
func ParseProfile(data []byte) (Profile, error) {
	var raw profileFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Profile{}, fmt.Errorf("screen: profile: %w", err)
	}

	p := DefaultProfile
	if raw.Scale != nil {
		s, err := checkScale(*raw.Scale)
		if err != nil {
			return Profile{}, err
		}
		p.Scale = s
	}
	if raw.Convention != "" {
		c, err := ParseConvention(raw.Convention)
		if err != nil {
			return Profile{}, err
		}
		p.Convention = c
	}
	return p, nil
}

// Detect assembles the profile of the current display. Later sources
// override earlier ones:
//
//  1. [DefaultProfile],
//  2. the profile file at path, if path is not empty and the file exists,
//  3. the environment variables [EnvScale] and [EnvConvention],
//  4. [SystemScale], if no scale was configured so far.
//
// Failure to query the system scale is not an error; the profile then has
// no scale.
func Detect(path string) (Profile, error) {
	p := DefaultProfile
	if path != "" {
		fp, err := LoadProfile(path)
		switch {
		case err == nil:
			p = fp
		case errors.Is(err, fs.ErrNotExist):
			frame.Logger().Debug("no display profile", "path", path)
		default:
			return Profile{}, err
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvScale)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Profile{}, fmt.Errorf("%s: %w", EnvScale, err)
		}
		s, err := checkScale(f)
		if err != nil {
			return Profile{}, fmt.Errorf("%s: %w", EnvScale, err)
		}
		p.Scale = s
	}
	if v := strings.TrimSpace(os.Getenv(EnvConvention)); v != "" {
		c, err := ParseConvention(v)
		if err != nil {
			return Profile{}, fmt.Errorf("%s: %w", EnvConvention, err)
		}
		p.Convention = c
	}

	if !p.Scale.Known() {
		s, err := SystemScale()
		if err != nil {
			frame.Logger().Debug("system pixel scale unavailable", "error", err)
		} else {
			p.Scale = s
		}
	}
	return p, nil
}

// ParseConvention converts a convention name, as produced by
// [frame.Convention.String], back into a convention.
// Case, dashes and underscores are ignored.
func ParseConvention(name string) (frame.Convention, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "ydown":
		return frame.YDown, nil
	case "yup":
		return frame.YUp, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadConvention, name)
	}
}

func checkScale(f float64) (frame.PixelScale, error) {
	if !(f > 0) || math.IsInf(f, 0) {
		return frame.NoScale, fmt.Errorf("%w: %g", ErrBadScale, f)
	}
	return frame.PixelScale(f), nil
}
