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


package screen

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"seehuhn.de/go/frame"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Profile
		err  error
	}{
		{"empty", "", DefaultProfile, nil},
		{"scale", "scale: 2\n", Profile{Scale: 2, Convention: frame.YDown}, nil},
		{"both", "scale: 1.5\nconvention: y-up\n", Profile{Scale: 1.5, Convention: frame.YUp}, nil},
		{"convention only", "convention: YDown\n", DefaultProfile, nil},
		{"zero scale", "scale: 0\n", Profile{}, ErrBadScale},
		{"negative scale", "scale: -2\n", Profile{}, ErrBadScale},
		{"bad convention", "convention: sideways\n", Profile{}, ErrBadConvention},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseProfile([]byte(test.in))
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("got error %v, want %v", err, test.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("got %+v, want %+v", got, test.want)
			}
		})
	}

	if _, err := ParseProfile([]byte("scale: [1, 2]\n")); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestParseConvention(t *testing.T) {
	for _, c := range []frame.Convention{frame.YDown, frame.YUp} {
		got, err := ParseConvention(c.String())
		if err != nil || got != c {
			t.Errorf("%s: got %s, %v", c, got, err)
		}
	}
	for _, name := range []string{"y_up", "Y UP", "YUp"} {
		if got, err := ParseConvention(name); err != nil || got != frame.YUp {
			t.Errorf("%q: got %s, %v", name, got, err)
		}
	}
	if _, err := ParseConvention("up"); !errors.Is(err, ErrBadConvention) {
		t.Errorf("got error %v", err)
	}
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "screen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetect(t *testing.T) {
	t.Setenv(EnvScale, "")
	t.Setenv(EnvConvention, "")

	path := writeProfile(t, "scale: 2\nconvention: y-up\n")
	p, err := Detect(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Profile{Scale: 2, Convention: frame.YUp}); p != want {
		t.Errorf("from file: got %+v, want %+v", p, want)
	}

	// environment overrides the file
	t.Setenv(EnvScale, "3")
	t.Setenv(EnvConvention, "y-down")
	p, err = Detect(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Profile{Scale: 3, Convention: frame.YDown}); p != want {
		t.Errorf("from environment: got %+v, want %+v", p, want)
	}

	t.Setenv(EnvScale, "many")
	if _, err := Detect(path); err == nil {
		t.Error("malformed scale accepted")
	}
	t.Setenv(EnvScale, "-1")
	if _, err := Detect(path); !errors.Is(err, ErrBadScale) {
		t.Errorf("negative scale: got error %v", err)
	}
}

func TestDetectMissingFile(t *testing.T) {
	t.Setenv(EnvScale, "")
	t.Setenv(EnvConvention, "")

	p, err := Detect(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Convention != frame.Default {
		t.Errorf("convention %s, want %s", p.Convention, frame.Default)
	}
	if runtime.GOOS != "windows" && p.Scale != frame.NoScale {
		t.Errorf("scale %g, want none", p.Scale)
	}

	if _, err := Detect(writeProfile(t, "convention: diagonal\n")); !errors.Is(err, ErrBadConvention) {
		t.Errorf("bad file: got error %v", err)
	}
}

func TestSystemScale(t *testing.T) {
	s, err := SystemScale()
	if runtime.GOOS != "windows" {
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("got error %v, want %v", err, ErrUnsupported)
		}
		return
	}
	if err == nil && !s.Known() {
		t.Errorf("scale %g is not usable", s)
	}
}
