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

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs installs a debug logger writing to a buffer, for the
// duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return buf
}

func TestDefaultLoggerSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger is enabled for %v", level)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestLogMessages(t *testing.T) {
	buf := captureLogs(t)

	AlignScalar(1.5, LinearRound, NoScale)
	if !strings.Contains(buf.String(), "no pixel scale") {
		t.Errorf("missing scale not logged: %q", buf.String())
	}

	buf.Reset()
	if _, err := BoundingPoints(); !errors.Is(err, ErrNoInput) {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no points") {
		t.Errorf("empty input not logged: %q", buf.String())
	}

	buf.Reset()
	if _, err := Scaling(0, 0).Inverse(); err == nil {
		t.Fatal("singular transform inverted")
	}
	if !strings.Contains(buf.String(), "cannot invert") {
		t.Errorf("singular transform not logged: %q", buf.String())
	}

	buf.Reset()
	R(0, 0, 1, 1).AlignToPixels(ArealExtend, 2)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}

func TestLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(nopHandler{}))
			} else {
				R(0.5, 0.5, 1, 1).AlignToPixels(ArealRound, NoScale)
			}
		}()
	}
	wg.Wait()
}
