// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/go2600/cdfcore/logger"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	if w.String() != "" {
		t.Errorf("unexpected content: %q", w.String())
	}

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	if got, want := w.String(), "test: this is a test\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	w.Reset()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(w)
	want := "test: this is a test\ntest2: this is another test\n"
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	w.Reset()
	logger.Tail(w, 100)
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	w.Reset()
	logger.Tail(w, 1)
	if got, want := w.String(), "test2: this is another test\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	w.Reset()
	logger.Tail(w, 0)
	if w.String() != "" {
		t.Errorf("unexpected content: %q", w.String())
	}
}

// a custom Permission that only allows logging once a threshold is crossed,
// the way the CDF cartridge suppresses ARM-fault reporting while the host is
// still in ROM-autodetect mode (SPEC_FULL.md §4.F).
type thresholdPermission struct {
	n int
}

func (p *thresholdPermission) AllowLogging() bool {
	p.n++
	return p.n > 1
}

func TestPermission(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	perm := &thresholdPermission{}

	logger.Log(perm, "arm", "fault suppressed during autodetect")
	logger.Write(w)
	if w.String() != "" {
		t.Errorf("expected suppressed log entry, got %q", w.String())
	}

	logger.Log(perm, "arm", "fault reported")
	logger.Write(w)
	if got, want := w.String(), "arm: fault reported\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(logger.Allow, "arm", "stack fault")
	logger.Log(logger.Allow, "arm", "stack fault")
	logger.Log(logger.Allow, "arm", "stack fault")
	logger.Write(w)

	if got, want := w.String(), "arm: stack fault (repeat x2)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
