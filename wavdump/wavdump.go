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

// Package wavdump steps a CDF cartridge's audio engine at its native 20kHz
// oscillator rate and writes the resulting 8-bit mono samples to a WAV
// file - the tool a ROM author reaches for to listen to what a CDF music
// track or digital sample actually produces.
package wavdump

import (
	"os"

	"github.com/youpy/go-wav"

	"github.com/go2600/cdfcore/curated"
	"github.com/go2600/cdfcore/hardware/memory/cartridge/cdf"
	"github.com/go2600/cdfcore/logger"
)

// hostClockHz is the host's ~1.19MHz clock, the same rate Cartridge.Step
// advances the cartridge's cycle counter against.
const hostClockHz = 1193191.66666667

// cyclesPerSample is the number of host cycles between two consecutive
// oscillator ticks - the inverse of the 20kHz sample() rate. It is not a
// whole number; Dump steps in whole Step calls and carries the fractional
// remainder from one sample to the next.
const cyclesPerSample = hostClockHz / 20000.0

// Dump steps cart's audio engine for seconds seconds of emulated time and
// writes the resulting 8-bit mono samples to a WAV file at path. The
// entire recording is buffered in memory before being encoded, mirroring
// the teacher's WavWriter.EndMixing - fine for the short captures this
// tool is meant for, not for anything unattended or long-running.
func Dump(cart *cdf.Cartridge, path string, seconds float64) error {
	n := int(seconds * 20000.0)
	buf := make([]wav.Sample, 0, n)

	next := 0.0
	for i := 0; i < n; i++ {
		for next < cyclesPerSample {
			cart.Step()
			next++
		}
		next -= cyclesPerSample

		v := cart.Sample()
		s := wav.Sample{}
		s.Values[0] = int(v)
		s.Values[1] = int(v)
		buf = append(buf, s)
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("wavdump: %v", err)
	}
	defer f.Close()

	logger.Logf(logger.Allow, "wavdump", "writing %d samples to %s", len(buf), path)

	enc := wav.NewWriter(f, uint32(len(buf)), 1, 20000, 8)
	if enc == nil {
		return curated.Errorf("wavdump: bad parameters for wav encoding")
	}
	enc.WriteSamples(buf)

	return nil
}
