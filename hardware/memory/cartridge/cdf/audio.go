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

package cdf

// oscillatorNumerator and oscillatorDenominator express the 20kHz
// oscillator's rational relationship to the host's ~1.19MHz clock as
// 60000/3579575, equivalent to 20000/1193191.66666667 but free of the
// repeating decimal - this keeps updateAudio computable without losing
// precision relative to the reference.
const (
	oscillatorNumerator   = 60000
	oscillatorDenominator = 3579575
)

// updateAudio advances the three voices' phase accumulators to
// hostCycles, the host's current cycle count. It is called lazily, from
// any path that needs a current sample, never on a fixed schedule -
// exactly mirroring the reference's "update on demand" design
// (SPEC_FULL.md §4.B, §9 fractional-clocks note).
func (s *state) updateAudio(hostCycles int64) {
	delta := hostCycles - s.audioCycles
	s.audioCycles = hostCycles

	clocksF := float64(delta)*oscillatorNumerator/oscillatorDenominator + s.fractionalClocks
	whole := int64(clocksF)
	s.fractionalClocks = clocksF - float64(whole)
	if whole <= 0 {
		return
	}

	for v := 0; v < 3; v++ {
		s.musicCounters[v] += s.musicFrequencies[v] * uint32(whole)
	}
}

// digitalSample implements the digital-audio branch of sample production:
// one nibble of a packed sample, selected by bit 20 of voice 0's counter,
// read from either the ROM image or cartridge RAM depending on where
// get_sample() points. read8bit's address ranges (addresses.go) already
// cover exactly the ROM (0x0000..0x7fff) and RAM (0x40000000..0x40001fff)
// windows the digital-sample register is allowed to address; anything
// else falls through to the spec's "out of range" silent zero.
func (c *Cartridge) digitalSample() uint8 {
	addr := c.static.getSample() + (c.state.musicCounters[0] >> 21)

	raw, ok := c.static.read8bit(addr)
	if !ok {
		return 0
	}

	if c.state.musicCounters[0]&(1<<20) == 0 {
		raw >>= 4
	}
	return raw & 0x0f
}

// additiveSample implements the three-voice additive branch: the sum,
// with 8-bit unsigned wraparound, of each voice's current waveform byte.
func (c *Cartridge) additiveSample() uint8 {
	var sum uint8
	for v := 0; v < 3; v++ {
		wf := c.static.getWaveform(v)
		idx := wf + uint16(c.state.musicCounters[v]>>c.state.musicWaveformSize[v])
		sum += c.static.dataRAM[idx&0x0fff]
	}
	return sum
}

// sample produces the byte an intercepted LDA# AMPLITUDE fetch returns,
// updating the audio engine first so the result reflects the host cycles
// elapsed since the last sample.
func (c *Cartridge) sample() uint8 {
	c.state.updateAudio(c.hostCycles())

	if c.state.digitalAudioEnabled() {
		return c.digitalSample()
	}
	return c.additiveSample()
}

// Sample exports sample() for tooling (wavdump) that wants the cartridge's
// current audio output without going through the 6507 fast-fetch path.
func (c *Cartridge) Sample() uint8 {
	return c.sample()
}
