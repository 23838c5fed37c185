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

// state is the cartridge's non-RAM-backed register state: the active
// bank, the fast-fetch/digital-audio mode byte, the fast-fetch latches,
// the three audio voices, and the cycle baselines the audio/ARM engines
// reconcile against. None of this is directly addressable by the ARM
// program - it is bookkeeping the cartridge keeps for the 6507 side.
type state struct {
	bank int

	// mode is written by SETMODE. A zero low nibble enables fast-fetch; a
	// zero high nibble enables digital-audio sample playback in place of
	// the three-voice additive mix.
	mode uint8

	// ldaOperandAddr latches the address immediately following an
	// intercepted LDA# opcode fetch, or 0 if no LDA# is pending.
	ldaOperandAddr uint16

	// jmpOperandAddr/fastJumpActive track a JMP $0000 fast-jump in
	// progress: fastJumpActive counts down from 2 as the two operand
	// bytes following the JMP opcode are intercepted.
	jmpOperandAddr uint16
	fastJumpActive uint8

	// musicCounters are the three voices' 32-bit phase accumulators.
	musicCounters [3]uint32
	// musicFrequencies are the three voices' per-tick increments, set by
	// the ARM SetNote callback.
	musicFrequencies [3]uint32
	// musicWaveformSize is the right-shift applied to a counter to index
	// its waveform; 27 initially.
	musicWaveformSize [3]uint8

	// audioCycles/armCycles are the host cycle counts as of the last
	// audio-engine/ARM-bridge reconciliation.
	audioCycles int64
	armCycles   int64

	// fractionalClocks carries the sub-tick remainder of the 20kHz
	// oscillator across updates; always in [0, 1).
	fractionalClocks float64
}

func newState() *state {
	s := &state{}
	s.reset(0)
	return s
}

// reset restores every field to its power-on value and baselines the
// cycle counters against hostCycles (SPEC_FULL.md §4.G).
func (s *state) reset(hostCycles int64) {
	s.bank = bankCount - 1 // startup bank
	s.mode = modeInitial
	s.ldaOperandAddr = 0
	s.jmpOperandAddr = 0
	s.fastJumpActive = 0
	s.musicCounters = [3]uint32{}
	s.musicFrequencies = [3]uint32{}
	s.musicWaveformSize = [3]uint8{27, 27, 27}
	s.audioCycles = hostCycles
	s.armCycles = hostCycles
	s.fractionalClocks = 0
}

func (s *state) fastFetchEnabled() bool {
	return s.mode&modeFastFetchMask == 0
}

func (s *state) digitalAudioEnabled() bool {
	return s.mode&modeDigitalAudioMask == 0
}

func (s *state) snapshot() state {
	return *s
}
