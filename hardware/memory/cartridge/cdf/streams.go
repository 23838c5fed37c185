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

// getPtr/setPtr and getInc/setInc are the four stream-register codec
// primitives (SPEC_FULL.md §4.A): each data stream has a 32-bit pointer
// and a 32-bit increment register, packed little-endian into fixed tables
// in driver RAM so that the ARM program can see and mutate them directly.

func (s *static) getPtr(i int) uint32 {
	return s.driverRAMWord(uint16(fetcherBase + 4*i))
}

func (s *static) setPtr(i int, v uint32) {
	s.putDriverRAMWord(uint16(fetcherBase+4*i), v)
}

func (s *static) getInc(i int) uint32 {
	return s.driverRAMWord(uint16(incrementBase + 4*i))
}

func (s *static) setInc(i int, v uint32) {
	s.putDriverRAMWord(uint16(incrementBase+4*i), v)
}

// readStream implements read_stream(i): it fetches the byte the stream's
// pointer currently indexes in the first 4K of display RAM, then advances
// the pointer by the stream's increment, shifted left 12 bits. The top 12
// bits of the 32-bit pointer select the byte; there is no saturation, so
// the pointer wraps in 32 bits and the indexed byte wraps with it - ROMs
// depend on this exact arithmetic.
func (s *static) readStream(i int) uint8 {
	p := s.getPtr(i)
	v := s.dataRAM[p>>fetcherShift]
	s.setPtr(i, p+(s.getInc(i)<<incrementShift))
	return v
}

// writeStream implements the DSWRITE hotspot: it writes val at the
// pointer's current index, then advances the pointer's byte index by
// exactly one (not by the stream's increment register).
func (s *static) writeStream(i int, val uint8) {
	p := s.getPtr(i)
	s.dataRAM[p>>fetcherShift] = val
	s.setPtr(i, p+streamAdvance)
}

// advanceStream implements the fast-jump continuation's pointer step: it
// reads the byte at the pointer's current index and advances the byte
// index by exactly one, same as writeStream but without mutating memory.
func (s *static) advanceStream(i int) uint8 {
	p := s.getPtr(i)
	v := s.dataRAM[p>>fetcherShift]
	s.setPtr(i, p+streamAdvance)
	return v
}

// assemblePointer implements the DSPTR hotspot: four successive writes
// shift the stream's existing pointer left 8 bits, mask to the top
// nibble, and OR in val placed at bit 20 - building a 32-bit pointer one
// byte at a time, most-significant byte first.
func (s *static) assemblePointer(i int, val uint8) {
	p := s.getPtr(i)
	p = (p << 8) & 0xf0000000
	p |= uint32(val) << fetcherShift
	s.setPtr(i, p)
}

// getWaveform implements get_waveform(i): it decodes the (i+1)'th
// WAVEFORM table entry as an ARM RAM address, rebases it relative to the
// start of display RAM, and masks it into range if the ARM program wrote
// an address past the first 4K of display RAM.
func (s *static) getWaveform(i int) uint16 {
	addr := s.driverRAMWord(uint16(musicBase + 4*(i+1)))
	addr -= dataOriginRAM
	if addr >= 4096 {
		addr &= 0x0fff
	}
	return uint16(addr)
}

// getSample implements get_sample(): it returns the WAVEFORM table's
// zeroth entry verbatim, as a raw 32-bit address into either the ROM
// image or cartridge RAM - resolved by the caller (audio.go).
func (s *static) getSample() uint32 {
	return s.driverRAMWord(musicBase)
}
