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

import (
	"fmt"

	"github.com/go2600/cdfcore/logger"
)

// static is the cartridge's RAM-backed state: the driver and data RAM the
// ARM program operates on, plus the ROM images the driver and data RAM are
// seeded from at Reset. It implements bus.CartStatic for debugger
// introspection.
type static struct {
	driverROM []byte // 2K, read-only, copied from the ROM image
	customROM []byte // 2K, read-only, the embedded ARM/C program
	banksROM  [][]byte // bankCount x bankSize, the 6507-visible program banks

	driverRAM []byte // 2K, writable, reset from driverROM
	dataRAM   []byte // 6K, writable, zeroed at Reset
}

func newStatic(data []byte) (*static, error) {
	if len(data) < driverSize+customSize+bankSize {
		return nil, fmt.Errorf("cdf: ROM image too short (%d bytes)", len(data))
	}

	s := &static{
		driverROM: make([]byte, driverSize),
		customROM: make([]byte, customSize),
		driverRAM: make([]byte, driverRAMSize),
		dataRAM:   make([]byte, dataRAMSize),
	}

	copy(s.driverROM, data[:driverSize])
	copy(s.customROM, data[driverSize:driverSize+customSize])

	banked := data[driverSize+customSize:]
	numBanks := len(banked) / bankSize
	if numBanks > bankCount {
		numBanks = bankCount
	}
	s.banksROM = make([][]byte, numBanks)
	for b := 0; b < numBanks; b++ {
		s.banksROM[b] = banked[b*bankSize : (b+1)*bankSize]
	}

	s.reset()

	return s, nil
}

// reset restores driver RAM to the state it's in when the cartridge is
// first powered on: a fresh copy of the driver ROM. Data RAM (the 6K of
// display memory the data streams feed) is left as-is here - Cartridge.Reset
// zeroes it, or fills it from its random source, before calling this.
func (s *static) reset() {
	copy(s.driverRAM, s.driverROM)
}

// mapAddress translates an ARM-side address into a pointer to the backing
// byte slice and the offset within it, for use by the Thumb bridge. write
// selects between the read-only ROM images and the writable RAM; a write
// that lands in ROM is logged and returns a nil slice, which the caller
// treats as a bus fault.
//
// The banked program ROM (addresses bankedOriginROM..bankedMemtopROM) is
// stored as bankCount separate bankSize slices rather than one
// contiguous one; a read resolves the bank the address falls in and
// returns a pointer into that bank's own slice.
func (s *static) mapAddress(addr uint32, write bool) (*[]byte, uint32) {
	if write {
		switch {
		case addr >= driverOriginRAM && addr <= driverMemtopRAM:
			return &s.driverRAM, addr - driverOriginRAM
		case addr >= dataOriginRAM && addr <= dataMemtopRAM:
			return &s.dataRAM, addr - dataOriginRAM
		case addr >= driverOriginROM && addr <= bankedMemtopROM:
			logger.Logf(logger.Allow, "CDF", "ARM trying to write to ROM address (%08x)", addr)
		}
		return nil, 0
	}

	switch {
	case addr >= driverOriginROM && addr <= driverMemtopROM:
		return &s.driverROM, addr - driverOriginROM
	case addr >= customOriginROM && addr <= customMemtopROM:
		return &s.customROM, addr - customOriginROM
	case addr >= bankedOriginROM && addr <= bankedMemtopROM:
		off := addr - bankedOriginROM
		bank := int(off / bankSize)
		if bank >= len(s.banksROM) {
			return nil, 0
		}
		return &s.banksROM[bank], off % bankSize
	case addr >= driverOriginRAM && addr <= driverMemtopRAM:
		return &s.driverRAM, addr - driverOriginRAM
	case addr >= dataOriginRAM && addr <= dataMemtopRAM:
		return &s.dataRAM, addr - dataOriginRAM
	}
	return nil, 0
}

func (s *static) read8bit(addr uint32) (uint8, bool) {
	mem, off := s.mapAddress(addr, false)
	if mem == nil || int(off) >= len(*mem) {
		return 0, false
	}
	return (*mem)[off], true
}

func (s *static) read32bit(addr uint32) (uint32, bool) {
	mem, off := s.mapAddress(addr, false)
	if mem == nil || int(off)+3 >= len(*mem) {
		return 0, false
	}
	b := *mem
	return uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16 | uint32(b[off+3])<<24, true
}

func (s *static) write8bit(addr uint32, data uint8) bool {
	mem, off := s.mapAddress(addr, true)
	if mem == nil || int(off) >= len(*mem) {
		return false
	}
	(*mem)[off] = data
	return true
}

// driverRAMWord reads a 32-bit little-endian word from driver RAM at the
// given byte offset, via the same ARM-address-space path read32bit uses
// for the Thumb bridge. This is how the fast-fetch decoder reads
// data-stream pointers and increments, and how the audio engine reads the
// music-fetcher waveform table - all three tables live in driver RAM,
// not data RAM.
func (s *static) driverRAMWord(offset uint16) uint32 {
	v, _ := s.read32bit(driverOriginRAM + uint32(offset))
	return v
}

func (s *static) putDriverRAMWord(offset uint16, v uint32) {
	base := driverOriginRAM + uint32(offset)
	s.write8bit(base, byte(v))
	s.write8bit(base+1, byte(v>>8))
	s.write8bit(base+2, byte(v>>16))
	s.write8bit(base+3, byte(v>>24))
}

// String implements bus.CartStatic. CDF exposes its RAM as two named
// segments: the driver copy at "Driver", and the 6K of display memory the
// data streams feed at "Data". Unlike the multi-version Harmony formats
// this implementation was distilled from, CDF0 keeps its variables inside
// driver RAM, so there is no separate "Variables" segment.
func (s *static) String() string {
	return fmt.Sprintf("Driver: %d bytes\nData: %d bytes\n", len(s.driverRAM), len(s.dataRAM))
}

// copy returns a snapshot suitable for lazy evaluation by a debugger,
// per CartDebugBus's GetStatic contract.
func (s *static) copy() *static {
	cp := &static{
		driverROM: s.driverROM,
		customROM: s.customROM,
		banksROM:  s.banksROM,
		driverRAM: make([]byte, len(s.driverRAM)),
		dataRAM:   make([]byte, len(s.dataRAM)),
	}
	copy(cp.driverRAM, s.driverRAM)
	copy(cp.dataRAM, s.dataRAM)
	return cp
}

// PutStatic implements bus.CartDebugBus, allowing the debugger to poke
// cartridge RAM directly.
func (s *static) PutStatic(segment string, idx uint16, data uint8) error {
	switch segment {
	case "Driver":
		if int(idx) >= len(s.driverRAM) {
			return fmt.Errorf("cdf: Driver segment index out of range (%d)", idx)
		}
		s.driverRAM[idx] = data
	case "Data":
		if int(idx) >= len(s.dataRAM) {
			return fmt.Errorf("cdf: Data segment index out of range (%d)", idx)
		}
		s.dataRAM[idx] = data
	default:
		return fmt.Errorf("cdf: unknown static segment %q", segment)
	}
	return nil
}
