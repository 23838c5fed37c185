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

// Sizes, in bytes, of the fixed regions of a CDF ROM image and of
// cartridge RAM. The driver and custom-code sizes are fixed; the rest of
// the image is program ROM split into bankSize chunks.
const (
	driverSize = 2048 // 2K driver template, copied into RAM at reset
	customSize = 2048 // 2K embedded ARM/C code, executed by the Thumb interpreter
	bankSize   = 4096 // one 4K program ROM bank
	bankCount  = 7    // banks 0..6

	driverRAMSize = driverSize            // 2K
	dataRAMSize   = bankSize + bankSize/2 // 6K display RAM
)

// Byte offsets, within driver RAM, of the three fixed-layout tables the
// CDF driver shares with the 6507 program and the ARM code.
const (
	fetcherBase   = 0x06e0 // DSxPTR: 32 x 4-byte stream pointers
	incrementBase = 0x0768 // DSxINC: 32 x 4-byte stream increments
	musicBase     = 0x07f0 // WAVEFORM: 4 x 4-byte words (sample base + 3 waveform bases)
)

// Reserved data-stream indices with specialized fast-fetch semantics.
const (
	commStream      = 0x20 // COMMSTREAM, written by DSWRITE/DSPTR
	jumpStream      = 0x21 // JUMPSTREAM, serviced by fast-jump continuations
	amplitudeStream = 0x22 // AMPLITUDE, the audio-sample register
)

// fetcherShift is applied to a 32-bit stream pointer to recover the byte
// index into the first 4K of display RAM; incrementShift is applied to a
// stream's increment register before it is added to the pointer on each
// read (SPEC_FULL.md §4.A).
const (
	fetcherShift   = 20
	incrementShift = 12
)

// streamAdvance is the fixed per-byte step applied to JUMPSTREAM and
// COMMSTREAM pointers by the fast-jump continuation and DSWRITE - both
// advance the pointer's byte index by exactly one, independent of the
// stream's own increment register.
const streamAdvance = 1 << fetcherShift

// 6507-side opcodes the fast-fetch decoder watches for.
const (
	ldaImmediate = 0xa9
	jmpAbsolute  = 0x4c
)

// Hotspot addresses within the 12-bit cartridge window (addr & 0x0fff).
const (
	hotspotDSWRITE = 0x0ff0
	hotspotDSPTR   = 0x0ff1
	hotspotSETMODE = 0x0ff2
	hotspotCALLFN  = 0x0ff3
	hotspotBank0   = 0x0ff5
	hotspotBank6   = 0x0ffb
)

// The low 64 bytes of the cartridge window always route to the cartridge's
// peek/poke path, regardless of bank (SPEC_FULL.md §6, §4.G install).
const lowWindowSize = 0x0040

// mode bit masks (SPEC_FULL.md §3).
const (
	modeFastFetchMask    = 0x0f // low nibble zero => fast-fetch on
	modeDigitalAudioMask = 0xf0 // high nibble zero => digital-audio on
	modeInitial          = 0xff // both off
)

// ARM-side memory map, from the perspective of the Thumb interpreter
// (teacher file: hardware/memory/cartridge/harmony/cdf/addresses.go).
const (
	driverOriginROM = 0x00000000
	driverMemtopROM = 0x000007ff

	customOriginROM = 0x00000800
	customMemtopROM = 0x00000fff

	bankedOriginROM = 0x00001000
	bankedMemtopROM = 0x00007fff

	driverOriginRAM = 0x40000000
	driverMemtopRAM = 0x400007ff

	dataOriginRAM = 0x40000800
	dataMemtopRAM = 0x40001fff

	// stack lives within the RAM copy of driver+data; there are no separate
	// ARM "variables" RAM in the CDF0 layout this package targets.
	stackOriginRAM = 0x40001ffc
)
