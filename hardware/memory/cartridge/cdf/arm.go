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
	"github.com/go2600/cdfcore/curated"
	"github.com/go2600/cdfcore/logger"
)

// ConsoleTiming identifies the host's broadcast standard, which the ARM
// interpreter needs in order to pick the right cycle budget per scanline.
// The cartridge only relays this value; it has no opinion of its own.
type ConsoleTiming int

// Thumb is the opaque ARM Thumb interpreter the cartridge drives through
// CALLFN. This repository ships no implementation - a host supplies one
// via ThumbFactory at NewCartridge time (SPEC_FULL.md §6).
type Thumb interface {
	Run(cycles int32) error
	SetConsoleTiming(timing ConsoleTiming)
}

// ThumbMemory is the shared-memory view the cartridge hands the
// interpreter: the 32 KiB ROM image and 8 KiB cartridge RAM, addressed as
// the ARM program itself addresses them.
type ThumbMemory interface {
	MapAddress(addr uint32, write bool) (*[]byte, uint32)
	ResetVectors() (sp, pc, nextPC uint32)
}

// ThumbCallback is the four-function ABI the interpreter calls back into
// (SPEC_FULL.md §4.F). *Cartridge implements it directly.
type ThumbCallback interface {
	SetNote(voice int, freq uint32)
	ResetWave(voice int)
	GetWavePtr(voice int) uint32
	SetWaveSize(voice int, size uint8)
}

// ThumbFactory constructs a Thumb interpreter bound to the given memory
// and callback target. A host that wants ARM bridge behavior supplies one
// to NewCartridge; a host that doesn't leaves it nil and CALLFN becomes a
// no-op (matching the reference's tolerance for ROMs with no ARM content).
type ThumbFactory func(mem ThumbMemory, callback ThumbCallback) (Thumb, error)

// callfn dispatches the CALLFN hotspot (SPEC_FULL.md §4.F). value 254 and
// 255 both run the interpreter for the host cycles elapsed since the
// bridge's last invocation; every other value is a no-op.
func (c *Cartridge) callfn(value uint8) {
	if value != 254 && value != 255 {
		return
	}
	if c.thumb == nil {
		return
	}

	delta := c.hostCycles() - c.state.armCycles
	c.state.armCycles = c.hostCycles()

	c.reentrant.Enter()
	defer c.reentrant.Leave()

	if err := c.thumb.Run(int32(delta)); err != nil {
		fault := curated.Errorf(ARMFault, err)
		if c.options.TrapFatal {
			c.lastFault = fault
		}
		logger.Log(autodetectPermission{cart: c}, "CDF", fault.Error())
	}
}

// autodetectPermission withholds ARM-fault logging while the host is
// still probing whether a ROM image is a CDF cartridge at all
// (SPEC_FULL.md §4.F) - a ROM that isn't CDF will routinely make the
// bridge fault, and that's expected noise during autodetection, not
// something worth a log entry.
type autodetectPermission struct {
	cart *Cartridge
}

func (p autodetectPermission) AllowLogging() bool {
	return !p.cart.autodetect
}

// LastFault returns the most recently trapped ARM fault, when
// Options.TrapFatal is set, for a debugger to surface to the user. It
// returns nil otherwise, or if no fault has occurred.
func (c *Cartridge) LastFault() error {
	return c.lastFault
}

// The four ARM callbacks. Voice index is trusted to be 0..2, per
// SPEC_FULL.md §4.F.

// SetNote implements ThumbCallback: the ARM program sets voice v's
// per-tick phase increment.
func (c *Cartridge) SetNote(voice int, freq uint32) {
	c.state.musicFrequencies[voice] = freq
}

// ResetWave implements ThumbCallback: the ARM program resets voice v's
// phase accumulator to zero.
func (c *Cartridge) ResetWave(voice int) {
	c.state.musicCounters[voice] = 0
}

// GetWavePtr implements ThumbCallback: the ARM program reads voice v's
// current phase accumulator.
func (c *Cartridge) GetWavePtr(voice int) uint32 {
	return c.state.musicCounters[voice]
}

// SetWaveSize implements ThumbCallback: the ARM program sets voice v's
// waveform index shift.
func (c *Cartridge) SetWaveSize(voice int, size uint8) {
	c.state.musicWaveformSize[voice] = size
}

// MapAddress implements ThumbMemory, delegating to the cartridge's RAM/
// ROM backing store.
func (c *Cartridge) MapAddress(addr uint32, write bool) (*[]byte, uint32) {
	return c.static.mapAddress(addr, write)
}

// ResetVectors implements ThumbMemory: the stack pointer starts at the
// top of cartridge RAM, and the program counter starts at the beginning
// of the embedded ARM/C code, immediately after the driver.
func (c *Cartridge) ResetVectors() (sp, pc, nextPC uint32) {
	return stackOriginRAM, customOriginROM, customOriginROM + 2
}
