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

import "github.com/go2600/cdfcore/hardware/memory/memorymap"

// Read implements bus.HostBus. It is the fast-fetch decoder: the
// priority-ordered decision tree in SPEC_FULL.md §4.D, run once per host
// peek at an address in the cartridge window. passive marks a debugger
// peek that must not mutate any latch or perform a bank switch.
func (c *Cartridge) Read(addr uint16, passive bool) (uint8, error) {
	a := addr & memorymap.CartridgeBits
	rom := c.static.banksROM[c.state.bank][a]

	if passive || c.bankLocked {
		return rom, nil
	}

	s := c.state

	// fast-jump continuation
	if s.fastJumpActive > 0 && a == s.jmpOperandAddr {
		s.fastJumpActive--
		s.jmpOperandAddr++
		return c.static.advanceStream(jumpStream), nil
	}

	// fast-jump trigger: JMP $0000
	if s.fastFetchEnabled() && rom == jmpAbsolute &&
		c.static.banksROM[c.state.bank][(a+1)&memorymap.CartridgeBits] == 0 &&
		c.static.banksROM[c.state.bank][(a+2)&memorymap.CartridgeBits] == 0 {
		s.fastJumpActive = 2
		s.jmpOperandAddr = a + 1
		return rom, nil
	}
	s.jmpOperandAddr = 0

	// LDA# operand capture
	if s.fastFetchEnabled() && a == s.ldaOperandAddr && rom <= amplitudeStream {
		s.ldaOperandAddr = 0
		if rom == amplitudeStream {
			return c.sample(), nil
		}
		return c.static.readStream(int(rom)), nil
	}
	s.ldaOperandAddr = 0

	// bank-switch hotspots - checked on both peek and poke, even mid
	// fast-fetch interception of a preceding LDA# (SPEC_FULL.md §9, open
	// question: the reference does not move this above step 5).
	if a >= hotspotBank0 && a <= hotspotBank6 {
		c.bankswitch(int(a - hotspotBank0))
		return rom, nil
	}

	// LDA# opcode latch
	if s.fastFetchEnabled() && rom == ldaImmediate {
		s.ldaOperandAddr = a + 1
	}

	return rom, nil
}

// Peek implements bus.DebuggerBus: a side-effect-free read, equivalent to
// a passive Read.
func (c *Cartridge) Peek(address uint16) (uint8, error) {
	return c.Read(address, true)
}

// Poke implements bus.DebuggerBus: a forced write that reaches the
// hotspot dispatcher the same way a live CPU store would, but is flagged
// as a debugger poke rather than a passive read's write-side counterpart.
func (c *Cartridge) Poke(address uint16, value uint8) error {
	return c.Write(address, value, false, true)
}

// Write implements bus.HostBus: a live host store dispatched through the
// hotspot table (SPEC_FULL.md §4.E). passive marks a write that must not
// reach the hotspot dispatcher at all - the write-side counterpart of a
// passive Read. poke is unused by the hotspot table itself (every CDF
// hotspot accepts both a live store and a debugger poke identically) but
// is threaded through to satisfy bus.HostBus. Write always reports no bus
// error - the cartridge is physically incapable of NAK-ing a write.
func (c *Cartridge) Write(addr uint16, data uint8, passive bool, poke bool) error {
	a := addr & memorymap.CartridgeBits

	if passive {
		return nil
	}

	switch a {
	case hotspotDSWRITE:
		c.static.writeStream(commStream, data)
	case hotspotDSPTR:
		c.static.assemblePointer(commStream, data)
	case hotspotSETMODE:
		c.state.mode = data
	case hotspotCALLFN:
		c.callfn(data)
	default:
		if a >= hotspotBank0 && a <= hotspotBank6 {
			c.bankswitch(int(a - hotspotBank0))
		}
	}

	return nil
}
