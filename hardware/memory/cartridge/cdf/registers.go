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
	"strconv"
	"strings"

	"github.com/go2600/cdfcore/hardware/memory/bus"
)

// registers is a snapshot of the cartridge's non-addressable state, for a
// debugger's register window. It implements bus.CartRegisters.
type registers struct {
	Bank               int
	Mode               uint8
	LDAOperandAddr     uint16
	JMPOperandAddr     uint16
	FastJumpActive     uint8
	MusicFrequencies   [3]uint32
	MusicCounters      [3]uint32
	MusicWaveformSize  [3]uint8
}

func (r registers) String() string {
	return fmt.Sprintf("bank: %d  mode: %#02x  lda: %#04x  jmp: %#04x (%d)  voices: %v/%v/%v",
		r.Bank, r.Mode, r.LDAOperandAddr, r.JMPOperandAddr, r.FastJumpActive,
		r.MusicFrequencies, r.MusicCounters, r.MusicWaveformSize)
}

// GetRegisters implements bus.CartDebugBus.
func (c *Cartridge) GetRegisters() bus.CartRegisters {
	s := c.state.snapshot()
	return registers{
		Bank:              s.bank,
		Mode:              s.mode,
		LDAOperandAddr:    s.ldaOperandAddr,
		JMPOperandAddr:    s.jmpOperandAddr,
		FastJumpActive:    s.fastJumpActive,
		MusicFrequencies:  s.musicFrequencies,
		MusicCounters:     s.musicCounters,
		MusicWaveformSize: s.musicWaveformSize,
	}
}

// PutRegister implements bus.CartDebugBus. The register argument follows
// the teacher's "register::index::field" convention: a bare name for a
// scalar register ("bank", "mode"), or "voice::N" for one of the three
// music voices addressing either its frequency, counter, or waveform
// size via a trailing "::field" (default "frequency").
//
// PutRegister panics on a malformed register string - the debugger is
// expected to only ever send strings this cartridge itself offered.
func (c *Cartridge) PutRegister(register string, data string) {
	parts := strings.Split(register, "::")

	switch parts[0] {
	case "bank":
		v, err := strconv.Atoi(data)
		if err != nil || v < 0 || v >= bankCount {
			panic(fmt.Sprintf("cdf: invalid bank register value %q", data))
		}
		c.bankswitch(v)
	case "mode":
		v, err := strconv.ParseUint(data, 0, 8)
		if err != nil {
			panic(fmt.Sprintf("cdf: invalid mode register value %q", data))
		}
		c.state.mode = uint8(v)
	case "voice":
		if len(parts) < 2 {
			panic(fmt.Sprintf("cdf: malformed voice register %q", register))
		}
		idx, err := strconv.Atoi(parts[1])
		if err != nil || idx < 0 || idx > 2 {
			panic(fmt.Sprintf("cdf: invalid voice index in %q", register))
		}

		field := "frequency"
		if len(parts) > 2 {
			field = parts[2]
		}

		v, err := strconv.ParseUint(data, 0, 32)
		if err != nil {
			panic(fmt.Sprintf("cdf: invalid voice register value %q", data))
		}

		switch field {
		case "frequency":
			c.state.musicFrequencies[idx] = uint32(v)
		case "counter":
			c.state.musicCounters[idx] = uint32(v)
		case "size":
			c.state.musicWaveformSize[idx] = uint8(v)
		default:
			panic(fmt.Sprintf("cdf: unknown voice field %q", field))
		}
	default:
		panic(fmt.Sprintf("cdf: unknown register %q", register))
	}
}
