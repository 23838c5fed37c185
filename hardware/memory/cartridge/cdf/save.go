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
	"bytes"
	"encoding/binary"
	"io"

	"github.com/go2600/cdfcore/curated"
)

// Save serializes every field named in SPEC_FULL.md §4.H, in order: the
// cartridge's ID tag, then the bank/mode/latch registers, then all 8 KiB
// of cartridge RAM, then the three audio voices, then the cycle
// baselines. Everything is little-endian.
func (c *Cartridge) Save() []byte {
	var buf bytes.Buffer

	writeString(&buf, c.ID())

	binary.Write(&buf, binary.LittleEndian, uint16(c.state.bank))
	binary.Write(&buf, binary.LittleEndian, c.state.mode)
	binary.Write(&buf, binary.LittleEndian, c.state.fastJumpActive)
	binary.Write(&buf, binary.LittleEndian, c.state.ldaOperandAddr)
	binary.Write(&buf, binary.LittleEndian, c.state.jmpOperandAddr)

	buf.Write(c.static.driverRAM)
	buf.Write(c.static.dataRAM)

	for _, v := range c.state.musicCounters {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	for _, v := range c.state.musicFrequencies {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	for _, v := range c.state.musicWaveformSize {
		binary.Write(&buf, binary.LittleEndian, v)
	}

	binary.Write(&buf, binary.LittleEndian, int32(c.state.audioCycles))
	binary.Write(&buf, binary.LittleEndian, int32(c.state.fractionalClocks*1e8))
	binary.Write(&buf, binary.LittleEndian, int32(c.state.armCycles))

	return buf.Bytes()
}

// Load deserializes a byte stream produced by Save. The cartridge's
// state is left unchanged, and a MalformedSave error is returned, if the
// leading ID tag doesn't match or the stream is truncated.
func (c *Cartridge) Load(data []byte) error {
	r := bytes.NewReader(data)

	id, err := readString(r)
	if err != nil || id != c.ID() {
		return curated.Errorf(MalformedSave)
	}

	var s state

	var bank uint16
	if err := binary.Read(r, binary.LittleEndian, &bank); err != nil {
		return curated.Errorf(MalformedSave)
	}
	s.bank = int(bank)

	if err := binary.Read(r, binary.LittleEndian, &s.mode); err != nil {
		return curated.Errorf(MalformedSave)
	}
	if err := binary.Read(r, binary.LittleEndian, &s.fastJumpActive); err != nil {
		return curated.Errorf(MalformedSave)
	}
	if err := binary.Read(r, binary.LittleEndian, &s.ldaOperandAddr); err != nil {
		return curated.Errorf(MalformedSave)
	}
	if err := binary.Read(r, binary.LittleEndian, &s.jmpOperandAddr); err != nil {
		return curated.Errorf(MalformedSave)
	}

	driverRAM := make([]byte, driverRAMSize)
	if _, err := io.ReadFull(r, driverRAM); err != nil {
		return curated.Errorf(MalformedSave)
	}
	dataRAM := make([]byte, dataRAMSize)
	if _, err := io.ReadFull(r, dataRAM); err != nil {
		return curated.Errorf(MalformedSave)
	}

	for i := range s.musicCounters {
		if err := binary.Read(r, binary.LittleEndian, &s.musicCounters[i]); err != nil {
			return curated.Errorf(MalformedSave)
		}
	}
	for i := range s.musicFrequencies {
		if err := binary.Read(r, binary.LittleEndian, &s.musicFrequencies[i]); err != nil {
			return curated.Errorf(MalformedSave)
		}
	}
	for i := range s.musicWaveformSize {
		if err := binary.Read(r, binary.LittleEndian, &s.musicWaveformSize[i]); err != nil {
			return curated.Errorf(MalformedSave)
		}
	}

	var audioCycles, fractional, armCycles int32
	if err := binary.Read(r, binary.LittleEndian, &audioCycles); err != nil {
		return curated.Errorf(MalformedSave)
	}
	if err := binary.Read(r, binary.LittleEndian, &fractional); err != nil {
		return curated.Errorf(MalformedSave)
	}
	if err := binary.Read(r, binary.LittleEndian, &armCycles); err != nil {
		return curated.Errorf(MalformedSave)
	}
	s.audioCycles = int64(audioCycles)
	s.fractionalClocks = float64(fractional) / 1e8
	s.armCycles = int64(armCycles)

	*c.state = s
	copy(c.static.driverRAM, driverRAM)
	copy(c.static.dataRAM, dataRAM)
	c.bankswitch(s.bank)

	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.LittleEndian, uint16(len(s)))
	buf.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
