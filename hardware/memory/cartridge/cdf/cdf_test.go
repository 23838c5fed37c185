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
	"testing"

	"github.com/go2600/cdfcore/curated"
)

// newTestImage builds a minimal well-formed CDF image: driverSize +
// customSize + bankCount*bankSize bytes, each bank tagged with its own
// index in byte 0 and at offset 0x0ff6 so tests can tell which bank a read
// came from.
func newTestImage() []byte {
	data := make([]byte, driverSize+customSize+bankCount*bankSize)
	for b := 0; b < bankCount; b++ {
		off := driverSize + customSize + b*bankSize
		data[off] = byte(b)
		data[off+0x0ff6] = byte(b)
	}
	return data
}

func newTestCartridge(t *testing.T) *Cartridge {
	t.Helper()
	c, err := NewCartridge("test", newTestImage(), Options{})
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	c.Install()
	return c
}

func TestNewCartridgeRejectsBadImageSize(t *testing.T) {
	_, err := NewCartridge("test", make([]byte, 100), Options{})
	if err == nil {
		t.Fatal("expected an error for a too-small image")
	}
}

// S1 - Simple bank switch.
func TestBankSwitch(t *testing.T) {
	c := newTestCartridge(t)

	if c.GetBank() != bankCount-1 {
		t.Fatalf("expected startup bank %d, got %d", bankCount-1, c.GetBank())
	}

	v, err := c.Read(0x1ff6, false)
	if err != nil {
		t.Fatal(err)
	}
	if v != byte(bankCount-1) {
		t.Fatalf("expected byte from old bank %d, got %d", bankCount-1, v)
	}
	if c.GetBank() != 1 {
		t.Fatalf("expected bank 1 after hotspot 0x1ff6, got %d", c.GetBank())
	}
}

func TestBankUnchangedWithoutHotspot(t *testing.T) {
	c := newTestCartridge(t)
	before := c.GetBank()

	for a := uint16(0x1000); a < 0x1ff5; a++ {
		if _, err := c.Read(a, false); err != nil {
			t.Fatal(err)
		}
	}

	if c.GetBank() != before {
		t.Fatalf("bank changed from %d to %d without a hotspot access", before, c.GetBank())
	}
}

// S2 - Fast-fetch LDA# of a data stream.
func TestFastFetchLDAStream(t *testing.T) {
	c := newTestCartridge(t)
	c.state.mode = 0x00

	bank := c.static.banksROM[c.state.bank]
	bank[0x0100] = ldaImmediate
	bank[0x0101] = 0x05

	c.static.setPtr(5, 0x00000000)
	c.static.putDriverRAMWord(uint16(incrementBase+4*5), 0x00000001)
	c.static.dataRAM[0] = 0x7a

	v1, err := c.Read(0x1100, false)
	if err != nil {
		t.Fatal(err)
	}
	if v1 != ldaImmediate {
		t.Fatalf("expected LDA# opcode 0x%02x, got 0x%02x", ldaImmediate, v1)
	}

	v2, err := c.Read(0x1101, false)
	if err != nil {
		t.Fatal(err)
	}
	if v2 != 0x7a {
		t.Fatalf("expected stream byte 0x7a, got 0x%02x", v2)
	}

	if got := c.static.getPtr(5); got != 0x00001000 {
		t.Fatalf("expected stream 5 pointer to advance to 0x1000, got 0x%08x", got)
	}
}

// S3 - Fast-jump.
func TestFastJump(t *testing.T) {
	c := newTestCartridge(t)
	c.state.mode = 0x00

	bank := c.static.banksROM[c.state.bank]
	bank[0x0200] = jmpAbsolute
	bank[0x0201] = 0x00
	bank[0x0202] = 0x00

	c.static.setPtr(jumpStream, 0)
	c.static.dataRAM[0] = 0xab
	c.static.dataRAM[1] = 0xcd

	v0, _ := c.Read(0x1200, false)
	v1, _ := c.Read(0x1201, false)
	v2, _ := c.Read(0x1202, false)

	if v0 != jmpAbsolute || v1 != 0xab || v2 != 0xcd {
		t.Fatalf("expected 0x4c 0xab 0xcd, got 0x%02x 0x%02x 0x%02x", v0, v1, v2)
	}
	if c.state.fastJumpActive != 0 {
		t.Fatalf("expected fast-jump disarmed after two intercepts, got active=%d", c.state.fastJumpActive)
	}
}

// S4 - Three-voice waveform sample.
func TestAdditiveSample(t *testing.T) {
	c := newTestCartridge(t)
	c.state.mode = 0xf0 // fast-fetch on, digital audio off

	c.state.musicFrequencies = [3]uint32{1000, 0, 0}
	c.state.musicWaveformSize = [3]uint8{27, 27, 27}

	// voice 0's waveform table entry points at the start of display RAM.
	c.static.putDriverRAMWord(uint16(musicBase+4), dataOriginRAM)
	c.static.dataRAM[0] = 0x10
	c.static.dataRAM[1] = 0x20

	c.cycles = 1193192

	got := c.sample()

	// after one second (1193192 host cycles) the 20kHz oscillator has
	// ticked ~20000 times, so voice 0's counter is pinned to 1000*20000;
	// computed independently of c.state.musicCounters[0] so the
	// assertion actually exercises updateAudio's rate rather than just
	// echoing whatever it produced.
	const wantCounter0 = 1000 * 20000
	if c.state.musicCounters[0] != wantCounter0 {
		t.Fatalf("expected voice 0 counter %d after one second, got %d", wantCounter0, c.state.musicCounters[0])
	}

	wf0 := c.static.getWaveform(0)
	wantIdx := wf0 + uint16(wantCounter0>>27)
	want := c.static.dataRAM[wantIdx&0x0fff] + c.static.dataRAM[c.static.getWaveform(1)] + c.static.dataRAM[c.static.getWaveform(2)]

	if got != want {
		t.Fatalf("expected additive sample 0x%02x, got 0x%02x", want, got)
	}
}

// S5 - DSPTR assembly.
func TestDSPTRAssembly(t *testing.T) {
	c := newTestCartridge(t)

	c.static.setPtr(commStream, 0)
	for _, b := range []uint8{0x12, 0x34, 0x56, 0x78} {
		if err := c.Write(0x1ff1, b, false, false); err != nil {
			t.Fatal(err)
		}
	}

	// each write left-shifts the existing pointer by 8, masks to the top
	// nibble, and ORs in val<<20 - reproduced here byte by byte rather
	// than as a single closed-form expression, matching how the hotspot
	// itself builds the pointer (SPEC_FULL.md §8, scenario S5).
	var want uint32
	for _, b := range []uint8{0x12, 0x34, 0x56, 0x78} {
		want = (want << 8) & 0xf0000000
		want |= uint32(b) << fetcherShift
	}

	got := c.static.getPtr(commStream)
	if got != want {
		t.Fatalf("expected pointer 0x%08x, got 0x%08x", want, got)
	}
}

// S6 - Save/load round-trip.
func TestSaveLoadRoundTrip(t *testing.T) {
	c := newTestCartridge(t)
	c.state.mode = 0x00

	bank := c.static.banksROM[c.state.bank]
	bank[0x0100] = ldaImmediate
	bank[0x0101] = 0x05
	c.static.setPtr(5, 0)
	c.static.putDriverRAMWord(uint16(incrementBase+4*5), 1)
	c.static.dataRAM[0] = 0x7a
	_, _ = c.Read(0x1100, false)
	_, _ = c.Read(0x1101, false)

	save1 := c.Save()

	other, err := NewCartridge("test", newTestImage(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := other.Load(save1); err != nil {
		t.Fatalf("Load: %v", err)
	}

	save2 := other.Save()
	if !bytes.Equal(save1, save2) {
		t.Fatal("save -> load -> save did not round-trip byte-identically")
	}
}

func TestLoadRejectsTruncatedStream(t *testing.T) {
	c := newTestCartridge(t)

	if err := c.Load([]byte{0, 0}); err == nil {
		t.Fatal("expected a malformed-save error for a truncated stream")
	}
	if !curated.Is(c.Load([]byte{0, 0}), MalformedSave) {
		t.Fatal("expected curated.Is to recognize the malformed-save error")
	}
}

func TestResetRestoresPowerOnState(t *testing.T) {
	c := newTestCartridge(t)
	c.state.mode = 0x00
	c.state.musicWaveformSize = [3]uint8{1, 1, 1}
	c.static.dataRAM[0] = 0xff

	c.Reset(nil)

	if c.state.mode != modeInitial {
		t.Fatalf("expected mode 0x%02x after reset, got 0x%02x", modeInitial, c.state.mode)
	}
	if c.GetBank() != bankCount-1 {
		t.Fatalf("expected bank %d after reset, got %d", bankCount-1, c.GetBank())
	}
	for i, s := range c.state.musicWaveformSize {
		if s != 27 {
			t.Fatalf("expected waveform size 27 for voice %d, got %d", i, s)
		}
	}
	if c.static.dataRAM[0] != 0 {
		t.Fatalf("expected display RAM cleared after reset, got 0x%02x", c.static.dataRAM[0])
	}
}

func TestModeToggleIsIdempotent(t *testing.T) {
	c := newTestCartridge(t)
	if err := c.Write(0x1ff2, 0x3c, false, false); err != nil {
		t.Fatal(err)
	}
	if c.state.mode != 0x3c {
		t.Fatalf("expected mode 0x3c, got 0x%02x", c.state.mode)
	}
}

func TestPokeReachesHotspotDispatcher(t *testing.T) {
	c := newTestCartridge(t)
	if err := c.Poke(0x1ff2, 0x3c); err != nil {
		t.Fatal(err)
	}
	if c.state.mode != 0x3c {
		t.Fatalf("expected Poke to reach SETMODE, got mode 0x%02x", c.state.mode)
	}
}

func TestPatchRefusesLowWindow(t *testing.T) {
	c := newTestCartridge(t)
	if c.Patch(0x1000, 0xff) {
		t.Fatal("expected Patch to refuse the low 64 bytes of the window")
	}
	if !c.Patch(0x1040, 0xff) {
		t.Fatal("expected Patch to accept an address at the low window's edge")
	}
}
