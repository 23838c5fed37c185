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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package memorymap

// OriginCart and MemtopCart bound the 4 KiB window a cartridge occupies in
// the host's primary address space.
const (
	OriginCart = uint16(0x1000)
	MemtopCart = uint16(0x1fff)
)

// Cartridge memory is mirrored in a number of places in the host's address
// space. The most useful mirror is the Fxxx mirror, which assembly
// programmers use by convention. Be extra careful when looping with
// MemtopCartFxxxMirror: it sits at the very edge of uint16 and overflows on
// increment.
const (
	OriginCartFxxxMirror = uint16(0xf000)
	MemtopCartFxxxMirror = uint16(0xffff)
)

// Memtop is the topmost address of the cartridge window.
const Memtop = MemtopCart

// CartridgeBits identifies the bits in an address that are relevant to the
// cartridge address, discounting the bits that determine which mirror was
// used to reach it. For example:
//
//	0x1123 & CartridgeBits == 0xf123 & CartridgeBits
//
// Equivalently, it is an effective way to index an array representing the
// cartridge window:
//
//	addr := uint16(0xf000)
//	mem[addr&CartridgeBits] = 0xff
const CartridgeBits = OriginCart ^ MemtopCart
