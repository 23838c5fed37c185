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

// Package cdf implements the Harmony/CDF cartridge format: seven 4 KiB
// bank-switched ROM windows, a fast-fetch instruction-rewriting scheme, a
// set of fixed-point data streams feeding 6 KiB of display RAM, a
// three-voice audio oscillator, and a bridge to an externally supplied ARM
// Thumb interpreter that runs user code against the cartridge's 8 KiB of
// internal RAM.
//
// The cartridge is driven entirely by the host CPU emulator's per-
// instruction loop through the Read/Write methods (the bus.HostBus
// contract); there is no concurrency inside the package beyond the
// reentrant ARM callback path described in Cartridge's doc comment.
package cdf
