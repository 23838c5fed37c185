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

// Package random should be used in preference to the math/rand package
// whenever a random number is required inside the emulation.
//
// Real cartridge RAM powers up in an indeterminate state. The CDF core uses
// a *random.Random, when one is supplied to Reset, to fill display RAM with
// that indeterminate state rather than zeroing it, matching real hardware.
//
// If the same sequence of random numbers is required every time then set
// ZeroSeed to true. This is useful for testing purposes.
package random
