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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().UnixNano())
}

// Random is a random number generator used to seed the indeterminate state
// of cartridge RAM at reset.
type Random struct {
	// use zero seed rather than the random base seed. useful for tests
	// where random numbers must be predictable
	ZeroSeed bool

	// a fixed additional offset, e.g. derived from a cartridge instance
	// identity, that keeps parallel instances from drawing the exact same
	// sequence even when they share a process start time
	Offset int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(rnd.Offset))
	}
	return rand.New(rand.NewSource(baseSeed + rnd.Offset))
}

// Intn returns a non-negative random number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill writes a random byte into every element of dst.
func (rnd *Random) Fill(dst []byte) {
	r := rnd.rand()
	for i := range dst {
		dst[i] = byte(r.Intn(256))
	}
}
