// Package memorymap defines the address-space constants for the 4 KiB
// cartridge window. Decoding the rest of the host's address space (RAM,
// TIA, RIOT) is the host CPU emulator's responsibility; this package only
// names the slice of it a cartridge occupies.
package memorymap
