// Package memory defines the basic interfaces for working
// with a 6502 family memory map. Since each implementation
// that is emulated has specific mappings (including shadowed
// regions) this is defined as an interface.
package memory

import (
	"fmt"
	"io"
)

// Bank is the bus the CPU drives. Every logical access is a call; the
// CPU never caches values.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM addresses this is
	// simply a no-op without any error.
	Write(addr uint16, val uint8)
}

// RAM implements a flat R/W bank. If this is smaller than 64k (uint16 max)
// aliasing will occur on Read/Write since addresses are masked to fit.
type RAM struct {
	ram []uint8
}

// NewRAM creates a R/W RAM bank of the given size. Size must be a power
// of 2 and no bigger than 64k.
func NewRAM(size int) (*RAM, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	return &RAM{ram: make([]uint8, size)}, nil
}

// Read implements the interface for Bank. Address is masked to fit.
func (r *RAM) Read(addr uint16) uint8 {
	return r.ram[addr&uint16(len(r.ram)-1)]
}

// Write implements the interface for Bank. Address is masked to fit.
func (r *RAM) Write(addr uint16, val uint8) {
	r.ram[addr&uint16(len(r.ram)-1)] = val
}

const romBase = uint16(0x8000)

// Map is the standard compy memory layout: 32k of RAM from 0x0000
// followed by 32k of ROM at 0x8000. Writes into the ROM half are ignored.
type Map struct {
	ram [0x8000]uint8
	rom [0x8000]uint8
}

// NewMap returns a zeroed Map.
func NewMap() *Map {
	return &Map{}
}

// Read implements the interface for Bank.
func (m *Map) Read(addr uint16) uint8 {
	if addr < romBase {
		return m.ram[addr]
	}
	return m.rom[addr-romBase]
}

// Write implements the interface for Bank. ROM addresses are silently
// ignored.
func (m *Map) Write(addr uint16, val uint8) {
	if addr < romBase {
		m.ram[addr] = val
	}
}

// LoadImage fills the address space from a raw binary image starting at
// address 0. Anything past the RAM half lands in ROM. Short images are
// fine and leave the remainder untouched. Returns the number of bytes
// loaded; images bigger than 64k are an error.
func (m *Map) LoadImage(rd io.Reader) (int, error) {
	buf, err := io.ReadAll(rd)
	if err != nil {
		return 0, fmt.Errorf("reading image: %v", err)
	}
	if len(buf) > 1<<16 {
		return 0, fmt.Errorf("image is %d bytes which is bigger than 64k", len(buf))
	}
	n := copy(m.ram[:], buf)
	if n < len(buf) {
		n += copy(m.rom[:], buf[n:])
	}
	return n, nil
}
