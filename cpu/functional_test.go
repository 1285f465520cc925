package cpu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

const testDir = "../testdata"

// quietMemory is a flat 64k bank without the access trace so long runs
// don't accumulate one.
type quietMemory struct {
	addr [65536]uint8
}

func (q *quietMemory) Read(addr uint16) uint8       { return q.addr[addr] }
func (q *quietMemory) Write(addr uint16, val uint8) { q.addr[addr] = val }

// TestFunctionality runs Klaus Dormann's 6502 functional test if the
// binary is present in testdata. The image covers the full 64k space and
// traps failures by branching to self; success parks the PC on the final
// trap at 0x3469.
// The binary comes from https://github.com/Klaus2m5/6502_65C02_functional_tests
func TestFunctionality(t *testing.T) {
	path := filepath.Join(testDir, "6502_functional_test.bin")
	image, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("no functional test binary: %v", err)
	}
	if len(image) > 65536 {
		t.Fatalf("image is %d bytes, want <= 65536", len(image))
	}

	r := &quietMemory{}
	copy(r.addr[:], image)
	c := Init(0x0400)

	const successPC = uint16(0x3469)
	// ~100M cycles is plenty; the suite completes in the low tens of
	// millions.
	for i := 0; i < 100000000; {
		prev := c.PC
		i += c.Step(r)
		if c.PC == prev {
			if c.PC != successPC {
				t.Fatalf("trapped at %.4X, want %.4X\n%s", c.PC, successPC, spew.Sdump(snapshot(c)))
			}
			return
		}
	}
	t.Fatalf("functional test did not terminate: %s", spew.Sdump(snapshot(c)))
}
