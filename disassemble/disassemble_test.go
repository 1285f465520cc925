package disassemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8       { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, val uint8) { r.addr[addr] = val }

func TestStep(t *testing.T) {
	tests := []struct {
		name  string
		prog  []uint8
		want  string
		count int
	}{
		{"immediate", []uint8{0xA9, 0x42}, "LDA #42", 2},
		{"zero page", []uint8{0xA5, 0x10}, "LDA 10", 2},
		{"zero page x", []uint8{0xB5, 0x10}, "LDA 10,X", 2},
		{"zero page y", []uint8{0xB6, 0x10}, "LDX 10,Y", 2},
		{"absolute", []uint8{0x8D, 0x34, 0x12}, "STA 1234", 3},
		{"absolute x", []uint8{0xBD, 0x34, 0x12}, "LDA 1234,X", 3},
		{"absolute y", []uint8{0xB9, 0x34, 0x12}, "LDA 1234,Y", 3},
		{"indirect", []uint8{0x6C, 0x34, 0x12}, "JMP (1234)", 3},
		{"indirect x", []uint8{0xA1, 0x10}, "LDA (10,X)", 2},
		{"indirect y", []uint8{0xB1, 0x10}, "LDA (10),Y", 2},
		{"implied", []uint8{0xEA}, "NOP", 1},
		{"illegal", []uint8{0x02}, "???", 1},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			r := &flatMemory{}
			copy(r.addr[0x1000:], test.prog)
			out, count := Step(0x1000, r)
			assert.Contains(t, out, test.want)
			assert.Equal(t, test.count, count)
		})
	}
}

func TestStepRelativeTarget(t *testing.T) {
	r := &flatMemory{}
	// BNE +4 at 0x1000 resolves to 0x1006.
	r.addr[0x1000] = 0xD0
	r.addr[0x1001] = 0x04
	out, count := Step(0x1000, r)
	assert.Contains(t, out, "BNE 04 (1006)")
	assert.Equal(t, 2, count)

	// Backward branch sign extends.
	r.addr[0x1002] = 0xD0
	r.addr[0x1003] = 0xFB
	out, _ = Step(0x1002, r)
	assert.Contains(t, out, "BNE FB (0FFF)")
}

func TestStepAddressPrefix(t *testing.T) {
	r := &flatMemory{}
	r.addr[0x1000] = 0xA9
	r.addr[0x1001] = 0x42
	out, _ := Step(0x1000, r)
	assert.True(t, strings.HasPrefix(out, "1000 A9 42"), out)
}
