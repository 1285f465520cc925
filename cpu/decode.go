package cpu

import "compy/memory"

// accessKind tells an addressing mode driver when the action fires and
// what bus traffic follows it.
type accessKind int

const (
	kACCESS_NONE accessKind = iota // Control procedure or pure register/flag op.
	kACCESS_RD                     // Action consumes the byte read into opr1.
	kACCESS_WR                     // Action fills opr1, driver writes it out.
	kACCESS_RMW                    // Driver reads, action transforms, driver writes raw then modified.
)

// action is the pure half of an instruction; see actions.go.
type action func(c *Chip)

// driver runs one micro-cycle of an instruction, returning true when the
// instruction completes.
type driver func(c *Chip, b memory.Bank) bool

type instruction struct {
	proc driver
	act  action
	kind accessKind
}

// optable is the fixed decode table indexed by opcode byte. Entries not
// listed are backfilled as single-cycle illegal no-ops by init below.
// Opcode matrix taken from http://obelisk.me.uk/6502/reference.html
var optable [256]instruction

// optableInit holds the fixed decode table entries; it is assigned to
// optable inside init below (rather than as optable's own initializer) to
// avoid an initialization cycle, since several of the addressing-mode
// drivers referenced here read optable back in their own bodies.
var optableInit = [256]instruction{
	0x00: {proc: brk},                                // BRK
	0x01: {proc: idx, act: ora, kind: kACCESS_RD},    // ORA (d,x)
	0x05: {proc: zpg, act: ora, kind: kACCESS_RD},    // ORA d
	0x06: {proc: zpg, act: asl, kind: kACCESS_RMW},   // ASL d
	0x08: {proc: php},                                // PHP
	0x09: {proc: imm, act: ora, kind: kACCESS_RD},    // ORA #i
	0x0A: {proc: acc, act: asl, kind: kACCESS_RMW},   // ASL
	0x0D: {proc: abl, act: ora, kind: kACCESS_RD},    // ORA a
	0x0E: {proc: abl, act: asl, kind: kACCESS_RMW},   // ASL a
	0x10: {proc: rel, act: bpl},                      // BPL *+r
	0x11: {proc: idy, act: ora, kind: kACCESS_RD},    // ORA (d),y
	0x15: {proc: zpx, act: ora, kind: kACCESS_RD},    // ORA d,x
	0x16: {proc: zpx, act: asl, kind: kACCESS_RMW},   // ASL d,x
	0x18: {proc: imp, act: clc},                      // CLC
	0x19: {proc: aby, act: ora, kind: kACCESS_RD},    // ORA a,y
	0x1D: {proc: abx, act: ora, kind: kACCESS_RD},    // ORA a,x
	0x1E: {proc: abx, act: asl, kind: kACCESS_RMW},   // ASL a,x
	0x20: {proc: jsr},                                // JSR a
	0x21: {proc: idx, act: and, kind: kACCESS_RD},    // AND (d,x)
	0x24: {proc: zpg, act: bit, kind: kACCESS_RD},    // BIT d
	0x25: {proc: zpg, act: and, kind: kACCESS_RD},    // AND d
	0x26: {proc: zpg, act: rol, kind: kACCESS_RMW},   // ROL d
	0x28: {proc: plp},                                // PLP
	0x29: {proc: imm, act: and, kind: kACCESS_RD},    // AND #i
	0x2A: {proc: acc, act: rol, kind: kACCESS_RMW},   // ROL
	0x2C: {proc: abl, act: bit, kind: kACCESS_RD},    // BIT a
	0x2D: {proc: abl, act: and, kind: kACCESS_RD},    // AND a
	0x2E: {proc: abl, act: rol, kind: kACCESS_RMW},   // ROL a
	0x30: {proc: rel, act: bmi},                      // BMI *+r
	0x31: {proc: idy, act: and, kind: kACCESS_RD},    // AND (d),y
	0x35: {proc: zpx, act: and, kind: kACCESS_RD},    // AND d,x
	0x36: {proc: zpx, act: rol, kind: kACCESS_RMW},   // ROL d,x
	0x38: {proc: imp, act: sec},                      // SEC
	0x39: {proc: aby, act: and, kind: kACCESS_RD},    // AND a,y
	0x3D: {proc: abx, act: and, kind: kACCESS_RD},    // AND a,x
	0x3E: {proc: abx, act: rol, kind: kACCESS_RMW},   // ROL a,x
	0x40: {proc: rti},                                // RTI
	0x41: {proc: idx, act: eor, kind: kACCESS_RD},    // EOR (d,x)
	0x45: {proc: zpg, act: eor, kind: kACCESS_RD},    // EOR d
	0x46: {proc: zpg, act: lsr, kind: kACCESS_RMW},   // LSR d
	0x48: {proc: pha},                                // PHA
	0x49: {proc: imm, act: eor, kind: kACCESS_RD},    // EOR #i
	0x4A: {proc: acc, act: lsr, kind: kACCESS_RMW},   // LSR
	0x4C: {proc: jmpAbs},                             // JMP a
	0x4D: {proc: abl, act: eor, kind: kACCESS_RD},    // EOR a
	0x4E: {proc: abl, act: lsr, kind: kACCESS_RMW},   // LSR a
	0x50: {proc: rel, act: bvc},                      // BVC *+r
	0x51: {proc: idy, act: eor, kind: kACCESS_RD},    // EOR (d),y
	0x55: {proc: zpx, act: eor, kind: kACCESS_RD},    // EOR d,x
	0x56: {proc: zpx, act: lsr, kind: kACCESS_RMW},   // LSR d,x
	0x58: {proc: imp, act: cli},                      // CLI
	0x59: {proc: aby, act: eor, kind: kACCESS_RD},    // EOR a,y
	0x5D: {proc: abx, act: eor, kind: kACCESS_RD},    // EOR a,x
	0x5E: {proc: abx, act: lsr, kind: kACCESS_RMW},   // LSR a,x
	0x60: {proc: rts},                                // RTS
	0x61: {proc: idx, act: adc, kind: kACCESS_RD},    // ADC (d,x)
	0x65: {proc: zpg, act: adc, kind: kACCESS_RD},    // ADC d
	0x66: {proc: zpg, act: ror, kind: kACCESS_RMW},   // ROR d
	0x68: {proc: pla},                                // PLA
	0x69: {proc: imm, act: adc, kind: kACCESS_RD},    // ADC #i
	0x6A: {proc: acc, act: ror, kind: kACCESS_RMW},   // ROR
	0x6C: {proc: jmpInd},                             // JMP (a)
	0x6D: {proc: abl, act: adc, kind: kACCESS_RD},    // ADC a
	0x6E: {proc: abl, act: ror, kind: kACCESS_RMW},   // ROR a
	0x70: {proc: rel, act: bvs},                      // BVS *+r
	0x71: {proc: idy, act: adc, kind: kACCESS_RD},    // ADC (d),y
	0x75: {proc: zpx, act: adc, kind: kACCESS_RD},    // ADC d,x
	0x76: {proc: zpx, act: ror, kind: kACCESS_RMW},   // ROR d,x
	0x78: {proc: imp, act: sei},                      // SEI
	0x79: {proc: aby, act: adc, kind: kACCESS_RD},    // ADC a,y
	0x7D: {proc: abx, act: adc, kind: kACCESS_RD},    // ADC a,x
	0x7E: {proc: abx, act: ror, kind: kACCESS_RMW},   // ROR a,x
	0x81: {proc: idx, act: sta, kind: kACCESS_WR},    // STA (d,x)
	0x84: {proc: zpg, act: sty, kind: kACCESS_WR},    // STY d
	0x85: {proc: zpg, act: sta, kind: kACCESS_WR},    // STA d
	0x86: {proc: zpg, act: stx, kind: kACCESS_WR},    // STX d
	0x88: {proc: imp, act: dey},                      // DEY
	0x8A: {proc: imp, act: txa},                      // TXA
	0x8C: {proc: abl, act: sty, kind: kACCESS_WR},    // STY a
	0x8D: {proc: abl, act: sta, kind: kACCESS_WR},    // STA a
	0x8E: {proc: abl, act: stx, kind: kACCESS_WR},    // STX a
	0x90: {proc: rel, act: bcc},                      // BCC *+r
	0x91: {proc: idy, act: sta, kind: kACCESS_WR},    // STA (d),y
	0x94: {proc: zpx, act: sty, kind: kACCESS_WR},    // STY d,x
	0x95: {proc: zpx, act: sta, kind: kACCESS_WR},    // STA d,x
	0x96: {proc: zpy, act: stx, kind: kACCESS_WR},    // STX d,y
	0x98: {proc: imp, act: tya},                      // TYA
	0x99: {proc: aby, act: sta, kind: kACCESS_WR},    // STA a,y
	0x9A: {proc: imp, act: txs},                      // TXS
	0x9D: {proc: abx, act: sta, kind: kACCESS_WR},    // STA a,x
	0xA0: {proc: imm, act: ldy, kind: kACCESS_RD},    // LDY #i
	0xA1: {proc: idx, act: lda, kind: kACCESS_RD},    // LDA (d,x)
	0xA2: {proc: imm, act: ldx, kind: kACCESS_RD},    // LDX #i
	0xA4: {proc: zpg, act: ldy, kind: kACCESS_RD},    // LDY d
	0xA5: {proc: zpg, act: lda, kind: kACCESS_RD},    // LDA d
	0xA6: {proc: zpg, act: ldx, kind: kACCESS_RD},    // LDX d
	0xA8: {proc: imp, act: tay},                      // TAY
	0xA9: {proc: imm, act: lda, kind: kACCESS_RD},    // LDA #i
	0xAA: {proc: imp, act: tax},                      // TAX
	0xAC: {proc: abl, act: ldy, kind: kACCESS_RD},    // LDY a
	0xAD: {proc: abl, act: lda, kind: kACCESS_RD},    // LDA a
	0xAE: {proc: abl, act: ldx, kind: kACCESS_RD},    // LDX a
	0xB0: {proc: rel, act: bcs},                      // BCS *+r
	0xB1: {proc: idy, act: lda, kind: kACCESS_RD},    // LDA (d),y
	0xB4: {proc: zpx, act: ldy, kind: kACCESS_RD},    // LDY d,x
	0xB5: {proc: zpx, act: lda, kind: kACCESS_RD},    // LDA d,x
	0xB6: {proc: zpy, act: ldx, kind: kACCESS_RD},    // LDX d,y
	0xB8: {proc: imp, act: clv},                      // CLV
	0xB9: {proc: aby, act: lda, kind: kACCESS_RD},    // LDA a,y
	0xBA: {proc: imp, act: tsx},                      // TSX
	0xBC: {proc: abx, act: ldy, kind: kACCESS_RD},    // LDY a,x
	0xBD: {proc: abx, act: lda, kind: kACCESS_RD},    // LDA a,x
	0xBE: {proc: aby, act: ldx, kind: kACCESS_RD},    // LDX a,y
	0xC0: {proc: imm, act: cpy, kind: kACCESS_RD},    // CPY #i
	0xC1: {proc: idx, act: cmp, kind: kACCESS_RD},    // CMP (d,x)
	0xC4: {proc: zpg, act: cpy, kind: kACCESS_RD},    // CPY d
	0xC5: {proc: zpg, act: cmp, kind: kACCESS_RD},    // CMP d
	0xC6: {proc: zpg, act: dec, kind: kACCESS_RMW},   // DEC d
	0xC8: {proc: imp, act: iny},                      // INY
	0xC9: {proc: imm, act: cmp, kind: kACCESS_RD},    // CMP #i
	0xCA: {proc: imp, act: dex},                      // DEX
	0xCC: {proc: abl, act: cpy, kind: kACCESS_RD},    // CPY a
	0xCD: {proc: abl, act: cmp, kind: kACCESS_RD},    // CMP a
	0xCE: {proc: abl, act: dec, kind: kACCESS_RMW},   // DEC a
	0xD0: {proc: rel, act: bne},                      // BNE *+r
	0xD1: {proc: idy, act: cmp, kind: kACCESS_RD},    // CMP (d),y
	0xD5: {proc: zpx, act: cmp, kind: kACCESS_RD},    // CMP d,x
	0xD6: {proc: zpx, act: dec, kind: kACCESS_RMW},   // DEC d,x
	0xD8: {proc: imp, act: cld},                      // CLD
	0xD9: {proc: aby, act: cmp, kind: kACCESS_RD},    // CMP a,y
	0xDD: {proc: abx, act: cmp, kind: kACCESS_RD},    // CMP a,x
	0xDE: {proc: abx, act: dec, kind: kACCESS_RMW},   // DEC a,x
	0xE0: {proc: imm, act: cpx, kind: kACCESS_RD},    // CPX #i
	0xE1: {proc: idx, act: sbc, kind: kACCESS_RD},    // SBC (d,x)
	0xE4: {proc: zpg, act: cpx, kind: kACCESS_RD},    // CPX d
	0xE5: {proc: zpg, act: sbc, kind: kACCESS_RD},    // SBC d
	0xE6: {proc: zpg, act: inc, kind: kACCESS_RMW},   // INC d
	0xE8: {proc: imp, act: inx},                      // INX
	0xE9: {proc: imm, act: sbc, kind: kACCESS_RD},    // SBC #i
	0xEA: {proc: imp, act: nop},                      // NOP
	0xEC: {proc: abl, act: cpx, kind: kACCESS_RD},    // CPX a
	0xED: {proc: abl, act: sbc, kind: kACCESS_RD},    // SBC a
	0xEE: {proc: abl, act: inc, kind: kACCESS_RMW},   // INC a
	0xF0: {proc: rel, act: beq},                      // BEQ *+r
	0xF1: {proc: idy, act: sbc, kind: kACCESS_RD},    // SBC (d),y
	0xF5: {proc: zpx, act: sbc, kind: kACCESS_RD},    // SBC d,x
	0xF6: {proc: zpx, act: inc, kind: kACCESS_RMW},   // INC d,x
	0xF8: {proc: imp, act: sed},                      // SED
	0xF9: {proc: aby, act: sbc, kind: kACCESS_RD},    // SBC a,y
	0xFD: {proc: abx, act: sbc, kind: kACCESS_RD},    // SBC a,x
	0xFE: {proc: abx, act: inc, kind: kACCESS_RMW},   // INC a,x
}

func init() {
	optable = optableInit
	for i := range optable {
		if optable[i].proc == nil {
			optable[i] = instruction{proc: illegal}
		}
	}
}
