package cpu

// Actions are the pure register/flag half of an instruction. They never
// touch the bus; the addressing mode driver has already parked the
// operand in c.opr1 (and writes it back afterwards for WR/RMW kinds).

// ora implements ORA - A |= opr1.
func ora(c *Chip) {
	c.A |= c.opr1
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

// and implements AND - A &= opr1.
func and(c *Chip) {
	c.A &= c.opr1
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

// eor implements EOR - A ^= opr1.
func eor(c *Chip) {
	c.A ^= c.opr1
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

// bcd2bin converts a packed BCD value of up to 3 digits to binary.
// Assumes the BCD number is valid.
func bcd2bin(val uint16) uint16 {
	return (val/0x100)*100 + ((val&0xFF)/0x10)*10 + val&0x0F
}

// bin2bcd converts a binary value below 1000 to packed BCD.
func bin2bcd(val uint16) uint16 {
	res := (val / 100) << 8
	res |= ((val % 100) / 10) << 4
	res += val % 10
	return res
}

// adcBCD implements ADC with D set, treating A and opr1 as packed BCD.
// V is left alone in decimal mode on the NMOS part.
func adcBCD(c *Chip) {
	res := bcd2bin(uint16(c.A)) + bcd2bin(uint16(c.opr1))
	if c.P&P_CARRY != 0 {
		res++
	}
	res = bin2bcd(res)

	c.carryCheck(res)
	c.A = uint8(res)
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

// adc implements ADC and sets all associated flags. For SBC binary mode
// simply ones-complement opr1 before calling.
func adc(c *Chip) {
	if c.P&P_DECIMAL != 0 {
		adcBCD(c)
		return
	}

	carry := uint16(c.P & P_CARRY)
	sum := uint16(c.A) + uint16(c.opr1) + carry

	c.carryCheck(sum)
	c.overflowCheck(c.A, c.opr1, uint8(sum))
	c.A = uint8(sum)
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

// sbcBCD implements SBC with D set. C is set iff no borrow out. V is
// left alone in decimal mode on the NMOS part.
func sbcBCD(c *Chip) {
	abin := bcd2bin(uint16(c.A))
	obin := bcd2bin(uint16(c.opr1))
	if c.P&P_CARRY == 0 {
		obin++
	}

	var res uint16
	if abin >= obin {
		res = bin2bcd(abin - obin)
		c.P |= P_CARRY
	} else {
		res = bin2bcd(100 - obin + abin)
		c.P &^= P_CARRY
	}

	c.A = uint8(res)
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

// sbc implements SBC. Binary mode is ADC of the ones complement, with C
// acting as an inverted borrow.
func sbc(c *Chip) {
	if c.P&P_DECIMAL != 0 {
		sbcBCD(c)
		return
	}

	c.opr1 = ^c.opr1
	adc(c)
}

// compare implements the logic for CMP/CPX/CPY against the given register
// and sets flags accordingly. The register itself is untouched.
func compare(c *Chip, reg uint8) {
	res := reg - c.opr1
	c.P &^= P_CARRY
	if reg >= c.opr1 {
		c.P |= P_CARRY
	}
	c.zeroCheck(res)
	c.negativeCheck(res)
}

func cmp(c *Chip) { compare(c, c.A) }
func cpx(c *Chip) { compare(c, c.X) }
func cpy(c *Chip) { compare(c, c.Y) }

// dec implements DEC on the operand latch; the driver writes it back.
func dec(c *Chip) {
	c.opr1--
	c.zeroCheck(c.opr1)
	c.negativeCheck(c.opr1)
}

// inc implements INC on the operand latch; the driver writes it back.
func inc(c *Chip) {
	c.opr1++
	c.zeroCheck(c.opr1)
	c.negativeCheck(c.opr1)
}

func dex(c *Chip) {
	c.X--
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
}

func dey(c *Chip) {
	c.Y--
	c.zeroCheck(c.Y)
	c.negativeCheck(c.Y)
}

func inx(c *Chip) {
	c.X++
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
}

func iny(c *Chip) {
	c.Y++
	c.zeroCheck(c.Y)
	c.negativeCheck(c.Y)
}

// asl implements ASL on the operand latch. Bit 7 lands in C.
func asl(c *Chip) {
	c.P &^= P_CARRY
	if c.opr1&0x80 != 0 {
		c.P |= P_CARRY
	}
	c.opr1 <<= 1
	c.zeroCheck(c.opr1)
	c.negativeCheck(c.opr1)
}

// lsr implements LSR on the operand latch. Bit 0 lands in C and N always
// clears since bit 7 of the result is 0.
func lsr(c *Chip) {
	c.P &^= P_CARRY | P_NEGATIVE
	if c.opr1&0x01 != 0 {
		c.P |= P_CARRY
	}
	c.opr1 >>= 1
	c.zeroCheck(c.opr1)
}

// rol implements ROL on the operand latch, rotating through C.
func rol(c *Chip) {
	carry := c.P & P_CARRY
	c.P &^= P_CARRY
	if c.opr1&0x80 != 0 {
		c.P |= P_CARRY
	}
	c.opr1 = c.opr1<<1 | carry
	c.zeroCheck(c.opr1)
	c.negativeCheck(c.opr1)
}

// ror implements ROR on the operand latch, rotating through C.
func ror(c *Chip) {
	carry := c.P & P_CARRY
	c.P &^= P_CARRY
	if c.opr1&0x01 != 0 {
		c.P |= P_CARRY
	}
	c.opr1 >>= 1
	if carry != 0 {
		c.opr1 |= 0x80
	}
	c.zeroCheck(c.opr1)
	c.negativeCheck(c.opr1)
}

// The stores move a register into the operand latch; the WR driver does
// the actual bus write. No flags.

func sta(c *Chip) { c.opr1 = c.A }
func stx(c *Chip) { c.opr1 = c.X }
func sty(c *Chip) { c.opr1 = c.Y }

func tax(c *Chip) {
	c.X = c.A
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
}

func tay(c *Chip) {
	c.Y = c.A
	c.zeroCheck(c.Y)
	c.negativeCheck(c.Y)
}

func txa(c *Chip) {
	c.A = c.X
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

func tya(c *Chip) {
	c.A = c.Y
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

func tsx(c *Chip) {
	c.X = c.SP
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
}

// txs is the one transfer that doesn't touch flags.
func txs(c *Chip) { c.SP = c.X }

func lda(c *Chip) {
	c.A = c.opr1
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

func ldx(c *Chip) {
	c.X = c.opr1
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
}

func ldy(c *Chip) {
	c.Y = c.opr1
	c.zeroCheck(c.Y)
	c.negativeCheck(c.Y)
}

// branchOn records the branch decision for the rel driver: opr1 is 1 iff
// the branch is taken.
func branchOn(c *Chip, taken bool) {
	c.opr1 = 0
	if taken {
		c.opr1 = 1
	}
}

func bpl(c *Chip) { branchOn(c, c.P&P_NEGATIVE == 0) }
func bmi(c *Chip) { branchOn(c, c.P&P_NEGATIVE != 0) }
func bne(c *Chip) { branchOn(c, c.P&P_ZERO == 0) }
func beq(c *Chip) { branchOn(c, c.P&P_ZERO != 0) }
func bcc(c *Chip) { branchOn(c, c.P&P_CARRY == 0) }
func bcs(c *Chip) { branchOn(c, c.P&P_CARRY != 0) }
func bvc(c *Chip) { branchOn(c, c.P&P_OVERFLOW == 0) }
func bvs(c *Chip) { branchOn(c, c.P&P_OVERFLOW != 0) }

func sec(c *Chip) { c.P |= P_CARRY }
func sed(c *Chip) { c.P |= P_DECIMAL }
func sei(c *Chip) { c.P |= P_INTERRUPT }
func clc(c *Chip) { c.P &^= P_CARRY }
func cld(c *Chip) { c.P &^= P_DECIMAL }
func cli(c *Chip) { c.P &^= P_INTERRUPT }
func clv(c *Chip) { c.P &^= P_OVERFLOW }

// bit implements BIT: N and V come straight from bits 7 and 6 of the
// operand, Z from the AND with A.
func bit(c *Chip) {
	c.P &^= P_NEGATIVE | P_OVERFLOW | P_ZERO
	c.P |= c.opr1 & (P_NEGATIVE | P_OVERFLOW)
	if c.opr1&c.A == 0 {
		c.P |= P_ZERO
	}
}

func nop(c *Chip) {}
