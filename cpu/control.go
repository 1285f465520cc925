package cpu

import "compy/memory"

// Control procedures are the opcodes whose cycle sequences don't factor
// into mode + action: the stack and flow control instructions. Like the
// mode drivers they're keyed on c.Cycle and return true on completion.

// brk implements BRK. The pushed P always has B and bit 5 set; the byte
// after the opcode is consumed like an operand.
func brk(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		b.Read(c.PC)
		c.PC++
		return false
	case 2:
		c.pushStack(b, uint8(c.PC>>8))
		return false
	case 3:
		c.pushStack(b, uint8(c.PC))
		return false
	case 4:
		c.pushStack(b, c.P|P_B|P_S1)
		return false
	case 5:
		c.opr1 = b.Read(IRQ_VECTOR)
		return false
	}
	// Cycle 6
	c.PC = uint16(b.Read(IRQ_VECTOR+1))<<8 | uint16(c.opr1)
	c.P |= P_INTERRUPT
	return true
}

// rti implements RTI. The pulled P never keeps B or bit 5; the PC is used
// as-is (BRK/interrupt entry pushed the address to resume at).
func rti(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		b.Read(c.PC)
		return false
	case 2:
		c.peekStack(b)
		return false
	case 3:
		c.P = c.popStack(b) &^ (P_B | P_S1)
		return false
	case 4:
		c.opr1 = c.popStack(b)
		return false
	}
	// Cycle 5
	c.PC = uint16(c.popStack(b))<<8 | uint16(c.opr1)
	return true
}

// php implements PHP. Like BRK the pushed copy has B and bit 5 set.
func php(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		b.Read(c.PC)
		return false
	}
	// Cycle 2
	c.pushStack(b, c.P|P_B|P_S1)
	return true
}

// plp implements PLP. B and bit 5 are stripped on the way in.
func plp(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		b.Read(c.PC)
		return false
	case 2:
		c.peekStack(b)
		return false
	}
	// Cycle 3
	c.P = c.popStack(b) &^ (P_B | P_S1)
	return true
}

// pha implements PHA.
func pha(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		b.Read(c.PC)
		return false
	}
	// Cycle 2
	c.pushStack(b, c.A)
	return true
}

// pla implements PLA, which unlike the other pulls sets N and Z.
func pla(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		b.Read(c.PC)
		return false
	case 2:
		c.peekStack(b)
		return false
	}
	// Cycle 3
	c.A = c.popStack(b)
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
	return true
}

// jsr implements JSR. The PC pushed points at the high byte of the target
// address, which is one short of the next instruction; RTS compensates by
// incrementing the popped PC.
func jsr(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		c.opr2 = b.Read(c.PC)
		c.PC++
		return false
	case 2:
		c.peekStack(b)
		return false
	case 3:
		c.pushStack(b, uint8(c.PC>>8))
		return false
	case 4:
		c.pushStack(b, uint8(c.PC))
		return false
	}
	// Cycle 5
	c.PC = uint16(b.Read(c.PC))<<8 | uint16(c.opr2)
	return true
}

// rts implements RTS.
func rts(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		b.Read(c.PC)
		return false
	case 2:
		c.peekStack(b)
		return false
	case 3:
		c.opr1 = c.popStack(b)
		return false
	case 4:
		c.PC = uint16(c.popStack(b))<<8 | uint16(c.opr1)
		return false
	}
	// Cycle 5: dummy read at the pushed address, then move past it.
	b.Read(c.PC)
	c.PC++
	return true
}

// jmpAbs implements JMP a.
func jmpAbs(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		c.opr1 = b.Read(c.PC)
		c.PC++
		return false
	}
	// Cycle 2
	c.PC = uint16(b.Read(c.PC))<<8 | uint16(c.opr1)
	return true
}

// jmpInd implements JMP (a). A vector at $xxFF fetches its high byte from
// $xx00: the NMOS page-wrap bug is load bearing and preserved.
func jmpInd(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		c.opr1 = b.Read(c.PC)
		c.PC++
		return false
	case 2:
		c.ea = uint16(b.Read(c.PC))<<8 | uint16(c.opr1)
		c.PC++
		return false
	case 3:
		c.opr2 = b.Read(c.ea)
		c.ea = c.ea&0xFF00 | uint16(c.opr1+1)
		return false
	}
	// Cycle 4
	c.PC = uint16(b.Read(c.ea))<<8 | uint16(c.opr2)
	return true
}

// illegal covers every opcode byte without an official mnemonic: a
// single-cycle no-op with no bus traffic beyond the fetch.
func illegal(c *Chip, b memory.Bank) bool {
	return true
}
