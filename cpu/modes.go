package cpu

import "compy/memory"

// The addressing mode drivers below are small state machines keyed on
// c.Cycle (cycle 0 is always the opcode fetch, handled by Tick). Each
// consults the decode entry's access kind to decide when the action fires
// and whether a writeback is issued, and returns true on the tick that
// completes the instruction.
//
// Speculative reads on page-cross cycles are real bus reads: hardware
// peripherals can see them, so they are never elided.

// imm implements immediate mode - #i
func imm(c *Chip, b memory.Bank) bool {
	c.opr1 = b.Read(c.PC)
	c.PC++
	optable[c.op].act(c)
	return true
}

// imp implements implied mode. The operand byte after the opcode is read
// and discarded like the real chip does.
func imp(c *Chip, b memory.Bank) bool {
	b.Read(c.PC)
	optable[c.op].act(c)
	return true
}

// acc implements accumulator mode. The action reads and writes c.opr1 so
// the same shift/rotate actions serve memory and accumulator forms.
func acc(c *Chip, b memory.Bank) bool {
	b.Read(c.PC)
	c.opr1 = c.A
	optable[c.op].act(c)
	c.A = c.opr1
	return true
}

// zpg implements zero page mode - d
func zpg(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		c.ea = uint16(b.Read(c.PC))
		c.PC++
		return false
	case 2:
		if optable[c.op].kind == kACCESS_WR {
			optable[c.op].act(c)
			b.Write(c.ea, c.opr1)
			return true
		}
		c.opr1 = b.Read(c.ea)
		if optable[c.op].kind == kACCESS_RD {
			optable[c.op].act(c)
			return true
		}
		return false
	case 3:
		// RMW writes the unmodified value back while the ALU works.
		b.Write(c.ea, c.opr1)
		optable[c.op].act(c)
		return false
	}
	// Cycle 4: write the modified value.
	b.Write(c.ea, c.opr1)
	return true
}

// zpx implements zero page plus X mode - d,x
func zpx(c *Chip, b memory.Bank) bool {
	return zpIndexed(c, b, c.X)
}

// zpy implements zero page plus Y mode - d,y
func zpy(c *Chip, b memory.Bank) bool {
	return zpIndexed(c, b, c.Y)
}

// zpIndexed implements the details for zpx and zpy since they only differ
// in the register added. The index add wraps within the zero page.
func zpIndexed(c *Chip, b memory.Bank, reg uint8) bool {
	switch c.Cycle {
	case 1:
		c.ea = uint16(b.Read(c.PC))
		c.PC++
		return false
	case 2:
		b.Read(c.ea)
		c.ea = uint16(uint8(c.ea) + reg)
		return false
	case 3:
		if optable[c.op].kind == kACCESS_WR {
			optable[c.op].act(c)
			b.Write(c.ea, c.opr1)
			return true
		}
		c.opr1 = b.Read(c.ea)
		if optable[c.op].kind == kACCESS_RD {
			optable[c.op].act(c)
			return true
		}
		return false
	case 4:
		b.Write(c.ea, c.opr1)
		optable[c.op].act(c)
		return false
	}
	// Cycle 5
	b.Write(c.ea, c.opr1)
	return true
}

// abl implements absolute mode - a
func abl(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		c.opr1 = b.Read(c.PC)
		c.PC++
		return false
	case 2:
		c.opr2 = b.Read(c.PC)
		c.PC++
		return false
	case 3:
		c.ea = uint16(c.opr2)<<8 | uint16(c.opr1)
		if optable[c.op].kind == kACCESS_WR {
			optable[c.op].act(c)
			b.Write(c.ea, c.opr1)
			return true
		}
		c.opr1 = b.Read(c.ea)
		if optable[c.op].kind == kACCESS_RD {
			optable[c.op].act(c)
			return true
		}
		return false
	case 4:
		b.Write(c.ea, c.opr1)
		optable[c.op].act(c)
		return false
	}
	// Cycle 5
	b.Write(c.ea, c.opr1)
	return true
}

// abx implements absolute plus X mode - a,x
func abx(c *Chip, b memory.Bank) bool {
	return ablIndexed(c, b, c.X)
}

// aby implements absolute plus Y mode - a,y
func aby(c *Chip, b memory.Bank) bool {
	return ablIndexed(c, b, c.Y)
}

// ablIndexed implements the details for abx and aby. The index is added
// to the low address byte before the high byte is fixed up, so cycle 3
// reads from a possibly wrong page. Reads that don't cross finish there;
// everything else pays the fix-up cycle.
func ablIndexed(c *Chip, b memory.Bank, reg uint8) bool {
	switch c.Cycle {
	case 1:
		c.opr2 = b.Read(c.PC)
		c.PC++
		return false
	case 2:
		c.ea = uint16(b.Read(c.PC))<<8 | uint16(c.opr2+reg)
		c.PC++
		return false
	case 3:
		c.opr1 = b.Read(c.ea)
		if optable[c.op].kind == kACCESS_RD && uint16(c.opr2)+uint16(reg) <= 0xFF {
			optable[c.op].act(c)
			return true
		}
		c.ea = c.ea&0xFF00 + uint16(c.opr2) + uint16(reg)
		return false
	case 4:
		if optable[c.op].kind == kACCESS_WR {
			optable[c.op].act(c)
			b.Write(c.ea, c.opr1)
			return true
		}
		c.opr1 = b.Read(c.ea)
		if optable[c.op].kind == kACCESS_RD {
			optable[c.op].act(c)
			return true
		}
		return false
	case 5:
		b.Write(c.ea, c.opr1)
		optable[c.op].act(c)
		return false
	}
	// Cycle 6
	b.Write(c.ea, c.opr1)
	return true
}

// idx implements zero page indirect plus X mode - (d,x)
// Both pointer reads wrap within the zero page.
func idx(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		c.ea = uint16(b.Read(c.PC))
		c.PC++
		return false
	case 2:
		b.Read(c.ea)
		c.ea = uint16(uint8(c.ea) + c.X)
		return false
	case 3:
		c.opr1 = b.Read(c.ea)
		return false
	case 4:
		c.ea = uint16(b.Read(uint16(uint8(c.ea)+1)))<<8 | uint16(c.opr1)
		return false
	}
	// Cycle 5: no legal opcode uses this mode for RMW.
	if optable[c.op].kind == kACCESS_RD {
		c.opr1 = b.Read(c.ea)
		optable[c.op].act(c)
	} else {
		optable[c.op].act(c)
		b.Write(c.ea, c.opr1)
	}
	return true
}

// idy implements zero page indirect plus Y mode - (d),y
// Same speculative read and fix-up dance as absolute indexed.
func idy(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		c.ea = uint16(b.Read(c.PC))
		c.PC++
		return false
	case 2:
		c.opr2 = b.Read(c.ea)
		return false
	case 3:
		c.ea = uint16(b.Read(uint16(uint8(c.ea)+1)))<<8 | uint16(c.opr2+c.Y)
		return false
	case 4:
		c.opr1 = b.Read(c.ea)
		if optable[c.op].kind == kACCESS_RD && uint16(c.opr2)+uint16(c.Y) <= 0xFF {
			optable[c.op].act(c)
			return true
		}
		c.ea = c.ea&0xFF00 + uint16(c.opr2) + uint16(c.Y)
		return false
	}
	// Cycle 5: no legal opcode uses this mode for RMW.
	if optable[c.op].kind == kACCESS_RD {
		c.opr1 = b.Read(c.ea)
		optable[c.op].act(c)
	} else {
		optable[c.op].act(c)
		b.Write(c.ea, c.opr1)
	}
	return true
}

// rel implements relative mode for the branch instructions. The action is
// the branch condition: it sets c.opr1 to 1 iff the branch is taken.
// Not taken costs 2 cycles total, taken 3, taken across a page 4.
func rel(c *Chip, b memory.Bank) bool {
	switch c.Cycle {
	case 1:
		c.opr2 = b.Read(c.PC)
		c.PC++
		optable[c.op].act(c)
		return c.opr1 == 0
	case 2:
		b.Read(c.PC)
		c.ea = c.PC & 0x00FF
		if c.opr2&0x80 != 0 {
			c.ea -= uint16(^c.opr2) + 1
		} else {
			c.ea += uint16(c.opr2)
		}
		if c.ea&0xFF00 == 0 {
			c.PC = c.PC&0xFF00 | c.ea
			return true
		}
		// Wrong-page address for the fix-up cycle's dummy read.
		c.ea = c.PC&0xFF00 | c.ea&0x00FF
		return false
	}
	// Cycle 3: carry the offset into the high byte of PC.
	b.Read(c.ea)
	if c.opr2&0x80 != 0 {
		c.PC -= uint16(^c.opr2) + 1
	} else {
		c.PC += uint16(c.opr2)
	}
	return true
}
