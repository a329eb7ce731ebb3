package cpu

// Register-index decoding tables. The LR35902 encodes its 8-bit register
// operands in a fixed order (B, C, D, E, H, L, (HL), A) and its 16-bit
// register-pair operands in one of two orders depending on whether SP or
// AF occupies the fourth slot.

// r8 returns the operand named by a 3-bit field, reading memory at (HL)
// for index 6.
func (c *CPU) r8(idx byte) byte {
	switch idx {
	case 0:
		return c.Regs.B
	case 1:
		return c.Regs.C
	case 2:
		return c.Regs.D
	case 3:
		return c.Regs.E
	case 4:
		return c.Regs.H
	case 5:
		return c.Regs.L
	case 6:
		return c.bus.Read(c.Regs.GetHL())
	case 7:
		return c.Regs.A
	}
	panic("cpu: r8 index out of range")
}

func (c *CPU) setR8(idx byte, v byte) {
	switch idx {
	case 0:
		c.Regs.B = v
	case 1:
		c.Regs.C = v
	case 2:
		c.Regs.D = v
	case 3:
		c.Regs.E = v
	case 4:
		c.Regs.H = v
	case 5:
		c.Regs.L = v
	case 6:
		c.bus.Write(c.Regs.GetHL(), v)
	case 7:
		c.Regs.A = v
	default:
		panic("cpu: r8 index out of range")
	}
}

// r16 is the BC/DE/HL/SP group used by LD rr,d16, INC/DEC rr, ADD HL,rr.
func (c *CPU) r16(idx byte) uint16 {
	switch idx {
	case 0:
		return c.Regs.GetBC()
	case 1:
		return c.Regs.GetDE()
	case 2:
		return c.Regs.GetHL()
	case 3:
		return c.Regs.SP
	}
	panic("cpu: r16 index out of range")
}

func (c *CPU) setR16(idx byte, v uint16) {
	switch idx {
	case 0:
		c.Regs.SetBC(v)
	case 1:
		c.Regs.SetDE(v)
	case 2:
		c.Regs.SetHL(v)
	case 3:
		c.Regs.SP = v
	default:
		panic("cpu: r16 index out of range")
	}
}

// r16Stack is the BC/DE/HL/AF group used by PUSH/POP.
func (c *CPU) r16Stack(idx byte) uint16 {
	switch idx {
	case 0:
		return c.Regs.GetBC()
	case 1:
		return c.Regs.GetDE()
	case 2:
		return c.Regs.GetHL()
	case 3:
		return c.Regs.GetAF()
	}
	panic("cpu: r16Stack index out of range")
}

func (c *CPU) setR16Stack(idx byte, v uint16) {
	switch idx {
	case 0:
		c.Regs.SetBC(v)
	case 1:
		c.Regs.SetDE(v)
	case 2:
		c.Regs.SetHL(v)
	case 3:
		c.Regs.SetAF(v)
	default:
		panic("cpu: r16Stack index out of range")
	}
}

// cond evaluates one of the four branch conditions: NZ, Z, NC, C.
func (c *CPU) cond(idx byte) bool {
	switch idx {
	case 0:
		return !c.Regs.Zero()
	case 1:
		return c.Regs.Zero()
	case 2:
		return !c.Regs.Carry()
	case 3:
		return c.Regs.Carry()
	}
	panic("cpu: cond index out of range")
}
