package cpu

import "github.com/kestrel-emu/dmgcore/dmg/bit"

// executeCB decodes the CB-prefixed table. Unlike the base table it is
// fully regular: the top two bits pick rotate/shift-vs-BIT-vs-RES-vs-SET,
// the next three bits pick the rotate/shift kind or the bit index, and the
// bottom three bits pick the r8 operand.
func (c *CPU) executeCB(opcode byte) int {
	r := opcode & 7
	group := opcode >> 6

	switch group {
	case 0: // rotate/shift/swap
		op := (opcode >> 3) & 7
		v := c.r8(r)
		var result byte
		switch op {
		case 0:
			result = c.rlc(v)
		case 1:
			result = c.rrc(v)
		case 2:
			result = c.rl(v)
		case 3:
			result = c.rr(v)
		case 4:
			result = c.sla(v)
		case 5:
			result = c.sra(v)
		case 6:
			result = c.swap(v)
		case 7:
			result = c.srl(v)
		}
		c.setR8(r, result)
		if r == 6 {
			return 4
		}
		return 2

	case 1: // BIT n,r
		n := (opcode >> 3) & 7
		c.bitTest(n, c.r8(r))
		if r == 6 {
			return 3
		}
		return 2

	case 2: // RES n,r
		n := (opcode >> 3) & 7
		c.setR8(r, bit.Reset(n, c.r8(r)))
		if r == 6 {
			return 4
		}
		return 2

	case 3: // SET n,r
		n := (opcode >> 3) & 7
		c.setR8(r, bit.Set(n, c.r8(r)))
		if r == 6 {
			return 4
		}
		return 2
	}

	return unknownOpcode("CB", opcode, c.Regs.PC-2)
}
