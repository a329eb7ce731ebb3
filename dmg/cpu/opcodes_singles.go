package cpu

import "github.com/kestrel-emu/dmgcore/dmg/bit"

// executeSingle handles every base-table opcode that doesn't belong to one
// of the bit-masked families in execute: control flow (JP/JR/CALL/RET/RST
// unconditional forms, the CB prefix entry) and the handful of remaining
// miscellaneous single instructions (rotates on A, DAA, CPL, SCF, CCF,
// EI/DI, STOP, the (a16)/(a8)/(C) addressing LD forms, SP arithmetic).
func (c *CPU) executeSingle(opcode byte) int {
	switch opcode {
	case 0x07:
		c.rlca()
		return 1
	case 0x0F:
		c.rrca()
		return 1
	case 0x17:
		c.rla()
		return 1
	case 0x1F:
		c.rra()
		return 1
	case 0x27:
		c.daa()
		return 1
	case 0x2F:
		c.Regs.A = ^c.Regs.A
		c.Regs.SetSubtract(true)
		c.Regs.SetHalfCarry(true)
		return 1
	case 0x37:
		c.Regs.SetSubtract(false)
		c.Regs.SetHalfCarry(false)
		c.Regs.SetCarry(true)
		return 1
	case 0x3F:
		c.Regs.SetSubtract(false)
		c.Regs.SetHalfCarry(false)
		c.Regs.SetCarry(!c.Regs.Carry())
		return 1

	case 0x08: // LD (a16),SP
		target := c.fetch16()
		c.bus.Write(target, bit.Low(c.Regs.SP))
		c.bus.Write(target+1, bit.High(c.Regs.SP))
		return 5

	case 0x10: // STOP
		c.fetch8() // the mandatory, conventionally-zero trailing byte
		c.stopped = true
		return 1

	case 0x18: // JR r8
		offset := int8(c.fetch8())
		c.Regs.PC = uint16(int32(c.Regs.PC) + int32(offset))
		return 3

	case 0xC3: // JP a16
		c.Regs.PC = c.fetch16()
		return 4

	case 0xC9: // RET
		c.Regs.PC = c.pop16()
		return 4

	case 0xD9: // RETI
		c.Regs.PC = c.pop16()
		c.ime = true
		c.cancelEI()
		return 4

	case 0xCB:
		cbOpcode := c.fetch8()
		return c.executeCB(cbOpcode)

	case 0xCD: // CALL a16
		target := c.fetch16()
		c.push16(c.Regs.PC)
		c.Regs.PC = target
		return 6

	case 0xE0: // LDH (a8),A
		offset := c.fetch8()
		c.bus.Write(0xFF00+uint16(offset), c.Regs.A)
		return 3

	case 0xE2: // LD (C),A
		c.bus.Write(0xFF00+uint16(c.Regs.C), c.Regs.A)
		return 2

	case 0xE8: // ADD SP,e8
		offset := int8(c.fetch8())
		c.Regs.SP = c.addSPSigned(offset)
		return 4

	case 0xE9: // JP (HL)
		c.Regs.PC = c.Regs.GetHL()
		return 1

	case 0xEA: // LD (a16),A
		c.bus.Write(c.fetch16(), c.Regs.A)
		return 4

	case 0xF0: // LDH A,(a8)
		offset := c.fetch8()
		c.Regs.A = c.bus.Read(0xFF00 + uint16(offset))
		return 3

	case 0xF2: // LD A,(C)
		c.Regs.A = c.bus.Read(0xFF00 + uint16(c.Regs.C))
		return 2

	case 0xF3: // DI
		c.ime = false
		c.cancelEI()
		return 1

	case 0xF8: // LD HL,SP+e8
		offset := int8(c.fetch8())
		c.Regs.SetHL(c.addSPSigned(offset))
		return 3

	case 0xF9: // LD SP,HL
		c.Regs.SP = c.Regs.GetHL()
		return 2

	case 0xFA: // LD A,(a16)
		c.Regs.A = c.bus.Read(c.fetch16())
		return 4

	case 0xFB: // EI
		c.scheduleEI()
		return 1

	default:
		return unknownOpcode("", opcode, c.Regs.PC-1)
	}
}
