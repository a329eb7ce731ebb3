// Package cpu implements fetch/decode/execute for the Sharp LR35902: the
// base and CB-prefixed instruction sets, HALT/STOP, and interrupt dispatch.
package cpu

import (
	"fmt"

	"github.com/kestrel-emu/dmgcore/dmg/addr"
	"github.com/kestrel-emu/dmgcore/dmg/bit"
)

// Bus is the minimal memory-mapped surface the CPU needs. It never holds a
// concrete reference to the memory package; a short-lived implementation is
// handed to it for the duration of one Step, per the single-owner Bus model.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

var interruptVectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// CPU holds the register file and scheduling state (IME, HALT/STOP,
// deferred EI) and executes one instruction per Step call.
type CPU struct {
	Regs Registers
	bus  Bus

	ime bool

	// eiScheduled/eiDelay implement EI's one-instruction-delayed enable:
	// the instruction after EI completes before IME actually flips.
	eiScheduled bool
	eiDelay     int

	halted  bool
	stopped bool
}

// New constructs a CPU wired to the given bus, with registers at their
// standard post-boot-ROM values.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Regs.Reset()
	return c
}

// NewWithZeroedRegisters constructs a CPU whose registers start at zero,
// the state expected when a real boot ROM will run and initialize them.
func NewWithZeroedRegisters(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Regs.ResetToZero()
	return c
}

func (c *CPU) Halted() bool  { return c.halted }
func (c *CPU) Stopped() bool { return c.stopped }

// pendingInterrupts returns the bits set in both IE and IF, masked to the
// five real interrupt sources.
func (c *CPU) pendingInterrupts() byte {
	return c.bus.Read(addr.IE) & c.bus.Read(addr.IF) & 0x1F
}

// Step executes exactly one instruction (or one interrupt dispatch, or one
// tick of HALT/STOP idling) and returns the number of machine cycles
// consumed.
func (c *CPU) Step() int {
	if c.stopped {
		// STOP suspends until a joypad event; §9 leaves the exact resumption
		// trigger unspecified for this implementation's fidelity level, so
		// the CPU simply spins, consuming cycles, until something external
		// clears the flag (Resume).
		return 1
	}

	if c.halted {
		if c.pendingInterrupts() != 0 {
			c.halted = false
		} else {
			c.tickEI()
			return 1
		}
	}

	if pending := c.pendingInterrupts(); c.ime && pending != 0 {
		cycles := c.dispatchInterrupt(pending)
		c.tickEI()
		return cycles
	}

	opcode := c.fetch8()
	cycles := c.execute(opcode)
	c.tickEI()
	return cycles
}

// Resume clears a STOP condition, simulating the joypad event that wakes
// the CPU back up.
func (c *CPU) Resume() {
	c.stopped = false
}

func (c *CPU) dispatchInterrupt(pending byte) int {
	for bitPos := uint8(0); bitPos < 5; bitPos++ {
		if pending&(1<<bitPos) == 0 {
			continue
		}
		iflags := c.bus.Read(addr.IF)
		c.bus.Write(addr.IF, bit.Reset(bitPos, iflags))
		c.ime = false
		c.push16(c.Regs.PC)
		c.Regs.PC = interruptVectors[bitPos]
		return 5
	}
	panic("cpu: dispatchInterrupt called with no pending interrupt")
}

// scheduleEI arms the one-instruction-delayed IME enable.
func (c *CPU) scheduleEI() {
	c.eiScheduled = true
	c.eiDelay = 1
}

func (c *CPU) cancelEI() {
	c.eiScheduled = false
}

func (c *CPU) tickEI() {
	if !c.eiScheduled {
		return
	}
	if c.eiDelay > 0 {
		c.eiDelay--
		return
	}
	c.ime = true
	c.eiScheduled = false
}

func (c *CPU) fetch8() byte {
	v := c.bus.Read(c.Regs.PC)
	c.Regs.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return bit.Combine(hi, lo)
}

func (c *CPU) push16(v uint16) {
	c.Regs.SP--
	c.bus.Write(c.Regs.SP, bit.High(v))
	c.Regs.SP--
	c.bus.Write(c.Regs.SP, bit.Low(v))
}

func (c *CPU) pop16() uint16 {
	lo := c.bus.Read(c.Regs.SP)
	c.Regs.SP++
	hi := c.bus.Read(c.Regs.SP)
	c.Regs.SP++
	return bit.Combine(hi, lo)
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// unknownOpcode is the fatal, diagnostic-bearing response to an
// unimplemented/illegal opcode: real hardware locks up on many of these,
// and surfacing it aids ROM debugging rather than silently corrupting state.
func unknownOpcode(prefix string, opcode byte, pc uint16) int {
	panic(fmt.Sprintf("cpu: unknown opcode %s0x%02X at PC=0x%04X", prefix, opcode, pc))
}
