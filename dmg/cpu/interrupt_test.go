package cpu

import (
	"testing"

	"github.com/kestrel-emu/dmgcore/dmg/addr"
	"github.com/stretchr/testify/assert"
)

func TestInterruptDispatchPushesPCAndJumpsToVector(t *testing.T) {
	c, bus := newTestCPU()
	c.ime = true
	c.Regs.SP = 0xFFFE
	c.Regs.PC = 0x0150
	bus.Write(addr.IE, 0x01) // Vblank enabled
	bus.Write(addr.IF, 0x01) // Vblank requested

	cycles := c.Step()

	assert.Equal(t, 5, cycles)
	assert.Equal(t, uint16(0x0040), c.Regs.PC, "Vblank vector")
	assert.False(t, c.ime, "dispatch clears IME")
	assert.Equal(t, byte(0x00), bus.Read(addr.IF), "dispatch clears the serviced IF bit")

	returnPC := c.pop16()
	assert.Equal(t, uint16(0x0150), returnPC)
}

func TestInterruptPriorityServicesLowestBitFirst(t *testing.T) {
	c, bus := newTestCPU()
	c.ime = true
	c.Regs.SP = 0xFFFE
	bus.Write(addr.IE, 0x1F)
	bus.Write(addr.IF, 0x06) // STAT (bit1) and Timer (bit2) both pending

	c.Step()

	assert.Equal(t, uint16(0x0048), c.Regs.PC, "STAT outranks Timer")
	assert.Equal(t, byte(0x04), bus.Read(addr.IF), "only the serviced bit is cleared")
}

func TestDisabledIMELeavesInterruptPending(t *testing.T) {
	c, bus := newTestCPU()
	c.ime = false
	bus.load(0x0100, 0x00)
	bus.Write(addr.IE, 0x01)
	bus.Write(addr.IF, 0x01)

	c.Step()

	assert.Equal(t, uint16(0x0101), c.Regs.PC, "no dispatch while IME is false")
	assert.Equal(t, byte(0x01), bus.Read(addr.IF), "pending flag is left untouched")
}
