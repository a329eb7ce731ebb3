package dmg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-emu/dmgcore/dmg/addr"
)

// TestFramePacingAccumulatesExactDotsPerRender exercises a frame's worth of
// dot accounting across many Render events. With no cartridge loaded every
// fetched opcode reads as 0xFF (RST 38h), which never enables interrupts and
// keeps the CPU looping indefinitely, so StepUntilEvent can be driven for as
// long as the test likes without ever halting.
//
// Instruction boundaries don't line up evenly with the 70224-dot frame
// length, so the running total of dots actually consumed is never exactly a
// multiple of 70224 - there's always a small remainder left over from
// whichever instruction carried the frame counter past the threshold. What
// must hold exactly, by construction, is totalDots - pendingRemainder ==
// renders * 70224; that's the invariant this test checks.
func TestFramePacingAccumulatesExactDotsPerRender(t *testing.T) {
	emu := New(false)

	// With no cartridge loaded, every ROM read comes back 0xFF, so the CPU
	// fetches RST 38h forever: IME/IE never get set, so the dispatch never
	// fires, and RST always costs a fixed 4 M-cycles (16 dots) regardless of
	// its target vector. That makes the dots-per-step count in this loop
	// exactly 16 every time, with no need to read it back off the CPU.
	const dotsPerStep = 16

	const targetRenders = 60
	renders := 0
	steps := uint64(0)

	for renders < targetRenders {
		event := emu.StepUntilEvent()
		steps++

		if event == Render {
			renders++
		}
	}

	totalDots := steps * dotsPerStep

	pending := uint64(emu.frameDots)
	assert.Equal(t, uint64(targetRenders)*dotsPerFrame, totalDots-pending,
		"total dots consumed minus the pending partial-frame remainder must equal exactly N*70224")
}

// TestJoypadReadReflectsSelectedGroup exercises the P1 selection/readback
// protocol: software selects one button group by clearing its select bit,
// and the corresponding inputs appear in the low nibble (0 = pressed).
func TestJoypadReadReflectsSelectedGroup(t *testing.T) {
	emu := New(false)

	// select the d-pad group (bit 4 low, bit 5 high)
	emu.mem.Write(addr.P1, 0b0010_0000)
	if got := emu.mem.Read(addr.P1) & 0x0F; got != 0x0F {
		t.Fatalf("with nothing pressed, d-pad nibble = 0x%X, want 0x0F", got)
	}

	emu.Press(KeyDown)
	got := emu.mem.Read(addr.P1) & 0x0F
	assert.Equal(t, uint8(0x07), got, "Down bit (bit 3) should read low while held")

	emu.Release(KeyDown)
	got = emu.mem.Read(addr.P1) & 0x0F
	assert.Equal(t, uint8(0x0F), got, "releasing Down should restore the high bit")

	// switch to the button group (bit 5 low, bit 4 high) - Down shouldn't
	// leak into this group
	emu.mem.Write(addr.P1, 0b0001_0000)
	emu.Press(KeyA)
	got = emu.mem.Read(addr.P1) & 0x0F
	assert.Equal(t, uint8(0x0E), got, "A bit (bit 0) should read low while held")
}

// TestJoypadPressRequestsInterrupt verifies the falling-edge joypad
// interrupt: a newly pressed button (0 bit transition) requests the joypad
// interrupt in IF, a no-op press (already held) does not request it again.
func TestJoypadPressRequestsInterrupt(t *testing.T) {
	emu := New(false)
	emu.mem.Write(addr.IF, 0x00)

	emu.Press(KeyStart)
	assert.NotZero(t, emu.mem.Read(addr.IF)&addr.JoypadInterrupt,
		"pressing a button should request the joypad interrupt")

	emu.mem.Write(addr.IF, 0x00)
	emu.Press(KeyStart) // already held, no new falling edge
	assert.Zero(t, emu.mem.Read(addr.IF)&addr.JoypadInterrupt,
		"holding an already-pressed button must not re-request the interrupt")
}

// TestOAMDMACopiesSourceRegionToOAM exercises writing the DMA register:
// source*0x100 through source*0x100+0x9F must be copied verbatim into OAM
// (0xFE00-0xFE9F).
func TestOAMDMACopiesSourceRegionToOAM(t *testing.T) {
	emu := New(false)

	const sourceHighByte = 0xC0 // WRAM bank 0, source = 0xC000
	for i := uint16(0); i < 160; i++ {
		emu.mem.Write(0xC000+i, uint8(i))
	}

	emu.mem.Write(addr.DMA, sourceHighByte)

	for i := uint16(0); i < 160; i++ {
		got := emu.mem.Read(0xFE00 + i)
		if got != uint8(i) {
			t.Fatalf("OAM[0x%02X] = 0x%02X, want 0x%02X", i, got, uint8(i))
		}
	}
}
