// Package dmg wires the CPU, memory bus, PPU and APU together into the
// public core API a frontend drives: load a ROM, feed it key events, and
// pull frames/audio out of it one instruction at a time.
package dmg

import (
	"fmt"
	"log/slog"

	"github.com/kestrel-emu/dmgcore/dmg/cpu"
	"github.com/kestrel-emu/dmgcore/dmg/memory"
	"github.com/kestrel-emu/dmgcore/dmg/video"
)

// Key identifies one of the eight joypad inputs.
type Key = memory.JoypadKey

const (
	KeyRight  = memory.JoypadRight
	KeyLeft   = memory.JoypadLeft
	KeyUp     = memory.JoypadUp
	KeyDown   = memory.JoypadDown
	KeyA      = memory.JoypadA
	KeyB      = memory.JoypadB
	KeySelect = memory.JoypadSelect
	KeyStart  = memory.JoypadStart
)

// Event is what step_until_event may report back to the host after
// advancing by one instruction's worth of cycles.
type Event int

const (
	// NoEvent means "keep calling StepUntilEvent", nothing for the host to
	// act on yet.
	NoEvent Event = iota
	// Render means a frame just finished: copy FrameBuffer to the display.
	Render
	// QueueSound means a full audio batch is ready: drain it with AudioBatch.
	QueueSound
)

// dotsPerFrame is the fixed DMG frame length: 154 scanlines * 456 dots.
const dotsPerFrame = 70224

// samplesPerBatch is the default negotiated audio_batch size (spec default
// 1024); frontends needing a different cadence can still drain early via
// AudioBatch, which returns whatever is buffered, zero-padded to a full
// batch.
const samplesPerBatch = 1024

// Emulator is the root struct and single entry point for running the core.
type Emulator struct {
	cpu *cpu.CPU
	ppu *video.PPU
	mem *memory.MMU

	frameDots uint32

	// soundQueuePending latches a QueueSound event that arrived on the same
	// step as a Render, so it's reported on the next call instead of being
	// silently dropped (original_source/core/src/emulator.rs's
	// run_until_frontend_event carries the equivalent flag across calls).
	soundQueuePending bool
}

// New constructs an Emulator with no cartridge loaded. When useBootROM is
// true the CPU starts at PC=0 with zeroed registers and execution begins in
// the real boot ROM (LoadBootROM must be called before stepping); otherwise
// registers are initialized to the standard post-boot-ROM values and
// execution starts directly at the cartridge entry point, 0x0100.
func New(useBootROM bool) *Emulator {
	mem := memory.New()
	e := &Emulator{mem: mem}
	if useBootROM {
		e.cpu = cpu.NewWithZeroedRegisters(mem)
	} else {
		e.cpu = cpu.New(mem)
	}
	e.ppu = video.NewPPU(mem)
	return e
}

// LoadROM parses and installs a cartridge image, replacing any cartridge
// already loaded. Returns a load-time error (unsupported controller,
// truncated image, bad header checksum) without mutating emulator state.
// The CPU and PPU are left bound to the same memory bus; only the
// cartridge and its bank controller are swapped in.
func (e *Emulator) LoadROM(data []byte) error {
	cart, err := memory.NewCartridgeFromData(data)
	if err != nil {
		return fmt.Errorf("dmg: load ROM: %w", err)
	}

	e.mem.LoadCartridge(cart)
	slog.Info("ROM loaded", "title", cart.Title(), "size", len(data))
	return nil
}

// LoadBootROM maps the given boot ROM image over the reset vector until the
// game disables it by writing a non-zero value to the boot-ROM-disable
// register.
func (e *Emulator) LoadBootROM(data []byte) {
	e.mem.LoadBootROM(data)
}

// Press marks a joypad input as held down, requesting a joypad interrupt on
// the falling edge per real hardware semantics.
func (e *Emulator) Press(key Key) {
	e.mem.HandleKeyPress(key)
	e.cpu.Resume()
}

// Release marks a joypad input as no longer held.
func (e *Emulator) Release(key Key) {
	e.mem.HandleKeyRelease(key)
}

// StepUntilEvent advances simulated time by exactly one instruction's worth
// of cycles (or one interrupt dispatch, or one HALT/STOP idle tick) and
// reports whether a frame completed, an audio batch filled up, or neither.
// Render always takes priority when both land on the same step; a QueueSound
// that would have been dropped is latched and returned on the next call
// instead, so no event is ever silently lost.
func (e *Emulator) StepUntilEvent() Event {
	cycles := e.cpu.Step()
	dots := cycles * 4

	e.mem.Tick(dots)
	e.ppu.Tick(dots)
	e.mem.APU.Tick(dots)

	frameDone := false
	e.frameDots += uint32(dots)
	if e.frameDots >= dotsPerFrame {
		e.frameDots -= dotsPerFrame
		frameDone = true
	}

	if e.mem.APU.AvailableSamples() >= samplesPerBatch {
		e.soundQueuePending = true
	}

	if frameDone {
		return Render
	}
	if e.soundQueuePending {
		e.soundQueuePending = false
		return QueueSound
	}
	return NoEvent
}

// FrameBuffer returns the current frame as row-major, 3-bytes-per-pixel RGB
// data (160*144*3 bytes).
func (e *Emulator) FrameBuffer() []byte {
	return e.ppu.GetFrameBuffer().ToRGB()
}

// AudioBatch drains up to samplesPerBatch stereo sample frames (as
// normalized floats in [-1, 1]) from the APU's output buffer.
func (e *Emulator) AudioBatch() []float32 {
	samples := e.mem.APU.GetSamples(samplesPerBatch)
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = float32(s) / 32768.0
	}
	return out
}

// SerialOutput returns the full text transcript sent over the serial port
// so far this session. Test ROMs (Blargg's suite among them) commonly print
// their pass/fail result this way in the absence of a connected peer.
func (e *Emulator) SerialOutput() string {
	return e.mem.SerialCaptured()
}
