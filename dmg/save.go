package dmg

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/kestrel-emu/dmgcore/dmg/cpu"
	"github.com/kestrel-emu/dmgcore/dmg/memory"
	"github.com/kestrel-emu/dmgcore/dmg/video"
)

// saveMagic identifies a dmgcore save file; saveVersion is bumped whenever
// saveState's shape changes in a way that breaks gob-decoding an older file.
var saveMagic = [4]byte{'G', 'B', 'S', 'V'}

const saveVersion uint16 = 1

// saveState is the structured dump persisted by Save: registers, RAM,
// cartridge RAM, PPU mode state, timer state, and the frame-pacing dot
// counter. The framebuffer is not saved; after Load it keeps the old frame
// until scanlines are drawn again. No APU state is saved: Load leaves the
// APU's channels, registers and band-limited buffers as they were.
type saveState struct {
	CPU       cpu.State
	Mem       memory.State
	PPU       video.State
	FrameDots uint32
}

// Save serializes the emulator's entire resumable state to a byte string:
// a 4-byte magic, a 2-byte version, and a zstd-compressed gob-encoded body.
func (e *Emulator) Save() ([]byte, error) {
	state := saveState{
		CPU:       e.cpu.Snapshot(),
		Mem:       e.mem.Snapshot(),
		PPU:       e.ppu.Snapshot(),
		FrameDots: e.frameDots,
	}

	var body bytes.Buffer
	if err := gob.NewEncoder(&body).Encode(state); err != nil {
		return nil, fmt.Errorf("dmg: encode save state: %w", err)
	}

	var out bytes.Buffer
	out.Write(saveMagic[:])
	out.WriteByte(byte(saveVersion))
	out.WriteByte(byte(saveVersion >> 8))

	zw, err := zstd.NewWriter(&out)
	if err != nil {
		return nil, fmt.Errorf("dmg: create compressor: %w", err)
	}
	if _, err := zw.Write(body.Bytes()); err != nil {
		zw.Close()
		return nil, fmt.Errorf("dmg: compress save state: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("dmg: finalize save state: %w", err)
	}

	return out.Bytes(), nil
}

// Load restores state previously produced by Save. A magic or version
// mismatch is fatal: it is returned as an error and the emulator's current
// state is left untouched. The errors are plain fmt.Errorf values; there is
// no distinct error type or sentinel for callers to match on.
func (e *Emulator) Load(data []byte) error {
	if len(data) < 6 {
		return fmt.Errorf("dmg: save data too short (%d bytes)", len(data))
	}
	if !bytes.Equal(data[:4], saveMagic[:]) {
		return fmt.Errorf("dmg: bad save magic %q, want %q", data[:4], saveMagic[:])
	}
	version := uint16(data[4]) | uint16(data[5])<<8
	if version != saveVersion {
		return fmt.Errorf("dmg: unsupported save version %d, want %d", version, saveVersion)
	}

	zr, err := zstd.NewReader(bytes.NewReader(data[6:]))
	if err != nil {
		return fmt.Errorf("dmg: create decompressor: %w", err)
	}
	defer zr.Close()

	var state saveState
	if err := gob.NewDecoder(zr).Decode(&state); err != nil {
		return fmt.Errorf("dmg: decode save state: %w", err)
	}

	e.cpu.Restore(state.CPU)
	e.mem.Restore(state.Mem)
	e.ppu.Restore(state.PPU)
	e.frameDots = state.FrameDots

	return nil
}
