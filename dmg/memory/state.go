package memory

// TimerState is the serializable snapshot of the DIV/TIMA overflow state
// machine.
type TimerState struct {
	SystemCounter uint16
	LastTimerBit  bool
	TimaOverflow  int
	TimaDelayInt  bool
	Div, Tima, Tma, Tac byte
}

// Snapshot captures the timer's current state for persistence.
func (t *Timer) Snapshot() TimerState {
	return TimerState{
		SystemCounter: t.systemCounter,
		LastTimerBit:  t.lastTimerBit,
		TimaOverflow:  t.timaOverflow,
		TimaDelayInt:  t.timaDelayInt,
		Div:           t.div,
		Tima:          t.tima,
		Tma:           t.tma,
		Tac:           t.tac,
	}
}

// Restore replaces the timer's state with a previously captured snapshot.
func (t *Timer) Restore(s TimerState) {
	t.systemCounter = s.SystemCounter
	t.lastTimerBit = s.LastTimerBit
	t.timaOverflow = s.TimaOverflow
	t.timaDelayInt = s.TimaDelayInt
	t.div = s.Div
	t.tima = s.Tima
	t.tma = s.Tma
	t.tac = s.Tac
}

// cartridgeRAM returns the mutable backing RAM of whichever MBC variant is
// installed (nil for MBC variants with none), used to persist battery-backed
// save data without widening the MBC interface for every implementor.
func cartridgeRAM(mbc MBC) []uint8 {
	switch m := mbc.(type) {
	case *NoMBC:
		return m.ram
	case *MBC1:
		return m.ram
	case *MBC3:
		return m.ram
	default:
		return nil
	}
}

// State is the serializable snapshot of the MMU: the flat 64KiB address
// space backing VRAM/WRAM/OAM/HRAM/IO mirrors, joypad latch state, the boot
// ROM overlay flag, cartridge RAM, and the timer. The APU (whose registers
// at 0xFF10-0xFF3F live outside the flat array) is not captured here, and
// no other snapshot captures it either.
type State struct {
	Memory         []byte
	JoypadButtons  uint8
	JoypadDpad     uint8
	BootROMEnabled bool
	CartRAM        []byte
	Timer          TimerState
}

// Snapshot captures the MMU's current state for persistence.
func (m *MMU) Snapshot() State {
	memCopy := make([]byte, len(m.memory))
	copy(memCopy, m.memory)

	var ramCopy []byte
	if ram := cartridgeRAM(m.mbc); ram != nil {
		ramCopy = make([]byte, len(ram))
		copy(ramCopy, ram)
	}

	return State{
		Memory:         memCopy,
		JoypadButtons:  m.joypadButtons,
		JoypadDpad:     m.joypadDpad,
		BootROMEnabled: m.bootROMEnabled,
		CartRAM:        ramCopy,
		Timer:          m.timer.Snapshot(),
	}
}

// Restore replaces the MMU's state with a previously captured snapshot. The
// cartridge (and therefore its bank controller) must already be loaded;
// only its RAM contents are overwritten.
func (m *MMU) Restore(s State) {
	copy(m.memory, s.Memory)
	m.joypadButtons = s.JoypadButtons
	m.joypadDpad = s.JoypadDpad
	m.bootROMEnabled = s.BootROMEnabled
	if ram := cartridgeRAM(m.mbc); ram != nil && s.CartRAM != nil {
		copy(ram, s.CartRAM)
	}
	m.timer.Restore(s.Timer)
	m.updateJoypadRegister()
}
