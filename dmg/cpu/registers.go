package cpu

import "github.com/kestrel-emu/dmgcore/dmg/bit"

// Flag bit positions within F. The low nibble of F is permanently zero;
// only these four bits are ever meaningful.
const (
	flagZ byte = 1 << 7
	flagN byte = 1 << 6
	flagH byte = 1 << 5
	flagC byte = 1 << 4
)

// Registers holds the Sharp LR35902 register file: eight 8-bit registers
// (A, F, B, C, D, E, H, L), paired as AF/BC/DE/HL, plus the 16-bit stack
// pointer and program counter.
type Registers struct {
	A, F, B, C, D, E, H, L byte
	SP, PC                 uint16
}

// Reset sets every register to the standard post-boot-ROM values.
func (r *Registers) Reset() {
	r.A, r.F = 0x01, 0xB0
	r.B, r.C = 0x00, 0x13
	r.D, r.E = 0x00, 0xD8
	r.H, r.L = 0x01, 0x4D
	r.SP = 0xFFFE
	r.PC = 0x0100
}

// ResetToZero clears every register, the state expected when a real
// boot ROM is loaded and will perform its own initialization.
func (r *Registers) ResetToZero() {
	*r = Registers{}
}

func (r *Registers) GetAF() uint16 { return bit.Combine(r.A, r.F&0xF0) }
func (r *Registers) SetAF(v uint16) {
	r.A = bit.High(v)
	r.F = bit.Low(v) & 0xF0
}

func (r *Registers) GetBC() uint16 { return bit.Combine(r.B, r.C) }
func (r *Registers) SetBC(v uint16) {
	r.B = bit.High(v)
	r.C = bit.Low(v)
}

func (r *Registers) GetDE() uint16 { return bit.Combine(r.D, r.E) }
func (r *Registers) SetDE(v uint16) {
	r.D = bit.High(v)
	r.E = bit.Low(v)
}

func (r *Registers) GetHL() uint16 { return bit.Combine(r.H, r.L) }
func (r *Registers) SetHL(v uint16) {
	r.H = bit.High(v)
	r.L = bit.Low(v)
}

func (r *Registers) Zero() bool      { return r.F&flagZ != 0 }
func (r *Registers) Subtract() bool  { return r.F&flagN != 0 }
func (r *Registers) HalfCarry() bool { return r.F&flagH != 0 }
func (r *Registers) Carry() bool     { return r.F&flagC != 0 }

func (r *Registers) SetZero(v bool)      { r.setFlag(flagZ, v) }
func (r *Registers) SetSubtract(v bool)  { r.setFlag(flagN, v) }
func (r *Registers) SetHalfCarry(v bool) { r.setFlag(flagH, v) }
func (r *Registers) SetCarry(v bool)     { r.setFlag(flagC, v) }

func (r *Registers) setFlag(mask byte, v bool) {
	if v {
		r.F |= mask
	} else {
		r.F &^= mask
	}
}

// ResetFlagsAndSetZero is the common post-condition of rotate/shift/swap
// operations: clears N, H and C and sets Z iff v == 0.
func (r *Registers) ResetFlagsAndSetZero(v byte) {
	r.F = 0
	if v == 0 {
		r.F = flagZ
	}
}
