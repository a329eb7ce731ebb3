package cpu

// State is the serializable snapshot of everything Step needs to resume
// mid-instruction-stream: the register file plus the scheduling flags that
// live outside it (IME, the deferred-EI latch, HALT/STOP).
type State struct {
	Regs        Registers
	IME         bool
	EIScheduled bool
	EIDelay     int
	Halted      bool
	Stopped     bool
}

// Snapshot captures the CPU's current state for persistence.
func (c *CPU) Snapshot() State {
	return State{
		Regs:        c.Regs,
		IME:         c.ime,
		EIScheduled: c.eiScheduled,
		EIDelay:     c.eiDelay,
		Halted:      c.halted,
		Stopped:     c.stopped,
	}
}

// Restore replaces the CPU's state with a previously captured snapshot.
func (c *CPU) Restore(s State) {
	c.Regs = s.Regs
	c.ime = s.IME
	c.eiScheduled = s.EIScheduled
	c.eiDelay = s.EIDelay
	c.halted = s.Halted
	c.stopped = s.Stopped
}
