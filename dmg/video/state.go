package video

// State is the serializable snapshot of the PPU's mode state machine. The
// framebuffer itself is a draw cache and is deliberately excluded: it is
// fully rebuilt the next time a scanline is drawn.
type State struct {
	Mode                 GpuMode
	Line                 int
	Cycles               int
	ModeCounterAux       int
	VBlankLine           int
	PixelCounter         int
	TileCycleCounter     int
	IsScanLineTransfered bool
	WindowLine           int
	WyTriggeredThisFrame bool
}

// Snapshot captures the PPU's current mode-machine state for persistence.
func (g *PPU) Snapshot() State {
	return State{
		Mode:                 g.mode,
		Line:                 g.line,
		Cycles:               g.cycles,
		ModeCounterAux:       g.modeCounterAux,
		VBlankLine:           g.vBlankLine,
		PixelCounter:         g.pixelCounter,
		TileCycleCounter:     g.tileCycleCounter,
		IsScanLineTransfered: g.isScanLineTransfered,
		WindowLine:           g.windowLine,
		WyTriggeredThisFrame: g.wyTriggeredThisFrame,
	}
}

// Restore replaces the PPU's mode-machine state with a previously captured
// snapshot. The framebuffer is left untouched; the caller should expect a
// stale frame until the next scanline redraws it.
func (g *PPU) Restore(s State) {
	g.mode = s.Mode
	g.line = s.Line
	g.cycles = s.Cycles
	g.modeCounterAux = s.ModeCounterAux
	g.vBlankLine = s.VBlankLine
	g.pixelCounter = s.PixelCounter
	g.tileCycleCounter = s.TileCycleCounter
	g.isScanLineTransfered = s.IsScanLineTransfered
	g.windowLine = s.WindowLine
	g.wyTriggeredThisFrame = s.WyTriggeredThisFrame
}
