package audio

// bandBufferKernel is a short symmetric low-pass FIR kernel convolved over
// the mixer's decimated output. The hardware-rate mixer already averages
// every sample over one host sample period (a boxcar filter); that leaves a
// visible zipper/aliasing artifact whenever a channel's duty, envelope or
// wave position changes faster than the decimation rate. Passing the
// boxcar output through this kernel rolls off the residual high-frequency
// energy a full windowed-sinc resampler would otherwise remove, at a
// fraction of the cost.
var bandBufferKernel = [3]float64{0.25, 0.5, 0.25}

// BandBuffer band-limits a stream of already-decimated PCM samples one
// sample at a time. Each output lane (left, right) owns its own instance so
// the two channels don't bleed into each other.
type BandBuffer struct {
	history [len(bandBufferKernel) - 1]float64
}

// Push band-limits the next raw sample and returns the filtered value.
func (b *BandBuffer) Push(sample float64) float64 {
	taps := append(b.history[:0:0], b.history[0], b.history[1], sample)
	out := taps[0]*bandBufferKernel[0] + taps[1]*bandBufferKernel[1] + taps[2]*bandBufferKernel[2]
	b.history[0], b.history[1] = taps[1], taps[2]
	return out
}

// Reset clears the filter's history. The APU calls it while NR52 has audio
// powered off, so a stale history cannot click audibly into the first
// samples after power comes back on.
func (b *BandBuffer) Reset() {
	b.history[0], b.history[1] = 0, 0
}
