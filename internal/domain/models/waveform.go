package models

// Waveform is a mono buffer of amplitude samples in [-1, 1].
type Waveform struct {
	Samples    []float64
	SampleRate int
	Duration   float64 // seconds
}

// Len returns the number of samples.
func (w Waveform) Len() int { return len(w.Samples) }
