package sonify

import (
	"math"

	"FinSound/internal/domain/models"
)

// SampleRate is the playback sample rate in Hz.
const SampleRate = 44100

// Synthesize renders one tone of the given frequency and duration.
// The returned samples are clipped to [-1, 1].
func Synthesize(freq, duration float64, sampleRate int, timbre models.Timbre) (models.Waveform, error) {
	var voice func(f, t float64) float64
	switch timbre {
	case models.TimbrePiano:
		voice = piano
	case models.TimbreTrumpet:
		voice = trumpet
	case models.TimbreBoth:
		voice = func(f, t float64) float64 { return piano(f, t) + trumpet(f, t) }
	default:
		return models.Waveform{}, models.ErrInvalidTimbre
	}

	n := int(math.Floor(float64(sampleRate) * duration))
	if n < 0 {
		n = 0
	}
	samples := make([]float64, n)
	dt := 0.0
	if n > 0 {
		dt = duration / float64(n)
	}
	for i := range samples {
		samples[i] = clip(voice(freq, float64(i)*dt))
	}
	return models.Waveform{Samples: samples, SampleRate: sampleRate, Duration: duration}, nil
}

// piano is a sine with an exponential decay envelope.
func piano(f, t float64) float64 {
	return 0.5 * math.Sin(2*math.Pi*f*t) * math.Exp(-3*t)
}

// trumpet adds the second and third harmonics to the fundamental.
func trumpet(f, t float64) float64 {
	return 0.5 * (math.Sin(2*math.Pi*f*t) +
		0.3*math.Sin(2*math.Pi*f*2*t) +
		0.1*math.Sin(2*math.Pi*f*3*t))
}

func clip(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
