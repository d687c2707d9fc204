package sonify

import (
	"math"
	"testing"

	"FinSound/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_Length(t *testing.T) {
	for _, tc := range []struct {
		duration float64
		want     int
	}{
		{0.1, 4410},
		{0.25, 11025},
		{0.5, 22050},
		{2.0, 88200},
	} {
		wf, err := Synthesize(440, tc.duration, SampleRate, models.TimbrePiano)
		require.NoError(t, err)
		assert.Equal(t, tc.want, wf.Len(), "duration=%v", tc.duration)
		assert.Equal(t, SampleRate, wf.SampleRate)
	}
}

func TestSynthesize_Bounded(t *testing.T) {
	for _, timbre := range models.Timbres {
		wf, err := Synthesize(261.63, 0.5, SampleRate, timbre)
		require.NoError(t, err)
		assert.Equal(t, 0.0, wf.Samples[0])
		for _, s := range wf.Samples {
			require.LessOrEqual(t, math.Abs(s), 1.0)
		}
	}
}

func TestSynthesize_PianoDecays(t *testing.T) {
	wf, err := Synthesize(440, 1, 8000, models.TimbrePiano)
	require.NoError(t, err)
	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range wf.Samples[from:to] {
			m = math.Max(m, math.Abs(s))
		}
		return m
	}
	assert.Greater(t, peak(0, 800), peak(7200, 8000))
}

func TestSynthesize_BothIsClippedSum(t *testing.T) {
	const f, d, sr = 392.0, 0.2, 22050
	p, err := Synthesize(f, d, sr, models.TimbrePiano)
	require.NoError(t, err)
	tr, err := Synthesize(f, d, sr, models.TimbreTrumpet)
	require.NoError(t, err)
	both, err := Synthesize(f, d, sr, models.TimbreBoth)
	require.NoError(t, err)

	require.Equal(t, p.Len(), both.Len())
	for i := range both.Samples {
		want := math.Max(-1, math.Min(1, p.Samples[i]+tr.Samples[i]))
		require.InDelta(t, want, both.Samples[i], 1e-12)
	}
}

func TestSynthesize_InvalidTimbre(t *testing.T) {
	_, err := Synthesize(440, 0.5, SampleRate, models.Timbre("violin"))
	require.ErrorIs(t, err, models.ErrInvalidTimbre)
}

func TestSynthesize_ZeroDuration(t *testing.T) {
	wf, err := Synthesize(440, 0, SampleRate, models.TimbreTrumpet)
	require.NoError(t, err)
	assert.Zero(t, wf.Len())
}
