package oto

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"FinSound/internal/domain/models"

	otov2 "github.com/hajimehoshi/oto/v2"
)

const (
	channelCount = 1
	pollInterval = 10 * time.Millisecond
)

// Output plays waveforms on the default sound device.
// oto allows one context per process, so it is created on the first Play
// and every later waveform must use the same sample rate.
type Output struct {
	mu         sync.Mutex
	ctx        *otov2.Context
	sampleRate int
}

// NewOutput creates an output; the device is opened lazily.
func NewOutput() *Output {
	return &Output{}
}

func (o *Output) context(sampleRate int) (*otov2.Context, error) {
	if o.ctx != nil {
		if sampleRate != o.sampleRate {
			return nil, fmt.Errorf("sample rate %d differs from device rate %d", sampleRate, o.sampleRate)
		}
		return o.ctx, nil
	}
	ctx, ready, err := otov2.NewContext(sampleRate, channelCount, otov2.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	o.ctx = ctx
	o.sampleRate = sampleRate
	return ctx, nil
}

// Play blocks until wf has been played or ctx is done.
func (o *Output) Play(ctx context.Context, wf models.Waveform) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if wf.Len() == 0 {
		return nil
	}
	octx, err := o.context(wf.SampleRate)
	if err != nil {
		return err
	}

	player := octx.NewPlayer(bytes.NewReader(encodeFloat32LE(wf.Samples)))
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
	if err := player.Err(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	return octx.Err()
}

// Close releases nothing; oto keeps its context for the process lifetime.
func (o *Output) Close() error { return nil }

// encodeFloat32LE converts samples to interleaved float32 little-endian PCM.
func encodeFloat32LE(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := math.Float32bits(float32(s))
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v >> 16)
		buf[i*4+3] = byte(v >> 24)
	}
	return buf
}
