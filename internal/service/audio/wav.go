package audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"FinSound/internal/domain/models"
)

const (
	channelCount  = 1
	wavHeaderSize = 44
	bitsPerSample = 16
)

// EncodeWAV writes wf as a 16-bit PCM mono RIFF/WAVE stream.
func EncodeWAV(w io.Writer, wf models.Waveform) error {
	if wf.SampleRate <= 0 {
		return fmt.Errorf("wav: invalid sample rate %d", wf.SampleRate)
	}
	dataSize := uint32(len(wf.Samples) * bitsPerSample / 8)
	blockAlign := uint16(channelCount * bitsPerSample / 8)

	header := make([]byte, wavHeaderSize)
	copy(header[0:], "RIFF")
	binary.LittleEndian.PutUint32(header[4:], 36+dataSize)
	copy(header[8:], "WAVE")
	copy(header[12:], "fmt ")
	binary.LittleEndian.PutUint32(header[16:], 16) // PCM chunk size
	binary.LittleEndian.PutUint16(header[20:], 1)  // PCM
	binary.LittleEndian.PutUint16(header[22:], channelCount)
	binary.LittleEndian.PutUint32(header[24:], uint32(wf.SampleRate))
	binary.LittleEndian.PutUint32(header[28:], uint32(wf.SampleRate)*uint32(blockAlign))
	binary.LittleEndian.PutUint16(header[32:], blockAlign)
	binary.LittleEndian.PutUint16(header[34:], bitsPerSample)
	copy(header[36:], "data")
	binary.LittleEndian.PutUint32(header[40:], dataSize)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("wav header: %w", err)
	}

	data := make([]byte, dataSize)
	for i, s := range wf.Samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(toPCM16(s)))
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("wav data: %w", err)
	}
	return nil
}

func toPCM16(s float64) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(math.Round(s * math.MaxInt16))
}

// WAVRecorder collects everything it is asked to play and writes a single
// WAV file on Close. It stands in for a sound device on headless machines.
type WAVRecorder struct {
	mu   sync.Mutex
	path string
	wf   models.Waveform
}

// NewWAVRecorder creates a recorder writing to path.
func NewWAVRecorder(path string) *WAVRecorder {
	return &WAVRecorder{path: path}
}

// Play appends wf to the recording.
func (r *WAVRecorder) Play(_ context.Context, wf models.Waveform) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.wf.SampleRate == 0 {
		r.wf.SampleRate = wf.SampleRate
	}
	if wf.SampleRate != r.wf.SampleRate {
		return fmt.Errorf("sample rate %d differs from recording rate %d", wf.SampleRate, r.wf.SampleRate)
	}
	r.wf.Samples = append(r.wf.Samples, wf.Samples...)
	r.wf.Duration += wf.Duration
	return nil
}

// Close writes the recording. Nothing is written when nothing was played.
func (r *WAVRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.wf.Len() == 0 {
		return nil
	}
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", r.path, err)
	}
	if err := EncodeWAV(f, r.wf); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
