package sonify

import (
	"context"
	"fmt"

	"FinSound/internal/domain/models"
	"FinSound/internal/domain/repository"
	"FinSound/pkg/logger"
)

// Sequencer plays notes one after another on an audio output.
type Sequencer struct {
	out        repository.AudioOutput
	logger     *logger.Logger
	sampleRate int
}

// NewSequencer creates a Sequencer that plays at SampleRate.
func NewSequencer(out repository.AudioOutput, l *logger.Logger) *Sequencer {
	if l == nil {
		l = logger.NewNop()
	}
	return &Sequencer{out: out, logger: l, sampleRate: SampleRate}
}

// Play synthesizes each note and blocks until the output has played it
// before moving on. It returns the number of notes played. An output
// failure stops the sequence; notes already played are not repeated.
func (s *Sequencer) Play(ctx context.Context, notes []models.Note, timbre models.Timbre, duration float64) (int, error) {
	if !timbre.Valid() {
		return 0, fmt.Errorf("play: %w", models.ErrInvalidTimbre)
	}
	for i, n := range notes {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		wf, err := s.tone(n, timbre, duration)
		if err != nil {
			return i, err
		}
		s.logger.Debug("playing note",
			logger.Int("index", i),
			logger.String("note", string(n)),
			logger.Int("samples", wf.Len()),
		)
		if err := s.out.Play(ctx, wf); err != nil {
			if ctx.Err() != nil {
				return i, ctx.Err()
			}
			return i, fmt.Errorf("%w: note %d (%s): %v", models.ErrAudioDevice, i, n, err)
		}
	}
	return len(notes), nil
}

// Render concatenates the tones of all notes into a single waveform.
func (s *Sequencer) Render(notes []models.Note, timbre models.Timbre, duration float64) (models.Waveform, error) {
	if !timbre.Valid() {
		return models.Waveform{}, fmt.Errorf("render: %w", models.ErrInvalidTimbre)
	}
	out := models.Waveform{SampleRate: s.sampleRate}
	for _, n := range notes {
		wf, err := s.tone(n, timbre, duration)
		if err != nil {
			return models.Waveform{}, err
		}
		out.Samples = append(out.Samples, wf.Samples...)
		out.Duration += wf.Duration
	}
	return out, nil
}

func (s *Sequencer) tone(n models.Note, timbre models.Timbre, duration float64) (models.Waveform, error) {
	freq, ok := n.Frequency()
	if !ok {
		return models.Waveform{}, fmt.Errorf("%w: %q", models.ErrUnknownNote, n)
	}
	return Synthesize(freq, duration, s.sampleRate, timbre)
}
