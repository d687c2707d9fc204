package models

import "errors"

var (
	// ErrMissingSymbol means the request named no ticker or currency pair.
	ErrMissingSymbol = errors.New("symbol required")
	// ErrEmptyInput means no price data exists for the requested range or the fetch failed.
	ErrEmptyInput = errors.New("no data")
	// ErrInvalidDateRange means a malformed date or a start after the end.
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrInvalidTimbre means an instrument outside piano, trumpet and both.
	ErrInvalidTimbre = errors.New("instrument must be 'piano', 'trumpet', or 'both'")
	// ErrUnknownNote means a note symbol without a frequency.
	ErrUnknownNote = errors.New("unknown note")
	// ErrAudioDevice wraps failures of the audio output.
	ErrAudioDevice = errors.New("audio device failure")
	// ErrNoNotes means the mapper produced nothing to play.
	ErrNoNotes = errors.New("no notes generated")
)
