package models

import "strings"

// Note is a symbol of the C major diatonic scale.
type Note string

const (
	NoteC Note = "C"
	NoteD Note = "D"
	NoteE Note = "E"
	NoteF Note = "F"
	NoteG Note = "G"
	NoteA Note = "A"
	NoteB Note = "B"
)

// Scale lists the notes in ascending pitch order. Index 0 is the lowest note.
var Scale = [...]Note{NoteC, NoteD, NoteE, NoteF, NoteG, NoteA, NoteB}

var noteFrequencies = map[Note]float64{
	NoteC: 261.63,
	NoteD: 293.66,
	NoteE: 329.63,
	NoteF: 349.23,
	NoteG: 392.00,
	NoteA: 440.00,
	NoteB: 493.88,
}

// Frequency returns the pitch of n in Hz.
func (n Note) Frequency() (float64, bool) {
	f, ok := noteFrequencies[n]
	return f, ok
}

// MiddleNote is used when a series carries no variation.
func MiddleNote() Note { return Scale[len(Scale)/2] }

// NoteNames returns the note symbols as plain strings.
func NoteNames(notes []Note) []string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = string(n)
	}
	return names
}

// NotesString joins notes with ", " for display.
func NotesString(notes []Note) string {
	return strings.Join(NoteNames(notes), ", ")
}
