package models

import (
	"fmt"
	"strings"
)

// Timbre selects the synthesis formula used for a tone.
type Timbre string

const (
	TimbrePiano   Timbre = "piano"
	TimbreTrumpet Timbre = "trumpet"
	TimbreBoth    Timbre = "both"
)

// Timbres is the menu order of the supported instruments.
var Timbres = []Timbre{TimbrePiano, TimbreTrumpet, TimbreBoth}

// Valid reports whether t is one of the supported instruments.
func (t Timbre) Valid() bool {
	switch t {
	case TimbrePiano, TimbreTrumpet, TimbreBoth:
		return true
	}
	return false
}

// Title returns the capitalized instrument name.
func (t Timbre) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// ParseTimbre parses a case-insensitive instrument name.
func ParseTimbre(s string) (Timbre, error) {
	t := Timbre(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimbre, s)
	}
	return t, nil
}
