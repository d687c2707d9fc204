package sonify

import (
	"errors"
	"math"

	"FinSound/internal/domain/models"
)

// ErrNonFiniteSample is returned by Notes when a sample is NaN or infinite.
var ErrNonFiniteSample = errors.New("sample is not a finite number")

// Notes maps samples linearly onto the scale: the minimum becomes C and the
// maximum becomes B. Positions are rounded half to even. A series without
// variation maps every sample to the middle note.
func Notes(samples []float64) ([]models.Note, error) {
	out := make([]models.Note, 0, len(samples))
	if len(samples) == 0 {
		return out, nil
	}
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFiniteSample
		}
	}

	lo, hi, _ := models.Bounds(samples)
	if lo == hi {
		mid := models.MiddleNote()
		for range samples {
			out = append(out, mid)
		}
		return out, nil
	}

	top := float64(len(models.Scale) - 1)
	slope := top / (hi - lo)
	for _, v := range samples {
		out = append(out, models.Scale[position(v, lo, hi, slope, top)])
	}
	return out, nil
}

// position returns the scale index of v. The extremes are pinned to the scale
// ends; a range too narrow or too wide for float64 falls back to the nearer end.
func position(v, lo, hi, slope, top float64) int {
	switch v {
	case lo:
		return 0
	case hi:
		return int(top)
	}
	pos := math.RoundToEven((v - lo) * slope)
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		if v-lo < hi-v {
			return 0
		}
		return int(top)
	}
	if pos < 0 {
		return 0
	}
	if pos > top {
		return int(top)
	}
	return int(pos)
}

// MapToNotes is Notes with malformed input degraded to an empty result.
func MapToNotes(samples []float64) []models.Note {
	notes, err := Notes(samples)
	if err != nil {
		return []models.Note{}
	}
	return notes
}
