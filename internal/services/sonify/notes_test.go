package sonify

import (
	"math"
	"testing"

	"FinSound/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToNotes_Empty(t *testing.T) {
	notes := MapToNotes([]float64{})
	require.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestMapToNotes_ConstantSeries(t *testing.T) {
	assert.Equal(t,
		[]models.Note{models.NoteF, models.NoteF, models.NoteF, models.NoteF},
		MapToNotes([]float64{5, 5, 5, 5}))
	assert.Equal(t, []models.Note{models.NoteF}, MapToNotes([]float64{-3.5}))
}

func TestMapToNotes_Ramp(t *testing.T) {
	got := MapToNotes([]float64{10, 20, 30, 40, 50, 60, 70})
	assert.Equal(t, models.Scale[:], got)
}

func TestMapToNotes_RoundHalfToEven(t *testing.T) {
	got := MapToNotes([]float64{0, 6, 0.5, 1.5, 2.5, 3.5})
	assert.Equal(t, []models.Note{
		models.NoteC, models.NoteB, models.NoteC, models.NoteE, models.NoteE, models.NoteG,
	}, got)
}

func TestMapToNotes_ExtremaMapToScaleEnds(t *testing.T) {
	in := []float64{1.0812, 1.0855, 1.0799, 1.0901, 1.0843, 1.0777, 1.0820}
	got := MapToNotes(in)
	require.Len(t, got, len(in))
	assert.Equal(t, models.NoteC, got[5])
	assert.Equal(t, models.NoteB, got[3])
	for _, n := range got {
		assert.Contains(t, models.Scale[:], n)
	}
}

func TestNotes_NonFiniteInput(t *testing.T) {
	_, err := Notes([]float64{1, math.NaN(), 3})
	require.ErrorIs(t, err, ErrNonFiniteSample)

	assert.Empty(t, MapToNotes([]float64{1, math.Inf(1)}))
}

func TestMapToNotes_ExtremeRanges(t *testing.T) {
	tiny := MapToNotes([]float64{0, 5e-324, 0})
	assert.Equal(t, []models.Note{models.NoteC, models.NoteB, models.NoteC}, tiny)

	wide := MapToNotes([]float64{-1e308, 1e308, 0})
	require.Len(t, wide, 3)
	assert.Equal(t, models.NoteC, wide[0])
	assert.Equal(t, models.NoteB, wide[1])
	assert.Contains(t, models.Scale[:], wide[2])

	notes, err := Notes([]float64{-math.MaxFloat64, math.MaxFloat64})
	require.NoError(t, err)
	assert.Equal(t, []models.Note{models.NoteC, models.NoteB}, notes)
}
