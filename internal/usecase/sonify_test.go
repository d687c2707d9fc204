package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"FinSound/internal/domain/models"
	"FinSound/internal/domain/repository/mocks"
	"FinSound/internal/services/sonify"
	"FinSound/internal/usecase"
	"FinSound/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	jan2  = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	jan31 = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	source *mocks.MockPriceSource
	out    *mocks.MockAudioOutput
	uc     *usecase.SonifyUseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		source: mocks.NewMockPriceSource(ctrl),
		out:    mocks.NewMockAudioOutput(ctrl),
	}
	f.source.EXPECT().Name().Return("fake").AnyTimes()
	f.uc = usecase.NewSonifyUseCase(
		f.source,
		sonify.NewSequencer(f.out, nil),
		metrics.NewWithRegistry(prometheus.NewRegistry()),
		nil,
	)
	return f
}

func TestCompose(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().
		History(gomock.Any(), models.PriceQuery{Symbol: "AAPL", Start: jan2, End: jan31}).
		Return(models.PriceSeries{1, 5, 3, 9, 2, 7, 4, 8, 6, 0, 3, 5}, nil)

	comp, err := f.uc.Compose(context.Background(), usecase.ComposeParams{Symbol: "AAPL", Start: jan2, End: jan31})
	require.NoError(t, err)

	assert.Equal(t, "AAPL", comp.Symbol)
	assert.Equal(t, "2024-01-02", comp.Start)
	assert.Equal(t, 12, comp.RawCount)
	assert.Equal(t, []float64{1, 5, 3, 9, 2, 7, 4, 8, 0, 5}, comp.Samples)
	require.Len(t, comp.Notes, 10)
	assert.Equal(t, models.NoteB, comp.Notes[3])
	assert.Equal(t, models.NoteC, comp.Notes[8])
	assert.Equal(t, 0.0, comp.Min)
	assert.Equal(t, 9.0, comp.Max)
}

func TestCompose_InvalidRange(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Compose(context.Background(), usecase.ComposeParams{Symbol: "AAPL", Start: jan31, End: jan2})
	require.ErrorIs(t, err, models.ErrInvalidDateRange)
}

func TestCompose_NoDataAndFetchErrorAreEmptyInput(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.source.EXPECT().History(gomock.Any(), gomock.Any()).Return(nil, nil),
		f.source.EXPECT().History(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: timeout")),
	)

	p := usecase.ComposeParams{Symbol: "USDXXX=X", Start: jan2, End: jan31}
	_, err := f.uc.Compose(context.Background(), p)
	require.ErrorIs(t, err, models.ErrEmptyInput)

	_, err = f.uc.Compose(context.Background(), p)
	require.ErrorIs(t, err, models.ErrEmptyInput)
}

func TestPlay(t *testing.T) {
	f := newFixture(t)
	f.out.EXPECT().Play(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	comp := &usecase.Composition{Symbol: "AAPL", Notes: []models.Note{models.NoteC, models.NoteE, models.NoteG}}
	require.NoError(t, f.uc.Play(context.Background(), comp, models.TimbreTrumpet, 0.1))
}

func TestPlay_DeviceFailure(t *testing.T) {
	f := newFixture(t)
	f.out.EXPECT().Play(gomock.Any(), gomock.Any()).Return(errors.New("no device"))

	comp := &usecase.Composition{Symbol: "AAPL", Notes: []models.Note{models.NoteC, models.NoteE}}
	err := f.uc.Play(context.Background(), comp, models.TimbrePiano, 0.1)
	require.ErrorIs(t, err, models.ErrAudioDevice)
}

func TestRender(t *testing.T) {
	f := newFixture(t)
	comp := &usecase.Composition{Symbol: "AAPL", Notes: []models.Note{models.NoteC, models.NoteB}}

	b, err := f.uc.Render(context.Background(), comp, models.TimbreBoth, 0.1)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("RIFF")))
	assert.Len(t, b, 44+2*4410*2)
}

func TestCompose_BlankSymbol(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Compose(context.Background(), usecase.ComposeParams{Symbol: "  ", Start: jan2, End: jan31})
	require.ErrorIs(t, err, models.ErrMissingSymbol)
}
