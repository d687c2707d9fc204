package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
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

var series = models.PriceSeries{1, 5, 3, 9, 2, 7, 4, 8, 6, 0, 3, 5}

type menuFixture struct {
	source *mocks.MockPriceSource
	out    *mocks.MockAudioOutput
	screen *bytes.Buffer
}

func newMenu(t *testing.T, input string, clear bool) (*Menu, *menuFixture) {
	ctrl := gomock.NewController(t)
	f := &menuFixture{
		source: mocks.NewMockPriceSource(ctrl),
		out:    mocks.NewMockAudioOutput(ctrl),
		screen: &bytes.Buffer{},
	}
	f.source.EXPECT().Name().Return("fake").AnyTimes()
	uc := usecase.NewSonifyUseCase(
		f.source,
		sonify.NewSequencer(f.out, nil),
		metrics.NewWithRegistry(prometheus.NewRegistry()),
		nil,
	)
	return NewMenu(strings.NewReader(input), f.screen, uc, nil, clear), f
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestMenu_EquitySession(t *testing.T) {
	m, f := newMenu(t, script(
		"2", "2024-01-02", "2024-01-31", "aapl",
		"1", "0.5",
		"", "",
		"3",
	), false)

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	f.source.EXPECT().
		History(gomock.Any(), models.PriceQuery{Symbol: "AAPL", Start: start, End: end}).
		Return(series, nil)
	f.out.EXPECT().Play(gomock.Any(), gomock.Any()).Return(nil).Times(10)

	require.NoError(t, m.Run(context.Background()))

	screen := f.screen.String()
	assert.Contains(t, screen, "Data mapped to 10 notes: ")
	assert.Contains(t, screen, "Value range: 0.00 - 9.00")
	assert.Contains(t, screen, "Instrument: Piano")
	assert.Contains(t, screen, "Note duration: 0.5 seconds")
	assert.Contains(t, screen, "Sonification complete.")
	assert.Contains(t, screen, "Thanks for using")
	assert.NotContains(t, screen, "\033[2J")
}

func TestMenu_CurrencySymbol(t *testing.T) {
	m, f := newMenu(t, script(
		"1", "2024-01-02", "2024-01-05", "usd", "eur",
		"2", "1",
		"", "",
		"3",
	), false)

	f.source.EXPECT().
		History(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.PriceQuery) (models.PriceSeries, error) {
			assert.Equal(t, "USDEUR=X", q.Symbol)
			return models.PriceSeries{0.91, 0.92, 0.9}, nil
		})
	f.out.EXPECT().Play(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, f.screen.String(), "Instrument: Trumpet")
}

func TestMenu_RepromptsInvalidInput(t *testing.T) {
	m, f := newMenu(t, script(
		"9",
		"2",
		"2024-13-01", "2024-01-31",
		"2024-02-01", "2024-01-31",
		"2024-01-02", "2024-01-31",
		"TSLA",
		"x", "5", "3",
		"2.1", "abc", "0.1",
		"", "",
		"3",
	), true)

	f.source.EXPECT().History(gomock.Any(), gomock.Any()).Return(series, nil)
	f.out.EXPECT().Play(gomock.Any(), gomock.Any()).Return(nil).Times(10)

	require.NoError(t, m.Run(context.Background()))

	screen := f.screen.String()
	assert.Contains(t, screen, "Invalid option.")
	assert.Contains(t, screen, "Invalid date format.")
	assert.Contains(t, screen, "must not be after the end date")
	assert.Contains(t, screen, "Enter a valid number.")
	assert.Contains(t, screen, "between 0.1 and 2.0 seconds")
	assert.Contains(t, screen, "Instrument: Both")
	assert.Contains(t, screen, "Note duration: 0.1 seconds")
	assert.Contains(t, screen, "\033[H\033[2J")
}

func TestMenu_NoDataReturnsToMenu(t *testing.T) {
	m, f := newMenu(t, script(
		"2", "2024-01-02", "2024-01-31", "NOPE",
		"",
		"3",
	), false)

	f.source.EXPECT().History(gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, f.screen.String(), "No data found")
	assert.Contains(t, f.screen.String(), "Thanks for using")
}

func TestMenu_PlaybackFailureReturnsToMenu(t *testing.T) {
	m, f := newMenu(t, script(
		"2", "2024-01-02", "2024-01-31", "AAPL",
		"1", "0.5",
		"", "",
		"3",
	), false)

	f.source.EXPECT().History(gomock.Any(), gomock.Any()).Return(series, nil)
	f.out.EXPECT().Play(gomock.Any(), gomock.Any()).Return(errors.New("device busy"))

	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, f.screen.String(), "Playback failed")
	assert.NotContains(t, f.screen.String(), "Sonification complete.")
}

func TestMenu_EndOfInputExits(t *testing.T) {
	m, _ := newMenu(t, "2\n2024-01-02\n", false)
	require.NoError(t, m.Run(context.Background()))
}

func TestMenu_CancelledContext(t *testing.T) {
	m, _ := newMenu(t, script("3"), false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, m.Run(ctx), context.Canceled)
}

func TestMenu_BlankTickerReturnsToMenu(t *testing.T) {
	m, f := newMenu(t, script(
		"2", "2024-01-02", "2024-01-31", "",
		"",
		"3",
	), false)

	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, f.screen.String(), "A symbol is required.")
}
