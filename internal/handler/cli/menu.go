package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"FinSound/internal/domain/models"
	"FinSound/internal/usecase"
	xhttp "FinSound/pkg/http"
	applogger "FinSound/pkg/logger"
	"FinSound/pkg/util"
)

const (
	optionCurrency = "1"
	optionEquity   = "2"
	optionExit     = "3"
)

// Menu is the interactive terminal front end.
type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	uc     *usecase.SonifyUseCase
	logger *applogger.Logger
	clear  bool
}

func NewMenu(in io.Reader, out io.Writer, uc *usecase.SonifyUseCase, l *applogger.Logger, clearScreen bool) *Menu {
	if l == nil {
		l = applogger.NewNop()
	}
	return &Menu{in: bufio.NewScanner(in), out: out, uc: uc, logger: l, clear: clearScreen}
}

// Run shows the main menu until the user exits or input ends.
// Errors of a single session are reported and the menu is shown again.
func (m *Menu) Run(ctx context.Context) error {
	m.clearScreen()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printf("\n===== Financial Data Sonifier =====\n")
		m.printf("Turns currency or stock prices into sound so you can hear how a market moved.\n")
		m.printf("What would you like to sonify?\n")
		m.printf("1. Currencies (e.g. USD to EUR)\n")
		m.printf("2. Company stocks (e.g. AAPL, TSLA)\n")
		m.printf("3. Exit\n")

		option, err := m.prompt("Select an option: ")
		if err != nil {
			return ignoreEOF(err)
		}
		switch option {
		case optionExit:
			m.printf("Thanks for using the Financial Data Sonifier!\n")
			return nil
		case optionCurrency, optionEquity:
		default:
			m.printf("Invalid option.\n")
			continue
		}

		if err := m.session(ctx, option); err != nil {
			return ignoreEOF(err)
		}
	}
}

// session runs one fetch → compose → play round. Only input errors are returned.
func (m *Menu) session(ctx context.Context, option string) error {
	start, end, err := m.readDateRange()
	if err != nil {
		return err
	}

	var symbol string
	if option == optionCurrency {
		base, err := m.prompt("Enter the base currency (e.g. USD): ")
		if err != nil {
			return err
		}
		target, err := m.prompt("Enter the target currency (e.g. EUR): ")
		if err != nil {
			return err
		}
		symbol = models.CurrencySymbol(base, target)
	} else {
		ticker, err := m.prompt("Enter the stock ticker (e.g. AAPL): ")
		if err != nil {
			return err
		}
		symbol = strings.ToUpper(ticker)
	}

	comp, err := m.uc.Compose(ctx, usecase.ComposeParams{Symbol: symbol, Start: start, End: end})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMissingSymbol):
			m.printf("A symbol is required.\n")
		case errors.Is(err, models.ErrEmptyInput):
			m.printf("No data found for the selected range. Please try again.\n")
		case errors.Is(err, models.ErrNoNotes):
			m.printf("Could not generate notes for the selected data.\n")
		default:
			m.printf("Error processing data: %v\n", err)
		}
		return m.pauseAndClear("\nPress Enter to continue...")
	}

	m.printf("\nConfigure the sonification:\n")
	timbre, err := m.readTimbre()
	if err != nil {
		return err
	}
	duration, err := m.readDuration(timbre)
	if err != nil {
		return err
	}

	m.printf("\nGenerating sonification...\n\n")
	m.printf("Data mapped to %d notes: %s\n", len(comp.Notes), models.NotesString(comp.Notes))
	m.printf("Value range: %.2f - %.2f\n", comp.Min, comp.Max)
	m.printf("Instrument: %s\n", timbre.Title())
	m.printf("Note duration: %g seconds\n", duration)

	if _, err := m.prompt("\nPress Enter to listen to the sonification..."); err != nil {
		return err
	}
	if err := m.uc.Play(ctx, comp, timbre, duration); err != nil {
		m.printf("Playback failed: %v\n", err)
		return m.pauseAndClear("\nPress Enter to continue...")
	}
	m.printf("\nSonification complete.\n")
	return m.pauseAndClear("\nPress Enter to return to the main menu...")
}

func (m *Menu) readDateRange() (time.Time, time.Time, error) {
	for {
		m.printf("\nEnter a date range to analyze (format: YYYY-MM-DD)\n")
		s, err := m.prompt("Start date: ")
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		e, err := m.prompt("End date: ")
		if err != nil {
			return time.Time{}, time.Time{}, err
		}

		start, okStart := util.ParseDate(s)
		end, okEnd := util.ParseDate(e)
		if !okStart || !okEnd {
			m.printf("Invalid date format. Use YYYY-MM-DD.\n")
			continue
		}
		if start.After(end) {
			m.printf("The start date must not be after the end date.\n")
			continue
		}
		return start, end, nil
	}
}

func (m *Menu) readTimbre() (models.Timbre, error) {
	for i, t := range models.Timbres {
		m.printf("%d. %s\n", i+1, t.Title())
	}
	for {
		s, err := m.prompt(fmt.Sprintf("Select an instrument (1-%d): ", len(models.Timbres)))
		if err != nil {
			return "", err
		}
		choice := util.ParseIntDefault(s, -1)
		if choice == -1 {
			m.printf("Enter a valid number.\n")
			continue
		}
		if choice < 1 || choice > len(models.Timbres) {
			m.printf("Invalid option.\n")
			continue
		}
		return models.Timbres[choice-1], nil
	}
}

func (m *Menu) readDuration(timbre models.Timbre) (float64, error) {
	for {
		s, err := m.prompt("Note duration (0.1-2.0 seconds): ")
		if err != nil {
			return 0, err
		}
		d, ok := util.ParseFloat(s)
		if !ok {
			m.printf("Enter a valid number.\n")
			continue
		}
		req := &models.PlaybackRequest{Instrument: string(timbre), Duration: d}
		if verrs := xhttp.Validate(context.Background(), req); len(verrs) > 0 {
			m.logger.Debug("duration rejected", applogger.Float64("duration", d), applogger.String("reason", verrs[0].Message))
			m.printf("The duration must be between 0.1 and 2.0 seconds.\n")
			continue
		}
		return d, nil
	}
}

func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) pauseAndClear(label string) error {
	if _, err := m.prompt(label); err != nil {
		return err
	}
	m.clearScreen()
	return nil
}

func (m *Menu) clearScreen() {
	if m.clear {
		m.printf("\033[H\033[2J")
	}
}

func (m *Menu) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(m.out, format, a...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
