package di

import (
	"fmt"
	"os"

	"FinSound/internal/domain/repository"
	"FinSound/internal/handler/api"
	"FinSound/internal/handler/cli"
	"FinSound/internal/service/audio"
	"FinSound/internal/service/audio/oto"
	"FinSound/internal/service/ratelimit"
	"FinSound/internal/service/yahoo"
	"FinSound/internal/services/sonify"
	"FinSound/internal/usecase"
	"FinSound/pkg/config"
	xhttp "FinSound/pkg/http"
	applogger "FinSound/pkg/logger"
	"FinSound/pkg/metrics"
	"FinSound/pkg/server"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Recorder {
	return metrics.New()
}

// ProvidePriceSource selects the price history backend.
func ProvidePriceSource(cfg *config.Config, l *applogger.Logger) (repository.PriceSource, error) {
	switch cfg.Source.Backend {
	case config.SourceFinanceGo:
		l.Debug("price source", applogger.String("backend", cfg.Source.Backend))
		return yahoo.NewChartSource(), nil
	case config.SourceHTTP:
		l.Debug("price source", applogger.String("backend", cfg.Source.Backend), applogger.String("base_url", cfg.Source.BaseURL))
		client := xhttp.NewClient(xhttp.WithTimeout(cfg.Source.Timeout))
		return yahoo.NewHTTPSource(cfg.Source.BaseURL, client), nil
	default:
		return nil, fmt.Errorf("unknown source backend %q", cfg.Source.Backend)
	}
}

// ProvideAudioOutput selects the sound device or the WAV recorder.
func ProvideAudioOutput(cfg *config.Config) (repository.AudioOutput, error) {
	switch cfg.Audio.Backend {
	case config.AudioOto:
		return oto.NewOutput(), nil
	case config.AudioWAV:
		return audio.NewWAVRecorder(cfg.Audio.WAVPath), nil
	default:
		return nil, fmt.Errorf("unknown audio backend %q", cfg.Audio.Backend)
	}
}

func ProvideSequencer(out repository.AudioOutput, l *applogger.Logger) *sonify.Sequencer {
	return sonify.NewSequencer(out, l)
}

func ProvideSonifyUseCase(
	source repository.PriceSource,
	seq *sonify.Sequencer,
	rec repository.Recorder,
	l *applogger.Logger,
) *usecase.SonifyUseCase {
	return usecase.NewSonifyUseCase(source, seq, rec, l)
}

// ProvideMenu attaches the interactive menu to the process terminal.
func ProvideMenu(cfg *config.Config, uc *usecase.SonifyUseCase, l *applogger.Logger) *cli.Menu {
	return cli.NewMenu(os.Stdin, os.Stdout, uc, l, cfg.CLI.ClearScreen)
}

func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.Server.RenderRate.Capacity, cfg.Server.RenderRate.RefillPerSec)
}

// ProvideHTTPHandler creates the Echo routes for serve mode.
func ProvideHTTPHandler(l *applogger.Logger, uc *usecase.SonifyUseCase, rl *ratelimit.Limiter) xhttp.Handler {
	return api.NewSonifyEchoHandler(l, uc, rl)
}

// ProvideApp creates the application runner.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	menu *cli.Menu,
	handler xhttp.Handler,
	out repository.AudioOutput,
) *server.App {
	return server.New(cfg, l, menu, handler, out)
}
