//go:build wireinject
// +build wireinject

package di

import (
	"FinSound/pkg/config"
	"FinSound/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvidePriceSource,
		ProvideAudioOutput,

		// Use cases
		ProvideSequencer,
		ProvideSonifyUseCase,

		// Front ends
		ProvideMenu,
		ProvideRateLimiter,
		ProvideHTTPHandler,

		ProvideApp,
	)
	return &server.App{}, nil
}
