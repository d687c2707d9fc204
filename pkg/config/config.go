package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

const (
	ModeCLI   = "cli"
	ModeServe = "serve"

	SourceFinanceGo = "finance-go"
	SourceHTTP      = "http"

	AudioOto = "oto"
	AudioWAV = "wav"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Mode        string `yaml:"mode" default:"cli"`
	Log         struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stderr"`
	} `yaml:"log"`
	Server struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		SlowThreshold   time.Duration `yaml:"slow_threshold" default:"2s"`
		RenderRate      struct {
			Capacity     float64 `yaml:"capacity" default:"5"`
			RefillPerSec float64 `yaml:"refill_per_sec" default:"0.5"`
		} `yaml:"render_rate"`
	} `yaml:"server"`
	Source struct {
		Backend string        `yaml:"backend" default:"http"`
		BaseURL string        `yaml:"base_url" default:"https://query1.finance.yahoo.com"`
		Timeout time.Duration `yaml:"timeout" default:"15s"`
	} `yaml:"source"`
	Audio struct {
		Backend string `yaml:"backend" default:"oto"`
		WAVPath string `yaml:"wav_path" default:"finsound.wav"`
	} `yaml:"audio"`
	CLI struct {
		ClearScreen bool `yaml:"clear_screen" default:"true"`
	} `yaml:"cli"`
}

// Default returns a configuration populated from struct defaults only.
func Default() *Config {
	var c Config
	_ = defaults.Set(&c)
	return &c
}

// Load reads and parses a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes on top of the defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// A missing file falls back to the defaults.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		c = Default()
	}

	if v := os.Getenv("FINSOUND_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("FINSOUND_SOURCE"); v != "" {
		c.Source.Backend = v
	}
	if v := os.Getenv("FINSOUND_AUDIO"); v != "" {
		c.Audio.Backend = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeCLI && c.Mode != ModeServe {
		return fmt.Errorf("mode must be '%s' or '%s', got '%s'", ModeCLI, ModeServe, c.Mode)
	}
	if c.Source.Backend != SourceFinanceGo && c.Source.Backend != SourceHTTP {
		return fmt.Errorf("source.backend must be '%s' or '%s', got '%s'", SourceFinanceGo, SourceHTTP, c.Source.Backend)
	}
	if c.Source.Backend == SourceHTTP && c.Source.BaseURL == "" {
		return fmt.Errorf("source.base_url is required for the http backend")
	}
	if c.Audio.Backend != AudioOto && c.Audio.Backend != AudioWAV {
		return fmt.Errorf("audio.backend must be '%s' or '%s', got '%s'", AudioOto, AudioWAV, c.Audio.Backend)
	}
	if c.Audio.Backend == AudioWAV && c.Audio.WAVPath == "" {
		return fmt.Errorf("audio.wav_path is required for the wav backend")
	}
	if c.Mode == ModeServe && c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	return nil
}
