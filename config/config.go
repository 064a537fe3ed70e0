package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/slidepath/cost"
	"github.com/katalvlaran/slidepath/slide"
)

// Environment variable names.
const (
	EnvMethod     = "SLIDEPATH_METHOD"
	EnvInstrument = "SLIDEPATH_INSTRUMENT"
	EnvAddr       = "SLIDEPATH_ADDR"
	EnvEnv        = "SLIDEPATH_ENV"
	EnvSentryDSN  = "SENTRY_DSN"

	EnvironmentProduction = "production"
)

// Config holds process-level settings.
type Config struct {
	Environment    string
	Method         string // default objective for the CLI and the API
	InstrumentPath string // optional YAML profile; empty means slide.Tenor
	Addr           string // listen address for -serve
	SentryDSN      string // error reporting for the server; empty disables it
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none
// are given) without overriding variables already set.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Load reads Config from the environment.
func Load() *Config {
	return &Config{
		Environment:    getEnv(EnvEnv, "development"),
		Method:         getEnv(EnvMethod, cost.Distance.String()),
		InstrumentPath: getEnv(EnvInstrument, ""),
		Addr:           getEnv(EnvAddr, ":8080"),
		SentryDSN:      getEnv(EnvSentryDSN, ""),
	}
}

// Instrument returns the configured instrument.
func (c *Config) Instrument() (slide.Instrument, error) {
	if c.InstrumentPath == "" {
		return slide.Tenor(), nil
	}

	return LoadProfile(c.InstrumentPath)
}

// IsProduction reports whether the environment is production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
