package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/wippyai/fpgaio/errors"
)

// Environment overrides, applied after the config file.
const (
	EnvDevicePath  = "FPGAIO_DEVICE_PATH"
	EnvSimulate    = "FPGAIO_SIMULATE"
	EnvLogLevel    = "FPGAIO_LOG_LEVEL"
	EnvLogEncoding = "FPGAIO_LOG_ENCODING"
	EnvSinkFormat  = "FPGAIO_SINK_FORMAT"
	EnvSinkPath    = "FPGAIO_SINK_PATH"
)

// Sink formats.
const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// Device locates the accelerator's register window.
type Device struct {
	Path     string `toml:"path"`
	Base     int64  `toml:"base"`
	Span     uint32 `toml:"span"`
	Simulate bool   `toml:"simulate"`
}

// Log configures the process logger.
type Log struct {
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"`
}

// Sink configures where classification results are stored.
type Sink struct {
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

// Config is the full process configuration.
type Config struct {
	Device Device `toml:"device"`
	Log    Log    `toml:"log"`
	Sink   Sink   `toml:"sink"`
}

// Default returns the configuration of the point classifier on its board.
func Default() Config {
	return Config{
		Device: Device{
			Path: "/dev/mem",
			Base: 0xC002_0000,
			Span: 64,
		},
		Log: Log{
			Level:    "info",
			Encoding: "console",
		},
		Sink: Sink{
			Format: FormatCSV,
		},
	}
}

// Load reads an optional .env file, the TOML file at path (skipped when path
// is empty), then environment overrides, and validates the result.
func Load(path string) (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnvOverrides(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults without consulting the
// environment.
func Parse(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "decode config")
	}
	if err := checkUndecoded(meta, "config"); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "load "+path)
	}
	return checkUndecoded(meta, path)
}

func checkUndecoded(meta toml.MetaData, source string) error {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return errors.InvalidInput(errors.PhaseConfig, "unknown keys in "+source+": "+strings.Join(keys, ", "))
}

// loadDotEnv loads path into the environment if it exists. Variables that
// are already set win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "load "+path)
	}
	return nil
}

func applyEnvOverrides(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookupTrimmed(lookup, EnvDevicePath); ok {
		cfg.Device.Path = v
	}
	if v, ok := lookupTrimmed(lookup, EnvSimulate); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Device.Simulate = b
		}
	}
	if v, ok := lookupTrimmed(lookup, EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookupTrimmed(lookup, EnvLogEncoding); ok {
		cfg.Log.Encoding = strings.ToLower(v)
	}
	if v, ok := lookupTrimmed(lookup, EnvSinkFormat); ok {
		cfg.Sink.Format = strings.ToLower(v)
	}
	if v, ok := lookupTrimmed(lookup, EnvSinkPath); ok {
		cfg.Sink.Path = v
	}
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Validate rejects configurations that cannot describe a usable device,
// logger or sink.
func (c Config) Validate() error {
	if !c.Device.Simulate && c.Device.Path == "" {
		return errors.InvalidInput(errors.PhaseConfig, "device.path is empty")
	}
	if c.Device.Span == 0 {
		return errors.InvalidInput(errors.PhaseConfig, "device.span must be positive")
	}
	if c.Device.Base < 0 {
		return errors.InvalidInput(errors.PhaseConfig, "device.base must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error", "dpanic", "panic", "fatal":
	default:
		return errors.InvalidInput(errors.PhaseConfig, "unknown log.level "+strconv.Quote(c.Log.Level))
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return errors.InvalidInput(errors.PhaseConfig, "unknown log.encoding "+strconv.Quote(c.Log.Encoding))
	}
	switch c.Sink.Format {
	case FormatCSV, FormatSQLite:
	default:
		return errors.InvalidInput(errors.PhaseConfig, "unknown sink.format "+strconv.Quote(c.Sink.Format))
	}
	return nil
}
