package config

import (
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"
)

// Error is the class of config errors.
var Error = errs.Class("config")

// Source names where tokens are read from.
type Source string

// Sources.
const (
	SourceStdin  Source = "stdin"
	SourceSerial Source = "serial"
)

// ParseSource returns the source named by s, ignoring case and surrounding
// whitespace. Validate rejects names that are not a known source.
func ParseSource(s string) Source {
	return Source(strings.ToLower(strings.TrimSpace(s)))
}

// MaxPrecision is the largest number of decimal places shown.
const MaxPrecision = 15

// Serial configures the serial port source.
type Serial struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
}

// Config is the shell configuration.
type Config struct {
	Source    Source
	Serial    Serial
	Precision int
	Prompt    bool
	LogLevel  string
}

// Default returns the configuration used when no file or flag says
// otherwise.
func Default() Config {
	return Config{
		Source: SourceStdin,
		Serial: Serial{
			Baud:        115200,
			ReadTimeout: 500 * time.Millisecond,
		},
		Precision: 6,
		Prompt:    true,
		LogLevel:  "info",
	}
}

type fileConfig struct {
	Source    string `toml:"source"`
	Precision int    `toml:"precision"`
	Prompt    bool   `toml:"prompt"`
	LogLevel  string `toml:"log_level"`

	Serial struct {
		Port        string `toml:"port"`
		Baud        int    `toml:"baud"`
		ReadTimeout string `toml:"read_timeout"`
	} `toml:"serial"`
}

// Load reads the TOML file at path over Default and validates the result.
func Load(path string) (cfg Config, err error) {
	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, Error.New("load %s: %v", path, err)
	}

	return apply(raw, meta)
}

// Parse is like Load but reads the TOML document from data.
func Parse(data string) (cfg Config, err error) {
	var raw fileConfig

	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, Error.New("parse: %v", err)
	}

	return apply(raw, meta)
}

func apply(raw fileConfig, meta toml.MetaData) (cfg Config, err error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)

		return Config{}, Error.New("unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg = Default()

	if meta.IsDefined("source") {
		cfg.Source = ParseSource(raw.Source)
	}

	if meta.IsDefined("precision") {
		cfg.Precision = raw.Precision
	}

	if meta.IsDefined("prompt") {
		cfg.Prompt = raw.Prompt
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("serial", "port") {
		cfg.Serial.Port = strings.TrimSpace(raw.Serial.Port)
	}

	if meta.IsDefined("serial", "baud") {
		cfg.Serial.Baud = raw.Serial.Baud
	}

	if meta.IsDefined("serial", "read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Serial.ReadTimeout))
		if err != nil {
			return Config{}, Error.New("parse serial.read_timeout: %v", err)
		}
		cfg.Serial.ReadTimeout = d
	}

	err = Validate(cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks cfg for values the shell cannot run with.
func Validate(cfg Config) error {
	switch cfg.Source {
	case SourceStdin:
	case SourceSerial:
		if strings.TrimSpace(cfg.Serial.Port) == "" {
			return Error.New("serial source requires serial.port")
		}
		if cfg.Serial.Baud <= 0 {
			return Error.New("invalid serial.baud: %d", cfg.Serial.Baud)
		}
		if cfg.Serial.ReadTimeout < 0 {
			return Error.New("invalid serial.read_timeout: %v", cfg.Serial.ReadTimeout)
		}
	default:
		return Error.New("unknown source %q (supported: stdin, serial)", cfg.Source)
	}

	if cfg.Precision < 0 || cfg.Precision > MaxPrecision {
		return Error.New("precision out of range [0, %d]: %d", MaxPrecision, cfg.Precision)
	}

	return nil
}
