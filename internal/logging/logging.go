package logging

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs"
)

// Error is the class of logging errors.
var Error = errs.Class("logging")

const (
	EnvLogLevel     = "Q1620_LOG_LEVEL"
	EnvLogTimestamp = "Q1620_LOG_TIMESTAMP"
	EnvLogNoColor   = "Q1620_LOG_NOCOLOR"
)

// Config controls the console logger.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

// Default returns the runtime logger configuration.
func Default() Config {
	return Config{
		Level:     zerolog.InfoLevel,
		Timestamp: true,
	}
}

// New returns a console logger writing to w. The level names a level as
// accepted by ParseLevel. Environment overrides are read through getenv
// (normally os.Getenv) and take precedence.
func New(w io.Writer, app, level string, getenv func(string) string) (zerolog.Logger, error) {
	cfg := Default()

	if strings.TrimSpace(level) != "" {
		lvl, ok := ParseLevel(level)
		if !ok {
			return zerolog.Nop(), Error.New("unknown log level %q", level)
		}
		cfg.Level = lvl
	}

	ApplyEnv(&cfg, getenv)

	return cfg.Logger(w, app), nil
}

// Logger builds the logger described by cfg.
func (cfg Config) Logger(w io.Writer, app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}

	ctx := zerolog.New(output).Level(cfg.Level).With().Str("app", app)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Logger()
}

// ApplyEnv overrides cfg from the Q1620_LOG_* variables. Unparsable values
// are ignored.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if lvl, ok := ParseLevel(getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
