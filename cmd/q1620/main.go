package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/calebcase/q1620"
	"github.com/calebcase/q1620/internal/config"
	"github.com/calebcase/q1620/internal/logging"
	"github.com/calebcase/q1620/internal/serialsrc"
	"github.com/calebcase/q1620/internal/shell"
)

type options struct {
	config    string
	source    string
	port      string
	baud      int
	precision int
	logLevel  string
	noPrompt  bool
	encode    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "q1620: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	fs := flag.NewFlagSet("q1620", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.config, "config", "", "path to a TOML config file")
	fs.StringVar(&opts.source, "source", "", "token source: stdin or serial")
	fs.StringVar(&opts.port, "port", "", "serial port name (e.g. /dev/ttyUSB0, COM2)")
	fs.IntVar(&opts.baud, "baud", 0, "serial baud rate")
	fs.IntVar(&opts.precision, "precision", 0, "decimal places shown")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")
	fs.BoolVar(&opts.noPrompt, "no-prompt", false, "do not print the banner and prompt")
	fs.BoolVar(&opts.encode, "encode", false, "print the token for each value argument and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.encode {
		return encode(fs.Args(), stdout)
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		return err
	}

	log, err := logging.New(stderr, "q1620", cfg.LogLevel, getenv)
	if err != nil {
		return err
	}

	in, closeIn, err := openSource(cfg, stdin, log)
	if err != nil {
		return err
	}
	defer closeIn()

	if cfg.Source == config.SourceSerial {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

		done := make(chan struct{})
		defer close(done)
		defer signal.Stop(sigs)

		go closeOnSignal(sigs, done, closeIn, log)
	}

	log.Debug().
		Str("source", string(cfg.Source)).
		Int("precision", cfg.Precision).
		Msg("shell start")

	return shell.New(in, stdout, log, shell.Options{
		Precision: cfg.Precision,
		Prompt:    cfg.Prompt,
	}).Run()
}

// loadConfig reads the config file, if any, then applies the flags that were
// set on the command line.
func loadConfig(fs *flag.FlagSet, opts options) (config.Config, error) {
	cfg := config.Default()

	if opts.config != "" {
		var err error
		cfg, err = config.Load(opts.config)
		if err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = config.ParseSource(opts.source)
		case "port":
			cfg.Serial.Port = opts.port
		case "baud":
			cfg.Serial.Baud = opts.baud
		case "precision":
			cfg.Precision = opts.precision
		case "log-level":
			cfg.LogLevel = opts.logLevel
		case "no-prompt":
			cfg.Prompt = !opts.noPrompt
		}
	})

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func openSource(cfg config.Config, stdin io.Reader, log zerolog.Logger) (io.Reader, func(), error) {
	switch cfg.Source {
	case config.SourceSerial:
		port, err := serialsrc.Open(cfg.Serial, log)
		if err != nil {
			return nil, nil, err
		}

		return port, func() {
			if err := port.Close(); err != nil {
				log.Warn().Err(err).Msg("serial port close")
			}
		}, nil
	}

	return stdin, func() {}, nil
}

// closeOnSignal closes the source when a signal arrives before done is
// closed. A read blocked on the port then returns io.EOF and the shell ends
// as it does at the end of input.
func closeOnSignal(sigs <-chan os.Signal, done <-chan struct{}, closeIn func(), log zerolog.Logger) {
	select {
	case sig := <-sigs:
		log.Info().Stringer("signal", sig).Msg("closing source")
		closeIn()
	case <-done:
	}
}

func encode(values []string, stdout io.Writer) error {
	if len(values) == 0 {
		return fmt.Errorf("encode: no values given")
	}

	e := q1620.NewEncoder(stdout)
	for _, raw := range values {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("encode %q: %w", raw, err)
		}

		if err := e.Encode(v); err != nil {
			return fmt.Errorf("encode %q: %w", raw, err)
		}
	}

	return nil
}
