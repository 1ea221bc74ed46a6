// Package shell is the operator loop: read a token, show the number and its
// square, repeat until told to stop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs"

	"github.com/calebcase/q1620"
	"github.com/calebcase/q1620/fixed"
	"github.com/calebcase/q1620/token"
)

// Error is the class of shell errors.
var Error = errs.Class("shell")

// Operator facing text.
const (
	Banner = "--- FPGA Square Root Decoder (Q16.20) ---"
	Hint   = "Type 'exit' to quit."
	Prompt = "Enter Hex Result (e.g., '00 00 A0 00 00'): "
)

// Separator follows every result.
var Separator = strings.Repeat("-", 30)

// Options control what the shell prints.
type Options struct {
	// Precision is the number of decimal places shown.
	Precision int

	// Prompt enables the banner and the per-line prompt.
	Prompt bool
}

// Shell reads tokens from in and writes results to out.
type Shell struct {
	in   io.Reader
	out  io.Writer
	log  zerolog.Logger
	opts Options

	err error
}

// New returns a shell.
func New(in io.Reader, out io.Writer, log zerolog.Logger, opts Options) *Shell {
	return &Shell{
		in:   in,
		out:  out,
		log:  log,
		opts: opts,
	}
}

// Run loops until a stop line ("exit" or "quit") or the end of the input.
// Bad tokens are reported and the loop goes on. Run returns read and write
// errors only.
func (s *Shell) Run() (err error) {
	defer Error.WrapP(&err)

	if s.opts.Prompt {
		s.printf("%s\n%s\n\n", Banner, Hint)
	}

	d := q1620.NewDecoder(s.in)

	for s.err == nil {
		if s.opts.Prompt {
			s.printf("%s", Prompt)
		}

		if !d.Next() {
			if s.opts.Prompt {
				s.printf("\n")
			}
			s.log.Debug().Msg("end of input")

			if d.Err() != nil {
				return d.Err()
			}

			return s.err
		}

		if d.Stop() {
			s.log.Debug().Str("line", d.Line()).Msg("stop")

			return s.err
		}

		if lerr := d.LineErr(); lerr != nil {
			s.reject(d.Line(), lerr)

			continue
		}

		s.show(d.Line(), d.Block())
	}

	return s.err
}

func (s *Shell) show(line string, b fixed.Block) {
	v := b.Float64()

	s.printf("Decimal Result: %.*f\n", s.opts.Precision, v)
	s.printf("Squared Check:  %.*f\n", s.opts.Precision, v*v)
	s.printf("%s\n", Separator)

	ev := s.log.Debug().Str("line", line)
	for _, f := range fixed.Fields {
		ev = ev.Uint64(f.Name, f.Extract(b.Raw()))
	}
	ev.Float64("value", v).Msg("decoded")
}

func (s *Shell) reject(line string, err error) {
	s.printf("%s\n", Diagnostic(err))

	s.log.Info().
		Str("line", line).
		Stringer("kind", token.KindOf(err)).
		Err(err).
		Msg("token rejected")
}

// Diagnostic returns the operator message for a decode failure.
func Diagnostic(err error) string {
	var lerr *token.LengthError
	var derr *token.DigitError

	switch {
	case errors.As(err, &lerr):
		return fmt.Sprintf(
			"Error: Expected %d hex characters, got %d ('%s')",
			lerr.Expected,
			lerr.Observed,
			lerr.Normalized,
		)
	case errors.As(err, &derr):
		return "Error: Invalid Hex characters."
	}

	return "Error: " + strings.TrimSpace(err.Error())
}

// printf writes to out and keeps the first write error.
func (s *Shell) printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}

	_, s.err = fmt.Fprintf(s.out, format, a...)
}
