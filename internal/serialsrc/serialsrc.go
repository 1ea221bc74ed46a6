// Package serialsrc reads operator tokens from a serial port.
package serialsrc

import (
	"errors"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tarm/serial"
	"github.com/zeebo/errs"

	"github.com/calebcase/q1620/internal/config"
)

// Error is the class of serial source errors.
var Error = errs.Class("serial")

// Open opens the port described by cfg. The returned reader retries reads
// that time out without data, so it only returns once bytes arrive, the port
// fails, or it is closed.
func Open(cfg config.Serial, log zerolog.Logger) (io.ReadCloser, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Port,
		Baud:        cfg.Baud,
		Parity:      serial.ParityNone,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, Error.New("open %s: %v", cfg.Port, err)
	}

	log.Info().
		Str("port", cfg.Port).
		Int("baud", cfg.Baud).
		Dur("read_timeout", cfg.ReadTimeout).
		Msg("serial port open")

	return NewReader(port), nil
}

// Reader hides read timeouts of a port.
//
// A port opened with a read timeout reports an expired timeout as an empty
// read, with either no error or io.EOF. Reader retries those until data
// arrives or Close is called.
type Reader struct {
	rc     io.ReadCloser
	closed chan struct{}

	once sync.Once
	err  error
}

// NewReader wraps rc.
func NewReader(rc io.ReadCloser) *Reader {
	return &Reader{
		rc:     rc,
		closed: make(chan struct{}),
	}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	for {
		select {
		case <-r.closed:
			return 0, io.EOF
		default:
		}

		n, err = r.rc.Read(p)
		if n > 0 {
			if errors.Is(err, io.EOF) {
				err = nil
			}

			return n, err
		}

		select {
		case <-r.closed:
			return 0, io.EOF
		default:
		}

		if err == nil || errors.Is(err, io.EOF) {
			continue
		}

		return 0, Error.Wrap(err)
	}
}

// Close closes the port. Pending and later reads return io.EOF.
func (r *Reader) Close() error {
	r.once.Do(func() {
		close(r.closed)
		r.err = r.rc.Close()
	})

	return r.err
}
