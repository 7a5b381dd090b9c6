package sink

import (
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/wippyai/fpgaio/config"
	"github.com/wippyai/fpgaio/errors"
)

// Record is one classified point.
type Record struct {
	X     float64
	Y     float64
	Class float64
}

// Sink persists classification records. Writes may be buffered until Flush
// or Close. Close is idempotent.
type Sink interface {
	Write(Record) error
	Flush() error
	Close() error
	Path() string
}

const defaultBase = "fpga_classified_points_"

// DefaultPath returns a fresh, unique file name for format.
func DefaultPath(format string) string {
	name := defaultBase + xid.New().String()
	if format == config.FormatSQLite {
		return name + ".sqlite3"
	}
	return name + ".csv"
}

// Open creates the sink described by cfg and registers its Close to run at
// process exit through atexit.
func Open(cfg config.Sink) (Sink, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath(cfg.Format)
	}

	var (
		s   Sink
		err error
	)
	switch cfg.Format {
	case config.FormatCSV, "":
		s, err = NewCSV(path)
	case config.FormatSQLite:
		s, err = NewSQLite(path)
	default:
		return nil, errors.InvalidInput(errors.PhaseSink, "unknown sink format "+cfg.Format)
	}
	if err != nil {
		return nil, err
	}

	atexit.Register(func() { _ = s.Close() })
	return s, nil
}
