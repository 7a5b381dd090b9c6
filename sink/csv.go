package sink

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/wippyai/fpgaio/errors"
)

// Header is the first CSV row.
var Header = []string{"x", "y", "class"}

// CSV writes records as comma-separated rows under Header. An existing file
// is truncated.
type CSV struct {
	file   *os.File
	w      *csv.Writer
	path   string
	closed bool
}

// NewCSV creates the file at path and writes the header.
func NewCSV(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "create "+path)
	}
	c := &CSV{file: f, w: csv.NewWriter(f), path: path}
	if err := c.w.Write(Header); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "write header")
	}
	return c, nil
}

func (c *CSV) Path() string { return c.path }

// Write buffers one row.
func (c *CSV) Write(r Record) error {
	if c.closed {
		return errors.Closed(errors.PhaseSink, c.path)
	}
	row := []string{formatFloat(r.X), formatFloat(r.Y), formatFloat(r.Class)}
	if err := c.w.Write(row); err != nil {
		return errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "write "+c.path)
	}
	return nil
}

// Flush writes buffered rows to the file.
func (c *CSV) Flush() error {
	if c.closed {
		return nil
	}
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "flush "+c.path)
	}
	return nil
}

// Close flushes and closes the file.
func (c *CSV) Close() error {
	if c.closed {
		return nil
	}
	err := c.Flush()
	c.closed = true
	if cerr := c.file.Close(); cerr != nil && err == nil {
		err = errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, cerr, "close "+c.path)
	}
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
