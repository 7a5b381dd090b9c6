package sink

import (
	"database/sql"

	// Registers the pure Go "sqlite" driver.
	_ "github.com/glebarez/go-sqlite"
	"github.com/rs/xid"
	"go.uber.org/multierr"

	"github.com/wippyai/fpgaio/errors"
)

const (
	createPoints = `CREATE TABLE IF NOT EXISTS points (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	run   TEXT NOT NULL,
	x     REAL NOT NULL,
	y     REAL NOT NULL,
	class REAL NOT NULL
)`
	insertPoint = `INSERT INTO points (run, x, y, class) VALUES (?, ?, ?, ?)`
)

// SQLite buffers records and inserts them in batches into the points table.
// Every sink instance tags its rows with its own run id.
type SQLite struct {
	db        *sql.DB
	pending   []Record
	path      string
	run       string
	batchSize int
	closed    bool
}

// NewSQLite opens or creates the database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "open "+path)
	}
	if _, err := db.Exec(createPoints); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "create points table")
	}
	return &SQLite{
		db:        db,
		path:      path,
		run:       xid.New().String(),
		batchSize: 1000,
	}, nil
}

func (s *SQLite) Path() string { return s.path }

// Run returns the id stored with every row of this sink.
func (s *SQLite) Run() string { return s.run }

// DB exposes the underlying database.
func (s *SQLite) DB() *sql.DB { return s.db }

// Write buffers a record and flushes once a batch is full.
func (s *SQLite) Write(r Record) error {
	if s.closed {
		return errors.Closed(errors.PhaseSink, s.path)
	}
	s.pending = append(s.pending, r)
	if len(s.pending) >= s.batchSize {
		return s.Flush()
	}
	return nil
}

// Flush inserts all buffered records in one transaction.
func (s *SQLite) Flush() (err error) {
	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "begin")
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()

	stmt, err := tx.Prepare(insertPoint)
	if err != nil {
		return errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "prepare insert")
	}
	defer stmt.Close()

	for _, r := range s.pending {
		if _, err := stmt.Exec(s.run, r.X, r.Y, r.Class); err != nil {
			return errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "insert point")
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.PhaseSink, errors.KindInvalidInput, err, "commit")
	}
	s.pending = nil
	return nil
}

// Close flushes pending records and closes the database.
func (s *SQLite) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return multierr.Append(s.Flush(), s.db.Close())
}
