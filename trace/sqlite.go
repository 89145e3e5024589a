package trace

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DB_BATCH_SIZE is the number of events buffered before an insert transaction.
const DB_BATCH_SIZE = 4096

// DBTracer records events into a SQLite database, one row per event.
// Each tracer writes under its own run id, so many runs can share a file.
type DBTracer struct {
	*sql.DB
	statement *sql.Stmt

	runID     string
	seq       int
	events    []Event
	batchSize int
	owned     bool
	closed    bool
	err       error
}

var _ Tracer = (*DBTracer)(nil)

// NewDBTracer opens (or creates) the SQLite database at path.
// Buffered events are flushed when the process exits through atexit.
func NewDBTracer(path string) (t *DBTracer, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return
	}

	t, err = NewDBTracerWithDB(db)
	if err != nil {
		db.Close()
		return
	}
	t.owned = true

	atexit.Register(func() { t.Close() })

	return
}

// NewDBTracerWithDB records into an already open database.
// The database is not closed by Close.
func NewDBTracerWithDB(db *sql.DB) (t *DBTracer, err error) {
	t = &DBTracer{
		DB:        db,
		runID:     xid.New().String(),
		batchSize: DB_BATCH_SIZE,
	}

	err = t.createTable()
	if err != nil {
		return
	}

	t.statement, err = t.Prepare(`INSERT INTO trace
		(run_id, seq, kind, line, text, address, value, label, registers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	return
}

func (t *DBTracer) createTable() (err error) {
	_, err = t.Exec(`CREATE TABLE IF NOT EXISTS trace (
		run_id    TEXT NOT NULL,
		seq       INTEGER NOT NULL,
		kind      TEXT NOT NULL,
		line      INTEGER,
		text      TEXT,
		address   INTEGER,
		value     INTEGER,
		label     TEXT,
		registers TEXT,
		PRIMARY KEY (run_id, seq)
	)`)

	return
}

// RunID returns the identifier of the rows written by this tracer.
func (t *DBTracer) RunID() string {
	return t.runID
}

func (t *DBTracer) Trace(ev Event) {
	if t.closed {
		return
	}

	t.events = append(t.events, ev)
	if len(t.events) >= t.batchSize {
		t.Flush()
	}
}

// Flush writes all buffered events.
// The first error encountered is sticky and returned by every later call.
func (t *DBTracer) Flush() (err error) {
	if t.err != nil || len(t.events) == 0 {
		return t.err
	}

	tx, err := t.Begin()
	if err != nil {
		t.err = err
		return
	}

	stmt := tx.Stmt(t.statement)
	for _, ev := range t.events {
		_, err = stmt.Exec(
			t.runID,
			t.seq,
			ev.Kind.String(),
			ev.LineNo,
			ev.Text,
			int64(ev.Address),
			int64(ev.Value),
			ev.Label,
			joinRegisters(ev),
		)
		if err != nil {
			t.err = errors.Join(err, tx.Rollback())
			return t.err
		}
		t.seq++
	}

	err = tx.Commit()
	if err != nil {
		t.err = err
		return
	}

	t.events = t.events[:0]

	return
}

// Close flushes the tracer and releases its statement, and the database
// if the tracer opened it.
func (t *DBTracer) Close() (err error) {
	if t.closed {
		return t.err
	}

	err = t.Flush()
	t.closed = true

	err = errors.Join(err, t.statement.Close())
	if t.owned {
		err = errors.Join(err, t.DB.Close())
	}

	return
}

func joinRegisters(ev Event) string {
	if len(ev.Registers) == 0 {
		return ""
	}

	words := make([]string, len(ev.Registers))
	for n, value := range ev.Registers {
		words[n] = strconv.FormatInt(int64(value), 10)
	}

	return strings.Join(words, " ")
}
