// package runlog records datapath runs and their iteration traces in
// sqlite, keyed by a content ID over the operation and its operands.
package runlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.brendoncarroll.net/tai64"
	"go.uber.org/zap"

	"rvcore.org/rvcore"
	"rvcore.org/rvcore/internal/dbutil"
	"rvcore.org/rvcore/internal/migrations"
)

// Run is one recorded datapath operation.
type Run struct {
	Op     string `db:"op"`
	Width  int    `db:"width"`
	Signed bool   `db:"signed"`
	// A and B are the operand patterns in hex.  For shifts B holds the
	// shift amount.
	A string `db:"a"`
	B string `db:"b"`
	// Result is the primary result pattern; Result2 holds the high
	// product word of a multiply or the remainder of a divide.
	Result  string `db:"result"`
	Result2 string `db:"result2"`
	Flags   string `db:"flags"`

	CreatedS  int64 `db:"created_s"`
	CreatedNS int64 `db:"created_ns"`

	Steps []Step `db:"-"`
}

// Step is one recorded iteration of a bit-serial unit.
type Step struct {
	Index int    `db:"step"`
	Reg   string `db:"reg"`
	QBit  uint8  `db:"qbit"`
}

// ID computes the content ID of the run from the operation and its
// operands; the same inputs always map to the same record.
func (r Run) ID() rvcore.ID {
	return rvcore.Hash([]byte(fmt.Sprintf("%s|%d|%v|%s|%s", r.Op, r.Width, r.Signed, r.A, r.B)))
}

// ErrRunNotFound is returned by Get for an unknown run ID.
type ErrRunNotFound struct {
	ID rvcore.ID
}

func (e ErrRunNotFound) Error() string {
	return fmt.Sprintf("runlog: run %x not found", e.ID[:4])
}

// OpenDB opens the run database at p, which may be ":memory:".
func OpenDB(p string) (*sqlx.DB, error) {
	return dbutil.Open(p)
}

// SetupDB migrates db to the current schema.
func SetupDB(ctx context.Context, db *sqlx.DB) error {
	return migrations.Migrate(ctx, db, currentSchema)
}

var currentSchema = migrations.InitialState().
	ApplyStmt(`CREATE TABLE runs (
		id BLOB NOT NULL,
		op TEXT NOT NULL,
		width INTEGER NOT NULL,
		signed INTEGER NOT NULL,
		a TEXT NOT NULL,
		b TEXT NOT NULL,
		result TEXT NOT NULL,
		result2 TEXT NOT NULL DEFAULT '',
		flags TEXT NOT NULL DEFAULT '',
		created_s INTEGER NOT NULL,
		created_ns INTEGER NOT NULL,

		PRIMARY KEY(id)
	) WITHOUT ROWID, STRICT;`).
	ApplyStmt(`CREATE TABLE run_steps (
		run_id BLOB NOT NULL,
		step INTEGER NOT NULL,
		reg TEXT NOT NULL,
		qbit INTEGER NOT NULL,

		FOREIGN KEY(run_id) REFERENCES runs(id),
		PRIMARY KEY(run_id, step)
	) WITHOUT ROWID, STRICT;`)

// Log reads and writes run records, with a small cache in front of
// reads.
type Log struct {
	db    *sqlx.DB
	cache *simplelru.LRU[rvcore.ID, *Run]
}

func New(db *sqlx.DB) *Log {
	cache, err := simplelru.NewLRU[rvcore.ID, *Run](128, nil)
	if err != nil {
		panic(err)
	}
	return &Log{db: db, cache: cache}
}

// Record stores r and its steps, returning the run's content ID.
// Recording the same operation and operands again is a no-op.
func (l *Log) Record(ctx context.Context, r Run) (rvcore.ID, error) {
	id := r.ID()
	ts := tai64.Now()
	r.CreatedS, r.CreatedNS = int64(ts.Seconds), int64(ts.Nanoseconds)
	err := dbutil.DoTx(ctx, l.db, func(tx *sqlx.Tx) error {
		res, err := tx.Exec(`INSERT INTO runs (id, op, width, signed, a, b, result, result2, flags, created_s, created_ns)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT DO NOTHING`,
			id[:], r.Op, r.Width, r.Signed, r.A, r.B, r.Result, r.Result2, r.Flags, r.CreatedS, r.CreatedNS)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil || n == 0 {
			return err
		}
		for _, s := range r.Steps {
			if _, err := tx.Exec(`INSERT INTO run_steps (run_id, step, reg, qbit)
				VALUES (?, ?, ?, ?) ON CONFLICT DO NOTHING`,
				id[:], s.Index, s.Reg, s.QBit); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return rvcore.ID{}, err
	}
	l.cache.Remove(id)
	logctx.Debug(ctx, "recorded run", zap.String("op", r.Op), zap.Int("steps", len(r.Steps)))
	return id, nil
}

// Get returns the run with the given ID, steps included.
func (l *Log) Get(ctx context.Context, id rvcore.ID) (*Run, error) {
	if r, ok := l.cache.Get(id); ok {
		return r, nil
	}
	var r Run
	if err := l.db.GetContext(ctx, &r, `SELECT op, width, signed, a, b, result, result2, flags, created_s, created_ns
		FROM runs WHERE id = ?`, id[:]); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound{ID: id}
		}
		return nil, err
	}
	if err := l.db.SelectContext(ctx, &r.Steps, `SELECT step, reg, qbit FROM run_steps
		WHERE run_id = ? ORDER BY step`, id[:]); err != nil {
		return nil, err
	}
	l.cache.Add(id, &r)
	return &r, nil
}

// List returns every recorded run without steps, oldest first.
func (l *Log) List(ctx context.Context) ([]Run, error) {
	var ret []Run
	if err := l.db.SelectContext(ctx, &ret, `SELECT op, width, signed, a, b, result, result2, flags, created_s, created_ns
		FROM runs ORDER BY created_s, created_ns`); err != nil {
		return nil, err
	}
	return ret, nil
}
