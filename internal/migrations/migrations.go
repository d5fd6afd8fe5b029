// package migrations applies an ordered chain of schema statements.
package migrations

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// State is one link in the migration chain.
type State struct {
	prev *State
	stmt string
	n    int
}

// InitialState is the empty schema.
func InitialState() *State {
	return &State{}
}

// ApplyStmt appends stmt to the chain.
func (s *State) ApplyStmt(stmt string) *State {
	return &State{prev: s, stmt: stmt, n: s.n + 1}
}

// Migrate brings db up to the schema described by final, applying only
// the statements it has not seen before.
func Migrate(ctx context.Context, db *sqlx.DB, final *State) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS migrations (
		id INTEGER PRIMARY KEY
	)`); err != nil {
		return err
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	var applied int
	if err := tx.Get(&applied, `SELECT COALESCE(MAX(id), 0) FROM migrations`); err != nil {
		return err
	}
	for _, link := range chain(final) {
		if link.n <= applied {
			continue
		}
		if _, err := tx.ExecContext(ctx, link.stmt); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO migrations (id) VALUES (?)`, link.n); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func chain(final *State) (ret []*State) {
	for s := final; s != nil && s.n > 0; s = s.prev {
		ret = append(ret, s)
	}
	for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
		ret[i], ret[j] = ret[j], ret[i]
	}
	return ret
}
