package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgproto3/v2"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

// In-memory scripted store. Each QueryRow/Query call pops the next prepared
// result; every call is recorded so tests can assert on the generated SQL.

type dbCall struct {
	sql  string
	args []interface{}
}

type fakeRow struct {
	vals []interface{}
	err  error
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("fakeRow: %d dests for %d values", len(dest), len(r.vals))
	}
	for i, d := range dest {
		if err := assignValue(d, r.vals[i]); err != nil {
			return err
		}
	}
	return nil
}

type fakeRows struct {
	rows   [][]interface{}
	idx    int
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...interface{}) error {
	row := &fakeRow{vals: r.rows[r.idx-1]}
	return row.Scan(dest...)
}

func (r *fakeRows) Close()                                         { r.closed = true }
func (r *fakeRows) Err() error                                     { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                  { return nil }
func (r *fakeRows) FieldDescriptions() []pgproto3.FieldDescription { return nil }
func (r *fakeRows) Values() ([]interface{}, error)                 { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                            { return nil }

type fakeDB struct {
	calls []dbCall

	rowQueue  []*fakeRow
	rowsQueue []*fakeRows
	queryErr  error
	execErr   error
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	db.calls = append(db.calls, dbCall{sql: sql, args: args})
	return pgconn.CommandTag("UPDATE 1"), db.execErr
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	db.calls = append(db.calls, dbCall{sql: sql, args: args})
	if db.queryErr != nil {
		return nil, db.queryErr
	}
	if len(db.rowsQueue) == 0 {
		return &fakeRows{}, nil
	}
	next := db.rowsQueue[0]
	db.rowsQueue = db.rowsQueue[1:]
	return next, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	db.calls = append(db.calls, dbCall{sql: sql, args: args})
	if len(db.rowQueue) == 0 {
		return &fakeRow{err: pgx.ErrNoRows}
	}
	next := db.rowQueue[0]
	db.rowQueue = db.rowQueue[1:]
	return next
}

func (db *fakeDB) lastCall() dbCall {
	return db.calls[len(db.calls)-1]
}

func assignValue(dest, val interface{}) error {
	switch d := dest.(type) {
	case *int64:
		*d = val.(int64)
	case *int:
		*d = val.(int)
	case *string:
		*d = val.(string)
	case *bool:
		*d = val.(bool)
	case *float64:
		*d = val.(float64)
	case *time.Time:
		*d = val.(time.Time)
	case *pgtype.Text:
		if val == nil {
			*d = pgtype.Text{Status: pgtype.Null}
		} else {
			*d = pgtype.Text{String: val.(string), Status: pgtype.Present}
		}
	case *pgtype.Float8:
		if val == nil {
			*d = pgtype.Float8{Status: pgtype.Null}
		} else {
			*d = pgtype.Float8{Float: val.(float64), Status: pgtype.Present}
		}
	default:
		return fmt.Errorf("fake store cannot assign into %T", dest)
	}
	return nil
}
