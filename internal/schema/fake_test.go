package schema

import (
	"context"
	"fmt"

	"schemaconv/internal/database"
)

// fakeDB implements database.DB over canned rows, so introspector behavior
// can be tested without a live backend.
type fakeDB struct {
	rows     *fakeRows
	rowVals  []any
	queryErr error

	lastSQL  string
	lastArgs []any
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close()                     {}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (database.Rows, error) {
	f.lastSQL = sql
	f.lastArgs = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) (database.Row, error) {
	f.lastSQL = sql
	f.lastArgs = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRow{vals: f.rowVals}, nil
}

type fakeRows struct {
	cols []string
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.idx < len(r.rows) {
		r.idx++
		return true
	}
	return false
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(dest, r.rows[r.idx-1])
}

func (r *fakeRows) Columns() ([]string, error) { return r.cols, nil }
func (r *fakeRows) Close()                     {}
func (r *fakeRows) Err() error                 { return r.err }

type fakeRow struct {
	vals []any
}

func (r *fakeRow) Scan(dest ...any) error {
	return scanInto(dest, r.vals)
}

func scanInto(dest, src []any) error {
	if len(dest) != len(src) {
		return fmt.Errorf("scan: want %d destinations, got %d", len(src), len(dest))
	}
	for i, v := range src {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		case *bool:
			*d = v.(bool)
		default:
			return fmt.Errorf("scan: unsupported destination %T", dest[i])
		}
	}
	return nil
}
