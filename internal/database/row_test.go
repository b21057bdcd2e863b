package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRows implements Rows over canned values.
type stubRows struct {
	cols   []string
	rows   [][]any
	idx    int
	err    error
	closed bool
}

func (r *stubRows) Next() bool {
	if r.idx < len(r.rows) {
		r.idx++
		return true
	}
	return false
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	for i := range dest {
		*(dest[i].(*any)) = row[i]
	}
	return nil
}

func (r *stubRows) Columns() ([]string, error) { return r.cols, nil }
func (r *stubRows) Close()                     { r.closed = true }
func (r *stubRows) Err() error                 { return r.err }

func TestScanRows(t *testing.T) {
	rows := &stubRows{
		cols: []string{"id", "email"},
		rows: [][]any{
			{int64(1), "a@example.com"},
			{int64(2), "b@example.com"},
		},
	}

	result, err := ScanRows(rows)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, map[string]any{"id": int64(1), "email": "a@example.com"}, result[0])
	assert.Equal(t, map[string]any{"id": int64(2), "email": "b@example.com"}, result[1])
	assert.True(t, rows.closed)
}

func TestScanRows_Empty(t *testing.T) {
	result, err := ScanRows(&stubRows{cols: []string{"id"}})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
