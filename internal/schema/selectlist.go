package schema

import (
	"io"

	"schemaconv/internal/database"
)

// WriteSelectList writes the table's column names as a quoted,
// comma-separated projection list, in column order, with no trailing
// separator. The output is meant to be spliced into a follow-up SELECT
// against the same backend, so quoting follows the given dialect. Errors
// from the writer propagate unchanged.
func WriteSelectList(w io.Writer, t *Table, d database.Dialect) error {
	for i, col := range t.Columns {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, d.QuoteIdent(col.Name)); err != nil {
			return err
		}
	}
	return nil
}
