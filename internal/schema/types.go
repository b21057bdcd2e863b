package schema

// Column describes a single column of an introspected table.
// It is created by a backend introspector from one catalog row and is not
// modified afterwards.
type Column struct {
	Name       string
	DataType   DataType
	IsNullable bool
	Comment    *string // nil — comment extraction is not part of the core
}

// Table is the normalized, backend-agnostic description of one table.
// Columns are in catalog ordinal order (ascending), mirroring the physical
// layout. Downstream consumers (SELECT-list generation, cross-database copy)
// depend on that order being preserved.
type Table struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the column names in ordinal order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
