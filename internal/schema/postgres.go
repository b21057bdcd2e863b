package schema

import (
	"context"
	"fmt"
	"sort"

	"schemaconv/internal/database"
	"schemaconv/internal/errs"
)

// pgDefaultNamespace is where unqualified table references resolve.
const pgDefaultNamespace = "public"

// PgIntrospector implements Reader for PostgreSQL using information_schema.
type PgIntrospector struct {
	db database.DB
}

// NewPgIntrospector creates a new Postgres schema introspector on top of an
// already-established connection.
func NewPgIntrospector(db database.DB) *PgIntrospector {
	return &PgIntrospector{db: db}
}

// pgColumn is one raw information_schema.columns row, consumed during
// normalization and discarded.
type pgColumn struct {
	name       string
	position   int
	isNullable string
	dataType   string
	udtSchema  string
	udtName    string
}

// FetchTable introspects one table and returns its normalized model.
// Zero matching rows yield an empty Table, not an error.
func (p *PgIntrospector) FetchTable(ctx context.Context, ref string) (*Table, error) {
	namespace, name := SplitTableRef(ref, pgDefaultNamespace)

	const q = `
		SELECT column_name,
		       ordinal_position,
		       is_nullable,
		       data_type,
		       udt_schema,
		       udt_name
		FROM information_schema.columns
		WHERE table_schema = $1
		  AND table_name   = $2
		ORDER BY ordinal_position`

	rows, err := p.db.Query(ctx, q, namespace, name)
	if err != nil {
		return nil, fmt.Errorf("fetch table %s.%s: %w", namespace, name, err)
	}
	defer rows.Close()

	var raw []pgColumn
	for rows.Next() {
		var c pgColumn
		if err := rows.Scan(&c.name, &c.position, &c.isNullable, &c.dataType, &c.udtSchema, &c.udtName); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		raw = append(raw, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column rows: %w", err)
	}

	// Column order must mirror the physical layout. The query already orders
	// by ordinal_position; sorting on the scanned position keeps that
	// guarantee in the model itself rather than in the SQL alone.
	sort.SliceStable(raw, func(i, j int) bool { return raw[i].position < raw[j].position })

	columns := make([]Column, 0, len(raw))
	for _, c := range raw {
		nullable, err := decodeNullability(c.name, c.isNullable)
		if err != nil {
			return nil, err
		}
		dt, err := pgDataType(c.dataType, c.udtSchema, c.udtName)
		if err != nil {
			return nil, errs.Wrap(errs.KindOf(err), fmt.Sprintf("column %q", c.name), err)
		}
		columns = append(columns, Column{
			Name:       c.name,
			DataType:   dt,
			IsNullable: nullable,
		})
	}

	return &Table{Name: name, Columns: columns}, nil
}

// ListTables returns all user table names in the given namespace.
func (p *PgIntrospector) ListTables(ctx context.Context, namespace string) ([]string, error) {
	const q = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		  AND table_type   = 'BASE TABLE'
		ORDER BY table_name`

	rows, err := p.db.Query(ctx, q, namespace)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// TableExists reports whether the referenced table exists. FetchTable cannot
// tell a missing table from a table with zero columns; this can.
func (p *PgIntrospector) TableExists(ctx context.Context, ref string) (bool, error) {
	namespace, name := SplitTableRef(ref, pgDefaultNamespace)

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = $2
		)`

	row, err := p.db.QueryRow(ctx, q, namespace, name)
	if err != nil {
		return false, fmt.Errorf("table exists check: %w", err)
	}
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("table exists check: %w", err)
	}
	return exists, nil
}

// decodeNullability maps the catalog's two-valued is_nullable encoding onto
// a bool. Anything outside {"YES","NO"} is a catalog assumption violation
// and aborts the fetch — never a silent default.
func decodeNullability(column, value string) (bool, error) {
	switch value {
	case "YES":
		return true, nil
	case "NO":
		return false, nil
	default:
		return false, errs.Newf(errs.ErrKindInvalidNullability,
			"column %q: unexpected is_nullable value %q", column, value)
	}
}

// pgArrayElem maps Postgres's array element tags to their scalar kinds.
// Array element types have their own naming convention: "_" followed by the
// internal udt_name of the base type. The table is fixed and explicit; an
// unknown tag aborts the fetch so the vocabulary can be extended, instead of
// degrading to an opaque type and losing information downstream codegen may
// depend on.
var pgArrayElem = map[string]Kind{
	"_bool":   KindBoolean,
	"_float8": KindDoublePrecision,
	"_int4":   KindInteger,
	"_text":   KindText,
	"_uuid":   KindUUID,
}

// pgDataType normalizes one Postgres catalog type triple onto a DataType.
// udtSchema is accepted for interface symmetry but takes no part in the
// decision yet.
func pgDataType(dataType, udtSchema, udtName string) (DataType, error) {
	_ = udtSchema

	switch dataType {
	case "ARRAY":
		elem, ok := pgArrayElem[udtName]
		if !ok {
			return DataType{}, errs.Newf(errs.ErrKindUnknownArrayElement,
				"unknown array element type %q", udtName)
		}
		return Array(Scalar(elem)), nil
	case "USER-DEFINED":
		// Extension and user-defined types have no portable representation;
		// pass the internal name through verbatim.
		return Other(udtName), nil
	default:
		return ParseDataType(dataType)
	}
}
