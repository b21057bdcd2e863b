package schema

import (
	"context"
	"fmt"
	"sort"

	"schemaconv/internal/database"
	"schemaconv/internal/errs"
)

// MySQLIntrospector implements Reader for MySQL using information_schema.
// In MySQL the namespace of a table is the database it lives in.
type MySQLIntrospector struct {
	db database.DB

	// defaultSchema resolves unqualified table references. Empty means
	// "the database the connection is attached to" (DATABASE()).
	defaultSchema string
}

// NewMySQLIntrospector creates a new MySQL schema introspector. Pass the
// connected database name as defaultSchema, or "" to resolve unqualified
// references against the connection's current database.
func NewMySQLIntrospector(db database.DB, defaultSchema string) *MySQLIntrospector {
	return &MySQLIntrospector{db: db, defaultSchema: defaultSchema}
}

type mysqlColumn struct {
	name       string
	position   int
	isNullable string
	dataType   string
	columnType string
}

// FetchTable introspects one table and returns its normalized model.
// Zero matching rows yield an empty Table, not an error.
func (m *MySQLIntrospector) FetchTable(ctx context.Context, ref string) (*Table, error) {
	namespace, name := SplitTableRef(ref, m.defaultSchema)

	// NULLIF/COALESCE folds an empty namespace into DATABASE().
	const q = `
		SELECT column_name,
		       ordinal_position,
		       is_nullable,
		       data_type,
		       column_type
		FROM information_schema.columns
		WHERE table_schema = COALESCE(NULLIF(?, ''), DATABASE())
		  AND table_name   = ?
		ORDER BY ordinal_position`

	rows, err := m.db.Query(ctx, q, namespace, name)
	if err != nil {
		return nil, fmt.Errorf("fetch table %s.%s: %w", namespace, name, err)
	}
	defer rows.Close()

	var raw []mysqlColumn
	for rows.Next() {
		var c mysqlColumn
		if err := rows.Scan(&c.name, &c.position, &c.isNullable, &c.dataType, &c.columnType); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		raw = append(raw, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column rows: %w", err)
	}

	sort.SliceStable(raw, func(i, j int) bool { return raw[i].position < raw[j].position })

	columns := make([]Column, 0, len(raw))
	for _, c := range raw {
		nullable, err := decodeNullability(c.name, c.isNullable)
		if err != nil {
			return nil, err
		}
		dt, err := mysqlDataType(c.dataType, c.columnType)
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

// ListTables returns all user table names in the given database.
func (m *MySQLIntrospector) ListTables(ctx context.Context, namespace string) ([]string, error) {
	const q = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = COALESCE(NULLIF(?, ''), DATABASE())
		  AND table_type   = 'BASE TABLE'
		ORDER BY table_name`

	rows, err := m.db.Query(ctx, q, namespace)
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

// TableExists reports whether the referenced table exists.
func (m *MySQLIntrospector) TableExists(ctx context.Context, ref string) (bool, error) {
	namespace, name := SplitTableRef(ref, m.defaultSchema)

	const q = `
		SELECT COUNT(*) > 0
		FROM information_schema.tables
		WHERE table_schema = COALESCE(NULLIF(?, ''), DATABASE())
		  AND table_name   = ?`

	row, err := m.db.QueryRow(ctx, q, namespace, name)
	if err != nil {
		return false, fmt.Errorf("table exists check: %w", err)
	}
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("table exists check: %w", err)
	}
	return exists, nil
}

// mysqlScalar maps MySQL data_type names onto the canonical vocabulary.
// Fixed and explicit, like the Postgres tables — unlisted names fall through
// to a typed error, never to a silent opaque type.
var mysqlScalar = map[string]Kind{
	"bigint":    KindBigint,
	"int":       KindInteger,
	"integer":   KindInteger,
	"mediumint": KindInteger,
	"smallint":  KindSmallint,

	"char":    KindCharacterVarying,
	"varchar": KindCharacterVarying,

	"text":       KindText,
	"tinytext":   KindText,
	"mediumtext": KindText,
	"longtext":   KindText,

	"decimal": KindNumeric,
	"numeric": KindNumeric,
	"double":  KindDoublePrecision,
	"float":   KindReal,

	"date":      KindDate,
	"datetime":  KindTimestampWithoutTimeZone,
	"timestamp": KindTimestampWithoutTimeZone,

	"json": KindJSON,
}

// mysqlOpaque lists MySQL types with no portable representation in the
// vocabulary. They normalize to Other, carrying the full column_type so the
// original definition survives (e.g. "enum('a','b')", "varbinary(16)").
var mysqlOpaque = map[string]bool{
	"enum":       true,
	"set":        true,
	"bit":        true,
	"binary":     true,
	"varbinary":  true,
	"blob":       true,
	"tinyblob":   true,
	"mediumblob": true,
	"longblob":   true,
	"geometry":   true,
}

// mysqlDataType normalizes one MySQL catalog type pair onto a DataType.
// tinyint is special-cased: tinyint(1) is MySQL's boolean spelling, any
// other width is a small integer.
func mysqlDataType(dataType, columnType string) (DataType, error) {
	if dataType == "tinyint" {
		if columnType == "tinyint(1)" {
			return Scalar(KindBoolean), nil
		}
		return Scalar(KindSmallint), nil
	}
	if k, ok := mysqlScalar[dataType]; ok {
		return Scalar(k), nil
	}
	if mysqlOpaque[dataType] {
		return Other(columnType), nil
	}
	return DataType{}, errs.Newf(errs.ErrKindUnrecognizedType, "unrecognized data type %q", dataType)
}
