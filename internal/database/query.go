package database

import (
	"fmt"
	"strings"

	"schemaconv/internal/errs"
)

// Dialect controls identifier quoting and the SQL placeholder style.
type Dialect int

const (
	// DialectPostgres uses $1, $2, … placeholders and "ident" quoting.
	DialectPostgres Dialect = iota

	// DialectMySQL uses ? placeholders and `ident` quoting.
	DialectMySQL
)

// QuoteIdent escapes a single identifier for this dialect. Postgres wraps
// in double quotes and doubles embedded double quotes; MySQL wraps in
// backticks and doubles embedded backticks.
func (d Dialect) QuoteIdent(name string) string {
	if d == DialectMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Placeholder returns the n-th (1-based) parameter placeholder.
func (d Dialect) Placeholder(n int) string {
	if d == DialectMySQL {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}

// Query is a built SQL statement with its positional arguments.
type Query struct {
	SQL  string
	Args []any
}

// SelectBuilder constructs a parameterized SELECT statement. Identifiers are
// quoted per dialect; values are never interpolated into the SQL string.
//
// Usage:
//
//	q, err := Select("public.users", DialectPostgres).
//	    Columns("id", "name").
//	    Limit(20).
//	    Build()
type SelectBuilder struct {
	table   string
	dialect Dialect
	columns []string
	limit   *int
	offset  *int
}

// Select starts a new SelectBuilder for the given (possibly dot-qualified)
// table reference and dialect.
func Select(table string, d Dialect) *SelectBuilder {
	return &SelectBuilder{table: table, dialect: d}
}

// Columns restricts the SELECT to the specified columns, in order.
// Without it the builder emits SELECT *.
func (b *SelectBuilder) Columns(cols ...string) *SelectBuilder {
	b.columns = append(b.columns, cols...)
	return b
}

// Limit caps the number of rows returned.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = &n
	return b
}

// Offset skips the first n rows.
func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.offset = &n
	return b
}

// Build assembles the final SQL and argument list.
func (b *SelectBuilder) Build() (Query, error) {
	if b.table == "" {
		return Query{}, errs.New(errs.ErrKindInvalidInput, "select: table name is required")
	}
	if b.limit != nil && *b.limit < 0 {
		return Query{}, errs.New(errs.ErrKindInvalidInput, "select: limit must be >= 0")
	}
	if b.offset != nil && *b.offset < 0 {
		return Query{}, errs.New(errs.ErrKindInvalidInput, "select: offset must be >= 0")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	if len(b.columns) == 0 {
		sb.WriteString("*")
	} else {
		for i, col := range b.columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(b.dialect.QuoteIdent(col))
		}
	}

	sb.WriteString(" FROM ")
	sb.WriteString(b.quoteTable())

	var args []any
	if b.limit != nil {
		args = append(args, *b.limit)
		sb.WriteString(" LIMIT ")
		sb.WriteString(b.dialect.Placeholder(len(args)))
	}
	if b.offset != nil {
		args = append(args, *b.offset)
		sb.WriteString(" OFFSET ")
		sb.WriteString(b.dialect.Placeholder(len(args)))
	}

	return Query{SQL: sb.String(), Args: args}, nil
}

// quoteTable quotes each dot-separated part of the table reference, so
// "public.users" becomes "public"."users".
func (b *SelectBuilder) quoteTable() string {
	parts := strings.SplitN(b.table, ".", 2)
	for i, p := range parts {
		parts[i] = b.dialect.QuoteIdent(p)
	}
	return strings.Join(parts, ".")
}
