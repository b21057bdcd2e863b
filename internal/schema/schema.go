// Package schema holds the normalized schema model (Table, Column, the
// canonical DataType vocabulary) and the backend introspectors that produce
// it from a database's catalog.
//
// Each backend implements Reader with its own catalog queries and its own
// type-normalization rules, but all of them map onto the same closed
// DataType vocabulary. Callers depend only on this package and on
// internal/database — never on a specific driver package.
package schema

import "context"

// Reader is the contract every backend introspector implements.
type Reader interface {
	// FetchTable introspects one table and returns its normalized model.
	// ref may be schema-qualified ("myschema.mytable"); an unqualified name
	// resolves against the backend's default namespace. A ref matching zero
	// catalog rows returns an empty Table, not an error — at this layer a
	// missing table is indistinguishable from a table with no columns. Use
	// TableExists to tell the two apart.
	FetchTable(ctx context.Context, ref string) (*Table, error)

	// ListTables returns all user table names in the given namespace.
	ListTables(ctx context.Context, namespace string) ([]string, error)

	// TableExists reports whether the referenced table exists.
	TableExists(ctx context.Context, ref string) (bool, error)
}
