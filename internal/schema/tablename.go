package schema

import "strings"

// SplitTableRef splits a possibly-qualified table reference into its
// namespace (schema) and table name. "other.mytable" splits at the first
// dot, so "a.b.c" yields ("a", "b.c"); an unqualified "mytable" falls back
// to defaultNamespace. Namespaces or names that themselves contain a dot
// are not supported.
func SplitTableRef(ref, defaultNamespace string) (namespace, name string) {
	if i := strings.Index(ref, "."); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return defaultNamespace, ref
}
