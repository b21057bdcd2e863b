package schema

import (
	"schemaconv/internal/errs"
)

// Kind identifies one canonical column type. The non-escape kinds form a
// closed, backend-independent vocabulary: every backend introspector must
// map its native types onto this set or fall into KindArray / KindOther.
// The string value of each kind is its canonical textual encoding.
type Kind string

const (
	KindBigint                   Kind = "bigint"
	KindBoolean                  Kind = "boolean"
	KindCharacterVarying         Kind = "character varying"
	KindDate                     Kind = "date"
	KindDoublePrecision          Kind = "double precision"
	KindInteger                  Kind = "integer"
	KindJSON                     Kind = "json"
	KindJSONB                    Kind = "jsonb"
	KindNumeric                  Kind = "numeric"
	KindReal                     Kind = "real"
	KindSmallint                 Kind = "smallint"
	KindText                     Kind = "text"
	KindTimestampWithoutTimeZone Kind = "timestamp without time zone"
	KindUUID                     Kind = "uuid"

	// Escape kinds. Never produced by ParseDataType — only backend
	// normalization logic constructs them, because it has more context
	// (sentinel values, internal type tags) than a bare type string.
	KindArray Kind = "array"
	KindOther Kind = "other"
)

// DataType is a canonical column type. For KindArray, Elem holds the element
// type; for KindOther, Name carries the backend's internal type name
// verbatim. All other kinds stand alone.
type DataType struct {
	Kind Kind
	Elem *DataType // element type, KindArray only
	Name string    // backend-internal type name, KindOther only
}

// Scalar returns the DataType for a non-escape kind.
func Scalar(k Kind) DataType {
	return DataType{Kind: k}
}

// Array returns an array DataType with the given element type.
func Array(elem DataType) DataType {
	return DataType{Kind: KindArray, Elem: &elem}
}

// Other returns an opaque DataType carrying a backend-specific type name.
func Other(name string) DataType {
	return DataType{Kind: KindOther, Name: name}
}

// String renders the canonical textual encoding. For every non-escape kind,
// ParseDataType(dt.String()) round-trips back to dt. Arrays render as
// "<elem>[]" and opaque types as their backend-internal name; neither form
// is accepted by ParseDataType.
func (dt DataType) String() string {
	switch dt.Kind {
	case KindArray:
		if dt.Elem == nil {
			return "[]"
		}
		return dt.Elem.String() + "[]"
	case KindOther:
		return dt.Name
	default:
		return string(dt.Kind)
	}
}

// Equal reports whether two DataTypes are the same, comparing array element
// types structurally.
func (dt DataType) Equal(other DataType) bool {
	if dt.Kind != other.Kind || dt.Name != other.Name {
		return false
	}
	if dt.Kind == KindArray {
		if dt.Elem == nil || other.Elem == nil {
			return dt.Elem == other.Elem
		}
		return dt.Elem.Equal(*other.Elem)
	}
	return true
}

// ParseDataType decodes a canonical type string into its DataType. The match
// is exhaustive over the closed vocabulary; anything else is an
// ErrKindUnrecognizedType error carrying the raw string. A type name the
// backend reports as standard but this vocabulary does not cover means the
// vocabulary is incomplete — that must surface loudly, not degrade to an
// opaque type.
func ParseDataType(s string) (DataType, error) {
	switch Kind(s) {
	case KindBigint,
		KindBoolean,
		KindCharacterVarying,
		KindDate,
		KindDoublePrecision,
		KindInteger,
		KindJSON,
		KindJSONB,
		KindNumeric,
		KindReal,
		KindSmallint,
		KindText,
		KindTimestampWithoutTimeZone,
		KindUUID:
		return DataType{Kind: Kind(s)}, nil
	default:
		return DataType{}, errs.Newf(errs.ErrKindUnrecognizedType, "unrecognized data type %q", s)
	}
}
