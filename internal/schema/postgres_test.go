package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaconv/internal/errs"
)

func TestPgDataType_Scalars(t *testing.T) {
	tests := []struct {
		dataType  string
		udtSchema string
		udtName   string
		want      DataType
	}{
		{"bigint", "pg_catalog", "int8", Scalar(KindBigint)},
		{"boolean", "pg_catalog", "bool", Scalar(KindBoolean)},
		{"character varying", "pg_catalog", "varchar", Scalar(KindCharacterVarying)},
		{"date", "pg_catalog", "date", Scalar(KindDate)},
		{"double precision", "pg_catalog", "float8", Scalar(KindDoublePrecision)},
		{"integer", "pg_catalog", "int4", Scalar(KindInteger)},
		{"json", "pg_catalog", "json", Scalar(KindJSON)},
		{"jsonb", "pg_catalog", "jsonb", Scalar(KindJSONB)},
		{"numeric", "pg_catalog", "numeric", Scalar(KindNumeric)},
		{"real", "pg_catalog", "float4", Scalar(KindReal)},
		{"smallint", "pg_catalog", "int2", Scalar(KindSmallint)},
		{"text", "pg_catalog", "text", Scalar(KindText)},
		{"timestamp without time zone", "pg_catalog", "timestamp", Scalar(KindTimestampWithoutTimeZone)},
		{"uuid", "pg_catalog", "uuid", Scalar(KindUUID)},
	}

	for _, tt := range tests {
		t.Run(tt.dataType, func(t *testing.T) {
			got, err := pgDataType(tt.dataType, tt.udtSchema, tt.udtName)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPgDataType_Arrays(t *testing.T) {
	tests := []struct {
		udtName string
		want    DataType
	}{
		{"_bool", Array(Scalar(KindBoolean))},
		{"_float8", Array(Scalar(KindDoublePrecision))},
		{"_int4", Array(Scalar(KindInteger))},
		{"_text", Array(Scalar(KindText))},
		{"_uuid", Array(Scalar(KindUUID))},
	}

	for _, tt := range tests {
		t.Run(tt.udtName, func(t *testing.T) {
			got, err := pgDataType("ARRAY", "pg_catalog", tt.udtName)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPgDataType_UnknownArrayElement(t *testing.T) {
	// Arrays of unrecognized element types must fail loudly — degrading to
	// an opaque type would lose information downstream codegen depends on.
	_, err := pgDataType("ARRAY", "pg_catalog", "_unknown_tag")
	require.Error(t, err)
	assert.True(t, errs.IsUnknownArrayElement(err))
	assert.Contains(t, err.Error(), "_unknown_tag")
}

func TestPgDataType_UserDefined(t *testing.T) {
	for _, udt := range []string{"citext", "geometry"} {
		got, err := pgDataType("USER-DEFINED", "public", udt)
		require.NoError(t, err)
		assert.Equal(t, Other(udt), got)
	}
}

func TestPgDataType_Unrecognized(t *testing.T) {
	// A type the backend reports as standard but the vocabulary does not
	// cover is a vocabulary gap, not an opaque type.
	for _, dt := range []string{"interval", "name", "oid", "regclass", "regtype", "totally_unknown_type"} {
		_, err := pgDataType(dt, "pg_catalog", dt)
		require.Error(t, err, "data type %q", dt)
		assert.True(t, errs.IsUnrecognizedType(err))
	}
}

func TestPgDataType_UdtSchemaIgnored(t *testing.T) {
	a, err := pgDataType("bigint", "pg_catalog", "int8")
	require.NoError(t, err)
	b, err := pgDataType("bigint", "something_else", "int8")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// pgRow builds one fake information_schema.columns row in projection order:
// column_name, ordinal_position, is_nullable, data_type, udt_schema, udt_name.
func pgRow(name string, pos int, nullable, dataType, udtSchema, udtName string) []any {
	return []any{name, pos, nullable, dataType, udtSchema, udtName}
}

func TestPgFetchTable(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{rows: [][]any{
		pgRow("id", 1, "NO", "integer", "pg_catalog", "int4"),
		pgRow("email", 2, "YES", "text", "pg_catalog", "text"),
		pgRow("tags", 3, "YES", "ARRAY", "pg_catalog", "_text"),
		pgRow("location", 4, "YES", "USER-DEFINED", "public", "geometry"),
	}}}

	table, err := NewPgIntrospector(db).FetchTable(context.Background(), "users")
	require.NoError(t, err)

	assert.Equal(t, "users", table.Name)
	require.Len(t, table.Columns, 4)
	assert.Equal(t, Column{Name: "id", DataType: Scalar(KindInteger), IsNullable: false}, table.Columns[0])
	assert.Equal(t, Column{Name: "email", DataType: Scalar(KindText), IsNullable: true}, table.Columns[1])
	assert.Equal(t, Column{Name: "tags", DataType: Array(Scalar(KindText)), IsNullable: true}, table.Columns[2])
	assert.Equal(t, Column{Name: "location", DataType: Other("geometry"), IsNullable: true}, table.Columns[3])

	// Unqualified ref resolves against the default namespace.
	assert.Equal(t, []any{"public", "users"}, db.lastArgs)
}

func TestPgFetchTable_QualifiedRef(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{}}

	table, err := NewPgIntrospector(db).FetchTable(context.Background(), "sales.orders")
	require.NoError(t, err)

	assert.Equal(t, "orders", table.Name)
	assert.Equal(t, []any{"sales", "orders"}, db.lastArgs)
}

func TestPgFetchTable_OrdersByOrdinalPosition(t *testing.T) {
	// Rows arrive out of physical order; the assembled table must still be
	// sorted ascending by ordinal_position.
	db := &fakeDB{rows: &fakeRows{rows: [][]any{
		pgRow("third", 3, "YES", "text", "pg_catalog", "text"),
		pgRow("first", 1, "NO", "integer", "pg_catalog", "int4"),
		pgRow("second", 2, "YES", "boolean", "pg_catalog", "bool"),
	}}}

	table, err := NewPgIntrospector(db).FetchTable(context.Background(), "shuffled")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, table.ColumnNames())
}

func TestPgFetchTable_EmptyTable(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{}}

	table, err := NewPgIntrospector(db).FetchTable(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, "missing", table.Name)
	assert.Empty(t, table.Columns)
}

func TestPgFetchTable_InvalidNullability(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{rows: [][]any{
		pgRow("id", 1, "MAYBE", "integer", "pg_catalog", "int4"),
	}}}

	_, err := NewPgIntrospector(db).FetchTable(context.Background(), "users")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidNullability(err))
	assert.Contains(t, err.Error(), "MAYBE")
	assert.Contains(t, err.Error(), "id")
}

func TestPgFetchTable_NormalizationErrorNamesColumn(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{rows: [][]any{
		pgRow("id", 1, "NO", "integer", "pg_catalog", "int4"),
		pgRow("span", 2, "YES", "interval", "pg_catalog", "interval"),
	}}}

	_, err := NewPgIntrospector(db).FetchTable(context.Background(), "events")
	require.Error(t, err)
	assert.True(t, errs.IsUnrecognizedType(err))
	assert.Contains(t, err.Error(), "span")
	assert.Contains(t, err.Error(), "interval")
}

func TestPgFetchTable_QueryErrorAborts(t *testing.T) {
	db := &fakeDB{queryErr: errs.New(errs.ErrKindConnectionFailed, "cannot reach postgres")}

	_, err := NewPgIntrospector(db).FetchTable(context.Background(), "users")
	require.Error(t, err)
	assert.True(t, errs.IsConnectionFailed(err))
}

func TestPgTableExists(t *testing.T) {
	db := &fakeDB{rowVals: []any{true}}

	exists, err := NewPgIntrospector(db).TableExists(context.Background(), "other.mytable")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []any{"other", "mytable"}, db.lastArgs)
}

func TestPgListTables(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{rows: [][]any{{"accounts"}, {"orders"}}}}

	tables, err := NewPgIntrospector(db).ListTables(context.Background(), "public")
	require.NoError(t, err)
	assert.Equal(t, []string{"accounts", "orders"}, tables)
}
