package export

import (
	"go.yaml.in/yaml/v3"

	"schemaconv/internal/schema"
)

// DocumentContentType is the MIME type used when publishing documents.
const DocumentContentType = "application/yaml"

// Document is the YAML-serializable form of a normalized table. Column
// order follows the table's ordinal order.
type Document struct {
	Table   string           `yaml:"table"`
	Columns []DocumentColumn `yaml:"columns"`
}

// DocumentColumn is one column entry in a Document. Type carries the
// canonical string encoding of the column's DataType.
type DocumentColumn struct {
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
	Nullable bool    `yaml:"nullable"`
	Comment  *string `yaml:"comment,omitempty"`
}

// NewDocument converts a normalized table into its document form.
func NewDocument(t *schema.Table) *Document {
	doc := &Document{
		Table:   t.Name,
		Columns: make([]DocumentColumn, len(t.Columns)),
	}
	for i, col := range t.Columns {
		doc.Columns[i] = DocumentColumn{
			Name:     col.Name,
			Type:     col.DataType.String(),
			Nullable: col.IsNullable,
			Comment:  col.Comment,
		}
	}
	return doc
}

// Render marshals the document to YAML.
func (d *Document) Render() ([]byte, error) {
	return yaml.Marshal(d)
}
