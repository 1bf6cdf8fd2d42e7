package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ExtractedField rows are append-only; repeated extraction runs for the
// same document accumulate additional rows.
type ExtractedField struct{ ent.Schema }

func (ExtractedField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_fields"},
	}
}

func (ExtractedField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("field_name").NotEmpty(),
		field.Text("extracted_value").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("page_number").Optional().Nillable(),
		field.Float("confidence_score").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ExtractedField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("fields").
			Field("document_id").
			Required().
			Unique(),
		edge.To("corrections", Correction.Type),
	}
}

func (ExtractedField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "page_number"),
	}
}
