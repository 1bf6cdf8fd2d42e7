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

// Correction is a manual edit record for an extracted field; written by
// reviewers, never by the pipeline.
type Correction struct{ ent.Schema }

func (Correction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "corrections"},
	}
}

func (Correction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("extracted_field_id", uuid.UUID{}),
		field.Text("corrected_value").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("corrected_by_user").Optional().Nillable(),
		field.String("reason").Optional().Nillable(),
		field.Time("corrected_at").Default(time.Now),
	}
}

func (Correction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("extracted_field", ExtractedField.Type).
			Ref("corrections").
			Field("extracted_field_id").
			Required().
			Unique(),
	}
}

func (Correction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("extracted_field_id"),
	}
}
