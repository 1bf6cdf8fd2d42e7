package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs; both are optional because a document may exist
		// before entity identification back-links it.
		field.UUID("fund_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("company_id", uuid.UUID{}).Optional().Nillable(),
		field.String("file_name").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE fund
		edge.From("fund", Fund.Type).
			Ref("documents").
			Field("fund_id").
			Unique(),
		// MANY documents -> ONE company
		edge.From("company", Company.Type).
			Ref("documents").
			Field("company_id").
			Unique(),
		// ONE document -> MANY extracted fields
		edge.To("fields", ExtractedField.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uploaded_at"),
	}
}
