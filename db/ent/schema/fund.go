package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Fund is canonical per name. The unique constraint backs the
// conflict-safe find-or-create in entity resolution.
type Fund struct{ ent.Schema }

func (Fund) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "funds"},
	}
}

func (Fund) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("type").Optional(),
	}
}

func (Fund) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
		edge.To("investments", Investment.Type),
	}
}
