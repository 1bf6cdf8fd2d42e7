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

type Company struct{ ent.Schema }

func (Company) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "companies"},
	}
}

func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("holding_company").Optional().Nillable(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("head_office_location").Optional().Nillable(),
	}
}

func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
		edge.To("investments", Investment.Type),
		edge.To("financials", FinancialHighlight.Type),
	}
}
