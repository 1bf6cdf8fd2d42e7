package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Investment rows are not deduplicated; each successful profile
// extraction run appends one.
type Investment struct{ ent.Schema }

func (Investment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "investments"},
	}
}

func (Investment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("fund_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("company_id", uuid.UUID{}),
		field.String("fund_role").Optional().Nillable(),
		field.String("investment_type").Optional().Nillable(),
		field.Float("ownership_percent").Default(0),
		field.Time("date_of_first_completion").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("transaction_value").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("current_cost").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("fair_value").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
	}
}

func (Investment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("fund", Fund.Type).
			Ref("investments").
			Field("fund_id").
			Unique(),
		edge.From("company", Company.Type).
			Ref("investments").
			Field("company_id").
			Required().
			Unique(),
	}
}

func (Investment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("fund_id"),
	}
}
