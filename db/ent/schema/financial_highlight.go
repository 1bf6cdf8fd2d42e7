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

type FinancialHighlight struct{ ent.Schema }

func (FinancialHighlight) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "financial_highlights"},
	}
}

func numericField(name string) ent.Field {
	return field.Float(name).Default(0).
		SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"})
}

func (FinancialHighlight) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("company_id", uuid.UUID{}),
		// e.g. "FY2023", "Dec-24"
		field.String("period"),
		// label, not an ISO code: "KRW bn", "USD mn"
		field.String("currency").Optional().Nillable(),
		numericField("revenue"),
		numericField("ebitda"),
		numericField("ebitda_margin"),
		numericField("ebit"),
		numericField("ebit_margin"),
		numericField("net_profit_after_tax"),
		numericField("capex"),
		numericField("net_debt"),
	}
}

func (FinancialHighlight) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("financials").
			Field("company_id").
			Required().
			Unique(),
	}
}

func (FinancialHighlight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
	}
}
