// Code generated by ent, DO NOT EDIT.

package company

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// HoldingCompany applies equality check predicate on the "holding_company" field. It's identical to HoldingCompanyEQ.
func HoldingCompany(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldHoldingCompany, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldDescription, v))
}

// HeadOfficeLocation applies equality check predicate on the "head_office_location" field. It's identical to HeadOfficeLocationEQ.
func HeadOfficeLocation(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldHeadOfficeLocation, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldName, v))
}

// HoldingCompanyEQ applies the EQ predicate on the "holding_company" field.
func HoldingCompanyEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldHoldingCompany, v))
}

// HoldingCompanyNEQ applies the NEQ predicate on the "holding_company" field.
func HoldingCompanyNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldHoldingCompany, v))
}

// HoldingCompanyIn applies the In predicate on the "holding_company" field.
func HoldingCompanyIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldHoldingCompany, vs...))
}

// HoldingCompanyNotIn applies the NotIn predicate on the "holding_company" field.
func HoldingCompanyNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldHoldingCompany, vs...))
}

// HoldingCompanyGT applies the GT predicate on the "holding_company" field.
func HoldingCompanyGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldHoldingCompany, v))
}

// HoldingCompanyGTE applies the GTE predicate on the "holding_company" field.
func HoldingCompanyGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldHoldingCompany, v))
}

// HoldingCompanyLT applies the LT predicate on the "holding_company" field.
func HoldingCompanyLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldHoldingCompany, v))
}

// HoldingCompanyLTE applies the LTE predicate on the "holding_company" field.
func HoldingCompanyLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldHoldingCompany, v))
}

// HoldingCompanyContains applies the Contains predicate on the "holding_company" field.
func HoldingCompanyContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldHoldingCompany, v))
}

// HoldingCompanyHasPrefix applies the HasPrefix predicate on the "holding_company" field.
func HoldingCompanyHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldHoldingCompany, v))
}

// HoldingCompanyHasSuffix applies the HasSuffix predicate on the "holding_company" field.
func HoldingCompanyHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldHoldingCompany, v))
}

// HoldingCompanyIsNil applies the IsNil predicate on the "holding_company" field.
func HoldingCompanyIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldHoldingCompany))
}

// HoldingCompanyNotNil applies the NotNil predicate on the "holding_company" field.
func HoldingCompanyNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldHoldingCompany))
}

// HoldingCompanyEqualFold applies the EqualFold predicate on the "holding_company" field.
func HoldingCompanyEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldHoldingCompany, v))
}

// HoldingCompanyContainsFold applies the ContainsFold predicate on the "holding_company" field.
func HoldingCompanyContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldHoldingCompany, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldDescription, v))
}

// HeadOfficeLocationEQ applies the EQ predicate on the "head_office_location" field.
func HeadOfficeLocationEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationNEQ applies the NEQ predicate on the "head_office_location" field.
func HeadOfficeLocationNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationIn applies the In predicate on the "head_office_location" field.
func HeadOfficeLocationIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldHeadOfficeLocation, vs...))
}

// HeadOfficeLocationNotIn applies the NotIn predicate on the "head_office_location" field.
func HeadOfficeLocationNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldHeadOfficeLocation, vs...))
}

// HeadOfficeLocationGT applies the GT predicate on the "head_office_location" field.
func HeadOfficeLocationGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationGTE applies the GTE predicate on the "head_office_location" field.
func HeadOfficeLocationGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationLT applies the LT predicate on the "head_office_location" field.
func HeadOfficeLocationLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationLTE applies the LTE predicate on the "head_office_location" field.
func HeadOfficeLocationLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationContains applies the Contains predicate on the "head_office_location" field.
func HeadOfficeLocationContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationHasPrefix applies the HasPrefix predicate on the "head_office_location" field.
func HeadOfficeLocationHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationHasSuffix applies the HasSuffix predicate on the "head_office_location" field.
func HeadOfficeLocationHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationIsNil applies the IsNil predicate on the "head_office_location" field.
func HeadOfficeLocationIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldHeadOfficeLocation))
}

// HeadOfficeLocationNotNil applies the NotNil predicate on the "head_office_location" field.
func HeadOfficeLocationNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldHeadOfficeLocation))
}

// HeadOfficeLocationEqualFold applies the EqualFold predicate on the "head_office_location" field.
func HeadOfficeLocationEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldHeadOfficeLocation, v))
}

// HeadOfficeLocationContainsFold applies the ContainsFold predicate on the "head_office_location" field.
func HeadOfficeLocationContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldHeadOfficeLocation, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvestments applies the HasEdge predicate on the "investments" edge.
func HasInvestments() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvestmentsTable, InvestmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvestmentsWith applies the HasEdge predicate on the "investments" edge with a given conditions (other predicates).
func HasInvestmentsWith(preds ...predicate.Investment) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newInvestmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFinancials applies the HasEdge predicate on the "financials" edge.
func HasFinancials() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FinancialsTable, FinancialsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFinancialsWith applies the HasEdge predicate on the "financials" edge with a given conditions (other predicates).
func HasFinancialsWith(preds ...predicate.FinancialHighlight) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newFinancialsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Company) predicate.Company {
	return predicate.Company(sql.NotPredicates(p))
}
