// Code generated by ent, DO NOT EDIT.

package extractedfield

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldDocumentID, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldFieldName, v))
}

// ExtractedValue applies equality check predicate on the "extracted_value" field. It's identical to ExtractedValueEQ.
func ExtractedValue(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldExtractedValue, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldPageNumber, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldConfidenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldDocumentID, vs...))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldFieldName, v))
}

// ExtractedValueEQ applies the EQ predicate on the "extracted_value" field.
func ExtractedValueEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldExtractedValue, v))
}

// ExtractedValueNEQ applies the NEQ predicate on the "extracted_value" field.
func ExtractedValueNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldExtractedValue, v))
}

// ExtractedValueIn applies the In predicate on the "extracted_value" field.
func ExtractedValueIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldExtractedValue, vs...))
}

// ExtractedValueNotIn applies the NotIn predicate on the "extracted_value" field.
func ExtractedValueNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldExtractedValue, vs...))
}

// ExtractedValueGT applies the GT predicate on the "extracted_value" field.
func ExtractedValueGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldExtractedValue, v))
}

// ExtractedValueGTE applies the GTE predicate on the "extracted_value" field.
func ExtractedValueGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldExtractedValue, v))
}

// ExtractedValueLT applies the LT predicate on the "extracted_value" field.
func ExtractedValueLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldExtractedValue, v))
}

// ExtractedValueLTE applies the LTE predicate on the "extracted_value" field.
func ExtractedValueLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldExtractedValue, v))
}

// ExtractedValueContains applies the Contains predicate on the "extracted_value" field.
func ExtractedValueContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldExtractedValue, v))
}

// ExtractedValueHasPrefix applies the HasPrefix predicate on the "extracted_value" field.
func ExtractedValueHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldExtractedValue, v))
}

// ExtractedValueHasSuffix applies the HasSuffix predicate on the "extracted_value" field.
func ExtractedValueHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldExtractedValue, v))
}

// ExtractedValueEqualFold applies the EqualFold predicate on the "extracted_value" field.
func ExtractedValueEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldExtractedValue, v))
}

// ExtractedValueContainsFold applies the ContainsFold predicate on the "extracted_value" field.
func ExtractedValueContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldExtractedValue, v))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldPageNumber, v))
}

// PageNumberIsNil applies the IsNil predicate on the "page_number" field.
func PageNumberIsNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIsNull(FieldPageNumber))
}

// PageNumberNotNil applies the NotNil predicate on the "page_number" field.
func PageNumberNotNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotNull(FieldPageNumber))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotNull(FieldConfidenceScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCorrections applies the HasEdge predicate on the "corrections" edge.
func HasCorrections() predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CorrectionsTable, CorrectionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCorrectionsWith applies the HasEdge predicate on the "corrections" edge with a given conditions (other predicates).
func HasCorrectionsWith(preds ...predicate.Correction) predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := newCorrectionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.NotPredicates(p))
}
