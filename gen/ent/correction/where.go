// Code generated by ent, DO NOT EDIT.

package correction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldID, id))
}

// ExtractedFieldID applies equality check predicate on the "extracted_field_id" field. It's identical to ExtractedFieldIDEQ.
func ExtractedFieldID(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldExtractedFieldID, v))
}

// CorrectedValue applies equality check predicate on the "corrected_value" field. It's identical to CorrectedValueEQ.
func CorrectedValue(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedValue, v))
}

// CorrectedByUser applies equality check predicate on the "corrected_by_user" field. It's identical to CorrectedByUserEQ.
func CorrectedByUser(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedByUser, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldReason, v))
}

// CorrectedAt applies equality check predicate on the "corrected_at" field. It's identical to CorrectedAtEQ.
func CorrectedAt(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedAt, v))
}

// ExtractedFieldIDEQ applies the EQ predicate on the "extracted_field_id" field.
func ExtractedFieldIDEQ(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldExtractedFieldID, v))
}

// ExtractedFieldIDNEQ applies the NEQ predicate on the "extracted_field_id" field.
func ExtractedFieldIDNEQ(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldExtractedFieldID, v))
}

// ExtractedFieldIDIn applies the In predicate on the "extracted_field_id" field.
func ExtractedFieldIDIn(vs ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldExtractedFieldID, vs...))
}

// ExtractedFieldIDNotIn applies the NotIn predicate on the "extracted_field_id" field.
func ExtractedFieldIDNotIn(vs ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldExtractedFieldID, vs...))
}

// CorrectedValueEQ applies the EQ predicate on the "corrected_value" field.
func CorrectedValueEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedValue, v))
}

// CorrectedValueNEQ applies the NEQ predicate on the "corrected_value" field.
func CorrectedValueNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldCorrectedValue, v))
}

// CorrectedValueIn applies the In predicate on the "corrected_value" field.
func CorrectedValueIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldCorrectedValue, vs...))
}

// CorrectedValueNotIn applies the NotIn predicate on the "corrected_value" field.
func CorrectedValueNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldCorrectedValue, vs...))
}

// CorrectedValueGT applies the GT predicate on the "corrected_value" field.
func CorrectedValueGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldCorrectedValue, v))
}

// CorrectedValueGTE applies the GTE predicate on the "corrected_value" field.
func CorrectedValueGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldCorrectedValue, v))
}

// CorrectedValueLT applies the LT predicate on the "corrected_value" field.
func CorrectedValueLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldCorrectedValue, v))
}

// CorrectedValueLTE applies the LTE predicate on the "corrected_value" field.
func CorrectedValueLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldCorrectedValue, v))
}

// CorrectedValueContains applies the Contains predicate on the "corrected_value" field.
func CorrectedValueContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldCorrectedValue, v))
}

// CorrectedValueHasPrefix applies the HasPrefix predicate on the "corrected_value" field.
func CorrectedValueHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldCorrectedValue, v))
}

// CorrectedValueHasSuffix applies the HasSuffix predicate on the "corrected_value" field.
func CorrectedValueHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldCorrectedValue, v))
}

// CorrectedValueEqualFold applies the EqualFold predicate on the "corrected_value" field.
func CorrectedValueEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldCorrectedValue, v))
}

// CorrectedValueContainsFold applies the ContainsFold predicate on the "corrected_value" field.
func CorrectedValueContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldCorrectedValue, v))
}

// CorrectedByUserEQ applies the EQ predicate on the "corrected_by_user" field.
func CorrectedByUserEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedByUser, v))
}

// CorrectedByUserNEQ applies the NEQ predicate on the "corrected_by_user" field.
func CorrectedByUserNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldCorrectedByUser, v))
}

// CorrectedByUserIn applies the In predicate on the "corrected_by_user" field.
func CorrectedByUserIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldCorrectedByUser, vs...))
}

// CorrectedByUserNotIn applies the NotIn predicate on the "corrected_by_user" field.
func CorrectedByUserNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldCorrectedByUser, vs...))
}

// CorrectedByUserGT applies the GT predicate on the "corrected_by_user" field.
func CorrectedByUserGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldCorrectedByUser, v))
}

// CorrectedByUserGTE applies the GTE predicate on the "corrected_by_user" field.
func CorrectedByUserGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldCorrectedByUser, v))
}

// CorrectedByUserLT applies the LT predicate on the "corrected_by_user" field.
func CorrectedByUserLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldCorrectedByUser, v))
}

// CorrectedByUserLTE applies the LTE predicate on the "corrected_by_user" field.
func CorrectedByUserLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldCorrectedByUser, v))
}

// CorrectedByUserContains applies the Contains predicate on the "corrected_by_user" field.
func CorrectedByUserContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldCorrectedByUser, v))
}

// CorrectedByUserHasPrefix applies the HasPrefix predicate on the "corrected_by_user" field.
func CorrectedByUserHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldCorrectedByUser, v))
}

// CorrectedByUserHasSuffix applies the HasSuffix predicate on the "corrected_by_user" field.
func CorrectedByUserHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldCorrectedByUser, v))
}

// CorrectedByUserIsNil applies the IsNil predicate on the "corrected_by_user" field.
func CorrectedByUserIsNil() predicate.Correction {
	return predicate.Correction(sql.FieldIsNull(FieldCorrectedByUser))
}

// CorrectedByUserNotNil applies the NotNil predicate on the "corrected_by_user" field.
func CorrectedByUserNotNil() predicate.Correction {
	return predicate.Correction(sql.FieldNotNull(FieldCorrectedByUser))
}

// CorrectedByUserEqualFold applies the EqualFold predicate on the "corrected_by_user" field.
func CorrectedByUserEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldCorrectedByUser, v))
}

// CorrectedByUserContainsFold applies the ContainsFold predicate on the "corrected_by_user" field.
func CorrectedByUserContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldCorrectedByUser, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.Correction {
	return predicate.Correction(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.Correction {
	return predicate.Correction(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldReason, v))
}

// CorrectedAtEQ applies the EQ predicate on the "corrected_at" field.
func CorrectedAtEQ(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedAt, v))
}

// CorrectedAtNEQ applies the NEQ predicate on the "corrected_at" field.
func CorrectedAtNEQ(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldCorrectedAt, v))
}

// CorrectedAtIn applies the In predicate on the "corrected_at" field.
func CorrectedAtIn(vs ...time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldCorrectedAt, vs...))
}

// CorrectedAtNotIn applies the NotIn predicate on the "corrected_at" field.
func CorrectedAtNotIn(vs ...time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldCorrectedAt, vs...))
}

// CorrectedAtGT applies the GT predicate on the "corrected_at" field.
func CorrectedAtGT(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldCorrectedAt, v))
}

// CorrectedAtGTE applies the GTE predicate on the "corrected_at" field.
func CorrectedAtGTE(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldCorrectedAt, v))
}

// CorrectedAtLT applies the LT predicate on the "corrected_at" field.
func CorrectedAtLT(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldCorrectedAt, v))
}

// CorrectedAtLTE applies the LTE predicate on the "corrected_at" field.
func CorrectedAtLTE(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldCorrectedAt, v))
}

// HasExtractedField applies the HasEdge predicate on the "extracted_field" edge.
func HasExtractedField() predicate.Correction {
	return predicate.Correction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExtractedFieldTable, ExtractedFieldColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractedFieldWith applies the HasEdge predicate on the "extracted_field" edge with a given conditions (other predicates).
func HasExtractedFieldWith(preds ...predicate.ExtractedField) predicate.Correction {
	return predicate.Correction(func(s *sql.Selector) {
		step := newExtractedFieldStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Correction) predicate.Correction {
	return predicate.Correction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Correction) predicate.Correction {
	return predicate.Correction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Correction) predicate.Correction {
	return predicate.Correction(sql.NotPredicates(p))
}
