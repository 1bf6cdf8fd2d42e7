// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Correction is the predicate function for correction builders.
type Correction func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractedField is the predicate function for extractedfield builders.
type ExtractedField func(*sql.Selector)

// FinancialHighlight is the predicate function for financialhighlight builders.
type FinancialHighlight func(*sql.Selector)

// Fund is the predicate function for fund builders.
type Fund func(*sql.Selector)

// Investment is the predicate function for investment builders.
type Investment func(*sql.Selector)
