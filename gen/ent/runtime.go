// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/db/ent/schema"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/correction"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/document"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/fund"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/investment"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	correctionFields := schema.Correction{}.Fields()
	_ = correctionFields
	// correctionDescCorrectedAt is the schema descriptor for corrected_at field.
	correctionDescCorrectedAt := correctionFields[5].Descriptor()
	// correction.DefaultCorrectedAt holds the default value on creation for the corrected_at field.
	correction.DefaultCorrectedAt = correctionDescCorrectedAt.Default.(func() time.Time)
	// correctionDescID is the schema descriptor for id field.
	correctionDescID := correctionFields[0].Descriptor()
	// correction.DefaultID holds the default value on creation for the id field.
	correction.DefaultID = correctionDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[3].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[4].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[5].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractedfieldFields := schema.ExtractedField{}.Fields()
	_ = extractedfieldFields
	// extractedfieldDescFieldName is the schema descriptor for field_name field.
	extractedfieldDescFieldName := extractedfieldFields[2].Descriptor()
	// extractedfield.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	extractedfield.FieldNameValidator = extractedfieldDescFieldName.Validators[0].(func(string) error)
	// extractedfieldDescCreatedAt is the schema descriptor for created_at field.
	extractedfieldDescCreatedAt := extractedfieldFields[6].Descriptor()
	// extractedfield.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedfield.DefaultCreatedAt = extractedfieldDescCreatedAt.Default.(func() time.Time)
	// extractedfieldDescID is the schema descriptor for id field.
	extractedfieldDescID := extractedfieldFields[0].Descriptor()
	// extractedfield.DefaultID holds the default value on creation for the id field.
	extractedfield.DefaultID = extractedfieldDescID.Default.(func() uuid.UUID)
	financialhighlightFields := schema.FinancialHighlight{}.Fields()
	_ = financialhighlightFields
	// financialhighlightDescRevenue is the schema descriptor for revenue field.
	financialhighlightDescRevenue := financialhighlightFields[4].Descriptor()
	// financialhighlight.DefaultRevenue holds the default value on creation for the revenue field.
	financialhighlight.DefaultRevenue = financialhighlightDescRevenue.Default.(float64)
	// financialhighlightDescEbitda is the schema descriptor for ebitda field.
	financialhighlightDescEbitda := financialhighlightFields[5].Descriptor()
	// financialhighlight.DefaultEbitda holds the default value on creation for the ebitda field.
	financialhighlight.DefaultEbitda = financialhighlightDescEbitda.Default.(float64)
	// financialhighlightDescEbitdaMargin is the schema descriptor for ebitda_margin field.
	financialhighlightDescEbitdaMargin := financialhighlightFields[6].Descriptor()
	// financialhighlight.DefaultEbitdaMargin holds the default value on creation for the ebitda_margin field.
	financialhighlight.DefaultEbitdaMargin = financialhighlightDescEbitdaMargin.Default.(float64)
	// financialhighlightDescEbit is the schema descriptor for ebit field.
	financialhighlightDescEbit := financialhighlightFields[7].Descriptor()
	// financialhighlight.DefaultEbit holds the default value on creation for the ebit field.
	financialhighlight.DefaultEbit = financialhighlightDescEbit.Default.(float64)
	// financialhighlightDescEbitMargin is the schema descriptor for ebit_margin field.
	financialhighlightDescEbitMargin := financialhighlightFields[8].Descriptor()
	// financialhighlight.DefaultEbitMargin holds the default value on creation for the ebit_margin field.
	financialhighlight.DefaultEbitMargin = financialhighlightDescEbitMargin.Default.(float64)
	// financialhighlightDescNetProfitAfterTax is the schema descriptor for net_profit_after_tax field.
	financialhighlightDescNetProfitAfterTax := financialhighlightFields[9].Descriptor()
	// financialhighlight.DefaultNetProfitAfterTax holds the default value on creation for the net_profit_after_tax field.
	financialhighlight.DefaultNetProfitAfterTax = financialhighlightDescNetProfitAfterTax.Default.(float64)
	// financialhighlightDescCapex is the schema descriptor for capex field.
	financialhighlightDescCapex := financialhighlightFields[10].Descriptor()
	// financialhighlight.DefaultCapex holds the default value on creation for the capex field.
	financialhighlight.DefaultCapex = financialhighlightDescCapex.Default.(float64)
	// financialhighlightDescNetDebt is the schema descriptor for net_debt field.
	financialhighlightDescNetDebt := financialhighlightFields[11].Descriptor()
	// financialhighlight.DefaultNetDebt holds the default value on creation for the net_debt field.
	financialhighlight.DefaultNetDebt = financialhighlightDescNetDebt.Default.(float64)
	// financialhighlightDescID is the schema descriptor for id field.
	financialhighlightDescID := financialhighlightFields[0].Descriptor()
	// financialhighlight.DefaultID holds the default value on creation for the id field.
	financialhighlight.DefaultID = financialhighlightDescID.Default.(func() uuid.UUID)
	fundFields := schema.Fund{}.Fields()
	_ = fundFields
	// fundDescName is the schema descriptor for name field.
	fundDescName := fundFields[1].Descriptor()
	// fund.NameValidator is a validator for the "name" field. It is called by the builders before save.
	fund.NameValidator = fundDescName.Validators[0].(func(string) error)
	// fundDescID is the schema descriptor for id field.
	fundDescID := fundFields[0].Descriptor()
	// fund.DefaultID holds the default value on creation for the id field.
	fund.DefaultID = fundDescID.Default.(func() uuid.UUID)
	investmentFields := schema.Investment{}.Fields()
	_ = investmentFields
	// investmentDescOwnershipPercent is the schema descriptor for ownership_percent field.
	investmentDescOwnershipPercent := investmentFields[5].Descriptor()
	// investment.DefaultOwnershipPercent holds the default value on creation for the ownership_percent field.
	investment.DefaultOwnershipPercent = investmentDescOwnershipPercent.Default.(float64)
	// investmentDescTransactionValue is the schema descriptor for transaction_value field.
	investmentDescTransactionValue := investmentFields[7].Descriptor()
	// investment.DefaultTransactionValue holds the default value on creation for the transaction_value field.
	investment.DefaultTransactionValue = investmentDescTransactionValue.Default.(float64)
	// investmentDescCurrentCost is the schema descriptor for current_cost field.
	investmentDescCurrentCost := investmentFields[8].Descriptor()
	// investment.DefaultCurrentCost holds the default value on creation for the current_cost field.
	investment.DefaultCurrentCost = investmentDescCurrentCost.Default.(float64)
	// investmentDescFairValue is the schema descriptor for fair_value field.
	investmentDescFairValue := investmentFields[9].Descriptor()
	// investment.DefaultFairValue holds the default value on creation for the fair_value field.
	investment.DefaultFairValue = investmentDescFairValue.Default.(float64)
	// investmentDescID is the schema descriptor for id field.
	investmentDescID := investmentFields[0].Descriptor()
	// investment.DefaultID holds the default value on creation for the id field.
	investment.DefaultID = investmentDescID.Default.(func() uuid.UUID)
}
