// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "holding_company", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "head_office_location", Type: field.TypeString, Nullable: true},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// CorrectionsColumns holds the columns for the "corrections" table.
	CorrectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "corrected_value", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "corrected_by_user", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "corrected_at", Type: field.TypeTime},
		{Name: "extracted_field_id", Type: field.TypeUUID},
	}
	// CorrectionsTable holds the schema information for the "corrections" table.
	CorrectionsTable = &schema.Table{
		Name:       "corrections",
		Columns:    CorrectionsColumns,
		PrimaryKey: []*schema.Column{CorrectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "corrections_extracted_fields_corrections",
				Columns:    []*schema.Column{CorrectionsColumns[5]},
				RefColumns: []*schema.Column{ExtractedFieldsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "correction_extracted_field_id",
				Unique:  false,
				Columns: []*schema.Column{CorrectionsColumns[5]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID, Nullable: true},
		{Name: "fund_id", Type: field.TypeUUID, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_companies_documents",
				Columns:    []*schema.Column{DocumentsColumns[4]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "documents_funds_documents",
				Columns:    []*schema.Column{DocumentsColumns[5]},
				RefColumns: []*schema.Column{FundsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3]},
			},
		},
	}
	// ExtractedFieldsColumns holds the columns for the "extracted_fields" table.
	ExtractedFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "extracted_value", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "page_number", Type: field.TypeInt, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractedFieldsTable holds the schema information for the "extracted_fields" table.
	ExtractedFieldsTable = &schema.Table{
		Name:       "extracted_fields",
		Columns:    ExtractedFieldsColumns,
		PrimaryKey: []*schema.Column{ExtractedFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_fields_documents_fields",
				Columns:    []*schema.Column{ExtractedFieldsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedfield_document_id_page_number",
				Unique:  false,
				Columns: []*schema.Column{ExtractedFieldsColumns[6], ExtractedFieldsColumns[3]},
			},
		},
	}
	// FinancialHighlightsColumns holds the columns for the "financial_highlights" table.
	FinancialHighlightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "period", Type: field.TypeString},
		{Name: "currency", Type: field.TypeString, Nullable: true},
		{Name: "revenue", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "ebitda", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "ebitda_margin", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "ebit", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "ebit_margin", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "net_profit_after_tax", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "capex", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "net_debt", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// FinancialHighlightsTable holds the schema information for the "financial_highlights" table.
	FinancialHighlightsTable = &schema.Table{
		Name:       "financial_highlights",
		Columns:    FinancialHighlightsColumns,
		PrimaryKey: []*schema.Column{FinancialHighlightsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "financial_highlights_companies_financials",
				Columns:    []*schema.Column{FinancialHighlightsColumns[11]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "financialhighlight_company_id",
				Unique:  false,
				Columns: []*schema.Column{FinancialHighlightsColumns[11]},
			},
		},
	}
	// FundsColumns holds the columns for the "funds" table.
	FundsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "type", Type: field.TypeString, Nullable: true},
	}
	// FundsTable holds the schema information for the "funds" table.
	FundsTable = &schema.Table{
		Name:       "funds",
		Columns:    FundsColumns,
		PrimaryKey: []*schema.Column{FundsColumns[0]},
	}
	// InvestmentsColumns holds the columns for the "investments" table.
	InvestmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "fund_role", Type: field.TypeString, Nullable: true},
		{Name: "investment_type", Type: field.TypeString, Nullable: true},
		{Name: "ownership_percent", Type: field.TypeFloat64, Default: 0},
		{Name: "date_of_first_completion", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "transaction_value", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "current_cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "fair_value", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "company_id", Type: field.TypeUUID},
		{Name: "fund_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvestmentsTable holds the schema information for the "investments" table.
	InvestmentsTable = &schema.Table{
		Name:       "investments",
		Columns:    InvestmentsColumns,
		PrimaryKey: []*schema.Column{InvestmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "investments_companies_investments",
				Columns:    []*schema.Column{InvestmentsColumns[8]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "investments_funds_investments",
				Columns:    []*schema.Column{InvestmentsColumns[9]},
				RefColumns: []*schema.Column{FundsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "investment_company_id",
				Unique:  false,
				Columns: []*schema.Column{InvestmentsColumns[8]},
			},
			{
				Name:    "investment_fund_id",
				Unique:  false,
				Columns: []*schema.Column{InvestmentsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompaniesTable,
		CorrectionsTable,
		DocumentsTable,
		ExtractedFieldsTable,
		FinancialHighlightsTable,
		FundsTable,
		InvestmentsTable,
	}
)

func init() {
	CompaniesTable.Annotation = &entsql.Annotation{
		Table: "companies",
	}
	CorrectionsTable.ForeignKeys[0].RefTable = ExtractedFieldsTable
	CorrectionsTable.Annotation = &entsql.Annotation{
		Table: "corrections",
	}
	DocumentsTable.ForeignKeys[0].RefTable = CompaniesTable
	DocumentsTable.ForeignKeys[1].RefTable = FundsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractedFieldsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractedFieldsTable.Annotation = &entsql.Annotation{
		Table: "extracted_fields",
	}
	FinancialHighlightsTable.ForeignKeys[0].RefTable = CompaniesTable
	FinancialHighlightsTable.Annotation = &entsql.Annotation{
		Table: "financial_highlights",
	}
	FundsTable.Annotation = &entsql.Annotation{
		Table: "funds",
	}
	InvestmentsTable.ForeignKeys[0].RefTable = CompaniesTable
	InvestmentsTable.ForeignKeys[1].RefTable = FundsTable
	InvestmentsTable.Annotation = &entsql.Annotation{
		Table: "investments",
	}
}
