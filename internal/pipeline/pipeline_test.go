package pipeline

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/constants"
	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
	"github.com/hunggoodkidz/data-extraction-module/internal/storage"
)

type testEnv struct {
	proc        *Processor
	oracle      *fakeOracle
	text        *fakeTextSource
	docs        *memDocs
	fields      *memFields
	funds       *memFunds
	companies   *memCompanies
	investments *memInvestments
	financials  *memFinancials
	uploadDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	env := &testEnv{
		oracle:      &fakeOracle{},
		text:        &fakeTextSource{preview: "Annual report for Alpha Fund III and Beta Holdings"},
		docs:        newMemDocs(),
		fields:      &memFields{},
		funds:       newMemFunds(),
		companies:   newMemCompanies(),
		investments: &memInvestments{},
		financials:  &memFinancials{},
		uploadDir:   dir,
	}
	env.proc = NewProcessor(Config{}, store, env.text, env.oracle,
		env.docs, env.fields, env.funds, env.companies, env.investments, env.financials, nil)
	return env
}

func (env *testEnv) uploadedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(env.uploadDir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestIngest(t *testing.T) {
	env := newTestEnv(t)
	env.oracle.responses = []string{`{"fund_name": "Alpha Fund III", "company_name": "Beta Holdings"}`}

	doc, err := env.proc.Ingest(context.Background(), "report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.FileName != "report.pdf" {
		t.Errorf("file name %q", doc.FileName)
	}
	files := env.uploadedFiles(t)
	if len(files) != 1 {
		t.Fatalf("expected 1 stored file, got %d", len(files))
	}
	if !strings.HasSuffix(files[0], "_report.pdf") || !strings.HasPrefix(files[0], doc.ID.String()) {
		t.Errorf("stored name %q not <id>_<original>", files[0])
	}

	fund, err := env.funds.GetByName(context.Background(), "Alpha Fund III")
	if err != nil {
		t.Fatalf("fund not resolved: %v", err)
	}
	if fund.Type != constants.DefaultFundType {
		t.Errorf("fund type %q", fund.Type)
	}
	company, err := env.companies.GetByName(context.Background(), "Beta Holdings")
	if err != nil {
		t.Fatalf("company not resolved: %v", err)
	}
	if company.Description == nil || *company.Description != constants.DefaultCompanyDescription {
		t.Errorf("company description %v", company.Description)
	}
	if doc.FundID == nil || *doc.FundID != fund.ID {
		t.Error("document not linked to fund")
	}
	if doc.CompanyID == nil || *doc.CompanyID != company.ID {
		t.Error("document not linked to company")
	}
}

func TestIngestRejectsNonPDFBeforeStorage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.proc.Ingest(context.Background(), "report.docx", []byte("bytes"))
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if files := env.uploadedFiles(t); len(files) != 0 {
		t.Errorf("rejected upload was stored: %v", files)
	}
	if env.oracle.calls() != 0 {
		t.Error("oracle consulted for rejected upload")
	}
}

func TestIngestUnknownDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.oracle.responses = []string{`{"fund_name": null, "company_name": ""}`}

	_, err := env.proc.Ingest(context.Background(), "report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := env.funds.GetByName(context.Background(), constants.UnknownFund); err != nil {
		t.Errorf("Unknown Fund not created: %v", err)
	}
	if _, err := env.companies.GetByName(context.Background(), constants.UnknownCompany); err != nil {
		t.Errorf("Unknown Company not created: %v", err)
	}
}

func TestIngestMalformedResponseCreatesNoDocument(t *testing.T) {
	env := newTestEnv(t)
	env.oracle.responses = []string{"I could not find anything useful."}

	_, err := env.proc.Ingest(context.Background(), "report.pdf", []byte("%PDF-1.4"))
	if !errors.Is(err, common.ErrNoObject) {
		t.Fatalf("expected no-object error, got %v", err)
	}
	docs, _ := env.docs.List(context.Background())
	if len(docs) != 0 {
		t.Errorf("document created despite malformed response")
	}
	// the saved file is allowed to remain: rows are the contract
	if files := env.uploadedFiles(t); len(files) != 1 {
		t.Errorf("expected the stored upload to remain, got %v", files)
	}
}

func TestIngestResolutionIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.oracle.responses = []string{
		`{"fund_name": "Alpha Fund III", "company_name": "Beta Holdings"}`,
		`{"fund_name": "Alpha Fund III", "company_name": "Beta Holdings"}`,
	}

	doc1, err := env.proc.Ingest(context.Background(), "q1.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	doc2, err := env.proc.Ingest(context.Background(), "q2.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	if *doc1.FundID != *doc2.FundID {
		t.Error("same fund name resolved to different rows")
	}
	if *doc1.CompanyID != *doc2.CompanyID {
		t.Error("same company name resolved to different rows")
	}
	if len(env.funds.rows) != 1 || len(env.companies.rows) != 1 {
		t.Errorf("expected 1 fund and 1 company, got %d and %d",
			len(env.funds.rows), len(env.companies.rows))
	}
}

func TestResolveFundLostRaceRefetches(t *testing.T) {
	env := newTestEnv(t)
	// the first lookup misses, create loses the unique-name race, and the
	// re-fetch finds the row the other writer inserted
	want := &entity.Fund{ID: uuid.New(), Name: "Alpha Fund III", Type: constants.DefaultFundType}
	env.funds.missOnce = true
	env.funds.createErr = errors.New("duplicate key value violates unique constraint")
	env.funds.rows[want.Name] = want

	got, err := env.proc.resolveFund(context.Background(), want.Name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("resolved %v, want %v", got.ID, want.ID)
	}
}

func TestResolveFundCreateFailureWithNoRow(t *testing.T) {
	env := newTestEnv(t)
	env.funds.createErr = errors.New("connection reset")

	if _, err := env.proc.resolveFund(context.Background(), "Alpha Fund III"); err == nil {
		t.Fatal("expected create error to surface when no row exists")
	}
}

func TestExtractRawText(t *testing.T) {
	env := newTestEnv(t)
	env.oracle.responses = []string{`{"fund_name": "F", "company_name": "C"}`}
	doc, err := env.proc.Ingest(context.Background(), "report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}

	env.text.result = pagesResult("pdf-text", "page one", "page two", "page three")
	res, err := env.proc.ExtractRawText(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Pages != 3 || res.Method != "pdf-text" {
		t.Errorf("unexpected result %+v", res)
	}

	rows, _ := env.fields.ListByDocument(context.Background(), doc.ID)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.FieldName != constants.RawTextField {
			t.Errorf("row %d field name %q", i, row.FieldName)
		}
		if row.PageNumber == nil || *row.PageNumber != i+1 {
			t.Errorf("row %d page number %v", i, row.PageNumber)
		}
	}

	// a second run accumulates, it does not replace
	if _, err := env.proc.ExtractRawText(context.Background(), doc.ID); err != nil {
		t.Fatal(err)
	}
	rows, _ = env.fields.ListByDocument(context.Background(), doc.ID)
	if len(rows) != 6 {
		t.Errorf("expected 6 rows after second run, got %d", len(rows))
	}
}

func TestExtractRawTextUnknownDocument(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.proc.ExtractRawText(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func ingestWithText(t *testing.T, env *testEnv, pages ...string) *entity.Document {
	t.Helper()
	env.oracle.responses = append(env.oracle.responses,
		`{"fund_name": "Alpha Fund III", "company_name": "Beta Holdings"}`)
	doc, err := env.proc.Ingest(context.Background(), "report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	env.text.result = pagesResult("pdf-text", pages...)
	if _, err := env.proc.ExtractRawText(context.Background(), doc.ID); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractCompanyProfile(t *testing.T) {
	env := newTestEnv(t)
	doc := ingestWithText(t, env, "Beta Holdings is a Korean manufacturer.", "Deal details.")
	env.oracle.responses = append(env.oracle.responses, `{
		"company_name": "Beta Holdings",
		"holding_company": "Beta Group",
		"business_description": "Specialty manufacturer",
		"head_office_location": "Seoul",
		"fund_role": "Lead",
		"investment_type": "Buyout",
		"ownership_percent": "65%",
		"first_completion_date": "2021-03-15",
		"transaction_value": "$4.2 billion",
		"current_cost": "310",
		"fair_value": 455.5
	}`)

	company, inv, err := env.proc.ExtractCompanyProfile(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// profile text is the accumulated pages
	if !promptContains(env.oracle.prompts, "Beta Holdings is a Korean manufacturer.") {
		t.Error("profile prompt missing page text")
	}

	if company.Description == nil || *company.Description != "Specialty manufacturer" {
		t.Errorf("description not updated: %v", company.Description)
	}
	if company.HeadOfficeLocation == nil || *company.HeadOfficeLocation != "Seoul" {
		t.Errorf("location not updated: %v", company.HeadOfficeLocation)
	}
	if len(env.companies.rows) != 1 {
		t.Errorf("profile run created a second company row: %d", len(env.companies.rows))
	}

	if inv.OwnershipPercent != 65 {
		t.Errorf("ownership %v", inv.OwnershipPercent)
	}
	if inv.TransactionValue != 4.2 {
		t.Errorf("transaction value %v", inv.TransactionValue)
	}
	if inv.CurrentCost != 310 || inv.FairValue != 455.5 {
		t.Errorf("cost/fair %v/%v", inv.CurrentCost, inv.FairValue)
	}
	if inv.DateOfFirstCompletion == nil || inv.DateOfFirstCompletion.Format("2006-01-02") != "2021-03-15" {
		t.Errorf("completion date %v", inv.DateOfFirstCompletion)
	}
	if inv.FundID == nil || *inv.FundID != *doc.FundID {
		t.Error("investment not attributed to the document's fund")
	}

	got, _ := env.docs.GetByID(context.Background(), doc.ID)
	if got.CompanyID == nil || *got.CompanyID != company.ID {
		t.Error("document not back-linked to company")
	}
}

func TestExtractCompanyProfileRequiresRawText(t *testing.T) {
	env := newTestEnv(t)
	env.oracle.responses = []string{`{"fund_name": "F", "company_name": "C"}`}
	doc, err := env.proc.Ingest(context.Background(), "report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	before := env.oracle.calls()

	_, _, err = env.proc.ExtractCompanyProfile(context.Background(), doc.ID)
	if !errors.Is(err, common.ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
	if env.oracle.calls() != before {
		t.Error("oracle consulted despite unmet precondition")
	}
}

func TestExtractCompanyProfileAppendsInvestments(t *testing.T) {
	env := newTestEnv(t)
	doc := ingestWithText(t, env, "text")
	profile := `{"company_name": "Beta Holdings", "ownership_percent": "40"}`
	env.oracle.responses = append(env.oracle.responses, profile, profile)

	if _, _, err := env.proc.ExtractCompanyProfile(context.Background(), doc.ID); err != nil {
		t.Fatal(err)
	}
	if _, _, err := env.proc.ExtractCompanyProfile(context.Background(), doc.ID); err != nil {
		t.Fatal(err)
	}

	if len(env.investments.rows) != 2 {
		t.Errorf("expected 2 investments, got %d", len(env.investments.rows))
	}
	if len(env.companies.rows) != 1 {
		t.Errorf("expected 1 company row, got %d", len(env.companies.rows))
	}
}

func TestExtractCompanyProfileBadDateDropped(t *testing.T) {
	env := newTestEnv(t)
	doc := ingestWithText(t, env, "text")
	env.oracle.responses = append(env.oracle.responses,
		`{"company_name": "Beta Holdings", "first_completion_date": "Q1 2021"}`)

	_, inv, err := env.proc.ExtractCompanyProfile(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.DateOfFirstCompletion != nil {
		t.Errorf("unparseable date should be dropped, got %v", inv.DateOfFirstCompletion)
	}
}

func TestExtractFinancialHighlights(t *testing.T) {
	env := newTestEnv(t)
	doc := ingestWithText(t, env, "Revenue was KRW 1,200bn in FY2023.")
	env.oracle.responses = append(env.oracle.responses, `{
		"period": "FY2023",
		"currency": "KRW bn",
		"revenue": "1200",
		"ebitda": "350",
		"ebitda_margin": "29.2%",
		"ebit": "290",
		"ebit_margin": "24.2%",
		"net_profit_after_tax": "180",
		"capex": "95",
		"net_debt": "410"
	}`)

	fh, err := env.proc.ExtractFinancialHighlights(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fh.Period != "FY2023" {
		t.Errorf("period %q", fh.Period)
	}
	if fh.Currency == nil || *fh.Currency != "KRW bn" {
		t.Errorf("currency %v", fh.Currency)
	}
	if fh.Revenue != 1200 || fh.EBITDAMargin != 29.2 || fh.NetDebt != 410 {
		t.Errorf("coerced metrics wrong: %+v", fh)
	}
	if *doc.CompanyID != fh.CompanyID {
		t.Error("highlight not attributed to the linked company")
	}
}

func TestExtractFinancialHighlightsSparse(t *testing.T) {
	env := newTestEnv(t)
	doc := ingestWithText(t, env, "text")
	env.oracle.responses = append(env.oracle.responses, `{"revenue": "not disclosed"}`)

	fh, err := env.proc.ExtractFinancialHighlights(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fh.Period != "Unknown" {
		t.Errorf("missing period should default, got %q", fh.Period)
	}
	if fh.Revenue != 0 {
		t.Errorf("non-numeric revenue should coerce to 0, got %v", fh.Revenue)
	}
	if fh.Currency != nil {
		t.Errorf("missing currency should stay nil, got %v", fh.Currency)
	}
}

func TestExtractFinancialHighlightsRequiresRawText(t *testing.T) {
	env := newTestEnv(t)
	env.oracle.responses = []string{`{"fund_name": "F", "company_name": "C"}`}
	doc, err := env.proc.Ingest(context.Background(), "report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	before := env.oracle.calls()

	_, err = env.proc.ExtractFinancialHighlights(context.Background(), doc.ID)
	if !errors.Is(err, common.ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
	if env.oracle.calls() != before {
		t.Error("oracle consulted despite unmet precondition")
	}
}

func TestExtractFinancialHighlightsRequiresCompanyLink(t *testing.T) {
	env := newTestEnv(t)
	doc := ingestWithText(t, env, "text")
	// sever the link ingest established
	env.docs.rows[doc.ID].CompanyID = nil

	_, err := env.proc.ExtractFinancialHighlights(context.Background(), doc.ID)
	if !errors.Is(err, common.ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestOracleFailurePropagates(t *testing.T) {
	env := newTestEnv(t)
	doc := ingestWithText(t, env, "text")
	env.oracle.err = common.NewAppError("ORACLE_TRANSPORT", "connection refused", common.ErrOracleUnavailable)

	_, _, err := env.proc.ExtractCompanyProfile(context.Background(), doc.ID)
	if !errors.Is(err, common.ErrOracleUnavailable) {
		t.Fatalf("expected oracle unavailable, got %v", err)
	}
	if len(env.investments.rows) != 0 {
		t.Error("investment created despite oracle failure")
	}
}
