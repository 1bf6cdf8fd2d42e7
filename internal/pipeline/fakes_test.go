package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
	"github.com/hunggoodkidz/data-extraction-module/internal/ocr"
)

// fakeOracle replays canned responses and records every prompt so tests
// can assert the oracle was (or was not) consulted.
type fakeOracle struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
}

func (f *fakeOracle) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", common.NewAppError("ORACLE_TRANSPORT", "no canned response", common.ErrOracleUnavailable)
	}
	out := f.responses[0]
	f.responses = f.responses[1:]
	return out, nil
}

func (f *fakeOracle) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type fakeTextSource struct {
	preview    string
	previewErr error
	result     ocr.Result
	extractErr error
}

func (f *fakeTextSource) Extract(context.Context, string) (ocr.Result, error) {
	return f.result, f.extractErr
}

func (f *fakeTextSource) Preview(context.Context, string, int) (string, error) {
	return f.preview, f.previewErr
}

type memDocs struct {
	rows map[uuid.UUID]*entity.Document
}

func newMemDocs() *memDocs { return &memDocs{rows: map[uuid.UUID]*entity.Document{}} }

func (m *memDocs) Create(_ context.Context, doc *entity.Document) (*entity.Document, error) {
	cp := *doc
	cp.UploadedAt = time.Now()
	m.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, ok := m.rows[id]
	if !ok {
		return nil, common.NewAppError("DOCUMENT_NOT_FOUND", "document "+id.String(), common.ErrNotFound)
	}
	out := *doc
	return &out, nil
}

func (m *memDocs) List(context.Context) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, doc := range m.rows {
		cp := *doc
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memDocs) SetCompany(_ context.Context, id, companyID uuid.UUID) error {
	doc, ok := m.rows[id]
	if !ok {
		return common.NewAppError("DOCUMENT_NOT_FOUND", "document "+id.String(), common.ErrNotFound)
	}
	cid := companyID
	doc.CompanyID = &cid
	return nil
}

type memFields struct {
	rows []*entity.ExtractedField
}

func (m *memFields) Append(_ context.Context, f *entity.ExtractedField) (*entity.ExtractedField, error) {
	cp := *f
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	m.rows = append(m.rows, &cp)
	out := cp
	return &out, nil
}

func (m *memFields) GetByID(_ context.Context, id uuid.UUID) (*entity.ExtractedField, error) {
	for _, f := range m.rows {
		if f.ID == id {
			out := *f
			return &out, nil
		}
	}
	return nil, common.NewAppError("FIELD_NOT_FOUND", "extracted field "+id.String(), common.ErrNotFound)
}

func (m *memFields) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*entity.ExtractedField, error) {
	var out []*entity.ExtractedField
	for _, f := range m.rows {
		if f.DocumentID == documentID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memFunds struct {
	rows      map[string]*entity.Fund
	createErr error
	missOnce  bool // next GetByName reports not-found even when present
}

func newMemFunds() *memFunds { return &memFunds{rows: map[string]*entity.Fund{}} }

func (m *memFunds) GetByName(_ context.Context, name string) (*entity.Fund, error) {
	f, ok := m.rows[name]
	if m.missOnce {
		m.missOnce = false
		ok = false
	}
	if !ok {
		return nil, common.NewAppError("FUND_NOT_FOUND", "fund "+name, common.ErrNotFound)
	}
	out := *f
	return &out, nil
}

func (m *memFunds) Create(_ context.Context, name, fundType string) (*entity.Fund, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	f := &entity.Fund{ID: uuid.New(), Name: name, Type: fundType}
	m.rows[name] = f
	out := *f
	return &out, nil
}

type memCompanies struct {
	rows map[uuid.UUID]*entity.Company
}

func newMemCompanies() *memCompanies { return &memCompanies{rows: map[uuid.UUID]*entity.Company{}} }

func (m *memCompanies) GetByID(_ context.Context, id uuid.UUID) (*entity.Company, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, common.NewAppError("COMPANY_NOT_FOUND", "company "+id.String(), common.ErrNotFound)
	}
	out := *c
	return &out, nil
}

func (m *memCompanies) GetByName(_ context.Context, name string) (*entity.Company, error) {
	for _, c := range m.rows {
		if c.Name == name {
			out := *c
			return &out, nil
		}
	}
	return nil, common.NewAppError("COMPANY_NOT_FOUND", "company "+name, common.ErrNotFound)
}

func (m *memCompanies) Create(_ context.Context, c *entity.Company) (*entity.Company, error) {
	cp := *c
	cp.ID = uuid.New()
	m.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memCompanies) UpdateProfile(_ context.Context, id uuid.UUID, holding, description, location *string) (*entity.Company, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, common.NewAppError("COMPANY_NOT_FOUND", "company "+id.String(), common.ErrNotFound)
	}
	if holding != nil {
		c.HoldingCompany = holding
	}
	if description != nil {
		c.Description = description
	}
	if location != nil {
		c.HeadOfficeLocation = location
	}
	out := *c
	return &out, nil
}

type memInvestments struct {
	rows []*entity.Investment
}

func (m *memInvestments) Create(_ context.Context, inv *entity.Investment) (*entity.Investment, error) {
	cp := *inv
	cp.ID = uuid.New()
	m.rows = append(m.rows, &cp)
	out := cp
	return &out, nil
}

func (m *memInvestments) ListByCompany(_ context.Context, companyID uuid.UUID) ([]*entity.Investment, error) {
	var out []*entity.Investment
	for _, inv := range m.rows {
		if inv.CompanyID == companyID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memFinancials struct {
	rows []*entity.FinancialHighlight
}

func (m *memFinancials) Create(_ context.Context, fh *entity.FinancialHighlight) (*entity.FinancialHighlight, error) {
	cp := *fh
	cp.ID = uuid.New()
	m.rows = append(m.rows, &cp)
	out := cp
	return &out, nil
}

func (m *memFinancials) ListByCompany(_ context.Context, companyID uuid.UUID) ([]*entity.FinancialHighlight, error) {
	var out []*entity.FinancialHighlight
	for _, fh := range m.rows {
		if fh.CompanyID == companyID {
			cp := *fh
			out = append(out, &cp)
		}
	}
	return out, nil
}

// pagesResult builds an acquisition result with one page per text.
func pagesResult(method string, texts ...string) ocr.Result {
	res := ocr.Result{Method: method}
	for i, txt := range texts {
		res.Pages = append(res.Pages, ocr.PageText{Number: i + 1, Text: txt})
	}
	return res
}

func promptContains(prompts []string, needle string) bool {
	for _, p := range prompts {
		if strings.Contains(p, needle) {
			return true
		}
	}
	return false
}
