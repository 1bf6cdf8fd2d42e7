package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

type memCompanies struct {
	rows map[uuid.UUID]*entity.Company
}

func (m *memCompanies) GetByID(_ context.Context, id uuid.UUID) (*entity.Company, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, common.NewAppError("COMPANY_NOT_FOUND", "company "+id.String(), common.ErrNotFound)
	}
	out := *c
	return &out, nil
}

func (m *memCompanies) GetByName(context.Context, string) (*entity.Company, error) {
	return nil, common.NewAppError("COMPANY_NOT_FOUND", "unused", common.ErrNotFound)
}

func (m *memCompanies) Create(_ context.Context, c *entity.Company) (*entity.Company, error) {
	cp := *c
	cp.ID = uuid.New()
	m.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memCompanies) UpdateProfile(_ context.Context, id uuid.UUID, _, _, _ *string) (*entity.Company, error) {
	return m.GetByID(context.Background(), id)
}

type memInvestments struct{ rows []*entity.Investment }

func (m *memInvestments) Create(_ context.Context, inv *entity.Investment) (*entity.Investment, error) {
	cp := *inv
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

type memFinancials struct{ rows []*entity.FinancialHighlight }

func (m *memFinancials) Create(_ context.Context, fh *entity.FinancialHighlight) (*entity.FinancialHighlight, error) {
	cp := *fh
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

func TestExportCompanyXLSX(t *testing.T) {
	companies := &memCompanies{rows: map[uuid.UUID]*entity.Company{}}
	company, err := companies.Create(context.Background(), &entity.Company{Name: "Beta Holdings"})
	if err != nil {
		t.Fatal(err)
	}

	krw := "KRW bn"
	financials := &memFinancials{rows: []*entity.FinancialHighlight{
		{CompanyID: company.ID, Period: "FY2023", Currency: &krw, Revenue: 1200, EBITDA: 350},
		{CompanyID: company.ID, Period: "FY2024", Revenue: 1350},
	}}
	lead := "Lead"
	investments := &memInvestments{rows: []*entity.Investment{
		{CompanyID: company.ID, FundRole: &lead, OwnershipPercent: 65, FairValue: 455.5},
	}}

	svc := NewService(companies, investments, financials, nil)
	data, err := svc.ExportCompanyXLSX(context.Background(), company.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook not readable: %v", err)
	}
	defer func() { _ = f.Close() }()

	finRows, err := f.GetRows("Financial Highlights")
	if err != nil {
		t.Fatal(err)
	}
	if len(finRows) != 3 {
		t.Fatalf("expected header + 2 highlight rows, got %d", len(finRows))
	}
	if finRows[1][0] != "FY2023" || finRows[1][1] != "KRW bn" {
		t.Errorf("unexpected highlight row %v", finRows[1])
	}

	invRows, err := f.GetRows("Investments")
	if err != nil {
		t.Fatal(err)
	}
	if len(invRows) != 2 {
		t.Fatalf("expected header + 1 investment row, got %d", len(invRows))
	}
	if invRows[1][0] != "Lead" {
		t.Errorf("unexpected investment row %v", invRows[1])
	}
}

func TestExportUnknownCompany(t *testing.T) {
	svc := NewService(
		&memCompanies{rows: map[uuid.UUID]*entity.Company{}},
		&memInvestments{}, &memFinancials{}, nil)
	_, err := svc.ExportCompanyXLSX(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestExportEmptyCompany(t *testing.T) {
	companies := &memCompanies{rows: map[uuid.UUID]*entity.Company{}}
	company, err := companies.Create(context.Background(), &entity.Company{Name: "Empty Co"})
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(companies, &memInvestments{}, &memFinancials{}, nil)
	data, err := svc.ExportCompanyXLSX(context.Background(), company.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook bytes")
	}
}
