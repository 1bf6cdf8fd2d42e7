package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hunggoodkidz/data-extraction-module/internal/repository"
)

// Service produces XLSX bytes summarizing what the pipeline has extracted
// for one company: a sheet of financial highlight rows and a sheet of
// investments.
type Service struct {
	companies   repository.CompanyRepository
	investments repository.InvestmentRepository
	financials  repository.FinancialRepository
	logger      *slog.Logger
}

func NewService(
	companies repository.CompanyRepository,
	investments repository.InvestmentRepository,
	financials repository.FinancialRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		companies:   companies,
		investments: investments,
		financials:  financials,
		logger:      logger,
	}
}

// ExportCompanyXLSX returns an XLSX workbook (as bytes) for the given company.
func (s *Service) ExportCompanyXLSX(ctx context.Context, companyID uuid.UUID) ([]byte, error) {
	start := time.Now()

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	highlights, err := s.financials.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("query financial highlights: %w", err)
	}
	investments, err := s.investments.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("query investments: %w", err)
	}

	f := excelize.NewFile()

	const finSheet = "Financial Highlights"
	if index, _ := f.GetSheetIndex(finSheet); index == -1 {
		if _, err := f.NewSheet(finSheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(finSheet)
	f.SetActiveSheet(activeIndex)

	finHeaders := []string{
		"Period",
		"Currency",
		"Revenue",
		"EBITDA",
		"EBITDA Margin",
		"EBIT",
		"EBIT Margin",
		"Net Profit After Tax",
		"Capex",
		"Net Debt",
	}
	for i, h := range finHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(finSheet, cell, h)
	}
	row := 2
	for _, fh := range highlights {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(finSheet, cell, v)
		}
		write(1, fh.Period)
		write(2, deref(fh.Currency))
		write(3, fh.Revenue)
		write(4, fh.EBITDA)
		write(5, fh.EBITDAMargin)
		write(6, fh.EBIT)
		write(7, fh.EBITMargin)
		write(8, fh.NetProfitAfterTax)
		write(9, fh.Capex)
		write(10, fh.NetDebt)
		row++
	}
	_ = f.SetColWidth(finSheet, "A", "B", 14)
	_ = f.SetColWidth(finSheet, "C", "J", 18)

	const invSheet = "Investments"
	if _, err := f.NewSheet(invSheet); err != nil {
		return nil, err
	}
	invHeaders := []string{
		"Fund Role",
		"Investment Type",
		"Ownership %",
		"First Completion",
		"Transaction Value",
		"Current Cost",
		"Fair Value",
	}
	for i, h := range invHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(invSheet, cell, h)
	}
	row = 2
	for _, inv := range investments {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(invSheet, cell, v)
		}
		write(1, deref(inv.FundRole))
		write(2, deref(inv.InvestmentType))
		write(3, inv.OwnershipPercent)
		if inv.DateOfFirstCompletion != nil {
			write(4, inv.DateOfFirstCompletion.Format("2006-01-02"))
		} else {
			write(4, "")
		}
		write(5, inv.TransactionValue)
		write(6, inv.CurrentCost)
		write(7, inv.FairValue)
		row++
	}
	_ = f.SetColWidth(invSheet, "A", "B", 22)
	_ = f.SetColWidth(invSheet, "C", "G", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"company_id", companyID.String(),
		"company", company.Name,
		"highlights", len(highlights),
		"investments", len(investments),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
