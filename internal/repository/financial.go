package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/gen/ent"
	entfin "github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

type FinancialRepository interface {
	Create(ctx context.Context, fh *entity.FinancialHighlight) (*entity.FinancialHighlight, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.FinancialHighlight, error)
}

type financialRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFinancialRepository(client *ent.Client, logger *slog.Logger) FinancialRepository {
	return &financialRepository{client: client, logger: logger}
}

func (r *financialRepository) Create(ctx context.Context, fh *entity.FinancialHighlight) (*entity.FinancialHighlight, error) {
	row, err := r.client.FinancialHighlight.Create().
		SetCompanyID(fh.CompanyID).
		SetPeriod(fh.Period).
		SetNillableCurrency(fh.Currency).
		SetRevenue(fh.Revenue).
		SetEbitda(fh.EBITDA).
		SetEbitdaMargin(fh.EBITDAMargin).
		SetEbit(fh.EBIT).
		SetEbitMargin(fh.EBITMargin).
		SetNetProfitAfterTax(fh.NetProfitAfterTax).
		SetCapex(fh.Capex).
		SetNetDebt(fh.NetDebt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create financial highlight", "company_id", fh.CompanyID, "error", err)
		return nil, err
	}
	return toFinancialHighlight(row), nil
}

func (r *financialRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.FinancialHighlight, error) {
	rows, err := r.client.FinancialHighlight.Query().
		Where(entfin.CompanyID(companyID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list financial highlights", "company_id", companyID, "error", err)
		return nil, err
	}
	result := make([]*entity.FinancialHighlight, len(rows))
	for i, row := range rows {
		result[i] = toFinancialHighlight(row)
	}
	return result, nil
}

func toFinancialHighlight(e *ent.FinancialHighlight) *entity.FinancialHighlight {
	return &entity.FinancialHighlight{
		ID:                e.ID,
		CompanyID:         e.CompanyID,
		Period:            e.Period,
		Currency:          e.Currency,
		Revenue:           e.Revenue,
		EBITDA:            e.Ebitda,
		EBITDAMargin:      e.EbitdaMargin,
		EBIT:              e.Ebit,
		EBITMargin:        e.EbitMargin,
		NetProfitAfterTax: e.NetProfitAfterTax,
		Capex:             e.Capex,
		NetDebt:           e.NetDebt,
	}
}
