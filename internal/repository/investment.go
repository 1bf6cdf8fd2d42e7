package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/gen/ent"
	entinv "github.com/hunggoodkidz/data-extraction-module/gen/ent/investment"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

type InvestmentRepository interface {
	Create(ctx context.Context, inv *entity.Investment) (*entity.Investment, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Investment, error)
}

type investmentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvestmentRepository(client *ent.Client, logger *slog.Logger) InvestmentRepository {
	return &investmentRepository{client: client, logger: logger}
}

func (r *investmentRepository) Create(ctx context.Context, inv *entity.Investment) (*entity.Investment, error) {
	row, err := r.client.Investment.Create().
		SetNillableFundID(inv.FundID).
		SetCompanyID(inv.CompanyID).
		SetNillableFundRole(inv.FundRole).
		SetNillableInvestmentType(inv.InvestmentType).
		SetOwnershipPercent(inv.OwnershipPercent).
		SetNillableDateOfFirstCompletion(inv.DateOfFirstCompletion).
		SetTransactionValue(inv.TransactionValue).
		SetCurrentCost(inv.CurrentCost).
		SetFairValue(inv.FairValue).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create investment", "company_id", inv.CompanyID, "error", err)
		return nil, err
	}
	return toInvestment(row), nil
}

func (r *investmentRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Investment, error) {
	rows, err := r.client.Investment.Query().
		Where(entinv.CompanyID(companyID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list investments", "company_id", companyID, "error", err)
		return nil, err
	}
	result := make([]*entity.Investment, len(rows))
	for i, row := range rows {
		result[i] = toInvestment(row)
	}
	return result, nil
}

func toInvestment(e *ent.Investment) *entity.Investment {
	return &entity.Investment{
		ID:                    e.ID,
		FundID:                e.FundID,
		CompanyID:             e.CompanyID,
		FundRole:              e.FundRole,
		InvestmentType:        e.InvestmentType,
		OwnershipPercent:      e.OwnershipPercent,
		DateOfFirstCompletion: e.DateOfFirstCompletion,
		TransactionValue:      e.TransactionValue,
		CurrentCost:           e.CurrentCost,
		FairValue:             e.FairValue,
	}
}
