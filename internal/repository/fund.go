package repository

import (
	"context"
	"log/slog"

	"github.com/hunggoodkidz/data-extraction-module/gen/ent"
	entfund "github.com/hunggoodkidz/data-extraction-module/gen/ent/fund"
	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

type FundRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Fund, error)
	Create(ctx context.Context, name, fundType string) (*entity.Fund, error)
}

type fundRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFundRepository(client *ent.Client, logger *slog.Logger) FundRepository {
	return &fundRepository{client: client, logger: logger}
}

func (r *fundRepository) GetByName(ctx context.Context, name string) (*entity.Fund, error) {
	row, err := r.client.Fund.Query().
		Where(entfund.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("FUND_NOT_FOUND", "fund "+name, common.ErrNotFound)
		}
		r.logger.Error("failed to look up fund", "name", name, "error", err)
		return nil, err
	}
	return toFund(row), nil
}

func (r *fundRepository) Create(ctx context.Context, name, fundType string) (*entity.Fund, error) {
	row, err := r.client.Fund.Create().
		SetName(name).
		SetType(fundType).
		Save(ctx)
	if err != nil {
		// constraint errors bubble up so the caller can re-fetch the
		// row another writer won the race for
		return nil, err
	}
	return toFund(row), nil
}

func toFund(e *ent.Fund) *entity.Fund {
	return &entity.Fund{
		ID:   e.ID,
		Name: e.Name,
		Type: e.Type,
	}
}
