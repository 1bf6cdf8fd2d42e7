package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/gen/ent"
	entcompany "github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	Create(ctx context.Context, c *entity.Company) (*entity.Company, error)
	// UpdateProfile sets the descriptive attributes on the canonical
	// company row; nil pointers leave the stored value untouched.
	UpdateProfile(ctx context.Context, id uuid.UUID, holding, description, location *string) (*entity.Company, error)
}

type companyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCompanyRepository(client *ent.Client, logger *slog.Logger) CompanyRepository {
	return &companyRepository{client: client, logger: logger}
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	row, err := r.client.Company.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("COMPANY_NOT_FOUND", "company "+id.String(), common.ErrNotFound)
		}
		r.logger.Error("failed to get company", "company_id", id, "error", err)
		return nil, err
	}
	return toCompany(row), nil
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	row, err := r.client.Company.Query().
		Where(entcompany.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("COMPANY_NOT_FOUND", "company "+name, common.ErrNotFound)
		}
		r.logger.Error("failed to look up company", "name", name, "error", err)
		return nil, err
	}
	return toCompany(row), nil
}

func (r *companyRepository) Create(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	row, err := r.client.Company.Create().
		SetName(c.Name).
		SetNillableHoldingCompany(c.HoldingCompany).
		SetNillableDescription(c.Description).
		SetNillableHeadOfficeLocation(c.HeadOfficeLocation).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return toCompany(row), nil
}

func (r *companyRepository) UpdateProfile(ctx context.Context, id uuid.UUID, holding, description, location *string) (*entity.Company, error) {
	row, err := r.client.Company.UpdateOneID(id).
		SetNillableHoldingCompany(holding).
		SetNillableDescription(description).
		SetNillableHeadOfficeLocation(location).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("COMPANY_NOT_FOUND", "company "+id.String(), common.ErrNotFound)
		}
		r.logger.Error("failed to update company profile", "company_id", id, "error", err)
		return nil, err
	}
	return toCompany(row), nil
}

func toCompany(e *ent.Company) *entity.Company {
	return &entity.Company{
		ID:                 e.ID,
		Name:               e.Name,
		HoldingCompany:     e.HoldingCompany,
		Description:        e.Description,
		HeadOfficeLocation: e.HeadOfficeLocation,
	}
}
