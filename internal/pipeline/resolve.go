package pipeline

import (
	"context"
	"errors"

	"github.com/hunggoodkidz/data-extraction-module/constants"
	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

// resolveFund finds the canonical fund row for a name, creating it with
// the default type when absent. A create that loses a race against a
// concurrent writer falls back to one re-fetch, so both callers converge
// on the same row.
func (p *Processor) resolveFund(ctx context.Context, name string) (*entity.Fund, error) {
	fund, err := p.funds.GetByName(ctx, name)
	if err == nil {
		return fund, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	fund, createErr := p.funds.Create(ctx, name, constants.DefaultFundType)
	if createErr == nil {
		p.logger.Info("pipeline.fund_created", "name", name)
		return fund, nil
	}
	fund, err = p.funds.GetByName(ctx, name)
	if err != nil {
		return nil, createErr
	}
	return fund, nil
}

// resolveCompany is the company counterpart of resolveFund. Rows created
// here carry the placeholder description; profile extraction replaces it
// later on the same canonical row.
func (p *Processor) resolveCompany(ctx context.Context, name string) (*entity.Company, error) {
	company, err := p.companies.GetByName(ctx, name)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	desc := constants.DefaultCompanyDescription
	company, createErr := p.companies.Create(ctx, &entity.Company{
		Name:        name,
		Description: &desc,
	})
	if createErr == nil {
		p.logger.Info("pipeline.company_created", "name", name)
		return company, nil
	}
	company, err = p.companies.GetByName(ctx, name)
	if err != nil {
		return nil, createErr
	}
	return company, nil
}
