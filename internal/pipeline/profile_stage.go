package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/constants"
	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
	"github.com/hunggoodkidz/data-extraction-module/internal/llm"
)

const completionDateLayout = "2006-01-02"

// ExtractCompanyProfile asks the oracle for the company and investment
// attributes of a document's accumulated text, updates the canonical
// company row, records a new investment, and back-links the document to
// the company. Each successful run appends one investment; company
// attributes converge on the latest run's answer.
func (p *Processor) ExtractCompanyProfile(ctx context.Context, documentID uuid.UUID) (*entity.Company, *entity.Investment, error) {
	start := time.Now()

	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	text, err := p.rawText(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}

	raw, err := p.oracle.Complete(ctx, llm.BuildCompanyPrompt(text))
	if err != nil {
		return nil, nil, err
	}
	obj, err := llm.DecodeObject(raw)
	if err != nil {
		return nil, nil, err
	}
	if err := llm.ValidateObject(llm.BuildCompanySchema(), obj); err != nil {
		p.logger.Warn("pipeline.profile.schema_mismatch", "document_id", documentID, "error", err)
	}

	name := llm.TextOr(obj["company_name"], constants.UnknownCompany)
	company, err := p.resolveCompany(ctx, name)
	if err != nil {
		return nil, nil, common.WrapError(err, "resolve company")
	}

	company, err = p.companies.UpdateProfile(ctx, company.ID,
		optString(llm.Text(obj["holding_company"])),
		optString(llm.Text(obj["business_description"])),
		optString(llm.Text(obj["head_office_location"])),
	)
	if err != nil {
		return nil, nil, common.WrapError(err, "update company profile")
	}

	inv, err := p.investments.Create(ctx, &entity.Investment{
		FundID:                doc.FundID,
		CompanyID:             company.ID,
		FundRole:              optString(llm.Text(obj["fund_role"])),
		InvestmentType:        optString(llm.Text(obj["investment_type"])),
		OwnershipPercent:      llm.Number(obj["ownership_percent"]),
		DateOfFirstCompletion: parseCompletionDate(llm.Text(obj["first_completion_date"])),
		TransactionValue:      llm.Number(obj["transaction_value"]),
		CurrentCost:           llm.Number(obj["current_cost"]),
		FairValue:             llm.Number(obj["fair_value"]),
	})
	if err != nil {
		return nil, nil, common.WrapError(err, "create investment")
	}

	if err := p.docs.SetCompany(ctx, documentID, company.ID); err != nil {
		return nil, nil, common.WrapError(err, "link document to company")
	}

	p.logger.Info("pipeline.profile.done",
		"document_id", documentID,
		"company", company.Name,
		"investment_id", inv.ID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return company, inv, nil
}

// parseCompletionDate is best-effort: anything that is not an ISO date
// is stored as no date rather than failing the run.
func parseCompletionDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(completionDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
