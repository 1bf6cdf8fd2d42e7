package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
	"github.com/hunggoodkidz/data-extraction-module/internal/llm"
)

// ExtractFinancialHighlights asks the oracle for the fixed financial
// metric set over a document's accumulated text and records one
// FinancialHighlight row against the document's linked company. The
// document must already be linked to a company, which profile extraction
// establishes.
func (p *Processor) ExtractFinancialHighlights(ctx context.Context, documentID uuid.UUID) (*entity.FinancialHighlight, error) {
	start := time.Now()

	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.CompanyID == nil {
		return nil, common.NewAppError("NO_COMPANY_LINK",
			"document "+documentID.String()+" is not linked to a company; run profile extraction first",
			common.ErrPrecondition)
	}
	text, err := p.rawText(ctx, documentID)
	if err != nil {
		return nil, err
	}

	raw, err := p.oracle.Complete(ctx, llm.BuildFinancialPrompt(text))
	if err != nil {
		return nil, err
	}
	obj, err := llm.DecodeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := llm.ValidateObject(llm.BuildFinancialSchema(), obj); err != nil {
		p.logger.Warn("pipeline.financial.schema_mismatch", "document_id", documentID, "error", err)
	}

	fh, err := p.financials.Create(ctx, &entity.FinancialHighlight{
		CompanyID:         *doc.CompanyID,
		Period:            llm.TextOr(obj["period"], "Unknown"),
		Currency:          optString(llm.Text(obj["currency"])),
		Revenue:           llm.Number(obj["revenue"]),
		EBITDA:            llm.Number(obj["ebitda"]),
		EBITDAMargin:      llm.Number(obj["ebitda_margin"]),
		EBIT:              llm.Number(obj["ebit"]),
		EBITMargin:        llm.Number(obj["ebit_margin"]),
		NetProfitAfterTax: llm.Number(obj["net_profit_after_tax"]),
		Capex:             llm.Number(obj["capex"]),
		NetDebt:           llm.Number(obj["net_debt"]),
	})
	if err != nil {
		return nil, common.WrapError(err, "create financial highlight")
	}

	p.logger.Info("pipeline.financial.done",
		"document_id", documentID,
		"company_id", fh.CompanyID,
		"period", fh.Period,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fh, nil
}
